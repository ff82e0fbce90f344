package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderReportPanel shows the analysis of the current chart.
func renderReportPanel(m *Model, width, height int) string {
	title := panelTitleStyle.Render("Analysis")
	return panelStyle.Width(width).Render(title + "\n\n" + renderReport(m, width-4))
}

func renderReport(m *Model, width int) string {
	r := m.report
	if r == nil {
		return emptyStateStyle.Render("No report yet. Press a to analyse the current chart.")
	}

	var lines []string

	// ── Summary ──

	s := r.Summary
	lines = append(lines, reportRow("Distribution", r.Distribution))
	lines = append(lines, reportRow("Seed", fmt.Sprintf("%d", r.Seed)))
	lines = append(lines, reportRow("Samples", fmt.Sprintf("%d in %d bins", s.Count, r.Bins)))
	lines = append(lines, reportRow("Mean", fmt.Sprintf("%.4f", s.Mean)))
	lines = append(lines, reportRow("Std dev", fmt.Sprintf("%.4f", s.StdDev)))
	lines = append(lines, reportRow("Skewness", fmt.Sprintf("%.3f", s.Skewness)))
	lines = append(lines, reportRow("Kurtosis", fmt.Sprintf("%.3f", s.ExcessKurtosis)))
	lines = append(lines, reportRow("Range", fmt.Sprintf("[%.4f, %.4f]", s.Min, s.Max)))

	// ── Moments ──

	lines = append(lines, "")
	lines = append(lines, reportSectionStyle.Render("Moment Check"))
	mc := r.Moments
	lines = append(lines, reportRow("Expected", fmt.Sprintf("mean %.4f  var %.4f", mc.ExpectedMean, mc.ExpectedVariance)))
	lines = append(lines, reportRow("Z-score", fmt.Sprintf("%.2f  %s", mc.MeanZScore, severityTag(mc.Severity))))
	lines = append(lines, reportRow("Var ratio", fmt.Sprintf("%.3f", mc.VarianceRatio)))

	// ── Fit ──

	lines = append(lines, "")
	lines = append(lines, reportSectionStyle.Render("Histogram Fit"))
	lines = append(lines, reportRow("Slope", fmt.Sprintf("%.3f", r.Fit.Slope)))
	lines = append(lines, renderFitBar("R²", r.Fit.RSquared, max(width-20, 10)))

	// ── Journal ──

	if r.History != nil && r.History.Runs > 0 {
		lines = append(lines, "")
		lines = append(lines, reportSectionStyle.Render("Journal"))
		lines = append(lines, reportRow("Runs", fmt.Sprintf("%d", r.History.Runs)))
		lines = append(lines, reportRow("Avg mean", fmt.Sprintf("%.4f", r.History.AvgMean)))
		for _, o := range r.Outliers {
			lines = append(lines, reportRow(fmt.Sprintf("Run %d", o.RunID),
				fmt.Sprintf("mean %.4f  z %.2f  %s", o.Mean, o.ZScore, severityTag(o.Severity))))
		}
	}

	for _, w := range r.Warnings {
		lines = append(lines, "", reportWarningStyle.Render(truncate(w, width)))
	}

	return strings.Join(lines, "\n")
}

func reportRow(label, value string) string {
	return reportLabelStyle.Render(fmt.Sprintf("%-14s", label)) + reportValueStyle.Render(value)
}

// renderFitBar draws value in [0, 1] as a horizontal bar.
func renderFitBar(label string, value float64, barWidth int) string {
	filled := clamp(int(value*float64(barWidth)+0.5), 0, barWidth)
	bar := fitBarFullStyle.Render(strings.Repeat("█", filled)) +
		fitBarEmptyStyle.Render(strings.Repeat("░", barWidth-filled))
	return lipgloss.JoinHorizontal(lipgloss.Top,
		reportLabelStyle.Render(fmt.Sprintf("%-14s", label)),
		bar,
		reportValueStyle.Render(fmt.Sprintf(" %.3f", value)),
	)
}
