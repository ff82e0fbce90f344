package dashboard

import (
	"fmt"

	"github.com/fvall/claydash/internal/analysis"
	"github.com/fvall/claydash/internal/stats"
)

// summaryLines formats the sidebar readout for one chart.
func summaryLines(seed uint64, s analysis.Summary) []string {
	return []string{
		fmt.Sprintf("seed %016x", seed),
		fmt.Sprintf("n     %d", s.Count),
		fmt.Sprintf("mean  %.4f", s.Mean),
		fmt.Sprintf("sd    %.4f", s.StdDev),
		fmt.Sprintf("skew  %.3f", s.Skewness),
		fmt.Sprintf("kurt  %.3f", s.ExcessKurtosis),
	}
}

// StatusLine is a one-line readout of the current chart for hosts with a
// status bar.
func (a *App) StatusLine() string {
	if a.Chart == nil {
		return fmt.Sprintf("%s · no chart", a.Generator.Kind())
	}
	s := a.Chart.Summary
	return fmt.Sprintf("%s · %s · seed %016x · mean %.4f · sd %.4f",
		a.Generator.Kind(), a.Chart.Kind, a.Generator.Seed(), s.Mean, s.StdDev)
}

// Report analyses the current generator. The samples are redrawn from the
// generator's seed, so the report describes the chart on screen without
// the App keeping its samples around.
func (a *App) Report(an *analysis.Analyzer) (*analysis.Report, error) {
	g := stats.New(a.Generator.Kind(), a.Generator.Seed(), a.params)
	samples := g.Sample(a.samples, nil)
	return an.FullAnalysis(g, samples, a.bins)
}
