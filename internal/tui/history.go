package tui

import (
	"fmt"
	"strings"

	"github.com/fvall/claydash/pkg/timeutil"
)

// renderHistoryPanel lists the journaled runs, newest first.
func renderHistoryPanel(m *Model, width, height int) string {
	title := panelTitleStyle.Render("Run History")
	content := renderRunList(m, max(height-2, 1))
	return panelStyle.Width(width).Render(title + "\n" + content)
}

func renderRunList(m *Model, height int) string {
	if len(m.runs) == 0 {
		return emptyStateStyle.Render(
			"No runs journaled yet.\n\n" +
				"Every Simulate and distribution change is recorded\n" +
				"while the journal is enabled.")
	}

	// Keep the selection on screen.
	start := 0
	if m.selectedRun >= height {
		start = m.selectedRun - height + 1
	}
	end := min(start+height, len(m.runs))

	var lines []string
	for i := start; i < end; i++ {
		r := m.runs[i]
		age := runDimStyle.Render(timeutil.RelativeTime(r.CreatedAt))
		line := fmt.Sprintf("#%-5d %s  %-11s %-9s %-10s mean %8.4f  sd %7.4f  %s",
			r.RunID,
			timeutil.FormatTimestamp(r.CreatedAt),
			truncate(r.Distribution, 11),
			truncate(r.ChartKind, 9),
			r.Trigger,
			r.Mean,
			r.StdDev,
			age,
		)
		if i == m.selectedRun {
			lines = append(lines, runSelectedStyle.Render(line))
		} else {
			lines = append(lines, runItemStyle.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}
