package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fvall/claydash/pkg/timeutil"
)

// renderHeader produces the top bar:
//
//	CLAYDASH  |  Normal  |  Histogram  |  seed 1a2b…  |  60 fps
func renderHeader(m *Model) string {
	brand := headerBrandStyle.Render("CLAYDASH")
	sep := headerSepStyle.Render(" │ ")

	parts := []string{brand, sep, headerMetaStyle.Render(m.app.Generator.Kind().String())}
	if m.app.Chart != nil {
		parts = append(parts, sep, headerMetaStyle.Render(m.app.Chart.Kind.String()))
	}
	parts = append(parts, sep, headerMetaStyle.Render(fmt.Sprintf("seed %016x", m.app.Generator.Seed())))
	if m.frameTime > 0 {
		parts = append(parts, sep, headerMetaStyle.Render(fmt.Sprintf("%.0f fps %s", timeutil.FPS(m.frameTime), timeutil.FormatDuration(m.frameTime))))
	}
	if m.debug {
		parts = append(parts, sep, headerDebugStyle.Render("DEBUG"))
	}

	return headerBarStyle.Width(m.width).MaxHeight(1).Render(strings.Join(parts, ""))
}

// renderFooter produces the bottom status bar with keyboard hints.
func renderFooter(m *Model) string {
	var left, right string

	if m.err != nil && m.statusMsg != "" {
		left = statusErrorStyle.Render(m.statusMsg)
	} else if m.statusMsg != "" {
		left = statusStyle.Render(m.statusMsg)
	}

	switch m.pane {
	case PaneHistory:
		right = renderHints([]hint{
			{"↑↓", "navigate"},
			{"a", "report"},
			{"esc", "back"},
			{"q", "quit"},
		})
	case PaneReport:
		right = renderHints([]hint{
			{"h", "history"},
			{"esc", "back"},
			{"q", "quit"},
		})
	default:
		right = renderHints([]hint{
			{"s", "simulate"},
			{"1-4", "distribution"},
			{"c", "chart"},
			{"r", "reset"},
			{"a", "report"},
			{"h", "history"},
			{"d", "debug"},
			{"q", "quit"},
		})
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().
		Background(colorBgSurface).
		Width(m.width).
		MaxHeight(1).
		Render(bar)
}

type hint struct {
	key  string
	desc string
}

func renderHints(hints []hint) string {
	var parts []string
	for _, h := range hints {
		parts = append(parts,
			hintKeyStyle.Render(h.key)+" "+hintDescStyle.Render(h.desc))
	}
	return strings.Join(parts, hintDescStyle.Render("  "))
}
