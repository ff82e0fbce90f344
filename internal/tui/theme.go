package tui

import "github.com/charmbracelet/lipgloss"

// ────────────────────────────────────────────────────────────
// Color Palette
// ────────────────────────────────────────────────────────────
//
// Chrome colours live here. The dashboard itself is painted with the
// colours of dashboard.Scheme so the terminal and the window match.

var (
	// Base
	colorBg        = lipgloss.Color("#0d1117")
	colorBgSurface = lipgloss.Color("#1c2128")

	// Text
	colorText      = lipgloss.Color("#e6edf3")
	colorTextDim   = lipgloss.Color("#8b949e")
	colorTextMuted = lipgloss.Color("#484f58")

	// Accents
	colorBlue   = lipgloss.Color("#58a6ff")
	colorGreen  = lipgloss.Color("#3fb950")
	colorRed    = lipgloss.Color("#f85149")
	colorYellow = lipgloss.Color("#d29922")
	colorPurple = lipgloss.Color("#bc8cff")

	// Structural
	colorDivider   = lipgloss.Color("#30363d")
	colorHighlight = lipgloss.Color("#1f6feb")
)

// ────────────────────────────────────────────────────────────
// Component Styles
// ────────────────────────────────────────────────────────────

// Header bar
var (
	headerBarStyle = lipgloss.NewStyle().
			Background(colorBgSurface).
			Foreground(colorText).
			Padding(0, 1)

	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorBlue)

	headerSepStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	headerMetaStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	headerDebugStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPurple)
)

// Panel chrome
var (
	panelStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.Border{
			Top:    "─",
			Bottom: "",
			Left:   "",
			Right:  "",
		}).
		BorderForeground(colorBlue)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)
)

// Report pane
var (
	reportLabelStyle = lipgloss.NewStyle().
				Foreground(colorBlue)

	reportValueStyle = lipgloss.NewStyle().
				Foreground(colorText)

	reportSectionStyle = lipgloss.NewStyle().
				Foreground(colorDivider)

	reportWarningStyle = lipgloss.NewStyle().
				Foreground(colorYellow)

	fitBarFullStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	fitBarEmptyStyle = lipgloss.NewStyle().
				Foreground(colorTextMuted)
)

// Severity labels
var (
	sevOkStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	sevLowStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	sevMediumStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	sevHighStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)
)

// Footer / status bar
var (
	statusStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBgSurface).
			Padding(0, 1)

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Background(colorBgSurface).
				Bold(true).
				Padding(0, 1)

	hintKeyStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	hintDescStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)
)

// Run history
var (
	runItemStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Padding(0, 1)

	runSelectedStyle = lipgloss.NewStyle().
				Background(colorHighlight).
				Foreground(colorText).
				Bold(true).
				Padding(0, 1)

	runDimStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted).
			Padding(2, 4)

	initStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Background(colorBg)
)
