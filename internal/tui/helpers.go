package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/fvall/claydash/internal/draw"
)

// ────────────────────────────────────────────────────────────
// Severity rendering
// ────────────────────────────────────────────────────────────

// severityTag returns a short colored label for an analysis severity.
func severityTag(sev string) string {
	switch sev {
	case "high":
		return sevHighStyle.Render("high")
	case "medium":
		return sevMediumStyle.Render("med")
	case "low":
		return sevLowStyle.Render("low")
	default:
		return sevOkStyle.Render("ok")
	}
}

// ────────────────────────────────────────────────────────────
// Colour conversion
// ────────────────────────────────────────────────────────────

// toLipgloss converts a dashboard colour to a terminal colour.
func toLipgloss(c draw.Color) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// ────────────────────────────────────────────────────────────
// String helpers
// ────────────────────────────────────────────────────────────

// truncate cuts a string to maxLen and appends "..." if truncated.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// clamp restricts val to [lo, hi].
func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// clampf is clamp for virtual pixel coordinates.
func clampf(v, lo, hi float32) float32 { return max(lo, min(v, hi)) }
