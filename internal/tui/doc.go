// Package tui hosts the dashboard in a terminal.
//
// It is built on Charmbracelet's BubbleTea and Lipgloss. The dashboard is
// laid out in virtual pixels exactly as on the desktop and painted into a
// grid of half-block cells.
//
// Component architecture:
//
//	model.go   root model, frame ticks, mouse and key routing
//	canvas.go  half-block cell canvas implementing draw.Drawer
//	theme.go   centralized color + style definitions
//	header.go  top bar with run context, footer with key hints
//	history.go journaled run list
//	report.go  analysis report of the current chart
//	helpers.go truncation, clamping, colour conversion
package tui
