// Package timeutil provides time formatting utilities for claydash.
//
// Journal timestamps are stored as Unix nanoseconds (int64). This package
// converts them for the history listing and reports, and formats the
// frame and animation durations shown by the front ends.
package timeutil

import (
	"fmt"
	"time"
)

// FromNano converts a Unix nanosecond timestamp to time.Time.
func FromNano(ns int64) time.Time {
	return time.Unix(0, ns)
}

// FormatTimestamp formats a Unix nanosecond timestamp for compact
// listings. Format: "HH:MM:SS.mmm"
func FormatTimestamp(ns int64) string {
	return FromNano(ns).Format("15:04:05.000")
}

// FormatTimestampFull formats a Unix nanosecond timestamp with date.
// Format: "2006-01-02 15:04:05"
func FormatTimestampFull(ns int64) string {
	if ns == 0 {
		return "-"
	}
	return FromNano(ns).Format("2006-01-02 15:04:05")
}

// FormatDuration formats a frame time for the header.
// Examples: "16.7ms", "1.2s", "2m 15.3s"
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	minutes := int(d / time.Minute)
	remaining := (d - time.Duration(minutes)*time.Minute).Seconds()
	return fmt.Sprintf("%dm %.1fs", minutes, remaining)
}

// FPS converts a frame time into frames per second. Zero frame times
// report zero.
func FPS(frame time.Duration) float64 {
	if frame <= 0 {
		return 0
	}
	return float64(time.Second) / float64(frame)
}

// RelativeTime returns a human-readable relative time string.
// Examples: "just now", "5s ago", "2m ago", "1h ago"
func RelativeTime(ns int64) string {
	return relative(time.Since(FromNano(ns)))
}

func relative(diff time.Duration) string {
	switch {
	case diff < time.Second:
		return "just now"
	case diff < time.Minute:
		return fmt.Sprintf("%ds ago", int(diff.Seconds()))
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		days := int(diff.Hours() / 24)
		return fmt.Sprintf("%dd ago", days)
	}
}
