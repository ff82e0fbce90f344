// Package animation maps wall-clock time onto the reveal percentage that
// drives progressive chart drawing.
package animation

import "time"

// Windows up to minDuration complete at once.
const minDuration = 10 * time.Microsecond

// Animation tracks one reveal window. Now is refreshed by the host once
// per frame; Start moves only on Reset.
type Animation struct {
	Start    time.Time
	Now      time.Time
	Duration time.Duration
}

// New returns an animation of the given duration starting at the current
// clock time.
func New(d time.Duration) Animation {
	a := Animation{Duration: d}
	a.Reset()
	return a
}

// Reset restarts the reveal window at the current clock time.
func (a *Animation) Reset() {
	now := Now()
	a.Start = now
	a.Now = now
}

// Tick refreshes the frame time from the active clock.
func (a *Animation) Tick() {
	a.Now = Now()
}

// Percentage reports how much of the window has elapsed, in [0, 1].
func (a *Animation) Percentage() float64 {
	end := a.Start.Add(a.Duration)
	if !a.Now.Before(end) {
		return 1
	}
	if !a.Now.After(a.Start) {
		return 0
	}
	if a.Duration <= minDuration {
		return 1
	}
	p := float64(a.Now.Sub(a.Start)) / float64(a.Duration)
	return max(0, min(p, 1))
}

// Done reports whether the reveal has completed.
func (a *Animation) Done() bool {
	return a.Percentage() >= 1
}
