package animation

import "time"

// Clock is the time source every Animation reads. Tests install a fake one
// with SetClock.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

var clock Clock = ClockFunc(time.Now)

// SetClock installs c and returns the clock it replaced.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now reads the installed clock.
func Now() time.Time { return clock.Now() }
