// Package stats implements the sampling side of the dashboard: seeded
// random-variate generators for the supported distributions, their
// theoretical densities over a plotting domain, and histogram binning.
//
// Everything here is deterministic for a given seed so charts can be
// reproduced from a journaled run.
package stats

// Epsilon widens ranges so that extreme values land inside the outer bins.
const Epsilon = 1e-6

// Float is satisfied by both screen-space and sample-space values.
type Float interface {
	~float32 | ~float64
}

// Clamp restricts x to [lo, hi].
func Clamp[T Float](x, lo, hi T) T {
	return max(lo, min(x, hi))
}

// Lerp maps x from [x0, x1] onto [y0, y1]. Values outside the source range
// saturate at the matching end of the target range.
func Lerp[T Float](x, x0, x1, y0, y1 T) T {
	if x <= x0 {
		return y0
	}
	if x >= x1 {
		return y1
	}
	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}

// MinMax returns the smallest and largest value of xs.
// Both are zero when xs is empty.
func MinMax(xs []float64) (lo, hi float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	lo, hi = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi
}
