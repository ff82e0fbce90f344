package stats

import (
	"log"
	"math"
)

// Cut bins samples into the given number of equal-width buckets spanning
// the observed range and returns the counts in dst, which is cleared and
// reused when it has enough capacity.
//
// The range is widened by Epsilon on both ends while the bucket width is
// taken from the raw range. A sample that cannot be placed is logged and
// the counts gathered so far are returned.
func Cut(dst []uint32, samples []float64, bins int) []uint32 {
	dst = dst[:0]
	if len(samples) == 0 || bins <= 0 {
		return dst
	}
	for i := 0; i < bins; i++ {
		dst = append(dst, 0)
	}

	lo, hi := MinMax(samples)
	step := (hi - lo) / float64(bins)
	lo -= Epsilon
	hi += Epsilon
	if step <= 0 {
		// Every sample is equal; spread the widened range instead.
		step = (hi - lo) / float64(bins)
	}
	// The scan must advance even where a step is below the spacing of
	// floats around hi.
	step = max(step, math.Nextafter(hi, math.Inf(1))-hi)

	for _, v := range samples {
		idx := 0
		lhs := lo
		rhs := lhs + step
		for (v < lhs || v > rhs) && rhs <= hi && idx < bins {
			lhs = rhs
			rhs += step
			idx++
		}

		// The bins stop short of the widened maximum when the range is
		// narrow; anything up to hi belongs to the last bin.
		if idx >= bins && v <= hi {
			idx = bins - 1
		}
		if idx >= bins {
			log.Printf("[ERROR] Sample %g fell outside histogram range [%g, %g] (bin %d of %d)", v, lo, hi, idx, bins)
			return dst
		}
		dst[idx]++
	}
	return dst
}
