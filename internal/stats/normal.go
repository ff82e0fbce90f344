package stats

import "math"

// Normal draws from the standard normal distribution.
type Normal struct {
	engine
}

// NewNormal returns a standard Normal generator started from seed.
func NewNormal(seed uint64) *Normal {
	return &Normal{engine: newEngine(seed)}
}

func (g *Normal) Kind() Kind { return KindNormal }

// Sample uses the Box-Muller transform, which yields values in pairs. For
// odd n the surplus value of the last pair is dropped.
func (g *Normal) Sample(n int, buf []float64) []float64 {
	buf = buf[:0]
	if n <= 0 {
		return buf
	}
	size := n
	if size%2 == 1 {
		size++
	}
	for i := 0; i < size; i++ {
		buf = append(buf, g.uniform())
	}
	for i := 0; i < size; i += 2 {
		u1 := math.Max(buf[i], Epsilon)
		u2 := buf[i+1]
		scale := math.Sqrt(-2 * math.Log(u1))
		buf[i] = scale * math.Cos(2*math.Pi*u2)
		buf[i+1] = scale * math.Sin(2*math.Pi*u2)
	}
	return buf[:n]
}

// Density is the Gaussian curve at 100 points over [-4, 4] widened by
// Epsilon.
func (g *Normal) Density(xs, ys []float64) ([]float64, []float64) {
	const n = 100
	lo, hi := -4-Epsilon, 4+Epsilon
	return grid(xs, ys, n, lo, (hi-lo)/n, gaussian)
}

func (g *Normal) Mean() float64     { return 0 }
func (g *Normal) Variance() float64 { return 1 }

func gaussian(x float64) float64 {
	return math.Exp(-x*x*0.5) / math.Sqrt(2*math.Pi)
}
