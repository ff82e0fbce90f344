package stats

import "math"

// Exponential draws from an exponential distribution with rate Beta.
type Exponential struct {
	engine
	Beta float64
}

// NewExponential returns an Exponential generator started from seed.
// A non-positive rate is replaced by 1.
func NewExponential(seed uint64, beta float64) *Exponential {
	if beta <= 0 {
		beta = 1
	}
	return &Exponential{engine: newEngine(seed), Beta: beta}
}

func (g *Exponential) Kind() Kind { return KindExponential }

// Sample draws n values by inverse CDF.
func (g *Exponential) Sample(n int, buf []float64) []float64 {
	buf = buf[:0]
	for i := 0; i < n; i++ {
		buf = append(buf, g.exponential(g.Beta))
	}
	return buf
}

// Density is evaluated at 200 points over [0, 5] widened by Epsilon.
func (g *Exponential) Density(xs, ys []float64) ([]float64, []float64) {
	const n = 200
	hi := 5 + Epsilon
	return grid(xs, ys, n, 0, hi/n, func(x float64) float64 {
		return g.Beta * math.Exp(-g.Beta*x)
	})
}

func (g *Exponential) Mean() float64     { return 1 / g.Beta }
func (g *Exponential) Variance() float64 { return 1 / (g.Beta * g.Beta) }
