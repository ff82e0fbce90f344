package stats

import "math"

// Gamma draws from a Gamma distribution with integer shape Alpha and rate
// Beta, generated as the sum of Alpha exponential draws.
type Gamma struct {
	engine
	Alpha uint8
	Beta  float64
}

// NewGamma returns a Gamma generator started from seed. A zero shape is
// replaced by 1 and a non-positive rate by 1.
func NewGamma(seed uint64, alpha uint8, beta float64) *Gamma {
	if alpha == 0 {
		alpha = 1
	}
	if beta <= 0 {
		beta = 1
	}
	return &Gamma{engine: newEngine(seed), Alpha: alpha, Beta: beta}
}

func (g *Gamma) Kind() Kind { return KindGamma }

// Sample accumulates one exponential draw per value per shape round, so a
// shape of 1 consumes the engine exactly like Exponential.
func (g *Gamma) Sample(n int, buf []float64) []float64 {
	buf = buf[:0]
	for i := 0; i < n; i++ {
		buf = append(buf, 0)
	}
	for round := uint8(0); round < g.Alpha; round++ {
		for i := range buf {
			buf[i] += g.exponential(g.Beta)
		}
	}
	return buf
}

// Density is evaluated at 300 points from 0 to eight standard deviations
// past the mean. The normalizing constant uses the factorial of the shape.
func (g *Gamma) Density(xs, ys []float64) ([]float64, []float64) {
	const n = 300
	alpha := float64(g.Alpha)
	hi := alpha/g.Beta + 8*math.Sqrt(alpha)/g.Beta + Epsilon
	coeff := math.Pow(g.Beta, alpha) / factorial(uint(g.Alpha))
	return grid(xs, ys, n, 0, hi/n, func(x float64) float64 {
		return coeff * math.Pow(x, alpha-1) * math.Exp(-x*g.Beta)
	})
}

func (g *Gamma) Mean() float64     { return float64(g.Alpha) / g.Beta }
func (g *Gamma) Variance() float64 { return float64(g.Alpha) / (g.Beta * g.Beta) }

func factorial(x uint) float64 {
	out := 1.0
	for ; x > 1; x-- {
		out *= float64(x)
	}
	return out
}
