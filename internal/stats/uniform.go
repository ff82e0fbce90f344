package stats

// Uniform draws from the unit interval.
type Uniform struct {
	engine
}

// NewUniform returns a Uniform generator started from seed.
func NewUniform(seed uint64) *Uniform {
	return &Uniform{engine: newEngine(seed)}
}

func (u *Uniform) Kind() Kind { return KindUniform }

// Sample draws n values in [0, 1).
func (u *Uniform) Sample(n int, buf []float64) []float64 {
	buf = buf[:0]
	for i := 0; i < n; i++ {
		buf = append(buf, u.uniform())
	}
	return buf
}

// Density is the constant 1 at 100 points over [0, 1).
func (u *Uniform) Density(xs, ys []float64) ([]float64, []float64) {
	const n = 100
	return grid(xs, ys, n, 0, 1.0/n, func(float64) float64 { return 1 })
}

func (u *Uniform) Mean() float64     { return 0.5 }
func (u *Uniform) Variance() float64 { return 1.0 / 12 }
