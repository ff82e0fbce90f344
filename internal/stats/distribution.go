package stats

import (
	"math"
	"math/rand/v2"
)

// Distribution is the capability shared by every generator the dashboard
// can plot.
type Distribution interface {
	// Kind identifies the family of the generator.
	Kind() Kind
	// Sample draws n variates into buf, reusing its storage.
	Sample(n int, buf []float64) []float64
	// Density evaluates the theoretical density over the canonical plotting
	// domain of the distribution, reusing the storage of xs and ys.
	Density(xs, ys []float64) ([]float64, []float64)
	// Reseed restarts the underlying engine from seed.
	Reseed(seed uint64)
	// Seed reports the seed the engine was last started from.
	Seed() uint64
	// Mean and Variance are the theoretical moments.
	Mean() float64
	Variance() float64
}

// Kind enumerates the supported distribution families.
type Kind int

const (
	KindUniform Kind = iota
	KindNormal
	KindGamma
	KindExponential
)

// Kinds lists every family in menu order.
var Kinds = []Kind{KindUniform, KindNormal, KindGamma, KindExponential}

// String returns the menu label for a family.
func (k Kind) String() string {
	switch k {
	case KindUniform:
		return "Uniform"
	case KindNormal:
		return "Normal"
	case KindGamma:
		return "Gamma"
	case KindExponential:
		return "Exponential"
	default:
		return "Unknown"
	}
}

// ParseKind maps a menu label back to its family.
func ParseKind(label string) (Kind, bool) {
	for _, k := range Kinds {
		if k.String() == label {
			return k, true
		}
	}
	return KindUniform, false
}

// Params carries the shape parameters used when a generator is built by
// family rather than through a specific constructor.
type Params struct {
	GammaAlpha      uint8
	GammaBeta       float64
	ExponentialBeta float64
}

// DefaultParams returns the parameters the dashboard uses when a family is
// picked from the menu.
func DefaultParams() Params {
	return Params{
		GammaAlpha:      5,
		GammaBeta:       2.0,
		ExponentialBeta: 1.0,
	}
}

// New builds a generator of the given family.
func New(kind Kind, seed uint64, p Params) Distribution {
	switch kind {
	case KindNormal:
		return NewNormal(seed)
	case KindGamma:
		return NewGamma(seed, p.GammaAlpha, p.GammaBeta)
	case KindExponential:
		return NewExponential(seed, p.ExponentialBeta)
	default:
		return NewUniform(seed)
	}
}

// ============================================================
// Engine
// ============================================================

// pcgStream decorrelates the second PCG word from the seed.
const pcgStream = 0x9e3779b97f4a7c15

// engine is the seeded source embedded in every generator.
type engine struct {
	seed uint64
	rng  *rand.Rand
}

func newEngine(seed uint64) engine {
	var e engine
	e.Reseed(seed)
	return e
}

// Reseed restarts the engine from seed.
func (e *engine) Reseed(seed uint64) {
	e.seed = seed
	e.rng = rand.New(rand.NewPCG(seed, seed^pcgStream))
}

// Seed reports the seed the engine was last started from.
func (e *engine) Seed() uint64 {
	return e.seed
}

// uniform normalizes a raw 32-bit draw onto [0, 1).
func (e *engine) uniform() float64 {
	return float64(e.rng.Uint32()) / (1 << 32)
}

// exponential draws by inverse CDF, keeping the log argument away from zero.
func (e *engine) exponential(beta float64) float64 {
	return -math.Log(math.Max(1-e.uniform(), Epsilon)) / beta
}

// grid fills xs with n evenly spaced points starting at lo and ys with f
// evaluated at each of them.
func grid(xs, ys []float64, n int, lo, step float64, f func(float64) float64) ([]float64, []float64) {
	xs, ys = xs[:0], ys[:0]
	x := lo
	for i := 0; i < n; i++ {
		xs = append(xs, x)
		ys = append(ys, f(x))
		x += step
	}
	return xs, ys
}
