package stats

import (
	"math"
	"testing"
)

// TestNormalSampleLength verifies the Box-Muller pairing returns exactly
// the requested count for even and odd sizes.
func TestNormalSampleLength(t *testing.T) {
	g := NewNormal(1)
	for _, n := range []int{0, 1, 2, 3, 10, 11, 1001} {
		if got := len(g.Sample(n, nil)); got != n {
			t.Errorf("Sample(%d): got %d values", n, got)
		}
	}
}

// TestGammaShapeOneMatchesExponential verifies that a unit shape Gamma is
// the same generator as an Exponential with the same rate and seed.
func TestGammaShapeOneMatchesExponential(t *testing.T) {
	gamma := NewGamma(99, 1, 2.5)
	exp := NewExponential(99, 2.5)

	a := gamma.Sample(500, nil)
	b := exp.Sample(500, nil)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("value %d differs: gamma=%g exponential=%g", i, a[i], b[i])
		}
	}
}

// TestUniformRange verifies all draws stay inside [0, 1).
func TestUniformRange(t *testing.T) {
	for _, v := range NewUniform(3).Sample(10000, nil) {
		if v < 0 || v >= 1 {
			t.Fatalf("uniform draw out of range: %g", v)
		}
	}
}

// TestReseedReplays verifies that reseeding with the same value replays
// the same sequence and that Seed reports it.
func TestReseedReplays(t *testing.T) {
	g := NewNormal(5)
	first := g.Sample(64, nil)

	g.Reseed(5)
	if g.Seed() != 5 {
		t.Errorf("expected seed 5, got %d", g.Seed())
	}
	second := g.Sample(64, nil)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("value %d differs after reseed: %g vs %g", i, first[i], second[i])
		}
	}

	g.Reseed(6)
	third := g.Sample(64, nil)
	same := true
	for i := range first {
		if first[i] != third[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("expected a different sequence for a different seed")
	}
}

// TestParameterCoercion verifies invalid shape and rate are replaced.
func TestParameterCoercion(t *testing.T) {
	g := NewGamma(1, 0, -3)
	if g.Alpha != 1 || g.Beta != 1 {
		t.Errorf("expected alpha=1 beta=1, got alpha=%d beta=%g", g.Alpha, g.Beta)
	}
	e := NewExponential(1, 0)
	if e.Beta != 1 {
		t.Errorf("expected beta=1, got %g", e.Beta)
	}
}

// TestDensityGrids verifies the point counts and domains of each density.
func TestDensityGrids(t *testing.T) {
	tests := []struct {
		dist   Distribution
		points int
		lo, hi float64
	}{
		{NewUniform(1), 100, 0, 1},
		{NewNormal(1), 100, -4 - Epsilon, 4 + Epsilon},
		{NewExponential(1, 1), 200, 0, 5 + Epsilon},
		{NewGamma(1, 5, 2), 300, 0, 2.5 + 8*math.Sqrt(5)/2 + Epsilon},
	}
	for _, tt := range tests {
		xs, ys := tt.dist.Density(nil, nil)
		if len(xs) != tt.points || len(ys) != tt.points {
			t.Errorf("%s: expected %d points, got %d/%d", tt.dist.Kind(), tt.points, len(xs), len(ys))
			continue
		}
		if math.Abs(xs[0]-tt.lo) > 1e-9 {
			t.Errorf("%s: expected first x=%g, got %g", tt.dist.Kind(), tt.lo, xs[0])
		}
		if xs[len(xs)-1] >= tt.hi {
			t.Errorf("%s: last x %g should stay below %g", tt.dist.Kind(), xs[len(xs)-1], tt.hi)
		}
	}
}

// TestNormalDensityPeak verifies the Gaussian closed form at its mode.
func TestNormalDensityPeak(t *testing.T) {
	want := 1 / math.Sqrt(2*math.Pi)
	if got := gaussian(0); math.Abs(got-want) > 1e-12 {
		t.Errorf("expected %g, got %g", want, got)
	}
}

// TestSampleMeans verifies the empirical mean of each generator is close
// to its theoretical mean.
func TestSampleMeans(t *testing.T) {
	for _, kind := range Kinds {
		g := New(kind, 2024, DefaultParams())
		samples := g.Sample(50000, nil)
		var sum float64
		for _, v := range samples {
			sum += v
		}
		mean := sum / float64(len(samples))
		tol := 5 * math.Sqrt(g.Variance()/float64(len(samples)))
		if math.Abs(mean-g.Mean()) > tol {
			t.Errorf("%s: sample mean %g too far from %g (tol %g)", kind, mean, g.Mean(), tol)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseKind("Cauchy"); ok {
		t.Error("expected unknown label to be rejected")
	}
}
