// Package chart turns binned counts and density curves into screen-space
// draw calls. Drawing is progressive: a reveal percentage in [0, 1]
// decides how much of the series is visible this frame.
package chart

import (
	"log"

	"github.com/fvall/claydash/internal/analysis"
)

// Kind selects which series are drawn.
type Kind int

const (
	Histogram Kind = iota
	Line
	Both
)

// Kinds lists every chart kind in menu order.
var Kinds = []Kind{Histogram, Line, Both}

// String returns the menu label for k.
func (k Kind) String() string {
	switch k {
	case Line:
		return "Line"
	case Both:
		return "Hist+Line"
	default:
		return "Histogram"
	}
}

// ParseKind maps a menu label to its kind. Unknown labels are logged and
// fall back to Histogram.
func ParseKind(label string) Kind {
	for _, k := range Kinds {
		if k.String() == label {
			return k
		}
	}
	log.Printf("[ERROR] Unable to match %q to a chart kind, using %s", label, Histogram)
	return Histogram
}

// Data is everything needed to draw one chart.
type Data struct {
	// Counts holds the histogram bins.
	Counts []uint32
	// X and Y are the density curve, index-aligned.
	X, Y []float64
	Kind Kind
	// Summary describes the samples the histogram was built from.
	Summary analysis.Summary
}

// Reset empties the series in place, keeping their storage.
func (d *Data) Reset() {
	d.Counts = d.Counts[:0]
	d.X = d.X[:0]
	d.Y = d.Y[:0]
	d.Summary = analysis.Summary{}
}
