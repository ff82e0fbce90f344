// Package drawtest provides a draw.Drawer that records calls for tests.
package drawtest

import "github.com/fvall/claydash/internal/draw"

// Op names a recorded primitive.
type Op string

const (
	OpRectangle        Op = "rectangle"
	OpRoundedRectangle Op = "rounded"
	OpRectangleLines   Op = "rectangle-lines"
	OpLine             Op = "line"
	OpTriangle         Op = "triangle"
	OpPixel            Op = "pixel"
	OpRing             Op = "ring"
	OpText             Op = "text"
	OpScissorStart     Op = "scissor-start"
	OpScissorEnd       Op = "scissor-end"
)

// Call is one recorded primitive. Only the fields relevant to Op are set.
type Call struct {
	Op     Op
	Rect   draw.Rectangle
	Points []draw.Vector2
	Thick  float32
	Color  draw.Color
	Text   string
}

// Recorder implements draw.Drawer by appending every call to Calls.
type Recorder struct {
	Calls []Call
}

// Count returns the number of recorded calls of the given kind.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Filter returns the recorded calls of the given kind in order.
func (r *Recorder) Filter(op Op) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets every recorded call.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

func (r *Recorder) Rectangle(rect draw.Rectangle, c draw.Color) {
	r.Calls = append(r.Calls, Call{Op: OpRectangle, Rect: rect, Color: c})
}

func (r *Recorder) RoundedRectangle(rect draw.Rectangle, roundness float32, segments int, c draw.Color) {
	r.Calls = append(r.Calls, Call{Op: OpRoundedRectangle, Rect: rect, Thick: roundness, Color: c})
}

func (r *Recorder) RectangleLines(rect draw.Rectangle, thick float32, c draw.Color) {
	r.Calls = append(r.Calls, Call{Op: OpRectangleLines, Rect: rect, Thick: thick, Color: c})
}

func (r *Recorder) Line(from, to draw.Vector2, thick float32, c draw.Color) {
	r.Calls = append(r.Calls, Call{Op: OpLine, Points: []draw.Vector2{from, to}, Thick: thick, Color: c})
}

func (r *Recorder) Triangle(a, b, c draw.Vector2, col draw.Color) {
	r.Calls = append(r.Calls, Call{Op: OpTriangle, Points: []draw.Vector2{a, b, c}, Color: col})
}

func (r *Recorder) Pixel(p draw.Vector2, c draw.Color) {
	r.Calls = append(r.Calls, Call{Op: OpPixel, Points: []draw.Vector2{p}, Color: c})
}

func (r *Recorder) Ring(center draw.Vector2, inner, outer, startAngle, endAngle float32, segments int, c draw.Color) {
	r.Calls = append(r.Calls, Call{Op: OpRing, Points: []draw.Vector2{center}, Thick: outer - inner, Color: c})
}

func (r *Recorder) Text(text string, pos draw.Vector2, fontSize, spacing float32, c draw.Color) {
	r.Calls = append(r.Calls, Call{Op: OpText, Points: []draw.Vector2{pos}, Thick: fontSize, Color: c, Text: text})
}

func (r *Recorder) BeginScissor(rect draw.Rectangle) {
	r.Calls = append(r.Calls, Call{Op: OpScissorStart, Rect: rect})
}

func (r *Recorder) EndScissor() {
	r.Calls = append(r.Calls, Call{Op: OpScissorEnd})
}

var _ draw.Drawer = (*Recorder)(nil)
