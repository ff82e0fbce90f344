package tui

import (
	"strings"
	"testing"

	"github.com/fvall/claydash/internal/draw"
	"github.com/fvall/claydash/internal/layout"
)

var red = draw.RGB(255, 0, 0)

// TestRectangleDots verifies that a rectangle paints exactly the dots
// whose centres it covers.
func TestRectangleDots(t *testing.T) {
	c := NewCanvas(10, 5)
	c.Reset(draw.Black)
	// Columns 1-2 (x 8..24), dots 2-3 (y 16..32).
	c.Rectangle(draw.Rectangle{X: 8, Y: 16, Width: 16, Height: 16}, red)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := draw.Black
			if x >= 1 && x <= 2 && y >= 2 && y <= 3 {
				want = red
			}
			if got := c.Dot(x, y); got != want {
				t.Errorf("dot (%d,%d): expected %v, got %v", x, y, want, got)
			}
		}
	}
}

func TestScissorLimitsDots(t *testing.T) {
	c := NewCanvas(10, 5)
	c.Reset(draw.Black)
	c.BeginScissor(draw.Rectangle{X: 0, Y: 0, Width: 40, Height: 40})
	c.Rectangle(c.Bounds(), red)
	c.EndScissor()

	if c.Dot(2, 2) != red {
		t.Error("expected the clipped region painted")
	}
	if c.Dot(7, 2) != draw.Black {
		t.Error("expected outside the scissor untouched")
	}
}

func TestThinPrimitivesStayVisible(t *testing.T) {
	c := NewCanvas(20, 10)
	c.Reset(draw.Black)

	c.Line(draw.Vector2{X: 0, Y: 50}, draw.Vector2{X: 160, Y: 50}, 2, red)
	row := 50 / dotHeight
	for x := 0; x < 20; x++ {
		if c.Dot(x, row) != red {
			t.Fatalf("expected a 2px line to cover dot (%d,%d)", x, row)
		}
	}

	c.Reset(draw.Black)
	c.RectangleLines(draw.Rectangle{X: 0, Y: 0, Width: 160, Height: 160}, 1, red)
	if c.Dot(0, 10) != red || c.Dot(19, 10) != red || c.Dot(10, 0) != red {
		t.Error("expected the outline on every side")
	}
	if c.Dot(10, 10) != draw.Black {
		t.Error("expected the outline interior clear")
	}
}

func TestTriangleAndRing(t *testing.T) {
	c := NewCanvas(20, 10)
	c.Reset(draw.Black)
	c.Triangle(draw.Vector2{X: 0, Y: 0}, draw.Vector2{X: 160, Y: 0}, draw.Vector2{X: 0, Y: 160}, red)
	if c.Dot(1, 1) != red {
		t.Error("expected the triangle near its right angle")
	}
	if c.Dot(18, 18) != draw.Black {
		t.Error("expected the far corner clear")
	}

	c.Reset(draw.Black)
	c.Ring(draw.Vector2{X: 80, Y: 80}, 20, 60, 0, 360, 10, red)
	if c.Dot(10, 10) != draw.Black {
		t.Error("expected the ring hole clear")
	}
	if c.Dot(15, 10) != red {
		t.Error("expected the ring band painted")
	}
}

func TestTextCells(t *testing.T) {
	c := NewCanvas(20, 4)
	c.Reset(draw.Black)
	c.Text("Exit", draw.Vector2{X: 16, Y: 16}, 36, 0, draw.White)

	got := string([]rune{c.TextAt(2, 1), c.TextAt(3, 1), c.TextAt(4, 1), c.TextAt(5, 1)})
	if got != "Exit" {
		t.Errorf("expected Exit at row 1 col 2, got %q", got)
	}

	c.BeginScissor(draw.Rectangle{X: 0, Y: 0, Width: 24, Height: 64})
	c.Text("Reset", draw.Vector2{X: 0, Y: 32}, 36, 0, draw.White)
	c.EndScissor()
	if c.TextAt(2, 2) != 's' || c.TextAt(3, 2) != 0 {
		t.Error("expected text clipped at the scissor")
	}
}

func TestStringShape(t *testing.T) {
	c := NewCanvas(12, 3)
	c.Reset(draw.Black)
	c.Text("Hi", draw.Vector2{X: 0, Y: 0}, 16, 0, draw.White)

	out := c.String()
	if lines := strings.Split(out, "\n"); len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(out, "Hi") {
		t.Error("expected printed text in the output")
	}
}

func TestMeasureCells(t *testing.T) {
	d := MeasureCells("Simulate", layout.TextConfig{FontSize: 36})
	if d.Width != 8*CellWidth || d.Height != CellHeight {
		t.Errorf("expected %dx%d, got %gx%g", 8*CellWidth, CellHeight, d.Width, d.Height)
	}
}
