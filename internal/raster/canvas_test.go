package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/fvall/claydash/internal/dashboard"
	"github.com/fvall/claydash/internal/draw"
	"github.com/fvall/claydash/internal/typeface"
)

var red = draw.RGB(255, 0, 0)

func at(c *Canvas, x, y int) color.RGBA {
	return c.Image().RGBAAt(x, y)
}

func TestRectangleFill(t *testing.T) {
	c := New(20, 20, nil)
	c.Rectangle(draw.Rectangle{X: 5, Y: 5, Width: 10, Height: 4}, red)

	if got := at(c, 6, 6); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("expected red inside, got %v", got)
	}
	if got := at(c, 6, 10); got.A != 0 {
		t.Errorf("expected nothing below the rectangle, got %v", got)
	}
}

func TestScissorClips(t *testing.T) {
	c := New(20, 20, nil)
	c.BeginScissor(draw.Rectangle{X: 0, Y: 0, Width: 10, Height: 10})
	c.Rectangle(draw.Rectangle{X: 0, Y: 0, Width: 20, Height: 20}, red)
	c.EndScissor()

	if at(c, 5, 5).A == 0 {
		t.Error("expected the inside of the scissor to be painted")
	}
	if at(c, 15, 15).A != 0 {
		t.Error("expected the outside of the scissor to stay clear")
	}

	c.EndScissor() // unbalanced end is logged, not fatal
	c.Rectangle(draw.Rectangle{X: 15, Y: 15, Width: 2, Height: 2}, red)
	if at(c, 15, 15).A == 0 {
		t.Error("expected drawing to be unclipped after EndScissor")
	}
}

// TestPolygons verifies the vector-filled primitives cover their interior
// and leave the outside alone.
func TestPolygons(t *testing.T) {
	c := New(100, 100, nil)
	c.Triangle(draw.Vector2{X: 10, Y: 10}, draw.Vector2{X: 40, Y: 10}, draw.Vector2{X: 10, Y: 40}, red)
	if at(c, 15, 15).A == 0 {
		t.Error("expected the triangle interior painted")
	}
	if at(c, 38, 38).A != 0 {
		t.Error("expected the far side of the hypotenuse clear")
	}

	c.Line(draw.Vector2{X: 50, Y: 50}, draw.Vector2{X: 90, Y: 50}, 4, red)
	if at(c, 70, 50).A == 0 || at(c, 70, 56).A != 0 {
		t.Error("expected a 4px horizontal line at y=50")
	}

	c.Ring(draw.Vector2{X: 50, Y: 80}, 5, 15, 0, 360, 32, red)
	if at(c, 50, 80).A != 0 {
		t.Error("expected the ring centre clear")
	}
	if at(c, 60, 80).A == 0 {
		t.Error("expected the ring band painted")
	}
}

func TestRoundedRectangleCorners(t *testing.T) {
	c := New(50, 50, nil)
	c.RoundedRectangle(draw.Rectangle{X: 0, Y: 0, Width: 50, Height: 50}, 1, 8, red)
	if at(c, 25, 25).A == 0 {
		t.Error("expected the centre painted")
	}
	if at(c, 0, 0).A != 0 {
		t.Error("expected the corner cut away")
	}

	c = New(50, 50, nil)
	c.RoundedRectangle(draw.Rectangle{X: 0, Y: 0, Width: 50, Height: 50}, 0, 8, red)
	if at(c, 0, 0).A == 0 {
		t.Error("expected zero roundness to paint the corner")
	}
}

func TestRectangleLines(t *testing.T) {
	c := New(30, 30, nil)
	c.RectangleLines(draw.Rectangle{X: 5, Y: 5, Width: 20, Height: 20}, 2, red)
	if at(c, 5, 15).A == 0 || at(c, 24, 15).A == 0 {
		t.Error("expected both sides stroked")
	}
	if at(c, 15, 15).A != 0 {
		t.Error("expected the interior clear")
	}
}

func TestTextNeedsFont(t *testing.T) {
	c := New(200, 60, nil)
	c.Text("Simulate", draw.Vector2{X: 5, Y: 5}, 24, 0, draw.White)
	if !blank(c) {
		t.Error("expected no text without a font")
	}

	f, err := typeface.Default()
	if err != nil {
		t.Fatalf("Default font failed: %v", err)
	}
	defer f.Close()
	c = New(200, 60, f)
	c.Text("Simulate", draw.Vector2{X: 5, Y: 5}, 24, 1, draw.White)
	if blank(c) {
		t.Error("expected text to paint pixels")
	}
}

func blank(c *Canvas) bool {
	for _, v := range c.Image().Pix {
		if v != 0 {
			return false
		}
	}
	return true
}

func TestSnapshotPNG(t *testing.T) {
	f, err := typeface.Default()
	if err != nil {
		t.Fatalf("Default font failed: %v", err)
	}
	defer f.Close()

	app := dashboard.New(dashboard.Options{Width: 640, Height: 400, Seed: 11, Samples: 5000, Font: f})
	app.Simulate()
	c := Snapshot(app, f, false)

	bg := dashboard.Scheme.Chart.Background
	found := false
	for y := 0; y < 400 && !found; y += 4 {
		for x := 0; x < 640; x += 4 {
			if got := at(c, x, y); got.R == bg.R && got.G == bg.G && got.B == bg.B {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("expected the chart background in the snapshot")
	}

	var buf bytes.Buffer
	if err := c.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 640 || b.Dy() != 400 {
		t.Errorf("expected 640x400, got %v", b)
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
}
