package dashboard

import (
	"testing"

	"github.com/fvall/claydash/internal/chart"
	"github.com/fvall/claydash/internal/draw"
	"github.com/fvall/claydash/internal/draw/drawtest"
	"github.com/fvall/claydash/internal/layout"
	"github.com/fvall/claydash/internal/typeface"
)

func loadFont(t *testing.T) *typeface.Typeface {
	t.Helper()
	f, err := typeface.Default()
	if err != nil {
		t.Fatalf("Default font failed: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestDrawRectangle(t *testing.T) {
	rec := &drawtest.Recorder{}
	box := draw.Rectangle{X: 10.7, Y: 20.2, Width: 100.9, Height: 40.5}

	drawRectangle(rec, box, layout.CornerRadius{}, draw.White)
	got := rec.Filter(drawtest.OpRectangle)
	if len(got) != 1 {
		t.Fatalf("expected 1 plain rectangle, got %d", len(got))
	}
	want := draw.Rectangle{X: 10, Y: 20, Width: 100, Height: 40}
	if got[0].Rect != want {
		t.Errorf("expected truncated %+v, got %+v", want, got[0].Rect)
	}

	rec.Reset()
	drawRectangle(rec, draw.Rectangle{Width: 100, Height: 40}, layout.RadiusAll(8), draw.White)
	rounded := rec.Filter(drawtest.OpRoundedRectangle)
	if len(rounded) != 1 {
		t.Fatalf("expected 1 rounded rectangle, got %d", len(rounded))
	}
	if rounded[0].Thick != 0.4 {
		t.Errorf("expected roundness 16/40, got %g", rounded[0].Thick)
	}
}

// TestDrawBorder verifies that sides stop short of rounded corners and
// that every rounded corner gets a ring as thick as its side.
func TestDrawBorder(t *testing.T) {
	rec := &drawtest.Recorder{}
	box := draw.Rectangle{X: 0, Y: 0, Width: 100, Height: 50}

	drawBorder(rec, box, layout.RadiusAll(8), layout.BorderAll(4), draw.Black)
	sides := rec.Filter(drawtest.OpRectangle)
	if len(sides) != 4 {
		t.Fatalf("expected 4 sides, got %d", len(sides))
	}
	wantSides := []draw.Rectangle{
		{X: 0, Y: 8, Width: 4, Height: 34},
		{X: 96, Y: 8, Width: 4, Height: 34},
		{X: 8, Y: 0, Width: 84, Height: 4},
		{X: 8, Y: 46, Width: 84, Height: 4},
	}
	for i, want := range wantSides {
		if sides[i].Rect != want {
			t.Errorf("side %d: expected %+v, got %+v", i, want, sides[i].Rect)
		}
	}

	rings := rec.Filter(drawtest.OpRing)
	if len(rings) != 4 {
		t.Fatalf("expected 4 corner rings, got %d", len(rings))
	}
	wantCentres := []draw.Vector2{{X: 8, Y: 8}, {X: 92, Y: 8}, {X: 8, Y: 42}, {X: 92, Y: 42}}
	for i, want := range wantCentres {
		if rings[i].Points[0] != want {
			t.Errorf("ring %d: expected centre %+v, got %+v", i, want, rings[i].Points[0])
		}
		if rings[i].Thick != 4 {
			t.Errorf("ring %d: expected thickness 4, got %g", i, rings[i].Thick)
		}
	}

	rec.Reset()
	drawBorder(rec, box, layout.CornerRadius{}, layout.BorderWidth{Left: 2}, draw.Black)
	if n := len(rec.Calls); n != 1 {
		t.Errorf("expected a single left side, got %d calls", n)
	}
}

func TestRenderLayoutCommands(t *testing.T) {
	a := newTestApp(t)
	font := loadFont(t)
	rec := &drawtest.Recorder{}
	box := draw.Rectangle{X: 0, Y: 0, Width: 80, Height: 30}

	cmds := []layout.RenderCommand{
		{Type: layout.CommandRectangle, Box: box, Color: draw.White},
		{Type: layout.CommandScissorStart, Box: draw.Rectangle{X: 0.4, Y: 0.6, Width: 80, Height: 30}},
		{Type: layout.CommandText, Box: draw.Rectangle{X: 5, Y: 6}, Text: "Reset", TextConfig: layout.TextConfig{FontSize: 36}},
		{Type: layout.CommandScissorEnd},
		{Type: layout.CommandBorder, Box: box, Border: layout.BorderAll(1)},
		{Type: layout.CommandType(99)},
	}
	RenderLayout(a, cmds, font, rec)

	wantOps := []drawtest.Op{
		drawtest.OpRectangle,
		drawtest.OpScissorStart,
		drawtest.OpText,
		drawtest.OpScissorEnd,
		drawtest.OpRectangle, drawtest.OpRectangle, drawtest.OpRectangle, drawtest.OpRectangle,
	}
	if len(rec.Calls) != len(wantOps) {
		t.Fatalf("expected %d calls, got %d", len(wantOps), len(rec.Calls))
	}
	for i, op := range wantOps {
		if rec.Calls[i].Op != op {
			t.Errorf("call %d: expected %s, got %s", i, op, rec.Calls[i].Op)
		}
	}
	if clip := rec.Calls[1].Rect; clip.X != 0 || clip.Y != 1 {
		t.Errorf("expected a rounded scissor origin, got %+v", clip)
	}
	text := rec.Calls[2]
	if text.Text != "Reset" || text.Thick != 36 || text.Points[0] != (draw.Vector2{X: 5, Y: 6}) {
		t.Errorf("unexpected text call %+v", text)
	}
}

func TestRenderLayoutSkipsTextWithoutFont(t *testing.T) {
	a := newTestApp(t)
	rec := &drawtest.Recorder{}
	cmds := []layout.RenderCommand{
		{Type: layout.CommandText, Text: "Exit", TextConfig: layout.TextConfig{FontSize: 36}},
		{Type: layout.CommandRectangle, Box: draw.Rectangle{Width: 10, Height: 10}},
	}
	RenderLayout(a, cmds, nil, rec)
	if rec.Count(drawtest.OpText) != 0 || rec.Count(drawtest.OpRectangle) != 1 {
		t.Errorf("expected only the rectangle, got %+v", rec.Calls)
	}
}

// TestRenderChart verifies that the custom element draws its background
// and then the chart at the current reveal percentage.
func TestRenderChart(t *testing.T) {
	a := newTestApp(t)
	a.Simulate()
	a.Chart.Kind = chart.Histogram
	a.Animation.Tick()
	for !a.Animation.Done() {
		a.Animation.Tick()
	}

	rec := &drawtest.Recorder{}
	box := draw.Rectangle{X: 100, Y: 100, Width: 800, Height: 500}
	RenderLayout(a, []layout.RenderCommand{
		{Type: layout.CommandCustom, Box: box, Color: Scheme.Chart.Background, Custom: a.Chart},
	}, nil, rec)

	if first := rec.Calls[0]; first.Op != drawtest.OpRectangle || first.Color != Scheme.Chart.Background {
		t.Errorf("expected the chart background first, got %+v", first)
	}
	bars := 0
	for _, c := range rec.Filter(drawtest.OpRectangle)[1:] {
		if c.Color == Scheme.Chart.Fill {
			bars++
		}
	}
	if bars != len(a.Chart.Counts) {
		t.Errorf("expected %d bars once revealed, got %d", len(a.Chart.Counts), bars)
	}

	rec.Reset()
	RenderLayout(a, []layout.RenderCommand{
		{Type: layout.CommandCustom, Box: box, Custom: "not a chart"},
	}, nil, rec)
	if len(rec.Calls) != 1 {
		t.Errorf("expected only the background for a foreign payload, got %d calls", len(rec.Calls))
	}
}

func TestRenderFullFrame(t *testing.T) {
	f := newFrameDriver(t, 2000)
	font := loadFont(t)
	f.app.SetFont(font)
	f.app.Simulate()

	cmds := f.frame(draw.Vector2{X: -1, Y: -1}, false)
	rec := &drawtest.Recorder{}
	RenderLayout(f.app, cmds, font, rec)

	texts := map[string]bool{}
	for _, c := range rec.Filter(drawtest.OpText) {
		texts[c.Text] = true
	}
	for _, want := range []string{"Reset", "Exit", "Clay Dashboard", "Simulate", "Histogram", "Uniform"} {
		if !texts[want] {
			t.Errorf("expected %q to be drawn", want)
		}
	}
	if rec.Count(drawtest.OpRing) == 0 {
		t.Error("expected the header border corners")
	}
}
