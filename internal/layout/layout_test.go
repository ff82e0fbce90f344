package layout

import (
	"testing"

	"github.com/fvall/claydash/internal/draw"
)

func fixedMeasure(text string, cfg TextConfig) Dimensions {
	return Dimensions{Width: float32(len(text)) * 10, Height: cfg.FontSize}
}

func newTestContext(w, h float32) *Context {
	c := NewContext(Dimensions{Width: w, Height: h})
	c.SetMeasureTextFunction(fixedMeasure)
	return c
}

// TestGrowSplitsSpace verifies that growable siblings share the leftover
// space after fixed siblings and gaps.
func TestGrowSplitsSpace(t *testing.T) {
	c := newTestContext(200, 100)
	row := NewID("Row")
	left, mid, right := NewID("Left"), NewID("Mid"), NewID("Right")

	c.BeginLayout()
	c.Element(Declaration{ID: row, Layout: Config{Sizing: Expand, ChildGap: 10}}, func() {
		c.Element(Declaration{ID: left, Layout: Config{Sizing: Sizing{Width: Fixed(30), Height: Grow(0)}}}, nil)
		c.Element(Declaration{ID: mid, Layout: Config{Sizing: Expand}}, nil)
		c.Element(Declaration{ID: right, Layout: Config{Sizing: Expand}}, nil)
	})
	c.EndLayout()

	box, ok := c.ElementData(mid)
	if !ok {
		t.Fatal("expected Mid to have a box")
	}
	if box.Width != 75 || box.Height != 100 {
		t.Errorf("expected Mid 75x100, got %gx%g", box.Width, box.Height)
	}
	rbox, _ := c.ElementData(right)
	if rbox.X != 125 {
		t.Errorf("expected Right at x=125, got %g", rbox.X)
	}
}

// TestGrowRespectsMinimum verifies a grow minimum is kept even when the
// siblings would otherwise take the space.
func TestGrowRespectsMinimum(t *testing.T) {
	c := newTestContext(300, 100)
	side := NewID("Side")

	c.BeginLayout()
	c.Element(Declaration{Layout: Config{Sizing: Expand}}, func() {
		c.Element(Declaration{ID: side, Layout: Config{Sizing: Sizing{Width: Grow(220), Height: Grow(0)}}}, nil)
		c.Element(Declaration{Layout: Config{Sizing: Expand}}, nil)
	})
	c.EndLayout()

	box, _ := c.ElementData(side)
	if box.Width < 220 {
		t.Errorf("expected sidebar at least 220 wide, got %g", box.Width)
	}
}

// TestFitWrapsText verifies fit containers size around padded text.
func TestFitWrapsText(t *testing.T) {
	c := newTestContext(500, 500)
	btn := NewID("Button")

	c.BeginLayout()
	c.Element(Declaration{ID: btn, Layout: Config{Padding: Padding{Left: 16, Right: 16, Top: 8, Bottom: 8}}}, func() {
		c.Text("Reset", TextConfig{FontSize: 20})
	})
	cmds := c.EndLayout()

	box, _ := c.ElementData(btn)
	if box.Width != 82 || box.Height != 36 {
		t.Errorf("expected 82x36, got %gx%g", box.Width, box.Height)
	}

	var text *RenderCommand
	for i := range cmds {
		if cmds[i].Type == CommandText {
			text = &cmds[i]
		}
	}
	if text == nil {
		t.Fatal("expected a text command")
	}
	if text.Box.X != 16 || text.Box.Y != 8 {
		t.Errorf("expected text at (16,8), got (%g,%g)", text.Box.X, text.Box.Y)
	}
}

// TestCenterAlignment verifies children are centred in leftover space.
func TestCenterAlignment(t *testing.T) {
	c := newTestContext(100, 100)
	kid := NewID("Kid")

	c.BeginLayout()
	c.Element(Declaration{Layout: Config{Sizing: Expand, ChildAlignment: ChildAlignment{X: AlignCenterX, Y: AlignCenterY}}}, func() {
		c.Element(Declaration{ID: kid, Layout: Config{Sizing: Sizing{Width: Fixed(20), Height: Fixed(10)}}}, nil)
	})
	c.EndLayout()

	box, _ := c.ElementData(kid)
	if box.X != 40 || box.Y != 45 {
		t.Errorf("expected kid at (40,45), got (%g,%g)", box.X, box.Y)
	}
}

// TestFloatingAttachesBelowParent verifies LeftTop of the floating element
// lands on LeftBottom of its parent and that it paints after the tree.
func TestFloatingAttachesBelowParent(t *testing.T) {
	c := newTestContext(400, 400)
	title, menu := NewID("Title"), NewID("Menu")

	c.BeginLayout()
	c.Element(Declaration{Layout: Config{Sizing: Expand, Padding: PaddingAll(10)}}, func() {
		c.Element(Declaration{ID: title, Background: draw.White, Layout: Config{Sizing: Sizing{Width: Fixed(100), Height: Fixed(40)}}}, func() {
			c.Element(Declaration{
				ID:         menu,
				Background: draw.Black,
				Floating:   Floating{AttachTo: AttachParent, Element: LeftTop, Parent: LeftBottom},
				Layout:     Config{Sizing: Sizing{Width: Fixed(200), Height: Fixed(90)}},
			}, nil)
		})
		c.Element(Declaration{ID: NewID("After"), Background: draw.White, Layout: Config{Sizing: Expand}}, nil)
	})
	cmds := c.EndLayout()

	box, _ := c.ElementData(menu)
	if box.X != 10 || box.Y != 50 || box.Width != 200 {
		t.Errorf("expected menu at (10,50) width 200, got %+v", box)
	}
	tbox, _ := c.ElementData(title)
	if tbox.Width != 100 {
		t.Errorf("floating child must not widen its parent, got %g", tbox.Width)
	}
	if last := cmds[len(cmds)-1]; last.ID != menu {
		t.Errorf("expected floating menu to paint last, got %q", last.ID.Name)
	}
}

// TestPointerEdges verifies the four-state pointer derivation.
func TestPointerEdges(t *testing.T) {
	c := newTestContext(10, 10)
	steps := []struct {
		down bool
		want PointerState
	}{
		{false, Released},
		{true, PressedThisFrame},
		{true, Pressed},
		{false, ReleasedThisFrame},
		{false, Released},
		{true, PressedThisFrame},
	}
	for i, s := range steps {
		c.SetPointerState(draw.Vector2{}, s.down)
		if got := c.Pointer().State; got != s.want {
			t.Errorf("step %d: expected %s, got %s", i, s.want, got)
		}
	}
}

// TestHoverCallbacksRunUnconditionally verifies every registered callback
// runs once per frame in declaration order with its own ID and user data,
// and that boxes are final when it runs.
func TestHoverCallbacksRunUnconditionally(t *testing.T) {
	c := newTestContext(100, 100)
	c.SetPointerState(draw.Vector2{X: 500, Y: 500}, true)

	a, b := NewID("A"), NewID("B")
	type call struct {
		id   ID
		data uint64
		box  draw.Rectangle
	}
	var calls []call
	record := func(id ID, p PointerData, data uint64) {
		box, _ := c.ElementData(id)
		calls = append(calls, call{id, data, box})
	}

	c.BeginLayout()
	c.Element(Declaration{ID: a, Layout: Config{Sizing: Expand}}, func() {
		c.OnHover(record, 7)
		c.Element(Declaration{ID: b, Layout: Config{Sizing: Expand}}, func() {
			c.OnHover(record, 9)
		})
	})
	c.EndLayout()

	if len(calls) != 2 {
		t.Fatalf("expected 2 callbacks, got %d", len(calls))
	}
	if calls[0].id != a || calls[0].data != 7 || calls[1].id != b || calls[1].data != 9 {
		t.Errorf("unexpected callback order/data: %+v", calls)
	}
	if calls[1].box.Width != 100 {
		t.Errorf("expected final box during callback, got %+v", calls[1].box)
	}
}

// TestPointerOverUsesLastLayout verifies hover queries during declaration
// see the boxes of the previous frame.
func TestPointerOverUsesLastLayout(t *testing.T) {
	c := newTestContext(100, 100)
	id := NewID("Box")
	declare := func() {
		c.BeginLayout()
		c.Element(Declaration{ID: id, Layout: Config{Sizing: Sizing{Width: Fixed(50), Height: Fixed(50)}}}, nil)
		c.EndLayout()
	}

	c.SetPointerState(draw.Vector2{X: 10, Y: 10}, false)
	if c.PointerOver(id) {
		t.Error("no box should exist before the first layout")
	}
	declare()
	if !c.PointerOver(id) {
		t.Error("expected pointer over box after layout")
	}
	c.SetPointerState(draw.Vector2{X: 80, Y: 80}, false)
	if c.PointerOver(id) {
		t.Error("expected pointer outside box")
	}
}

// TestFloatingCapturesPointer verifies that a floating element hides the
// elements it covers from PointerOver, including inside hover callbacks.
func TestFloatingCapturesPointer(t *testing.T) {
	c := newTestContext(400, 400)
	title, menu, item, below := NewID("Title"), NewID("Menu"), NewID("Item"), NewID("Below")
	var belowHovered, itemHovered bool

	c.SetPointerState(draw.Vector2{X: 20, Y: 70}, true)
	c.BeginLayout()
	c.Element(Declaration{Layout: Config{Sizing: Expand, Padding: PaddingAll(10), Direction: TopToBottom}}, func() {
		c.Element(Declaration{ID: title, Layout: Config{Sizing: Sizing{Width: Fixed(100), Height: Fixed(40)}}}, func() {
			c.Element(Declaration{
				ID:       menu,
				Floating: Floating{AttachTo: AttachParent, Element: LeftTop, Parent: LeftBottom},
				Layout:   Config{Sizing: Sizing{Width: Fixed(200), Height: Fixed(90)}},
			}, func() {
				c.Element(Declaration{ID: item, Layout: Config{Sizing: Expand}}, func() {
					c.OnHover(func(id ID, p PointerData, _ uint64) { itemHovered = c.PointerOver(id) }, 0)
				})
			})
		})
		c.Element(Declaration{ID: below, Layout: Config{Sizing: Expand}}, func() {
			c.OnHover(func(id ID, p PointerData, _ uint64) { belowHovered = c.PointerOver(id) }, 0)
		})
	})
	c.EndLayout()

	if !itemHovered {
		t.Error("expected the floating item to be hovered")
	}
	if belowHovered {
		t.Error("expected the covered element not to be hovered")
	}
	box, _ := c.ElementData(below)
	if !box.Contains(c.Pointer().Position) {
		t.Error("expected the pointer to lie inside the covered box")
	}

	c.SetPointerState(draw.Vector2{X: 350, Y: 350}, false)
	if !c.PointerOver(below) {
		t.Error("expected capture to end once the pointer leaves the floating box")
	}
}

// TestCommandOrder verifies background, clip, children, border ordering
// and custom payload passthrough.
func TestCommandOrder(t *testing.T) {
	c := newTestContext(100, 100)
	payload := "chart"

	c.BeginLayout()
	c.Element(Declaration{
		ID:         NewID("Outer"),
		Background: draw.White,
		Clip:       true,
		Border:     Border{Color: draw.Black, Width: BorderAll(2)},
		Layout:     Config{Sizing: Expand},
	}, func() {
		c.Element(Declaration{ID: NewID("Chart"), Background: draw.Black, Custom: payload, Layout: Config{Sizing: Expand}}, nil)
	})
	cmds := c.EndLayout()

	want := []CommandType{CommandRectangle, CommandScissorStart, CommandCustom, CommandScissorEnd, CommandBorder}
	if len(cmds) != len(want) {
		t.Fatalf("expected %d commands, got %d", len(want), len(cmds))
	}
	for i := range want {
		if cmds[i].Type != want[i] {
			t.Errorf("command %d: expected %s, got %s", i, want[i], cmds[i].Type)
		}
	}
	if cmds[2].Custom != payload {
		t.Errorf("expected custom payload %q, got %v", payload, cmds[2].Custom)
	}
}

// TestDebugOutlines verifies debug mode appends one outline per element.
func TestDebugOutlines(t *testing.T) {
	c := newTestContext(100, 100)
	c.SetDebugMode(true)

	c.BeginLayout()
	c.Element(Declaration{Layout: Config{Sizing: Expand}}, func() {
		c.Element(Declaration{Layout: Config{Sizing: Expand}}, nil)
		c.Text("x", TextConfig{FontSize: 10})
	})
	cmds := c.EndLayout()

	outlines := 0
	for _, cmd := range cmds {
		if cmd.Type == CommandBorder && cmd.Color == draw.Magenta {
			outlines++
		}
	}
	if outlines != 2 {
		t.Errorf("expected 2 outlines, got %d", outlines)
	}
}
