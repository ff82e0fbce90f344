package dashboard

import (
	"math"
	"testing"

	"github.com/fvall/claydash/internal/draw"
	"github.com/fvall/claydash/internal/layout"
	"github.com/fvall/claydash/internal/stats"
)

// frameDriver runs CreateLayout the way a host does, one frame per call.
type frameDriver struct {
	t   *testing.T
	ctx *layout.Context
	app *App
}

func newFrameDriver(t *testing.T, width float32) *frameDriver {
	t.Helper()
	a := newTestApp(t)
	a.Width = width
	ctx := layout.NewContext(layout.Dimensions{Width: a.Width, Height: a.Height})
	f := &frameDriver{t: t, ctx: ctx, app: a}
	f.frame(draw.Vector2{X: -1, Y: -1}, false)
	return f
}

func (f *frameDriver) frame(p draw.Vector2, down bool) []layout.RenderCommand {
	return CreateLayout(f.ctx, f.app, FrameOptions{Pointer: p, PointerDown: down})
}

// centre returns the middle of id's box from the last frame.
func (f *frameDriver) centre(id layout.ID) draw.Vector2 {
	f.t.Helper()
	box, ok := f.ctx.ElementData(id)
	if !ok {
		f.t.Fatalf("expected %q to be laid out", id.Name)
	}
	return draw.Vector2{X: box.X + box.Width/2, Y: box.Y + box.Height/2}
}

// click presses and releases over id.
func (f *frameDriver) click(id layout.ID) {
	p := f.centre(id)
	f.frame(p, true)
	f.frame(p, false)
}

func TestSidebarWidthRule(t *testing.T) {
	cases := []struct {
		width, want float32
	}{
		{1080, 0},
		{1400, 0},
		{1600, 240},
		{2000, 300},
		{4000, 300},
	}
	for _, tc := range cases {
		a := New(Options{Seed: 1, Width: tc.width})
		a.computeSidebarWidth()
		if math.Abs(float64(a.SidebarWidth-tc.want)) > 1e-3 {
			t.Errorf("width %g: expected sidebar %g, got %g", tc.width, tc.want, a.SidebarWidth)
		}
	}
}

func TestSidebarLayout(t *testing.T) {
	f := newFrameDriver(t, 2000)
	box, ok := f.ctx.ElementData(sidebarID)
	if !ok {
		t.Fatal("expected a sidebar on a wide window")
	}
	if box.Width != 300 {
		t.Errorf("expected sidebar 300 wide, got %g", box.Width)
	}
	title, _ := f.ctx.ElementData(menuTitleIDs[MenuChart])
	if !box.Contains(draw.Vector2{X: title.X + 1, Y: title.Y + 1}) {
		t.Error("expected the chart menu inside the sidebar")
	}

	narrow := newFrameDriver(t, 1080)
	if _, ok := narrow.ctx.ElementData(sidebarID); ok {
		t.Error("expected no sidebar on a narrow window")
	}
	header, _ := narrow.ctx.ElementData(headerID)
	title, _ = narrow.ctx.ElementData(menuTitleIDs[MenuChart])
	if !header.Contains(draw.Vector2{X: title.X + 1, Y: title.Y + 1}) {
		t.Error("expected the chart menu in the header on a narrow window")
	}
}

// TestMenusAreExclusive verifies that opening one menu closes the other
// and that a second press on a title closes its menu.
func TestMenusAreExclusive(t *testing.T) {
	f := newFrameDriver(t, 1080)
	chartMenu, distMenu := f.app.Menu(MenuChart), f.app.Menu(MenuDist)

	f.click(menuTitleIDs[MenuChart])
	if !chartMenu.Open || distMenu.Open {
		t.Fatal("expected only the chart menu open")
	}
	if _, ok := f.ctx.ElementData(menuIDs[MenuChart]); !ok {
		t.Error("expected the chart dropdown laid out")
	}

	f.click(menuTitleIDs[MenuDist])
	if chartMenu.Open || !distMenu.Open {
		t.Fatal("expected only the distribution menu open")
	}

	f.click(menuTitleIDs[MenuDist])
	if distMenu.Open {
		t.Error("expected the second press to close the menu")
	}
}

// TestOpenDropdownCapturesPointer verifies that a press landing on an open
// dropdown goes to the dropdown even where it covers another control.
func TestOpenDropdownCapturesPointer(t *testing.T) {
	f := newFrameDriver(t, 2000)
	f.click(menuTitleIDs[MenuChart])

	drop, _ := f.ctx.ElementData(menuIDs[MenuChart])
	dist := f.centre(menuTitleIDs[MenuDist])
	if !drop.Contains(dist) {
		t.Skip("dropdown does not cover the distribution menu at this size")
	}
	f.frame(dist, true)
	if f.app.Menu(MenuDist).Open {
		t.Error("expected the covered menu to stay closed")
	}
	if f.app.Menu(MenuChart).Open {
		t.Error("expected the dropdown entry press to close the chart menu")
	}
	if f.app.Menu(MenuChart).Title == "" {
		t.Error("expected the press to pick a chart kind")
	}
}

func TestBackgroundPressClosesMenus(t *testing.T) {
	f := newFrameDriver(t, 1080)
	f.click(menuTitleIDs[MenuDist])
	if !f.app.Menu(MenuDist).Open {
		t.Fatal("expected the distribution menu open")
	}

	box, _ := f.ctx.ElementData(chartID)
	f.frame(draw.Vector2{X: box.X + box.Width - 10, Y: box.Y + box.Height - 10}, true)
	if f.app.Menu(MenuDist).Open {
		t.Error("expected a press on the chart to close the menu")
	}
}

func TestDropdownSelection(t *testing.T) {
	f := newFrameDriver(t, 1080)
	j := &fakeJournal{}
	f.app.SetJournal(j)

	f.click(menuTitleIDs[MenuDist])
	f.click(layout.NewID("Normal"))
	if f.app.Generator.Kind() != stats.KindNormal {
		t.Fatalf("expected a normal generator, got %s", f.app.Generator.Kind())
	}
	if f.app.Menu(MenuDist).Open || f.app.Menu(MenuDist).Title != "Normal" {
		t.Errorf("expected a closed menu titled Normal, got %+v", f.app.Menu(MenuDist))
	}
	if len(j.runs) != 1 {
		t.Errorf("expected one journal record, got %d", len(j.runs))
	}

	f.click(menuTitleIDs[MenuChart])
	f.click(layout.NewID("Line"))
	if f.app.Chart == nil || f.app.Chart.Kind.String() != "Line" {
		t.Error("expected the chart switched to Line")
	}
}

func TestSimulateButton(t *testing.T) {
	f := newFrameDriver(t, 2000)
	f.click(simID)
	if f.app.Chart == nil {
		t.Fatal("expected a chart after pressing Simulate")
	}

	// The summary only appears once there is a chart.
	f.frame(draw.Vector2{X: -1, Y: -1}, false)
	if _, ok := f.ctx.ElementData(layout.NewID("Summary")); !ok {
		t.Error("expected the sample summary in the sidebar")
	}
}

// TestResetFiresOnPress verifies the edge each header button reacts to.
func TestResetFiresOnPress(t *testing.T) {
	f := newFrameDriver(t, 1080)
	f.app.Simulate()

	p := f.centre(resetID)
	f.frame(p, false)
	if f.app.Chart == nil {
		t.Fatal("expected hovering Reset to do nothing")
	}
	f.frame(p, true)
	if f.app.Chart != nil {
		t.Error("expected Reset to clear the chart on press")
	}
}

func TestExitFiresOnRelease(t *testing.T) {
	f := newFrameDriver(t, 1080)
	p := f.centre(exitID)

	f.frame(p, true)
	if f.app.ShouldClose {
		t.Fatal("expected no exit on press")
	}
	f.frame(p, true)
	if f.app.ShouldClose {
		t.Fatal("expected no exit while held")
	}
	f.frame(p, false)
	if !f.app.ShouldClose {
		t.Error("expected exit on release")
	}
}

func TestChartIsCustomCommand(t *testing.T) {
	f := newFrameDriver(t, 1080)
	count := func(cmds []layout.RenderCommand) int {
		n := 0
		for _, c := range cmds {
			if c.Type == layout.CommandCustom {
				n++
			}
		}
		return n
	}

	cmds := f.frame(draw.Vector2{X: -1, Y: -1}, false)
	if n := count(cmds); n != 0 {
		t.Errorf("expected no custom command without a chart, got %d", n)
	}
	f.app.Simulate()
	cmds = f.frame(draw.Vector2{X: -1, Y: -1}, false)
	if n := count(cmds); n != 1 {
		t.Errorf("expected one custom command with a chart, got %d", n)
	}
}
