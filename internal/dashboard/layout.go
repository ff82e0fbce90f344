package dashboard

import (
	"github.com/fvall/claydash/internal/draw"
	"github.com/fvall/claydash/internal/layout"
	"github.com/fvall/claydash/internal/stats"
	"github.com/fvall/claydash/internal/typeface"
)

// Sidebar width rule.
const (
	MinSidebarWidth   = 220
	MaxSidebarWidth   = 300
	SidebarSpaceRatio = 0.15
)

// Element ids the callbacks hit-test against.
var (
	canvasID  = layout.NewID("Canvas")
	headerID  = layout.NewID("HeaderBar")
	contentID = layout.NewID("Content")
	sidebarID = layout.NewID("Sidebar")
	chartID   = layout.NewID("Main")
	resetID   = layout.NewID("Reset")
	exitID    = layout.NewID("Exit")
	titleID   = layout.NewID("MenuTitle")
	simID     = layout.NewID("SimulateID")

	menuTitleIDs = [menuCount]layout.ID{
		MenuChart: layout.NewID("ChartMenuTitle"),
		MenuDist:  layout.NewID("DistMenuTitle"),
	}
	menuIDs = [menuCount]layout.ID{
		MenuChart: layout.NewID("ChartMenu"),
		MenuDist:  layout.NewID("DistMenu"),
	}
)

func dropdownID(menu int) layout.ID { return menuIDs[menu] }

// FrameOptions carries the per-frame input from the host.
type FrameOptions struct {
	// Debug turns on element outlines and the chart guide line.
	Debug       bool
	Pointer     draw.Vector2
	PointerDown bool
}

// CreateLayoutFunc and RenderLayoutFunc are the two host entry points.
// Hosts hold them as values so either can be swapped on its own.
type (
	CreateLayoutFunc func(ctx *layout.Context, app *App, opts FrameOptions) []layout.RenderCommand
	RenderLayoutFunc func(app *App, cmds []layout.RenderCommand, font *typeface.Typeface, d draw.Drawer)
)

var (
	_ CreateLayoutFunc = CreateLayout
	_ RenderLayoutFunc = RenderLayout
)

// CreateLayout declares this frame's UI from app, runs the pointer
// callbacks and returns the render commands.
func CreateLayout(ctx *layout.Context, app *App, opts FrameOptions) []layout.RenderCommand {
	app.ctx = ctx
	app.debug = opts.Debug
	app.Animation.Tick()

	ctx.SetDebugMode(opts.Debug)
	ctx.SetLayoutDimensions(layout.Dimensions{Width: app.Width, Height: app.Height})
	if app.measure != nil {
		ctx.SetMeasureTextFunction(app.measure)
	}
	ctx.SetPointerState(opts.Pointer, opts.PointerDown)

	app.Init()
	app.computeSidebarWidth()

	s := &Scheme
	appHandle := encodeHandle(TagApp, 0)

	ctx.BeginLayout()
	ctx.Element(layout.Declaration{
		ID:         canvasID,
		Background: s.Canvas.Background,
		Layout: layout.Config{
			Sizing:    layout.Expand,
			Padding:   layout.PaddingAll(s.Canvas.Padding),
			ChildGap:  s.Canvas.ChildGap,
			Direction: layout.TopToBottom,
		},
	}, func() {
		ctx.OnHover(app.handleCanvasClick, appHandle)
		app.header(ctx)
		ctx.Element(layout.Declaration{
			ID:     contentID,
			Layout: layout.Config{Sizing: layout.Expand, ChildGap: s.Content.ChildGap},
		}, func() {
			app.sidebar(ctx)
			app.chartArea(ctx)
		})
	})
	return ctx.EndLayout()
}

// computeSidebarWidth hides the sidebar on narrow windows; the menus then
// move to the header.
func (a *App) computeSidebarWidth() {
	a.SidebarWidth = min(a.Width*SidebarSpaceRatio, MaxSidebarWidth)
	if a.SidebarWidth < MinSidebarWidth {
		a.SidebarWidth = 0
	}
}

func (a *App) sidebarVisible() bool { return a.SidebarWidth >= stats.Epsilon }

// ────────────────────────────────────────────────────────────
// Header
// ────────────────────────────────────────────────────────────

func (a *App) header(ctx *layout.Context) {
	s := &Scheme
	appHandle := encodeHandle(TagApp, 0)

	ctx.Element(layout.Declaration{
		ID:           headerID,
		Background:   s.Header.Background,
		CornerRadius: layout.RadiusAll(8),
		Border:       layout.Border{Color: s.Header.Border, Width: layout.BorderAll(s.Header.BorderWidth)},
		Layout: layout.Config{
			Sizing:         layout.Sizing{Width: layout.Grow(0), Height: layout.Fixed(s.Header.Height)},
			Padding:        layout.Padding{Top: 3, Bottom: 3},
			ChildGap:       s.Header.ChildGap,
			ChildAlignment: layout.ChildAlignment{Y: layout.AlignCenterY},
		},
	}, func() {
		ctx.OnHover(a.handleBackgroundClick, appHandle)
		a.headerButton(ctx, resetID, a.handleReset)
		if !a.sidebarVisible() {
			txt := a.headerText()
			a.menu(ctx, MenuChart, txt, layout.AlignCenterX, false)
			a.menu(ctx, MenuDist, txt, layout.AlignCenterX, false)
			a.simulateButton(ctx, txt, layout.AlignCenterX, false)
		}
		ctx.Element(layout.Declaration{Layout: layout.Config{Sizing: layout.Expand}}, nil)
		a.headerButton(ctx, exitID, a.handleExit)
	})
}

func (a *App) headerText() layout.TextConfig {
	return layout.TextConfig{FontSize: Scheme.Header.FontSize, Color: draw.White}
}

func (a *App) headerButton(ctx *layout.Context, id layout.ID, fn layout.HoverFunc) {
	s := &Scheme
	bg := s.Header.Button.Default
	if ctx.PointerOver(id) {
		bg = s.Header.Button.Hover
	}
	ctx.Element(layout.Declaration{
		ID:           id,
		Background:   bg,
		CornerRadius: layout.RadiusAll(5),
		Layout: layout.Config{
			Sizing:         layout.Sizing{Width: layout.Fit(0, 0), Height: layout.Grow(0)},
			Padding:        layout.Padding{Left: 16, Right: 16, Top: 8, Bottom: 8},
			ChildAlignment: layout.ChildAlignment{X: layout.AlignCenterX, Y: layout.AlignCenterY},
		},
	}, func() {
		ctx.Text(id.Name, a.headerText())
		ctx.OnHover(fn, encodeHandle(TagApp, 0))
	})
}

// ────────────────────────────────────────────────────────────
// Sidebar
// ────────────────────────────────────────────────────────────

func (a *App) sidebar(ctx *layout.Context) {
	if !a.sidebarVisible() {
		return
	}
	s := &Scheme
	txt := layout.TextConfig{FontSize: s.Sidebar.FontSize, Color: draw.White}

	ctx.Element(layout.Declaration{
		ID:         sidebarID,
		Background: s.Sidebar.Background,
		Layout: layout.Config{
			Sizing: layout.Sizing{
				Width:  layout.SizingAxis{Type: layout.SizingGrow, Min: a.SidebarWidth, Max: a.SidebarWidth},
				Height: layout.Grow(0),
			},
			Padding:   layout.PaddingAll(10),
			ChildGap:  8,
			Direction: layout.TopToBottom,
		},
	}, func() {
		ctx.Element(a.component(titleID, layout.AlignLeft, true, false), func() {
			ctx.Text("Clay Dashboard", txt)
		})
		// separator
		ctx.Element(layout.Declaration{
			Background: s.Sidebar.Line,
			Layout:     layout.Config{Sizing: layout.Sizing{Width: layout.Grow(0), Height: layout.FixedRange(4, 10)}},
		}, nil)
		a.menu(ctx, MenuChart, txt, layout.AlignLeft, true)
		a.menu(ctx, MenuDist, txt, layout.AlignLeft, true)
		a.simulateButton(ctx, txt, layout.AlignLeft, true)
		if a.Chart != nil && a.Chart.Summary.Count > 0 {
			a.summary(ctx)
		}
		ctx.OnHover(a.handleBackgroundClick, encodeHandle(TagApp, 0))
	})
}

// component is the button shape shared by menu titles, the sidebar title
// and Simulate. Inside the sidebar it stretches across; in the header it
// wraps its text.
func (a *App) component(id layout.ID, align layout.AlignX, withinSidebar, hovered bool) layout.Declaration {
	s := &Scheme
	decl := layout.Declaration{
		ID: id,
		Layout: layout.Config{
			ChildAlignment: layout.ChildAlignment{X: align, Y: layout.AlignCenterY},
		},
	}
	if withinSidebar {
		decl.Layout.Sizing = layout.Sizing{Width: layout.Grow(0), Height: layout.Fit(0, 0)}
		decl.Layout.Padding = layout.PaddingAll(16)
		decl.Background = s.Sidebar.Button.Default
		decl.CornerRadius = layout.RadiusAll(8)
		if hovered {
			decl.Background = s.Sidebar.Button.Hover
		}
	} else {
		decl.Layout.Sizing = layout.Sizing{Width: layout.Fit(0, 0), Height: layout.Grow(0)}
		decl.Layout.Padding = layout.Padding{Left: 16, Right: 16, Top: 8, Bottom: 8}
		decl.Background = s.Header.Button.Default
		decl.CornerRadius = layout.RadiusAll(5)
		if hovered {
			decl.Background = s.Sidebar.Button.Hover
		}
	}
	return decl
}

// menu declares a menu button and, while open, its floating dropdown.
func (a *App) menu(ctx *layout.Context, idx int, txt layout.TextConfig, align layout.AlignX, withinSidebar bool) {
	m := &a.menus[idx]
	id := menuTitleIDs[idx]
	m.ElementID = id

	itemHandler := a.handleChartItemClick
	if idx == MenuDist {
		itemHandler = a.handleDistItemClick
	}

	ctx.Element(a.component(id, align, withinSidebar, ctx.PointerOver(id)), func() {
		ctx.OnHover(a.handleMenuClick, encodeHandle(TagMenu, idx))
		ctx.Text(m.Label(a), txt)
		if !m.Open {
			return
		}
		ctx.Element(layout.Declaration{
			ID: menuIDs[idx],
			Floating: layout.Floating{
				AttachTo: layout.AttachParent,
				Element:  layout.LeftTop,
				Parent:   layout.LeftBottom,
			},
			Layout: layout.Config{Padding: layout.Padding{Top: 8, Bottom: 8}},
		}, func() {
			ctx.Element(layout.Declaration{
				Background:   Scheme.Sidebar.Menu.Default,
				CornerRadius: layout.RadiusAll(8),
				Layout: layout.Config{
					Direction: layout.TopToBottom,
					Sizing:    layout.Sizing{Width: layout.Fixed(200)},
				},
			}, func() {
				for _, d := range m.Items {
					a.dropdownItem(ctx, d, itemHandler)
				}
			})
		})
	})
}

func (a *App) dropdownItem(ctx *layout.Context, idx int, fn layout.HoverFunc) {
	d := &a.dropdowns[idx]
	id := layout.NewID(d.Label)
	decl := layout.Declaration{
		ID:           id,
		CornerRadius: layout.RadiusAll(8),
		Layout: layout.Config{
			Sizing:  layout.Sizing{Width: layout.Grow(0), Height: layout.Fixed(48)},
			Padding: layout.PaddingAll(16),
		},
	}
	if ctx.PointerOver(id) {
		decl.Border = layout.Border{Color: Scheme.Sidebar.Menu.Hover, Width: layout.BorderAll(4)}
	}
	ctx.Element(decl, func() {
		ctx.OnHover(fn, encodeHandle(TagDropdown, idx))
		ctx.Text(d.Label, layout.TextConfig{FontSize: Scheme.Font.ItemSize, Color: draw.White})
	})
}

func (a *App) simulateButton(ctx *layout.Context, txt layout.TextConfig, align layout.AlignX, withinSidebar bool) {
	ctx.Element(a.component(simID, align, withinSidebar, ctx.PointerOver(simID)), func() {
		ctx.Text("Simulate", txt)
		ctx.OnHover(a.handleSimulate, encodeHandle(TagApp, 0))
	})
}

// summary lists the sample moments of the current chart under the menus.
func (a *App) summary(ctx *layout.Context) {
	s := a.Chart.Summary
	txt := layout.TextConfig{FontSize: Scheme.Font.ItemSize * 0.75, Color: VeryDarkSteelBlue}
	ctx.Element(layout.Declaration{
		ID: layout.NewID("Summary"),
		Layout: layout.Config{
			Sizing:    layout.Sizing{Width: layout.Grow(0)},
			Padding:   layout.Padding{Left: 16, Right: 16, Top: 8},
			ChildGap:  4,
			Direction: layout.TopToBottom,
		},
	}, func() {
		for _, line := range summaryLines(a.Generator.Seed(), s) {
			ctx.Text(line, txt)
		}
	})
}

// ────────────────────────────────────────────────────────────
// Chart
// ────────────────────────────────────────────────────────────

func (a *App) chartArea(ctx *layout.Context) {
	s := &Scheme
	decl := layout.Declaration{
		ID:         chartID,
		Background: s.Chart.Background,
		Layout: layout.Config{
			Sizing:    layout.Expand,
			Padding:   layout.PaddingAll(s.Chart.Padding),
			ChildGap:  s.Chart.ChildGap,
			Direction: layout.TopToBottom,
		},
	}
	if a.Chart != nil {
		decl.Custom = a.Chart
	}
	ctx.Element(decl, func() {
		ctx.OnHover(a.handleBackgroundClick, encodeHandle(TagChart, 0))
	})
}
