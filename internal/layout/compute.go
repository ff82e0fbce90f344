package layout

import (
	"sort"

	"github.com/fvall/claydash/internal/draw"
)

// growEpsilon is the leftover space below which distribution stops.
const growEpsilon = 0.01

// fitContent sizes idx around its children, clamped to its sizing bounds.
func (c *Context) fitContent(idx int) {
	e := &c.elements[idx]
	cfg := e.decl.Layout
	horizontal := cfg.Direction == LeftToRight

	var w, h float32
	for _, k := range e.children {
		kid := &c.elements[k]
		if horizontal {
			w += kid.width
			h = max(h, kid.height)
		} else {
			h += kid.height
			w = max(w, kid.width)
		}
	}
	if n := len(e.children); n > 1 {
		if horizontal {
			w += cfg.ChildGap * float32(n-1)
		} else {
			h += cfg.ChildGap * float32(n-1)
		}
	}
	w += cfg.Padding.Left + cfg.Padding.Right
	h += cfg.Padding.Top + cfg.Padding.Bottom

	e.width = clampAxis(w, cfg.Sizing.Width)
	e.height = clampAxis(h, cfg.Sizing.Height)
}

func clampAxis(v float32, a SizingAxis) float32 {
	if a.Type == SizingPercent {
		return v
	}
	return max(a.Min, min(v, maxOrInf(a.Max)))
}

// sizeChildren resolves percent, grow and shrink for the children of idx
// along one axis, then recurses.
func (c *Context) sizeChildren(idx int, horizontal bool) {
	e := &c.elements[idx]
	if len(e.children) == 0 {
		return
	}
	cfg := e.decl.Layout
	inner := sizeOf(e, horizontal) - paddingOf(cfg.Padding, horizontal)
	alongMain := horizontal == (cfg.Direction == LeftToRight)

	var gaps float32
	if alongMain {
		gaps = cfg.ChildGap * float32(len(e.children)-1)
	}

	for _, k := range e.children {
		kid := &c.elements[k]
		if a := sizingOf(kid, horizontal); !kid.isText && a.Type == SizingPercent {
			setSize(kid, horizontal, max(0, inner-gaps)*a.Percent)
		}
	}

	if alongMain {
		used := gaps
		for _, k := range e.children {
			used += sizeOf(&c.elements[k], horizontal)
		}
		switch remaining := inner - used; {
		case remaining > growEpsilon:
			c.grow(e.children, horizontal, remaining)
		case remaining < -growEpsilon:
			c.shrink(e.children, horizontal, remaining)
		}
	} else {
		for _, k := range e.children {
			kid := &c.elements[k]
			if kid.isText {
				continue
			}
			a := sizingOf(kid, horizontal)
			switch {
			case a.Type == SizingGrow:
				setSize(kid, horizontal, max(a.Min, min(inner, maxOrInf(a.Max))))
			case a.Type != SizingFixed && sizeOf(kid, horizontal) > inner:
				setSize(kid, horizontal, max(a.Min, inner))
			}
		}
	}

	for _, k := range e.children {
		if !c.elements[k].isText {
			c.sizeChildren(k, horizontal)
		}
	}
}

// grow hands remaining space out evenly to growable children until it is
// used up or every candidate hit its maximum.
func (c *Context) grow(kids []int, horizontal bool, remaining float32) {
	var cands []int
	for _, k := range kids {
		kid := &c.elements[k]
		if !kid.isText && sizingOf(kid, horizontal).Type == SizingGrow {
			cands = append(cands, k)
		}
	}
	for remaining > growEpsilon && len(cands) > 0 {
		share := remaining / float32(len(cands))
		next := cands[:0]
		for _, k := range cands {
			kid := &c.elements[k]
			limit := maxOrInf(sizingOf(kid, horizontal).Max)
			size := sizeOf(kid, horizontal)
			add := min(share, limit-size)
			setSize(kid, horizontal, size+add)
			remaining -= add
			if size+add < limit {
				next = append(next, k)
			}
		}
		cands = next
	}
}

// shrink takes overflow back from every resizable child down to its
// minimum. Fixed children and text keep their size.
func (c *Context) shrink(kids []int, horizontal bool, remaining float32) {
	var cands []int
	for _, k := range kids {
		kid := &c.elements[k]
		a := sizingOf(kid, horizontal)
		if !kid.isText && a.Type != SizingFixed && sizeOf(kid, horizontal) > a.Min {
			cands = append(cands, k)
		}
	}
	for remaining < -growEpsilon && len(cands) > 0 {
		share := remaining / float32(len(cands))
		next := cands[:0]
		for _, k := range cands {
			kid := &c.elements[k]
			floor := sizingOf(kid, horizontal).Min
			size := sizeOf(kid, horizontal)
			sub := max(share, floor-size)
			setSize(kid, horizontal, size+sub)
			remaining -= sub
			if size+sub > floor {
				next = append(next, k)
			}
		}
		cands = next
	}
}

// place positions idx at (x, y) and lays its children out inside it.
func (c *Context) place(idx int, x, y float32) {
	e := &c.elements[idx]
	e.box = draw.Rectangle{X: x, Y: y, Width: e.width, Height: e.height}
	if len(e.children) == 0 {
		return
	}

	cfg := e.decl.Layout
	pad := cfg.Padding
	innerW := e.width - pad.Left - pad.Right
	innerH := e.height - pad.Top - pad.Bottom
	horizontal := cfg.Direction == LeftToRight

	content := cfg.ChildGap * float32(len(e.children)-1)
	for _, k := range e.children {
		content += sizeOf(&c.elements[k], horizontal)
	}

	if horizontal {
		cursor := x + pad.Left + alignOffset(innerW-content, alignFractionX(cfg.ChildAlignment.X))
		for _, k := range e.children {
			kid := &c.elements[k]
			ky := y + pad.Top + alignOffset(innerH-kid.height, alignFractionY(cfg.ChildAlignment.Y))
			c.place(k, cursor, ky)
			cursor += kid.width + cfg.ChildGap
		}
		return
	}

	cursor := y + pad.Top + alignOffset(innerH-content, alignFractionY(cfg.ChildAlignment.Y))
	for _, k := range e.children {
		kid := &c.elements[k]
		kx := x + pad.Left + alignOffset(innerW-kid.width, alignFractionX(cfg.ChildAlignment.X))
		c.place(k, kx, cursor)
		cursor += kid.height + cfg.ChildGap
	}
}

// placeFloating anchors a floating element to its target box.
func (c *Context) placeFloating(idx int) {
	e := &c.elements[idx]
	fl := e.decl.Floating

	target := draw.Rectangle{Width: c.dims.Width, Height: c.dims.Height}
	if fl.AttachTo == AttachParent && e.parent >= 0 {
		target = c.elements[e.parent].box
	}

	px, py := fl.Parent.anchor()
	ex, ey := fl.Element.anchor()
	x := target.X + target.Width*px - e.width*ex + fl.Offset.X
	y := target.Y + target.Height*py - e.height*ey + fl.Offset.Y
	c.place(idx, x, y)
}

// commands flattens the tree into paint order: the main tree first, then
// floating elements by z-index, then debug outlines.
func (c *Context) commands() []RenderCommand {
	var cmds []RenderCommand
	for _, k := range c.elements[rootIndex].children {
		cmds = c.emit(cmds, k)
	}

	order := append([]int(nil), c.floating...)
	sort.SliceStable(order, func(i, j int) bool {
		return c.elements[order[i]].decl.Floating.ZIndex < c.elements[order[j]].decl.Floating.ZIndex
	})
	for _, f := range order {
		cmds = c.emit(cmds, f)
	}

	if c.debug {
		for i := 1; i < len(c.elements); i++ {
			e := &c.elements[i]
			if e.isText {
				continue
			}
			cmds = append(cmds, RenderCommand{
				Type:   CommandBorder,
				ID:     e.decl.ID,
				Box:    e.box,
				Color:  draw.Magenta,
				Border: BorderAll(1),
			})
		}
	}
	return cmds
}

func (c *Context) emit(cmds []RenderCommand, idx int) []RenderCommand {
	e := &c.elements[idx]
	if e.isText {
		return append(cmds, RenderCommand{
			Type:       CommandText,
			Box:        e.box,
			Color:      e.textCfg.Color,
			Text:       e.text,
			TextConfig: e.textCfg,
		})
	}

	d := e.decl
	switch {
	case d.Custom != nil:
		cmds = append(cmds, RenderCommand{
			Type:         CommandCustom,
			ID:           d.ID,
			Box:          e.box,
			Color:        d.Background,
			CornerRadius: d.CornerRadius,
			Custom:       d.Custom,
		})
	case d.Background.A > 0:
		cmds = append(cmds, RenderCommand{
			Type:         CommandRectangle,
			ID:           d.ID,
			Box:          e.box,
			Color:        d.Background,
			CornerRadius: d.CornerRadius,
		})
	}

	if d.Clip {
		cmds = append(cmds, RenderCommand{Type: CommandScissorStart, ID: d.ID, Box: e.box})
	}
	for _, k := range e.children {
		cmds = c.emit(cmds, k)
	}
	if d.Clip {
		cmds = append(cmds, RenderCommand{Type: CommandScissorEnd, ID: d.ID, Box: e.box})
	}

	if !d.Border.Width.IsZero() {
		cmds = append(cmds, RenderCommand{
			Type:         CommandBorder,
			ID:           d.ID,
			Box:          e.box,
			Color:        d.Border.Color,
			CornerRadius: d.CornerRadius,
			Border:       d.Border.Width,
		})
	}
	return cmds
}

// ============================================================
// Axis helpers
// ============================================================

func sizeOf(e *element, horizontal bool) float32 {
	if horizontal {
		return e.width
	}
	return e.height
}

func setSize(e *element, horizontal bool, v float32) {
	if horizontal {
		e.width = v
	} else {
		e.height = v
	}
}

func sizingOf(e *element, horizontal bool) SizingAxis {
	if horizontal {
		return e.decl.Layout.Sizing.Width
	}
	return e.decl.Layout.Sizing.Height
}

func paddingOf(p Padding, horizontal bool) float32 {
	if horizontal {
		return p.Left + p.Right
	}
	return p.Top + p.Bottom
}

func alignFractionX(a AlignX) float32 {
	switch a {
	case AlignRight:
		return 1
	case AlignCenterX:
		return 0.5
	default:
		return 0
	}
}

func alignFractionY(a AlignY) float32 {
	switch a {
	case AlignBottom:
		return 1
	case AlignCenterY:
		return 0.5
	default:
		return 0
	}
}

func alignOffset(free, fraction float32) float32 {
	if free <= 0 {
		return 0
	}
	return free * fraction
}
