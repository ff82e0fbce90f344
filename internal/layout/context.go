// Package layout is a small immediate-mode layout engine. The tree is
// declared from scratch every frame; EndLayout sizes and positions it,
// runs the hover callbacks registered during declaration and returns a
// flat list of render commands.
//
// Boxes from the last completed layout stay queryable, so declaration
// code can style an element by whether the pointer was over it.
package layout

import (
	"log"
	"math"

	"github.com/fvall/claydash/internal/draw"
)

const rootIndex = 0

type element struct {
	decl     Declaration
	parent   int
	children []int

	isText  bool
	text    string
	textCfg TextConfig

	width, height float32
	box           draw.Rectangle
}

type hoverBinding struct {
	elem     int
	fn       HoverFunc
	userData uint64
}

// Context holds the engine state that survives between frames.
type Context struct {
	dims    Dimensions
	measure MeasureTextFunc
	debug   bool
	pointer PointerData

	elements []element
	open     []int
	floating []int
	hovers   []hoverBinding
	inFrame  bool

	boxes map[uint32]draw.Rectangle
	// capture holds the ids inside the topmost floating element under the
	// pointer; nil when no floating element is hit.
	capture map[uint32]bool
}

// NewContext creates an engine for a layout of the given size.
func NewContext(dims Dimensions) *Context {
	return &Context{
		dims:    dims,
		pointer: PointerData{State: Released},
		boxes:   make(map[uint32]draw.Rectangle),
	}
}

// SetLayoutDimensions resizes the root container.
func (c *Context) SetLayoutDimensions(dims Dimensions) { c.dims = dims }

// LayoutDimensions returns the size of the root container.
func (c *Context) LayoutDimensions() Dimensions { return c.dims }

// SetMeasureTextFunction installs the text measurer.
func (c *Context) SetMeasureTextFunction(fn MeasureTextFunc) { c.measure = fn }

// SetDebugMode toggles element outlines in the render output.
func (c *Context) SetDebugMode(enabled bool) { c.debug = enabled }

// DebugMode reports whether outlines are emitted.
func (c *Context) DebugMode() bool { return c.debug }

// SetPointerState records the pointer for this frame and derives the
// edge state from the previous one.
func (c *Context) SetPointerState(pos draw.Vector2, down bool) {
	prev := c.pointer.State
	var next PointerState
	if down {
		next = PressedThisFrame
		if prev == PressedThisFrame || prev == Pressed {
			next = Pressed
		}
	} else {
		next = ReleasedThisFrame
		if prev == ReleasedThisFrame || prev == Released {
			next = Released
		}
	}
	c.pointer = PointerData{Position: pos, State: next}
	c.updateCapture()
}

// Pointer returns the pointer recorded for this frame.
func (c *Context) Pointer() PointerData { return c.pointer }

// PointerOver reports whether the pointer lies inside the box of id. The
// box comes from the last completed layout. A floating element under the
// pointer captures it: elements outside that floating subtree are not
// hovered.
func (c *Context) PointerOver(id ID) bool {
	box, ok := c.boxes[id.ID]
	if !ok || !box.Contains(c.pointer.Position) {
		return false
	}
	return c.capture == nil || c.capture[id.ID]
}

// ElementData returns the box of id from the last completed layout.
func (c *Context) ElementData(id ID) (draw.Rectangle, bool) {
	box, ok := c.boxes[id.ID]
	return box, ok
}

// ============================================================
// Declaration
// ============================================================

// BeginLayout starts a new frame.
func (c *Context) BeginLayout() {
	c.elements = c.elements[:0]
	c.open = c.open[:0]
	c.floating = c.floating[:0]
	c.hovers = c.hovers[:0]
	c.inFrame = true

	c.elements = append(c.elements, element{
		parent: -1,
		decl: Declaration{
			Layout: Config{Sizing: Sizing{Width: Fixed(c.dims.Width), Height: Fixed(c.dims.Height)}},
		},
	})
	c.open = append(c.open, rootIndex)
}

// OpenElement starts a child of the innermost open element.
func (c *Context) OpenElement(decl Declaration) {
	if !c.inFrame {
		log.Printf("[WARN] layout: OpenElement %q outside BeginLayout/EndLayout", decl.ID.Name)
		return
	}
	parent := c.open[len(c.open)-1]
	idx := len(c.elements)
	c.elements = append(c.elements, element{decl: decl, parent: parent})

	if decl.Floating.AttachTo != AttachNone {
		c.floating = append(c.floating, idx)
	} else {
		c.elements[parent].children = append(c.elements[parent].children, idx)
	}
	c.open = append(c.open, idx)
}

// CloseElement finishes the innermost open element and computes its
// content size.
func (c *Context) CloseElement() {
	if len(c.open) <= 1 {
		log.Println("[WARN] layout: CloseElement without a matching OpenElement")
		return
	}
	idx := c.open[len(c.open)-1]
	c.open = c.open[:len(c.open)-1]
	c.fitContent(idx)
}

// Element declares decl with the children added by body.
func (c *Context) Element(decl Declaration, body func()) {
	c.OpenElement(decl)
	if body != nil {
		body()
	}
	c.CloseElement()
}

// Text adds a text leaf to the innermost open element.
func (c *Context) Text(text string, cfg TextConfig) {
	if !c.inFrame {
		return
	}
	parent := c.open[len(c.open)-1]
	dims := c.measureText(text, cfg)
	idx := len(c.elements)
	c.elements = append(c.elements, element{
		parent:  parent,
		isText:  true,
		text:    text,
		textCfg: cfg,
		width:   dims.Width,
		height:  dims.Height,
	})
	c.elements[parent].children = append(c.elements[parent].children, idx)
}

// OnHover registers fn against the innermost open element. Every
// registered callback runs once per frame from EndLayout, whether or not
// the pointer is over the element; callbacks hit-test for themselves.
func (c *Context) OnHover(fn HoverFunc, userData uint64) {
	if !c.inFrame || len(c.open) <= 1 {
		log.Println("[WARN] layout: OnHover outside an open element")
		return
	}
	c.hovers = append(c.hovers, hoverBinding{elem: c.open[len(c.open)-1], fn: fn, userData: userData})
}

// EndLayout sizes and positions the frame, runs the hover callbacks and
// returns the render commands.
func (c *Context) EndLayout() []RenderCommand {
	if !c.inFrame {
		return nil
	}
	c.inFrame = false
	for len(c.open) > 1 {
		log.Println("[WARN] layout: element left open at EndLayout")
		c.CloseElement()
	}

	c.elements[rootIndex].width = c.dims.Width
	c.elements[rootIndex].height = c.dims.Height
	c.sizeChildren(rootIndex, true)
	c.sizeChildren(rootIndex, false)
	for _, f := range c.floating {
		c.sizeChildren(f, true)
		c.sizeChildren(f, false)
	}

	c.place(rootIndex, 0, 0)
	for _, f := range c.floating {
		c.placeFloating(f)
	}

	clear(c.boxes)
	for i := range c.elements {
		e := &c.elements[i]
		if !e.decl.ID.IsZero() {
			c.boxes[e.decl.ID.ID] = e.box
		}
	}

	c.updateCapture()

	for _, h := range c.hovers {
		h.fn(c.elements[h.elem].decl.ID, c.pointer, h.userData)
	}

	return c.commands()
}

// updateCapture finds the topmost floating element under the pointer and
// records the ids of its subtree.
func (c *Context) updateCapture() {
	c.capture = nil
	top, topZ := -1, 0
	for _, f := range c.floating {
		e := &c.elements[f]
		if !e.box.Contains(c.pointer.Position) {
			continue
		}
		if top < 0 || e.decl.Floating.ZIndex >= topZ {
			top, topZ = f, e.decl.Floating.ZIndex
		}
	}
	if top < 0 {
		return
	}
	c.capture = make(map[uint32]bool)
	stack := []int{top}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		e := &c.elements[idx]
		if !e.decl.ID.IsZero() {
			c.capture[e.decl.ID.ID] = true
		}
		stack = append(stack, e.children...)
	}
}

func (c *Context) measureText(text string, cfg TextConfig) Dimensions {
	if c.measure != nil {
		return c.measure(text, cfg)
	}
	// Rough estimate until a measurer is installed.
	n := float32(len([]rune(text)))
	return Dimensions{Width: n * cfg.FontSize * 0.5, Height: cfg.FontSize}
}

func maxOrInf(v float32) float32 {
	if v <= 0 {
		return math.MaxFloat32
	}
	return v
}
