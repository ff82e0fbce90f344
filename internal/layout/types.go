package layout

import (
	"hash/fnv"

	"github.com/fvall/claydash/internal/draw"
)

// ID identifies an element across frames. The numeric form is a hash of
// the name so lookups stay stable while the tree is rebuilt every frame.
type ID struct {
	ID   uint32
	Name string
}

// NewID hashes name into an element ID.
func NewID(name string) ID {
	h := fnv.New32a()
	h.Write([]byte(name))
	return ID{ID: h.Sum32(), Name: name}
}

// IsZero reports whether the ID was never assigned.
func (id ID) IsZero() bool { return id.ID == 0 && id.Name == "" }

// ============================================================
// Sizing
// ============================================================

// SizingType selects how an element is sized along one axis.
type SizingType int

const (
	// SizingFit wraps the content.
	SizingFit SizingType = iota
	// SizingGrow expands to fill the space left by its siblings.
	SizingGrow
	// SizingFixed pins the size to Min. A zero size falls back to Fit.
	SizingFixed
	// SizingPercent takes a fraction of the parent's inner size.
	SizingPercent
)

// SizingAxis configures one axis. A zero Max means unbounded.
type SizingAxis struct {
	Type    SizingType
	Min     float32
	Max     float32
	Percent float32
}

// Fit wraps the content, clamped to [lo, hi].
func Fit(lo, hi float32) SizingAxis { return SizingAxis{Type: SizingFit, Min: lo, Max: hi} }

// Grow fills the remaining space but never shrinks below lo.
func Grow(lo float32) SizingAxis { return SizingAxis{Type: SizingGrow, Min: lo} }

// Fixed pins the axis to v.
func Fixed(v float32) SizingAxis { return SizingAxis{Type: SizingFixed, Min: v, Max: v} }

// FixedRange pins the axis between lo and hi without growing.
func FixedRange(lo, hi float32) SizingAxis { return SizingAxis{Type: SizingFixed, Min: lo, Max: hi} }

// Percent takes p (0..1) of the parent's inner size.
func Percent(p float32) SizingAxis { return SizingAxis{Type: SizingPercent, Percent: p} }

// Sizing holds both axes.
type Sizing struct {
	Width, Height SizingAxis
}

// Expand grows on both axes.
var Expand = Sizing{Width: Grow(0), Height: Grow(0)}

// Padding is the inner spacing of a container.
type Padding struct {
	Left, Right, Top, Bottom float32
}

// PaddingAll applies v on every side.
func PaddingAll(v float32) Padding { return Padding{Left: v, Right: v, Top: v, Bottom: v} }

// Direction is the main axis children are laid out along.
type Direction int

const (
	LeftToRight Direction = iota
	TopToBottom
)

// AlignX positions children horizontally inside leftover space.
type AlignX int

const (
	AlignLeft AlignX = iota
	AlignRight
	AlignCenterX
)

// AlignY positions children vertically inside leftover space.
type AlignY int

const (
	AlignTop AlignY = iota
	AlignBottom
	AlignCenterY
)

// ChildAlignment combines both axes.
type ChildAlignment struct {
	X AlignX
	Y AlignY
}

// Config is the box-model part of a declaration.
type Config struct {
	Sizing         Sizing
	Padding        Padding
	ChildGap       float32
	ChildAlignment ChildAlignment
	Direction      Direction
}

// ============================================================
// Decoration
// ============================================================

// CornerRadius rounds each corner independently.
type CornerRadius struct {
	TopLeft, TopRight, BottomLeft, BottomRight float32
}

// RadiusAll rounds every corner by r.
func RadiusAll(r float32) CornerRadius {
	return CornerRadius{TopLeft: r, TopRight: r, BottomLeft: r, BottomRight: r}
}

// IsZero reports whether no corner is rounded.
func (c CornerRadius) IsZero() bool {
	return c.TopLeft <= 0 && c.TopRight <= 0 && c.BottomLeft <= 0 && c.BottomRight <= 0
}

// BorderWidth is the stroke width of each side.
type BorderWidth struct {
	Left, Right, Top, Bottom float32
}

// BorderAll strokes every side with width w.
func BorderAll(w float32) BorderWidth { return BorderWidth{Left: w, Right: w, Top: w, Bottom: w} }

// IsZero reports whether no side is stroked.
func (b BorderWidth) IsZero() bool {
	return b.Left <= 0 && b.Right <= 0 && b.Top <= 0 && b.Bottom <= 0
}

// Border is drawn over the element after its children.
type Border struct {
	Color draw.Color
	Width BorderWidth
}

// ============================================================
// Floating
// ============================================================

// AttachTo selects what a floating element is positioned against.
type AttachTo int

const (
	AttachNone AttachTo = iota
	AttachParent
	AttachRoot
)

// AttachPoint is one of the nine anchor points of a box.
type AttachPoint int

const (
	LeftTop AttachPoint = iota
	LeftCenter
	LeftBottom
	CenterTop
	CenterCenter
	CenterBottom
	RightTop
	RightCenter
	RightBottom
)

// anchor returns the fractional position of p inside a box.
func (p AttachPoint) anchor() (fx, fy float32) {
	fx = float32(p/3) * 0.5
	fy = float32(p%3) * 0.5
	return fx, fy
}

// Floating lifts an element out of the flow and draws it above the tree.
// The Element point of the floating box is placed on the Parent point of
// the target box.
type Floating struct {
	AttachTo AttachTo
	Element  AttachPoint
	Parent   AttachPoint
	Offset   draw.Vector2
	ZIndex   int
}

// Declaration describes one element for the current frame.
type Declaration struct {
	ID           ID
	Layout       Config
	Background   draw.Color
	CornerRadius CornerRadius
	Border       Border
	Floating     Floating
	// Clip scissors the children to the element box.
	Clip bool
	// Custom marks the element for the host's own drawing. The value is
	// handed back unchanged in the render command.
	Custom any
}

// TextConfig styles a text element.
type TextConfig struct {
	FontID        uint16
	FontSize      float32
	LetterSpacing float32
	Color         draw.Color
}

// Dimensions is a measured size.
type Dimensions struct {
	Width, Height float32
}

// MeasureTextFunc measures text as the renderer will draw it.
type MeasureTextFunc func(text string, cfg TextConfig) Dimensions

// ============================================================
// Pointer
// ============================================================

// PointerState is the edge-aware state of the primary button. The zero
// value is the press frame.
type PointerState int

const (
	PressedThisFrame PointerState = iota
	Pressed
	ReleasedThisFrame
	Released
)

func (s PointerState) String() string {
	switch s {
	case PressedThisFrame:
		return "pressed-this-frame"
	case Pressed:
		return "pressed"
	case ReleasedThisFrame:
		return "released-this-frame"
	case Released:
		return "released"
	default:
		return "unknown"
	}
}

// PointerData is handed to hover callbacks.
type PointerData struct {
	Position draw.Vector2
	State    PointerState
}

// HoverFunc is registered against an element with OnHover. userData is
// the opaque value given at registration.
type HoverFunc func(id ID, pointer PointerData, userData uint64)

// ============================================================
// Render commands
// ============================================================

// CommandType tags a RenderCommand.
type CommandType int

const (
	CommandRectangle CommandType = iota
	CommandBorder
	CommandText
	CommandScissorStart
	CommandScissorEnd
	CommandCustom
)

func (t CommandType) String() string {
	switch t {
	case CommandRectangle:
		return "rectangle"
	case CommandBorder:
		return "border"
	case CommandText:
		return "text"
	case CommandScissorStart:
		return "scissor-start"
	case CommandScissorEnd:
		return "scissor-end"
	case CommandCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// RenderCommand is one resolved paint instruction.
type RenderCommand struct {
	Type         CommandType
	ID           ID
	Box          draw.Rectangle
	Color        draw.Color
	CornerRadius CornerRadius
	Border       BorderWidth
	Text         string
	TextConfig   TextConfig
	Custom       any
}
