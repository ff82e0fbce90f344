// Package draw defines the primitive drawing surface shared by every
// backend: the desktop window, the terminal canvas and the PNG rasterizer.
package draw

// Color is an 8-bit RGBA colour.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque colour.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Brightness lightens (factor > 0) or darkens (factor < 0) c. The factor
// is clamped to [-1, 1] and alpha is kept.
func (c Color) Brightness(factor float32) Color {
	factor = max(-1, min(factor, 1))
	r, g, b := float32(c.R), float32(c.G), float32(c.B)
	if factor < 0 {
		factor = 1 + factor
		r *= factor
		g *= factor
		b *= factor
	} else {
		r = (255-r)*factor + r
		g = (255-g)*factor + g
		b = (255-b)*factor + b
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: c.A}
}

// Common colours.
var (
	Black   = RGB(0, 0, 0)
	White   = RGB(255, 255, 255)
	Magenta = RGB(255, 0, 255)
	Blank   = Color{}
)

// Vector2 is a point in screen space. Y grows downwards.
type Vector2 struct {
	X, Y float32
}

// Rectangle is an axis-aligned box in screen space.
type Rectangle struct {
	X, Y, Width, Height float32
}

// Contains reports whether p lies inside r, edges included.
func (r Rectangle) Contains(p Vector2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Drawer is the set of primitives the dashboard renders with.
type Drawer interface {
	Rectangle(r Rectangle, c Color)
	// RoundedRectangle fills r with corners of the given roundness in
	// [0, 1], relative to the shorter side.
	RoundedRectangle(r Rectangle, roundness float32, segments int, c Color)
	RectangleLines(r Rectangle, thick float32, c Color)
	Line(from, to Vector2, thick float32, c Color)
	Triangle(a, b, c Vector2, col Color)
	Pixel(p Vector2, c Color)
	// Ring draws an annulus sector. Angles are in degrees.
	Ring(center Vector2, inner, outer, startAngle, endAngle float32, segments int, c Color)
	Text(text string, pos Vector2, fontSize, spacing float32, c Color)
	BeginScissor(r Rectangle)
	EndScissor()
}
