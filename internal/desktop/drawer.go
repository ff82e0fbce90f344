package desktop

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/fvall/claydash/internal/draw"
)

// Drawer paints with raylib. It is only valid between BeginDrawing and
// EndDrawing on the window goroutine.
type Drawer struct {
	font rl.Font
}

// NewDrawer returns a Drawer that writes text with font.
func NewDrawer(font rl.Font) *Drawer {
	return &Drawer{font: font}
}

func rgba(c draw.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func vec(v draw.Vector2) rl.Vector2 {
	return rl.Vector2{X: v.X, Y: v.Y}
}

func rect(r draw.Rectangle) rl.Rectangle {
	return rl.Rectangle{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func (d *Drawer) Rectangle(r draw.Rectangle, c draw.Color) {
	rl.DrawRectangleRec(rect(r), rgba(c))
}

func (d *Drawer) RoundedRectangle(r draw.Rectangle, roundness float32, segments int, c draw.Color) {
	rl.DrawRectangleRounded(rect(r), roundness, int32(segments), rgba(c))
}

func (d *Drawer) RectangleLines(r draw.Rectangle, thick float32, c draw.Color) {
	rl.DrawRectangleLinesEx(rect(r), thick, rgba(c))
}

func (d *Drawer) Line(from, to draw.Vector2, thick float32, c draw.Color) {
	rl.DrawLineEx(vec(from), vec(to), thick, rgba(c))
}

// Triangle expects counter-clockwise vertices, as raylib does.
func (d *Drawer) Triangle(a, b, c draw.Vector2, col draw.Color) {
	rl.DrawTriangle(vec(a), vec(b), vec(c), rgba(col))
}

func (d *Drawer) Pixel(p draw.Vector2, c draw.Color) {
	rl.DrawPixelV(vec(p), rgba(c))
}

func (d *Drawer) Ring(center draw.Vector2, inner, outer, startAngle, endAngle float32, segments int, c draw.Color) {
	rl.DrawRing(vec(center), inner, outer, startAngle, endAngle, int32(segments), rgba(c))
}

func (d *Drawer) Text(text string, pos draw.Vector2, fontSize, spacing float32, c draw.Color) {
	rl.DrawTextEx(d.font, text, vec(pos), fontSize, spacing, rgba(c))
}

func (d *Drawer) BeginScissor(r draw.Rectangle) {
	rl.BeginScissorMode(int32(r.X), int32(r.Y), int32(r.Width), int32(r.Height))
}

func (d *Drawer) EndScissor() {
	rl.EndScissorMode()
}

var _ draw.Drawer = (*Drawer)(nil)
