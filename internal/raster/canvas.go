// Package raster implements draw.Drawer on an in-memory RGBA image so a
// dashboard frame can be rendered without a window and saved as PNG.
package raster

import (
	"fmt"
	"image"
	"image/color"
	stddraw "image/draw"
	"image/png"
	"io"
	"log"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/fvall/claydash/internal/draw"
	"github.com/fvall/claydash/internal/typeface"
)

// Canvas is a draw.Drawer backed by an image.RGBA. Scissor regions nest;
// the innermost one clips every primitive.
type Canvas struct {
	img  *image.RGBA
	font *typeface.Typeface
	clip []image.Rectangle
}

var _ draw.Drawer = (*Canvas)(nil)

// New creates a w×h canvas. font may be nil, in which case Text draws
// nothing.
func New(w, h int, font *typeface.Typeface) *Canvas {
	return &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		font: font,
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Clear fills the whole canvas with col, ignoring any scissor.
func (c *Canvas) Clear(col draw.Color) {
	stddraw.Draw(c.img, c.img.Bounds(), image.NewUniform(toNRGBA(col)), image.Point{}, stddraw.Src)
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to path.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := c.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func toNRGBA(c draw.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// bounds is the region drawing is currently limited to.
func (c *Canvas) bounds() image.Rectangle {
	if n := len(c.clip); n > 0 {
		return c.clip[n-1]
	}
	return c.img.Bounds()
}

func pixelRect(r draw.Rectangle) image.Rectangle {
	return image.Rect(
		int(math.Floor(float64(r.X))),
		int(math.Floor(float64(r.Y))),
		int(math.Ceil(float64(r.X+r.Width))),
		int(math.Ceil(float64(r.Y+r.Height))),
	)
}

// ────────────────────────────────────────────────────────────
// Drawer
// ────────────────────────────────────────────────────────────

func (c *Canvas) Rectangle(r draw.Rectangle, col draw.Color) {
	if col.A == 0 || r.Width <= 0 || r.Height <= 0 {
		return
	}
	dst := pixelRect(r).Intersect(c.bounds())
	stddraw.Draw(c.img, dst, image.NewUniform(toNRGBA(col)), image.Point{}, stddraw.Over)
}

func (c *Canvas) RoundedRectangle(r draw.Rectangle, roundness float32, segments int, col draw.Color) {
	radius := min(roundness, 1) * min(r.Width, r.Height) / 2
	if radius <= 0 {
		c.Rectangle(r, col)
		return
	}
	segments = max(segments, 1)

	corners := []struct {
		cx, cy, start float32
	}{
		{r.X + r.Width - radius, r.Y + r.Height - radius, 0},
		{r.X + radius, r.Y + r.Height - radius, 90},
		{r.X + radius, r.Y + radius, 180},
		{r.X + r.Width - radius, r.Y + radius, 270},
	}
	pts := make([]draw.Vector2, 0, 4*(segments+1))
	for _, k := range corners {
		pts = appendArc(pts, draw.Vector2{X: k.cx, Y: k.cy}, radius, k.start, k.start+90, segments)
	}
	c.fillPolygon(pts, col)
}

func (c *Canvas) RectangleLines(r draw.Rectangle, thick float32, col draw.Color) {
	t := min(thick, r.Width/2, r.Height/2)
	if t <= 0 {
		return
	}
	c.Rectangle(draw.Rectangle{X: r.X, Y: r.Y, Width: r.Width, Height: t}, col)
	c.Rectangle(draw.Rectangle{X: r.X, Y: r.Y + r.Height - t, Width: r.Width, Height: t}, col)
	c.Rectangle(draw.Rectangle{X: r.X, Y: r.Y + t, Width: t, Height: r.Height - 2*t}, col)
	c.Rectangle(draw.Rectangle{X: r.X + r.Width - t, Y: r.Y + t, Width: t, Height: r.Height - 2*t}, col)
}

// Line is drawn as a quad of width thick centred on the segment.
func (c *Canvas) Line(from, to draw.Vector2, thick float32, col draw.Color) {
	dx, dy := float64(to.X-from.X), float64(to.Y-from.Y)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	half := float64(max(thick, 1)) / 2
	nx, ny := float32(-dy/length*half), float32(dx/length*half)
	c.fillPolygon([]draw.Vector2{
		{X: from.X + nx, Y: from.Y + ny},
		{X: to.X + nx, Y: to.Y + ny},
		{X: to.X - nx, Y: to.Y - ny},
		{X: from.X - nx, Y: from.Y - ny},
	}, col)
}

func (c *Canvas) Triangle(a, b, v draw.Vector2, col draw.Color) {
	c.fillPolygon([]draw.Vector2{a, b, v}, col)
}

func (c *Canvas) Pixel(p draw.Vector2, col draw.Color) {
	c.Rectangle(draw.Rectangle{X: p.X, Y: p.Y, Width: 1, Height: 1}, col)
}

// Ring fills the annular sector between inner and outer from startAngle to
// endAngle, in degrees clockwise from the positive x axis.
func (c *Canvas) Ring(center draw.Vector2, inner, outer, startAngle, endAngle float32, segments int, col draw.Color) {
	if outer <= 0 || outer <= inner {
		return
	}
	inner = max(inner, 0)
	segments = max(segments, 1)

	pts := appendArc(nil, center, outer, startAngle, endAngle, segments)
	if inner == 0 {
		pts = append(pts, center)
	} else {
		back := appendArc(nil, center, inner, startAngle, endAngle, segments)
		for i := len(back) - 1; i >= 0; i-- {
			pts = append(pts, back[i])
		}
	}
	c.fillPolygon(pts, col)
}

// Text draws text with its top-left corner at pos.
func (c *Canvas) Text(text string, pos draw.Vector2, fontSize, spacing float32, col draw.Color) {
	if !c.font.Valid() || text == "" {
		return
	}
	face, err := c.font.Face(float64(fontSize))
	if err != nil {
		log.Printf("[WARN] raster: %v", err)
		return
	}
	dst, ok := c.img.SubImage(c.bounds()).(*image.RGBA)
	if !ok {
		return
	}

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(toNRGBA(col)),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(pos.X * 64),
			Y: fixed.Int26_6(pos.Y*64) + face.Metrics().Ascent,
		},
	}
	if spacing == 0 {
		d.DrawString(text)
		return
	}
	gap := fixed.Int26_6(spacing * 64)
	for _, r := range text {
		d.DrawString(string(r))
		d.Dot.X += gap
	}
}

func (c *Canvas) BeginScissor(r draw.Rectangle) {
	c.clip = append(c.clip, pixelRect(r).Intersect(c.bounds()))
}

func (c *Canvas) EndScissor() {
	if len(c.clip) == 0 {
		log.Println("[WARN] raster: EndScissor without BeginScissor")
		return
	}
	c.clip = c.clip[:len(c.clip)-1]
}

// ────────────────────────────────────────────────────────────
// Paths
// ────────────────────────────────────────────────────────────

// appendArc appends segments+1 points along an arc.
func appendArc(pts []draw.Vector2, center draw.Vector2, radius, start, end float32, segments int) []draw.Vector2 {
	step := (end - start) / float32(segments)
	for i := 0; i <= segments; i++ {
		a := float64(start+step*float32(i)) * math.Pi / 180
		pts = append(pts, draw.Vector2{
			X: center.X + float32(math.Cos(a))*radius,
			Y: center.Y + float32(math.Sin(a))*radius,
		})
	}
	return pts
}

// fillPolygon rasterizes a closed polygon with anti-aliasing, limited to
// the current scissor.
func (c *Canvas) fillPolygon(pts []draw.Vector2, col draw.Color) {
	if len(pts) < 3 || col.A == 0 {
		return
	}
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	area := pixelRect(draw.Rectangle{X: lo.X, Y: lo.Y, Width: hi.X - lo.X, Height: hi.Y - lo.Y}).Intersect(c.bounds())
	if area.Empty() {
		return
	}

	ox, oy := float32(area.Min.X), float32(area.Min.Y)
	z := vector.NewRasterizer(area.Dx(), area.Dy())
	z.MoveTo(pts[0].X-ox, pts[0].Y-oy)
	for _, p := range pts[1:] {
		z.LineTo(p.X-ox, p.Y-oy)
	}
	z.ClosePath()
	z.Draw(c.img, area, image.NewUniform(toNRGBA(col)), image.Point{})
}
