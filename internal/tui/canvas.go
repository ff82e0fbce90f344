package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fvall/claydash/internal/draw"
	"github.com/fvall/claydash/internal/layout"
)

// One terminal cell covers CellWidth × CellHeight virtual pixels and is
// split into two square-ish dots by the upper half block.
const (
	CellWidth  = 8
	CellHeight = 16
	dotHeight  = CellHeight / 2

	upperHalf = '▀'
)

// MeasureCells measures text in virtual pixels as the canvas will print
// it: one cell per column of display width, one row high.
func MeasureCells(text string, cfg layout.TextConfig) layout.Dimensions {
	return layout.Dimensions{
		Width:  float32(lipgloss.Width(text) * CellWidth),
		Height: CellHeight,
	}
}

type textCell struct {
	r  rune
	fg draw.Color
}

// Canvas is a draw.Drawer that samples every primitive at the centre of
// each dot. Text is printed into cells over the dots.
type Canvas struct {
	cols, rows int
	dots       []draw.Color
	text       []textCell
	clip       []draw.Rectangle
}

var _ draw.Drawer = (*Canvas)(nil)

// NewCanvas creates a canvas of cols × rows terminal cells.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize changes the cell grid, discarding its contents.
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	c.dots = make([]draw.Color, c.cols*c.rows*2)
	c.text = make([]textCell, c.cols*c.rows)
	c.clip = c.clip[:0]
}

// Size returns the grid in cells.
func (c *Canvas) Size() (cols, rows int) { return c.cols, c.rows }

// Bounds is the canvas in virtual pixels.
func (c *Canvas) Bounds() draw.Rectangle {
	return draw.Rectangle{Width: float32(c.cols * CellWidth), Height: float32(c.rows * CellHeight)}
}

// Reset paints every dot bg and removes all text.
func (c *Canvas) Reset(bg draw.Color) {
	for i := range c.dots {
		c.dots[i] = bg
	}
	clear(c.text)
	c.clip = c.clip[:0]
}

// Dot returns the colour of dot (x, y), where y counts half rows.
func (c *Canvas) Dot(x, y int) draw.Color {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows*2 {
		return draw.Blank
	}
	return c.dots[y*c.cols+x]
}

// TextAt returns the rune printed in cell (col, row), or 0.
func (c *Canvas) TextAt(col, row int) rune {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return 0
	}
	return c.text[row*c.cols+col].r
}

func (c *Canvas) region() draw.Rectangle {
	if n := len(c.clip); n > 0 {
		return c.clip[n-1]
	}
	return c.Bounds()
}

func dotCentre(x, y int) draw.Vector2 {
	return draw.Vector2{X: float32(x*CellWidth) + CellWidth/2, Y: float32(y*dotHeight) + dotHeight/2}
}

// fill visits every dot whose centre lies in r and the scissor, and paints
// it where inside reports true.
func (c *Canvas) fill(r draw.Rectangle, col draw.Color, inside func(p draw.Vector2) bool) {
	if col.A == 0 {
		return
	}
	area := intersect(r, c.region())
	if area.Width <= 0 || area.Height <= 0 {
		return
	}
	x0 := max(int(math.Floor(float64(area.X/CellWidth-0.5))), 0)
	x1 := min(int(math.Ceil(float64((area.X+area.Width)/CellWidth))), c.cols)
	y0 := max(int(math.Floor(float64(area.Y/dotHeight-0.5))), 0)
	y1 := min(int(math.Ceil(float64((area.Y+area.Height)/dotHeight))), c.rows*2)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p := dotCentre(x, y)
			if !area.Contains(p) || (inside != nil && !inside(p)) {
				continue
			}
			i := y*c.cols + x
			c.dots[i] = blend(c.dots[i], col)
		}
	}
}

func intersect(a, b draw.Rectangle) draw.Rectangle {
	x0, y0 := max(a.X, b.X), max(a.Y, b.Y)
	x1, y1 := min(a.X+a.Width, b.X+b.Width), min(a.Y+a.Height, b.Y+b.Height)
	return draw.Rectangle{X: x0, Y: y0, Width: max(x1-x0, 0), Height: max(y1-y0, 0)}
}

func blend(dst, src draw.Color) draw.Color {
	if src.A == 255 {
		return src
	}
	a := float32(src.A) / 255
	mix := func(d, s uint8) uint8 { return uint8(float32(d)*(1-a) + float32(s)*a) }
	return draw.Color{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 255}
}

// ────────────────────────────────────────────────────────────
// Drawer
// ────────────────────────────────────────────────────────────

func (c *Canvas) Rectangle(r draw.Rectangle, col draw.Color) {
	c.fill(r, col, nil)
}

func (c *Canvas) RoundedRectangle(r draw.Rectangle, roundness float32, segments int, col draw.Color) {
	radius := min(roundness, 1) * min(r.Width, r.Height) / 2
	if radius < dotHeight {
		c.fill(r, col, nil)
		return
	}
	c.fill(r, col, func(p draw.Vector2) bool {
		cx := clampf(p.X, r.X+radius, r.X+r.Width-radius)
		cy := clampf(p.Y, r.Y+radius, r.Y+r.Height-radius)
		dx, dy := p.X-cx, p.Y-cy
		return dx*dx+dy*dy <= radius*radius
	})
}

// RectangleLines keeps the outline at least one dot wide.
func (c *Canvas) RectangleLines(r draw.Rectangle, thick float32, col draw.Color) {
	tx, ty := max(thick, CellWidth), max(thick, dotHeight)
	inner := draw.Rectangle{X: r.X + tx, Y: r.Y + ty, Width: r.Width - 2*tx, Height: r.Height - 2*ty}
	c.fill(r, col, func(p draw.Vector2) bool { return !inner.Contains(p) })
}

func (c *Canvas) Line(from, to draw.Vector2, thick float32, col draw.Color) {
	reach := max(thick/2, dotHeight/2)
	box := draw.Rectangle{
		X:      min(from.X, to.X) - reach,
		Y:      min(from.Y, to.Y) - reach,
		Width:  abs(to.X-from.X) + 2*reach,
		Height: abs(to.Y-from.Y) + 2*reach,
	}
	c.fill(box, col, func(p draw.Vector2) bool {
		return segmentDistance(p, from, to) <= reach
	})
}

func (c *Canvas) Triangle(a, b, v draw.Vector2, col draw.Color) {
	lo := draw.Vector2{X: min(a.X, b.X, v.X), Y: min(a.Y, b.Y, v.Y)}
	hi := draw.Vector2{X: max(a.X, b.X, v.X), Y: max(a.Y, b.Y, v.Y)}
	c.fill(draw.Rectangle{X: lo.X, Y: lo.Y, Width: hi.X - lo.X, Height: hi.Y - lo.Y}, col, func(p draw.Vector2) bool {
		d1, d2, d3 := cross(p, a, b), cross(p, b, v), cross(p, v, a)
		neg := d1 < 0 || d2 < 0 || d3 < 0
		pos := d1 > 0 || d2 > 0 || d3 > 0
		return !(neg && pos)
	})
}

func (c *Canvas) Pixel(p draw.Vector2, col draw.Color) {
	x, y := int(p.X)/CellWidth, int(p.Y)/dotHeight
	if p.X < 0 || p.Y < 0 || x >= c.cols || y >= c.rows*2 || !c.region().Contains(p) {
		return
	}
	i := y*c.cols + x
	c.dots[i] = blend(c.dots[i], col)
}

func (c *Canvas) Ring(center draw.Vector2, inner, outer, startAngle, endAngle float32, segments int, col draw.Color) {
	box := draw.Rectangle{X: center.X - outer, Y: center.Y - outer, Width: 2 * outer, Height: 2 * outer}
	lo := max(inner-dotHeight/2, 0)
	c.fill(box, col, func(p draw.Vector2) bool {
		dx, dy := float64(p.X-center.X), float64(p.Y-center.Y)
		d := float32(math.Hypot(dx, dy))
		if d < lo || d > outer {
			return false
		}
		a := float32(math.Atan2(dy, dx) * 180 / math.Pi)
		if a < 0 {
			a += 360
		}
		return a >= startAngle && a <= endAngle
	})
}

// Text prints one rune per cell starting at the cell under pos. The font
// size is ignored: a terminal has one.
func (c *Canvas) Text(text string, pos draw.Vector2, fontSize, spacing float32, col draw.Color) {
	row := int(pos.Y+CellHeight/2) / CellHeight
	if pos.Y < 0 || row >= c.rows {
		return
	}
	clip := c.region()
	x := pos.X
	for _, r := range text {
		col0 := int(x+CellWidth/2) / CellWidth
		centre := draw.Vector2{X: float32(col0*CellWidth) + CellWidth/2, Y: float32(row*CellHeight) + CellHeight/2}
		if col0 >= 0 && col0 < c.cols && clip.Contains(centre) {
			c.text[row*c.cols+col0] = textCell{r: r, fg: col}
		}
		x += float32(lipgloss.Width(string(r))*CellWidth) + spacing
	}
}

func (c *Canvas) BeginScissor(r draw.Rectangle) {
	c.clip = append(c.clip, intersect(r, c.region()))
}

func (c *Canvas) EndScissor() {
	if len(c.clip) > 0 {
		c.clip = c.clip[:len(c.clip)-1]
	}
}

func abs(v float32) float32 { return float32(math.Abs(float64(v))) }

func cross(p, a, b draw.Vector2) float32 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}

func segmentDistance(p, a, b draw.Vector2) float32 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	t := float32(0)
	if l2 > 0 {
		t = clampf(((p.X-a.X)*dx+(p.Y-a.Y)*dy)/l2, 0, 1)
	}
	qx, qy := a.X+t*dx-p.X, a.Y+t*dy-p.Y
	return float32(math.Sqrt(float64(qx*qx + qy*qy)))
}

// ────────────────────────────────────────────────────────────
// Output
// ────────────────────────────────────────────────────────────

type cellStyle struct {
	fg, bg draw.Color
}

// String renders the grid, one line per row. Runs of cells sharing a style
// go through lipgloss together.
func (c *Canvas) String() string {
	var out strings.Builder
	var run strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			out.WriteByte('\n')
		}
		var cur cellStyle
		flush := func() {
			if run.Len() == 0 {
				return
			}
			out.WriteString(lipgloss.NewStyle().
				Foreground(toLipgloss(cur.fg)).
				Background(toLipgloss(cur.bg)).
				Render(run.String()))
			run.Reset()
		}
		for col := 0; col < c.cols; col++ {
			top := c.dots[(2*row)*c.cols+col]
			bottom := c.dots[(2*row+1)*c.cols+col]
			ch, st := upperHalf, cellStyle{fg: top, bg: bottom}
			if t := c.text[row*c.cols+col]; t.r != 0 {
				ch, st = t.r, cellStyle{fg: t.fg, bg: top}
			} else if top == bottom {
				ch, st = ' ', cellStyle{fg: top, bg: top}
			}
			if st != cur {
				flush()
				cur = st
			}
			run.WriteRune(ch)
		}
		flush()
	}
	return out.String()
}
