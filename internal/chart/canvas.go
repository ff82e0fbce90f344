package chart

import (
	"log"
	"math"

	"github.com/fvall/claydash/internal/draw"
	"github.com/fvall/claydash/internal/stats"
)

const (
	axisStart = 0.02
	axisEnd   = 1 - axisStart
	// Stroke thickness is interpolated between these screen sizes.
	minScreen = 360
	maxScreen = 1080
	axisPad   = 5

	barOutline = 2.5
	lineThick  = 4
)

// Plot is the usable area inside the axes, in screen space.
type Plot struct {
	XBegin, XEnd float32
	YBegin, YEnd float32
	Thick        float32
}

// Style holds the colours a chart is drawn with.
type Style struct {
	Axis draw.Color
	Fill draw.Color
	Line draw.Color
	// Debug draws a guide along the top of the plot area.
	Debug bool
}

// DrawAxes draws both axes with arrowheads inside box and returns the plot
// area left between them.
func DrawAxes(d draw.Drawer, box draw.Rectangle, style Style) Plot {
	var p Plot
	short := min(box.Width, box.Height)

	thick := stats.Lerp(short, minScreen, maxScreen, 1.5, 3.0)
	y := box.Y + box.Height*axisEnd
	x1 := box.X + min(box.Width*axisStart, axisPad)
	x2 := box.X + box.Width*axisEnd
	p.YEnd = y - thick

	offset := stats.Clamp(short*axisStart, 5, 10)

	// x axis
	d.Line(draw.Vector2{X: x1, Y: y}, draw.Vector2{X: x2, Y: y}, thick, style.Axis)
	xtip := min(x2+1.5, box.X+box.Width)
	xback := xtip - offset*1.2
	p.XEnd = xback
	d.Triangle(
		draw.Vector2{X: xtip, Y: y},
		draw.Vector2{X: xback, Y: y - offset},
		draw.Vector2{X: xback, Y: y + offset},
		style.Axis,
	)

	// y axis
	x := x1 + max(box.Width*axisStart, 3)
	y1 := box.Y + box.Height*axisStart
	y2 := box.Y + max(box.Height*axisEnd, box.Height-axisPad)
	p.XBegin = x + thick
	d.Line(draw.Vector2{X: x, Y: y1}, draw.Vector2{X: x, Y: y2}, thick, style.Axis)

	ytip := y1 - 1.5
	ydown := ytip + offset*1.2
	p.YBegin = ydown
	if style.Debug {
		d.Line(draw.Vector2{X: p.XBegin, Y: p.YBegin}, draw.Vector2{X: p.XEnd, Y: p.YBegin}, 1, draw.Magenta)
	}
	d.Triangle(
		draw.Vector2{X: x, Y: ytip},
		draw.Vector2{X: x - offset, Y: ydown},
		draw.Vector2{X: x + offset, Y: ydown},
		style.Axis,
	)

	p.Thick = thick
	return p
}

// DrawHistogram draws bars left to right until the reveal percentage is
// reached. The bar that crosses it grows with the square root of its local
// progress and is the last one drawn. It returns the number of bars drawn.
func DrawHistogram(d draw.Drawer, p Plot, counts []uint32, pct float64, fill draw.Color) int {
	if len(counts) == 0 {
		return 0
	}
	var top uint32
	for _, c := range counts {
		top = max(top, c)
	}
	if top == 0 {
		return 0
	}

	n := float64(len(counts))
	incr := 1 / n
	width := (p.XEnd - p.XBegin - p.Thick) / float32(n)
	height := p.YEnd - p.YBegin
	edge := fill.Brightness(-0.5)

	drawn := 0
	xleft := p.XBegin
	var lo, next float64
	for _, c := range counts {
		next = min(next+incr, 1)
		factor := 1.0
		last := false
		if pct < next {
			factor = math.Sqrt(stats.Lerp(pct, lo, next, 0, 1))
			last = true
		}

		if factor > 0 {
			h := float32(factor) * float32(c) * height / float32(top)
			r := draw.Rectangle{X: xleft, Y: p.YEnd - h, Width: width, Height: h}
			d.Rectangle(r, fill)
			d.RectangleLines(r, barOutline, edge)
			drawn++
		}
		if last {
			break
		}
		xleft += width
		lo = next
	}
	return drawn
}

// DrawLine draws the curve one segment at a time while the segment index
// over the point count stays within the reveal percentage. A single point
// is always drawn. It returns the number of segments drawn.
func DrawLine(d draw.Drawer, p Plot, xs, ys []float64, pct float64, color draw.Color) int {
	if len(xs) != len(ys) {
		log.Printf("[ERROR] Curve x and y must be the same length: %d - %d", len(xs), len(ys))
		return 0
	}
	if len(xs) == 0 {
		return 0
	}

	minx, maxx := stats.MinMax(xs)
	miny, maxy := stats.MinMax(ys)

	if len(xs) == 1 {
		d.Pixel(draw.Vector2{
			X: float32(stats.Lerp(xs[0], minx, maxx, float64(p.XBegin), float64(p.XEnd))),
			Y: float32(stats.Lerp(ys[0], miny, maxy, float64(p.YEnd), float64(p.YBegin))),
		}, color)
		return 0
	}

	// A range narrower than Epsilon is taken to be normalized already.
	if maxx-minx < stats.Epsilon {
		minx, maxx = 0, 1
	}
	if maxy-miny < stats.Epsilon {
		miny, maxy = 0, 1
	}
	toScreen := func(i int) draw.Vector2 {
		return draw.Vector2{
			X: float32(stats.Lerp(xs[i], minx, maxx, float64(p.XBegin), float64(p.XEnd))),
			// Screen y grows downwards.
			Y: float32(stats.Lerp(ys[i], miny, maxy, float64(p.YEnd), float64(p.YBegin))),
		}
	}

	drawn := 0
	total := float64(len(xs))
	for next := 1; next < len(xs); next++ {
		if float64(next)/total > pct {
			break
		}
		d.Line(toScreen(next-1), toScreen(next), lineThick, color)
		drawn++
	}
	return drawn
}

// Draw renders the axes and the series selected by data.Kind into box.
func Draw(d draw.Drawer, box draw.Rectangle, data *Data, pct float64, style Style) Plot {
	p := DrawAxes(d, box, style)
	if data == nil {
		return p
	}
	switch data.Kind {
	case Line:
		DrawLine(d, p, data.X, data.Y, pct, style.Line)
	case Both:
		DrawHistogram(d, p, data.Counts, pct, style.Fill)
		DrawLine(d, p, data.X, data.Y, pct, style.Line)
	default:
		DrawHistogram(d, p, data.Counts, pct, style.Fill)
	}
	return p
}
