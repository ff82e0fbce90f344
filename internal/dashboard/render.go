package dashboard

import (
	"log"
	"math"

	"github.com/fvall/claydash/internal/chart"
	"github.com/fvall/claydash/internal/draw"
	"github.com/fvall/claydash/internal/layout"
	"github.com/fvall/claydash/internal/typeface"
)

const (
	roundedSegments = 8
	borderSegments  = 10
)

// RenderLayout walks cmds in order and draws them on d. The custom chart
// element is drawn through the chart package at the current reveal
// percentage. Text is skipped when font is not valid.
func RenderLayout(app *App, cmds []layout.RenderCommand, font *typeface.Typeface, d draw.Drawer) {
	textOK := font.Valid()
	if !textOK {
		log.Println("[ERROR] Font is not valid, text will not be drawn")
	}

	for i, cmd := range cmds {
		box := cmd.Box
		switch cmd.Type {
		case layout.CommandRectangle:
			drawRectangle(d, box, cmd.CornerRadius, cmd.Color)
		case layout.CommandText:
			if !textOK {
				continue
			}
			cfg := cmd.TextConfig
			d.Text(cmd.Text, draw.Vector2{X: box.X, Y: box.Y}, cfg.FontSize, cfg.LetterSpacing, cfg.Color)
		case layout.CommandBorder:
			drawBorder(d, box, cmd.CornerRadius, cmd.Border, cmd.Color)
		case layout.CommandScissorStart:
			d.BeginScissor(draw.Rectangle{
				X:      round(box.X),
				Y:      round(box.Y),
				Width:  round(box.Width),
				Height: round(box.Height),
			})
		case layout.CommandScissorEnd:
			d.EndScissor()
		case layout.CommandCustom:
			drawRectangle(d, box, cmd.CornerRadius, cmd.Color)
			data, ok := cmd.Custom.(*chart.Data)
			if !ok || data == nil {
				continue
			}
			chart.Draw(d, box, data, app.Percentage(), chartStyle(app.debug))
		default:
			log.Printf("[WARN] Command %d: do not know how to render %s", i, cmd.Type)
		}
	}
}

func chartStyle(debug bool) chart.Style {
	return chart.Style{
		Axis:  Scheme.Chart.Axis,
		Fill:  Scheme.Chart.Fill,
		Line:  Scheme.Chart.Line,
		Debug: debug,
	}
}

// drawRectangle fills box, rounded when the top-left corner is. The
// roundness is relative to the shorter side.
func drawRectangle(d draw.Drawer, box draw.Rectangle, corner layout.CornerRadius, c draw.Color) {
	if corner.TopLeft > 0 {
		roundness := corner.TopLeft * 2 / min(box.Width, box.Height)
		d.RoundedRectangle(box, roundness, roundedSegments, c)
		return
	}
	d.Rectangle(draw.Rectangle{
		X:      trunc(box.X),
		Y:      trunc(box.Y),
		Width:  trunc(box.Width),
		Height: trunc(box.Height),
	}, c)
}

// drawBorder strokes each side between the corners and closes rounded
// corners with quarter rings.
func drawBorder(d draw.Drawer, box draw.Rectangle, r layout.CornerRadius, w layout.BorderWidth, c draw.Color) {
	if w.Left > 0 {
		d.Rectangle(draw.Rectangle{
			X:      round(box.X),
			Y:      round(box.Y + r.TopLeft),
			Width:  w.Left,
			Height: round(box.Height - r.TopLeft - r.BottomLeft),
		}, c)
	}
	if w.Right > 0 {
		d.Rectangle(draw.Rectangle{
			X:      round(box.X+box.Width) - w.Right,
			Y:      round(box.Y + r.TopRight),
			Width:  w.Right,
			Height: round(box.Height - r.TopRight - r.BottomRight),
		}, c)
	}
	if w.Top > 0 {
		d.Rectangle(draw.Rectangle{
			X:      round(box.X + r.TopLeft),
			Y:      round(box.Y),
			Width:  round(box.Width - r.TopLeft - r.TopRight),
			Height: w.Top,
		}, c)
	}
	if w.Bottom > 0 {
		d.Rectangle(draw.Rectangle{
			X:      round(box.X + r.BottomLeft),
			Y:      round(box.Y+box.Height) - w.Bottom,
			Width:  round(box.Width - r.BottomLeft - r.BottomRight),
			Height: w.Bottom,
		}, c)
	}

	if r.TopLeft > 0 {
		center := draw.Vector2{X: round(box.X + r.TopLeft), Y: round(box.Y + r.TopLeft)}
		d.Ring(center, round(r.TopLeft-w.Top), r.TopLeft, 180, 270, borderSegments, c)
	}
	if r.TopRight > 0 {
		center := draw.Vector2{X: round(box.X + box.Width - r.TopRight), Y: round(box.Y + r.TopRight)}
		d.Ring(center, round(r.TopRight-w.Top), r.TopRight, 270, 360, borderSegments, c)
	}
	if r.BottomLeft > 0 {
		center := draw.Vector2{X: round(box.X + r.BottomLeft), Y: round(box.Y + box.Height - r.BottomLeft)}
		d.Ring(center, round(r.BottomLeft-w.Bottom), r.BottomLeft, 90, 180, borderSegments, c)
	}
	if r.BottomRight > 0 {
		center := draw.Vector2{X: round(box.X + box.Width - r.BottomRight), Y: round(box.Y + box.Height - r.BottomRight)}
		d.Ring(center, round(r.BottomRight-w.Bottom), r.BottomRight, 0.1, 90, borderSegments, c)
	}
}

func round(v float32) float32 { return float32(math.Round(float64(v))) }
func trunc(v float32) float32 { return float32(math.Trunc(float64(v))) }
