package raster

import (
	"github.com/fvall/claydash/internal/dashboard"
	"github.com/fvall/claydash/internal/draw"
	"github.com/fvall/claydash/internal/layout"
	"github.com/fvall/claydash/internal/typeface"
)

// Snapshot lays out and renders one frame of app at its current size with
// the chart fully revealed. The pointer is parked off screen so no control
// reacts.
func Snapshot(app *dashboard.App, font *typeface.Typeface, debug bool) *Canvas {
	app.Animation.Duration = 0

	ctx := layout.NewContext(layout.Dimensions{Width: app.Width, Height: app.Height})
	opts := dashboard.FrameOptions{Debug: debug, Pointer: draw.Vector2{X: -1, Y: -1}}
	cmds := dashboard.CreateLayout(ctx, app, opts)

	c := New(int(app.Width), int(app.Height), font)
	c.Clear(dashboard.Scheme.Canvas.Background)
	dashboard.RenderLayout(app, cmds, font, c)
	return c
}
