package desktop

import (
	"errors"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/fvall/claydash/internal/dashboard"
	"github.com/fvall/claydash/internal/draw"
	"github.com/fvall/claydash/internal/layout"
	"github.com/fvall/claydash/internal/typeface"
)

// Options configures Run.
type Options struct {
	Title string
	FPS   int
	Debug bool
	Font  *typeface.Typeface
}

// Run opens the window and drives app until the window closes, Q is
// pressed or the Exit button is released. It must be called from the main
// goroutine.
func Run(app *dashboard.App, opts Options) error {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Title == "" {
		opts.Title = "ClayDash"
	}
	if !opts.Font.Valid() {
		return &dashboard.AppError{Op: "desktop.Run", Kind: dashboard.KindInvalidFont, Err: typeface.ErrInvalidFont}
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(app.Width), int32(app.Height), opts.Title)
	if !rl.IsWindowReady() {
		return &dashboard.AppError{Op: "desktop.Run", Kind: dashboard.KindWindow, Err: errors.New("window is not ready")}
	}
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(opts.FPS))
	rl.SetExitKey(rl.KeyQ)

	font := rl.LoadFontFromMemory(".ttf", opts.Font.Bytes(), typeface.DefaultBaseSize, nil)
	if font.BaseSize == 0 || font.Texture.ID == 0 {
		return &dashboard.AppError{Op: "desktop.Run", Kind: dashboard.KindInvalidFont, Err: typeface.ErrInvalidFont}
	}
	defer rl.UnloadFont(font)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)

	app.SetFont(opts.Font)
	log.Printf("[INFO] Window %gx%g at %d fps", app.Width, app.Height, opts.FPS)

	w := &window{
		app:    app,
		ctx:    layout.NewContext(layout.Dimensions{Width: app.Width, Height: app.Height}),
		drawer: NewDrawer(font),
		font:   opts.Font,
		debug:  opts.Debug,
		create: dashboard.CreateLayout,
		render: dashboard.RenderLayout,
	}

	// The first frame is shown before the initial simulation so the window
	// appears without waiting for the samples.
	first := true
	for !app.ShouldClose && !rl.WindowShouldClose() {
		w.frame()
		if first {
			time.Sleep(time.Second / time.Duration(opts.FPS))
			app.Simulate()
			first = false
		}
	}
	log.Printf("[INFO] Window closed")
	return nil
}

type window struct {
	app    *dashboard.App
	ctx    *layout.Context
	drawer *Drawer
	font   *typeface.Typeface
	debug  bool
	create dashboard.CreateLayoutFunc
	render dashboard.RenderLayoutFunc
}

func (w *window) frame() {
	w.app.Width = float32(rl.GetScreenWidth())
	w.app.Height = float32(rl.GetScreenHeight())
	if rl.IsKeyPressed(rl.KeyD) {
		w.debug = !w.debug
	}

	mouse := rl.GetMousePosition()
	cmds := w.create(w.ctx, w.app, dashboard.FrameOptions{
		Debug:       w.debug,
		Pointer:     draw.Vector2{X: mouse.X, Y: mouse.Y},
		PointerDown: rl.IsMouseButtonDown(rl.MouseButtonLeft),
	})

	rl.BeginDrawing()
	rl.ClearBackground(rgba(dashboard.Scheme.Canvas.Background))
	w.render(w.app, cmds, w.font, w.drawer)
	rl.EndDrawing()
}
