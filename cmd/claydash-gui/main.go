// ClayDash GUI runs the distribution dashboard in a desktop window.
//
// Usage:
//
//	claydash-gui [flags]
//
// Flags:
//
//	--config   Path to a config file (default: ./claydash.yaml if present)
//	--width    Initial window width
//	--height   Initial window height
//	--fps      Target frames per second
//	--journal  Enable the run journal at this path
//
// Keys: D toggles the debug overlay, Q quits.
package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/fvall/claydash/internal/config"
	"github.com/fvall/claydash/internal/desktop"
	"github.com/fvall/claydash/internal/session"
)

// raylib must run on the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	s, err := session.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer s.Close()

	err = desktop.Run(s.App, desktop.Options{
		Title: cfg.Window.Title,
		FPS:   cfg.Window.FPS,
		Debug: cfg.Window.Debug,
		Font:  s.Font,
	})
	if err != nil {
		log.Fatalf("Window failed: %v", err)
	}
}
