// ClayDash TUI runs the distribution dashboard in a terminal.
//
// Usage:
//
//	claydash-tui [flags]
//
// Flags:
//
//	--config   Path to a config file (default: ./claydash.yaml if present)
//	--dist     Initial distribution
//	--journal  Enable the run journal at this path
//	--log      Write the log to this file (default: discarded)
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fvall/claydash/internal/config"
	"github.com/fvall/claydash/internal/session"
	"github.com/fvall/claydash/internal/tui"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	logPath := flag.String("log", "", "Write the log to this file")
	flag.Parse()

	// The terminal belongs to the dashboard; the log must not draw on it.
	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "claydash")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := flags.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	s, err := session.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting dashboard: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	err = tui.Run(s.App, tui.Options{
		FPS:   cfg.Window.FPS,
		Debug: cfg.Window.Debug,
		Font:  s.Font,
		Store: s.Store,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
