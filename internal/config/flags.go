package config

import (
	"flag"
	"os"
)

// Flags are the command-line overrides shared by every command. They are
// applied after the file and the environment.
type Flags struct {
	fs *flag.FlagSet

	Path    string
	Dist    string
	Chart   string
	Samples int
	Bins    int
	Seed    uint64
	Width   float64
	Height  float64
	FPS     int
	Debug   bool
	Journal string
}

// RegisterFlags defines the shared flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.Path, "config", "", "Path to a config file (default: ./"+FileName+" if present)")
	fs.StringVar(&f.Dist, "dist", "", "Distribution: Uniform, Normal, Gamma, Exponential")
	fs.StringVar(&f.Chart, "chart", "", "Chart kind: Histogram, Line, Hist+Line")
	fs.IntVar(&f.Samples, "samples", 0, "Samples per simulation")
	fs.IntVar(&f.Bins, "bins", 0, "Histogram bins")
	fs.Uint64Var(&f.Seed, "seed", 0, "Seed for the seeding generator (0: random)")
	fs.Float64Var(&f.Width, "width", 0, "Window width in pixels")
	fs.Float64Var(&f.Height, "height", 0, "Window height in pixels")
	fs.IntVar(&f.FPS, "fps", 0, "Target frames per second")
	fs.BoolVar(&f.Debug, "debug", false, "Start with the debug overlay")
	fs.StringVar(&f.Journal, "journal", "", "Enable the run journal at this path")
	return f
}

// Load resolves the config from the working directory, then applies the
// flags that were set on the command line.
func (f *Flags) Load() (*Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}
	return f.LoadFrom(dir)
}

// LoadFrom is Load with an explicit directory for the optional file.
func (f *Flags) LoadFrom(dir string) (*Config, error) {
	cfg, err := Load(dir, f.Path)
	if err != nil {
		return nil, err
	}
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "dist":
			cfg.Distribution.Kind = f.Dist
		case "chart":
			cfg.Distribution.Chart = f.Chart
		case "samples":
			cfg.Sampling.Samples = f.Samples
		case "bins":
			cfg.Sampling.Bins = f.Bins
		case "seed":
			cfg.Sampling.Seed = f.Seed
		case "width":
			cfg.Window.Width = float32(f.Width)
		case "height":
			cfg.Window.Height = float32(f.Height)
		case "fps":
			cfg.Window.FPS = f.FPS
		case "debug":
			cfg.Window.Debug = f.Debug
		case "journal":
			cfg.Journal.Enabled = true
			cfg.Journal.Path = f.Journal
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
