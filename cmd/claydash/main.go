// ClayDash CLI renders, analyses and inspects distribution runs without
// a window.
//
// Usage:
//
//	claydash <command> [flags]
//
// Commands:
//
//	snapshot  Render one dashboard frame to a PNG file
//	stats     Sample a distribution and print an analysis report
//	history   List journaled runs
//	version   Print version information
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/fvall/claydash/internal/analysis"
	"github.com/fvall/claydash/internal/config"
	"github.com/fvall/claydash/internal/database"
	"github.com/fvall/claydash/internal/raster"
	"github.com/fvall/claydash/internal/session"
	"github.com/fvall/claydash/internal/stats"
	"github.com/fvall/claydash/pkg/timeutil"
)

var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "snapshot":
		cmdSnapshot()
	case "stats":
		cmdStats()
	case "history":
		cmdHistory()
	case "version":
		fmt.Printf("ClayDash v%s (commit: %s, built: %s)\n", Version, GitCommit, BuildTime)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`ClayDash: interactive distribution dashboard

Usage:
  claydash <command> [flags]

Commands:
  snapshot   Render one dashboard frame to a PNG file
  stats      Sample a distribution and print an analysis report
  history    List journaled runs
  version    Print version information

Run 'claydash <command> --help' for details on each command.
The dashboards themselves are claydash-gui and claydash-tui.`)
}

// cmdSnapshot renders a fully revealed frame of a fresh simulation.
func cmdSnapshot() {
	fs := flag.NewFlagSet("snapshot", flag.ExitOnError)
	flags := config.RegisterFlags(fs)
	out := fs.String("out", "claydash.png", "Output PNG path")
	fs.Parse(os.Args[2:])

	cfg, err := flags.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	s, err := session.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer s.Close()

	s.App.Simulate()
	canvas := raster.Snapshot(s.App, s.Font, cfg.Window.Debug)
	if err := canvas.SavePNG(*out); err != nil {
		log.Fatalf("Failed to write snapshot: %v", err)
	}
	fmt.Printf("Wrote %s (%s)\n", *out, s.App.StatusLine())
}

// cmdStats samples the configured distribution once and analyses it.
func cmdStats() {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	flags := config.RegisterFlags(fs)
	outputFormat := fs.String("format", "markdown", "Output format: markdown, json")
	record := fs.Bool("record", false, "Append the run to the journal")
	fs.Parse(os.Args[2:])

	cfg, err := flags.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var store database.Store
	if cfg.Journal.Enabled {
		db, err := session.OpenJournal(cfg.Journal.Path)
		if err != nil {
			log.Fatalf("Failed to open journal: %v", err)
		}
		defer db.Close()
		store = db
	}

	seed := cfg.Sampling.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	d := stats.New(cfg.Kind(), seed, cfg.Params())
	samples := d.Sample(cfg.Sampling.Samples, nil)

	analyzer := analysis.NewAnalyzer(store)
	report, err := analyzer.FullAnalysis(d, samples, cfg.Sampling.Bins)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	if *record {
		if store == nil {
			log.Fatalf("--record needs the journal (set --journal or journal.enabled)")
		}
		run := &database.Run{
			Trigger:      database.TriggerCLI,
			Distribution: report.Distribution,
			ChartKind:    cfg.Distribution.Chart,
			Seed:         seed,
			Samples:      len(samples),
			Bins:         cfg.Sampling.Bins,
			Counts:       stats.Cut(nil, samples, cfg.Sampling.Bins),
			Mean:         report.Summary.Mean,
			StdDev:       report.Summary.StdDev,
			Skewness:     report.Summary.Skewness,
			Min:          report.Summary.Min,
			Max:          report.Summary.Max,

			ExcessKurtosis: report.Summary.ExcessKurtosis,
		}
		if _, err := store.InsertRun(run); err != nil {
			log.Fatalf("Failed to record run: %v", err)
		}
	}

	switch *outputFormat {
	case "json":
		b, _ := json.MarshalIndent(report, "", "  ")
		fmt.Println(string(b))
	case "markdown":
		fmt.Print(analysis.FormatReport(report))
	default:
		fmt.Fprintf(os.Stderr, "Unknown format: %s\n", *outputFormat)
		os.Exit(1)
	}
}

// cmdHistory lists journaled runs, most recent first.
func cmdHistory() {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	flags := config.RegisterFlags(fs)
	dist := fs.String("filter", "", "Only runs of this distribution")
	trigger := fs.String("trigger", "", "Only runs with this trigger: simulate, distribution, cli")
	limit := fs.Int("limit", 20, "Maximum results")
	asJSON := fs.Bool("json", false, "Print JSON instead of a table")
	fs.Parse(os.Args[2:])

	cfg, err := flags.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := session.OpenJournal(cfg.Journal.Path)
	if err != nil {
		log.Fatalf("Failed to open journal at %s: %v", cfg.Journal.Path, err)
	}
	defer store.Close()

	filter := database.RunFilter{Limit: *limit}
	if *dist != "" {
		filter.Distribution = dist
	}
	if *trigger != "" {
		filter.Trigger = trigger
	}
	runs, err := store.QueryRuns(filter)
	if err != nil {
		log.Fatalf("Query failed: %v", err)
	}

	if *asJSON {
		b, _ := json.MarshalIndent(runs, "", "  ")
		fmt.Println(string(b))
		return
	}

	if len(runs) == 0 {
		fmt.Println("No runs journaled yet.")
		return
	}
	fmt.Printf("%-6s %-10s %-12s %-12s %-10s %10s %10s\n", "RUN", "WHEN", "TRIGGER", "DIST", "CHART", "MEAN", "SD")
	for _, r := range runs {
		fmt.Printf("%-6d %-10s %-12s %-12s %-10s %10.4f %10.4f\n",
			r.RunID, timeutil.RelativeTime(r.CreatedAt), r.Trigger, r.Distribution, r.ChartKind, r.Mean, r.StdDev)
	}
}
