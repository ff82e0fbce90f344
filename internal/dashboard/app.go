// Package dashboard holds the application state of the distribution
// dashboard and the two per-frame entry points: CreateLayout declares the
// UI and dispatches pointer callbacks, RenderLayout turns the resulting
// commands into draw calls.
//
// Menus and dropdown entries live in arenas owned by App. Layout
// callbacks receive tagged indices into those arenas (see handle.go), so
// no callback ever holds an address.
package dashboard

import (
	crand "crypto/rand"
	"encoding/binary"
	"log"
	"math/rand/v2"
	"time"

	"github.com/fvall/claydash/internal/analysis"
	"github.com/fvall/claydash/internal/animation"
	"github.com/fvall/claydash/internal/chart"
	"github.com/fvall/claydash/internal/database"
	"github.com/fvall/claydash/internal/layout"
	"github.com/fvall/claydash/internal/stats"
	"github.com/fvall/claydash/internal/typeface"
)

// Defaults for a new App.
const (
	DefaultAnimation = 750 * time.Millisecond
	DefaultSamples   = 150 * 1000
	DefaultBins      = 50
	DefaultWidth     = 1080
	DefaultHeight    = 720
)

// Menu arena indices.
const (
	MenuChart = iota
	MenuDist
	menuCount
)

// Journal receives one record per chart regeneration. database.Store
// satisfies it.
type Journal interface {
	InsertRun(run *database.Run) (int64, error)
}

// MenuState is one dropdown selector.
type MenuState struct {
	// Title is the selected label; empty until the user picks one.
	Title string
	// ElementID is the title element, bound while the menu is declared.
	ElementID layout.ID
	// Items are indices into the App's dropdown arena, in menu order.
	Items []int
	Open  bool

	parent *App
}

// Label is the text shown on the menu button.
func (m *MenuState) Label(a *App) string {
	if m.Title != "" {
		return m.Title
	}
	if len(m.Items) > 0 {
		return a.dropdowns[m.Items[0]].Label
	}
	return ""
}

// DropdownState is one entry of a menu.
type DropdownState struct {
	Label string
	// menu is the owning menu's arena index, -1 until Init.
	menu int
}

// Options configures a new App.
type Options struct {
	Width, Height float32
	Animation     time.Duration
	Samples       int
	Bins          int
	// Seed starts the seeding generator. Zero draws one from the OS.
	Seed   uint64
	Params stats.Params

	// Distribution and Chart preselect the menus. The zero values are
	// Uniform and Histogram.
	Distribution stats.Kind
	Chart        chart.Kind
	Font         *typeface.Typeface
	Journal      Journal
}

// App is the whole dashboard state. It is owned by the host's UI
// goroutine; nothing in it is safe for concurrent use.
type App struct {
	Width, Height float32
	SidebarWidth  float32

	Generator stats.Distribution
	// Chart is nil until the first regeneration and after Reset.
	Chart       *chart.Data
	ShouldClose bool
	Animation   animation.Animation

	font    *typeface.Typeface
	measure layout.MeasureTextFunc
	journal Journal

	menus     [menuCount]MenuState
	dropdowns []DropdownState

	params  stats.Params
	samples int
	bins    int
	seed    uint64
	seeder  *rand.Rand

	// scratch and spare keep storage alive across Reset.
	scratch []float64
	spare   *chart.Data

	ctx   *layout.Context
	debug bool
	wired bool
}

// New builds an App from opts. Init must run before any callback fires;
// CreateLayout does that every frame.
func New(opts Options) *App {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.Animation <= 0 {
		opts.Animation = DefaultAnimation
	}
	if opts.Samples <= 0 {
		opts.Samples = DefaultSamples
	}
	if opts.Bins <= 0 {
		opts.Bins = DefaultBins
	}
	if opts.Params == (stats.Params{}) {
		opts.Params = stats.DefaultParams()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = randomSeed()
	}

	a := &App{
		Width:        opts.Width,
		Height:       opts.Height,
		SidebarWidth: MaxSidebarWidth,
		Animation:    animation.New(opts.Animation),
		journal:      opts.Journal,
		params:       opts.Params,
		samples:      opts.Samples,
		bins:         opts.Bins,
		seed:         seed,
		seeder:       rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
	a.Generator = stats.New(opts.Distribution, seed, a.params)
	if opts.Distribution != stats.KindUniform {
		a.menus[MenuDist].Title = opts.Distribution.String()
	}
	if opts.Chart != chart.Histogram {
		a.menus[MenuChart].Title = opts.Chart.String()
	}
	a.SetFont(opts.Font)

	for _, k := range chart.Kinds {
		a.addDropdown(MenuChart, k.String())
	}
	for _, k := range stats.Kinds {
		a.addDropdown(MenuDist, k.String())
	}
	return a
}

func (a *App) addDropdown(menu int, label string) {
	a.dropdowns = append(a.dropdowns, DropdownState{Label: label, menu: -1})
	a.menus[menu].Items = append(a.menus[menu].Items, len(a.dropdowns)-1)
}

// randomSeed reads a seed from the OS, falling back to the clock.
func randomSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		log.Printf("[WARN] Reading random seed: %v, using the clock", err)
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}

// Init (re)wires every back-reference: menus to the App and dropdown
// entries to their menu.
func (a *App) Init() {
	for i := range a.menus {
		m := &a.menus[i]
		m.parent = a
		for _, d := range m.Items {
			a.dropdowns[d].menu = i
		}
	}
	a.wired = true
}

// Menu returns the menu at index i (MenuChart or MenuDist).
func (a *App) Menu(i int) *MenuState { return &a.menus[i] }

// Dropdown returns the dropdown entry at arena index i.
func (a *App) Dropdown(i int) *DropdownState { return &a.dropdowns[i] }

// Seed reports the seed the App was started with.
func (a *App) Seed() uint64 { return a.seed }

// Font returns the UI typeface, which may be nil.
func (a *App) Font() *typeface.Typeface { return a.font }

// SetFont installs the UI typeface and the text measurer built on it.
func (a *App) SetFont(f *typeface.Typeface) {
	a.font = f
	a.measure = nil
	if f != nil {
		a.measure = MeasureText(f)
	}
}

// SetMeasure replaces the text measurer. Hosts that do not draw with the
// typeface, such as a terminal, measure in their own units.
func (a *App) SetMeasure(fn layout.MeasureTextFunc) { a.measure = fn }

// SetJournal attaches or detaches the run journal.
func (a *App) SetJournal(j Journal) { a.journal = j }

// Unclick closes both menus.
func (a *App) Unclick() {
	for i := range a.menus {
		a.menus[i].Open = false
	}
}

// Reset restores the chart menu and clears the chart. The distribution
// selection and the generator are kept.
func (a *App) Reset() {
	a.menus[MenuChart].Title = ""
	if a.Chart != nil {
		a.Chart.Reset()
		a.spare = a.Chart
	}
	a.Chart = nil
	a.Unclick()
	a.Animation.Reset()
	a.scratch = a.scratch[:0]
}

// Simulate draws a fresh seed, reseeds the active generator and rebuilds
// the chart with the kind selected in the chart menu.
func (a *App) Simulate() {
	seed := a.seeder.Uint64()
	a.Generator.Reseed(seed)
	a.Animation.Reset()

	kind := chart.Histogram
	if title := a.menus[MenuChart].Title; title != "" {
		kind = chart.ParseKind(title)
	}

	a.CreateChartData()
	a.Chart.Kind = kind
	a.record(database.TriggerSimulate)
}

// CreateChartData samples the active generator and rebuilds the histogram,
// the density curve and the summary. An existing chart keeps its kind; a
// new one starts as a histogram.
func (a *App) CreateChartData() {
	if a.Chart == nil {
		a.Chart = a.spare
		a.spare = nil
		if a.Chart == nil {
			a.Chart = &chart.Data{}
		}
		a.Chart.Kind = chart.Histogram
	}

	a.scratch = a.Generator.Sample(a.samples, a.scratch)
	a.Chart.Counts = stats.Cut(a.Chart.Counts, a.scratch, a.bins)
	a.Chart.X, a.Chart.Y = a.Generator.Density(a.Chart.X, a.Chart.Y)
	a.Chart.Summary = analysis.Summarize(a.scratch)
}

// SelectChartKind applies a chart-menu choice.
func (a *App) SelectChartKind(label string) {
	a.selectChartKind(&a.menus[MenuChart], label)
}

func (a *App) selectChartKind(m *MenuState, label string) {
	m.Title = label
	m.Open = false
	a.Animation.Reset()
	if a.Chart != nil {
		a.Chart.Kind = chart.ParseKind(label)
	}
}

// SelectDistribution applies a distribution-menu choice: a new generator
// with a fresh seed and a rebuilt chart. Choosing the current
// distribution again only closes the menu. It reports whether the chart
// was rebuilt.
func (a *App) SelectDistribution(label string) bool {
	return a.selectDistribution(&a.menus[MenuDist], label)
}

func (a *App) selectDistribution(m *MenuState, label string) bool {
	m.Open = false
	if label == m.Title {
		return false
	}
	kind, ok := stats.ParseKind(label)
	if !ok {
		log.Printf("[ERROR] Does not know how to handle distribution: %q", label)
		return false
	}
	m.Title = label
	a.Animation.Reset()

	seed := a.seeder.Uint64()
	a.Generator = stats.New(kind, seed, a.params)
	a.CreateChartData()
	a.record(database.TriggerDistribution)
	return true
}

// Percentage is the reveal percentage of the current frame.
func (a *App) Percentage() float64 { return a.Animation.Percentage() }

// record appends the current chart to the journal, if one is attached.
// Journal failures are logged; the dashboard keeps running.
func (a *App) record(trigger string) {
	if a.journal == nil || a.Chart == nil {
		return
	}
	s := a.Chart.Summary
	run := &database.Run{
		Trigger:        trigger,
		Distribution:   a.Generator.Kind().String(),
		ChartKind:      a.Chart.Kind.String(),
		Seed:           a.Generator.Seed(),
		Samples:        s.Count,
		Bins:           len(a.Chart.Counts),
		Mean:           s.Mean,
		StdDev:         s.StdDev,
		Skewness:       s.Skewness,
		ExcessKurtosis: s.ExcessKurtosis,
		Min:            s.Min,
		Max:            s.Max,
		Counts:         append([]uint32(nil), a.Chart.Counts...),
	}
	if _, err := a.journal.InsertRun(run); err != nil {
		log.Printf("[WARN] Journal write failed: %v", err)
	}
}
