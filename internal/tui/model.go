package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fvall/claydash/internal/analysis"
	"github.com/fvall/claydash/internal/chart"
	"github.com/fvall/claydash/internal/dashboard"
	"github.com/fvall/claydash/internal/database"
	"github.com/fvall/claydash/internal/draw"
	"github.com/fvall/claydash/internal/layout"
	"github.com/fvall/claydash/internal/stats"
	"github.com/fvall/claydash/internal/typeface"
)

// ────────────────────────────────────────────────────────────
// Panes
// ────────────────────────────────────────────────────────────

// Pane is what the body of the screen shows.
type Pane int

const (
	PaneDashboard Pane = iota
	PaneHistory
	PaneReport
)

// chromeRows are taken by the header and the footer.
const chromeRows = 2

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Options configures NewModel.
type Options struct {
	FPS   int
	Debug bool
	// Font only gates text rendering; cells are printed with the
	// terminal's own font.
	Font *typeface.Typeface
	// Store is the run journal. Nil disables the history pane.
	Store database.Store
}

// Model is the root BubbleTea model. The dashboard state lives behind
// pointers, so copies of the model made by BubbleTea share it.
type Model struct {
	app    *dashboard.App
	ctx    *layout.Context
	canvas *Canvas
	store  database.Store
	font   *typeface.Typeface
	create dashboard.CreateLayoutFunc
	render dashboard.RenderLayoutFunc
	fps    int

	// Pointer, in virtual pixels. latched keeps a press that was released
	// before the next frame visible for one frame.
	pointer draw.Vector2
	down    bool
	latched bool

	// UI state
	pane        Pane
	debug       bool
	started     bool
	selectedRun int
	width       int
	height      int

	// Data
	runs   []*database.Run
	report *analysis.Report

	// Status
	frames    int
	lastFrame time.Time
	frameTime time.Duration
	statusMsg string
	err       error
}

// NewModel wraps app for the terminal.
func NewModel(app *dashboard.App, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	app.SetMeasure(MeasureCells)
	return Model{
		app:       app,
		ctx:       layout.NewContext(layout.Dimensions{Width: app.Width, Height: app.Height}),
		canvas:    NewCanvas(0, 0),
		store:     opts.Store,
		font:      opts.Font,
		create:    dashboard.CreateLayout,
		render:    dashboard.RenderLayout,
		fps:       opts.FPS,
		debug:     opts.Debug,
		pointer:   draw.Vector2{X: -1, Y: -1},
		statusMsg: "Press s to simulate",
	}
}

// App returns the dashboard state the model drives.
func (m Model) App() *dashboard.App { return m.app }

// ────────────────────────────────────────────────────────────
// Messages
// ────────────────────────────────────────────────────────────

type frameMsg time.Time
type runsLoadedMsg []*database.Run
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

// ────────────────────────────────────────────────────────────
// Init
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m Model) loadRuns() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		runs, err := store.QueryRuns(database.RunFilter{Limit: 100})
		if err != nil {
			return errMsg{err}
		}
		return runsLoadedMsg(runs)
	}
}

// buildReport analyses the current chart. It runs on the update loop
// because it reads the dashboard state.
func (m *Model) buildReport() {
	report, err := m.app.Report(analysis.NewAnalyzer(m.store))
	if err != nil {
		m.err = err
		m.statusMsg = fmt.Sprintf("Error: %v", err)
		return
	}
	m.report = report
	m.statusMsg = fmt.Sprintf("Report for %s seed %d", report.Distribution, report.Seed)
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case frameMsg:
		m.frame(time.Time(msg))
		if m.app.ShouldClose {
			return m, tea.Quit
		}
		return m, m.tick()

	case runsLoadedMsg:
		m.runs = []*database.Run(msg)
		m.selectedRun = clamp(m.selectedRun, 0, max(len(m.runs)-1, 0))
		m.statusMsg = fmt.Sprintf("%d journaled runs", len(m.runs))
		return m, nil

	case errMsg:
		m.err = msg.err
		m.statusMsg = fmt.Sprintf("Error: %v", msg.err)
		return m, nil
	}

	return m, nil
}

// resize fits the dashboard to the terminal minus the chrome rows.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	rows := max(height-chromeRows, 0)
	m.canvas.Resize(width, rows)
	m.app.Width = float32(width * CellWidth)
	m.app.Height = float32(rows * CellHeight)
}

// handleMouse converts a cell event into the virtual pixel at the centre
// of the cell. The header row is above the canvas.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	m.pointer = draw.Vector2{
		X: float32(msg.X*CellWidth) + CellWidth/2,
		Y: float32((msg.Y-1)*CellHeight) + CellHeight/2,
	}
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return
	}
	switch msg.Action {
	case tea.MouseActionPress:
		m.down = true
		m.latched = true
	case tea.MouseActionRelease:
		m.down = false
	}
}

// frame runs one dashboard frame: layout with the callbacks, then paint.
func (m *Model) frame(now time.Time) {
	if !m.started {
		m.app.Simulate()
		m.started = true
	}
	if !m.lastFrame.IsZero() {
		m.frameTime = now.Sub(m.lastFrame)
	}
	m.lastFrame = now
	m.frames++

	pointer, down := m.pointer, m.down || m.latched
	m.latched = false
	if m.pane != PaneDashboard {
		// The dashboard is covered; park the pointer so no control fires.
		pointer, down = draw.Vector2{X: -1, Y: -1}, false
	}
	cmds := m.create(m.ctx, m.app, dashboard.FrameOptions{
		Debug:       m.debug,
		Pointer:     pointer,
		PointerDown: down,
	})
	m.canvas.Reset(dashboard.Scheme.Canvas.Background)
	m.render(m.app, cmds, m.font, m.canvas)
}

// handleKey routes keyboard input. Keys mirror the clickable controls so
// the dashboard works without a mouse.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// ── Global ──

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.pane = PaneDashboard
		return m, nil

	case "h":
		if m.store == nil {
			m.statusMsg = "Journal disabled (set journal.enabled)"
			return m, nil
		}
		m.pane = PaneHistory
		return m, m.loadRuns()

	case "a":
		m.pane = PaneReport
		m.buildReport()
		return m, nil
	}

	// ── History ──

	if m.pane == PaneHistory {
		switch key {
		case "j", "down":
			if m.selectedRun < len(m.runs)-1 {
				m.selectedRun++
			}
		case "k", "up":
			if m.selectedRun > 0 {
				m.selectedRun--
			}
		}
		return m, nil
	}

	// ── Dashboard ──

	switch key {
	case "d":
		m.debug = !m.debug
	case "s", " ":
		m.app.Simulate()
		m.statusMsg = m.app.StatusLine()
	case "r":
		m.app.Reset()
		m.statusMsg = "Reset"
	case "c":
		m.app.SelectChartKind(nextChartKind(m.app).String())
		m.statusMsg = m.app.StatusLine()
	case "1", "2", "3", "4":
		k := stats.Kinds[int(key[0]-'1')]
		if m.app.SelectDistribution(k.String()) {
			m.statusMsg = m.app.StatusLine()
		}
	}
	return m, nil
}

// nextChartKind cycles through the chart menu.
func nextChartKind(app *dashboard.App) chart.Kind {
	cur := chart.Histogram
	if app.Chart != nil {
		cur = app.Chart.Kind
	} else if title := app.Menu(dashboard.MenuChart).Title; title != "" {
		cur = chart.ParseKind(title)
	}
	return chart.Kinds[(int(cur)+1)%len(chart.Kinds)]
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return initStyle.Render("Initializing...")
	}

	header := renderHeader(&m)
	footer := renderFooter(&m)
	bodyHeight := max(m.height-chromeRows, 0)

	var body string
	switch m.pane {
	case PaneHistory:
		body = renderHistoryPanel(&m, m.width, bodyHeight)
	case PaneReport:
		body = renderReportPanel(&m, m.width, bodyHeight)
	default:
		body = m.canvas.String()
	}
	body = lipgloss.NewStyle().Width(m.width).Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// Run starts the terminal dashboard and blocks until it exits.
func Run(app *dashboard.App, opts Options) error {
	p := tea.NewProgram(NewModel(app, opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return &dashboard.AppError{Op: "tui.Run", Kind: dashboard.KindWindow, Err: err}
	}
	return nil
}
