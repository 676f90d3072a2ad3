// Package tui provides the interactive Bubble Tea dashboard for nsfgrants.
package tui

import (
	"fmt"
	"strings"
	"time"

	"nsfgrants/internal/cli"
	"nsfgrants/internal/config"
	"nsfgrants/internal/model"
	"nsfgrants/internal/pipeline"
	"nsfgrants/internal/store"
	"nsfgrants/internal/tui/components"
	"nsfgrants/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// DataLoadedMsg is sent when the data pipeline finishes.
type DataLoadedMsg struct {
	Result   *pipeline.CachedLoadResult
	Err      error
	LoadTime time.Duration
}

// ProgressMsg reports export file parsing progress.
type ProgressMsg struct {
	Current int
	Total   int
}

// Tab indices, matching components.Tabs order.
const (
	tabMap = iota
	tabTimeline
	tabTerminated
	tabDirectorates
	tabImpact
	tabAlignment
)

// App is the root Bubble Tea model.
type App struct {
	// Data
	records  []model.GrantRecord
	loaded   bool
	loadErr  error
	loadTime time.Duration

	// Pre-computed aggregates (selection-independent)
	stateStats []model.StateYearStats
	dirStats   []model.DirectorateYearStats
	lifecycle  []model.LifecyclePoint
	ranking    []model.StateTermination
	summary    model.SummaryStats

	// Lookup indexes built by recompute
	stateYear   map[string]map[int]model.StateYearStats
	lifeByState map[string][]model.LifecyclePoint // "" key is the national series

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	year      int
	selection Selection
	cursor    string // map keyboard cursor, state code

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	// Loading state, fed by the loader goroutine through loadSub
	spinner     spinner.Model
	progress    int
	progressMax int
	loadSub     chan tea.Msg

	inputs  pipeline.Inputs
	noCache bool
	log     *zap.Logger
}

const (
	minTerminalWidth = 80
	maxContentWidth  = 180
	minContentHeight = 5

	// Map placement inside the Map tab: tab bar row, then title row,
	// then a blank row. CellAt hit-testing depends on these.
	mapOriginX = 2
	mapOriginY = 3

	// First bar row of the terminated view: tab bar, card border, card
	// title. Row hit-testing depends on this matching renderTerminatedTab.
	terminatedRowsOriginY = 3
)

// NewApp creates a new TUI app model.
func NewApp(inputs pipeline.Inputs, defaultYear int, noCache bool, log *zap.Logger) App {
	needSetup := !config.Exists()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	year := defaultYear
	if year < model.FirstYear || year > model.LastYear {
		year = model.LastYear
	}

	return App{
		inputs:    inputs,
		noCache:   noCache,
		year:      year,
		needSetup: needSetup,
		spinner:   sp,
		cursor:    "CA",
		log:       log,
		loadSub:   make(chan tea.Msg, 1),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.inputs, a.noCache, a.log, a.loadSub),
		a.spinner.Tick,
	)
}

func (a *App) recompute() {
	facts := pipeline.ExpandFacts(a.records)
	a.stateStats = pipeline.AggregateStates(facts)
	a.dirStats = pipeline.AggregateDirectorates(facts)
	a.lifecycle = pipeline.LifecycleSeries(a.records)
	a.ranking = pipeline.TerminationRanking(a.records)
	a.summary = pipeline.Summarize(a.records)

	a.stateYear = make(map[string]map[int]model.StateYearStats)
	for _, s := range a.stateStats {
		byYear, ok := a.stateYear[s.State]
		if !ok {
			byYear = make(map[int]model.StateYearStats, model.LastYear-model.FirstYear+1)
			a.stateYear[s.State] = byYear
		}
		byYear[s.Year] = s
	}

	a.lifeByState = make(map[string][]model.LifecyclePoint)
	for _, p := range a.lifecycle {
		a.lifeByState[p.State] = append(a.lifeByState[p.State], p)
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if a.loadErr != nil {
			if key == "q" {
				return a, tea.Quit
			}
			return a, nil
		}

		if !a.loaded {
			if key == "q" {
				return a, tea.Quit
			}
			return a, nil
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		return a.updateKeys(key)

	case DataLoadedMsg:
		a.loaded = true
		a.loadTime = msg.LoadTime
		a.loadErr = msg.Err
		if msg.Result != nil {
			a.records = msg.Result.Records
			a.recompute()
		}

		// Activate first-run setup after data loads
		if a.loadErr == nil && a.needSetup {
			a.setupForm = newSetupForm(len(a.records), a.inputs.DataDir, &a.setupVals)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}
		return a, nil

	case ProgressMsg:
		a.progress = msg.Current
		a.progressMax = msg.Total
		return a, waitForLoadMsg(a.loadSub)

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
		return a, nil
	}

	// Tab bar is the first row
	if msg.Y == 0 {
		if tab := components.TabAtX(msg.X, a.activeTab); tab >= 0 {
			a.activeTab = tab
		}
		return a, nil
	}

	if a.activeTab == tabTerminated {
		rows := a.terminatedRowStates()
		idx := msg.Y - terminatedRowsOriginY
		if idx >= 0 && idx < len(rows) {
			a.selection.Toggle(rows[idx])
		}
		return a, nil
	}

	if a.activeTab != tabMap {
		return a, nil
	}

	state := components.CellAt(msg.X-mapOriginX, msg.Y-mapOriginY)
	if state == "" {
		// Clicking empty map space clears the selection
		if msg.Y >= mapOriginY && msg.Y < mapOriginY+components.MapHeight {
			a.selection.Clear()
		}
		return a, nil
	}

	a.cursor = state
	if msg.Shift {
		a.selection.Toggle(state)
	} else {
		a.selection.Replace(state)
	}
	return a, nil
}

func (a App) updateKeys(key string) (tea.Model, tea.Cmd) {
	// Map tab: arrows drive the keyboard cursor
	if a.activeTab == tabMap {
		switch key {
		case "up", "k":
			a.cursor = components.NextTile(a.cursor, 0, -1)
			return a, nil
		case "down", "j":
			a.cursor = components.NextTile(a.cursor, 0, 1)
			return a, nil
		case "left", "h":
			a.cursor = components.NextTile(a.cursor, -1, 0)
			return a, nil
		case "right":
			a.cursor = components.NextTile(a.cursor, 1, 0)
			return a, nil
		case "enter":
			a.selection.Replace(a.cursor)
			return a, nil
		case " ", "x":
			a.selection.Toggle(a.cursor)
			return a, nil
		}
	} else {
		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "c":
		a.selection.Clear()
		return a, nil
	case "[":
		if a.year > model.FirstYear {
			a.year--
		}
		return a, nil
	case "]":
		if a.year < model.LastYear {
			a.year++
		}
		return a, nil
	case "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	case "shift+tab":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case "r":
		a.loaded = false
		a.progress = 0
		a.progressMax = 0
		return a, tea.Batch(
			loadDataCmd(a.inputs, a.noCache, a.log, a.loadSub),
			a.spinner.Tick,
		)
	}

	if len(key) == 1 {
		if tab := components.TabIdxByKey(rune(key[0])); tab >= 0 {
			a.activeTab = tab
		}
	}
	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		_ = a.saveSetupConfig()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.loadErr != nil {
		return a.viewLoadError()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  nsfgrants needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoadError() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Red).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface).Bold(true)
	bodyStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Could not load grant data"))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render(a.loadErr.Error()))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render("Press q to quit."))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewLoading() string {
	t := theme.Active
	w := a.width
	h := a.height

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	spinnerStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface)

	countStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ nsfgrants"))
	b.WriteString(subtitleStyle.Render(" · NSF Grant Awards"))
	b.WriteString("\n\n")

	if a.progressMax > 0 {
		barW := 40
		if barW > w-30 {
			barW = w - 30
		}
		if barW < 20 {
			barW = 20
		}
		pct := float64(a.progress) / float64(a.progressMax)
		b.WriteString(spinnerStyle.Render(a.spinner.View()))
		b.WriteString(subtitleStyle.Render(" Parsing yearly exports\n\n"))
		b.WriteString(components.ProgressBar(pct, barW))
		b.WriteString("\n")
		b.WriteString(countStyle.Render(cli.FormatNumber(int64(a.progress))))
		b.WriteString(subtitleStyle.Render(" / "))
		b.WriteString(countStyle.Render(cli.FormatNumber(int64(a.progressMax))))
	} else {
		b.WriteString(spinnerStyle.Render(a.spinner.View()))
		b.WriteString(subtitleStyle.Render(" Reading data files..."))
	}

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"m l e d i a", "Jump to view"},
		{"tab ⇧tab", "Next / Previous view"},
		{"← ↓ ↑ →", "Move map cursor (Map view)"},
		{"[ ]", "Previous / Next year"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-12s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Selection"))
	b.WriteString("\n")
	selBindings := []struct{ key, desc string }{
		{"click", "Select state"},
		{"shift+click", "Add/remove state"},
		{"enter", "Select state at cursor"},
		{"space / x", "Toggle state at cursor"},
		{"c", "Clear selection"},
	}
	for _, bind := range selBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-12s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"r", "Reload data"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-12s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	dataAge := fmt.Sprintf("%.1fs", a.loadTime.Seconds())
	statusBar := components.RenderStatusBar(w, a.year, a.selection.Summary(), dataAge)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabMap:
		content = a.renderMapTab(cw, contentH)
	case tabTimeline:
		content = a.renderTimelineTab(cw, contentH)
	case tabTerminated:
		content = a.renderTerminatedTab(cw, contentH)
	case tabDirectorates:
		content = a.renderDirectoratesTab(cw, contentH)
	case tabImpact:
		content = a.renderImpactTab(cw, contentH)
	case tabAlignment:
		content = a.renderAlignmentTab(cw, contentH)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)

	// Map hit-testing assumes left-aligned content
	content = lipgloss.Place(w, contentH, lipgloss.Left, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

// selectedOrAll returns the selected states, or every known state with
// data when the selection is empty.
func (a App) selectedOrAll() []string {
	if !a.selection.Empty() {
		return a.selection.States()
	}
	states := make([]string, 0, len(a.stateYear))
	for _, s := range a.stateStats {
		if s.Year == a.year {
			states = append(states, s.State)
		}
	}
	return states
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color so
// gaps between cards and empty lines keep the theme background.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Data Loading ───────────────────────────────────────────────

// loadDataCmd starts the data pipeline in a background goroutine. It streams
// ProgressMsg updates and a final DataLoadedMsg through sub.
func loadDataCmd(inputs pipeline.Inputs, noCache bool, log *zap.Logger, sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		go func() {
			start := time.Now()

			// Non-blocking send so parse workers aren't stalled. A skipped
			// update is caught up by the next one.
			progressFn := func(current, total int) {
				select {
				case sub <- ProgressMsg{Current: current, Total: total}:
				default:
				}
			}

			if inputs.CleanFile != "" {
				result, err := pipeline.LoadClean(inputs.CleanFile, log)
				msg := DataLoadedMsg{Err: err, LoadTime: time.Since(start)}
				if result != nil {
					msg.Result = &pipeline.CachedLoadResult{LoadResult: *result}
				}
				sub <- msg
				return
			}

			if !noCache {
				cache, err := store.Open(pipeline.CachePath())
				if err == nil {
					cr, loadErr := pipeline.LoadWithCache(inputs, cache, log, progressFn)
					_ = cache.Close()
					sub <- DataLoadedMsg{Result: cr, Err: loadErr, LoadTime: time.Since(start)}
					return
				}
				log.Warn("cache unavailable", zap.Error(err))
			}

			result, err := pipeline.Load(inputs, log, progressFn)
			msg := DataLoadedMsg{Err: err, LoadTime: time.Since(start)}
			if result != nil {
				msg.Result = &pipeline.CachedLoadResult{LoadResult: *result}
			}
			sub <- msg
		}()

		// Block until the first message (either ProgressMsg or DataLoadedMsg)
		return <-sub
	}
}

// waitForLoadMsg blocks until the next message arrives from the loader goroutine.
func waitForLoadMsg(sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-sub
	}
}
