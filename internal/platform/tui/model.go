package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/registry"
	"github.com/vovakirdan/arcade-hub/internal/session"
)

// Reporter applies a finished session to the player's profile.
// *session.Manager implements it.
type Reporter interface {
	Report(gameID string, policy session.Policy, outcome core.Outcome, finalScore int) (session.Report, error)
}

// Deps are the collaborators a game model reports into.
type Deps struct {
	Reporter Reporter    // nil plays without a profile
	Accent   string      // "#rrggbb" theme accent for ColorAccent cells
	Logger   *log.Logger // defaults to log.Default()
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	latch     *core.InputLatch
	keys      *KeyMapper
	deps      Deps
	config    core.RuntimeConfig
	gameState core.GameState
	report    *session.Report
	gen       uint64 // tick generation owned by this model
	embedded  bool   // true inside SessionModel: back returns to the menu
	quitting  bool
	back      bool
	reported  bool // Whether the current session has been reported
}

// NewModel creates a new Bubble Tea model for the given game and starts
// a fresh session.
func NewModel(game registry.Game, cfg core.RuntimeConfig, deps Deps) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		latch:  core.NewInputLatch(),
		keys:   NewKeyMapper(),
		deps:   deps,
		config: cfg,
		gen:    nextTickGen(),
	}
	m.begin()
	return m
}

// begin resets the game and moves it to Running.
func (m *Model) begin() {
	m.game.Reset(m.config)
	if err := m.game.Start(); err != nil {
		m.deps.Logger.Error("cannot start game", "game", m.game.ID(), "err", err)
	}
	m.gameState = m.game.State()
	m.latch.Reset()
	m.report = nil
	m.reported = false
}

// Init starts the tick loop at the game's rate.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.game.TickRate(), m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Host controls are handled here;
// everything else is latched for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapControl(msg) {
	case ControlQuit:
		m.quitting = true
		return m, tea.Quit

	case ControlScreenshot:
		m.saveScreenshot()
		return m, nil

	case ControlPause:
		// The tick chain is suspended while paused so the latch keeps
		// whatever is typed until the game resumes.
		var err error
		var cmd tea.Cmd
		switch m.game.Status() {
		case core.StatusRunning:
			if err = m.game.Pause(); err == nil {
				m.gen = nextTickGen()
			}
		case core.StatusPaused:
			if err = m.game.Resume(); err == nil {
				cmd = tickCmd(m.game.TickRate(), m.gen)
			}
		}
		if err != nil {
			m.deps.Logger.Warn("pause toggle failed", "game", m.game.ID(), "err", err)
		}
		m.gameState = m.game.State()
		return m, cmd

	case ControlRestart:
		if m.gameState.GameOver() {
			// New seed for a new game
			m.config.Seed = time.Now().UnixNano()
			m.begin()
		}
		return m, nil

	case ControlBack:
		if m.gameState.GameOver() || m.gameState.Paused() {
			m.back = true
			if !m.embedded {
				return m, tea.Quit
			}
		}
		return m, nil
	}

	if k, ok := m.keys.MapKey(msg); ok {
		m.latch.Tap(k)
	}
	return m, nil
}

// handleMouse feeds the pointer channel of the latch.
func (m Model) handleMouse(msg tea.MouseMsg) {
	m.latch.OnPointerMove(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.latch.OnPointerDown()
		}
	case tea.MouseActionRelease:
		m.latch.OnPointerUp()
	}
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Games size their world from the screen, so only a session that has
	// not ticked yet is rebuilt.
	if m.gameState.Status == core.StatusRunning && m.gameState.Ticks == 0 {
		m.begin()
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.game.Status() == core.StatusPaused {
		return m, nil
	}
	result := m.game.Step(m.latch.Snapshot())
	m.gameState = result.State

	// Report once per session
	if m.gameState.GameOver() && !m.reported {
		m.reported = true
		m.reportOutcome()
	}

	return m, tickCmd(m.game.TickRate(), m.gen)
}

// reportOutcome feeds the finished session to the reporter.
func (m *Model) reportOutcome() {
	if m.deps.Reporter == nil {
		return
	}
	rep, err := m.deps.Reporter.Report(m.game.ID(), m.game.Policy(), m.gameState.Outcome, m.gameState.Score)
	if err != nil {
		m.deps.Logger.Error("cannot report session", "game", m.game.ID(), "err", err)
		return
	}
	m.report = &rep
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.deps.Logger.Warn("cannot create screenshot dir", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.deps.Logger.Warn("cannot save screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.report != nil {
		m.drawReport()
	}
	return RenderScreen(m.screen, m.deps.Accent)
}

// drawReport writes the profile outcome on the bottom row.
func (m Model) drawReport() {
	line := fmt.Sprintf("+%d points  streak %s", m.report.Points, m.report.Streak)
	if m.report.NewBest {
		line += "  NEW BEST"
	}
	y := m.screen.Height() - 1
	x := (m.screen.Width() - len(line)) / 2
	m.screen.DrawTextColored(x, y, line, core.ColorAccent)
}

// State returns the last observed session state.
func (m Model) State() core.GameState {
	return m.gameState
}

// LastReport returns the report of the finished session, nil if none.
func (m Model) LastReport() *session.Report {
	return m.report
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// Run starts the Bubble Tea program for one game.
func Run(game registry.Game, cfg core.RuntimeConfig, deps Deps) error {
	model := NewModel(game, cfg, deps)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
