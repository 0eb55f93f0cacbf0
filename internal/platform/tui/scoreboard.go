package tui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/profile"
	"github.com/vovakirdan/arcade-hub/internal/registry"
	"github.com/vovakirdan/arcade-hub/internal/session"
	"github.com/vovakirdan/arcade-hub/internal/storage"
)

const (
	historyLimit = 50
	allGames     = "" // RecentSessions lists every game for an empty id
)

// History is the session log behind the scoreboard.
// *storage.Store implements it.
type History interface {
	RecentSessions(gameID string, limit int) ([]session.Record, error)
	WinCount(gameID string) (int, error)
	HighScore(gameID string) (int, error)
	GameStats(gameID string) (*storage.GameStats, error)
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextGame  key.Binding
	PrevGame  key.Binding
	Favorites key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextGame, k.PrevGame, k.Favorites, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Favorites, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		NextGame:  key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next game")),
		PrevGame:  key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev game")),
		Favorites: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorites only")),
		Back:      key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// boardTab is one page of the scoreboard: a game, or allGames.
type boardTab struct {
	id    string
	title string
}

// ScoreboardModel shows the session log: what each finished game scored,
// the points it awarded and what it did to the streak.
type ScoreboardModel struct {
	history   History        // nil when there is no database
	profile   *profile.Store // nil plays without a profile
	tabs      []boardTab
	cursor    int
	favOnly   bool
	records   []session.Record
	summary   string
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard over history. Both history and
// prof may be nil.
func NewScoreboardModel(history History, prof *profile.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		history: history,
		profile: prof,
		help:    help.New(),
		keys:    DefaultScoreboardKeyMap(),
		width:   width,
		height:  height,
	}
	m.tabs = m.buildTabs()
	m.table = m.newTable()
	m.reload()
	return m
}

// buildTabs lists the overview followed by every game, or only the
// favorites when the filter is on.
func (m ScoreboardModel) buildTabs() []boardTab {
	tabs := []boardTab{{id: allGames, title: "All games"}}
	for _, g := range registry.List() {
		if m.favOnly && (m.profile == nil || !m.profile.IsFavorite(g.ID)) {
			continue
		}
		tabs = append(tabs, boardTab{id: g.ID, title: g.Title})
	}
	return tabs
}

func (m ScoreboardModel) selected() boardTab {
	return m.tabs[m.cursor]
}

func (m ScoreboardModel) accent() lipgloss.Color {
	if m.profile != nil {
		return lipgloss.Color(m.profile.Snapshot().ThemeAccent)
	}
	return lipgloss.Color(profile.DefaultAccent)
}

func (m ScoreboardModel) columns() []table.Column {
	cols := []table.Column{
		{Title: "When", Width: 12},
		{Title: "Result", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Points", Width: 7},
		{Title: "Streak", Width: 8},
	}
	if m.selected().id == allGames {
		cols = append([]table.Column{{Title: "Game", Width: 14}}, cols...)
	}
	return cols
}

func (m ScoreboardModel) newTable() table.Model {
	height := m.height - 9 // title, summary, tabs, borders and help
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(m.accent()).
		Bold(false)
	t.SetStyles(s)
	return t
}

// reload fetches the log of the selected tab and rebuilds the table.
func (m *ScoreboardModel) reload() {
	m.records, m.summary, m.loadErr = nil, "", nil
	id := m.selected().id
	if m.history != nil {
		m.records, m.loadErr = m.history.RecentSessions(id, historyLimit)
	}
	if id == allGames {
		m.summary = m.profileSummary()
	} else {
		m.summary = m.gameSummary(id)
	}

	// Rows must match the columns at every step.
	m.table.SetRows(nil)
	m.table.SetColumns(m.columns())
	m.table.SetRows(m.rows())
	m.table.GotoTop()
}

func (m ScoreboardModel) rows() []table.Row {
	overview := m.selected().id == allGames
	rows := make([]table.Row, 0, len(m.records))
	for _, r := range m.records {
		row := table.Row{
			r.EndedAt.Local().Format("Jan 02 15:04"),
			resultLabel(r.Outcome),
			strconv.Itoa(r.Score),
			fmt.Sprintf("+%d", r.Points),
			streakLabel(r.Streak),
		}
		if overview {
			row = append(table.Row{gameTitle(r.GameID)}, row...)
		}
		rows = append(rows, row)
	}
	return rows
}

func (m ScoreboardModel) profileSummary() string {
	if m.profile == nil {
		return ""
	}
	p := m.profile.Snapshot()
	return fmt.Sprintf("%s %s  |  %d points  |  streak %d",
		p.Identity.Avatar, p.Identity.Name, p.Points, p.Streak)
}

func (m ScoreboardModel) gameSummary(gameID string) string {
	var parts []string
	if m.history != nil {
		if stats, err := m.history.GameStats(gameID); err == nil && stats.GamesCount > 0 {
			parts = append(parts, fmt.Sprintf("played %d", stats.GamesCount))
		}
		if wins, err := m.history.WinCount(gameID); err == nil && wins > 0 {
			parts = append(parts, fmt.Sprintf("won %d", wins))
		}
		if high, err := m.history.HighScore(gameID); err == nil && high > 0 {
			parts = append(parts, fmt.Sprintf("record %d", high))
		}
	}
	if m.profile != nil {
		parts = append(parts, fmt.Sprintf("your best %d", m.profile.BestScore(gameID)))
	}
	return strings.Join(parts, "  |  ")
}

func resultLabel(o core.Outcome) string {
	switch o {
	case core.OutcomeWin:
		return "WIN"
	case core.OutcomeLose:
		return "LOSS"
	}
	return "-"
}

func streakLabel(effect string) string {
	switch effect {
	case session.StreakIncremented:
		return "+1"
	case session.StreakReset:
		return "reset"
	}
	return effect
}

func gameTitle(id string) string {
	if info, ok := registry.Info(id); ok {
		return info.Title
	}
	return id
}

// toggleFavorites flips the favorites filter, staying on the current
// game when it is still listed.
func (m *ScoreboardModel) toggleFavorites() {
	current := m.selected().id
	m.favOnly = !m.favOnly
	m.tabs = m.buildTabs()
	m.cursor = slices.IndexFunc(m.tabs, func(t boardTab) bool { return t.id == current })
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.reload()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			m.cursor = (m.cursor + 1) % len(m.tabs)
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			m.cursor = (m.cursor - 1 + len(m.tabs)) % len(m.tabs)
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.Favorites):
			m.toggleFavorites()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.newTable()
		m.table.SetRows(m.rows())
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(m.accent()).MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("SCOREBOARD - "+m.selected().title, m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(m.summary, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(boxStyle.Render(m.renderLog()), m.width))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTabs draws the game strip, collapsing to the current title when
// it does not fit.
func (m ScoreboardModel) renderTabs() string {
	idle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(m.accent()).Padding(0, 1)

	tabs := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.cursor {
			tabs[i] = active.Render(t.title)
		} else {
			tabs[i] = idle.Render(" " + t.title + " ")
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = fmt.Sprintf("< %s >", m.selected().title)
	}
	if m.favOnly {
		line += idle.Render("  (favorites)")
	}
	return line
}

func (m ScoreboardModel) renderLog() string {
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
	switch {
	case m.history == nil:
		return empty.Render("No database: sessions are not recorded.")
	case m.loadErr != nil:
		return empty.Render("Cannot read the session log:\n" + m.loadErr.Error())
	case len(m.records) == 0:
		return empty.Render("No sessions recorded yet.\nFinish a game to start the log!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(history History, prof *profile.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(history, prof, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
