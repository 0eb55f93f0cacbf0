package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/engine"
	"github.com/vovakirdan/arcade-hub/internal/session"
)

// presses counts Action presses and wins after limit of them.
type presses struct {
	n     int
	limit int
}

func pressGame(limit int) *engine.Engine[presses] {
	return engine.New(engine.Definition[presses]{
		ID:       "presses",
		Title:    "Presses",
		TickRate: 30,
		Policy:   session.NewPolicy(session.FixedBonus(5)),
		Init:     func(core.RuntimeConfig) presses { return presses{limit: limit} },
		Resolve: func(prev presses, in core.InputSnapshot) engine.Resolution[presses] {
			if !in.Hit(core.KeyAction) {
				return engine.Resolution[presses]{Next: prev}
			}
			next := presses{n: prev.n + 1, limit: prev.limit}
			r := engine.Resolution[presses]{Next: next, ScoreDelta: 1}
			if next.n >= next.limit {
				r.Terminal = core.OutcomeWin
			}
			return r
		},
	})
}

type fakeReporter struct {
	calls []core.Outcome
	score int
}

func (f *fakeReporter) Report(_ string, _ session.Policy, outcome core.Outcome, score int) (session.Report, error) {
	f.calls = append(f.calls, outcome)
	f.score = score
	return session.Report{Record: session.Record{Outcome: outcome, Score: score, Points: 5, Streak: "incremented"}}, nil
}

func newTestModel(limit int) (Model, *fakeReporter) {
	rep := &fakeReporter{}
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 12, Seed: 1}
	return NewModel(pressGame(limit), cfg, Deps{Reporter: rep}), rep
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return update(t, m, TickMsg{Gen: m.gen})
}

var space = runeKey(' ')

func TestModelStartsRunning(t *testing.T) {
	m, _ := newTestModel(3)
	if m.State().Status != core.StatusRunning {
		t.Errorf("Status = %v, expected Running", m.State().Status)
	}
}

func TestModelKeysReachResolver(t *testing.T) {
	m, _ := newTestModel(3)
	m = update(t, m, space)
	m = tick(t, m)
	if m.State().Score != 1 {
		t.Errorf("Score = %d, expected 1", m.State().Score)
	}
	// The tap was consumed by the previous tick
	m = tick(t, m)
	if m.State().Score != 1 {
		t.Errorf("Score after idle tick = %d, expected 1", m.State().Score)
	}
}

func TestModelReportsOnce(t *testing.T) {
	m, rep := newTestModel(1)
	m = update(t, m, space)
	m = tick(t, m)
	m = tick(t, m)
	m = tick(t, m)

	if len(rep.calls) != 1 || rep.calls[0] != core.OutcomeWin {
		t.Fatalf("Report calls = %v, expected one win", rep.calls)
	}
	if rep.score != 1 {
		t.Errorf("reported score = %d, expected 1", rep.score)
	}
	if m.LastReport() == nil {
		t.Error("LastReport() = nil, expected the report")
	}
}

func TestModelPauseToggle(t *testing.T) {
	m, _ := newTestModel(3)
	m = update(t, m, runeKey('p'))
	if !m.State().Paused() {
		t.Fatalf("Status = %v, expected Paused", m.State().Status)
	}
	m = update(t, m, space)
	m = tick(t, m)
	if m.State().Score != 0 {
		t.Errorf("Score while paused = %d, expected 0", m.State().Score)
	}
	m = update(t, m, runeKey('p'))
	if m.State().Status != core.StatusRunning {
		t.Errorf("Status = %v, expected Running", m.State().Status)
	}
}

func TestModelPauseSuspendsTicks(t *testing.T) {
	m, _ := newTestModel(3)
	m = update(t, m, runeKey('p'))
	m = update(t, m, space)

	next, cmd := m.Update(TickMsg{Gen: m.gen})
	m = next.(Model)
	if cmd != nil {
		t.Error("tick while paused should not schedule another tick")
	}
	if m.State().Ticks != 0 {
		t.Errorf("Ticks while paused = %d, expected 0", m.State().Ticks)
	}

	next, cmd = m.Update(runeKey('p'))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("resume should re-arm the tick chain")
	}
	m = tick(t, m)
	if m.State().Score != 1 {
		t.Errorf("Score after resume = %d, expected the paused tap to count", m.State().Score)
	}
}

func TestModelPauseDropsPendingTick(t *testing.T) {
	m, _ := newTestModel(3)
	before := m.gen
	m = update(t, m, runeKey('p'))
	m = update(t, m, runeKey('p'))
	m = update(t, m, space)
	m = update(t, m, TickMsg{Gen: before})
	if m.State().Ticks != 0 {
		t.Errorf("Ticks = %d, expected the pre-pause tick to be stale", m.State().Ticks)
	}
}

func TestModelRestartAfterOver(t *testing.T) {
	m, rep := newTestModel(1)
	m = update(t, m, runeKey('r'))
	if m.State().Ticks != 0 || m.State().Status != core.StatusRunning {
		t.Fatalf("restart while running changed state: %+v", m.State())
	}

	m = update(t, m, space)
	m = tick(t, m)
	m = update(t, m, runeKey('r'))
	if m.State().Status != core.StatusRunning || m.State().Score != 0 {
		t.Errorf("State after restart = %+v, expected fresh Running", m.State())
	}
	if m.LastReport() != nil {
		t.Error("LastReport() survived restart")
	}

	m = update(t, m, space)
	tick(t, m)
	if len(rep.calls) != 2 {
		t.Errorf("Report calls = %d, expected 2", len(rep.calls))
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m, _ := newTestModel(3)
	m = update(t, m, space)
	m = update(t, m, TickMsg{Gen: m.gen + 1000})
	if m.State().Ticks != 0 {
		t.Errorf("Ticks = %d, expected stale tick to be ignored", m.State().Ticks)
	}
}

func TestModelBackOnlyWhenStopped(t *testing.T) {
	m, _ := newTestModel(3)
	m.embedded = true
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("BackToMenu() = true while running")
	}
	m = update(t, m, runeKey('p'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("BackToMenu() = false while paused")
	}
}

func TestModelViewShowsReport(t *testing.T) {
	m, _ := newTestModel(1)
	m = update(t, m, space)
	m = tick(t, m)
	m.View()
	if got := m.screen.Row(m.screen.Height() - 1); !strings.Contains(got, "+5 points") {
		t.Errorf("bottom row = %q, expected the points line", got)
	}
}

func TestModelMouseFeedsPointer(t *testing.T) {
	m, _ := newTestModel(3)
	m = update(t, m, tea.MouseMsg{X: 4, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	in := m.latch.Snapshot()
	if in.Pointer == nil || *in.Pointer != (core.Point{X: 4, Y: 7}) {
		t.Errorf("Pointer = %v, expected (4, 7)", in.Pointer)
	}
	if !in.Clicked || !in.PointerDown {
		t.Errorf("Clicked = %v, PointerDown = %v, expected both true", in.Clicked, in.PointerDown)
	}

	m = update(t, m, tea.MouseMsg{X: 5, Y: 7, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if in := m.latch.Snapshot(); in.PointerDown || in.Clicked {
		t.Errorf("after release: PointerDown = %v, Clicked = %v, expected false", in.PointerDown, in.Clicked)
	}
}
