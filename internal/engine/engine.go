package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/session"
)

// ErrInvalidTransition is returned for a status change the session
// lifecycle does not allow.
var ErrInvalidTransition = errors.New("engine: invalid status transition")

// Resolution is what a resolver returns for one tick.
type Resolution[S any] struct {
	Next       S
	ScoreDelta int
	Terminal   core.Outcome
}

// Resolver computes the next state from the previous one and the tick's
// input. It must not mutate prev and must be deterministic for a given
// prev, input and RNG state.
type Resolver[S any] func(prev S, in core.InputSnapshot) Resolution[S]

// Definition describes a game to the engine.
type Definition[S any] struct {
	ID          string
	Title       string
	Description string
	Controls    string // One-line key help shown by hosts
	TickRate    int
	Policy      session.Policy
	Init        func(cfg core.RuntimeConfig) S
	Resolve     Resolver[S]
	Render      func(s S, game core.GameState, screen *core.Screen)
}

// Engine owns one game session: the entity state, score and status.
// All methods are safe for concurrent use.
type Engine[S any] struct {
	def Definition[S]

	mu         sync.Mutex
	cfg        core.RuntimeConfig
	ready      bool
	state      S
	game       core.GameState
	onTerminal func(core.GameState)
}

// New creates an engine for def. Reset must be called before Step.
func New[S any](def Definition[S]) *Engine[S] {
	if def.Init == nil || def.Resolve == nil {
		panic(fmt.Sprintf("engine: definition %q needs Init and Resolve", def.ID))
	}
	if def.TickRate <= 0 {
		panic(fmt.Sprintf("engine: definition %q needs a positive tick rate", def.ID))
	}
	if err := def.Policy.Validate(); err != nil {
		panic(fmt.Sprintf("engine: definition %q: %v", def.ID, err))
	}
	return &Engine[S]{def: def}
}

// ID returns the game id.
func (e *Engine[S]) ID() string { return e.def.ID }

// Title returns the display title.
func (e *Engine[S]) Title() string { return e.def.Title }

// Description returns a one-line summary of the game.
func (e *Engine[S]) Description() string { return e.def.Description }

// Controls returns the key help line.
func (e *Engine[S]) Controls() string { return e.def.Controls }

// Policy returns the outcome policy.
func (e *Engine[S]) Policy() session.Policy { return e.def.Policy }

// TickRate returns the configured rate, the override from Reset winning.
func (e *Engine[S]) TickRate() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cfg.TickRate > 0 {
		return e.cfg.TickRate
	}
	return e.def.TickRate
}

// OnTerminal registers fn to be called once when a session ends. It runs
// with the engine unlocked.
func (e *Engine[S]) OnTerminal(fn func(core.GameState)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onTerminal = fn
}

// Reset initializes a fresh session in NotStarted.
func (e *Engine[S]) Reset(cfg core.RuntimeConfig) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg = cfg
	e.state = e.def.Init(cfg)
	e.game = core.GameState{Status: core.StatusNotStarted}
	e.ready = true
}

// Start moves NotStarted to Running.
func (e *Engine[S]) Start() error {
	return e.transition(core.StatusRunning, core.StatusNotStarted)
}

// Pause moves Running to Paused. Pausing a paused session is a no-op.
func (e *Engine[S]) Pause() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch e.game.Status {
	case core.StatusPaused:
		return nil
	case core.StatusRunning:
		e.game.Status = core.StatusPaused
		return nil
	}
	return fmt.Errorf("%w: pause from %s", ErrInvalidTransition, e.game.Status)
}

// Resume moves Paused to Running. Resuming a running session is a no-op.
func (e *Engine[S]) Resume() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch e.game.Status {
	case core.StatusRunning:
		return nil
	case core.StatusPaused:
		e.game.Status = core.StatusRunning
		return nil
	}
	return fmt.Errorf("%w: resume from %s", ErrInvalidTransition, e.game.Status)
}

// Restart moves Over back to NotStarted with a fresh state.
func (e *Engine[S]) Restart() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.game.Status != core.StatusOver {
		return fmt.Errorf("%w: restart from %s", ErrInvalidTransition, e.game.Status)
	}
	e.state = e.def.Init(e.cfg)
	e.game = core.GameState{Status: core.StatusNotStarted}
	return nil
}

func (e *Engine[S]) transition(to, from core.Status) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.ready {
		return fmt.Errorf("%w: %s not reset", ErrInvalidTransition, e.def.ID)
	}
	if e.game.Status != from {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, e.game.Status, to)
	}
	e.game.Status = to
	return nil
}

// Step applies the resolver once when Running. In any other status the
// state is returned unchanged.
func (e *Engine[S]) Step(in core.InputSnapshot) core.StepResult {
	res, notify := e.step(in)
	if notify != nil {
		notify(res.State)
	}
	return res
}

func (e *Engine[S]) step(in core.InputSnapshot) (core.StepResult, func(core.GameState)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.ready {
		panic(fmt.Sprintf("engine: Step on %q before Reset", e.def.ID))
	}
	if e.game.Status != core.StatusRunning {
		return core.StepResult{State: e.game}, nil
	}

	r := e.def.Resolve(e.state, in)
	if r.ScoreDelta < 0 {
		panic(fmt.Sprintf("engine: %q resolver returned negative score delta %d", e.def.ID, r.ScoreDelta))
	}

	e.state = r.Next
	e.game.Score += r.ScoreDelta
	e.game.Ticks++

	var notify func(core.GameState)
	if r.Terminal != core.OutcomeNone {
		e.game.Status = core.StatusOver
		e.game.Outcome = r.Terminal
		notify = e.onTerminal
	}
	return core.StepResult{State: e.game, ScoreDelta: r.ScoreDelta}, notify
}

// State returns the current session state.
func (e *Engine[S]) State() core.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game
}

// Status returns the current lifecycle status.
func (e *Engine[S]) Status() core.Status {
	return e.State().Status
}

// Entities returns the current entity state. Callers must treat it as
// read-only.
func (e *Engine[S]) Entities() S {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Render projects the current state onto screen.
func (e *Engine[S]) Render(screen *core.Screen) {
	e.mu.Lock()
	state, game := e.state, e.game
	e.mu.Unlock()

	screen.Clear()
	if e.def.Render != nil {
		e.def.Render(state, game, screen)
	}
	switch game.Status {
	case core.StatusPaused:
		screen.DrawMessage("PAUSED", "press p to resume")
	case core.StatusOver:
		title := "GAME OVER"
		if game.Outcome == core.OutcomeWin {
			title = "YOU WIN"
		}
		screen.DrawMessage(fmt.Sprintf("%s  score %d", title, game.Score), "r restart  q quit")
	}
}
