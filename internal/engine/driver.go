package engine

import (
	"context"
	"sync"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

// Stepper is the part of a game session the driver needs.
type Stepper interface {
	Start() error
	Pause() error
	Resume() error
	Step(in core.InputSnapshot) core.StepResult
	TickRate() int
	Status() core.Status
	State() core.GameState
}

// Driver runs a Stepper on its own Loop, feeding it one input snapshot per
// tick. Headless hosts use it; the TUI steps games from
// bubbletea ticks instead.
type Driver struct {
	game  Stepper
	latch *core.InputLatch
	loop  *Loop

	mu     sync.Mutex
	ended  chan struct{}
	once   sync.Once
	result core.GameState
	err    error
}

// NewDriver wires game to a fresh loop reading from latch.
func NewDriver(game Stepper, latch *core.InputLatch) *Driver {
	d := &Driver{
		game:  game,
		latch: latch,
		loop:  NewLoop(),
		ended: make(chan struct{}),
	}
	d.loop.OnCrash(func(err error) { d.finish(d.game.State(), err) })
	return d
}

// Latch returns the input latch events should be written to.
func (d *Driver) Latch() *core.InputLatch { return d.latch }

// Loop exposes the underlying loop, mostly for tick counting.
func (d *Driver) Loop() *Loop { return d.loop }

// Start starts the session and its loop.
func (d *Driver) Start() error {
	if err := d.game.Start(); err != nil {
		return err
	}
	return d.loop.Start(d.game.TickRate(), d.tick)
}

func (d *Driver) tick() error {
	res := d.game.Step(d.latch.Snapshot())
	if res.State.GameOver() {
		d.finish(res.State, nil)
		return ErrStopLoop
	}
	return nil
}

func (d *Driver) finish(state core.GameState, err error) {
	d.once.Do(func() {
		d.mu.Lock()
		d.result, d.err = state, err
		d.mu.Unlock()
		close(d.ended)
	})
}

// Pause pauses the session and stops the loop, so no tick fires while
// paused. Pausing twice is a no-op.
func (d *Driver) Pause() error {
	if err := d.game.Pause(); err != nil {
		return err
	}
	d.loop.Stop()
	return nil
}

// Resume resumes the session and restarts the loop.
func (d *Driver) Resume() error {
	if d.game.Status() == core.StatusRunning && d.loop.Running() {
		return nil
	}
	if err := d.game.Resume(); err != nil {
		return err
	}
	return d.loop.Start(d.game.TickRate(), d.tick)
}

// Stop halts the loop without ending the session.
func (d *Driver) Stop() {
	d.loop.Stop()
}

// Wait blocks until the session ends, the loop crashes or ctx is done.
// It returns the final state and the crash error, if any.
func (d *Driver) Wait(ctx context.Context) (core.GameState, error) {
	select {
	case <-d.ended:
		d.mu.Lock()
		defer d.mu.Unlock()
		return d.result, d.err
	case <-ctx.Done():
		d.loop.Stop()
		return d.game.State(), ctx.Err()
	}
}
