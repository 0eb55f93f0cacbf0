// Package engine hosts game sessions: a fixed-timestep loop, a generic
// state container that applies pure resolvers, and the driver that glues
// both to an input latch.
package engine

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"
)

var (
	// ErrStopLoop ends the loop cleanly when returned from a tick.
	ErrStopLoop = errors.New("engine: stop loop")
	// ErrInvalidTickRate is returned for tick rates <= 0.
	ErrInvalidTickRate = errors.New("engine: tick rate must be positive")
	// ErrLoopRunning is returned when starting a loop that is already running.
	ErrLoopRunning = errors.New("engine: loop already running")
)

// PanicError wraps a panic recovered from a tick.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("engine: tick panicked: %v", e.Value)
}

// Loop invokes a callback at a fixed rate from a single goroutine.
// Late ticks are dropped, never replayed.
type Loop struct {
	mu      sync.Mutex
	quit    chan struct{}
	exited  chan struct{}
	err     error
	ticks   atomic.Uint64
	onCrash func(error)
}

// NewLoop creates a stopped loop.
func NewLoop() *Loop {
	done := make(chan struct{})
	close(done)
	return &Loop{exited: done}
}

// OnCrash registers fn to receive the error of a tick that failed or
// panicked. It is called from the loop goroutine.
func (l *Loop) OnCrash(fn func(error)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onCrash = fn
}

// Start begins calling onTick every 1s/tickRateHz.
func (l *Loop) Start(tickRateHz int, onTick func() error) error {
	if tickRateHz <= 0 {
		return ErrInvalidTickRate
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	select {
	case <-l.exited:
	default:
		return ErrLoopRunning
	}

	l.quit = make(chan struct{})
	l.exited = make(chan struct{})
	l.err = nil

	go l.run(time.Second/time.Duration(tickRateHz), onTick, l.quit, l.exited)
	return nil
}

func (l *Loop) run(interval time.Duration, onTick func() error, quit, exited chan struct{}) {
	defer close(exited)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
		}

		// A stop requested while the tick was pending wins.
		select {
		case <-quit:
			return
		default:
		}

		err := l.tick(onTick)
		if err == nil {
			continue
		}
		if errors.Is(err, ErrStopLoop) {
			return
		}

		l.mu.Lock()
		l.err = err
		crash := l.onCrash
		l.mu.Unlock()
		if crash != nil {
			crash(err)
		}
		return
	}
}

func (l *Loop) tick(onTick func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	l.ticks.Add(1)
	return onTick()
}

// Stop halts the loop and waits for the loop goroutine to exit. No tick
// runs after Stop returns. Stop must not be called from inside a tick;
// return ErrStopLoop there instead.
func (l *Loop) Stop() {
	l.mu.Lock()
	quit, exited := l.quit, l.exited
	if quit != nil {
		select {
		case <-quit:
		default:
			close(quit)
		}
	}
	l.mu.Unlock()

	<-exited
}

// Running reports whether the loop goroutine is active.
func (l *Loop) Running() bool {
	select {
	case <-l.Done():
		return false
	default:
		return true
	}
}

// Done returns a channel closed when the current run exits.
func (l *Loop) Done() <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.exited
}

// Err returns the error that ended the last run, if any.
func (l *Loop) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Ticks returns how many times onTick has been invoked.
func (l *Loop) Ticks() uint64 {
	return l.ticks.Load()
}
