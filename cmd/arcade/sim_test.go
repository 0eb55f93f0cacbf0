package main

import (
	"testing"

	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

func simConfig(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func TestAllGamesRegistered(t *testing.T) {
	want := []string{"2048", "breakout", "bubbles", "flappy", "memory", "pacman", "simon", "snake", "tictactoe", "tron"}
	for _, id := range want {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
		}
	}
}

func TestSimulateDeterministic(t *testing.T) {
	for _, info := range registry.List() {
		t.Run(info.ID, func(t *testing.T) {
			run := func() core.GameState {
				game, err := registry.Create(info.ID)
				if err != nil {
					t.Fatalf("Create() error = %v", err)
				}
				state, err := simulate(game, simConfig(11), 600, newTapper(11, 0.3))
				if err != nil {
					t.Fatalf("simulate() error = %v", err)
				}
				return state
			}

			a, b := run(), run()
			if a != b {
				t.Errorf("simulate() = %+v then %+v, expected identical runs", a, b)
			}
			if a.Ticks == 0 {
				t.Errorf("Ticks = 0, expected the game to run")
			}
			if a.Status != core.StatusRunning && a.Status != core.StatusOver {
				t.Errorf("Status = %v, expected Running or Over", a.Status)
			}
		})
	}
}

func TestSimulateStopsAtTerminal(t *testing.T) {
	// A snake that never turns hits the wall long before the tick limit
	game, err := registry.Create("snake")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	state, err := simulate(game, simConfig(3), 1000, newTapper(3, 0))
	if err != nil {
		t.Fatalf("simulate() error = %v", err)
	}
	if !state.GameOver() || state.Outcome != core.OutcomeLose {
		t.Errorf("state = %+v, expected a loss", state)
	}
	if state.Ticks >= 1000 {
		t.Errorf("Ticks = %d, expected to stop early", state.Ticks)
	}
}

func TestEffectiveConfigCoversEveryGame(t *testing.T) {
	for _, info := range registry.List() {
		data, err := effectiveConfig(info.ID)
		if err != nil {
			t.Errorf("effectiveConfig(%q) error = %v", info.ID, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("effectiveConfig(%q) is empty", info.ID)
		}
	}
}
