package tron

import (
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
)

var (
	up    = core.Neighbors4[0]
	right = core.Neighbors4[1]
	down  = core.Neighbors4[2]
	left  = core.Neighbors4[3]
)

func smallArena(w, h int, player, ai Cycle, trails ...core.Point) State {
	cfg := config.TronConfig{Grid: config.GridConfig{Width: w, Height: h}, SurvivalTick: 1, WinPoints: 100}
	s := State{Cfg: cfg, Arena: core.NewGrid[Rider](w, h), Player: player, AI: ai, RNG: core.NewRNG(1)}
	s.Arena.Set(player.Pos.X, player.Pos.Y, PlayerRider)
	s.Arena.Set(ai.Pos.X, ai.Pos.Y, AIRider)
	for _, p := range trails {
		s.Arena.Set(p.X, p.Y, AIRider)
	}
	return s
}

func TestNewState(t *testing.T) {
	s := NewState(config.DefaultTronConfig(), 1)
	if s.Player.Pos != (core.Point{X: 10, Y: 10}) || s.Player.Dir != right {
		t.Errorf("Player = %+v, expected (10, 10) heading right", s.Player)
	}
	if s.AI.Pos != (core.Point{X: 29, Y: 10}) || s.AI.Dir != left {
		t.Errorf("AI = %+v, expected (29, 10) heading left", s.AI)
	}
}

func TestSurvivalScores(t *testing.T) {
	s := NewState(config.DefaultTronConfig(), 1)
	r := Resolve(s, core.EmptySnapshot())

	if r.ScoreDelta != 1 || r.Terminal != core.OutcomeNone {
		t.Errorf("ScoreDelta = %d Terminal = %v, expected 1, none", r.ScoreDelta, r.Terminal)
	}
	if r.Next.Player.Pos != (core.Point{X: 11, Y: 10}) {
		t.Errorf("Player.Pos = %v, expected (11, 10)", r.Next.Player.Pos)
	}
	if r.Next.Arena.At(10, 10) != PlayerRider {
		t.Error("player should leave a trail")
	}
	if s.Arena.At(11, 10) != Free {
		t.Error("Resolve mutated the previous arena")
	}
}

func TestReversalIgnored(t *testing.T) {
	s := NewState(config.DefaultTronConfig(), 1)
	r := Resolve(s, core.SnapshotOf(core.KeyLeft))
	if r.Next.Player.Dir != right {
		t.Errorf("Dir = %v, expected right", r.Next.Player.Dir)
	}
	r = Resolve(s, core.SnapshotOf(core.KeyUp))
	if r.Next.Player.Pos != (core.Point{X: 10, Y: 9}) {
		t.Errorf("Pos = %v, expected (10, 9)", r.Next.Player.Pos)
	}
}

func TestCrashes(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		terminal core.Outcome
		delta    int
	}{
		{
			name: "player hits wall",
			state: smallArena(5, 5,
				Cycle{Pos: core.Point{X: 4, Y: 2}, Dir: right},
				Cycle{Pos: core.Point{X: 0, Y: 0}, Dir: down}),
			terminal: core.OutcomeLose,
		},
		{
			name: "computer boxed in",
			state: smallArena(5, 5,
				Cycle{Pos: core.Point{X: 3, Y: 3}, Dir: left},
				Cycle{Pos: core.Point{X: 0, Y: 0}, Dir: up},
				core.Point{X: 1, Y: 0}, core.Point{X: 0, Y: 1}),
			terminal: core.OutcomeWin,
			delta:    100,
		},
		{
			name: "head-on counts against the player",
			state: smallArena(5, 5,
				Cycle{Pos: core.Point{X: 1, Y: 2}, Dir: right},
				Cycle{Pos: core.Point{X: 3, Y: 2}, Dir: left},
				core.Point{X: 3, Y: 1}, core.Point{X: 3, Y: 3}),
			terminal: core.OutcomeLose,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := Resolve(tc.state, core.EmptySnapshot())
			if r.Terminal != tc.terminal || r.ScoreDelta != tc.delta {
				t.Errorf("Resolve() = %v/%d, expected %v/%d", r.Terminal, r.ScoreDelta, tc.terminal, tc.delta)
			}
		})
	}
}

func TestChooseAIDirPrefersSpace(t *testing.T) {
	a := core.NewGrid[Rider](7, 1)
	c := Cycle{Pos: core.Point{X: 2, Y: 0}, Dir: up}
	a.Set(2, 0, AIRider)

	for seed := uint64(0); seed < 10; seed++ {
		if got := ChooseAIDir(a, c, rand.New(rand.NewPCG(seed, 0))); got != right {
			t.Errorf("ChooseAIDir() = %v, expected right toward the larger area", got)
		}
	}
}

func TestChooseAIDirBoxedKeepsHeading(t *testing.T) {
	a := core.NewGrid[Rider](1, 1)
	c := Cycle{Pos: core.Point{}, Dir: down}
	if got := ChooseAIDir(a, c, rand.New(rand.NewPCG(1, 1))); got != down {
		t.Errorf("ChooseAIDir() = %v, expected the current heading", got)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() State {
		g := New()
		g.Reset(core.RuntimeConfig{Seed: 99})
		_ = g.Start()
		for i := 0; i < 100; i++ {
			in := core.EmptySnapshot()
			if i%7 == 3 {
				in = core.SnapshotOf(core.Directions[i%4])
			}
			g.Step(in)
		}
		return g.Entities()
	}
	a, b := run(), run()
	if !reflect.DeepEqual(a.Arena, b.Arena) || a.Score != b.Score {
		t.Error("same seed and inputs should produce the same arena")
	}
}
