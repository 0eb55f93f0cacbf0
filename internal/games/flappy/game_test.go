package flappy

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
)

func newTestState() State {
	return NewState(config.DefaultFlappyConfig(), 80, 24, 42)
}

func TestGameDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}

	run := func() State {
		g := New()
		g.Reset(cfg)
		_ = g.Start()
		for i := 0; i < 200; i++ {
			in := core.EmptySnapshot()
			if i%15 == 0 {
				in = core.SnapshotOf(core.KeyAction)
			}
			if g.Step(in).State.GameOver() {
				break
			}
		}
		return g.Entities()
	}

	a, b := run(), run()
	if a.Score != b.Score || a.Ticks != b.Ticks || !reflect.DeepEqual(a.Pipes, b.Pipes) {
		t.Errorf("Determinism failed: run1 score=%d ticks=%d, run2 score=%d ticks=%d", a.Score, a.Ticks, b.Score, b.Ticks)
	}
}

func TestFlapIsEdgeTriggered(t *testing.T) {
	s := newTestState()

	r := Resolve(s, core.SnapshotOf(core.KeyAction))
	if expected := -1.8 + 0.25; r.Next.BirdVel != expected {
		t.Errorf("BirdVel after flap = %v, expected %v", r.Next.BirdVel, expected)
	}

	held := core.EmptySnapshot()
	held.Pressed[core.KeyAction] = true
	r = Resolve(s, held)
	if r.Next.BirdVel != 0.25 {
		t.Errorf("BirdVel while only held = %v, expected 0.25", r.Next.BirdVel)
	}
}

func TestCeilingClamps(t *testing.T) {
	s := newTestState()
	s.BirdY = 0.5
	s.BirdVel = -3

	r := Resolve(s, core.EmptySnapshot())
	if r.Next.BirdY != 0 || r.Next.BirdVel != 0 {
		t.Errorf("bird = (y %v, vel %v), expected clamped at (0, 0)", r.Next.BirdY, r.Next.BirdVel)
	}
	if r.Terminal != core.OutcomeNone {
		t.Errorf("Terminal = %v, expected none", r.Terminal)
	}
}

func TestGroundLoses(t *testing.T) {
	s := newTestState()
	s.BirdY = 21
	s.BirdVel = 3

	r := Resolve(s, core.EmptySnapshot())
	if r.Terminal != core.OutcomeLose {
		t.Errorf("Terminal = %v, expected lose", r.Terminal)
	}
}

func TestPipeCollisionLoses(t *testing.T) {
	s := newTestState()
	s.Pipes = []Pipe{{X: 10, GapY: 0, GapHeight: 3}}

	r := Resolve(s, core.EmptySnapshot())
	if r.Terminal != core.OutcomeLose {
		t.Errorf("Terminal = %v, expected lose", r.Terminal)
	}
}

func TestPassingPipeScores(t *testing.T) {
	s := newTestState()
	s.Pipes = []Pipe{{X: 4, GapY: 5, GapHeight: 10}}

	r := Resolve(s, core.EmptySnapshot())
	if r.ScoreDelta != 1 || r.Next.Score != 1 {
		t.Errorf("ScoreDelta = %d, Score = %d, expected 1, 1", r.ScoreDelta, r.Next.Score)
	}
	if s.Pipes[0].Passed || s.Pipes[0].X != 4 {
		t.Error("Resolve mutated the previous state's pipes")
	}

	// Already passed pipes never score twice.
	r = Resolve(r.Next, core.EmptySnapshot())
	if r.ScoreDelta != 0 {
		t.Errorf("second ScoreDelta = %d, expected 0", r.ScoreDelta)
	}
}

func TestSpawnPipeRespectsMargins(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		s := NewState(config.DefaultFlappyConfig(), 80, 24, seed)
		p := spawnPipe(&s)
		obs := s.Cfg.Obstacles

		if p.GapY < obs.TopMargin {
			t.Errorf("seed %d: GapY = %d, expected >= %d", seed, p.GapY, obs.TopMargin)
		}
		if p.GapY+p.GapHeight > s.groundY()-obs.BottomMargin {
			t.Errorf("seed %d: gap bottom = %d, expected <= %d", seed, p.GapY+p.GapHeight, s.groundY()-obs.BottomMargin)
		}
		if p.GapHeight < obs.MinGapSize || p.GapHeight > obs.MaxGapSize {
			t.Errorf("seed %d: GapHeight = %d outside [%d, %d]", seed, p.GapHeight, obs.MinGapSize, obs.MaxGapSize)
		}
		if p.X != 80 {
			t.Errorf("seed %d: X = %d, expected 80", seed, p.X)
		}
	}
}

func TestRestartResetsWorld(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42})
	_ = g.Start()

	for i := 0; i < 500 && !g.State().GameOver(); i++ {
		g.Step(core.EmptySnapshot())
	}
	if !g.State().GameOver() {
		t.Fatal("bird should eventually hit the ground without flapping")
	}

	if err := g.Restart(); err != nil {
		t.Fatalf("Restart() error = %v", err)
	}
	s := g.Entities()
	if s.Score != 0 || s.Ticks != 0 || len(s.Pipes) != 0 {
		t.Errorf("after Restart: score=%d ticks=%d pipes=%d, expected zeros", s.Score, s.Ticks, len(s.Pipes))
	}
}
