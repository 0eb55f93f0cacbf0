package breakout

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
)

var world = config.WorldConfig{Width: 400, Height: 500}

func TestAdvanceBounceScenario(t *testing.T) {
	b, lost := Advance(Ball{X: 0, Y: 0, VX: 3, VY: -3, Size: 8}, world)
	if lost {
		t.Fatal("ball should not be lost")
	}
	if b.X != 3 || b.Y != 0 {
		t.Errorf("position = (%v, %v), expected (3, 0)", b.X, b.Y)
	}
	if b.VY != 3 || b.VX != 3 {
		t.Errorf("velocity = (%v, %v), expected (3, 3)", b.VX, b.VY)
	}
}

func TestAdvanceWalls(t *testing.T) {
	tests := []struct {
		name     string
		ball     Ball
		expected Ball
		lost     bool
	}{
		{
			name:     "left wall",
			ball:     Ball{X: 1, Y: 100, VX: -3, VY: 2, Size: 8},
			expected: Ball{X: 0, Y: 102, VX: 3, VY: 2, Size: 8},
		},
		{
			name:     "right wall",
			ball:     Ball{X: 390, Y: 100, VX: 4, VY: 2, Size: 8},
			expected: Ball{X: 392, Y: 102, VX: -4, VY: 2, Size: 8},
		},
		{
			name:     "open space",
			ball:     Ball{X: 100, Y: 100, VX: 2, VY: 2, Size: 8},
			expected: Ball{X: 102, Y: 102, VX: 2, VY: 2, Size: 8},
		},
		{
			name:     "falls through bottom",
			ball:     Ball{X: 100, Y: 498, VX: 0, VY: 3, Size: 8},
			expected: Ball{X: 100, Y: 501, VX: 0, VY: 3, Size: 8},
			lost:     true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, lost := Advance(tc.ball, world)
			if got != tc.expected || lost != tc.lost {
				t.Errorf("Advance() = %+v, %v, expected %+v, %v", got, lost, tc.expected, tc.lost)
			}
		})
	}
}

func TestBouncePaddle(t *testing.T) {
	paddle := core.RectF{X: 100, Y: 470, W: 64, H: 10}

	// Center hit goes straight up.
	b, hit := BouncePaddle(Ball{X: 128, Y: 465, VX: 2, VY: 3, Size: 8}, paddle, 4)
	if !hit {
		t.Fatal("expected paddle hit")
	}
	if b.VX != 0 || b.VY >= 0 || b.Y != paddle.Y-8 {
		t.Errorf("center bounce = %+v", b)
	}

	// Right edge hit angles right.
	b, _ = BouncePaddle(Ball{X: 158, Y: 465, VX: 0, VY: 3, Size: 8}, paddle, 4)
	if b.VX <= 0 {
		t.Errorf("right edge bounce VX = %v, expected positive", b.VX)
	}

	// Rising ball passes through.
	if _, hit := BouncePaddle(Ball{X: 128, Y: 465, VX: 0, VY: -3, Size: 8}, paddle, 4); hit {
		t.Error("rising ball should not bounce")
	}
}

func TestParseLayout(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	bricks := ParseLayout([]string{"#.H", "X5"}, cfg)

	if len(bricks) != 4 {
		t.Fatalf("ParseLayout() = %d bricks, expected 4", len(bricks))
	}
	if bricks[1].Type != BrickHard || bricks[1].HP != 2 {
		t.Errorf("H brick = %+v", bricks[1])
	}
	if bricks[3].Points != 50 {
		t.Errorf("digit brick points = %d, expected 50", bricks[3].Points)
	}
	if remaining(bricks) != 3 {
		t.Errorf("remaining() = %d, expected 3 (solid excluded)", remaining(bricks))
	}
	for i := range bricks {
		for j := i + 1; j < len(bricks); j++ {
			if bricks[i].Box.Intersects(bricks[j].Box) {
				t.Errorf("bricks %d and %d overlap", i, j)
			}
		}
	}
}

func singleBrickState(t *testing.T) State {
	t.Helper()
	cfg := config.DefaultBreakoutConfig()
	cfg.Bricks.Layout = []string{"#"}
	cfg.Difficulty.Enabled = false
	return NewState(cfg)
}

func TestResolveLaunch(t *testing.T) {
	s := singleBrickState(t)
	if !s.Ball.Stuck {
		t.Fatal("ball should start on the paddle")
	}

	r := Resolve(s, core.EmptySnapshot())
	if !r.Next.Ball.Stuck {
		t.Error("ball should stay stuck without input")
	}

	r = Resolve(s, core.SnapshotOf(core.KeyAction))
	if r.Next.Ball.Stuck || r.Next.Ball.VY >= 0 {
		t.Errorf("launched ball = %+v, expected moving up", r.Next.Ball)
	}
}

func TestResolveBrickHitWins(t *testing.T) {
	s := singleBrickState(t)
	brick := s.Bricks[0].Box
	s.Ball = Ball{X: brick.X + 10, Y: brick.Y + brick.H + 1, VX: 0, VY: -3, Size: 8}

	r := Resolve(s, core.EmptySnapshot())
	if r.ScoreDelta != 10 {
		t.Errorf("ScoreDelta = %d, expected 10", r.ScoreDelta)
	}
	if r.Terminal != core.OutcomeWin {
		t.Errorf("Terminal = %v, expected win", r.Terminal)
	}
	if r.Next.Ball.VY <= 0 {
		t.Error("ball should bounce off the brick")
	}
	if !s.Bricks[0].Alive() {
		t.Error("Resolve mutated the previous state's bricks")
	}
}

func TestResolveLoseLastLife(t *testing.T) {
	s := singleBrickState(t)
	s.Lives = 1
	s.Ball = Ball{X: 10, Y: 499, VX: 0, VY: 3, Size: 8}

	r := Resolve(s, core.EmptySnapshot())
	if r.Terminal != core.OutcomeLose {
		t.Errorf("Terminal = %v, expected lose", r.Terminal)
	}

	s.Lives = 2
	r = Resolve(s, core.EmptySnapshot())
	if r.Terminal != core.OutcomeNone || r.Next.Lives != 1 || !r.Next.Ball.Stuck {
		t.Errorf("after losing a ball: terminal %v, lives %d, stuck %v", r.Terminal, r.Next.Lives, r.Next.Ball.Stuck)
	}
}

func TestPaddleClamped(t *testing.T) {
	s := singleBrickState(t)
	for i := 0; i < 100; i++ {
		s = Resolve(s, core.SnapshotOf(core.KeyLeft)).Next
	}
	if s.PaddleX != 0 {
		t.Errorf("PaddleX = %v, expected clamped at 0", s.PaddleX)
	}
}

func TestDeterminism(t *testing.T) {
	script := []core.InputSnapshot{
		core.SnapshotOf(core.KeyAction),
		core.SnapshotOf(core.KeyLeft),
		core.EmptySnapshot(),
		core.SnapshotOf(core.KeyRight),
	}
	run := func() State {
		g := New()
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
		_ = g.Start()
		for i := 0; i < 300; i++ {
			g.Step(script[i%len(script)])
		}
		return g.Entities()
	}
	a, b := run(), run()
	if !reflect.DeepEqual(a.Ball, b.Ball) || a.Score != b.Score || a.PaddleX != b.PaddleX {
		t.Error("same inputs should produce the same state")
	}
}

func TestRender(t *testing.T) {
	s := singleBrickState(t)
	screen := core.NewScreen(80, 24)
	Render(s, core.GameState{}, screen)

	found := false
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.Get(x, y) == BrickChar {
				found = true
			}
		}
	}
	if !found {
		t.Error("Render() should draw the brick")
	}
}
