// Package breakout implements a Breakout/Arkanoid-style brick breaker.
// The ball reflects off the side and top walls and falls through the
// bottom, costing a life.
package breakout

import (
	"math"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/engine"
	"github.com/vovakirdan/arcade-hub/internal/registry"
	"github.com/vovakirdan/arcade-hub/internal/session"
)

// ID is the registry id of the game.
const ID = "breakout"

// State is the Breakout world.
type State struct {
	Cfg     config.BreakoutConfig
	Diff    *config.DifficultyManager
	Ball    Ball
	PaddleX float64
	Bricks  []Brick
	Lives   int
	Score   int
	Ticks   uint64
}

// Paddle returns the paddle's collision box.
func (s State) Paddle() core.RectF {
	p := s.Cfg.Paddle
	return core.RectF{X: s.PaddleX, Y: s.Cfg.World.Height - p.Bottom, W: p.Width, H: p.Height}
}

// Definition describes Breakout to the engine.
func Definition() engine.Definition[State] {
	return engine.Definition[State]{
		ID:          ID,
		Title:       "Breakout",
		Description: "Clear the wall without dropping the ball",
		Controls:    "←/→ move  space launch",
		TickRate:    60,
		Policy: session.NewPolicy(
			session.ScoreDiv(10),
			session.WithLossAward(session.ScoreDiv(10)),
		),
		Init:    Init,
		Resolve: Resolve,
		Render:  Render,
	}
}

// New creates a Breakout engine.
func New() *engine.Engine[State] {
	return engine.New(Definition())
}

func loadConfig(rc core.RuntimeConfig) config.BreakoutConfig {
	cfg, err := config.Load(ID, rc.ConfigPath, config.DefaultBreakoutConfig())
	if err != nil {
		log.Warn("using default breakout config", "err", err)
	}
	if preset, err := config.ParsePreset(rc.Difficulty); err == nil {
		config.ApplyBreakoutPreset(&cfg, preset)
	}
	return cfg
}

// Init builds the opening state: full wall, ball resting on the paddle.
func Init(rc core.RuntimeConfig) State {
	return NewState(loadConfig(rc))
}

// NewState builds the opening state from an explicit config.
func NewState(cfg config.BreakoutConfig) State {
	layout := cfg.Bricks.Layout
	if len(layout) == 0 {
		layout = DefaultLayout(cfg.Bricks.Rows, cfg.Bricks.Cols)
	}
	s := State{
		Cfg:     cfg,
		Diff:    config.NewDifficultyManager(cfg.Difficulty),
		PaddleX: (cfg.World.Width - cfg.Paddle.Width) / 2,
		Bricks:  ParseLayout(layout, cfg),
		Lives:   cfg.Gameplay.Lives,
	}
	s.Ball = s.restingBall()
	return s
}

func (s State) restingBall() Ball {
	size := s.Cfg.Ball.Size
	paddle := s.Paddle()
	return Ball{
		X:     paddle.X + paddle.W/2 - size/2,
		Y:     paddle.Y - size,
		Size:  size,
		Stuck: true,
	}
}

func (s State) speed() float64 {
	base := math.Hypot(s.Cfg.Ball.SpeedX, s.Cfg.Ball.SpeedY)
	return math.Min(s.Diff.Speed(base, s.Score, s.Ticks), s.Cfg.Ball.MaxSpeed*math.Sqrt2)
}

// Resolve advances Breakout by one tick.
func Resolve(prev State, in core.InputSnapshot) engine.Resolution[State] {
	s := prev
	s.Ticks++
	res := engine.Resolution[State]{}

	// Paddle
	p := s.Cfg.Paddle
	if in.Active(core.KeyLeft) {
		s.PaddleX -= p.Speed
	}
	if in.Active(core.KeyRight) {
		s.PaddleX += p.Speed
	}
	s.PaddleX = core.ClampF(s.PaddleX, 0, s.Cfg.World.Width-p.Width)

	if s.Ball.Stuck {
		s.Ball = s.restingBall()
		if in.Hit(core.KeyAction) || in.Hit(core.KeyUp) {
			// Alternate the launch side so the opening is not always the same.
			dir := 1.0
			if s.Ticks%2 == 0 {
				dir = -1
			}
			scale := s.speed() / math.Hypot(s.Cfg.Ball.SpeedX, s.Cfg.Ball.SpeedY)
			s.Ball.Stuck = false
			s.Ball.VX = dir * math.Abs(s.Cfg.Ball.SpeedX) * scale
			s.Ball.VY = -math.Abs(s.Cfg.Ball.SpeedY) * scale
		}
		res.Next = s
		return res
	}

	ball, lost := Advance(s.Ball, s.Cfg.World)
	if lost {
		s.Lives--
		if s.Lives <= 0 {
			s.Ball = ball
			res.Next = s
			res.Terminal = core.OutcomeLose
			return res
		}
		s.Ball = s.restingBall()
		res.Next = s
		return res
	}

	ball, _ = BouncePaddle(ball, s.Paddle(), s.speed())

	ball, idx, _ := HitBrick(ball, s.Bricks)
	if idx >= 0 && s.Bricks[idx].Type != BrickSolid {
		s.Bricks = slices.Clone(s.Bricks)
		brick := &s.Bricks[idx]
		brick.HP--
		if !brick.Alive() {
			res.ScoreDelta = brick.Points
			s.Score += brick.Points
		}
	}
	s.Ball = ball

	if remaining(s.Bricks) == 0 {
		res.Terminal = core.OutcomeWin
	}
	res.Next = s
	return res
}

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}
