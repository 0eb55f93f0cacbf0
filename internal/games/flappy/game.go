// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
// The run is endless: it only ends when the bird hits a pipe or the ground.
package flappy

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/engine"
	"github.com/vovakirdan/arcade-hub/internal/registry"
	"github.com/vovakirdan/arcade-hub/internal/session"
)

// ID is the registry id of the game.
const ID = "flappy"

// Fallback world size when the host reports no screen.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// State is the Flappy Bird world, in terminal cells.
type State struct {
	Cfg     config.FlappyConfig
	Diff    *config.DifficultyManager
	Width   int
	Height  int
	BirdY   float64 // Top of the bird's hitbox
	BirdVel float64
	Pipes   []Pipe
	RNG     core.RNG
	Score   int
	Ticks   uint64
}

func (s State) groundY() int {
	return s.Height - 1
}

// BirdRect returns the bird's collision rectangle.
func (s State) BirdRect() core.Rect {
	p := s.Cfg.Player
	return core.NewRect(p.X, int(s.BirdY), p.Width, p.Height)
}

// Definition describes Flappy Bird to the engine.
func Definition() engine.Definition[State] {
	return engine.Definition[State]{
		ID:          ID,
		Title:       "Flappy Bird",
		Description: "Flap through the gaps for as long as you can",
		Controls:    "space/↑ flap",
		TickRate:    60,
		Policy: session.NewPolicy(
			session.FixedBonus(50),
			session.WithLossAward(session.ScoreAsPoints()),
			session.KeepStreakAtLeast(10),
		),
		Init:    Init,
		Resolve: Resolve,
		Render:  Render,
	}
}

// New creates a Flappy Bird engine.
func New() *engine.Engine[State] {
	return engine.New(Definition())
}

func loadConfig(rc core.RuntimeConfig) config.FlappyConfig {
	cfg, err := config.Load(ID, rc.ConfigPath, config.DefaultFlappyConfig())
	if err != nil {
		log.Warn("using default flappy config", "err", err)
	}
	if preset, err := config.ParsePreset(rc.Difficulty); err == nil {
		config.ApplyPreset(&cfg.Difficulty, preset)
	}
	return cfg
}

// Init builds the opening state sized to the host screen.
func Init(rc core.RuntimeConfig) State {
	w, h := rc.ScreenW, rc.ScreenH
	if w <= 0 || h <= 0 {
		w, h = defaultWidth, defaultHeight
	}
	return NewState(loadConfig(rc), w, h, rc.Seed)
}

// NewState builds the opening state from an explicit config.
func NewState(cfg config.FlappyConfig, width, height int, seed int64) State {
	return State{
		Cfg:    cfg,
		Diff:   config.NewDifficultyManager(cfg.Difficulty),
		Width:  width,
		Height: height,
		BirdY:  float64(height) / 2,
		RNG:    core.NewRNG(seed),
	}
}

// Resolve advances Flappy Bird by one tick.
func Resolve(prev State, in core.InputSnapshot) engine.Resolution[State] {
	s := prev
	s.Ticks++
	res := engine.Resolution[State]{}
	phys := s.Cfg.Physics

	// Flap is edge-triggered: holding the key does not keep climbing.
	if in.Hit(core.KeyAction) || in.Hit(core.KeyUp) {
		s.BirdVel = phys.JumpImpulse
	}
	s.BirdVel = min(s.BirdVel+phys.Gravity, phys.MaxFallSpeed)
	s.BirdY += s.BirdVel

	if s.BirdY < 0 {
		s.BirdY = 0
		s.BirdVel = 0
	}

	pipes, passed := advancePipes(&s)
	s.Pipes = pipes
	s.Score += passed
	res.ScoreDelta = passed

	bird := s.BirdRect()
	if bird.Bottom() >= s.groundY() || hitsPipe(bird, s.Pipes, s.Cfg.Obstacles.PipeWidth, s.groundY()) {
		res.Terminal = core.OutcomeLose
	}
	res.Next = s
	return res
}

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}
