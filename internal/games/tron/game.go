// Package tron implements Tron light cycles against one computer rider.
// Both cycles move every tick and leave a solid trail; the first to hit
// a wall or a trail loses. A head-on crash counts against the player.
package tron

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/engine"
	"github.com/vovakirdan/arcade-hub/internal/registry"
	"github.com/vovakirdan/arcade-hub/internal/session"
)

// ID is the registry id of the game.
const ID = "tron"

// Rider identifies who owns a trail cell.
type Rider int8

const (
	Free Rider = iota
	PlayerRider
	AIRider
)

func reverse(d core.Point) core.Point {
	return core.Point{X: -d.X, Y: -d.Y}
}

// Cycle is a rider's head and heading.
type Cycle struct {
	Pos core.Point
	Dir core.Point
}

// State is the arena and both cycles.
type State struct {
	Cfg    config.TronConfig
	Arena  Arena
	Player Cycle
	AI     Cycle
	RNG    core.RNG
	Score  int
	Ticks  uint64
}

// Definition describes Tron to the engine.
func Definition() engine.Definition[State] {
	return engine.Definition[State]{
		ID:          ID,
		Title:       "Tron",
		Description: "Outlast the computer's light cycle",
		Controls:    "←↑→↓ steer",
		TickRate:    15,
		Policy:      session.NewPolicy(session.FixedBonus(25)),
		Init:        Init,
		Resolve:     Resolve,
		Render:      Render,
	}
}

// New creates a Tron engine.
func New() *engine.Engine[State] {
	return engine.New(Definition())
}

// Init builds the arena.
func Init(rc core.RuntimeConfig) State {
	cfg, err := config.Load(ID, rc.ConfigPath, config.DefaultTronConfig())
	if err != nil {
		log.Warn("using default tron config", "err", err)
	}
	return NewState(cfg, rc.Seed)
}

// NewState starts the riders facing each other on the middle row.
func NewState(cfg config.TronConfig, seed int64) State {
	w, h := cfg.Grid.Width, cfg.Grid.Height
	s := State{
		Cfg:    cfg,
		Arena:  core.NewGrid[Rider](w, h),
		Player: Cycle{Pos: core.Point{X: w / 4, Y: h / 2}, Dir: core.Neighbors4[1]},
		AI:     Cycle{Pos: core.Point{X: w - 1 - w/4, Y: h / 2}, Dir: core.Neighbors4[3]},
		RNG:    core.NewRNG(seed),
	}
	s.Arena.Set(s.Player.Pos.X, s.Player.Pos.Y, PlayerRider)
	s.Arena.Set(s.AI.Pos.X, s.AI.Pos.Y, AIRider)
	return s
}

var keyDirs = map[core.Key]core.Point{
	core.KeyUp:    core.Neighbors4[0],
	core.KeyRight: core.Neighbors4[1],
	core.KeyDown:  core.Neighbors4[2],
	core.KeyLeft:  core.Neighbors4[3],
}

// Resolve steers and moves both cycles at once.
func Resolve(prev State, in core.InputSnapshot) engine.Resolution[State] {
	s := prev
	s.Ticks++
	res := engine.Resolution[State]{}

	if k, ok := in.LastDirection(); ok {
		if d := keyDirs[k]; d != reverse(s.Player.Dir) {
			s.Player.Dir = d
		}
	}
	s.AI.Dir = ChooseAIDir(s.Arena, s.AI, s.RNG.Rand())

	p := s.Player.Pos.Add(s.Player.Dir)
	a := s.AI.Pos.Add(s.AI.Dir)
	playerCrash := !Open(s.Arena, p) || p == a
	aiCrash := !Open(s.Arena, a) || p == a

	s.Arena = s.Arena.Clone()
	if !playerCrash {
		s.Player.Pos = p
		s.Arena.Set(p.X, p.Y, PlayerRider)
	}
	if !aiCrash {
		s.AI.Pos = a
		s.Arena.Set(a.X, a.Y, AIRider)
	}

	switch {
	case playerCrash:
		res.Terminal = core.OutcomeLose
	case aiCrash:
		res.ScoreDelta = s.Cfg.WinPoints
		res.Terminal = core.OutcomeWin
	default:
		res.ScoreDelta = s.Cfg.SurvivalTick
	}
	s.Score += res.ScoreDelta
	res.Next = s
	return res
}

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}
