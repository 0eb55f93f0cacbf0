// Package snake implements classic Snake on a walled grid. Eating food
// grows the snake; reaching the target length wins, hitting a wall or
// the snake's own body loses.
package snake

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/engine"
	"github.com/vovakirdan/arcade-hub/internal/registry"
	"github.com/vovakirdan/arcade-hub/internal/session"
)

// ID is the registry id of the game.
const ID = "snake"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the one-cell step for d.
func (d Direction) Delta() core.Point {
	switch d {
	case DirUp:
		return core.Point{X: 0, Y: -1}
	case DirDown:
		return core.Point{X: 0, Y: 1}
	case DirLeft:
		return core.Point{X: -1, Y: 0}
	default:
		return core.Point{X: 1, Y: 0}
	}
}

// Opposite reports whether d and o point in opposite directions.
func (d Direction) Opposite(o Direction) bool {
	return (d+2)%4 == o
}

var keyDirections = map[core.Key]Direction{
	core.KeyUp:    DirUp,
	core.KeyDown:  DirDown,
	core.KeyLeft:  DirLeft,
	core.KeyRight: DirRight,
}

// State is the Snake board.
type State struct {
	Cfg   config.SnakeConfig
	Body  []core.Point // Head at index 0
	Dir   Direction
	Food  core.Point // (-1, -1) when the board is full
	RNG   core.RNG
	Score int
	Ticks uint64
}

// Head returns the head cell.
func (s State) Head() core.Point {
	return s.Body[0]
}

// Occupies reports whether the snake covers p.
func (s State) Occupies(p core.Point) bool {
	for _, seg := range s.Body {
		if seg == p {
			return true
		}
	}
	return false
}

// Definition describes Snake to the engine.
func Definition() engine.Definition[State] {
	return engine.Definition[State]{
		ID:          ID,
		Title:       "Snake",
		Description: "Eat, grow, and stay off the walls",
		Controls:    "←↑→↓ steer",
		TickRate:    10,
		Policy: session.NewPolicy(
			session.FixedBonus(100),
			session.WithLossAward(session.ScoreDiv(10)),
		),
		Init:    Init,
		Resolve: Resolve,
		Render:  Render,
	}
}

// New creates a Snake engine.
func New() *engine.Engine[State] {
	return engine.New(Definition())
}

// Init builds the opening board.
func Init(rc core.RuntimeConfig) State {
	cfg, err := config.Load(ID, rc.ConfigPath, config.DefaultSnakeConfig())
	if err != nil {
		log.Warn("using default snake config", "err", err)
	}
	return NewState(cfg, rc.Seed)
}

// NewState places the snake heading right from the left quarter of the
// middle row and spawns the first food.
func NewState(cfg config.SnakeConfig, seed int64) State {
	startX := max(cfg.Grid.Width/4, cfg.InitialLength-1)
	startY := cfg.Grid.Height / 2

	body := make([]core.Point, cfg.InitialLength)
	for i := range body {
		body[i] = core.Point{X: startX - i, Y: startY}
	}

	s := State{
		Cfg:  cfg,
		Body: body,
		Dir:  DirRight,
		RNG:  core.NewRNG(seed),
	}
	s.Food = spawnFood(&s)
	return s
}

// spawnFood picks a random free cell, or (-1, -1) when none is left.
func spawnFood(s *State) core.Point {
	var empty []core.Point
	for y := 0; y < s.Cfg.Grid.Height; y++ {
		for x := 0; x < s.Cfg.Grid.Width; x++ {
			p := core.Point{X: x, Y: y}
			if !s.Occupies(p) {
				empty = append(empty, p)
			}
		}
	}
	if len(empty) == 0 {
		return core.Point{X: -1, Y: -1}
	}
	return empty[s.RNG.IntN(len(empty))]
}

func (s State) inBounds(p core.Point) bool {
	return p.X >= 0 && p.X < s.Cfg.Grid.Width && p.Y >= 0 && p.Y < s.Cfg.Grid.Height
}

// Resolve moves the snake one cell.
func Resolve(prev State, in core.InputSnapshot) engine.Resolution[State] {
	s := prev
	s.Ticks++
	res := engine.Resolution[State]{Next: s}

	if k, ok := in.LastDirection(); ok {
		// Instant reversal would run the head into the neck.
		if d := keyDirections[k]; !d.Opposite(s.Dir) {
			s.Dir = d
		}
	}

	head := s.Head().Add(s.Dir.Delta())
	if !s.inBounds(head) {
		res.Next = s
		res.Terminal = core.OutcomeLose
		return res
	}

	eating := head == s.Food

	// The tail moves away this tick unless the snake grows.
	checkLen := len(s.Body)
	if !eating {
		checkLen--
	}
	for _, seg := range s.Body[:checkLen] {
		if seg == head {
			res.Next = s
			res.Terminal = core.OutcomeLose
			return res
		}
	}

	body := make([]core.Point, 0, len(s.Body)+1)
	body = append(body, head)
	if eating {
		body = append(body, s.Body...)
	} else {
		body = append(body, s.Body[:len(s.Body)-1]...)
	}
	s.Body = body

	if eating {
		s.Score += s.Cfg.FoodPoints
		res.ScoreDelta = s.Cfg.FoodPoints
		if len(s.Body) >= s.Cfg.TargetLength {
			res.Terminal = core.OutcomeWin
		} else {
			s.Food = spawnFood(&s)
		}
	}

	res.Next = s
	return res
}

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}
