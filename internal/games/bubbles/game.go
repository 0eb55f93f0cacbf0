// Package bubbles implements a column Bubble Shooter. The shooter fires
// straight up; a landed bubble pops its same-color region when it holds
// at least MatchThreshold bubbles, and bubbles left hanging from nothing
// fall. Clearing the board wins, a bubble landing on the dead line loses.
package bubbles

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/engine"
	"github.com/vovakirdan/arcade-hub/internal/registry"
	"github.com/vovakirdan/arcade-hub/internal/session"
)

// ID is the registry id of the game.
const ID = "bubbles"

// Empty marks a free cell. Colors are 1..Colors.
const Empty = 0

// Shot is a bubble in flight.
type Shot struct {
	X, Y  int
	Color int
	Wait  int // Ticks until the next cell
}

// State is the bubble board and shooter.
type State struct {
	Cfg    config.BubblesConfig
	Grid   core.Grid[int]
	AimX   int
	Loaded int   // Color waiting in the shooter
	Shot   *Shot // nil when nothing is flying
	RNG    core.RNG
	Score  int
	Ticks  uint64
}

// Definition describes Bubble Shooter to the engine.
func Definition() engine.Definition[State] {
	return engine.Definition[State]{
		ID:          ID,
		Title:       "Bubble Shooter",
		Description: "Match three or more to pop them",
		Controls:    "←/→ aim  space fire",
		TickRate:    30,
		Policy: session.NewPolicy(
			session.ScoreDiv(10),
			session.WithLossAward(session.ScoreDiv(20)),
		),
		Init:    Init,
		Resolve: Resolve,
		Render:  Render,
	}
}

// New creates a Bubble Shooter engine.
func New() *engine.Engine[State] {
	return engine.New(Definition())
}

// Init builds the opening board.
func Init(rc core.RuntimeConfig) State {
	cfg, err := config.Load(ID, rc.ConfigPath, config.DefaultBubblesConfig())
	if err != nil {
		log.Warn("using default bubbles config", "err", err)
	}
	return NewState(cfg, rc.Seed)
}

// NewState fills the top InitialRows with random colors.
func NewState(cfg config.BubblesConfig, seed int64) State {
	s := State{
		Cfg:  cfg,
		Grid: core.NewGrid[int](cfg.Grid.Width, cfg.Grid.Height),
		AimX: cfg.Grid.Width / 2,
		RNG:  core.NewRNG(seed),
	}
	for y := 0; y < min(cfg.InitialRows, cfg.Grid.Height); y++ {
		for x := 0; x < cfg.Grid.Width; x++ {
			s.Grid.Set(x, y, 1+s.RNG.IntN(cfg.Colors))
		}
	}
	s.Loaded = nextColor(&s)
	return s
}

// nextColor draws a color still present on the board so every shot can
// match something. An empty board falls back to any color.
func nextColor(s *State) int {
	var present []int
	for c := 1; c <= s.Cfg.Colors; c++ {
		if s.Grid.Count(c) > 0 {
			present = append(present, c)
		}
	}
	if len(present) == 0 {
		return 1 + s.RNG.IntN(s.Cfg.Colors)
	}
	return present[s.RNG.IntN(len(present))]
}

// Resolve advances the shooter or the bubble in flight.
func Resolve(prev State, in core.InputSnapshot) engine.Resolution[State] {
	s := prev
	s.Ticks++
	res := engine.Resolution[State]{}

	if s.Shot == nil {
		if in.Hit(core.KeyLeft) {
			s.AimX--
		}
		if in.Hit(core.KeyRight) {
			s.AimX++
		}
		s.AimX = core.Clamp(s.AimX, 0, s.Cfg.Grid.Width-1)

		if in.Hit(core.KeyAction) || in.Hit(core.KeyUp) {
			s.Shot = &Shot{X: s.AimX, Y: s.Cfg.Grid.Height, Color: s.Loaded}
		}
		res.Next = s
		return res
	}

	shot := *s.Shot
	if shot.Wait > 0 {
		shot.Wait--
		s.Shot = &shot
		res.Next = s
		return res
	}

	if shot.Y > 0 && s.Grid.At(shot.X, shot.Y-1) == Empty {
		shot.Y--
		shot.Wait = max(s.Cfg.FlightTicks-1, 0)
		s.Shot = &shot
		res.Next = s
		return res
	}

	// Landing below the board means the column is full to the bottom.
	if shot.Y >= s.Cfg.Grid.Height {
		s.Shot = nil
		res.Next = s
		res.Terminal = core.OutcomeLose
		return res
	}

	s.Shot = nil
	grid := s.Grid.Clone()
	grid.Set(shot.X, shot.Y, shot.Color)

	popped := grid.ClearRegion(shot.X, shot.Y, s.Cfg.MatchThreshold, Empty)
	dropped := 0
	if len(popped) > 0 {
		dropped = dropFloating(grid)
	}
	s.Grid = grid

	res.ScoreDelta = len(popped)*s.Cfg.PopPoints + dropped*s.Cfg.PopPoints*2
	s.Score += res.ScoreDelta

	switch {
	case s.Grid.Count(Empty) == len(s.Grid.Cells):
		res.Terminal = core.OutcomeWin
	case lowestRow(s.Grid) >= s.Cfg.DeadLine:
		res.Terminal = core.OutcomeLose
	default:
		s.Loaded = nextColor(&s)
	}
	res.Next = s
	return res
}

// dropFloating clears every bubble not connected to the top row through
// occupied cells of any color and returns how many fell.
func dropFloating(g core.Grid[int]) int {
	anchored := make([]bool, len(g.Cells))
	var queue []core.Point
	for x := 0; x < g.W; x++ {
		if g.At(x, 0) != Empty {
			anchored[x] = true
			queue = append(queue, core.Point{X: x, Y: 0})
		}
	}
	for i := 0; i < len(queue); i++ {
		for _, d := range core.Neighbors4 {
			n := queue[i].Add(d)
			if !g.InBounds(n.X, n.Y) || anchored[n.Y*g.W+n.X] || g.At(n.X, n.Y) == Empty {
				continue
			}
			anchored[n.Y*g.W+n.X] = true
			queue = append(queue, n)
		}
	}

	dropped := 0
	for i, c := range g.Cells {
		if c != Empty && !anchored[i] {
			g.Cells[i] = Empty
			dropped++
		}
	}
	return dropped
}

// lowestRow returns the deepest occupied row, or -1 for an empty board.
func lowestRow(g core.Grid[int]) int {
	for y := g.H - 1; y >= 0; y-- {
		for x := 0; x < g.W; x++ {
			if g.At(x, y) != Empty {
				return y
			}
		}
	}
	return -1
}

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}
