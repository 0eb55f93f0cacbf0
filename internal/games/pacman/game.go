// Package pacman implements a small Pac-Man: clear every pellet while
// ghosts hunt you. Power pellets make the ghosts edible for a while.
package pacman

import (
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/engine"
	"github.com/vovakirdan/arcade-hub/internal/registry"
	"github.com/vovakirdan/arcade-hub/internal/session"
)

// ID is the registry id of the game.
const ID = "pacman"

// Ghost is one pursuer.
type Ghost struct {
	Pos   core.Point
	Dir   core.Point
	Start core.Point
}

// State is the maze and everything moving in it.
type State struct {
	Cfg         config.PacmanConfig
	Maze        Maze
	Player      core.Point
	PlayerStart core.Point
	Dir         core.Point // Current heading
	Want        core.Point // Buffered turn, taken when the way opens
	Ghosts      []Ghost
	Lives       int
	Power       int // Ticks left with edible ghosts
	Score       int
	Ticks       uint64
	RNG         core.RNG
}

// Pellets counts the pellets still on the board, power pellets included.
func (s State) Pellets() int {
	return s.Maze.Count(TilePellet) + s.Maze.Count(TilePower)
}

// Definition describes Pac-Man to the engine.
func Definition() engine.Definition[State] {
	return engine.Definition[State]{
		ID:          ID,
		Title:       "Pac-Man",
		Description: "Eat every pellet and dodge the ghosts",
		Controls:    "←↑→↓ steer",
		TickRate:    8,
		Policy: session.NewPolicy(
			session.ScoreDiv(10),
			session.WithLossAward(session.ScoreDiv(20)),
		),
		Init:    Init,
		Resolve: Resolve,
		Render:  Render,
	}
}

// New creates a Pac-Man engine.
func New() *engine.Engine[State] {
	return engine.New(Definition())
}

// Init loads the maze.
func Init(rc core.RuntimeConfig) State {
	cfg, err := config.Load(ID, rc.ConfigPath, config.DefaultPacmanConfig())
	if err != nil {
		log.Warn("using default pacman config", "err", err)
	}
	return NewState(cfg, rc.Seed)
}

// NewState parses the maze and places everyone at their starts.
func NewState(cfg config.PacmanConfig, seed int64) State {
	l := ParseMaze(cfg.Maze)
	s := State{
		Cfg:         cfg,
		Maze:        l.Maze,
		Player:      l.PlayerStart,
		PlayerStart: l.PlayerStart,
		Lives:       cfg.Lives,
		RNG:         core.NewRNG(seed),
	}
	for _, g := range l.GhostStarts {
		s.Ghosts = append(s.Ghosts, Ghost{Pos: g, Start: g})
	}
	return s
}

var keyDirs = map[core.Key]core.Point{
	core.KeyUp:    core.Neighbors4[0],
	core.KeyRight: core.Neighbors4[1],
	core.KeyDown:  core.Neighbors4[2],
	core.KeyLeft:  core.Neighbors4[3],
}

// respawn puts the player and ghosts back at their starts.
func (s *State) respawn() {
	s.Player = s.PlayerStart
	s.Dir, s.Want = core.Point{}, core.Point{}
	s.Power = 0
	ghosts := make([]Ghost, len(s.Ghosts))
	for i, g := range s.Ghosts {
		ghosts[i] = Ghost{Pos: g.Start, Start: g.Start}
	}
	s.Ghosts = ghosts
}

// meet settles a player/ghost contact. It returns true when the player
// was caught.
func (s *State) meet(i int, res *engine.Resolution[State]) bool {
	if s.Power > 0 {
		s.Ghosts[i] = Ghost{Pos: s.Ghosts[i].Start, Start: s.Ghosts[i].Start}
		res.ScoreDelta += s.Cfg.GhostPoints
		s.Score += s.Cfg.GhostPoints
		return false
	}
	return true
}

// Resolve moves the player, eats, then moves the ghosts.
func Resolve(prev State, in core.InputSnapshot) engine.Resolution[State] {
	s := prev
	s.Ticks++
	s.Power = max(s.Power-1, 0)
	res := engine.Resolution[State]{}

	if k, ok := in.LastDirection(); ok {
		s.Want = keyDirs[k]
	}
	if s.Want != (core.Point{}) && Walkable(s.Maze, s.Player.Add(s.Want)) {
		s.Dir = s.Want
	}
	from := s.Player
	if next := s.Player.Add(s.Dir); Walkable(s.Maze, next) {
		s.Player = next
	}

	switch s.Maze.At(s.Player.X, s.Player.Y) {
	case TilePellet:
		s.Maze = s.Maze.Clone()
		s.Maze.Set(s.Player.X, s.Player.Y, TileEmpty)
		res.ScoreDelta += s.Cfg.PelletPoints
	case TilePower:
		s.Maze = s.Maze.Clone()
		s.Maze.Set(s.Player.X, s.Player.Y, TileEmpty)
		res.ScoreDelta += s.Cfg.PowerPoints
		s.Power = s.Cfg.PowerTicks
	}
	s.Score += res.ScoreDelta

	if s.Pellets() == 0 {
		res.Next = s
		res.Terminal = core.OutcomeWin
		return res
	}

	s.Ghosts = slices.Clone(s.Ghosts)
	caught := false
	rng := s.RNG.Rand()
	for i := range s.Ghosts {
		g := &s.Ghosts[i]
		if g.Pos == s.Player {
			caught = s.meet(i, &res) || caught
			continue
		}
		// Frightened ghosts move at half speed.
		if s.Power > 0 && s.Ticks%2 == 1 {
			continue
		}
		was := g.Pos
		g.Dir = ChooseGhostDir(s.Maze, g.Pos, g.Dir, s.Player, s.Cfg.ChaseChance, s.Power > 0, rng)
		g.Pos = g.Pos.Add(g.Dir)
		if g.Pos == s.Player || (g.Pos == from && was == s.Player) {
			caught = s.meet(i, &res) || caught
		}
	}

	if caught {
		s.Lives--
		if s.Lives <= 0 {
			res.Next = s
			res.Terminal = core.OutcomeLose
			return res
		}
		s.respawn()
	}
	res.Next = s
	return res
}

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}
