// Package t2048 implements the 2048 sliding puzzle. Reaching the win
// tile wins, a full board with no merges left loses.
package t2048

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/engine"
	"github.com/vovakirdan/arcade-hub/internal/registry"
	"github.com/vovakirdan/arcade-hub/internal/session"
)

// ID is the registry id of the game.
const ID = "2048"

// configName is the config file stem; ids may not start with a digit there.
const configName = "t2048"

// State is the 2048 board.
type State struct {
	Cfg   config.T2048Config
	Board Board
	RNG   core.RNG
	Score int
	Moves int
}

// Definition describes 2048 to the engine.
func Definition() engine.Definition[State] {
	return engine.Definition[State]{
		ID:          ID,
		Title:       "2048",
		Description: "Slide and merge tiles up to 2048",
		Controls:    "←↑→↓ slide",
		TickRate:    30,
		Policy: session.NewPolicy(
			session.ScoreDiv(10),
			session.WithLossAward(session.ScoreDiv(50)),
			session.KeepStreakAtLeast(1000),
		),
		Init:    Init,
		Resolve: Resolve,
		Render:  Render,
	}
}

// New creates a 2048 engine.
func New() *engine.Engine[State] {
	return engine.New(Definition())
}

// Init builds the opening board with two tiles.
func Init(rc core.RuntimeConfig) State {
	cfg, err := config.Load(configName, rc.ConfigPath, config.DefaultT2048Config())
	if err != nil {
		log.Warn("using default 2048 config", "err", err)
	}
	return NewState(cfg, rc.Seed)
}

// NewState builds an opening board from an explicit config.
func NewState(cfg config.T2048Config, seed int64) State {
	if cfg.Size < 2 {
		cfg.Size = config.DefaultT2048Config().Size
	}
	s := State{
		Cfg:   cfg,
		Board: NewBoard(cfg.Size),
		RNG:   core.NewRNG(seed),
	}
	spawnTile(&s)
	spawnTile(&s)
	return s
}

// spawnTile puts a 2, or a 4 with FourChance, in a random empty cell.
// The board must already be a private copy.
func spawnTile(s *State) {
	empty := EmptyCells(s.Board)
	if len(empty) == 0 {
		return
	}
	cell := empty[s.RNG.IntN(len(empty))]

	value := 2
	if s.RNG.Float64() < s.Cfg.FourChance {
		value = 4
	}
	s.Board.Set(cell.X, cell.Y, value)
}

// Resolve applies at most one slide per tick.
func Resolve(prev State, in core.InputSnapshot) engine.Resolution[State] {
	s := prev
	res := engine.Resolution[State]{Next: s}

	k, ok := in.LastDirection()
	if !ok || !in.Hit(k) {
		return res
	}

	board, gained, changed := Slide(s.Board, keyDirections[k])
	if !changed {
		// A move that changes nothing spawns nothing.
		return res
	}

	s.Board = board
	s.Score += gained
	s.Moves++
	res.ScoreDelta = gained

	if MaxTile(s.Board) >= s.Cfg.WinTile {
		res.Terminal = core.OutcomeWin
		res.Next = s
		return res
	}

	spawnTile(&s)
	if !CanMove(s.Board) {
		res.Terminal = core.OutcomeLose
	}
	res.Next = s
	return res
}

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}
