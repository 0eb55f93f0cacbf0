// Package tictactoe implements Tic-Tac-Toe against a computer opponent.
// The player is X and always moves first. A draw ends the game as a loss
// that still scores the draw bonus.
package tictactoe

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/engine"
	"github.com/vovakirdan/arcade-hub/internal/registry"
	"github.com/vovakirdan/arcade-hub/internal/session"
)

// ID is the registry id of the game.
const ID = "tictactoe"

// State is the board plus whose turn it is.
type State struct {
	Cfg    config.TicTacToeConfig
	Board  Board
	Cursor int // Square under the player's cursor
	AIWait int // Ticks left before the computer moves; 0 on the player's turn
	RNG    core.RNG
	Score  int
}

// Thinking reports whether the computer is about to move.
func (s State) Thinking() bool {
	return s.AIWait > 0
}

// Definition describes Tic-Tac-Toe to the engine.
func Definition() engine.Definition[State] {
	return engine.Definition[State]{
		ID:          ID,
		Title:       "Tic-Tac-Toe",
		Description: "Three in a row beats the computer",
		Controls:    "←↑→↓ move  enter/space place",
		TickRate:    10,
		Policy: session.NewPolicy(
			session.FixedBonus(20),
			session.WithLossAward(session.ScoreAsPoints()),
			session.KeepStreakAtLeast(25),
		),
		Init:    Init,
		Resolve: Resolve,
		Render:  Render,
	}
}

// New creates a Tic-Tac-Toe engine.
func New() *engine.Engine[State] {
	return engine.New(Definition())
}

// Init builds an empty board.
func Init(rc core.RuntimeConfig) State {
	cfg, err := config.Load(ID, rc.ConfigPath, config.DefaultTicTacToeConfig())
	if err != nil {
		log.Warn("using default tictactoe config", "err", err)
	}
	return State{Cfg: cfg, Cursor: 4, RNG: core.NewRNG(rc.Seed)}
}

var cursorMoves = map[core.Key]int{
	core.KeyUp:    -3,
	core.KeyDown:  3,
	core.KeyLeft:  -1,
	core.KeyRight: 1,
}

func moveCursor(c int, k core.Key) int {
	row, col := c/3, c%3
	switch k {
	case core.KeyLeft, core.KeyRight:
		col = core.Clamp(col+cursorMoves[k], 0, 2)
	default:
		row = core.Clamp(row+cursorMoves[k]/3, 0, 2)
	}
	return row*3 + col
}

// finish scores a finished board, or reports false while play goes on.
func finish(s State, res *engine.Resolution[State]) bool {
	switch {
	case s.Board.Winner() == X:
		res.ScoreDelta = s.Cfg.WinScore
		res.Terminal = core.OutcomeWin
	case s.Board.Winner() == O:
		res.Terminal = core.OutcomeLose
	case s.Board.Full():
		res.ScoreDelta = s.Cfg.DrawScore
		res.Terminal = core.OutcomeLose
	default:
		return false
	}
	s.Score += res.ScoreDelta
	res.Next = s
	return true
}

// Resolve handles the player's cursor and placement, then the computer's
// delayed reply.
func Resolve(prev State, in core.InputSnapshot) engine.Resolution[State] {
	s := prev
	res := engine.Resolution[State]{Next: s}

	if s.Thinking() {
		s.AIWait--
		if s.AIWait > 0 {
			res.Next = s
			return res
		}
		if i := ChooseMove(s.Board, O, s.RNG.Rand()); i >= 0 {
			s.Board[i] = O
		}
		if !finish(s, &res) {
			res.Next = s
		}
		return res
	}

	for _, k := range core.Directions {
		if in.Hit(k) {
			s.Cursor = moveCursor(s.Cursor, k)
		}
	}

	if (in.Hit(core.KeyConfirm) || in.Hit(core.KeyAction)) && s.Board[s.Cursor] == Empty {
		s.Board[s.Cursor] = X
		if finish(s, &res) {
			return res
		}
		s.AIWait = max(s.Cfg.AIDelayTicks, 1)
	}
	res.Next = s
	return res
}

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}
