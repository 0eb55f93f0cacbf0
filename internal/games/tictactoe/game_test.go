package tictactoe

import (
	"math/rand/v2"
	"testing"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
)

func parse(rows string) Board {
	var b Board
	i := 0
	for _, r := range rows {
		switch r {
		case 'X':
			b[i] = X
		case 'O':
			b[i] = O
		case '.':
		default:
			continue
		}
		i++
	}
	return b
}

func newState(b Board) State {
	return State{Cfg: config.DefaultTicTacToeConfig(), Board: b, Cursor: 4, RNG: core.NewRNG(1)}
}

func TestWinner(t *testing.T) {
	tests := []struct {
		board    string
		expected Mark
	}{
		{"XXX/.../...", X},
		{"O../O../O..", O},
		{"X../.X./..X", X},
		{"..O/.O./O..", O},
		{"XOX/OXO/OXO", Empty},
		{".../.../...", Empty},
	}
	for _, tc := range tests {
		if got := parse(tc.board).Winner(); got != tc.expected {
			t.Errorf("Winner(%s) = %v, expected %v", tc.board, got, tc.expected)
		}
	}
}

func TestChooseMove(t *testing.T) {
	tests := []struct {
		name     string
		board    string
		expected []int
	}{
		{"takes the win", "OO./XX./X..", []int{2}},
		{"blocks", "XX./.O./...", []int{2}},
		{"win beats block", "XX./OO./X..", []int{5}},
		{"center", "X../.../...", []int{4}},
		{"corner", ".../.X./...", []int{0, 2, 6, 8}},
		{"any free", "XOX/OOX/XXO", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ChooseMove(parse(tc.board), O, rand.New(rand.NewPCG(1, 2)))
			if tc.expected == nil {
				if got != -1 {
					t.Errorf("ChooseMove() = %d, expected -1 on a full board", got)
				}
				return
			}
			for _, e := range tc.expected {
				if got == e {
					return
				}
			}
			t.Errorf("ChooseMove() = %d, expected one of %v", got, tc.expected)
		})
	}
}

func TestPlaceThenComputerReplies(t *testing.T) {
	s := newState(Board{})
	r := Resolve(s, core.SnapshotOf(core.KeyConfirm))
	if r.Next.Board[4] != X {
		t.Fatal("player mark not placed")
	}
	if !r.Next.Thinking() {
		t.Fatal("computer should be thinking")
	}

	next := r.Next
	for i := 0; i < next.Cfg.AIDelayTicks; i++ {
		next = Resolve(next, core.EmptySnapshot()).Next
	}
	if next.Thinking() {
		t.Error("computer should have moved")
	}
	if got := 9 - len(next.Board.Free()); got != 2 {
		t.Errorf("marks on board = %d, expected 2", got)
	}
}

func TestInputIgnoredWhileThinking(t *testing.T) {
	s := newState(parse("X../.../..."))
	s.AIWait = 3
	s.Cursor = 1

	r := Resolve(s, core.SnapshotOf(core.KeyConfirm))
	if r.Next.Board[1] != Empty {
		t.Error("player placed during the computer's turn")
	}
}

func TestOccupiedSquareIgnored(t *testing.T) {
	s := newState(parse(".../.O./..."))
	r := Resolve(s, core.SnapshotOf(core.KeyConfirm))
	if r.Next.Board[4] != O || r.Next.Thinking() {
		t.Error("placing on an occupied square should do nothing")
	}
}

func TestOutcomes(t *testing.T) {
	tests := []struct {
		name     string
		board    string
		cursor   int
		terminal core.Outcome
		delta    int
	}{
		{"player wins", "XX./OO./...", 2, core.OutcomeWin, 100},
		{"draw scores as a loss", "XOX/XOO/OX.", 8, core.OutcomeLose, 25},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newState(parse(tc.board))
			s.Cursor = tc.cursor
			r := Resolve(s, core.SnapshotOf(core.KeyAction))
			if r.Terminal != tc.terminal || r.ScoreDelta != tc.delta {
				t.Errorf("Resolve() = %v/%d, expected %v/%d", r.Terminal, r.ScoreDelta, tc.terminal, tc.delta)
			}
		})
	}
}

func TestComputerWins(t *testing.T) {
	s := newState(parse("OO./XX./X.."))
	s.AIWait = 1

	r := Resolve(s, core.EmptySnapshot())
	if r.Terminal != core.OutcomeLose || r.ScoreDelta != 0 {
		t.Errorf("Resolve() = %v/%d, expected lose/0", r.Terminal, r.ScoreDelta)
	}
	if r.Next.Board[2] != O {
		t.Error("computer should complete its line")
	}
}

func TestCursorClamps(t *testing.T) {
	tests := []struct {
		from     int
		key      core.Key
		expected int
	}{
		{0, core.KeyUp, 0},
		{0, core.KeyLeft, 0},
		{2, core.KeyRight, 2},
		{8, core.KeyDown, 8},
		{4, core.KeyUp, 1},
		{4, core.KeyRight, 5},
		{3, core.KeyLeft, 3},
	}
	for _, tc := range tests {
		if got := moveCursor(tc.from, tc.key); got != tc.expected {
			t.Errorf("moveCursor(%d, %s) = %d, expected %d", tc.from, tc.key, got, tc.expected)
		}
	}
}
