package t2048

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
)

func board(rows ...[]int) Board {
	return core.GridFromRows(rows)
}

func TestSlideRowMerge(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
		score    int
	}{
		{"simple merge", []int{2, 2, 0, 0}, []int{4, 0, 0, 0}, 4},
		{"merge with trailing tile", []int{2, 2, 2, 0}, []int{4, 2, 0, 0}, 4},
		{"double merge", []int{2, 2, 2, 2}, []int{4, 4, 0, 0}, 8},
		{"no merge possible", []int{2, 4, 8, 16}, []int{2, 4, 8, 16}, 0},
		{"slide with gap", []int{0, 0, 2, 2}, []int{4, 0, 0, 0}, 4},
		{"slide with multiple gaps", []int{2, 0, 0, 2}, []int{4, 0, 0, 0}, 4},
		{"no change needed", []int{4, 2, 0, 0}, []int{4, 2, 0, 0}, 0},
		{"empty row", []int{0, 0, 0, 0}, []int{0, 0, 0, 0}, 0},
		{"single tile", []int{0, 4, 0, 0}, []int{4, 0, 0, 0}, 0},
		{"merged tile does not merge again", []int{2, 2, 4, 0}, []int{4, 4, 0, 0}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score := slideRow(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("slideRow(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("slideRow(%v) score = %d, expected %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestSlide(t *testing.T) {
	tests := []struct {
		name     string
		dir      Direction
		input    Board
		expected Board
		score    int
	}{
		{
			name: "left",
			dir:  DirLeft,
			input: board(
				[]int{2, 2, 0, 0},
				[]int{4, 0, 4, 0},
				[]int{2, 2, 2, 2},
				[]int{0, 0, 0, 2},
			),
			expected: board(
				[]int{4, 0, 0, 0},
				[]int{8, 0, 0, 0},
				[]int{4, 4, 0, 0},
				[]int{2, 0, 0, 0},
			),
			score: 20,
		},
		{
			name: "right",
			dir:  DirRight,
			input: board(
				[]int{2, 2, 0, 0},
				[]int{4, 0, 4, 0},
				[]int{2, 2, 2, 2},
				[]int{0, 0, 0, 2},
			),
			expected: board(
				[]int{0, 0, 0, 4},
				[]int{0, 0, 0, 8},
				[]int{0, 0, 4, 4},
				[]int{0, 0, 0, 2},
			),
			score: 20,
		},
		{
			name: "up",
			dir:  DirUp,
			input: board(
				[]int{2, 4, 2, 0},
				[]int{2, 0, 2, 0},
				[]int{0, 4, 2, 0},
				[]int{0, 0, 2, 2},
			),
			expected: board(
				[]int{4, 8, 4, 2},
				[]int{0, 0, 4, 0},
				[]int{0, 0, 0, 0},
				[]int{0, 0, 0, 0},
			),
			score: 20,
		},
		{
			name: "down",
			dir:  DirDown,
			input: board(
				[]int{2, 4, 2, 2},
				[]int{2, 0, 2, 0},
				[]int{0, 4, 2, 0},
				[]int{0, 0, 2, 0},
			),
			expected: board(
				[]int{0, 0, 0, 0},
				[]int{0, 0, 0, 0},
				[]int{0, 0, 4, 0},
				[]int{4, 8, 4, 2},
			),
			score: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.input.Clone()
			result, score, changed := Slide(tt.input, tt.dir)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Slide(%v): got %v, expected %v", tt.dir, result.Cells, tt.expected.Cells)
			}
			if score != tt.score {
				t.Errorf("Slide(%v) score = %d, expected %d", tt.dir, score, tt.score)
			}
			if !changed {
				t.Errorf("Slide(%v) should indicate board changed", tt.dir)
			}
			if !reflect.DeepEqual(tt.input, before) {
				t.Errorf("Slide(%v) mutated its input", tt.dir)
			}
		})
	}
}

func TestNoChangeNoSpawn(t *testing.T) {
	s := NewState(config.DefaultT2048Config(), 1)
	s.Board = board(
		[]int{4, 2, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
	)

	r := Resolve(s, core.SnapshotOf(core.KeyLeft))
	if !reflect.DeepEqual(r.Next.Board, s.Board) || r.Next.Moves != 0 {
		t.Error("a move that changes nothing should not spawn a tile")
	}
}

func TestMoveSpawnsTile(t *testing.T) {
	s := NewState(config.DefaultT2048Config(), 1)
	s.Board = board(
		[]int{2, 2, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
	)

	r := Resolve(s, core.SnapshotOf(core.KeyLeft))
	if r.ScoreDelta != 4 || r.Next.Score != 4 {
		t.Errorf("ScoreDelta = %d, Score = %d, expected 4, 4", r.ScoreDelta, r.Next.Score)
	}
	if got := 16 - r.Next.Board.Count(0); got != 2 {
		t.Errorf("tiles after move = %d, expected 2 (merged + spawned)", got)
	}
	if s.Board.At(1, 0) != 2 {
		t.Error("Resolve mutated the previous board")
	}
}

func TestHeldKeyDoesNotRepeat(t *testing.T) {
	s := NewState(config.DefaultT2048Config(), 1)
	held := core.EmptySnapshot()
	held.Pressed[core.KeyLeft] = true

	if r := Resolve(s, held); r.Next.Moves != 0 {
		t.Error("a held key should not slide again")
	}
}

func TestCanMove(t *testing.T) {
	full := board(
		[]int{2, 4, 8, 16},
		[]int{32, 64, 128, 256},
		[]int{512, 1024, 2048, 4096},
		[]int{8192, 16384, 32768, 65536},
	)
	if CanMove(full) {
		t.Error("Board with no moves should be game over")
	}

	withMerge := full.Clone()
	withMerge.Set(1, 0, 2)
	if !CanMove(withMerge) {
		t.Error("Board with possible merge should not be game over")
	}

	withEmpty := full.Clone()
	withEmpty.Set(2, 2, 0)
	if !CanMove(withEmpty) {
		t.Error("Board with empty cell should not be game over")
	}
}

func TestWinTile(t *testing.T) {
	s := NewState(config.DefaultT2048Config(), 1)
	s.Board = board(
		[]int{1024, 1024, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
	)

	r := Resolve(s, core.SnapshotOf(core.KeyLeft))
	if r.Terminal != core.OutcomeWin {
		t.Errorf("Terminal = %v, expected win", r.Terminal)
	}
	if r.Next.Board.Count(0) != 15 {
		t.Error("no tile should spawn on the winning move")
	}
}

func TestLoseWhenStuck(t *testing.T) {
	s := NewState(config.T2048Config{Size: 2, WinTile: 2048, FourChance: 0}, 1)
	// Sliding right leaves one hole; the spawned 2 then locks the board.
	s.Board = board(
		[]int{4, 0},
		[]int{8, 16},
	)
	r := Resolve(s, core.SnapshotOf(core.KeyRight))
	if r.Terminal != core.OutcomeLose {
		t.Errorf("Terminal = %v, expected lose; board %v", r.Terminal, r.Next.Board.Cells)
	}
}

func TestDeterministicSpawn(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 12345}

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	if !reflect.DeepEqual(g1.Entities().Board, g2.Entities().Board) {
		t.Error("Same seed should produce same initial board")
	}
	if n := 16 - g1.Entities().Board.Count(0); n != 2 {
		t.Errorf("initial tiles = %d, expected 2", n)
	}
}

func TestMaxTile(t *testing.T) {
	b := board(
		[]int{2, 4, 0, 0},
		[]int{0, 512, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 8},
	)
	if got := MaxTile(b); got != 512 {
		t.Errorf("MaxTile() = %d, expected 512", got)
	}
}
