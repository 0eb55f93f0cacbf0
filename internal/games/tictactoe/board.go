package tictactoe

import "math/rand/v2"

// Mark is the content of a square.
type Mark int8

const (
	Empty Mark = iota
	X          // The player
	O          // The computer
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Other returns the opposing mark.
func (m Mark) Other() Mark {
	if m == X {
		return O
	}
	return X
}

// Board holds the nine squares row by row.
type Board [9]Mark

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Winner returns the mark owning a full line, or Empty.
func (b Board) Winner() Mark {
	for _, l := range lines {
		if m := b[l[0]]; m != Empty && m == b[l[1]] && m == b[l[2]] {
			return m
		}
	}
	return Empty
}

// Full reports whether no square is free.
func (b Board) Full() bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return true
}

// Free returns the free squares in index order.
func (b Board) Free() []int {
	var free []int
	for i, m := range b {
		if m == Empty {
			free = append(free, i)
		}
	}
	return free
}

// completing returns a free square that gives m a full line, or -1.
func (b Board) completing(m Mark) int {
	for _, l := range lines {
		count, free := 0, -1
		for _, i := range l {
			switch b[i] {
			case m:
				count++
			case Empty:
				free = i
			}
		}
		if count == 2 && free >= 0 {
			return free
		}
	}
	return -1
}

// ChooseMove picks a square for me: win if possible, else block the
// opponent, else take the center, else a random free corner, else any
// random free square. It returns -1 on a full board.
func ChooseMove(b Board, me Mark, rng *rand.Rand) int {
	if i := b.completing(me); i >= 0 {
		return i
	}
	if i := b.completing(me.Other()); i >= 0 {
		return i
	}
	if b[4] == Empty {
		return 4
	}

	var corners []int
	for _, i := range []int{0, 2, 6, 8} {
		if b[i] == Empty {
			corners = append(corners, i)
		}
	}
	if len(corners) > 0 {
		return corners[rng.IntN(len(corners))]
	}

	free := b.Free()
	if len(free) == 0 {
		return -1
	}
	return free[rng.IntN(len(free))]
}
