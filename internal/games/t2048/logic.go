package t2048

import "github.com/vovakirdan/arcade-hub/internal/core"

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

var keyDirections = map[core.Key]Direction{
	core.KeyUp:    DirUp,
	core.KeyDown:  DirDown,
	core.KeyLeft:  DirLeft,
	core.KeyRight: DirRight,
}

// Board is a square board of tile values, 0 for empty.
type Board = core.Grid[int]

// NewBoard returns an empty size x size board.
func NewBoard(size int) Board {
	return core.NewGrid[int](size, size)
}

// slideRow slides and merges a single line toward index 0.
// Each tile merges at most once per move.
// Returns the updated line and the score gained from merges.
func slideRow(row []int) (result []int, score int) {
	result = make([]int, len(row))
	writePos := 0
	merged := false

	for _, v := range row {
		if v == 0 {
			continue
		}

		if writePos > 0 && !merged && result[writePos-1] == v {
			// Merge with previous tile
			result[writePos-1] *= 2
			score += result[writePos-1]
			merged = true
		} else {
			// Move tile
			result[writePos] = v
			writePos++
			merged = false
		}
	}

	return result, score
}

// line returns the cells of line i ordered from the edge tiles move toward.
func line(size int, dir Direction, i int) []core.Point {
	pts := make([]core.Point, size)
	for j := range size {
		switch dir {
		case DirLeft:
			pts[j] = core.Point{X: j, Y: i}
		case DirRight:
			pts[j] = core.Point{X: size - 1 - j, Y: i}
		case DirUp:
			pts[j] = core.Point{X: i, Y: j}
		case DirDown:
			pts[j] = core.Point{X: i, Y: size - 1 - j}
		}
	}
	return pts
}

// Slide performs a move in the given direction on a copy of board.
// Returns the new board, score gained, and whether the board changed.
func Slide(board Board, dir Direction) (Board, int, bool) {
	next := board.Clone()
	size := board.W
	totalScore := 0
	changed := false

	row := make([]int, size)
	for i := range size {
		pts := line(size, dir, i)
		for j, p := range pts {
			row[j] = board.At(p.X, p.Y)
		}

		newRow, score := slideRow(row)
		totalScore += score
		for j, p := range pts {
			if newRow[j] != row[j] {
				changed = true
			}
			next.Set(p.X, p.Y, newRow[j])
		}
	}

	return next, totalScore, changed
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(board Board) []core.Point {
	var cells []core.Point
	for y := range board.H {
		for x := range board.W {
			if board.At(x, y) == 0 {
				cells = append(cells, core.Point{X: x, Y: y})
			}
		}
	}
	return cells
}

// HasPossibleMerge returns true if any adjacent tiles can merge.
func HasPossibleMerge(board Board) bool {
	for y := range board.H {
		for x := range board.W {
			val := board.At(x, y)
			if val == 0 {
				continue
			}
			// Check right and bottom neighbors
			if x < board.W-1 && board.At(x+1, y) == val {
				return true
			}
			if y < board.H-1 && board.At(x, y+1) == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any move is possible.
func CanMove(board Board) bool {
	return board.Count(0) > 0 || HasPossibleMerge(board)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board Board) int {
	maxVal := 0
	for _, v := range board.Cells {
		maxVal = max(maxVal, v)
	}
	return maxVal
}
