package core

// Grid is a fixed-size 2D board of comparable cell values, stored row-major.
// Grids are values: Clone before mutating a grid that belongs to a previous
// tick's state.
type Grid[T comparable] struct {
	W, H  int
	Cells []T
}

// NewGrid allocates a w*h grid filled with the zero value.
func NewGrid[T comparable](w, h int) Grid[T] {
	return Grid[T]{W: w, H: h, Cells: make([]T, w*h)}
}

// GridFromRows builds a grid from a slice of rows. Rows shorter than the
// widest one are padded with the zero value.
func GridFromRows[T comparable](rows [][]T) Grid[T] {
	w := 0
	for _, row := range rows {
		w = max(w, len(row))
	}
	g := NewGrid[T](w, len(rows))
	for y, row := range rows {
		copy(g.Cells[y*w:], row)
	}
	return g
}

// InBounds reports whether (x, y) lies on the grid.
func (g Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y). Out-of-bounds reads return the zero value.
func (g Grid[T]) At(x, y int) T {
	var zero T
	if !g.InBounds(x, y) {
		return zero
	}
	return g.Cells[y*g.W+x]
}

// Set writes v at (x, y). Out-of-bounds writes are ignored.
func (g Grid[T]) Set(x, y int, v T) {
	if !g.InBounds(x, y) {
		return
	}
	g.Cells[y*g.W+x] = v
}

// Clone returns a deep copy of the grid.
func (g Grid[T]) Clone() Grid[T] {
	c := Grid[T]{W: g.W, H: g.H, Cells: make([]T, len(g.Cells))}
	copy(c.Cells, g.Cells)
	return c
}

// Count returns how many cells hold v.
func (g Grid[T]) Count(v T) int {
	n := 0
	for _, c := range g.Cells {
		if c == v {
			n++
		}
	}
	return n
}

// Neighbors4 are the orthogonal offsets used for connectivity.
var Neighbors4 = [4]Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// FloodFill returns the maximal 4-connected region of cells equal to the
// value at (x, y), starting with (x, y) itself. Diagonals do not connect.
// An out-of-bounds start yields nil.
func (g Grid[T]) FloodFill(x, y int) []Point {
	if !g.InBounds(x, y) {
		return nil
	}
	target := g.At(x, y)
	seen := make([]bool, len(g.Cells))
	seen[y*g.W+x] = true

	region := []Point{{X: x, Y: y}}
	for i := 0; i < len(region); i++ {
		p := region[i]
		for _, d := range Neighbors4 {
			n := p.Add(d)
			if !g.InBounds(n.X, n.Y) || seen[n.Y*g.W+n.X] {
				continue
			}
			if g.At(n.X, n.Y) != target {
				continue
			}
			seen[n.Y*g.W+n.X] = true
			region = append(region, n)
		}
	}
	return region
}

// ClearRegion flood-fills from (x, y) and, when the region holds at least
// threshold cells, overwrites every cell of it with empty. It returns the
// region that was cleared, or nil if the region was below threshold.
func (g Grid[T]) ClearRegion(x, y, threshold int, empty T) []Point {
	region := g.FloodFill(x, y)
	if len(region) < threshold {
		return nil
	}
	for _, p := range region {
		g.Set(p.X, p.Y, empty)
	}
	return region
}
