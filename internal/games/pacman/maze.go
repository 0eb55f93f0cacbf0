package pacman

import (
	"math/rand/v2"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

// Tile is the static content of a maze cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileWall
	TilePellet
	TilePower
)

// Maze is the grid of tiles.
type Maze = core.Grid[Tile]

// Layout is a parsed maze with its start positions.
type Layout struct {
	Maze        Maze
	PlayerStart core.Point
	GhostStarts []core.Point
}

// ParseMaze reads the ASCII maze. Unknown characters are empty floor.
func ParseMaze(rows []string) Layout {
	tiles := make([][]Tile, len(rows))
	var l Layout
	for y, row := range rows {
		tiles[y] = make([]Tile, len(row))
		for x, ch := range row {
			switch ch {
			case '#':
				tiles[y][x] = TileWall
			case '.':
				tiles[y][x] = TilePellet
			case 'o':
				tiles[y][x] = TilePower
			case 'P':
				l.PlayerStart = core.Point{X: x, Y: y}
			case 'G':
				l.GhostStarts = append(l.GhostStarts, core.Point{X: x, Y: y})
			}
		}
	}
	l.Maze = core.GridFromRows(tiles)
	return l
}

// Walkable reports whether p is inside the maze and not a wall.
func Walkable(m Maze, p core.Point) bool {
	return m.InBounds(p.X, p.Y) && m.At(p.X, p.Y) != TileWall
}

func reverse(d core.Point) core.Point {
	return core.Point{X: -d.X, Y: -d.Y}
}

func manhattan(a, b core.Point) int {
	return core.Abs(a.X-b.X) + core.Abs(a.Y-b.Y)
}

// ChooseGhostDir picks a ghost's next direction. Ghosts never reverse
// unless stuck in a dead end. With probability chase the ghost takes the
// exit closest to target, or the farthest one when flee is set; otherwise
// it wanders to a random exit. Ties keep core.Neighbors4 order. A ghost
// with no exit at all gets the zero direction.
func ChooseGhostDir(m Maze, pos, dir, target core.Point, chase float64, flee bool, rng *rand.Rand) core.Point {
	var exits []core.Point
	for _, d := range core.Neighbors4 {
		if d == reverse(dir) && dir != (core.Point{}) {
			continue
		}
		if Walkable(m, pos.Add(d)) {
			exits = append(exits, d)
		}
	}
	if len(exits) == 0 {
		if back := reverse(dir); dir != (core.Point{}) && Walkable(m, pos.Add(back)) {
			return back
		}
		return core.Point{}
	}

	if rng.Float64() >= chase {
		return exits[rng.IntN(len(exits))]
	}

	best := exits[0]
	bestDist := manhattan(pos.Add(best), target)
	for _, d := range exits[1:] {
		dist := manhattan(pos.Add(d), target)
		if (!flee && dist < bestDist) || (flee && dist > bestDist) {
			best, bestDist = d, dist
		}
	}
	return best
}
