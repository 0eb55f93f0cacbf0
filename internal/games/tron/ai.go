package tron

import (
	"math/rand/v2"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

// Arena holds the trails: Free, or the Rider that left the trail.
type Arena = core.Grid[Rider]

// Open reports whether a cycle may enter p.
func Open(a Arena, p core.Point) bool {
	return a.InBounds(p.X, p.Y) && a.At(p.X, p.Y) == Free
}

// ChooseAIDir steers a cycle toward the largest open area. Each legal
// turn is scored by the size of the empty region it leads into; ties are
// broken at random. With no open cell ahead the cycle keeps its heading
// and crashes.
func ChooseAIDir(a Arena, c Cycle, rng *rand.Rand) core.Point {
	var best []core.Point
	bestSpace := 0
	for _, d := range core.Neighbors4 {
		if d == reverse(c.Dir) {
			continue
		}
		next := c.Pos.Add(d)
		if !Open(a, next) {
			continue
		}
		space := len(a.FloodFill(next.X, next.Y))
		switch {
		case space > bestSpace:
			best, bestSpace = []core.Point{d}, space
		case space == bestSpace:
			best = append(best, d)
		}
	}
	if len(best) == 0 {
		return c.Dir
	}
	return best[rng.IntN(len(best))]
}
