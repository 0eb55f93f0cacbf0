package pacman

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

// Render draws the maze two columns per cell.
func Render(s State, game core.GameState, dst *core.Screen) {
	ox := (dst.Width() - s.Maze.W*2) / 2
	oy := 2
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d  Lives: %s", game.Score, strings.Repeat("ᗧ", max(s.Lives, 0))))

	for y := 0; y < s.Maze.H; y++ {
		for x := 0; x < s.Maze.W; x++ {
			px, py := ox+x*2, oy+y
			switch s.Maze.At(x, y) {
			case TileWall:
				dst.DrawRect(core.NewRect(px, py, 2, 1), '█', core.ColorBlue)
			case TilePellet:
				dst.Set(px, py, '·')
			case TilePower:
				dst.SetColored(px, py, '●', core.ColorBrightWhite)
			}
		}
	}

	for i, g := range s.Ghosts {
		c := core.PaletteColor(i)
		if s.Power > 0 {
			c = core.ColorBlue
		}
		dst.SetColored(ox+g.Pos.X*2, oy+g.Pos.Y, 'ᗣ', c)
	}
	dst.SetColored(ox+s.Player.X*2, oy+s.Player.Y, 'ᗧ', core.ColorAccent)
}
