package tron

import (
	"fmt"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

// Render draws the arena inside a box; heads are brighter than trails.
func Render(s State, game core.GameState, dst *core.Screen) {
	w, h := s.Arena.W, s.Arena.H
	ox := (dst.Width() - w) / 2
	oy := 2
	dst.DrawText(1, 0, fmt.Sprintf("Tron  Score: %d", game.Score))
	dst.DrawBox(core.NewRect(ox-1, oy-1, w+2, h+2))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch s.Arena.At(x, y) {
			case PlayerRider:
				dst.SetColored(ox+x, oy+y, '▒', core.ColorAccent)
			case AIRider:
				dst.SetColored(ox+x, oy+y, '▒', core.ColorRed)
			}
		}
	}
	dst.SetColored(ox+s.Player.Pos.X, oy+s.Player.Pos.Y, '█', core.ColorAccent)
	dst.SetColored(ox+s.AI.Pos.X, oy+s.AI.Pos.Y, '█', core.ColorBrightRed)
}
