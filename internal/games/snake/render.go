package snake

import (
	"fmt"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

// Visual characters for rendering.
const (
	HeadChar = 'O'
	BodyChar = 'o'
	FoodChar = '*'
)

// Render draws the board centered below a two-line HUD.
func Render(s State, game core.GameState, dst *core.Screen) {
	hud := fmt.Sprintf(" Snake  Score: %d  Length: %d/%d", game.Score, len(s.Body), s.Cfg.TargetLength)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	w, h := s.Cfg.Grid.Width, s.Cfg.Grid.Height
	ox := (dst.Width() - w) / 2
	oy := 3
	dst.DrawBox(core.NewRect(ox-1, oy-1, w+2, h+2))

	if s.Food.X >= 0 {
		dst.SetColored(ox+s.Food.X, oy+s.Food.Y, FoodChar, core.ColorRed)
	}
	for i, seg := range s.Body {
		ch, c := BodyChar, core.ColorGreen
		if i == 0 {
			ch, c = HeadChar, core.ColorAccent
		}
		dst.SetColored(ox+seg.X, oy+seg.Y, ch, c)
	}
}
