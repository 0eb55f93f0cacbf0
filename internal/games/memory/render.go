package memory

import (
	"fmt"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

const hiddenChar = '▒'

// Render lays the cards out as small boxes.
func Render(s State, game core.GameState, dst *core.Screen) {
	const cardW, cardH = 5, 3
	w := s.Cfg.Grid.Width
	ox := (dst.Width() - w*(cardW+1)) / 2
	oy := 2

	dst.DrawText(1, 0, fmt.Sprintf("Memory  Score: %d  Moves left: %d", game.Score, s.MovesLeft()))

	for i, c := range s.Cards {
		x := ox + (i%w)*(cardW+1)
		y := oy + (i/w)*(cardH+1)
		r := core.NewRect(x, y, cardW, cardH)
		dst.DrawBox(r)

		ch, color := hiddenChar, core.ColorGray
		if s.FaceUp(i) {
			ch, color = rune('A'+c.Face%26), core.PaletteColor(c.Face)
		}
		dst.SetColored(x+cardW/2, y+1, ch, color)
		if i == s.Cursor && !game.GameOver() {
			dst.SetColored(x+cardW/2, y+cardH-1, '▴', core.ColorAccent)
		}
	}
}
