package tictactoe

import (
	"fmt"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

// Render draws the 3x3 board with the cursor square bracketed.
func Render(s State, game core.GameState, dst *core.Screen) {
	const cellW, cellH = 6, 3
	boardW, boardH := cellW*3+1, cellH*3+1
	ox := (dst.Width() - boardW) / 2
	oy := max((dst.Height()-boardH)/2, 2)

	status := "Your move"
	if s.Thinking() {
		status = "Computer is thinking..."
	}
	dst.DrawText(1, 0, fmt.Sprintf("Tic-Tac-Toe  Score: %d  %s", game.Score, status))

	for i := 0; i <= 3; i++ {
		dst.DrawHLine(ox, oy+i*cellH, boardW, '─')
		dst.DrawVLine(ox+i*cellW, oy, boardH, '│')
	}

	for i, m := range s.Board {
		cx := ox + (i%3)*cellW + cellW/2
		cy := oy + (i/3)*cellH + cellH/2
		c := core.ColorDefault
		switch m {
		case X:
			c = core.ColorAccent
		case O:
			c = core.ColorRed
		}
		dst.SetColored(cx, cy, []rune(m.String())[0], c)
		if i == s.Cursor && !game.GameOver() {
			dst.Set(cx-2, cy, '[')
			dst.Set(cx+2, cy, ']')
		}
	}
}
