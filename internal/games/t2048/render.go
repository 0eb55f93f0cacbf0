package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

const (
	cellWidth  = 5 // Width of each cell (including borders)
	cellHeight = 2 // Height of each cell (including borders)
	hudHeight  = 3
)

// tileColor picks a color per power of two so equal tiles match.
func tileColor(v int) core.Color {
	exp := 0
	for v > 1 {
		v >>= 1
		exp++
	}
	return core.PaletteColor(exp - 1)
}

// Render draws the HUD and the board centered on the screen.
func Render(s State, game core.GameState, dst *core.Screen) {
	size := s.Board.W
	boardW := size*cellWidth + 1 // +1 for right border
	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight + 1

	title := "2048"
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)
	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", game.Score))
	info := fmt.Sprintf("Max: %d", MaxTile(s.Board))
	dst.DrawText(max(boardX+boardW-len(info), boardX), 1, info)

	renderGrid(dst, size, boardX, boardY)

	for y := range size {
		for x := range size {
			val := s.Board.At(x, y)
			if val == 0 {
				continue
			}
			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := max((cellWidth-1-len(valStr))/2, 0)
			dst.DrawTextColored(cellX+padLeft, cellY, valStr, tileColor(val))
		}
	}
}

// renderGrid draws the cell borders.
func renderGrid(dst *core.Screen, size, boardX, boardY int) {
	for y := range size + 1 {
		for x := range size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == size:
				corner = '┐'
			case y == size && x == 0:
				corner = '└'
			case y == size && x == size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < size {
				dst.DrawHLine(px+1, py, cellWidth-1, '─')
			}
			if y < size {
				dst.DrawVLine(px, py+1, cellHeight-1, '│')
			}
		}
	}
}
