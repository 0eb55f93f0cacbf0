package bubbles

import (
	"fmt"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

const (
	BubbleChar  = '●'
	ShooterChar = '▲'
	DeadChar    = '┄'
)

// Render draws the board two columns per cell so bubbles look round.
func Render(s State, game core.GameState, dst *core.Screen) {
	w, h := s.Cfg.Grid.Width, s.Cfg.Grid.Height
	ox := (dst.Width() - w*2) / 2
	oy := 2

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", game.Score))
	dst.DrawBox(core.NewRect(ox-1, oy-1, w*2+1, h+3))
	dst.DrawHLine(ox, oy+s.Cfg.DeadLine, w*2-1, DeadChar)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c := s.Grid.At(x, y); c != Empty {
				dst.SetColored(ox+x*2, oy+y, BubbleChar, core.PaletteColor(c-1))
			}
		}
	}

	if s.Shot != nil && s.Shot.Y < h {
		dst.SetColored(ox+s.Shot.X*2, oy+s.Shot.Y, BubbleChar, core.PaletteColor(s.Shot.Color-1))
	}

	dst.SetColored(ox+s.AimX*2, oy+h, ShooterChar, core.ColorAccent)
	dst.SetColored(ox+s.AimX*2+1, oy+h, BubbleChar, core.PaletteColor(s.Loaded-1))
}
