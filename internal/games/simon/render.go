package simon

import (
	"fmt"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

// padOffsets place the pads around the center, in core.Directions order.
var padOffsets = []core.Point{{X: 0, Y: -4}, {X: 10, Y: 0}, {X: 0, Y: 4}, {X: -10, Y: 0}}

// Render draws the pads as boxes; the lit pad is filled.
func Render(s State, game core.GameState, dst *core.Screen) {
	status := "Your turn"
	if s.Show.Playing() {
		status = "Watch..."
	}
	dst.DrawText(1, 0, fmt.Sprintf("Simon  Round %d/%d  Score: %d  %s", s.Round+1, s.Cfg.WinRounds, game.Score, status))

	cx, cy := dst.Width()/2, dst.Height()/2+1
	lit := s.Lit()
	for pad := 0; pad < s.Cfg.Pads; pad++ {
		off := padOffsets[pad]
		r := core.NewRect(cx+off.X-3, cy+off.Y-1, 7, 3)
		dst.DrawBox(r)
		if pad == lit {
			dst.DrawRect(core.NewRect(r.X+1, r.Y+1, r.W-2, 1), '█', core.PaletteColor(pad))
		}
	}
}
