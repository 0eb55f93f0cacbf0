package flappy

import (
	"fmt"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar    = '▶'
	BodyChar      = '●'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
)

// Render draws the world. The world is sized in cells, so it maps 1:1.
func Render(s State, game core.GameState, dst *core.Screen) {
	groundY := s.groundY()
	dst.DrawHLine(0, groundY, dst.Width(), GroundChar)

	for _, p := range s.Pipes {
		drawPipe(dst, p, s.Cfg.Obstacles.PipeWidth, groundY)
	}

	bird := s.BirdRect()
	for dy := 0; dy < bird.H; dy++ {
		for dx := 0; dx < bird.W; dx++ {
			ch := BodyChar
			if dx == bird.W-1 && dy == 0 {
				ch = PlayerChar
			}
			dst.SetColored(bird.X+dx, bird.Y+dy, ch, core.ColorAccent)
		}
	}

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", game.Score))
}

func drawPipe(dst *core.Screen, p Pipe, width, groundY int) {
	dst.DrawRect(p.TopRect(width), PipeChar, core.ColorGreen)
	if p.GapY > 0 {
		dst.DrawRect(core.NewRect(p.X, p.GapY-1, width, 1), PipeCapTop, core.ColorBrightGreen)
	}

	bottom := p.BottomRect(width, groundY)
	dst.DrawRect(bottom, PipeChar, core.ColorGreen)
	if bottom.H > 0 {
		dst.DrawRect(core.NewRect(p.X, bottom.Y, width, 1), PipeCapBottom, core.ColorBrightGreen)
	}
}
