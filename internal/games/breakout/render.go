package breakout

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

// Visual characters for rendering.
const (
	BallChar   = '●'
	PaddleChar = '▀'
	BrickChar  = '█'
	HardChar   = '▓'
)

// projection maps world units to screen cells below the HUD row.
type projection struct {
	sx, sy float64
}

func newProjection(s State, dst *core.Screen) projection {
	return projection{
		sx: float64(dst.Width()) / s.Cfg.World.Width,
		sy: float64(dst.Height()-1) / s.Cfg.World.Height,
	}
}

func (p projection) rect(r core.RectF) core.Rect {
	x0 := int(r.X * p.sx)
	y0 := int(r.Y*p.sy) + 1
	x1 := int((r.X + r.W) * p.sx)
	y1 := int((r.Y+r.H)*p.sy) + 1
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Render projects the world onto the screen.
func Render(s State, game core.GameState, dst *core.Screen) {
	proj := newProjection(s, dst)

	for _, b := range s.Bricks {
		if !b.Alive() {
			continue
		}
		ch := BrickChar
		if b.Type == BrickHard && b.HP > 1 {
			ch = HardChar
		}
		r := proj.rect(b.Box)
		// Leave a one-cell seam so neighbouring bricks stay distinguishable.
		if r.W > 1 {
			r.W--
		}
		dst.DrawRect(r, ch, b.Color)
	}

	paddle := proj.rect(s.Paddle())
	dst.DrawRect(core.NewRect(paddle.X, paddle.Y, paddle.W, 1), PaddleChar, core.ColorAccent)

	ball := proj.rect(s.Ball.Box())
	dst.SetColored(ball.X, ball.Y, BallChar, core.ColorBrightWhite)

	hud := fmt.Sprintf(" Score: %d  Lives: %s ", game.Score, strings.Repeat("♥", max(s.Lives, 0)))
	dst.DrawText(1, 0, hud)
	if s.Ball.Stuck && !game.GameOver() {
		dst.DrawTextCentered(dst.Height()/2, "press space to launch")
	}
}
