package breakout

import (
	"math"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
)

// Ball is the ball's top-left corner and velocity in world units per tick.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Stuck  bool // Resting on the paddle until launched
}

// Box returns the ball's collision box.
func (b Ball) Box() core.RectF {
	return core.RectF{X: b.X, Y: b.Y, W: b.Size, H: b.Size}
}

// CollisionSide indicates which side of an object was hit.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionHorizontal
	CollisionVertical
)

// Advance moves the ball one tick inside the world. Side and top walls
// reflect: the position is clamped to the wall and the velocity component
// flips away from it. The bottom is fall-through: lost reports a ball that
// left the world.
func Advance(b Ball, world config.WorldConfig) (next Ball, lost bool) {
	b.X += b.VX
	b.Y += b.VY

	if b.X <= 0 {
		b.X = 0
		b.VX = math.Abs(b.VX)
	}
	if b.X+b.Size >= world.Width {
		b.X = world.Width - b.Size
		b.VX = -math.Abs(b.VX)
	}
	if b.Y <= 0 {
		b.Y = 0
		b.VY = math.Abs(b.VY)
	}
	return b, b.Y >= world.Height
}

// BouncePaddle reflects a falling ball off the paddle. The horizontal
// speed depends on where the ball hit: edges give steeper angles.
func BouncePaddle(b Ball, paddle core.RectF, speed float64) (Ball, bool) {
	if b.VY <= 0 || !b.Box().Intersects(paddle) {
		return b, false
	}

	ballCenter := b.X + b.Size/2
	paddleCenter := paddle.X + paddle.W/2
	offset := core.ClampF((ballCenter-paddleCenter)/(paddle.W/2), -1, 1)

	b.VX = offset * speed
	b.VY = -math.Max(math.Abs(b.VY), speed/2)
	b.Y = paddle.Y - b.Size
	return b, true
}

// HitBrick finds the first live brick the ball overlaps and reflects the
// ball along the axis of least penetration. It returns the brick index or
// -1.
func HitBrick(b Ball, bricks []Brick) (Ball, int, CollisionSide) {
	box := b.Box()
	for i, brick := range bricks {
		if !brick.Alive() || !box.Intersects(brick.Box) {
			continue
		}

		overlapX := math.Min(box.X+box.W, brick.Box.X+brick.Box.W) - math.Max(box.X, brick.Box.X)
		overlapY := math.Min(box.Y+box.H, brick.Box.Y+brick.Box.H) - math.Max(box.Y, brick.Box.Y)
		if overlapX < overlapY {
			b.VX = -b.VX
			return b, i, CollisionHorizontal
		}
		b.VY = -b.VY
		return b, i, CollisionVertical
	}
	return b, -1, CollisionNone
}
