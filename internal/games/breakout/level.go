package breakout

import (
	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
)

// BrickType represents different types of bricks.
type BrickType int

const (
	BrickNormal BrickType = iota // Destroyed in one hit
	BrickHard                    // Requires 2 hits to destroy
	BrickSolid                   // Indestructible, not needed to win
)

// Brick is one brick of the wall, placed in world units.
type Brick struct {
	Box    core.RectF
	Type   BrickType
	HP     int
	Points int
	Color  core.Color
}

// Alive reports whether the brick still blocks the ball.
func (b Brick) Alive() bool {
	return b.HP > 0
}

// ParseLayout builds the brick wall from ASCII rows, sizing bricks so the
// widest row spans the world.
func ParseLayout(lines []string, cfg config.BreakoutConfig) []Brick {
	cols := 0
	for _, line := range lines {
		cols = max(cols, len(line))
	}
	if cols == 0 {
		return nil
	}

	gap := cfg.Bricks.Gap
	w := (cfg.World.Width - gap*float64(cols+1)) / float64(cols)
	h := cfg.Bricks.Height

	var bricks []Brick
	for row, line := range lines {
		for col := 0; col < len(line); col++ {
			b := Brick{
				Box: core.RectF{
					X: gap + float64(col)*(w+gap),
					Y: cfg.Bricks.Top + float64(row)*(h+gap),
					W: w,
					H: h,
				},
				Color: core.PaletteColor(row),
			}
			switch ch := line[col]; {
			case ch == '#':
				b.Type, b.HP, b.Points = BrickNormal, 1, cfg.Gameplay.BrickPoints
			case ch >= '1' && ch <= '9':
				b.Type, b.HP, b.Points = BrickNormal, 1, int(ch-'0')*10
			case ch == 'H' || ch == 'h':
				b.Type, b.HP, b.Points = BrickHard, 2, cfg.Gameplay.BrickPoints*2
			case ch == 'X' || ch == 'x':
				b.Type, b.HP, b.Color = BrickSolid, 1, core.ColorGray
			default:
				continue
			}
			bricks = append(bricks, b)
		}
	}
	return bricks
}

// DefaultLayout fills rows x cols with normal bricks.
func DefaultLayout(rows, cols int) []string {
	lines := make([]string, rows)
	for i := range lines {
		row := make([]byte, cols)
		for j := range row {
			row[j] = '#'
		}
		lines[i] = string(row)
	}
	return lines
}

// remaining counts the breakable bricks still standing.
func remaining(bricks []Brick) int {
	n := 0
	for _, b := range bricks {
		if b.Alive() && b.Type != BrickSolid {
			n++
		}
	}
	return n
}
