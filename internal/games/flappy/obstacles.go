package flappy

import "github.com/vovakirdan/arcade-hub/internal/core"

// Pipe represents a vertical obstacle with a gap for the player to pass through.
type Pipe struct {
	X         int  // Horizontal position (left edge)
	GapY      int  // Y position where gap starts (top of gap)
	GapHeight int  // Height of the passable gap
	Passed    bool // Whether the player has passed this pipe (for scoring)
}

// TopRect returns the collision rectangle for the top portion of the pipe.
func (p Pipe) TopRect(pipeWidth int) core.Rect {
	return core.NewRect(p.X, 0, pipeWidth, p.GapY)
}

// BottomRect returns the collision rectangle for the bottom portion of the pipe.
func (p Pipe) BottomRect(pipeWidth, groundY int) core.Rect {
	bottomY := p.GapY + p.GapHeight
	return core.NewRect(p.X, bottomY, pipeWidth, groundY-bottomY)
}

// advancePipes moves the pipes left, drops the ones that left the screen
// and spawns a new one when the last is far enough in. It returns a fresh
// slice and the number of pipes the player cleared this tick.
func advancePipes(s *State) ([]Pipe, int) {
	cfg := s.Cfg.Obstacles
	speed := max(int(s.Diff.Speed(s.Cfg.Physics.BaseSpeed, s.Score, s.Ticks)), 1)
	playerRight := s.Cfg.Player.X + s.Cfg.Player.Width

	pipes := make([]Pipe, 0, len(s.Pipes)+1)
	passed := 0
	for _, p := range s.Pipes {
		p.X -= speed
		if !p.Passed && p.X+cfg.PipeWidth < playerRight {
			p.Passed = true
			passed++
		}
		if p.X+cfg.PipeWidth > 0 {
			pipes = append(pipes, p)
		}
	}

	spacing := s.Diff.Spacing(cfg.PipeSpacing, s.Score, s.Ticks)
	if len(pipes) == 0 || pipes[len(pipes)-1].X < s.Width-spacing {
		pipes = append(pipes, spawnPipe(s))
	}
	return pipes, passed
}

// spawnPipe creates a pipe at the right edge with a random gap.
func spawnPipe(s *State) Pipe {
	cfg := s.Cfg.Obstacles
	minGap := cfg.MinGapSize
	currentGap := max(s.Diff.GapSize(cfg.MaxGapSize, s.Score, s.Ticks), minGap)

	gapHeight := minGap
	if gapRange := currentGap - minGap; gapRange > 0 {
		gapHeight = minGap + s.RNG.IntN(gapRange+1)
	}

	minGapY := cfg.TopMargin
	maxGapY := max(s.groundY()-cfg.BottomMargin-gapHeight, minGapY)

	gapY := minGapY
	if maxGapY > minGapY {
		gapY = minGapY + s.RNG.IntN(maxGapY-minGapY+1)
	}

	return Pipe{X: s.Width, GapY: gapY, GapHeight: gapHeight}
}

// hitsPipe tests if the given rectangle collides with any pipe.
func hitsPipe(player core.Rect, pipes []Pipe, pipeWidth, groundY int) bool {
	for _, p := range pipes {
		if player.Intersects(p.TopRect(pipeWidth)) || player.Intersects(p.BottomRect(pipeWidth, groundY)) {
			return true
		}
	}
	return false
}
