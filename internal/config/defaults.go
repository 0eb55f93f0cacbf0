package config

import (
	"embed"
	"path"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// DefaultYAML returns the embedded default YAML for a game, nil if the
// game ships none.
func DefaultYAML(gameID string) []byte {
	data, err := defaultsFS.ReadFile(path.Join("defaults", gameID+".yaml"))
	if err != nil {
		return nil
	}
	return data
}

// DefaultBreakoutConfig returns the hardcoded Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		World:  WorldConfig{Width: 400, Height: 500},
		Ball:   BreakoutBall{Size: 8, SpeedX: 3, SpeedY: -3, MaxSpeed: 6},
		Paddle: BreakoutPaddle{Width: 64, Height: 10, Speed: 8, Bottom: 30},
		Bricks: BreakoutBricks{Rows: 5, Cols: 8, Height: 16, Gap: 4, Top: 60},
		Gameplay: BreakoutGameplay{
			Lives:       3,
			BrickPoints: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:     true,
			Progression: ProgressionConfig{Type: "score", MaxAt: 400},
			Scaling:     ScalingConfig{SpeedMultiplier: 0.5},
		},
	}
}

// DefaultFlappyConfig returns the hardcoded Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:      0.25,
			JumpImpulse:  -1.8,
			MaxFallSpeed: 3.0,
			BaseSpeed:    0.8,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:    5,
			PipeSpacing:  40,
			MinGapSize:   8,
			MaxGapSize:   12,
			TopMargin:    3,
			BottomMargin: 3,
		},
		Player: FlappyPlayer{X: 10, Width: 2, Height: 2},
		Difficulty: DifficultyConfig{
			Enabled:     true,
			Progression: ProgressionConfig{Type: "score", MaxAt: 50},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.0,
				GapReduction:     4,
				SpacingReduction: 15,
			},
		},
	}
}

// DefaultSnakeConfig returns the hardcoded Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid:          GridConfig{Width: 30, Height: 18},
		InitialLength: 3,
		TargetLength:  40,
		FoodPoints:    10,
	}
}

// DefaultBubblesConfig returns the hardcoded Bubble Shooter configuration.
func DefaultBubblesConfig() BubblesConfig {
	return BubblesConfig{
		Grid:           GridConfig{Width: 10, Height: 14},
		InitialRows:    5,
		Colors:         4,
		MatchThreshold: 3,
		DeadLine:       12,
		PopPoints:      10,
		FlightTicks:    1,
	}
}

// DefaultTicTacToeConfig returns the hardcoded Tic-Tac-Toe configuration.
func DefaultTicTacToeConfig() TicTacToeConfig {
	return TicTacToeConfig{WinScore: 100, DrawScore: 25, AIDelayTicks: 3}
}

// DefaultMemoryConfig returns the hardcoded Memory Match configuration.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		Grid:         GridConfig{Width: 4, Height: 4},
		MaxMoves:     20,
		HoldTicks:    8,
		MatchPoints:  50,
		PreviewTicks: 0,
	}
}

// DefaultSimonConfig returns the hardcoded Simon Says configuration.
func DefaultSimonConfig() SimonConfig {
	return SimonConfig{Pads: 4, WinRounds: 10, StepTicks: 5, GapTicks: 2, RoundPoints: 10}
}

// DefaultPacmanConfig returns the hardcoded Pac-Man configuration.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Maze: []string{
			"###################",
			"#o.......#.......o#",
			"#.##.###.#.###.##.#",
			"#.................#",
			"#.##.#.#####.#.##.#",
			"#....#...#...#....#",
			"####.### # ###.####",
			"#.......GG........#",
			"####.# ##### #.####",
			"#........P........#",
			"#.##.###.#.###.##.#",
			"#o.#...........#.o#",
			"###################",
		},
		Lives:        3,
		PelletPoints: 10,
		PowerPoints:  50,
		GhostPoints:  200,
		PowerTicks:   40,
		ChaseChance:  0.75,
	}
}

// DefaultTronConfig returns the hardcoded Tron configuration.
func DefaultTronConfig() TronConfig {
	return TronConfig{Grid: GridConfig{Width: 40, Height: 20}, SurvivalTick: 1, WinPoints: 100}
}

// DefaultT2048Config returns the hardcoded 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{Size: 4, WinTile: 2048, FourChance: 0.1}
}
