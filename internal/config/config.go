// Package config loads per-game tuning from YAML and manages difficulty
// progression. Every game ships an embedded default that user files
// override field by field.
package config

// BreakoutConfig tunes Breakout. The world is measured in world units and
// scaled onto the terminal at render time.
type BreakoutConfig struct {
	World      WorldConfig      `yaml:"world"`
	Ball       BreakoutBall     `yaml:"ball"`
	Paddle     BreakoutPaddle   `yaml:"paddle"`
	Bricks     BreakoutBricks   `yaml:"bricks"`
	Gameplay   BreakoutGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig is the size of a continuous play field.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BreakoutBall defines the ball.
type BreakoutBall struct {
	Size     float64 `yaml:"size"`
	SpeedX   float64 `yaml:"speed_x"`
	SpeedY   float64 `yaml:"speed_y"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// BreakoutPaddle defines the paddle.
type BreakoutPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Bottom float64 `yaml:"bottom"` // Distance from the world bottom
}

// BreakoutBricks defines the brick wall. Layout rows use '#' for a normal
// brick, '1'-'9' for a brick worth ten times the digit, 'H' for a two-hit
// brick, 'X' for an unbreakable one and '.' for a hole. An empty layout
// fills Rows x Cols with normal bricks.
type BreakoutBricks struct {
	Rows   int      `yaml:"rows"`
	Cols   int      `yaml:"cols"`
	Height float64  `yaml:"height"`
	Gap    float64  `yaml:"gap"`
	Top    float64  `yaml:"top"`
	Layout []string `yaml:"layout"`
}

// BreakoutGameplay defines lives and scoring.
type BreakoutGameplay struct {
	Lives       int `yaml:"lives"`
	BrickPoints int `yaml:"brick_points"`
}

// FlappyConfig tunes Flappy Bird. Units are terminal cells.
type FlappyConfig struct {
	Physics    FlappyPhysics    `yaml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Player     FlappyPlayer     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyPhysics defines physics parameters for Flappy Bird.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	BaseSpeed    float64 `yaml:"base_speed"`
}

// FlappyObstacles defines obstacle parameters for Flappy Bird.
type FlappyObstacles struct {
	PipeWidth    int `yaml:"pipe_width"`
	PipeSpacing  int `yaml:"pipe_spacing"`
	MinGapSize   int `yaml:"min_gap_size"`
	MaxGapSize   int `yaml:"max_gap_size"`
	TopMargin    int `yaml:"top_margin"`
	BottomMargin int `yaml:"bottom_margin"`
}

// FlappyPlayer defines player parameters for Flappy Bird.
type FlappyPlayer struct {
	X      int `yaml:"x"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GridConfig is the size of a cell board.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeConfig tunes Snake.
type SnakeConfig struct {
	Grid          GridConfig `yaml:"grid"`
	InitialLength int        `yaml:"initial_length"`
	TargetLength  int        `yaml:"target_length"` // Reaching it wins
	FoodPoints    int        `yaml:"food_points"`
}

// BubblesConfig tunes Bubble Shooter.
type BubblesConfig struct {
	Grid           GridConfig `yaml:"grid"`
	InitialRows    int        `yaml:"initial_rows"`
	Colors         int        `yaml:"colors"`
	MatchThreshold int        `yaml:"match_threshold"`
	DeadLine       int        `yaml:"dead_line"` // Row a landed bubble must not reach
	PopPoints      int        `yaml:"pop_points"`
	FlightTicks    int        `yaml:"flight_ticks"` // Ticks per cell travelled
}

// TicTacToeConfig tunes Tic-Tac-Toe.
type TicTacToeConfig struct {
	WinScore     int `yaml:"win_score"`
	DrawScore    int `yaml:"draw_score"`
	AIDelayTicks int `yaml:"ai_delay_ticks"`
}

// MemoryConfig tunes Memory Match.
type MemoryConfig struct {
	Grid         GridConfig `yaml:"grid"`
	MaxMoves     int        `yaml:"max_moves"`
	HoldTicks    int        `yaml:"hold_ticks"` // Mismatched pair stays visible
	MatchPoints  int        `yaml:"match_points"`
	PreviewTicks int        `yaml:"preview_ticks"`
}

// SimonConfig tunes Simon Says.
type SimonConfig struct {
	Pads        int `yaml:"pads"`
	WinRounds   int `yaml:"win_rounds"`
	StepTicks   int `yaml:"step_ticks"`
	GapTicks    int `yaml:"gap_ticks"`
	RoundPoints int `yaml:"round_points"`
}

// PacmanConfig tunes Pac-Man. Maze rows use '#' for walls, '.' for
// pellets, 'o' for power pellets, 'P' for the player start and 'G' for
// ghost starts.
type PacmanConfig struct {
	Maze         []string `yaml:"maze"`
	Lives        int      `yaml:"lives"`
	PelletPoints int      `yaml:"pellet_points"`
	PowerPoints  int      `yaml:"power_points"`
	GhostPoints  int      `yaml:"ghost_points"`
	PowerTicks   int      `yaml:"power_ticks"`
	ChaseChance  float64  `yaml:"chase_chance"`
}

// TronConfig tunes Tron light cycles.
type TronConfig struct {
	Grid         GridConfig `yaml:"grid"`
	SurvivalTick int        `yaml:"survival_points"` // Points per tick survived
	WinPoints    int        `yaml:"win_points"`
}

// T2048Config tunes 2048.
type T2048Config struct {
	Size       int     `yaml:"size"`
	WinTile    int     `yaml:"win_tile"`
	FourChance float64 `yaml:"four_chance"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to speed at max difficulty
	GapReduction     int     `yaml:"gap_reduction"`     // Gap size reduction at max difficulty
	SpacingReduction int     `yaml:"spacing_reduction"` // Spacing reduction at max difficulty
}
