package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	TickRate   int    // Host tick rate override; 0 keeps the game's own rate
	Seed       int64  // RNG seed for deterministic gameplay
	ConfigPath string // Optional YAML tuning file overriding the search path
	Difficulty string // Difficulty preset name; empty keeps the file's settings
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// Status is the lifecycle position of a game session.
type Status int

const (
	StatusNotStarted Status = iota
	StatusRunning
	StatusPaused
	StatusOver
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "NotStarted"
	case StatusRunning:
		return "Running"
	case StatusPaused:
		return "Paused"
	case StatusOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// Outcome is the terminal result of a tick: none, win or lose.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "unknown"
	}
}

// GameState is the externally visible state of a session.
type GameState struct {
	Score   int     // Current score
	Status  Status  // Lifecycle status
	Outcome Outcome // Set once Status is StatusOver
	Ticks   uint64  // Resolver ticks applied this session
}

// GameOver reports whether the session reached a terminal outcome.
func (s GameState) GameOver() bool {
	return s.Status == StatusOver
}

// Paused reports whether the session is paused.
func (s GameState) Paused() bool {
	return s.Status == StatusPaused
}

// StepResult is returned by a game after each simulation tick.
type StepResult struct {
	State      GameState
	ScoreDelta int
}
