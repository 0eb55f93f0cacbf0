package session

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

// Profile is the set of profile mutations an outcome may trigger.
type Profile interface {
	AddPoints(amount int) error
	IncrementStreak() error
	ResetStreak() error
}

// BestScores persists the best score per game.
type BestScores interface {
	BestScore(gameID string) int
	RecordBest(gameID string, score int) (bool, error)
}

// Recorder receives one record per reported session.
type Recorder interface {
	RecordSession(rec Record) error
}

// Streak effects stored in Record.Streak.
const (
	StreakIncremented = "incremented"
	StreakReset       = "reset"
)

// Record is the history entry of a finished session.
type Record struct {
	ID      uuid.UUID
	GameID  string
	Outcome core.Outcome
	Score   int
	Points  int
	Streak  string // StreakIncremented or StreakReset
	EndedAt time.Time
}

// Report describes what Manager.Report did.
type Report struct {
	Record
	NewBest bool
}

// Manager applies game outcomes to a profile.
type Manager struct {
	profile  Profile
	best     BestScores
	recorder Recorder
	logger   *log.Logger
	now      func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithRecorder attaches a session history recorder.
func WithRecorder(r Recorder) Option {
	return func(m *Manager) { m.recorder = r }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager creates a manager reporting into profile and best.
func NewManager(profile Profile, best BestScores, opts ...Option) *Manager {
	m := &Manager{
		profile: profile,
		best:    best,
		logger:  log.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Report applies a terminal outcome. It must be called exactly once per
// session that reached Over.
func (m *Manager) Report(gameID string, policy Policy, outcome core.Outcome, finalScore int) (Report, error) {
	if err := policy.Validate(); err != nil {
		return Report{}, err
	}
	if finalScore < 0 {
		return Report{}, fmt.Errorf("session: negative final score %d", finalScore)
	}

	rep := Report{Record: Record{
		ID:      uuid.New(),
		GameID:  gameID,
		Outcome: outcome,
		Score:   finalScore,
		EndedAt: m.now(),
	}}

	switch outcome {
	case core.OutcomeWin:
		rep.Points = max(policy.Win(finalScore), 0)
		if err := m.profile.AddPoints(rep.Points); err != nil {
			return rep, fmt.Errorf("session: add points: %w", err)
		}
		if err := m.profile.IncrementStreak(); err != nil {
			return rep, fmt.Errorf("session: increment streak: %w", err)
		}
		rep.Streak = StreakIncremented

	case core.OutcomeLose:
		if finalScore > 0 && policy.Loss != nil {
			rep.Points = max(policy.Loss(finalScore), 0)
			if err := m.profile.AddPoints(rep.Points); err != nil {
				return rep, fmt.Errorf("session: add points: %w", err)
			}
		}
		if policy.keepsStreak(finalScore) {
			if err := m.profile.IncrementStreak(); err != nil {
				return rep, fmt.Errorf("session: increment streak: %w", err)
			}
			rep.Streak = StreakIncremented
		} else {
			if err := m.profile.ResetStreak(); err != nil {
				return rep, fmt.Errorf("session: reset streak: %w", err)
			}
			rep.Streak = StreakReset
		}

	default:
		return rep, fmt.Errorf("session: cannot report outcome %q", outcome)
	}

	if finalScore > m.best.BestScore(gameID) {
		newBest, err := m.best.RecordBest(gameID, finalScore)
		if err != nil {
			return rep, fmt.Errorf("session: record best: %w", err)
		}
		rep.NewBest = newBest
	}

	if m.recorder != nil {
		if err := m.recorder.RecordSession(rep.Record); err != nil {
			// History is best effort; the profile is already updated.
			m.logger.Warn("session history not saved", "game", gameID, "err", err)
		}
	}

	m.logger.Debug("session reported",
		"game", gameID, "outcome", outcome, "score", finalScore,
		"points", rep.Points, "streak", rep.Streak, "best", rep.NewBest)
	return rep, nil
}
