// Package session turns a finished game into profile mutations: points
// awarded, streak kept or reset, best score recorded.
package session

import "errors"

// ErrNoWinAward is returned by Policy.Validate when a policy cannot credit a win.
var ErrNoWinAward = errors.New("session: policy has no win award")

// Award computes the points granted for a final score.
type Award func(score int) int

// FixedBonus awards n points regardless of the score.
func FixedBonus(n int) Award {
	return func(int) int { return n }
}

// ScoreDiv awards floor(score / d) points.
func ScoreDiv(d int) Award {
	if d <= 0 {
		panic("session: ScoreDiv divisor must be positive")
	}
	return func(score int) int { return score / d }
}

// ScoreAsPoints awards the score itself.
func ScoreAsPoints() Award {
	return func(score int) int { return score }
}

// Policy declares how a game's outcomes feed the profile.
type Policy struct {
	// Win is applied once on a win. Required.
	Win Award
	// Loss is applied on a loss with a positive score. Nil means losses
	// earn nothing.
	Loss Award
	// KeepStreakAt keeps the streak alive on a loss whose final score
	// reaches this value. Zero resets the streak on every loss.
	KeepStreakAt int
}

// PolicyOption customizes a Policy built by NewPolicy.
type PolicyOption func(*Policy)

// WithLossAward credits losses with a positive score.
func WithLossAward(a Award) PolicyOption {
	return func(p *Policy) { p.Loss = a }
}

// KeepStreakAtLeast keeps the streak on losses scoring at least n.
func KeepStreakAtLeast(n int) PolicyOption {
	return func(p *Policy) { p.KeepStreakAt = n }
}

// NewPolicy builds a policy from its win award and options.
func NewPolicy(win Award, opts ...PolicyOption) Policy {
	p := Policy{Win: win}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Validate reports whether the policy is usable.
func (p Policy) Validate() error {
	if p.Win == nil {
		return ErrNoWinAward
	}
	return nil
}

// keepsStreak reports whether a loss with score keeps the streak.
func (p Policy) keepsStreak(score int) bool {
	return p.KeepStreakAt > 0 && score >= p.KeepStreakAt
}
