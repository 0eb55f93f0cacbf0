// Package simon implements Simon Says: watch the pads light up, then
// repeat the pattern. Every completed round adds one step.
package simon

import (
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/engine"
	"github.com/vovakirdan/arcade-hub/internal/registry"
	"github.com/vovakirdan/arcade-hub/internal/session"
)

// ID is the registry id of the game.
const ID = "simon"

// State is the pattern and the player's progress through it.
type State struct {
	Cfg      config.SimonConfig
	Pattern  []int
	Show     engine.Sequence
	InputPos int // Next pattern index the player must press
	Round    int // Completed rounds
	Flash    int // Pad the player just pressed, -1 for none
	Score    int
	RNG      core.RNG
}

// Lit returns the pad currently lit, or -1.
func (s State) Lit() int {
	if step, lit := s.Show.Current(); lit {
		return step
	}
	return s.Flash
}

// Definition describes Simon Says to the engine.
func Definition() engine.Definition[State] {
	return engine.Definition[State]{
		ID:          ID,
		Title:       "Simon Says",
		Description: "Repeat the growing pattern",
		Controls:    "↑→↓← pads (clockwise from top)",
		TickRate:    10,
		Policy: session.NewPolicy(
			session.FixedBonus(30),
			session.WithLossAward(session.ScoreDiv(10)),
			session.KeepStreakAtLeast(50),
		),
		Init:    Init,
		Resolve: Resolve,
		Render:  Render,
	}
}

// New creates a Simon Says engine.
func New() *engine.Engine[State] {
	return engine.New(Definition())
}

// Init starts the first round.
func Init(rc core.RuntimeConfig) State {
	cfg, err := config.Load(ID, rc.ConfigPath, config.DefaultSimonConfig())
	if err != nil {
		log.Warn("using default simon config", "err", err)
	}
	return NewState(cfg, rc.Seed)
}

// NewState builds a one-step pattern and starts showing it.
func NewState(cfg config.SimonConfig, seed int64) State {
	cfg.Pads = core.Clamp(cfg.Pads, 2, len(core.Directions))
	s := State{Cfg: cfg, Flash: -1, RNG: core.NewRNG(seed)}
	s.Pattern = []int{s.RNG.IntN(cfg.Pads)}
	s.Show = engine.NewSequence(s.Pattern, cfg.StepTicks, cfg.GapTicks)
	return s
}

// padFor maps a direction key to its pad index.
func padFor(k core.Key) int {
	return slices.Index(core.Directions, k)
}

// Resolve plays the reveal or checks the player's press.
func Resolve(prev State, in core.InputSnapshot) engine.Resolution[State] {
	s := prev
	s.Flash = -1
	res := engine.Resolution[State]{}

	if s.Show.Playing() {
		s.Show = s.Show.Advance()
		res.Next = s
		return res
	}

	pad := -1
	for _, k := range core.Directions {
		if in.Hit(k) {
			pad = padFor(k)
			break
		}
	}
	if pad < 0 || pad >= s.Cfg.Pads {
		res.Next = s
		return res
	}

	s.Flash = pad
	if pad != s.Pattern[s.InputPos] {
		res.Next = s
		res.Terminal = core.OutcomeLose
		return res
	}

	s.InputPos++
	if s.InputPos < len(s.Pattern) {
		res.Next = s
		return res
	}

	s.Round++
	res.ScoreDelta = s.Cfg.RoundPoints
	s.Score += res.ScoreDelta
	if s.Round >= s.Cfg.WinRounds {
		res.Next = s
		res.Terminal = core.OutcomeWin
		return res
	}

	s.Pattern = append(slices.Clone(s.Pattern), s.RNG.IntN(s.Cfg.Pads))
	s.InputPos = 0
	s.Show = engine.NewSequence(s.Pattern, s.Cfg.StepTicks, s.Cfg.GapTicks)
	res.Next = s
	return res
}

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}
