// Package memory implements Memory Match: flip two cards per move and
// clear the board of pairs before the moves run out.
package memory

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
const ID = "memory"

// Card is one card on the table.
type Card struct {
	Face    int
	Matched bool
}

// State is the table of cards.
type State struct {
	Cfg    config.MemoryConfig
	Cards  []Card
	Cursor int
	Open   []int           // Face-up unmatched cards, at most two
	Reveal engine.Sequence // Preview or mismatch hold; input waits while it plays
	Moves  int
	Score  int
	RNG    core.RNG
}

// FaceUp reports whether card i is showing.
func (s State) FaceUp(i int) bool {
	return s.Cards[i].Matched || slices.Contains(s.Open, i) || (s.Reveal.Playing() && s.Moves == 0 && len(s.Open) == 0)
}

// MovesLeft returns how many pair flips remain.
func (s State) MovesLeft() int {
	return max(s.Cfg.MaxMoves-s.Moves, 0)
}

// Definition describes Memory Match to the engine.
func Definition() engine.Definition[State] {
	return engine.Definition[State]{
		ID:          ID,
		Title:       "Memory Match",
		Description: "Find every pair before the moves run out",
		Controls:    "←↑→↓ move  enter/space flip",
		TickRate:    10,
		Policy:      session.NewPolicy(session.ScoreDiv(10)),
		Init:        Init,
		Resolve:     Resolve,
		Render:      Render,
	}
}

// New creates a Memory Match engine.
func New() *engine.Engine[State] {
	return engine.New(Definition())
}

// Init deals a shuffled table.
func Init(rc core.RuntimeConfig) State {
	cfg, err := config.Load(ID, rc.ConfigPath, config.DefaultMemoryConfig())
	if err != nil {
		log.Warn("using default memory config", "err", err)
	}
	return NewState(cfg, rc.Seed)
}

// NewState deals W*H cards as shuffled pairs. An odd table falls back to
// the default size.
func NewState(cfg config.MemoryConfig, seed int64) State {
	if n := cfg.Grid.Width * cfg.Grid.Height; n < 2 || n%2 != 0 {
		cfg.Grid = config.DefaultMemoryConfig().Grid
	}
	n := cfg.Grid.Width * cfg.Grid.Height

	s := State{Cfg: cfg, Cards: make([]Card, n), RNG: core.NewRNG(seed)}
	for i := range s.Cards {
		s.Cards[i].Face = i / 2
	}
	s.RNG.Rand().Shuffle(n, func(i, j int) {
		s.Cards[i], s.Cards[j] = s.Cards[j], s.Cards[i]
	})

	if cfg.PreviewTicks > 0 {
		s.Reveal = engine.NewSequence([]int{0}, cfg.PreviewTicks, 0)
	}
	return s
}

func (s State) moveCursor(k core.Key) int {
	w, h := s.Cfg.Grid.Width, s.Cfg.Grid.Height
	x, y := s.Cursor%w, s.Cursor/w
	switch k {
	case core.KeyUp:
		y--
	case core.KeyDown:
		y++
	case core.KeyLeft:
		x--
	case core.KeyRight:
		x++
	}
	return core.Clamp(y, 0, h-1)*w + core.Clamp(x, 0, w-1)
}

func allMatched(cards []Card) bool {
	for _, c := range cards {
		if !c.Matched {
			return false
		}
	}
	return true
}

// Resolve runs the reveal timer or handles cursor and flips.
func Resolve(prev State, in core.InputSnapshot) engine.Resolution[State] {
	s := prev
	res := engine.Resolution[State]{}

	if s.Reveal.Playing() {
		s.Reveal = s.Reveal.Advance()
		if !s.Reveal.Playing() && len(s.Open) == 2 {
			s.Open = nil
		}
		res.Next = s
		return res
	}

	for _, k := range core.Directions {
		if in.Hit(k) {
			s.Cursor = s.moveCursor(k)
		}
	}

	flip := in.Hit(core.KeyConfirm) || in.Hit(core.KeyAction)
	if !flip || s.Cards[s.Cursor].Matched || slices.Contains(s.Open, s.Cursor) {
		res.Next = s
		return res
	}

	s.Open = append(slices.Clone(s.Open), s.Cursor)
	if len(s.Open) < 2 {
		res.Next = s
		return res
	}

	s.Moves++
	a, b := s.Open[0], s.Open[1]
	if s.Cards[a].Face == s.Cards[b].Face {
		s.Cards = slices.Clone(s.Cards)
		s.Cards[a].Matched = true
		s.Cards[b].Matched = true
		s.Open = nil
		res.ScoreDelta = s.Cfg.MatchPoints
		s.Score += res.ScoreDelta
		if allMatched(s.Cards) {
			res.Terminal = core.OutcomeWin
		}
	} else {
		s.Reveal = engine.NewSequence([]int{0}, s.Cfg.HoldTicks, 0)
	}

	if res.Terminal == core.OutcomeNone && s.Moves >= s.Cfg.MaxMoves {
		res.Terminal = core.OutcomeLose
	}
	res.Next = s
	return res
}

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}
