package engine

// Sequence is the timed reveal of a pattern: each step is lit for
// StepTicks ticks followed by GapTicks dark ticks. Resolvers hold a
// Sequence in their state, Advance it once per tick, and ignore player
// input while it is Playing.
type Sequence struct {
	Steps     []int
	StepTicks int
	GapTicks  int

	pos  int // index of the step being shown
	tick int // ticks spent on the current step, lit phase first
}

// NewSequence creates a sequence ready to play steps from the start.
func NewSequence(steps []int, stepTicks, gapTicks int) Sequence {
	return Sequence{
		Steps:     append([]int(nil), steps...),
		StepTicks: max(stepTicks, 1),
		GapTicks:  max(gapTicks, 0),
	}
}

// Playing reports whether the reveal is still in progress.
func (s Sequence) Playing() bool {
	return s.pos < len(s.Steps)
}

// Current returns the step being shown and whether it is lit. When the
// reveal is done it returns (-1, false).
func (s Sequence) Current() (step int, lit bool) {
	if !s.Playing() {
		return -1, false
	}
	return s.Steps[s.pos], s.tick < s.StepTicks
}

// Advance returns the sequence one tick later.
func (s Sequence) Advance() Sequence {
	if !s.Playing() {
		return s
	}
	s.tick++
	if s.tick >= s.StepTicks+s.GapTicks {
		s.tick = 0
		s.pos++
	}
	return s
}

// Remaining returns how many ticks are left until the reveal ends.
func (s Sequence) Remaining() int {
	if !s.Playing() {
		return 0
	}
	per := s.StepTicks + s.GapTicks
	return (len(s.Steps)-s.pos)*per - s.tick
}
