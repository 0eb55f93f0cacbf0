package core

import (
	"slices"
	"sort"
	"sync"
)

// Key is a semantic input channel, abstracted from physical keys.
// The platform layer maps terminal keys, mouse buttons and HTTP actions
// onto these.
type Key string

const (
	KeyUp      Key = "up"
	KeyDown    Key = "down"
	KeyLeft    Key = "left"
	KeyRight   Key = "right"
	KeyAction  Key = "action"  // Space - flap, fire, flip
	KeyConfirm Key = "confirm" // Enter - place, select
)

// Directions lists the four direction keys in a stable order.
var Directions = []Key{KeyUp, KeyRight, KeyDown, KeyLeft}

// IsDirection reports whether k is one of the four direction keys.
func IsDirection(k Key) bool {
	return slices.Contains(Directions, k)
}

// InputSnapshot is the input state observed by one tick.
type InputSnapshot struct {
	// Pressed holds keys that are currently held down.
	Pressed map[Key]bool
	// Triggered holds keys that went down since the previous snapshot,
	// even if they were released again before it was taken.
	Triggered map[Key]bool
	// Direction is the most recent direction key pressed since the
	// previous snapshot, empty if none.
	Direction Key
	// Pointer is the last known pointer position, nil if never seen.
	Pointer *Point
	// PointerDown reports whether the pointer button is held.
	PointerDown bool
	// Clicked reports a pointer press since the previous snapshot.
	Clicked bool
}

// Held reports whether k is held down.
func (s InputSnapshot) Held(k Key) bool {
	return s.Pressed[k]
}

// Hit reports whether k was pressed since the previous snapshot.
func (s InputSnapshot) Hit(k Key) bool {
	return s.Triggered[k]
}

// Active reports whether k is held or was tapped since the last snapshot.
// Continuous controls (paddles) use this so terminal taps still move them.
func (s InputSnapshot) Active(k Key) bool {
	return s.Pressed[k] || s.Triggered[k]
}

// LastDirection returns the most recently pressed direction key, falling
// back to a triggered then a held one in Directions order. ok is false when
// no direction is active.
func (s InputSnapshot) LastDirection() (k Key, ok bool) {
	if s.Direction != "" {
		return s.Direction, true
	}
	for _, d := range Directions {
		if s.Triggered[d] {
			return d, true
		}
	}
	for _, d := range Directions {
		if s.Pressed[d] {
			return d, true
		}
	}
	return "", false
}

// TriggeredKeys returns the triggered keys sorted, mostly for logging.
func (s InputSnapshot) TriggeredKeys() []Key {
	keys := make([]Key, 0, len(s.Triggered))
	for k := range s.Triggered {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// EmptySnapshot returns a snapshot with no input.
func EmptySnapshot() InputSnapshot {
	return InputSnapshot{
		Pressed:   map[Key]bool{},
		Triggered: map[Key]bool{},
	}
}

// SnapshotOf builds a snapshot where each key was tapped since the last
// tick. Handy in tests and scripted runs.
func SnapshotOf(keys ...Key) InputSnapshot {
	s := EmptySnapshot()
	for _, k := range keys {
		s.Triggered[k] = true
		if IsDirection(k) {
			s.Direction = k
		}
	}
	return s
}

// InputLatch collects raw input events between ticks. Events may arrive
// from any goroutine; they are applied in arrival order and the tick reads
// them through Snapshot. Per channel the last event wins, except key and
// pointer presses which are latched until the next Snapshot so fast taps
// are never missed.
type InputLatch struct {
	mu          sync.Mutex
	pressed     map[Key]bool
	triggered   map[Key]bool
	lastDir     Key
	pointer     *Point
	pointerDown bool
	clicked     bool
}

// NewInputLatch creates an empty latch.
func NewInputLatch() *InputLatch {
	return &InputLatch{
		pressed:   make(map[Key]bool),
		triggered: make(map[Key]bool),
	}
}

// OnKeyDown records k as held and as triggered.
func (l *InputLatch) OnKeyDown(k Key) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pressed[k] = true
	l.triggered[k] = true
	l.noteDirection(k)
}

// OnKeyUp records k as released. A trigger recorded earlier survives.
func (l *InputLatch) OnKeyUp(k Key) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.pressed, k)
}

// Tap records a press immediately followed by a release. Terminals report
// key presses without release events, so the TUI host feeds keys this way.
func (l *InputLatch) Tap(k Key) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.triggered[k] = true
	delete(l.pressed, k)
	l.noteDirection(k)
}

func (l *InputLatch) noteDirection(k Key) {
	if IsDirection(k) {
		l.lastDir = k
	}
}

// OnPointerMove records the latest pointer position.
func (l *InputLatch) OnPointerMove(x, y int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pointer = &Point{X: x, Y: y}
}

// OnPointerDown records the pointer button as held and clicked.
func (l *InputLatch) OnPointerDown() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pointerDown = true
	l.clicked = true
}

// OnPointerUp records the pointer button as released.
func (l *InputLatch) OnPointerUp() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pointerDown = false
}

// Snapshot returns the latched input and clears the edge triggers.
// Held keys and the pointer position carry over to the next tick.
func (l *InputLatch) Snapshot() InputSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := InputSnapshot{
		Pressed:     make(map[Key]bool, len(l.pressed)),
		Triggered:   l.triggered,
		Direction:   l.lastDir,
		PointerDown: l.pointerDown,
		Clicked:     l.clicked,
	}
	for k, v := range l.pressed {
		s.Pressed[k] = v
	}
	if l.pointer != nil {
		p := *l.pointer
		s.Pointer = &p
	}

	l.triggered = make(map[Key]bool)
	l.lastDir = ""
	l.clicked = false
	return s
}

// Reset drops all latched and held input.
func (l *InputLatch) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pressed = make(map[Key]bool)
	l.triggered = make(map[Key]bool)
	l.lastDir = ""
	l.pointer = nil
	l.pointerDown = false
	l.clicked = false
}
