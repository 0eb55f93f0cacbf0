// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/session"
)

// Game is one playable session as seen by hosts. Every game is an
// *engine.Engine over its own state type; this interface erases the type
// parameter so hosts can hold any of them.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "snake").
	// Used for CLI commands, routes and score storage.
	ID() string
	Title() string
	Description() string
	Controls() string

	// Reset prepares a fresh session in NotStarted.
	Reset(cfg core.RuntimeConfig)
	Start() error
	Pause() error
	Resume() error
	Restart() error

	// Step advances the simulation by one fixed tick when Running.
	Step(in core.InputSnapshot) core.StepResult

	// Render draws the current state, including pause and game-over overlays.
	Render(dst *core.Screen)

	State() core.GameState
	Status() core.Status
	TickRate() int
	Policy() session.Policy
	OnTerminal(fn func(core.GameState))
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
	Controls    string
	TickRate    int
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered or the factory
// builds a game with a different ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	// Get metadata by creating a temporary instance
	g := f()
	if g.ID() != id {
		panic(fmt.Sprintf("registry: factory for %q builds %q", id, g.ID()))
	}
	factories[id] = f
	infos[id] = GameInfo{
		ID:          id,
		Title:       g.Title(),
		Description: g.Description(),
		Controls:    g.Controls(),
		TickRate:    g.TickRate(),
	}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Info returns the metadata of a registered game.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()
	info, ok := infos[id]
	return info, ok
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
