// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/code-arcade/internal/core"
)

// Game is the interface every screen of the arcade implements.
// Games contain pure logic with no Bubble Tea dependency: the platform owns
// input mapping, timing and terminal output, and the game owns its widgets,
// their layout and hit-testing.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "quiz", "puzzle").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called at start, when restarting after game over, and on resize.
	Reset(cfg core.RuntimeConfig)

	// Resize lays the screen out again for new dimensions without losing progress.
	Resize(width, height int)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Describer is implemented by games that provide a one-line description
// for menus and listings.
type Describer interface {
	Description() string
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory to the registry, typically from a game's
// init(). The factory is called once to read the game's metadata, so it
// must not do heavy work. Register panics on a duplicate ID or when the
// factory builds a game with a different ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	probe := f()
	if probe.ID() != id {
		panic(fmt.Sprintf("registry: factory for %q builds game %q", id, probe.ID()))
	}

	info := GameInfo{ID: id, Title: probe.Title()}
	if d, ok := probe.(Describer); ok {
		info.Description = d.Description()
	}
	entries[id] = entry{factory: f, info: info}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	games := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		games = append(games, e.info)
	}
	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	return games
}

// Create builds a fresh game instance.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Info(id)
	return ok
}

// Info returns the metadata of a registered game.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Title returns the display title for a registered game, or the ID itself.
func Title(id string) string {
	if info, ok := Info(id); ok {
		return info.Title
	}
	return id
}
