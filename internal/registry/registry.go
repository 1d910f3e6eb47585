// Package registry keeps the playable rule-set variants. Each variant
// registers a factory from its package's init(), so the CLI and the menu
// can list and create them by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Game is what the platform drives. Implementations hold pure simulation
// logic and know nothing about Bubble Tea: the platform maps input, paces
// ticks and paints the screen buffer.
type Game interface {
	// ID returns the variant identifier used on the command line (e.g. "classic").
	ID() string

	// Title returns a human-readable name for menus and the HUD.
	Title() string

	// Reset starts a fresh session for the given screen size and seed.
	// Called once at start and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input and advances the simulation one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns the platform-level view of the session.
	State() core.GameState
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a variant.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a variant factory.
// Panics if the ID is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered variants sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a variant by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}

	return f(), nil
}

// Exists reports whether a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
