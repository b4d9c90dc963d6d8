// Package registry maps game IDs to constructors.
// Each game package adds itself from init, and the CLI picks a game by ID
// without importing any game package other than for that side effect.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/crossroad/internal/core"
)

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is a fixed-tick simulation drawn into a cell screen.
// Front ends own the clock, the keyboard and the real surface.
type Game interface {
	ID() string
	Title() string

	// Reset starts a fresh session on a screen of the given size.
	// Scores of the previous run are dropped; the best score is kept.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick with the actions pressed since the last one.
	Step(in core.InputFrame) core.StepResult

	// Render paints the whole frame; dst is cleared first.
	Render(dst *core.Screen)

	State() core.GameState
}

// Resizer is implemented by games that follow a screen size change
// without starting a new session. Front ends fall back to Reset.
type Resizer interface {
	Resize(cfg core.RuntimeConfig)
}

// GameInfo describes a registered game for listings.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a game ready for Reset.
type Factory func() Game

type entry struct {
	info  GameInfo
	build Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a game under id. It panics on an empty or reused id and
// when the factory builds a game reporting a different ID.
func Register(id string, f Factory) {
	if id == "" {
		panic("registry: empty game id")
	}
	g := f()
	if g.ID() != id {
		panic(fmt.Sprintf("registry: game %q registered as %q", g.ID(), id))
	}

	mu.Lock()
	defer mu.Unlock()
	if _, taken := entries[id]; taken {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{info: GameInfo{ID: id, Title: g.Title()}, build: f}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	mu.RUnlock()

	slices.SortFunc(out, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.build(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
