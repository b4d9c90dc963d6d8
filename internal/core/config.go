package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Crossings completed in the current run
	Best     int  // Best score since the process started
	GameOver bool // Whether the player has been hit
	Won      bool // Whether the win banner is showing
	Paused   bool // Whether the game is paused
}

// Event is something notable that happened during a tick.
type Event int

const (
	EventMoved Event = iota + 1
	EventCrossed
	EventHit
	EventRestarted
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventMoved:
		return "moved"
	case EventCrossed:
		return "crossed"
	case EventHit:
		return "hit"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the tick produced the given event.
func (r StepResult) Has(e Event) bool {
	for _, got := range r.Events {
		if got == e {
			return true
		}
	}
	return false
}
