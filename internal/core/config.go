package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to adapt to the terminal size and to seed its RNG.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic offers
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
	Score    int  // Current score (sum of squared resource counts)
	Round    int  // Current round, 1-based
	GameOver bool // Whether the game has ended
	Walking  bool // Whether a stall transition is being played back
	Failed   bool // Whether the game stopped on a broken invariant
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Events that happened during this tick, in order.
	Events []Event
}

// EventKind identifies what happened during a tick.
type EventKind string

const (
	EventStarted       EventKind = "started"
	EventActionApplied EventKind = "action_applied"
	EventActionIgnored EventKind = "action_ignored"
	EventWalkFinished  EventKind = "walk_finished"
	EventGameOver      EventKind = "game_over"
	EventFailure       EventKind = "failure"
	// EventConfigFallback reports a config that could not be loaded; the
	// game runs on defaults.
	EventConfigFallback EventKind = "config_fallback"
)

// Event is a notable game occurrence reported to the platform for logging
// and journaling. Fields carries event-specific key/value data.
type Event struct {
	Kind   EventKind      `json:"kind"`
	Tick   uint64         `json:"tick"`
	Fields map[string]any `json:"fields,omitempty"`
}
