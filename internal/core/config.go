package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed, 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// TicksFor converts a duration in milliseconds to simulation ticks.
// Always returns at least one tick for positive durations.
func (c RuntimeConfig) TicksFor(ms int) int {
	if ms <= 0 {
		return 0
	}
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	ticks := ms * rate / 1000
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	MaxScore int  // Best possible score, 0 if unbounded
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
