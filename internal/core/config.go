package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// The shell fills it from the terminal and CLI flags.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended (won or lost)
	Won      bool // Whether the game ended with a cleared field
	Serving  bool // Whether the game waits for a launch
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// NextDelay is how long the platform waits before the next Step.
	NextDelay time.Duration

	// Bounced is set when the ball hit a wall, the paddle or a brick.
	Bounced bool

	// PaddleHit is set when the bounce was off the paddle.
	PaddleHit bool

	// BrickDestroyed is set when a brick was removed this tick.
	BrickDestroyed bool

	// TurnLost is set when the ball crossed the boundary line this tick.
	TurnLost bool
}
