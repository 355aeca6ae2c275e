package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and to seed their RNG.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame ticks per second (default 60)
	Seed     int64 // RNG seed, 0 means the platform picks one from the clock
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

// GameState is the summary the platform needs after every update.
type GameState struct {
	Score    int  // Current score
	TimeLeft int  // Whole seconds left on the session clock
	Running  bool // A session is in progress and drivers must keep ticking
	GameOver bool // The last session ran out of time
}

// StepResult is returned by the game after each driver callback.
type StepResult struct {
	State GameState
}
