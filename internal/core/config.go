package core

// RuntimeConfig contains settings supplied by the host rather than the game
// configuration file.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	FrameFPS int   // Render frames per second requested from the host
	Seed     int64 // RNG seed; 0 means seed from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		FrameFPS: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the externally visible status of a round.
type GameState struct {
	Score  int  // Current score
	Paused bool // Whether the simulation is paused
}
