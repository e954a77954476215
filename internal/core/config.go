package core

// RuntimeConfig contains frontend settings passed down when an episode starts.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters (terminal) or pixels (window)
	ScreenH  int // Screen height in characters (terminal) or pixels (window)
	TickRate int // Frames per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState summarizes an episode for the status line.
type GameState struct {
	Score          int  // Current score
	BallsRemaining int  // Spare balls left after the one in play
	Multiplier     int  // Points per brick at this moment
	BricksLeft     int  // Bricks still standing
	Started        bool // Whether the first click has been seen
	Over           bool // Whether the episode has ended, lost or cleared
	Cleared        bool // Whether every brick was destroyed
}
