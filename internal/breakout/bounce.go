package breakout

// Bounce is the kind of collision the ball had during the last tick.
type Bounce int

const (
	BounceNone Bounce = iota
	BouncePaddle
	BounceBrick
	BouncePlayfieldBorder
)

// String returns a human-readable name for the bounce.
func (b Bounce) String() string {
	switch b {
	case BounceNone:
		return "none"
	case BouncePaddle:
		return "paddle"
	case BounceBrick:
		return "brick"
	case BouncePlayfieldBorder:
		return "border"
	default:
		return "unknown"
	}
}

// Phase is the episode lifecycle.
type Phase int

const (
	PhaseNotStarted Phase = iota // Waiting for the first click
	PhasePlaying
	PhaseGameOver // Last ball lost
	PhaseCleared  // Every brick destroyed
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not started"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	case PhaseCleared:
		return "cleared"
	default:
		return "unknown"
	}
}
