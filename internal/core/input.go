package core

// Action represents a semantic frontend action, abstracted from physical key presses.
// The paddle itself is pointer driven; actions cover everything around the episode.
type Action int

const (
	ActionNone       Action = iota
	ActionRestart           // R key - new episode after the current one ended
	ActionMute              // M key - toggle bounce sounds
	ActionBack              // B, Escape - go back to menu
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionScreenshot        // Ctrl+S - dump the screen to a file
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRestart:
		return "Restart"
	case ActionMute:
		return "Mute"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// ControlState tracks the pointer in normalized device coordinates and the
// frame stamps of the last primary button press and release.
type ControlState struct {
	// MouseX and MouseY are in [-1, 1] along the shorter window axis; the longer
	// axis is stretched by the aspect ratio so logic space stays square.
	MouseX float64
	MouseY float64

	pressedAt  uint64
	releasedAt uint64
	hasPress   bool
	hasRelease bool
}

// NewControlState creates a control state with the pointer centered.
func NewControlState() *ControlState {
	return &ControlState{}
}

// UpdateCursorPosition converts a pixel position inside a window of the given
// size into normalized coordinates. A window with a zero dimension is ignored.
func (c *ControlState) UpdateCursorPosition(windowW, windowH int, px, py float64) {
	if windowW <= 0 || windowH <= 0 {
		return
	}

	w := float64(windowW)
	h := float64(windowH)

	c.MouseX = px/(w/2) - 1
	c.MouseY = py/(h/2) - 1

	// correct for aspect ratio
	if windowW > windowH {
		c.MouseX *= w / h
	} else {
		c.MouseY *= h / w
	}
}

// RecordButton stamps a press or release of the primary button with the
// current frame number. Other buttons are ignored.
func (c *ControlState) RecordButton(b Button, pressed bool, frame uint64) {
	if b != ButtonPrimary {
		return
	}
	if pressed {
		c.pressedAt = frame
		c.hasPress = true
	} else {
		c.releasedAt = frame
		c.hasRelease = true
	}
}

// Clicked reports whether the most recent press has been followed by a release.
// It is a level query: it stays true until the next press.
func (c *ControlState) Clicked() bool {
	return c.hasPress && c.hasRelease && c.releasedAt >= c.pressedAt
}

// Reset forgets recorded button edges, keeping the pointer position.
func (c *ControlState) Reset() {
	c.pressedAt = 0
	c.releasedAt = 0
	c.hasPress = false
	c.hasRelease = false
}
