package constants

import "time"

// Terminal Backend Constants
const (
	// KeyHoldTimeout is how long a terminal key counts as held after its last press event.
	// Terminals report presses and auto-repeats only, never releases.
	KeyHoldTimeout = 120 * time.Millisecond

	// EventQueueSize is the capacity of the terminal event channel
	EventQueueSize = 256

	// WindowTitle is the title of the desktop window backend
	WindowTitle = "Space Shooter"
)

// Logging Constants
const (
	// LogDir is the directory debug logs are written to
	LogDir = "logs"

	// LogFileName is the active debug log file
	LogFileName = "space-shooter.log"

	// MaxLogSize is the size after which the log file is rotated on startup
	MaxLogSize = 10 * 1024 * 1024
)
