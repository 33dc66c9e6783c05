package constants

import "time"

// Key hold windows for terminals without key release reporting
const (
	// KeyInitialHold covers the gap before the terminal's first auto-repeat
	KeyInitialHold = 500 * time.Millisecond

	// KeyRepeatHold is the release window once auto-repeat is flowing
	KeyRepeatHold = 90 * time.Millisecond

	// InputQueueSize buffers raw terminal events between polls
	InputQueueSize = 256
)
