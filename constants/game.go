package constants

import "time"

// Play field geometry in logical units, independent of the terminal cell grid
const (
	FieldWidth  = 800.0
	FieldHeight = 500.0
)

// Scene frame rates (ticks per second)
const (
	TitleFrameRate  = 2
	GameFrameRate   = 120
	ResultFrameRate = 2
)

// Soundtrack transitions
const (
	MusicFadeIn  = 500 * time.Millisecond
	MusicFadeOut = 500 * time.Millisecond
)
