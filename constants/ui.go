package constants

// Scoring
const (
	WinningScore = 3
)

// Overlay timers (ticks at GameFrameRate)
const (
	TutorialDisplayTicks = 840
	ArrowFlashTicks      = 180
	ArrowFlashPeriod     = 90
	CountdownTickDivisor = 120
)

// Overlay layout
const (
	CenterLineSegments  = 21
	CenterLineThickness = 10.0
	ArrowThickness      = 8.0
)

// Font sizes
const (
	FontHuge   = 100
	FontLarge  = 30
	FontPrompt = 25
	FontMedium = 22
	FontNormal = 20
	FontSmall  = 16
	FontTiny   = 14
	FontMicro  = 10
)

// MatchCodeLength is the number of leading match id characters shown on result screens
const MatchCodeLength = 8
