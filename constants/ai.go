package constants

// Opponent controller
const (
	// AIInitialDelay is the reaction delay before the first decision (ticks)
	AIInitialDelay = 10

	// AIOffsetPeriod is the cadence of tracking offset refresh (ticks)
	AIOffsetPeriod = 360

	// AIOffsetRange bounds the tracking offset as a fraction of paddle height
	AIOffsetRange = 0.4

	// Decision thresholds as fractions of paddle height
	AIUpTrigger   = 0.4
	AIDownTrigger = 0.8
	AIUpAnchor    = 0.25
	AIDownAnchor  = 0.75

	// AIUrgency is the distance beyond which the controller commits to a move
	AIUrgency = 15.0

	// Rail dead zones measured from the travel bounds
	AIRailOuter = 20.0
	AIRailInner = 25.0
)
