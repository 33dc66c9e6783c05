package constants

// Ball
const (
	// BallRadius is the base radius, max speed derives from it
	BallRadius = 5.0

	// BallMaxSpeed caps velocity magnitude (units per tick)
	BallMaxSpeed = BallRadius * 2

	// BallServeX and BallServeY are the serve velocity components as multiples of the radius
	BallServeX = 0.3
	BallServeY = 0.1

	// BallGoalMargin is the distance from either side edge treated as a goal
	BallGoalMargin = 30.0

	// BallReboundCooldown debounces repeated paddle hits from one contact (ticks)
	BallReboundCooldown = 40

	// BallSpeedRamp multiplies both velocity components after a paddle hit
	BallSpeedRamp = 1.1

	// BallHeatStep is the per-hit red/green shift of the ball color
	BallHeatStep = 15

	// BallFirstServeDelay covers the opening tutorial countdown (ticks)
	BallFirstServeDelay = 840

	// BallServeDelay is the pause after a goal before the next serve (ticks)
	BallServeDelay = 60
)

// ReboundAngles are the seven deflection buckets in degrees, top of paddle first
// Negative sends the ball upward on screen
var ReboundAngles = [7]float64{-70, -45, -20, 0, 20, 45, 70}

// ReboundHeights are the fractions of paddle height sampled for bucket selection
var ReboundHeights = [7]float64{0, 0.25, 0.40, 0.50, 0.60, 0.75, 1.0}

// Paddle
const (
	PaddleWidth  = 30.0
	PaddleHeight = 120.0
	PaddleSpeed  = 5.0

	// PaddleMargin stops movement this far before the hard bound
	PaddleMargin = 20.0

	// PaddleLeftX is the human paddle's x position and goal line
	PaddleLeftX = 40.0

	// PaddleRightInset positions the AI paddle at width - inset
	PaddleRightInset = 70.0

	// Collision sample: predicted positions at velocity/i for i in [SampleStart, SampleEnd)
	SampleStart = 4
	SampleEnd   = 10

	// Ring offsets around each sample as multiples of the ball radius
	SampleDiagonal   = 1 / 2.5
	SampleVertical   = 2.0
	SampleHorizontal = 1.0
)
