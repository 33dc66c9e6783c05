package entities

import (
	"github.com/marklanglo/pong/constants"
	"github.com/marklanglo/pong/core"
	"github.com/marklanglo/pong/render"
	"github.com/marklanglo/pong/vmath"
)

// Rand is the injected random source of the opponent
type Rand interface {
	IntRange(lo, hi int) int
}

// BallTracker exposes the ball position to the opponent
type BallTracker interface {
	Position() vmath.Vec2
}

// OpponentAI is a paddle steered by a delayed, deliberately imperfect tracker
type OpponentAI struct {
	Paddle
	rng         Rand
	delay       int
	offset      float64
	offsetTimer int
}

// NewOpponentAI creates the computer paddle at x
func NewOpponentAI(surface render.Surface, x float64, rng Rand) *OpponentAI {
	return &OpponentAI{
		Paddle: *NewPaddle(surface, x),
		rng:    rng,
		delay:  constants.AIInitialDelay,
	}
}

// Offset returns the current tracking error
func (ai *OpponentAI) Offset() float64 { return ai.offset }

// OffsetTimer returns ticks until the next offset refresh
func (ai *OpponentAI) OffsetTimer() int { return ai.offsetTimer }

// Delay returns the remaining reaction delay
func (ai *OpponentAI) Delay() int { return ai.delay }

// Update decides once the reaction delay has run out, then moves by the held flags
// Movement is not clamped here, the decision dead zones keep the paddle off the rails
func (ai *OpponentAI) Update(ball BallTracker) {
	if ai.delay == 0 {
		ai.decide(ball.Position().Y)
	} else {
		ai.delay--
	}

	if ai.goingUp {
		ai.pos.Y -= ai.speed
	} else if ai.goingDown {
		ai.pos.Y += ai.speed
	}
	core.Assert(ai.pos.Y >= ai.upper && ai.pos.Y <= ai.lower,
		"opponent paddle y %.1f outside [%.1f, %.1f]", ai.pos.Y, ai.upper, ai.lower)
}

// refreshOffset draws a new tracking offset every AIOffsetPeriod decisions
func (ai *OpponentAI) refreshOffset() {
	if ai.offsetTimer > 0 {
		ai.offsetTimer--
		return
	}
	ai.offsetTimer = constants.AIOffsetPeriod
	span := int(ai.size.Y * constants.AIOffsetRange)
	ai.offset = float64(ai.rng.IntRange(-span, span))
}

func (ai *OpponentAI) decide(ballY float64) {
	ai.goingUp = false
	ai.goingDown = false
	ai.refreshOffset()

	y := ai.pos.Y
	h := ai.size.Y
	target := ballY + ai.offset
	dist := target
	if dist < 0 {
		dist = -dist
	}

	switch {
	case target < y+h*constants.AIUpTrigger && y >= ai.upper+constants.AIRailOuter:
		if y <= ai.upper+constants.AIRailInner {
			ai.goingUp = false
		} else if (y+h*constants.AIUpAnchor)-dist > constants.AIUrgency {
			ai.goingUp = true
			ai.delay = 0
		}
	case target > y-h*constants.AIDownTrigger && y <= ai.lower-constants.AIRailOuter:
		if y >= ai.lower-constants.AIRailInner {
			ai.goingDown = false
		} else if (y-h*constants.AIDownAnchor)-dist < -constants.AIUrgency {
			ai.goingDown = true
			ai.delay = 0
		}
	}
}

// Draw renders the paddle with its goal line on the far edge
func (ai *OpponentAI) Draw(c render.Canvas) {
	ai.drawBody(c)
	ai.drawGoalLine(c, ai.goalLineX+ai.size.X)
}
