package entities

import (
	"github.com/marklanglo/pong/audio"
	"github.com/marklanglo/pong/constants"
	"github.com/marklanglo/pong/core"
	"github.com/marklanglo/pong/render"
	"github.com/marklanglo/pong/vmath"
)

// Point is the one-shot scoring result drained from the ball each tick
type Point struct {
	Points     int
	ScoredLeft bool
}

// Ball simulates the puck: movement, wall and paddle rebounds, goals and serve timing
// Velocity magnitude never exceeds the cap, a ball between rounds has zero velocity
type Ball struct {
	surface render.Surface
	paddles [2]Collider
	player  audio.Player

	origin   vmath.Vec2
	pos      vmath.Vec2
	vel      vmath.Vec2
	maxSpeed float64
	radius   float64
	color    core.RGB

	soundOn    bool
	inProgress bool
	gameOver   bool
	scoredLeft bool

	score      int
	rebound    int
	resetTimer int
}

// NewBall creates a ball at rest on origin
// paddles[0] is the left paddle, paddles[1] the right one
func NewBall(surface render.Surface, paddles [2]Collider, player audio.Player, origin vmath.Vec2) *Ball {
	if player == nil {
		player = audio.Silent{}
	}
	return &Ball{
		surface:    surface,
		paddles:    paddles,
		player:     player,
		origin:     origin,
		pos:        origin,
		maxSpeed:   constants.BallMaxSpeed,
		radius:     constants.BallRadius,
		color:      core.RGBGreen,
		soundOn:    true,
		resetTimer: constants.BallFirstServeDelay,
	}
}

func (b *Ball) Position() vmath.Vec2 { return b.pos }
func (b *Ball) Velocity() vmath.Vec2 { return b.vel }
func (b *Ball) Color() core.RGB      { return b.color }
func (b *Ball) Radius() float64      { return b.radius }
func (b *Ball) MaxSpeed() float64    { return b.maxSpeed }
func (b *Ball) InProgress() bool     { return b.inProgress }
func (b *Ball) GameOver() bool       { return b.gameOver }
func (b *Ball) SoundOn() bool        { return b.soundOn }
func (b *Ball) ResetTimer() int      { return b.resetTimer }
func (b *Ball) ReboundCooldown() int { return b.rebound }

// IsMoving reports a non-zero velocity
func (b *Ball) IsMoving() bool {
	return b.vel.MagSq() > 0
}

// Update advances one tick
func (b *Ball) Update() {
	if b.gameOver {
		return
	}

	b.pos = b.pos.Add(b.vel)
	b.bounce()

	if b.rebound > 0 {
		b.rebound--
	}

	if !b.inProgress {
		if b.resetTimer == 0 {
			b.Start()
		} else {
			b.resetTimer--
		}
	}
}

// Start serves toward the side that conceded the last point
func (b *Ball) Start() {
	x := b.radius * constants.BallServeX
	y := b.radius * constants.BallServeY
	if b.scoredLeft {
		b.vel = vmath.V2(x, y)
	} else {
		b.vel = vmath.V2(-x, -y)
	}
	b.inProgress = true
}

// Stop zeroes the velocity
func (b *Ball) Stop() {
	b.vel = vmath.Vec2{}
}

func (b *Ball) reset() {
	b.pos = b.origin
	b.vel = vmath.Vec2{}
	b.color = core.RGBGreen
	b.inProgress = false
	b.resetTimer = constants.BallServeDelay
}

// TakePoint returns the pending score and clears it
func (b *Ball) TakePoint() Point {
	p := Point{Points: b.score, ScoredLeft: b.scoredLeft}
	b.score = 0
	return p
}

// ToggleSfx switches the bounce sound
func (b *Ball) ToggleSfx() {
	b.soundOn = !b.soundOn
}

// SetGameOver freezes the ball for the rest of the match
func (b *Ball) SetGameOver() {
	b.gameOver = true
	b.color = core.RGBBlack
}

func (b *Ball) bounce() {
	w, h := b.surface.Size()
	mid := w / 2

	// Goals resolve before any paddle contact
	if b.pos.X >= w-constants.BallGoalMargin || b.pos.X <= constants.BallGoalMargin {
		b.scoredLeft = b.pos.X < mid
		b.score = 1
		b.reset()
	}

	if (b.pos.Y <= 0 && b.vel.Y < 0) || (b.pos.Y >= h && b.vel.Y > 0) {
		b.vel.Y = -b.vel.Y
	}

	hit := false
	for i, p := range b.paddles {
		if p == nil || b.rebound > 0 {
			continue
		}
		if !p.Collide(b.pos, b.vel, b.radius) {
			continue
		}
		ownSide := (i == 0 && b.pos.X < mid) || (i == 1 && b.pos.X > mid)
		if !ownSide {
			continue
		}
		b.changeAngle(p.ReboundDirection(b.pos.Y))
		b.rebound = constants.BallReboundCooldown
		hit = true
	}

	if hit {
		if b.soundOn {
			b.player.PlaySound(core.SoundBounce)
		}
		if b.vel.MagSq() < b.maxSpeed*b.maxSpeed {
			b.vel = b.vel.Scale(constants.BallSpeedRamp).ClampMag(b.maxSpeed)
			b.color = b.color.Heat(constants.BallHeatStep)
		}
	}

	core.Assert(b.vel.MagSq() <= b.maxSpeed*b.maxSpeed*(1+1e-9),
		"ball speed %.3f above cap %.1f", b.vel.Mag(), b.maxSpeed)
}

// changeAngle replaces the velocity with the current speed along the bucket angle,
// pointing back across the field
func (b *Ball) changeAngle(direction int) {
	core.Assert(direction >= 0 && direction < len(constants.ReboundAngles),
		"rebound bucket %d out of range", direction)

	v := vmath.V2(b.vel.Mag(), 0).Rotate(constants.ReboundAngles[direction])
	if b.vel.X > 0 {
		v.X = -v.X
	}
	b.vel = v
}

// Draw renders the ball
func (b *Ball) Draw(c render.Canvas) {
	c.Circle(b.pos, b.radius, b.color)
}
