package entities

import (
	"math"

	"github.com/marklanglo/pong/constants"
	"github.com/marklanglo/pong/core"
	"github.com/marklanglo/pong/engine"
	"github.com/marklanglo/pong/render"
	"github.com/marklanglo/pong/vmath"
)

// Collider is a body the ball can rebound off
type Collider interface {
	Collide(pos, vel vmath.Vec2, radius float64) bool
	ReboundDirection(ballY float64) int
}

// Paddle is a vertical bar steered by held direction flags
// Position is the top-left corner, y stays within [upper, lower]
type Paddle struct {
	surface   render.Surface
	pos       vmath.Vec2
	size      vmath.Vec2
	speed     float64
	color     core.RGB
	goingUp   bool
	goingDown bool
	upper     float64
	lower     float64
	goalLineX float64
}

// NewPaddle creates a paddle at x, vertically centred on the surface
func NewPaddle(surface render.Surface, x float64) *Paddle {
	_, h := surface.Size()
	return &Paddle{
		surface:   surface,
		pos:       vmath.V2(x, h/2-constants.PaddleHeight/2),
		size:      vmath.V2(constants.PaddleWidth, constants.PaddleHeight),
		speed:     constants.PaddleSpeed,
		color:     core.RGBCyan,
		upper:     0,
		lower:     h - constants.PaddleHeight,
		goalLineX: x,
	}
}

func (p *Paddle) Position() vmath.Vec2 { return p.pos }
func (p *Paddle) Size() vmath.Vec2     { return p.size }
func (p *Paddle) GoingUp() bool        { return p.goingUp }
func (p *Paddle) GoingDown() bool      { return p.goingDown }

// Bounds returns the hard travel limits of the top edge
func (p *Paddle) Bounds() (upper, lower float64) {
	return p.upper, p.lower
}

// SetY places the paddle, clamped to the hard bounds
func (p *Paddle) SetY(y float64) {
	p.pos.Y = min(max(y, p.upper), p.lower)
}

// Update steps toward the held direction, stopping PaddleMargin short of either bound
func (p *Paddle) Update() {
	top := p.upper + constants.PaddleMargin
	bottom := p.lower - constants.PaddleMargin

	if p.goingDown && p.pos.Y < bottom {
		p.pos.Y = min(p.pos.Y+p.speed, bottom)
	} else if p.goingUp && p.pos.Y > top {
		p.pos.Y = max(p.pos.Y-p.speed, top)
	}
}

// Move sets or clears the direction flags on movement key transitions
func (p *Paddle) Move(ev engine.Event) {
	if !ev.Key.IsMovement() {
		return
	}
	held := ev.Type == engine.EventKeyDown
	if ev.Key.IsUpward() {
		p.goingUp = held
	} else {
		p.goingDown = held
	}
}

// contains is a half-open hit test: [left, right) x [top, bottom)
func (p *Paddle) contains(x, y float64) bool {
	return x >= p.pos.X && x < p.pos.X+p.size.X &&
		y >= p.pos.Y && y < p.pos.Y+p.size.Y
}

// Collide samples the ball's current and predicted positions against the paddle
// Fast balls also test a ring of points around each prediction so they cannot tunnel through
func (p *Paddle) Collide(pos, vel vmath.Vec2, radius float64) bool {
	fast := vel.Mag() > radius
	diag := radius * constants.SampleDiagonal
	vert := radius * constants.SampleVertical
	horiz := radius * constants.SampleHorizontal

	for i := constants.SampleStart; i < constants.SampleEnd; i++ {
		if p.contains(pos.X, pos.Y) ||
			p.contains(pos.X, pos.Y+radius) ||
			p.contains(pos.X, pos.Y-radius) {
			return true
		}
		if !fast {
			continue
		}

		sample := pos.Add(vel.Div(float64(i)))
		ring := [8]vmath.Vec2{
			{X: sample.X + diag, Y: sample.Y + diag},
			{X: sample.X - diag, Y: sample.Y - diag},
			{X: sample.X - diag, Y: sample.Y + diag},
			{X: sample.X + diag, Y: sample.Y - diag},
			{X: sample.X, Y: sample.Y + vert},
			{X: sample.X, Y: sample.Y - vert},
			{X: sample.X - horiz, Y: sample.Y},
			{X: sample.X + horiz, Y: sample.Y},
		}
		for _, pt := range ring {
			if p.contains(pt.X, pt.Y) {
				return true
			}
		}
	}
	return false
}

// ReboundDirection returns the bucket 0..6 whose reference height is closest to ballY
// Ties go to the lower index
func (p *Paddle) ReboundDirection(ballY float64) int {
	best := math.Inf(1)
	direction := 0
	for i, frac := range constants.ReboundHeights {
		if d := math.Abs(p.pos.Y + p.size.Y*frac - ballY); d < best {
			best = d
			direction = i
		}
	}
	return direction
}

// Draw renders the paddle and its goal line
func (p *Paddle) Draw(c render.Canvas) {
	p.drawBody(c)
	p.drawGoalLine(c, p.goalLineX)
}

func (p *Paddle) drawBody(c render.Canvas) {
	c.Rect(p.pos, p.size, p.color)
}

func (p *Paddle) drawGoalLine(c render.Canvas, x float64) {
	_, h := p.surface.Size()
	c.Line(vmath.V2(x, h), vmath.V2(x, 0), p.color, 1)
}
