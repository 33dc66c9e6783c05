package vmath

import "math"

// Vec2 is a float64 2D vector used for positions and velocities
// Value type, every operation returns a new vector
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Div divides both components by d, zero-safe (returns zero vector)
func (v Vec2) Div(d float64) Vec2 {
	if d == 0 {
		return Vec2{}
	}
	return Vec2{v.X / d, v.Y / d}
}

// MagSq returns squared magnitude without sqrt
func (v Vec2) MagSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Mag() float64 {
	return math.Sqrt(v.MagSq())
}

// Rotate rotates the vector by degrees, counter-clockwise in a y-up frame
// On a y-down screen a positive angle turns the vector downward
func (v Vec2) Rotate(degrees float64) Vec2 {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// ClampMag limits vector to maxMag while preserving direction
// Returns unchanged vector if magnitude <= maxMag
func (v Vec2) ClampMag(maxMag float64) Vec2 {
	magSq := v.MagSq()
	if magSq <= maxMag*maxMag || magSq == 0 {
		return v
	}
	return v.Scale(maxMag / math.Sqrt(magSq))
}

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
