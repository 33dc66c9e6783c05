package render

import (
	"github.com/marklanglo/pong/core"
	"github.com/marklanglo/pong/vmath"
)

// Surface reports the logical play field size
type Surface interface {
	Size() (width, height float64)
}

// Canvas receives draw commands in logical field coordinates
// Later calls occlude earlier ones where they overlap
type Canvas interface {
	Surface
	Fill(color core.RGB)
	Circle(center vmath.Vec2, radius float64, color core.RGB)
	Rect(topLeft, size vmath.Vec2, color core.RGB)
	Line(from, to vmath.Vec2, color core.RGB, thickness float64)
	Text(s string, fontSize int, color core.RGB, at vmath.Vec2, anchor Anchor)
}

// Screen is a canvas that can flip a completed frame to the display
type Screen interface {
	Canvas
	Present()
}

// Anchor selects which point of a text box is placed at the given position
type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorTopLeft
)

// Field is a fixed-size surface
type Field struct {
	Width, Height float64
}

func (f Field) Size() (float64, float64) {
	return f.Width, f.Height
}
