package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/marklanglo/pong/constants"
	"github.com/marklanglo/pong/core"
	"github.com/marklanglo/pong/vmath"
)

// TerminalRenderer rasterizes logical draw commands onto a tcell screen
// Logical coordinates are scaled to the current cell grid on every call,
// so a terminal resize changes resolution but never the simulation
type TerminalRenderer struct {
	screen     tcell.Screen
	field      Field
	background core.RGB
}

// NewTerminalRenderer creates a renderer mapping a width x height logical field onto screen
func NewTerminalRenderer(screen tcell.Screen, width, height float64) *TerminalRenderer {
	return &TerminalRenderer{
		screen:     screen,
		field:      Field{Width: width, Height: height},
		background: core.RGBBlack,
	}
}

// Size returns the logical field size, constant for the process lifetime
func (r *TerminalRenderer) Size() (float64, float64) {
	return r.field.Size()
}

// grid returns the current cell grid size as floats
func (r *TerminalRenderer) grid() (cols, rows float64) {
	c, rw := r.screen.Size()
	return float64(c), float64(rw)
}

// toCell maps a logical point to its cell; multiply before dividing to keep integral inputs exact
func (r *TerminalRenderer) toCell(p vmath.Vec2) (int, int) {
	cols, rows := r.grid()
	return int(math.Floor(p.X * cols / r.field.Width)), int(math.Floor(p.Y * rows / r.field.Height))
}

// cellCenter maps a cell back to the logical point at its center
func (r *TerminalRenderer) cellCenter(x, y int) vmath.Vec2 {
	cols, rows := r.grid()
	return vmath.V2((float64(x)+0.5)*r.field.Width/cols, (float64(y)+0.5)*r.field.Height/rows)
}

func (r *TerminalRenderer) inBounds(x, y int) bool {
	cols, rows := r.screen.Size()
	return x >= 0 && x < cols && y >= 0 && y < rows
}

// paint sets a solid cell of the given color
func (r *TerminalRenderer) paint(x, y int, color core.RGB) {
	if !r.inBounds(x, y) {
		return
	}
	r.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(RGBToTcell(color)))
}

// Fill paints every cell and remembers the color as the text background
func (r *TerminalRenderer) Fill(color core.RGB) {
	r.background = color
	cols, rows := r.screen.Size()
	style := tcell.StyleDefault.Background(RGBToTcell(color))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// Circle paints cells whose centers fall inside the circle, and always the center cell
func (r *TerminalRenderer) Circle(center vmath.Vec2, radius float64, color core.RGB) {
	x0, y0 := r.toCell(center.Sub(vmath.V2(radius, radius)))
	x1, y1 := r.toCell(center.Add(vmath.V2(radius, radius)))
	rSq := radius * radius

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if r.cellCenter(x, y).Sub(center).MagSq() <= rSq {
				r.paint(x, y, color)
			}
		}
	}

	cx, cy := r.toCell(center)
	r.paint(cx, cy, color)
}

// Rect paints every cell the rectangle overlaps, at least one
func (r *TerminalRenderer) Rect(topLeft, size vmath.Vec2, color core.RGB) {
	cols, rows := r.grid()
	x0, y0 := r.toCell(topLeft)
	x1 := int(math.Ceil((topLeft.X+size.X)*cols/r.field.Width)) - 1
	y1 := int(math.Ceil((topLeft.Y+size.Y)*rows/r.field.Height)) - 1
	x1 = max(x1, x0)
	y1 = max(y1, y0)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.paint(x, y, color)
		}
	}
}

// Line samples the segment at cell resolution; thickness below one cell collapses to one
func (r *TerminalRenderer) Line(from, to vmath.Vec2, color core.RGB, thickness float64) {
	fx, fy := r.toCell(from)
	tx, ty := r.toCell(to)
	steps := max(abs(tx-fx), abs(ty-fy))
	if steps == 0 {
		r.paint(fx, fy, color)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := fx + int(math.Round(float64(tx-fx)*t))
		y := fy + int(math.Round(float64(ty-fy)*t))
		r.paint(x, y, color)
	}
}

// Text writes s at the mapped anchor point over the last fill color
func (r *TerminalRenderer) Text(s string, fontSize int, color core.RGB, at vmath.Vec2, anchor Anchor) {
	runes := []rune(s)
	x, y := r.toCell(at)
	if anchor == AnchorCenter {
		x -= len(runes) / 2
	}

	style := tcell.StyleDefault.
		Foreground(RGBToTcell(color)).
		Background(RGBToTcell(r.background))
	if fontSize >= constants.FontLarge {
		style = style.Bold(true)
	}

	for i, ch := range runes {
		if r.inBounds(x+i, y) {
			r.screen.SetContent(x+i, y, ch, nil, style)
		}
	}
}

// Present flips the frame to the terminal
func (r *TerminalRenderer) Present() {
	r.screen.Show()
}

// Resync redraws every cell, used after a terminal resize
func (r *TerminalRenderer) Resync() {
	r.screen.Sync()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
