package render

import (
	"github.com/marklanglo/pong/core"
	"github.com/marklanglo/pong/vmath"
)

// CommandKind identifies a draw primitive
type CommandKind int

const (
	CmdFill CommandKind = iota
	CmdCircle
	CmdRect
	CmdLine
	CmdText
)

func (k CommandKind) String() string {
	names := [...]string{"fill", "circle", "rect", "line", "text"}
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// Command is one recorded draw call; fields unused by a kind stay zero
type Command struct {
	Kind      CommandKind
	Color     core.RGB
	Pos       vmath.Vec2 // circle center, rect top-left, line start, text anchor point
	Size      vmath.Vec2 // rect size
	End       vmath.Vec2 // line end
	Radius    float64
	Thickness float64
	Text      string
	FontSize  int
	Anchor    Anchor
}

// Recorder is a Screen that keeps the ordered command stream of the current frame
type Recorder struct {
	Field
	commands []Command
	last     []Command
	frames   int
}

// NewRecorder creates a recorder over a fixed field
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Field: Field{Width: width, Height: height}}
}

func (r *Recorder) Fill(color core.RGB) {
	r.commands = append(r.commands, Command{Kind: CmdFill, Color: color})
}

func (r *Recorder) Circle(center vmath.Vec2, radius float64, color core.RGB) {
	r.commands = append(r.commands, Command{Kind: CmdCircle, Pos: center, Radius: radius, Color: color})
}

func (r *Recorder) Rect(topLeft, size vmath.Vec2, color core.RGB) {
	r.commands = append(r.commands, Command{Kind: CmdRect, Pos: topLeft, Size: size, Color: color})
}

func (r *Recorder) Line(from, to vmath.Vec2, color core.RGB, thickness float64) {
	r.commands = append(r.commands, Command{Kind: CmdLine, Pos: from, End: to, Color: color, Thickness: thickness})
}

func (r *Recorder) Text(s string, fontSize int, color core.RGB, at vmath.Vec2, anchor Anchor) {
	r.commands = append(r.commands, Command{Kind: CmdText, Text: s, FontSize: fontSize, Color: color, Pos: at, Anchor: anchor})
}

// Present closes the current frame
func (r *Recorder) Present() {
	r.last = r.commands
	r.commands = nil
	r.frames++
}

// Commands returns the commands issued since the last Present
func (r *Recorder) Commands() []Command {
	return r.commands
}

// LastFrame returns the commands of the most recently presented frame
func (r *Recorder) LastFrame() []Command {
	return r.last
}

// Frames returns the number of presented frames
func (r *Recorder) Frames() int {
	return r.frames
}

// Reset drops pending commands without presenting
func (r *Recorder) Reset() {
	r.commands = nil
}

// Texts returns the strings of all text commands since the last Present
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.commands {
		if c.Kind == CmdText {
			out = append(out, c.Text)
		}
	}
	return out
}
