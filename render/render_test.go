package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/marklanglo/pong/core"
	"github.com/marklanglo/pong/vmath"
)

// newSimRenderer creates an 80x50 simulated terminal over an 800x500 field (10 units per cell)
func newSimRenderer(t *testing.T) (*TerminalRenderer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 50)
	return NewTerminalRenderer(screen, 800, 500), screen
}

func cellBackground(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

// TestRecorderFrames verifies command ordering and frame boundaries
func TestRecorderFrames(t *testing.T) {
	rec := NewRecorder(800, 500)

	w, h := rec.Size()
	if w != 800 || h != 500 {
		t.Fatalf("Size = %v x %v, want 800 x 500", w, h)
	}

	rec.Fill(core.RGBBlack)
	rec.Rect(vmath.V2(1, 2), vmath.V2(3, 4), core.RGBCyan)
	rec.Circle(vmath.V2(5, 6), 7, core.RGBGreen)
	rec.Text("hi", 20, core.RGBWhite, vmath.V2(0, 0), AnchorTopLeft)

	cmds := rec.Commands()
	want := []CommandKind{CmdFill, CmdRect, CmdCircle, CmdText}
	if len(cmds) != len(want) {
		t.Fatalf("Expected %d commands, got %d", len(want), len(cmds))
	}
	for i, k := range want {
		if cmds[i].Kind != k {
			t.Errorf("Command %d kind = %s, want %s", i, cmds[i].Kind, k)
		}
	}
	if got := rec.Texts(); len(got) != 1 || got[0] != "hi" {
		t.Errorf("Texts = %v", got)
	}

	rec.Present()
	if rec.Frames() != 1 {
		t.Errorf("Frames = %d, want 1", rec.Frames())
	}
	if len(rec.Commands()) != 0 {
		t.Error("Expected empty command list after Present")
	}
	if len(rec.LastFrame()) != len(want) {
		t.Errorf("LastFrame has %d commands, want %d", len(rec.LastFrame()), len(want))
	}
}

// TestTerminalRendererScale verifies logical size is independent of the cell grid
func TestTerminalRendererScale(t *testing.T) {
	r, screen := newSimRenderer(t)

	w, h := r.Size()
	if w != 800 || h != 500 {
		t.Errorf("Size = %v x %v, want 800 x 500", w, h)
	}

	screen.SetSize(160, 25)
	w, h = r.Size()
	if w != 800 || h != 500 {
		t.Errorf("Size after resize = %v x %v, want 800 x 500", w, h)
	}
	x, y := r.toCell(vmath.V2(400, 250))
	if x != 80 || y != 12 {
		t.Errorf("Center maps to (%d,%d), want (80,12)", x, y)
	}
}

// TestTerminalRendererRect verifies rectangles cover their cells
func TestTerminalRendererRect(t *testing.T) {
	r, screen := newSimRenderer(t)
	cyan := RGBToTcell(core.RGBCyan)

	r.Fill(core.RGBBlack)
	r.Rect(vmath.V2(40, 190), vmath.V2(30, 120), core.RGBCyan)

	for _, c := range [][2]int{{4, 19}, {6, 19}, {4, 30}, {6, 30}} {
		if bg := cellBackground(screen, c[0], c[1]); bg != cyan {
			t.Errorf("Cell %v background = %v, want cyan", c, bg)
		}
	}
	for _, c := range [][2]int{{3, 19}, {7, 19}, {4, 18}, {4, 31}} {
		if bg := cellBackground(screen, c[0], c[1]); bg == cyan {
			t.Errorf("Cell %v outside rect painted cyan", c)
		}
	}
}

// TestTerminalRendererCircleMinimumCell verifies sub-cell circles still show
func TestTerminalRendererCircleMinimumCell(t *testing.T) {
	r, screen := newSimRenderer(t)
	green := RGBToTcell(core.RGBGreen)

	r.Fill(core.RGBBlack)
	r.Circle(vmath.V2(400, 250), 2, core.RGBGreen)

	if bg := cellBackground(screen, 40, 25); bg != green {
		t.Errorf("Center cell background = %v, want green", bg)
	}
}

// TestTerminalRendererLine verifies vertical lines span the field
func TestTerminalRendererLine(t *testing.T) {
	r, screen := newSimRenderer(t)
	cyan := RGBToTcell(core.RGBCyan)

	r.Fill(core.RGBBlack)
	r.Line(vmath.V2(40, 500), vmath.V2(40, 0), core.RGBCyan, 1)

	for y := 0; y < 50; y++ {
		if bg := cellBackground(screen, 4, y); bg != cyan {
			t.Fatalf("Row %d of goal line background = %v, want cyan", y, bg)
		}
	}
}

// TestTerminalRendererText verifies anchoring and background carry-over
func TestTerminalRendererText(t *testing.T) {
	r, screen := newSimRenderer(t)

	r.Fill(core.RGBPink)
	r.Text("PONG", 100, core.RGBWhite, vmath.V2(400, 250), AnchorCenter)
	r.Text("ab", 10, core.RGBWhite, vmath.V2(0, 0), AnchorTopLeft)

	for i, want := range "PONG" {
		ch, _, style, _ := screen.GetContent(38+i, 25)
		if ch != want {
			t.Errorf("Cell %d = %q, want %q", 38+i, ch, want)
		}
		fg, bg, attrs := style.Decompose()
		if fg != RGBToTcell(core.RGBWhite) || bg != RGBToTcell(core.RGBPink) {
			t.Errorf("Cell %d colors fg=%v bg=%v", 38+i, fg, bg)
		}
		if attrs&tcell.AttrBold == 0 {
			t.Errorf("Cell %d expected bold for large font", 38+i)
		}
	}

	ch, _, _, _ := screen.GetContent(1, 0)
	if ch != 'b' {
		t.Errorf("Top-left text second cell = %q, want 'b'", ch)
	}
}

// TestRGBTcellRoundTrip verifies color conversion both ways
func TestRGBTcellRoundTrip(t *testing.T) {
	colors := []core.RGB{core.RGBBlack, core.RGBCyan, core.RGBPink, {R: 12, G: 34, B: 56}}
	for _, c := range colors {
		if got := TcellToRGB(RGBToTcell(c)); got != c {
			t.Errorf("Round trip %v = %v", c, got)
		}
	}
	if TcellToRGB(tcell.ColorDefault) != core.RGBBlack {
		t.Error("ColorDefault should map to black")
	}
}
