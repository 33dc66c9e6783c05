package entities

import (
	"fmt"
	"strconv"

	"github.com/marklanglo/pong/constants"
	"github.com/marklanglo/pong/core"
	"github.com/marklanglo/pong/render"
	"github.com/marklanglo/pong/vmath"
)

// Winner is the match outcome reported by the overlay
type Winner int

const (
	WinnerNone  Winner = iota
	WinnerLeft         // Human
	WinnerRight        // Computer
)

func (w Winner) String() string {
	switch w {
	case WinnerLeft:
		return "left"
	case WinnerRight:
		return "right"
	default:
		return "none"
	}
}

// Scorer is the ball as seen by the overlay
type Scorer interface {
	TakePoint() Point
	SetGameOver()
}

// Overlay keeps score, decides the winner and draws the HUD
// Once a winner is set it never changes for the match
type Overlay struct {
	surface render.Surface

	color    core.RGB
	flasher  core.RGB
	arrowTop core.RGB
	arrowBot core.RGB

	scoreLeft  int
	scoreRight int
	leftWin    bool
	rightWin   bool

	showTutorial  bool
	tutorialTimer int
	arrowTimer    int
}

// NewOverlay creates a fresh scoreboard with the opening tutorial running
func NewOverlay(surface render.Surface) *Overlay {
	return &Overlay{
		surface:       surface,
		color:         core.RGBWhite,
		flasher:       core.RGBCyan,
		arrowTop:      core.RGBWhite,
		arrowBot:      core.RGBCyan,
		tutorialTimer: constants.TutorialDisplayTicks,
		arrowTimer:    constants.ArrowFlashTicks,
	}
}

// Scores returns the left and right scores
func (o *Overlay) Scores() (left, right int) {
	return o.scoreLeft, o.scoreRight
}

func (o *Overlay) TutorialTimer() int { return o.tutorialTimer }
func (o *Overlay) ArrowTimer() int    { return o.arrowTimer }

// ArrowColors returns the current up and down arrow colors
func (o *Overlay) ArrowColors() (up, down core.RGB) {
	return o.arrowTop, o.arrowBot
}

// TutorialVisible reports whether the arrows are on screen
func (o *Overlay) TutorialVisible() bool {
	return o.tutorialTimer > 0 || o.showTutorial
}

// ToggleTutorial shows or hides the arrows after the opening countdown
func (o *Overlay) ToggleTutorial() {
	o.showTutorial = !o.showTutorial
}

// Update drains the ball's point, checks for a winner and runs the timers
func (o *Overlay) Update(ball Scorer) {
	pt := ball.TakePoint()
	if pt.Points > 0 {
		if !pt.ScoredLeft {
			o.scoreLeft += pt.Points
		} else {
			o.scoreRight += pt.Points
		}
	}
	o.findWinner(ball)

	if o.tutorialTimer > 0 {
		o.tutorialTimer--
	}
	if o.arrowTimer > 0 {
		o.arrowTimer--
	}
	if o.TutorialVisible() {
		o.flashArrows()
	}
}

func (o *Overlay) findWinner(ball Scorer) {
	if o.CheckWinner() != WinnerNone {
		return
	}
	if o.scoreLeft >= constants.WinningScore {
		o.leftWin = true
		ball.SetGameOver()
	} else if o.scoreRight >= constants.WinningScore {
		o.rightWin = true
		ball.SetGameOver()
	}
	core.Assert(!(o.leftWin && o.rightWin), "both sides won")
}

// flashArrows swaps both arrow colors every ArrowFlashPeriod ticks
func (o *Overlay) flashArrows() {
	if o.arrowTimer%constants.ArrowFlashPeriod == 0 {
		o.arrowTop = o.swap(o.arrowTop)
		o.arrowBot = o.swap(o.arrowBot)
	}
	if o.arrowTimer == 0 {
		o.arrowTimer = constants.ArrowFlashTicks
	}
}

func (o *Overlay) swap(c core.RGB) core.RGB {
	if c == o.color {
		return o.flasher
	}
	return o.color
}

// CheckWinner returns the decided winner or WinnerNone
func (o *Overlay) CheckWinner() Winner {
	switch {
	case o.leftWin:
		return WinnerLeft
	case o.rightWin:
		return WinnerRight
	default:
		return WinnerNone
	}
}

// Draw renders scores, centre line, banners, tutorial and footer
func (o *Overlay) Draw(c render.Canvas) {
	w, h := o.surface.Size()

	c.Text(strconv.Itoa(o.scoreLeft), constants.FontHuge, o.color, vmath.V2(w*0.4, h*0.1), render.AnchorCenter)
	c.Text(strconv.Itoa(o.scoreRight), constants.FontHuge, o.color, vmath.V2(w*0.6, h*0.1), render.AnchorCenter)

	var from vmath.Vec2
	for i := 0; i < constants.CenterLineSegments; i++ {
		p := vmath.V2(w*0.5, h*float64(i+1)/constants.CenterLineSegments)
		if i%2 == 0 {
			from = p
		} else {
			c.Line(from, p, o.color, constants.CenterLineThickness)
		}
	}

	o.drawBanner(c, w, h)
	if o.TutorialVisible() {
		o.drawTutorial(c, w, h)
	}
	if o.tutorialTimer > 0 {
		o.drawCountdown(c, w, h)
	} else {
		o.drawSubtext(c, w, h)
	}
}

func (o *Overlay) drawBanner(c render.Canvas, w, h float64) {
	var first, second string
	var color core.RGB
	switch o.CheckWinner() {
	case WinnerLeft:
		first, second, color = "YOU", "WON", core.RGBGreen
	case WinnerRight:
		first, second, color = "You", "Lost", core.RGBRed
	default:
		return
	}
	c.Text(first, constants.FontHuge, color, vmath.V2(w*0.3, h*0.5), render.AnchorCenter)
	c.Text(second, constants.FontHuge, color, vmath.V2(w*0.7, h*0.5), render.AnchorCenter)
	c.Text("Press 'Enter' to Continue", constants.FontPrompt, color, vmath.V2(w*0.5, h*0.7), render.AnchorCenter)
}

// arrow draws a shaft from base to tip with two barbs at barbY
func arrow(c render.Canvas, color core.RGB, x, tipY, baseY, barbY float64, w float64) {
	tip := vmath.V2(x, tipY)
	c.Line(tip, vmath.V2(x, baseY), color, constants.ArrowThickness)
	c.Line(tip, vmath.V2(x-w*0.01, barbY), color, constants.ArrowThickness)
	c.Line(tip, vmath.V2(x+w*0.01, barbY), color, constants.ArrowThickness)
}

func (o *Overlay) drawTutorial(c render.Canvas, w, h float64) {
	x := w * 0.2
	arrow(c, o.arrowBot, x, h*0.9, h*0.7, h*0.85, w)
	arrow(c, o.arrowTop, x, h*0.1, h*0.3, h*0.15, w)

	c.Text("Press 'W' or 'Up'", constants.FontTiny, o.color, vmath.V2(x, h*0.35), render.AnchorCenter)
	c.Text("Press 'S' or 'Down'", constants.FontTiny, o.color, vmath.V2(x, h*0.65), render.AnchorCenter)
}

func (o *Overlay) drawCountdown(c render.Canvas, w, h float64) {
	msg := fmt.Sprintf("Beginning in %d seconds . . .", o.tutorialTimer/constants.CountdownTickDivisor)
	c.Text(msg, constants.FontMedium, o.color, vmath.V2(w*0.3, h*0.5), render.AnchorCenter)
}

func (o *Overlay) drawSubtext(c render.Canvas, w, h float64) {
	msg := "(T) Toggle Tutorial    (M) Toggle Volume"
	if o.CheckWinner() != WinnerNone {
		msg += "    (Enter) Finish Game"
	}
	c.Text(msg, constants.FontMicro, o.color, vmath.V2(w*0.06, h*0.98), render.AnchorTopLeft)
}
