package scenes

import (
	"github.com/marklanglo/pong/audio"
	"github.com/marklanglo/pong/constants"
	"github.com/marklanglo/pong/core"
	"github.com/marklanglo/pong/engine"
	"github.com/marklanglo/pong/render"
	"github.com/marklanglo/pong/vmath"
)

// ResultScene announces the match outcome and waits for Enter or Escape
type ResultScene struct {
	base
	surface  render.Surface
	title    string
	subtitle string
	text     core.RGB
	match    func() string
}

// NewWinScene creates the screen shown after the human wins
func NewWinScene(surface render.Surface, player audio.Player) *ResultScene {
	return newResultScene(surface, player, core.RGBCyan, core.RGBBlack,
		"YOU WON!", "Press 'ENTER' to play again, or 'ESC' to exit")
}

// NewLoseScene creates the screen shown after the computer wins
func NewLoseScene(surface render.Surface, player audio.Player) *ResultScene {
	return newResultScene(surface, player, core.RGBRed, core.RGBWhite,
		"You Lost", "...but you can try again by pressing 'ENTER', or 'ESC' if you want to exit")
}

func newResultScene(surface render.Surface, player audio.Player, bg, text core.RGB, title, subtitle string) *ResultScene {
	return &ResultScene{
		base: base{
			player:     player,
			background: bg,
			frameRate:  constants.ResultFrameRate,
			track:      core.TrackTitle,
		},
		surface:  surface,
		title:    title,
		subtitle: subtitle,
		text:     text,
	}
}

// Title returns the banner text
func (s *ResultScene) Title() string { return s.title }

func (s *ResultScene) matchCode() string {
	if s.match == nil {
		return ""
	}
	return s.match()
}

func (s *ResultScene) Start() {
	s.start(SceneExit)
}

func (s *ResultScene) HandleEvent(ev engine.Event) {
	if s.handleEscape(ev) {
		return
	}
	if ev.Type == engine.EventKeyDown && ev.Key == engine.KeyEnter {
		s.valid = false
		s.next = SceneTitle
	}
}

func (s *ResultScene) Draw(c render.Canvas) {
	w, h := s.surface.Size()
	s.drawBackground(c)
	c.Text(s.title, constants.FontHuge, s.text, vmath.V2(w*0.5, h*0.5), render.AnchorCenter)
	c.Text(s.subtitle, constants.FontSmall, s.text, vmath.V2(w*0.5, h*0.6), render.AnchorCenter)
	if code := s.matchCode(); code != "" {
		c.Text("match "+code, constants.FontTiny, s.text, vmath.V2(w*0.5, h*0.9), render.AnchorCenter)
	}
}

func (s *ResultScene) Stop() int {
	return s.stop()
}
