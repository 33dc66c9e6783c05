package scenes

import (
	"github.com/marklanglo/pong/audio"
	"github.com/marklanglo/pong/constants"
	"github.com/marklanglo/pong/core"
	"github.com/marklanglo/pong/engine"
	"github.com/marklanglo/pong/render"
	"github.com/marklanglo/pong/vmath"
)

const gameTitle = "Wowee, PONG"

var titleInstructions = [...]string{
	"Win by being the first paddle to reach 3 points",
	"by using 'W' and 'S', or the arrow keys,",
	"to hit the ball past the other paddle",
}

// TitleScene shows the title until any key is pressed
type TitleScene struct {
	base
	surface render.Surface
	flasher bool
}

// NewTitleScene creates the title screen
func NewTitleScene(surface render.Surface, player audio.Player) *TitleScene {
	return &TitleScene{
		base: base{
			player:     player,
			background: core.RGBPink,
			frameRate:  constants.TitleFrameRate,
			track:      core.TrackTitle,
		},
		surface: surface,
	}
}

func (s *TitleScene) Start() {
	s.start(SceneGame)
	s.flasher = false
}

func (s *TitleScene) HandleEvent(ev engine.Event) {
	if s.handleEscape(ev) {
		return
	}
	if ev.Type == engine.EventKeyDown {
		s.valid = false
	}
}

// Update alternates the prompt colour every frame
func (s *TitleScene) Update() {
	s.flasher = !s.flasher
}

func (s *TitleScene) Draw(c render.Canvas) {
	w, h := s.surface.Size()
	s.drawBackground(c)

	c.Text(gameTitle, constants.FontHuge, core.RGBDarkMoss, vmath.V2(w*0.5, h*0.5), render.AnchorCenter)

	prompt := core.RGBWhite
	if s.flasher {
		prompt = core.RGBDimBlue
	}
	c.Text("Press any button to continue. . .", constants.FontLarge, prompt, vmath.V2(w*0.5, h/1.5), render.AnchorCenter)
	c.Text("Use 'Escape' at any time to close the Game", constants.FontNormal, prompt, vmath.V2(w*0.5, h/1.4), render.AnchorCenter)

	for i, line := range titleInstructions {
		y := h * (0.8 + 0.04*float64(i))
		c.Text(line, constants.FontNormal, core.RGBWhite, vmath.V2(w*0.5, y), render.AnchorCenter)
	}
}

func (s *TitleScene) Stop() int {
	return s.stop()
}
