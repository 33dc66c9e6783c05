package scenes

import (
	"log"

	"github.com/google/uuid"
	"github.com/marklanglo/pong/audio"
	"github.com/marklanglo/pong/constants"
	"github.com/marklanglo/pong/core"
	"github.com/marklanglo/pong/engine"
	"github.com/marklanglo/pong/entities"
	"github.com/marklanglo/pong/render"
	"github.com/marklanglo/pong/vmath"
)

// GameScene plays one match of human against computer
// Every Start builds a fresh ball, paddles and scoreboard
type GameScene struct {
	base
	surface render.Surface
	rng     entities.Rand

	matchID    uuid.UUID
	ball       *entities.Ball
	left       *entities.Paddle
	right      *entities.OpponentAI
	overlay    *entities.Overlay
	finishable bool
}

// NewGameScene creates the match scene, rng drives the opponent's tracking error
func NewGameScene(surface render.Surface, player audio.Player, rng entities.Rand) *GameScene {
	g := &GameScene{
		base: base{
			player:     player,
			background: core.RGBBlack,
			frameRate:  constants.GameFrameRate,
			track:      core.TrackGame,
		},
		surface: surface,
		rng:     rng,
	}
	g.build()
	return g
}

func (g *GameScene) build() {
	w, h := g.surface.Size()
	g.left = entities.NewPaddle(g.surface, constants.PaddleLeftX)
	g.right = entities.NewOpponentAI(g.surface, w-constants.PaddleRightInset, g.rng)
	g.ball = entities.NewBall(g.surface, [2]entities.Collider{g.left, g.right}, g.player, vmath.V2(w/2, h/2))
	g.overlay = entities.NewOverlay(g.surface)
	g.finishable = false
}

func (g *GameScene) MatchID() uuid.UUID          { return g.matchID }
func (g *GameScene) Ball() *entities.Ball        { return g.ball }
func (g *GameScene) Left() *entities.Paddle      { return g.left }
func (g *GameScene) Right() *entities.OpponentAI { return g.right }
func (g *GameScene) Overlay() *entities.Overlay  { return g.overlay }

// MatchCode returns the first block of the match id, empty before the first match
func (g *GameScene) MatchCode() string {
	if g.matchID == uuid.Nil {
		return ""
	}
	return g.matchID.String()[:constants.MatchCodeLength]
}

func (g *GameScene) Start() {
	g.start(SceneTitle)
	g.build()
	g.matchID = uuid.New()
	log.Printf("game: match %s started", g.matchID)
}

// HandleEvent routes keys: Enter once decided, M mutes, T tutorial, movement to the human paddle
func (g *GameScene) HandleEvent(ev engine.Event) {
	if g.handleEscape(ev) {
		return
	}
	if ev.Type == engine.EventKeyUp {
		g.left.Move(ev)
		return
	}

	switch {
	case ev.Key == engine.KeyEnter && g.finishable:
		g.valid = false
	case ev.Key == engine.KeyM:
		g.ball.ToggleSfx()
		g.toggleSoundtrack()
	case ev.Key == engine.KeyT:
		g.overlay.ToggleTutorial()
	case ev.Key.IsMovement():
		g.left.Move(ev)
	}
}

// Update steps ball, paddles and scoreboard in that order, then picks the result scene
func (g *GameScene) Update() {
	g.ball.Update()
	g.left.Update()
	g.right.Update(g.ball)

	l0, r0 := g.overlay.Scores()
	g.overlay.Update(g.ball)
	if l, r := g.overlay.Scores(); l != l0 || r != r0 {
		log.Printf("game: match %s: left %d - %d right", g.matchID, l, r)
	}

	winner := g.overlay.CheckWinner()
	if winner == entities.WinnerNone {
		return
	}
	if !g.finishable {
		log.Printf("game: match %s won by %s", g.matchID, winner)
		g.finishable = true
	}
	if g.next == SceneExit {
		return
	}
	if winner == entities.WinnerLeft {
		g.next = SceneWin
	} else {
		g.next = SceneLose
	}
}

// Draw layers background, HUD, ball and paddles
func (g *GameScene) Draw(c render.Canvas) {
	g.drawBackground(c)
	g.overlay.Draw(c)
	g.ball.Draw(c)
	g.left.Draw(c)
	g.right.Draw(c)
}

func (g *GameScene) Stop() int {
	return g.stop()
}
