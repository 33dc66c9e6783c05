package scenes

import (
	"github.com/marklanglo/pong/audio"
	"github.com/marklanglo/pong/constants"
	"github.com/marklanglo/pong/core"
	"github.com/marklanglo/pong/engine"
	"github.com/marklanglo/pong/entities"
	"github.com/marklanglo/pong/render"
)

// Scene table indices, SceneExit is one past the last scene
const (
	SceneTitle = iota
	SceneGame
	SceneWin
	SceneLose
	SceneExit
)

// base holds the lifecycle state shared by every scene
type base struct {
	player     audio.Player
	background core.RGB
	frameRate  int
	track      core.TrackID
	valid      bool
	musicOn    bool
	next       int
}

func (b *base) IsValid() bool  { return b.valid }
func (b *base) FrameRate() int { return b.frameRate }

// Next returns the transition target chosen so far
func (b *base) Next() int { return b.next }

// MusicOn reports whether the soundtrack is playing or paused
func (b *base) MusicOn() bool { return b.musicOn }

func (b *base) Update() {}

// start revalidates the scene and fades its soundtrack in
func (b *base) start(next int) {
	b.valid = true
	b.musicOn = true
	b.next = next
	if b.track != core.TrackNone {
		b.player.PlayMusic(b.track, true, constants.MusicFadeIn)
	}
}

// stop releases the soundtrack, a paused one is resumed so it can fade out
func (b *base) stop() int {
	b.player.UnpauseMusic()
	b.player.FadeOutMusic(constants.MusicFadeOut)
	return b.next
}

// handleEscape ends the scene toward exit on an Escape press
func (b *base) handleEscape(ev engine.Event) bool {
	if ev.Type == engine.EventKeyDown && ev.Key == engine.KeyEscape {
		b.valid = false
		b.next = SceneExit
		return true
	}
	return false
}

func (b *base) toggleSoundtrack() {
	b.musicOn = !b.musicOn
	if b.musicOn {
		b.player.UnpauseMusic()
	} else {
		b.player.PauseMusic()
	}
}

func (b *base) drawBackground(c render.Canvas) {
	c.Fill(b.background)
}

// Build returns the scene table in index order
func Build(surface render.Surface, player audio.Player, rng entities.Rand) []engine.Scene {
	if player == nil {
		player = audio.Silent{}
	}
	game := NewGameScene(surface, player, rng)
	win, lose := NewWinScene(surface, player), NewLoseScene(surface, player)
	win.match, lose.match = game.MatchCode, game.MatchCode
	return []engine.Scene{
		SceneTitle: NewTitleScene(surface, player),
		SceneGame:  game,
		SceneWin:   win,
		SceneLose:  lose,
	}
}
