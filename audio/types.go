package audio

import (
	"errors"
	"time"

	"github.com/marklanglo/pong/core"
)

// Player is the audio device contract consumed by the game
// All calls are fire-and-forget; at most one soundtrack plays at a time
type Player interface {
	PlaySound(st core.SoundType)
	PlayMusic(track core.TrackID, loop bool, fadeIn time.Duration)
	PauseMusic()
	UnpauseMusic()
	FadeOutMusic(d time.Duration)
}

// Sentinel errors
var (
	ErrAssetLoad    = errors.New("cannot open audio asset")
	ErrUnknownTrack = errors.New("unknown soundtrack")
	ErrUnknownSound = errors.New("unknown sound effect")
)

// Silent is a Player that discards everything
type Silent struct{}

func (Silent) PlaySound(core.SoundType)                    {}
func (Silent) PlayMusic(core.TrackID, bool, time.Duration) {}
func (Silent) PauseMusic()                                 {}
func (Silent) UnpauseMusic()                               {}
func (Silent) FadeOutMusic(time.Duration)                  {}
