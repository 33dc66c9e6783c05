package constants

import "time"

// Mix levels used by the original cabinet
const (
	BounceVolume = 0.2
	MusicVolume  = 0.1
)

// Bounce sound timing
const (
	BounceSoundDuration = 90 * time.Millisecond
	BounceSoundAttack   = 3 * time.Millisecond
	BounceSoundRelease  = 60 * time.Millisecond
	BounceFrequencyHz   = 440.0
)

// Built-in soundtrack
const (
	TitleTrackBeat = 750 * time.Millisecond
	GameTrackBeat  = 500 * time.Millisecond
	TitleBassHz    = 110.0
	GameBassHz     = 82.41
	KickLength     = 100 * time.Millisecond
)

// Speaker
const (
	DefaultSampleRate   = 44100
	SpeakerBufferLength = 100 * time.Millisecond
)
