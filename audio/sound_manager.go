package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/marklanglo/pong/constants"
	"github.com/marklanglo/pong/core"
)

// musicVoice is the single active soundtrack
type musicVoice struct {
	track core.TrackID
	fade  *fader
	ctrl  *beep.Ctrl
}

// release ends the voice on the next mixer pull
// A paused Ctrl never pulls its fader, so it is unpaused to let the mixer drain it
func (v *musicVoice) release() {
	v.fade.stop()
	v.ctrl.Paused = false
}

// SoundManager plays effects and soundtracks through a beep mixer
// Without a speaker the mixer is still driven by the same calls, it just is not heard
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	bank        *Bank
	mixer       *beep.Mixer
	music       *musicVoice
	initialized bool
}

// NewSoundManager creates a sound manager over a loaded bank
func NewSoundManager(cfg *AudioConfig, bank *Bank) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		config: cfg,
		bank:   bank,
		mixer:  &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts streaming the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := sm.bank.SampleRate()
	if err := speaker.Init(rate, rate.N(constants.SpeakerBufferLength)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.withSpeaker(func() {
		sm.mixer.Clear()
		sm.music = nil
	})

	if sm.initialized {
		speaker.Close()
		sm.initialized = false
	}
}

// withSpeaker runs fn holding the speaker lock when the speaker is streaming the mixer
// Caller holds sm.mu
func (sm *SoundManager) withSpeaker(fn func()) {
	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

// PlaySound mixes in a one-shot effect
func (sm *SoundManager) PlaySound(st core.SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.config.Enabled {
		return
	}

	s, err := sm.bank.Sound(st)
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}
	vol := newVolume(s, sm.config.EffectVolume*sm.config.MasterVolume)
	sm.withSpeaker(func() {
		sm.mixer.Add(vol)
	})
}

// PlayMusic replaces the current soundtrack with track, fading it in
func (sm *SoundManager) PlayMusic(track core.TrackID, loop bool, fadeIn time.Duration) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.config.Enabled {
		return
	}

	s, err := sm.bank.Track(track, loop)
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}

	fade := newFader(s, sm.bank.SampleRate().N(fadeIn))
	voice := &musicVoice{
		track: track,
		fade:  fade,
		ctrl:  &beep.Ctrl{Streamer: newVolume(fade, sm.config.MusicVolume*sm.config.MasterVolume)},
	}

	sm.withSpeaker(func() {
		if sm.music != nil {
			sm.music.release()
		}
		sm.music = voice
		sm.mixer.Add(voice.ctrl)
	})
}

// PauseMusic holds the soundtrack position
func (sm *SoundManager) PauseMusic() {
	sm.setPaused(true)
}

// UnpauseMusic resumes the soundtrack from where it was paused
func (sm *SoundManager) UnpauseMusic() {
	sm.setPaused(false)
}

func (sm *SoundManager) setPaused(paused bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.withSpeaker(func() {
		if sm.music != nil {
			sm.music.ctrl.Paused = paused
		}
	})
}

// FadeOutMusic ramps the soundtrack to silence over d, then drops it
func (sm *SoundManager) FadeOutMusic(d time.Duration) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.withSpeaker(func() {
		if sm.music == nil {
			return
		}
		if sm.music.ctrl.Paused {
			sm.music.release()
		} else {
			sm.music.fade.fadeTo(0, sm.bank.SampleRate().N(d), true)
		}
		sm.music = nil
	})
}

// CurrentTrack returns the active soundtrack and whether it is paused
func (sm *SoundManager) CurrentTrack() (core.TrackID, bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return core.TrackNone, false
	}
	return sm.music.track, sm.music.ctrl.Paused
}

// Voices returns the number of streamers in the mixer
func (sm *SoundManager) Voices() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	n := 0
	sm.withSpeaker(func() {
		n = sm.mixer.Len()
	})
	return n
}
