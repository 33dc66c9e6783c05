package audio

import (
	"os"
	"strconv"

	"github.com/marklanglo/pong/constants"
)

// AudioConfig holds mix levels and asset locations
// Empty asset paths select the built-in synthesized assets
type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	SampleRate   int     `toml:"sample_rate"`
	MasterVolume float64 `toml:"master_volume"`
	EffectVolume float64 `toml:"effect_volume"`
	MusicVolume  float64 `toml:"music_volume"`
	BounceSound  string  `toml:"bounce_sound"`
	TitleTrack   string  `toml:"title_track"`
	GameTrack    string  `toml:"game_track"`
}

// DefaultAudioConfig returns the built-in mix at the original levels
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		SampleRate:   constants.DefaultSampleRate,
		MasterVolume: 1.0,
		EffectVolume: constants.BounceVolume,
		MusicVolume:  constants.MusicVolume,
	}
}

// LoadAudioConfig applies environment overrides on top of base (defaults when nil)
func LoadAudioConfig(base *AudioConfig) *AudioConfig {
	cfg := DefaultAudioConfig()
	if base != nil {
		c := *base
		cfg = &c
	}

	// Check if audio is enabled
	if enabled := os.Getenv("PONG_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Load master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv("PONG_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}

	// Load sample rate
	if sampleRate := os.Getenv("PONG_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
