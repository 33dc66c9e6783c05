// Package config loads the game settings from TOML with environment overrides
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/marklanglo/pong/audio"
	"github.com/marklanglo/pong/constants"
)

// ErrInvalidConfig reports a setting outside its allowed range
var ErrInvalidConfig = errors.New("invalid config")

// DefaultPath is the config file read when no -config flag is given
const DefaultPath = "pong.toml"

// Config holds all tunable settings; physics is fixed in constants
type Config struct {
	Audio audio.AudioConfig `toml:"audio"`
	Input InputConfig       `toml:"input"`
	Log   LogConfig         `toml:"log"`
}

// InputConfig holds the synthesized key release windows
type InputConfig struct {
	InitialHoldMs int `toml:"initial_hold_ms"`
	RepeatHoldMs  int `toml:"repeat_hold_ms"`
}

// InitialHold returns the first-repeat window
func (c InputConfig) InitialHold() time.Duration {
	return time.Duration(c.InitialHoldMs) * time.Millisecond
}

// RepeatHold returns the window between auto-repeats
func (c InputConfig) RepeatHold() time.Duration {
	return time.Duration(c.RepeatHoldMs) * time.Millisecond
}

// LogConfig controls the debug log file
type LogConfig struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Audio: *audio.DefaultAudioConfig(),
		Input: InputConfig{
			InitialHoldMs: int(constants.KeyInitialHold / time.Millisecond),
			RepeatHoldMs:  int(constants.KeyRepeatHold / time.Millisecond),
		},
		Log: LogConfig{Dir: "logs"},
	}
}

// Load reads path over the defaults, applies environment overrides and validates
// A missing file is an error only when explicit is set
func Load(path string, explicit bool) (*Config, error) {
	cfg := Default()

	if path != "" {
		meta, err := toml.DecodeFile(path, cfg)
		switch {
		case err == nil:
			if undecoded := meta.Undecoded(); len(undecoded) > 0 {
				return nil, fmt.Errorf("%w: unknown key %s in %s", ErrInvalidConfig, undecoded[0], path)
			}
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Audio = *audio.LoadAudioConfig(&c.Audio)

	if debug := os.Getenv("PONG_DEBUG"); debug != "" {
		if val, err := strconv.ParseBool(debug); err == nil {
			c.Log.Debug = val
		}
	}
}

// Validate rejects out of range settings
func (c *Config) Validate() error {
	volumes := []struct {
		name string
		v    float64
	}{
		{"master_volume", c.Audio.MasterVolume},
		{"effect_volume", c.Audio.EffectVolume},
		{"music_volume", c.Audio.MusicVolume},
	}
	for _, vol := range volumes {
		if vol.v < 0 || vol.v > 1 {
			return fmt.Errorf("%w: audio.%s %v outside [0, 1]", ErrInvalidConfig, vol.name, vol.v)
		}
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: audio.sample_rate %d", ErrInvalidConfig, c.Audio.SampleRate)
	}
	if c.Input.InitialHoldMs <= 0 || c.Input.RepeatHoldMs <= 0 {
		return fmt.Errorf("%w: input hold windows must be positive", ErrInvalidConfig)
	}
	return nil
}

// Write encodes the config as TOML
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
