package audio

import (
	"fmt"
	"log"
	"os"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/marklanglo/pong/constants"
	"github.com/marklanglo/pong/core"
)

const resampleQuality = 4

// Bank holds every sound asset, loaded once at startup
// File assets are decoded into memory so replays never touch the disk
type Bank struct {
	rate   beep.SampleRate
	sounds [core.SoundTypeCount]*beep.Buffer
	tracks [core.TrackCount]*beep.Buffer
}

// LoadBank loads configured wav assets, falling back to built-in synthesis for empty paths
// Any configured asset that fails to load aborts with an error wrapping ErrAssetLoad
func LoadBank(cfg *AudioConfig) (*Bank, error) {
	b := &Bank{rate: beep.SampleRate(cfg.SampleRate)}

	if cfg.BounceSound != "" {
		buf, err := b.loadWav(cfg.BounceSound)
		if err != nil {
			return nil, err
		}
		b.sounds[core.SoundBounce] = buf
	}

	trackPaths := [...]struct {
		id   core.TrackID
		path string
	}{
		{core.TrackTitle, cfg.TitleTrack},
		{core.TrackGame, cfg.GameTrack},
	}
	for _, tp := range trackPaths {
		if tp.path == "" {
			continue
		}
		buf, err := b.loadWav(tp.path)
		if err != nil {
			return nil, err
		}
		b.tracks[tp.id] = buf
	}

	return b, nil
}

// loadWav decodes a wav file at the bank's sample rate
func (b *Bank) loadWav(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrAssetLoad, path, err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrAssetLoad, path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != b.rate {
		src = beep.Resample(resampleQuality, format.SampleRate, b.rate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: b.rate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrAssetLoad, path, err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("%w %s: no samples", ErrAssetLoad, path)
	}

	log.Printf("audio: loaded %s (%d samples)", path, buf.Len())
	return buf, nil
}

// SampleRate returns the rate every streamer from this bank plays at
func (b *Bank) SampleRate() beep.SampleRate {
	return b.rate
}

// Sound returns a fresh one-shot streamer at unity gain
func (b *Bank) Sound(st core.SoundType) (beep.Streamer, error) {
	if st < 0 || st >= core.SoundTypeCount {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSound, int(st))
	}
	if buf := b.sounds[st]; buf != nil {
		return buf.Streamer(0, buf.Len()), nil
	}
	return CreateBounceSound(b.rate), nil
}

// Track returns a fresh soundtrack streamer at unity gain
func (b *Bank) Track(id core.TrackID, loop bool) (beep.Streamer, error) {
	if id <= core.TrackNone || id >= core.TrackCount {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTrack, id)
	}

	if buf := b.tracks[id]; buf != nil {
		s := buf.Streamer(0, buf.Len())
		if loop {
			return beep.Loop(-1, s), nil
		}
		return s, nil
	}

	var gen beep.Streamer
	beat := constants.TitleTrackBeat
	switch id {
	case core.TrackTitle:
		gen = NewBeatGenerator(b.rate, beat, constants.TitleBassHz, false)
	case core.TrackGame:
		beat = constants.GameTrackBeat
		gen = NewBeatGenerator(b.rate, beat, constants.GameBassHz, true)
	}
	if !loop {
		// One pass is two bars
		return beep.Take(b.rate.N(beat)*8, gen), nil
	}
	return gen, nil
}
