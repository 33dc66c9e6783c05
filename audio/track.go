package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/marklanglo/pong/constants"
)

// beatGenerator is an endless kick-and-bass loop used as a built-in soundtrack
type beatGenerator struct {
	sr         beep.SampleRate
	pos        int
	beat       int
	kick       int
	bassHz     float64
	arpeggiate bool
}

// NewBeatGenerator creates a soundtrack generator with one kick per beat
// With arpeggiate the bass walks root, fifth, octave, fifth across a bar
func NewBeatGenerator(sr beep.SampleRate, beat time.Duration, bassHz float64, arpeggiate bool) beep.Streamer {
	return &beatGenerator{
		sr:         sr,
		beat:       sr.N(beat),
		kick:       sr.N(constants.KickLength),
		bassHz:     bassHz,
		arpeggiate: arpeggiate,
	}
}

var arpeggio = [4]float64{1, 1.5, 2, 1.5}

func (g *beatGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := g.pos % g.beat
		t := float64(beatPos) / float64(g.sr)

		// Kick drum on every beat
		kick := 0.0
		if beatPos < g.kick {
			kickEnv := 1.0 - float64(beatPos)/float64(g.kick)
			kickFreq := 60 * (1 + 2*kickEnv)
			kick = 0.4 * kickEnv * math.Sin(2*math.Pi*kickFreq*t)
		}

		freq := g.bassHz
		if g.arpeggiate {
			freq *= arpeggio[(g.pos/g.beat)%len(arpeggio)]
		}
		bass := 0.15 * math.Sin(2*math.Pi*freq*float64(g.pos)/float64(g.sr))

		sample := kick + bass
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *beatGenerator) Err() error {
	return nil
}

// fader applies a linear gain ramp and can end its stream once silent
type fader struct {
	streamer  beep.Streamer
	gain      float64
	target    float64
	step      float64
	remaining int
	drop      bool
	done      bool
}

// newFader starts at zero gain and ramps to unity over fadeIn samples, or starts at unity
func newFader(s beep.Streamer, fadeIn int) *fader {
	f := &fader{streamer: s, gain: 1, target: 1}
	if fadeIn > 0 {
		f.gain = 0
		f.step = 1 / float64(fadeIn)
		f.remaining = fadeIn
	}
	return f
}

// fadeTo ramps to target over n samples; with drop the stream ends when it reaches zero
func (f *fader) fadeTo(target float64, n int, drop bool) {
	f.target = target
	f.drop = drop
	if n <= 0 {
		f.gain = target
		f.remaining = 0
		return
	}
	f.step = (target - f.gain) / float64(n)
	f.remaining = n
}

// stop ends the stream on the next pull
func (f *fader) stop() {
	f.done = true
}

func (f *fader) Stream(samples [][2]float64) (n int, ok bool) {
	if f.done {
		return 0, false
	}
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if f.remaining > 0 {
			f.gain += f.step
			f.remaining--
			if f.remaining == 0 {
				f.gain = f.target
			}
		}
		samples[i][0] *= f.gain
		samples[i][1] *= f.gain
	}
	if f.drop && f.remaining == 0 && f.gain <= 0 {
		f.done = true
	}
	return n, ok
}

func (f *fader) Err() error { return f.streamer.Err() }
