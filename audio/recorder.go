package audio

import (
	"time"

	"github.com/marklanglo/pong/core"
)

// Op names a recorded Player call
type Op string

const (
	OpSound   Op = "sound"
	OpMusic   Op = "music"
	OpPause   Op = "pause"
	OpUnpause Op = "unpause"
	OpFadeOut Op = "fadeout"
)

// Call is one recorded Player invocation
type Call struct {
	Op       Op
	Sound    core.SoundType
	Track    core.TrackID
	Loop     bool
	Duration time.Duration
}

// Recorder is a Player that records calls and tracks soundtrack state
type Recorder struct {
	Calls  []Call
	Track  core.TrackID
	Paused bool
}

func (r *Recorder) PlaySound(st core.SoundType) {
	r.Calls = append(r.Calls, Call{Op: OpSound, Sound: st})
}

func (r *Recorder) PlayMusic(track core.TrackID, loop bool, fadeIn time.Duration) {
	r.Calls = append(r.Calls, Call{Op: OpMusic, Track: track, Loop: loop, Duration: fadeIn})
	r.Track = track
	r.Paused = false
}

func (r *Recorder) PauseMusic() {
	r.Calls = append(r.Calls, Call{Op: OpPause})
	r.Paused = true
}

func (r *Recorder) UnpauseMusic() {
	r.Calls = append(r.Calls, Call{Op: OpUnpause})
	r.Paused = false
}

func (r *Recorder) FadeOutMusic(d time.Duration) {
	r.Calls = append(r.Calls, Call{Op: OpFadeOut, Duration: d})
	r.Track = core.TrackNone
}

// Count returns how many calls of op were recorded
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Last returns the most recent call and false if none
func (r *Recorder) Last() (Call, bool) {
	if len(r.Calls) == 0 {
		return Call{}, false
	}
	return r.Calls[len(r.Calls)-1], true
}

// Clear drops recorded calls, keeping soundtrack state
func (r *Recorder) Clear() {
	r.Calls = nil
}
