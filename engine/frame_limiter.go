package engine

import "time"

// Sleeper is a Clock that can block until time has passed
type Sleeper interface {
	Clock
	Sleep(d time.Duration)
}

// FrameLimiter paces a loop to a target frame rate
// Tick waits out the remainder of the frame measured from the previous tick
type FrameLimiter struct {
	clock  Sleeper
	last   time.Time
	frames uint64
}

// NewFrameLimiter creates a limiter over clock
func NewFrameLimiter(clock Sleeper) *FrameLimiter {
	return &FrameLimiter{clock: clock}
}

// Tick blocks until 1/fps has passed since the previous tick and returns the elapsed time
// The first tick returns immediately, fps <= 0 never waits
func (f *FrameLimiter) Tick(fps int) time.Duration {
	now := f.clock.Now()
	f.frames++

	if f.last.IsZero() {
		f.last = now
		return 0
	}

	if fps > 0 {
		frame := time.Second / time.Duration(fps)
		if wait := frame - now.Sub(f.last); wait > 0 {
			f.clock.Sleep(wait)
			now = f.clock.Now()
		}
	}

	elapsed := now.Sub(f.last)
	f.last = now
	return elapsed
}

// Frames returns the number of ticks taken
func (f *FrameLimiter) Frames() uint64 {
	return f.frames
}
