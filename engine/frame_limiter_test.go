package engine

import (
	"testing"
	"time"
)

func newTestLimiter() (*FrameLimiter, *MockTimeProvider) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewFrameLimiter(mock), mock
}

// TestFrameLimiterFirstTick verifies the first tick never waits
func TestFrameLimiterFirstTick(t *testing.T) {
	fl, mock := newTestLimiter()

	if elapsed := fl.Tick(120); elapsed != 0 {
		t.Errorf("First tick elapsed = %v, want 0", elapsed)
	}
	if mock.Slept() != 0 {
		t.Errorf("First tick slept %v", mock.Slept())
	}
	if fl.Frames() != 1 {
		t.Errorf("Frames = %d, want 1", fl.Frames())
	}
}

// TestFrameLimiterPacing verifies the limiter sleeps the remainder of each frame
func TestFrameLimiterPacing(t *testing.T) {
	tests := []struct {
		name  string
		fps   int
		work  time.Duration
		sleep time.Duration
	}{
		{"IdleTitle", 2, 0, 500 * time.Millisecond},
		{"BusyTitle", 2, 200 * time.Millisecond, 300 * time.Millisecond},
		{"Game", 120, time.Millisecond, time.Second/120 - time.Millisecond},
		{"Overrun", 120, 20 * time.Millisecond, 0},
		{"Unlimited", 0, 5 * time.Millisecond, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fl, mock := newTestLimiter()
			fl.Tick(tc.fps)

			mock.Advance(tc.work)
			elapsed := fl.Tick(tc.fps)

			if mock.Slept() != tc.sleep {
				t.Errorf("Slept %v, want %v", mock.Slept(), tc.sleep)
			}
			if want := tc.work + tc.sleep; elapsed != want {
				t.Errorf("Elapsed %v, want %v", elapsed, want)
			}
		})
	}
}

// TestFrameLimiterRateChange verifies a new rate applies from the next tick
func TestFrameLimiterRateChange(t *testing.T) {
	fl, mock := newTestLimiter()

	fl.Tick(2)
	fl.Tick(2)
	before := mock.Slept()

	fl.Tick(120)
	if got := mock.Slept() - before; got != time.Second/120 {
		t.Errorf("Slept %v after rate change, want %v", got, time.Second/120)
	}
}
