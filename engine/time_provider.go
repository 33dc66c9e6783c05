package engine

import "time"

// Clock is a source of monotonic time readings
type Clock interface {
	Now() time.Time
}

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// Sleep blocks the calling goroutine for d
func (p *TimeProvider) Sleep(d time.Duration) {
	time.Sleep(d)
}
