package input

import (
	"time"

	"github.com/marklanglo/pong/engine"
)

// hold is the release deadline of one held movement key
type hold struct {
	held     bool
	deadline time.Time
}

// HoldTracker synthesizes key releases for terminals that only report presses
// A movement key stays down while auto-repeat presses keep arriving inside the hold window
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration
	holds   [engine.KeyT + 1]hold
	pending []engine.Event
}

// movementKeys fixes the release order when several holds expire together
var movementKeys = [...]engine.Key{engine.KeyW, engine.KeyS, engine.KeyArrowUp, engine.KeyArrowDown}

// NewHoldTracker creates a tracker with the first-repeat and repeat windows
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		initial: initial,
		repeat:  repeat,
	}
}

// Press records a key press observed at now
func (h *HoldTracker) Press(k engine.Key, now time.Time) {
	if !k.IsMovement() {
		h.pending = append(h.pending, engine.KeyDown(k), engine.KeyUp(k))
		return
	}

	// Opposite direction wins immediately
	for _, other := range movementKeys {
		if h.holds[other].held && other.IsUpward() != k.IsUpward() {
			h.release(other)
		}
	}

	st := &h.holds[k]
	if st.held {
		st.deadline = now.Add(h.repeat)
		return
	}
	st.held = true
	st.deadline = now.Add(h.initial)
	h.pending = append(h.pending, engine.KeyDown(k))
}

// Expire releases every held key whose window closed before now
func (h *HoldTracker) Expire(now time.Time) {
	for _, k := range movementKeys {
		st := &h.holds[k]
		if st.held && !now.Before(st.deadline) {
			h.release(k)
		}
	}
}

// ReleaseAll emits releases for every held key
func (h *HoldTracker) ReleaseAll() {
	for _, k := range movementKeys {
		if h.holds[k].held {
			h.release(k)
		}
	}
}

// Held reports whether k is currently considered down
func (h *HoldTracker) Held(k engine.Key) bool {
	if !k.IsMovement() {
		return false
	}
	return h.holds[k].held
}

// Flush returns pending events in occurrence order and clears them
func (h *HoldTracker) Flush() []engine.Event {
	out := h.pending
	h.pending = nil
	return out
}

func (h *HoldTracker) release(k engine.Key) {
	h.holds[k] = hold{}
	h.pending = append(h.pending, engine.KeyUp(k))
}
