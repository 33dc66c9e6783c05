package engine

import (
	"context"
	"log"

	"github.com/marklanglo/pong/render"
)

// EventSource delivers input events that arrived since the last call, in order, without blocking
type EventSource interface {
	Drain() []Event
}

// HoldResetter is an EventSource that tracks held keys across frames
// ResetHolds forgets every hold without emitting releases, so the next scene sees fresh presses
type HoldResetter interface {
	ResetHolds()
}

// Driver runs the scene table
// Each iteration waits for the tick, feeds pending events, updates, draws and presents
type Driver struct {
	scenes  []Scene
	screen  render.Screen
	events  EventSource
	limiter *FrameLimiter
}

// NewDriver creates a driver starting at scene 0
func NewDriver(scenes []Scene, screen render.Screen, events EventSource, limiter *FrameLimiter) *Driver {
	return &Driver{
		scenes:  scenes,
		screen:  screen,
		events:  events,
		limiter: limiter,
	}
}

// Run plays scenes until one transitions outside the table or ctx is cancelled
// Returns the process exit code
func (d *Driver) Run(ctx context.Context) int {
	pos := 0
	for pos >= 0 && pos < len(d.scenes) {
		scene := d.scenes[pos]
		scene.Start()
		log.Printf("driver: scene %d started at %d fps", pos, scene.FrameRate())

		for scene.IsValid() {
			if ctx.Err() != nil {
				scene.Stop()
				log.Printf("driver: cancelled in scene %d", pos)
				return 0
			}

			d.limiter.Tick(scene.FrameRate())
			for _, ev := range d.events.Drain() {
				scene.HandleEvent(ev)
			}
			scene.Update()
			scene.Draw(d.screen)
			d.screen.Present()
		}

		next := scene.Stop()
		if r, ok := d.events.(HoldResetter); ok {
			r.ResetHolds()
		}
		log.Printf("driver: scene %d stopped, next %d", pos, next)
		pos = next
	}
	return 0
}
