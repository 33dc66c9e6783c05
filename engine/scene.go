package engine

import "github.com/marklanglo/pong/render"

// Scene is one phase of the game driven by the Driver
// Stop returns the index of the next scene, an index outside the table ends the loop
type Scene interface {
	Start()
	HandleEvent(ev Event)
	Update()
	Draw(c render.Canvas)
	Stop() int
	IsValid() bool
	FrameRate() int
}
