package engine

// EventType distinguishes key presses from releases
type EventType int

const (
	EventKeyDown EventType = iota
	EventKeyUp
)

func (t EventType) String() string {
	if t == EventKeyUp {
		return "keyup"
	}
	return "keydown"
}

// Key is the logical key identity seen by scenes
type Key int

const (
	KeyOther Key = iota
	KeyW
	KeyS
	KeyArrowUp
	KeyArrowDown
	KeyEnter
	KeyEscape
	KeyM
	KeyT
)

var keyNames = [...]string{"other", "w", "s", "up", "down", "enter", "escape", "m", "t"}

func (k Key) String() string {
	if int(k) >= 0 && int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "other"
}

// IsMovement reports whether the key steers the human paddle
func (k Key) IsMovement() bool {
	return k == KeyW || k == KeyS || k == KeyArrowUp || k == KeyArrowDown
}

// IsUpward reports whether a movement key steers up
func (k Key) IsUpward() bool {
	return k == KeyW || k == KeyArrowUp
}

// Event is one key transition, delivered in occurrence order
type Event struct {
	Type EventType
	Key  Key
}

// KeyDown builds a press event
func KeyDown(k Key) Event {
	return Event{Type: EventKeyDown, Key: k}
}

// KeyUp builds a release event
func KeyUp(k Key) Event {
	return Event{Type: EventKeyUp, Key: k}
}
