package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundBounce SoundType = iota // Ball off a paddle
	SoundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundBounce:
		return "bounce"
	default:
		return "unknown"
	}
}
