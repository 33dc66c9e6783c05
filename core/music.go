package core

// TrackID identifies a scene soundtrack
type TrackID int

const (
	TrackNone  TrackID = iota
	TrackTitle         // Title, win and lose screens
	TrackGame          // Match in progress
	TrackCount
)

func (t TrackID) String() string {
	names := [...]string{"none", "title", "game"}
	if int(t) >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "unknown"
}
