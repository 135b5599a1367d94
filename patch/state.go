package patch

import "fmt"

// State is the stage pipeline reached.
type State int

const (
	StateLoaded State = iota
	StateLocated
	StateInjecting
	StateSerialized
	StateFailed
)

var stateNames = [...]string{
	StateLoaded:     "loaded",
	StateLocated:    "located",
	StateInjecting:  "injecting",
	StateSerialized: "serialized",
	StateFailed:     "failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}
