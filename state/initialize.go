package state

import (
	"time"

	"slidefx/transition"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start:    time.Now(),
		Catalog:  transition.Default(),
		Sequence: transition.DefaultSequence(),
	}
}
