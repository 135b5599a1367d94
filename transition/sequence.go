package transition

import (
	"errors"
	"fmt"
	"strings"
)

// Sequence is non-empty cyclic list of transitions, slide at position i gets
// transition At(i).
type Sequence struct {
	ids []ID
}

// DefaultSequence alternates between rich and universally supported effect.
// Position 0 is never assigned, so the rich effect is stored second to land
// on the second slide.
func DefaultSequence() Sequence {
	return Sequence{ids: []ID{Fade, Morph}}
}

// NewSequence creates sequence of known transitions.
func NewSequence(ids ...ID) (Sequence, error) {
	if len(ids) == 0 {
		return Sequence{}, errors.New("transition sequence cannot be empty")
	}
	for _, id := range ids {
		if _, ok := defaultCatalog.Lookup(id); !ok {
			return Sequence{}, fmt.Errorf("unknown transition %q in sequence", id)
		}
	}
	return Sequence{ids: append([]ID(nil), ids...)}, nil
}

// ParseSequence creates sequence from transition names.
func ParseSequence(names []string) (Sequence, error) {
	ids := make([]ID, 0, len(names))
	for _, name := range names {
		id, err := ParseID(name)
		if err != nil {
			return Sequence{}, err
		}
		ids = append(ids, id)
	}
	return NewSequence(ids...)
}

// At returns transition for slide position. Zero value Sequence has nothing
// to offer and returns empty ID.
func (s Sequence) At(position int) ID {
	if len(s.ids) == 0 || position < 0 {
		return ""
	}
	return s.ids[position%len(s.ids)]
}

func (s Sequence) Len() int {
	return len(s.ids)
}

// IDs returns copy of the sequence.
func (s Sequence) IDs() []ID {
	return append([]ID(nil), s.ids...)
}

func (s Sequence) String() string {
	names := make([]string, 0, len(s.ids))
	for _, id := range s.ids {
		names = append(names, string(id))
	}
	return strings.Join(names, ",")
}
