package transition

import (
	"slices"
	"testing"
)

func TestSequence_Cyclic(t *testing.T) {
	seq := DefaultSequence()
	if seq.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", seq.Len())
	}
	want := []ID{Fade, Morph, Fade, Morph, Fade}
	for i, id := range want {
		if got := seq.At(i); got != id {
			t.Errorf("At(%d) = %s, want %s", i, got, id)
		}
	}
	// positions 1..4 get sequence[1], sequence[0], sequence[1], sequence[0]
	for i := 1; i <= 4; i++ {
		if got := seq.At(i); got != seq.IDs()[i%2] {
			t.Errorf("At(%d) = %s", i, got)
		}
	}
}

func TestDefaultSequence_SecondSlideGetsMorph(t *testing.T) {
	seq := DefaultSequence()
	if got := seq.At(1); got != Morph {
		t.Errorf("At(1) = %s, want %s", got, Morph)
	}
	if got := seq.At(2); got != Fade {
		t.Errorf("At(2) = %s, want %s", got, Fade)
	}
	if seq.String() != "fade,morph" {
		t.Errorf("String() = %q, want %q", seq.String(), "fade,morph")
	}
}

func TestSequence_Zero(t *testing.T) {
	var seq Sequence
	if got := seq.At(3); got != "" {
		t.Errorf("At() on zero sequence = %q, want empty", got)
	}
	if seq.String() != "" {
		t.Errorf("String() = %q", seq.String())
	}
}

func TestNewSequence(t *testing.T) {
	if _, err := NewSequence(); err == nil {
		t.Error("NewSequence() expected error for empty sequence")
	}
	if _, err := NewSequence(Fade, ID("spin")); err == nil {
		t.Error("NewSequence() expected error for unknown transition")
	}

	ids := []ID{Push, Wipe, Cut}
	seq, err := NewSequence(ids...)
	if err != nil {
		t.Fatalf("NewSequence() error = %v", err)
	}
	ids[0] = Zoom
	if seq.At(0) != Push {
		t.Error("sequence must not share caller slice")
	}
	if seq.String() != "push,wipe,cut" {
		t.Errorf("String() = %q", seq.String())
	}
}

func TestParseSequence(t *testing.T) {
	seq, err := ParseSequence([]string{"morph", "FADE", "push"})
	if err != nil {
		t.Fatalf("ParseSequence() error = %v", err)
	}
	if !slices.Equal(seq.IDs(), []ID{Morph, Fade, Push}) {
		t.Errorf("IDs() = %v", seq.IDs())
	}
	if _, err := ParseSequence([]string{"morph", "bogus"}); err == nil {
		t.Error("ParseSequence() expected error")
	}
	if _, err := ParseSequence(nil); err == nil {
		t.Error("ParseSequence(nil) expected error")
	}
}
