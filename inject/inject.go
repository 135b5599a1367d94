// Package inject puts transition markup into slide parts.
package inject

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"slidefx/transition"
)

// Reason tells why slide was left unmodified.
type Reason int

const (
	ReasonUnreadable Reason = iota
	ReasonAlreadyPresent
	ReasonUnknownTransition
	ReasonNoClosingMarker
	ReasonMalformed
	ReasonFailed
)

var reasonNames = [...]string{
	ReasonUnreadable:        "unreadable",
	ReasonAlreadyPresent:    "already-present",
	ReasonUnknownTransition: "unknown-transition",
	ReasonNoClosingMarker:   "no-closing-marker",
	ReasonMalformed:         "malformed",
	ReasonFailed:            "failed",
}

func (r Reason) String() string {
	if r < 0 || int(r) >= len(reasonNames) {
		return fmt.Sprintf("Reason(%d)", int(r))
	}
	return reasonNames[r]
}

// SlideMutationWarning describes slide which was skipped. It is never fatal.
type SlideMutationWarning struct {
	Path     string
	Position int
	Reason   Reason
	Err      error
}

func (w *SlideMutationWarning) Error() string {
	if w.Err != nil {
		return fmt.Sprintf("slide %s (position %d) left unmodified, %s: %v", w.Path, w.Position, w.Reason, w.Err)
	}
	return fmt.Sprintf("slide %s (position %d) left unmodified, %s", w.Path, w.Position, w.Reason)
}

func (w *SlideMutationWarning) Unwrap() error {
	return w.Err
}

// Applied describes slide which received transition.
type Applied struct {
	Path       string
	Position   int
	Transition transition.ID
}

// Result of a single run.
type Result struct {
	Applied  []Applied
	Warnings []*SlideMutationWarning
}

// Store gives access to slide text, satisfied by archive.Package.
type Store interface {
	ReadText(name string) (string, error)
	WriteText(name, text string) error
}

// Injector assigns transitions to slides by position.
type Injector struct {
	catalog  *transition.Catalog
	sequence transition.Sequence
	strict   bool
	log      *zap.Logger
}

// New creates injector. Catalog is never modified and could be shared.
func New(catalog *transition.Catalog, seq transition.Sequence, strict bool, log *zap.Logger) *Injector {
	return &Injector{
		catalog:  catalog,
		sequence: seq,
		strict:   strict,
		log:      log,
	}
}

// Run processes ordered slide paths one by one. First slide is never touched
// - there is nothing to transition from. Problems with a single slide are
// reported in result, error is only returned when context is canceled.
func (inj *Injector) Run(ctx context.Context, store Store, paths []string) (*Result, error) {
	res := &Result{}
	for i := 1; i < len(paths); i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		applied, warn := inj.slide(store, paths[i], i)
		if warn != nil {
			res.Warnings = append(res.Warnings, warn)
			if warn.Reason == ReasonAlreadyPresent {
				inj.log.Debug("Slide already has transition", zap.String("slide", warn.Path), zap.Int("position", i))
			} else {
				inj.log.Warn("Slide left unmodified", zap.String("slide", warn.Path), zap.Int("position", i),
					zap.Stringer("reason", warn.Reason), zap.Error(warn.Err))
			}
			continue
		}
		res.Applied = append(res.Applied, applied)
		inj.log.Debug("Transition added", zap.String("slide", applied.Path), zap.Int("position", i), zap.Stringer("transition", applied.Transition))
	}
	return res, nil
}

func (inj *Injector) slide(store Store, path string, position int) (applied Applied, warn *SlideMutationWarning) {
	skip := func(reason Reason, err error) (Applied, *SlideMutationWarning) {
		return Applied{}, &SlideMutationWarning{Path: path, Position: position, Reason: reason, Err: err}
	}

	// single broken slide must not abort the whole deck
	defer func() {
		if r := recover(); r != nil {
			applied, warn = skip(ReasonFailed, fmt.Errorf("panic: %v", r))
		}
	}()

	text, err := store.ReadText(path)
	if err != nil {
		return skip(ReasonUnreadable, err)
	}
	if strings.Contains(text, transition.Marker) {
		return skip(ReasonAlreadyPresent, nil)
	}

	id := inj.sequence.At(position)
	def, ok := inj.catalog.Lookup(id)
	if !ok {
		return skip(ReasonUnknownTransition, fmt.Errorf("transition %q is not in catalog", id))
	}

	text, err = Insert(text, def.Markup, inj.strict)
	switch {
	case errors.Is(err, ErrNoClosingMarker):
		return skip(ReasonNoClosingMarker, err)
	case errors.Is(err, ErrMalformed):
		return skip(ReasonMalformed, err)
	case err != nil:
		return skip(ReasonFailed, err)
	}

	if err := store.WriteText(path, text); err != nil {
		return skip(ReasonFailed, err)
	}
	return Applied{Path: path, Position: position, Transition: id}, nil
}
