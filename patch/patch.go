// Package patch runs the whole transition pipeline over a presentation
// package: load, locate slides, inject, serialize.
package patch

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"slidefx/archive"
	"slidefx/inject"
	"slidefx/slides"
	"slidefx/transition"
)

// Options for a single run.
type Options struct {
	Sequence  transition.Sequence
	Catalog   *transition.Catalog // nil means transition.Default()
	Serialize archive.SerializeOptions
	// FixZip removes data descriptors from the result.
	FixZip bool
	// Strict parses every slide before modifying it.
	Strict bool
}

// DefaultOptions returns options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Sequence:  transition.DefaultSequence(),
		Serialize: archive.DefaultSerializeOptions,
	}
}

// Result of a single run.
type Result struct {
	State    State
	Slides   []slides.Slide
	Applied  []inject.Applied
	Warnings []*inject.SlideMutationWarning
}

// Process adds transitions to every slide but the first one. Output is always
// usable: on any fatal problem input itself is returned together with the
// error and result in StateFailed. Problems with individual slides are never
// fatal, they are listed in result warnings.
func Process(ctx context.Context, input []byte, opts Options, log *zap.Logger) ([]byte, *Result, error) {
	res := &Result{State: StateFailed}

	fail := func(err error) ([]byte, *Result, error) {
		res.State = StateFailed
		log.Debug("Pipeline failed, returning original input", zap.Error(err))
		return input, res, err
	}

	defer func(start time.Time) {
		log.Debug("Pipeline finished", zap.Stringer("state", res.State), zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	pkg, err := archive.Load(input)
	if err != nil {
		return fail(err)
	}
	res.State = StateLoaded
	log.Debug("Package loaded", zap.Int("entries", len(pkg.Entries())))

	if res.Slides, err = slides.Find(pkg); err != nil {
		return fail(err)
	}
	res.State = StateLocated
	log.Debug("Slides located", zap.Int("slides", len(res.Slides)))

	catalog := opts.Catalog
	if catalog == nil {
		catalog = transition.Default()
	}

	res.State = StateInjecting
	log.Debug("Injecting transitions", zap.Stringer("sequence", opts.Sequence), zap.Bool("strict", opts.Strict))
	ir, err := inject.New(catalog, opts.Sequence, opts.Strict, log).Run(ctx, pkg, slides.Paths(res.Slides))
	if ir != nil {
		res.Applied, res.Warnings = ir.Applied, ir.Warnings
	}
	if err != nil {
		return fail(fmt.Errorf("injection interrupted: %w", err))
	}

	out, err := pkg.Serialize(opts.Serialize)
	if err != nil {
		return fail(err)
	}
	if opts.FixZip {
		if out, err = archive.StripDataDescriptors(out); err != nil {
			return fail(err)
		}
	}
	res.State = StateSerialized

	log.Info("Transitions added",
		zap.Int("slides", len(res.Slides)),
		zap.Int("applied", len(res.Applied)),
		zap.Int("skipped", len(res.Warnings)),
		zap.Stringer("sequence", opts.Sequence))
	return out, res, nil
}
