package patch

import (
	"context"

	"go.uber.org/zap"

	"slidefx/archive"
	"slidefx/inject"
	"slidefx/slides"
	"slidefx/transition"
)

// Step is planned outcome for a single slide.
type Step struct {
	slides.Slide
	Position   int
	Transition transition.ID // empty when slide is left as is
	Skip       *inject.SlideMutationWarning
}

// Plan describes what Process would do with the package.
type Plan struct {
	Entries int
	Steps   []Step
}

// dryStore lets injector run over package without changing it.
type dryStore struct {
	pkg *archive.Package
}

func (s dryStore) ReadText(name string) (string, error) {
	return s.pkg.ReadText(name)
}

func (s dryStore) WriteText(name string, _ string) error {
	if !s.pkg.Has(name) {
		return &archive.EntryNotFoundError{Path: name}
	}
	return nil
}

// Inspect performs dry run: package is loaded and every slide is checked, but
// nothing is serialized.
func Inspect(ctx context.Context, input []byte, opts Options, log *zap.Logger) (*Plan, error) {
	pkg, err := archive.Load(input)
	if err != nil {
		return nil, err
	}

	found, err := slides.Find(pkg)
	if err != nil {
		return nil, err
	}
	plan := &Plan{
		Entries: len(pkg.Entries()),
		Steps:   make([]Step, len(found)),
	}
	for i, s := range found {
		plan.Steps[i] = Step{Slide: s, Position: i}
	}

	catalog := opts.Catalog
	if catalog == nil {
		catalog = transition.Default()
	}

	res, err := inject.New(catalog, opts.Sequence, opts.Strict, log).Run(ctx, dryStore{pkg: pkg}, slides.Paths(found))
	if err != nil {
		return nil, err
	}
	for _, a := range res.Applied {
		plan.Steps[a.Position].Transition = a.Transition
	}
	for _, w := range res.Warnings {
		plan.Steps[w.Position].Skip = w
	}
	return plan, nil
}
