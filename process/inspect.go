package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"slidefx/patch"
	"slidefx/state"
	"slidefx/transition"
)

// Inspect prints slide order of the presentation and transitions which would
// be added. Presentation is not modified.
func Inspect(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("inspect")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	if err := env.ResolveSequence(cmd.StringSlice("sequence")); err != nil {
		return fmt.Errorf("unable to use requested transitions: %w", err)
	}

	input, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read presentation: %w", err)
	}

	plan, err := patch.Inspect(ctx, input, options(env), log)
	if err != nil {
		return fmt.Errorf("unable to inspect presentation: %w", err)
	}

	fmt.Fprintf(output(cmd), "%s: %d entries, %d slides, sequence %s\n", filepath.Base(src), plan.Entries, len(plan.Steps), env.Sequence)
	if len(plan.Steps) == 0 {
		return nil
	}
	fmt.Fprintln(output(cmd), renderPlan(plan))
	return nil
}

// Catalog prints all known transitions.
func Catalog(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	fmt.Fprintln(output(cmd), renderCatalog(env.Catalog))
	return nil
}

func output(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func renderPlan(plan *patch.Plan) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Position", "Ordinal", "Part", "Transition"})

	for _, s := range plan.Steps {
		action := "-"
		switch {
		case s.Skip != nil:
			action = "skip: " + s.Skip.Reason.String()
		case s.Transition != "":
			action = s.Transition.String()
		}
		tw.AppendRow(table.Row{strconv.Itoa(s.Position), strconv.Itoa(s.Ordinal), s.Path, action})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func renderCatalog(c *transition.Catalog) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Requires", "Fallback", "Description"})

	for _, d := range c.All() {
		requires, fallback := "-", "-"
		if d.Rich {
			requires, fallback = d.Requires, d.Fallback.String()
		}
		tw.AppendRow(table.Row{d.ID.String(), requires, fallback, d.Description})
	}
	return tw.Render()
}
