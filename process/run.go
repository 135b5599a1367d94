// Package process implements program actions: applying transitions to
// presentation files and directories, inspecting them and listing catalog.
package process

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"slidefx/archive"
	"slidefx/patch"
	"slidefx/state"
)

// Apply adds transitions to presentation(s) specified on command line.
func Apply(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("apply")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	if err := env.ResolveSequence(cmd.StringSlice("sequence")); err != nil {
		return fmt.Errorf("unable to use requested transitions: %w", err)
	}
	if cmd.IsSet("suffix") {
		env.Cfg.Output.Suffix = cmd.String("suffix")
	}
	if cmd.Bool("strict") {
		env.Cfg.Transitions.Strict = true
	}
	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("sequence", env.Sequence))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, log)
}

// options translates configuration into pipeline options.
func options(env *state.LocalEnv) patch.Options {
	return patch.Options{
		Sequence: env.Sequence,
		Catalog:  env.Catalog,
		Serialize: archive.SerializeOptions{
			Method:  env.Cfg.Archive.Compression.ZipMethod(),
			Level:   env.Cfg.Archive.Level,
			KeepRaw: env.Cfg.Archive.KeepRaw,
		},
		FixZip: env.Cfg.Archive.FixZip,
		Strict: env.Cfg.Transitions.Strict,
	}
}

// process determines the input type (directory or single file) and
// processes accordingly.
func process(ctx context.Context, src, dst string, log *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found (%s): %w", src, err)
	}

	if fi.IsDir() {
		return processDir(ctx, src, dst, log)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("unexpected path mode for (%s)", src)
	}

	ok, err := isPresentationFile(src)
	if err != nil {
		return fmt.Errorf("unable to check file type: %w", err)
	}
	if !ok {
		return fmt.Errorf("input was not recognized as presentation (%s)", src)
	}
	return processFile(ctx, src, filepath.Base(src), dst, log)
}

// processDir walks directory tree finding presentations and processes them.
// Candidates are collected first so results written under the same tree are
// never picked up.
func processDir(ctx context.Context, dir, dst string, log *zap.Logger) error {
	var found []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		ok, err := isPresentationFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if !ok {
			log.Debug("Skipping file, not recognized as presentation", zap.String("file", path))
			return nil
		}
		found = append(found, path)
		return nil
	})
	if err != nil {
		return err
	}

	if len(found) == 0 {
		log.Debug("Nothing to process", zap.String("dir", dir))
		return nil
	}

	var errs error
	for _, path := range found {
		if err := ctx.Err(); err != nil {
			return multierr.Append(errs, err)
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		if err := processFile(ctx, path, rel, dst, log); err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", rel, err))
		}
	}
	if errs != nil {
		return fmt.Errorf("unable to process %d of %d presentations: %w", len(multierr.Errors(errs)), len(found), errs)
	}
	return nil
}

// processFile processes single presentation. "src" is absolute path to the
// file, "rel" is its path relative to what was requested on command line
// (just base name for single file). "dst" is the destination directory.
//
// When pipeline cannot produce result original presentation is written to
// destination, so caller always gets usable file, and error is returned.
func processFile(ctx context.Context, src, rel, dst string, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)
	refID := uuid.NewString()

	var outputName string

	log.Info("Processing presentation", zap.String("from", rel))
	defer func(start time.Time) {
		if r := recover(); r != nil {
			log.Error("Processing ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("processing panic: %v", r)
		} else {
			log.Info("Presentation completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.String("ref_id", refID))
		}
	}(time.Now())

	input, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read presentation: %w", err)
	}

	out, res, perr := patch.Process(ctx, input, options(env), log.With(zap.String("file", rel)))
	if perr != nil && ctx.Err() != nil {
		// interrupted, nothing should be written
		return perr
	}

	ext := filepath.Ext(src)
	values := Values{
		SourceFile: strings.TrimSuffix(filepath.Base(src), ext),
		Ext:        ext,
		Slides:     len(res.Slides),
		Applied:    len(res.Applied),
		Sequence:   env.Sequence.String(),
	}
	outputName = buildOutputPath(rel, dst, values, env)

	if same, err := samePath(src, outputName); err != nil {
		return err
	} else if same {
		return fmt.Errorf("output file would replace source: %s", outputName)
	}

	// Check if output file already exists
	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
		if err = os.Remove(outputName); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := os.WriteFile(outputName, out, 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}

	// Store processing result for debugging
	if env.Rpt != nil {
		env.Rpt.Store(fmt.Sprintf("source-%s%s", refID, ext), src)
		env.Rpt.Store(fmt.Sprintf("result-%s%s", refID, ext), outputName)
		env.Rpt.StoreData(fmt.Sprintf("summary/%s.txt", refID), summary(rel, outputName, res, perr))
	}

	if perr != nil {
		log.Error("Transitions were not added, original presentation written", zap.String("to", outputName), zap.Error(perr))
		return fmt.Errorf("unable to add transitions: %w", perr)
	}
	return nil
}

func samePath(a, b string) (bool, error) {
	fa, err := os.Stat(a)
	if err != nil {
		return false, err
	}
	fb, err := os.Stat(b)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return os.SameFile(fa, fb), nil
}
