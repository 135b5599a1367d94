// Package state defines shared program state.
package state

import (
	"context"
	"time"

	"go.uber.org/zap"

	"slidefx/config"
	"slidefx/transition"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// Catalog is shared and read-only.
	Catalog *transition.Catalog

	// used by apply subcommand
	NoDirs    bool
	Overwrite bool
	Sequence  transition.Sequence

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}

// ResolveSequence selects transition sequence for the run: names given on
// command line win over configured ones.
func (e *LocalEnv) ResolveSequence(override []string) error {
	names := override
	if len(names) == 0 && e.Cfg != nil {
		names = e.Cfg.Transitions.Sequence
	}
	if len(names) == 0 {
		e.Sequence = transition.DefaultSequence()
		return nil
	}
	seq, err := transition.ParseSequence(names)
	if err != nil {
		return err
	}
	e.Sequence = seq
	return nil
}
