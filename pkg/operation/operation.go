// Package operation provides the rename pass over a source tree
package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/renamerc/pkg/config"
	"github.com/walteh/renamerc/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a single unit of work executed by the runner
type Operation interface {
	// Name returns the operation name for logging
	Name() string
	// Execute runs the operation
	Execute(ctx context.Context) error
}

// 🔧 Options contains configuration for operations
type Options struct {
	// Config is the renamerc configuration
	Config *config.Config
	// Logger is the user-facing logger
	Logger *log.Logger
	// Root is the directory the rename pass runs from (default ".")
	Root string
}

// 📊 RunSummary holds the counters accumulated over one pass. It is an
// explicit value threaded through the run, never package state.
type RunSummary struct {
	Considered int // Files that passed discovery and exclusion
	Updated    int // Files whose content changed and was written back
	Failed     int // Files skipped due to read/decode/write errors
}

// 🏃 Runner executes operations strictly one at a time. A file is fully
// processed before the next one is considered; there is no concurrent
// mode and no retry.
type Runner struct {
	logger *zerolog.Logger
}

// 🏗️ NewRunner creates a new runner
func NewRunner(logger *zerolog.Logger) *Runner {
	return &Runner{logger: logger}
}

// 🏃 Run executes the given operations in order
func (r *Runner) Run(ctx context.Context, ops ...Operation) error {
	for _, op := range ops {
		r.logger.Debug().Str("operation", op.Name()).Msg("running operation")
		if err := op.Execute(ctx); err != nil {
			return errors.Errorf("running %s: %w", op.Name(), err)
		}
	}
	return nil
}
