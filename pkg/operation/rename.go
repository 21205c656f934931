package operation

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/renamerc/pkg/log"
	"github.com/walteh/renamerc/pkg/text"
	"github.com/walteh/renamerc/pkg/walk"
	"gitlab.com/tozd/go/errors"
)

// 📦 RenameOperation applies the replacement table to every candidate
// file under the root, writing back only files whose content changed.
type RenameOperation struct {
	opts     Options
	replacer *text.Replacer
	rules    []text.Rule
	summary  RunSummary
}

// 🏭 NewRenameOperation creates a new rename operation
func NewRenameOperation(opts Options) (*RenameOperation, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Logger == nil {
		return nil, errors.Errorf("logger is required")
	}
	if opts.Root == "" {
		opts.Root = "."
	}

	rules := make([]text.Rule, 0, len(opts.Config.Replacements))
	for _, r := range opts.Config.Replacements {
		rules = append(rules, text.Rule{Old: r.Old, New: r.New})
	}

	replacer := text.NewReplacer()
	if err := replacer.ValidateRules(rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	return &RenameOperation{
		opts:     opts,
		replacer: replacer,
		rules:    rules,
	}, nil
}

// Name implements Operation
func (op *RenameOperation) Name() string {
	return "rename"
}

// Summary returns the counters accumulated by Execute
func (op *RenameOperation) Summary() RunSummary {
	return op.summary
}

// 🏃 Execute walks the candidate files and applies the replacement
// table to each. Per-file failures are logged and counted but never
// abort the pass; only discovery faults surface as errors.
func (op *RenameOperation) Execute(ctx context.Context) error {
	cfg := op.opts.Config

	filters := []walk.Filter{
		walk.HiddenSegments(),
		walk.ReservedDirs(cfg.Excludes...),
	}
	if len(cfg.IgnorePatterns) > 0 {
		filters = append(filters, walk.IgnoreGlobs(cfg.IgnorePatterns...))
	}

	walker, err := walk.New(walk.Options{
		Root:     op.opts.Root,
		Patterns: cfg.Patterns,
		Filters:  filters,
		Dedupe:   cfg.Dedupe,
	})
	if err != nil {
		return errors.Errorf("creating walker: %w", err)
	}

	err = walker.Walk(ctx, func(path string) error {
		op.summary.Considered++

		updated, count, err := op.processFile(ctx, path)
		if err != nil {
			// Per-file errors are logged and skipped, never escalated
			op.summary.Failed++
			op.opts.Logger.LogFileResult(ctx, log.FileResult{Path: path, Err: err})
			return nil
		}
		if updated {
			op.summary.Updated++
			op.opts.Logger.LogFileResult(ctx, log.FileResult{
				Path:         path,
				Updated:      true,
				DryRun:       cfg.DryRun,
				Replacements: count,
			})
		}
		return nil
	})
	if err != nil {
		return errors.Errorf("walking candidates: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Int("considered", op.summary.Considered).
		Int("updated", op.summary.Updated).
		Int("failed", op.summary.Failed).
		Msg("rename pass finished")

	return nil
}

// processFile reads one file, applies every rule in order, and writes
// the result back only when the content actually changed. The write is
// a plain full-file overwrite; the tool is for supervised one-shot use
// and makes no atomicity guarantee.
func (op *RenameOperation) processFile(ctx context.Context, relPath string) (bool, int, error) {
	absPath := filepath.Join(op.opts.Root, filepath.FromSlash(relPath))

	content, err := os.ReadFile(absPath)
	if err != nil {
		return false, 0, errors.Errorf("reading file: %w", err)
	}

	result, err := op.replacer.Apply(ctx, content, op.rules)
	if err != nil {
		return false, 0, errors.Errorf("applying replacements: %w", err)
	}

	if !result.WasModified {
		return false, 0, nil
	}

	if op.opts.Config.DryRun {
		return true, result.ReplacementCount, nil
	}

	// os.WriteFile keeps the existing mode; 0644 only applies to
	// files created here, which discovery guarantees cannot happen
	if err := os.WriteFile(absPath, result.ModifiedContent, 0o644); err != nil {
		return false, 0, errors.Errorf("writing file: %w", err)
	}

	return true, result.ReplacementCount, nil
}
