package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/renamerc/pkg/config"
	"github.com/walteh/renamerc/pkg/log"
	"github.com/walteh/renamerc/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	debug      bool
	dryRun     bool
)

// newRootCmd creates the root command
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "renamerc",
		Short: "Bulk literal-text rebranding across a source tree",
		Long: `Renamerc walks the working directory for files matching the configured
extension patterns, applies an ordered table of literal old→new string
replacements to each, and rewrites only the files whose content changed.
It will:
1. Load the replacement table and discovery rules from the config file
2. Expand each pattern from the working directory, skipping hidden and
   build/dependency directories
3. Apply every replacement in order to each candidate file
4. Write changed files back in place and print a per-file line
5. Print a final updated/considered summary

Individual file failures are logged and skipped; the run always
completes its summary.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context())
			return run(ctx)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", ".renamerc.yaml", "config file path")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "report changes without writing files")

	return cmd
}

// setupLogging configures zerolog based on flags
func setupLogging(ctx context.Context) context.Context {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}

// run executes the rename pass from the working directory
func run(ctx context.Context) error {
	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}
	if dryRun {
		cfg.DryRun = true
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	userLogger := log.New(os.Stdout, level)
	userLogger.Header("starting rename pass")

	op, err := operation.NewRenameOperation(operation.Options{
		Config: cfg,
		Logger: userLogger,
		Root:   ".",
	})
	if err != nil {
		return errors.Errorf("creating rename operation: %w", err)
	}

	runner := operation.NewRunner(zerolog.Ctx(ctx))
	if err := runner.Run(ctx, op); err != nil {
		return errors.Errorf("running rename: %w", err)
	}

	// Per-file failures never reach here; the summary always prints
	// and the process exits zero once the pass completes.
	summary := op.Summary()
	userLogger.Summary(ctx, summary.Updated, summary.Considered)

	return nil
}
