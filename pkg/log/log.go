// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🎯 FileResult represents the outcome of processing one file
type FileResult struct {
	Path         string // Path relative to the walk root
	Updated      bool   // Whether the file content changed
	DryRun       bool   // Whether the write was skipped
	Replacements int    // Number of substitutions made
	Err          error  // Per-file failure, if any
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 LogFileResult logs the outcome of processing one file
func (l *Logger) LogFileResult(ctx context.Context, res FileResult) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch {
	case res.Err != nil:
		fmt.Fprintf(l.console, "❌ %s\n",
			color.New(color.FgRed).Sprintf("Error updating %s: %v", res.Path, res.Err))
	case res.Updated && res.DryRun:
		fmt.Fprintf(l.console, "🔍 %s\n",
			color.New(color.FgYellow).Sprintf("Would update: %s", res.Path))
	case res.Updated:
		fmt.Fprintf(l.console, "✅ %s\n",
			color.New(color.FgGreen).Sprintf("Updated: %s", res.Path))
	default:
		// Unchanged files stay off the console
	}

	l.zlog.Info().
		Str("file", res.Path).
		Bool("updated", res.Updated).
		Bool("dry_run", res.DryRun).
		Int("replacements", res.Replacements).
		Err(res.Err).
		Msg("file processed")
}

// 📝 Header logs a run header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("renamerc")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📊 Summary logs the final run summary and completion banner
func (l *Logger) Summary(ctx context.Context, updated, considered int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	banner := pterm.Success.WithWriter(l.console).WithPrefix(pterm.Prefix{Text: "🎉"})
	banner.Println("Rename pass completed!")
	fmt.Fprintf(l.console, "📊 Updated %d out of %d files\n", updated, considered)

	l.zlog.Info().
		Int("updated", updated).
		Int("considered", considered).
		Msg("rename pass completed")
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}
