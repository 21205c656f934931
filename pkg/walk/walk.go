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

// Package walk discovers candidate files for a rename pass
package walk

import (
	"context"
	"io/fs"
	"os"
	"path"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains configuration for the walker
type Options struct {
	// Root is the directory the patterns expand from (default ".")
	Root string
	// Patterns are recursive doublestar globs, expanded in order
	Patterns []string
	// Filters remove discovered paths from consideration
	Filters []Filter
	// Dedupe processes each cleaned path at most once across patterns
	Dedupe bool
}

// 🚶 Walker expands glob patterns into a filtered sequence of file paths
type Walker struct {
	root     string
	patterns []string
	filters  []Filter
	dedupe   bool
}

// 🏭 New creates a new walker
func New(opts Options) (*Walker, error) {
	if opts.Root == "" {
		opts.Root = "."
	}
	if len(opts.Patterns) == 0 {
		return nil, errors.Errorf("at least one pattern is required")
	}
	for _, pattern := range opts.Patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid pattern %q", pattern)
		}
	}

	return &Walker{
		root:     opts.Root,
		patterns: opts.Patterns,
		filters:  opts.Filters,
		dedupe:   opts.Dedupe,
	}, nil
}

// 🏃 Walk calls fn once per discovered candidate, as each is found. The
// sequence is lazy and finite; a non-nil error from fn stops the walk.
// When patterns overlap and dedupe is off, fn may see a path more than
// once. Only regular files are reported; directories, symlinks and
// other special files never reach fn. Paths are slash-separated and
// relative to the walker's root.
func (w *Walker) Walk(ctx context.Context, fn func(path string) error) error {
	logger := zerolog.Ctx(ctx)
	fsys := os.DirFS(w.root)

	var seen map[string]struct{}
	if w.dedupe {
		seen = make(map[string]struct{})
	}

	for _, pattern := range w.patterns {
		err := doublestar.GlobWalk(fsys, pattern, func(p string, d fs.DirEntry) error {
			if !d.Type().IsRegular() {
				return nil
			}
			for _, f := range w.filters {
				if !f.Keep(p) {
					logger.Debug().Str("path", p).Msg("path excluded by filter")
					return nil
				}
			}
			if w.dedupe {
				cleaned := path.Clean(p)
				if _, ok := seen[cleaned]; ok {
					return nil
				}
				seen[cleaned] = struct{}{}
			}
			return fn(p)
		})
		if err != nil {
			return errors.Errorf("expanding pattern %q: %w", pattern, err)
		}
	}

	return nil
}
