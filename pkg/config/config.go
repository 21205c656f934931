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

package config

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// 📐 Default discovery rules for a rebranding pass
var (
	// DefaultPatterns are the extension globs considered when the
	// config does not name its own
	DefaultPatterns = []string{
		"**/*.rs",
		"**/*.toml",
		"**/*.md",
		"**/*.yml",
		"**/*.yaml",
		"**/*.json",
		"**/*.txt",
		"**/*.sh",
		"**/*.py",
	}

	// DefaultExcludes are build/dependency/version-control directory
	// names never descended into for rewriting
	DefaultExcludes = []string{
		"target",
		"node_modules",
		".git",
		"__pycache__",
		"vendor",
	}
)

// 🔄 Replacement is one ordered old→new literal rewrite
type Replacement struct {
	Old string `json:"old" yaml:"old" hcl:"old"`
	New string `json:"new" yaml:"new" hcl:"new"`
}

// 📚 Config represents the complete configuration for a rename pass.
// Replacements are applied in the order they appear; the loader never
// reorders them, so overlapping keys resolve exactly as configured.
type Config struct {
	Replacements   []Replacement `json:"replacements" yaml:"replacements" hcl:"replacement,block"`
	Patterns       []string      `json:"patterns,omitempty" yaml:"patterns,omitempty" hcl:"patterns,optional"`
	Excludes       []string      `json:"excludes,omitempty" yaml:"excludes,omitempty" hcl:"excludes,optional"`
	IgnorePatterns []string      `json:"ignore_patterns,omitempty" yaml:"ignore_patterns,omitempty" hcl:"ignore_patterns,optional"`
	Dedupe         bool          `json:"dedupe,omitempty" yaml:"dedupe,omitempty" hcl:"dedupe,optional"`
	DryRun         bool          `json:"dry_run,omitempty" yaml:"dry_run,omitempty" hcl:"dry_run,optional"`
}

// 🔍 Validate checks the configuration and fills in defaults
func (cfg *Config) Validate() error {
	if len(cfg.Replacements) == 0 {
		return errors.Errorf("at least one replacement is required")
	}
	for i, r := range cfg.Replacements {
		if r.Old == "" {
			return errors.Errorf("replacement %d: old is required", i)
		}
	}

	// Set defaults
	if len(cfg.Patterns) == 0 {
		cfg.Patterns = DefaultPatterns
	}
	if len(cfg.Excludes) == 0 {
		cfg.Excludes = DefaultExcludes
	}

	return nil
}

// 📝 String returns a short description of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%d replacements over %d patterns", len(cfg.Replacements), len(cfg.Patterns))
}
