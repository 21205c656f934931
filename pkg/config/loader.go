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
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Load loads and validates the configuration from a file. The format
// is determined by the file extension (.yaml/.yml, .hcl, .json); a
// ".renamerc" file is tried as YAML first, then HCL.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	var cfg *Config
	if filepath.Base(path) == ".renamerc" {
		cfg, err = loadDualFormat(ctx, data)
	} else {
		cfg, err = loadByExtension(ctx, path, data)
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// loadByExtension dispatches to the registered parser for the filename
func loadByExtension(ctx context.Context, path string, data []byte) (*Config, error) {
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// loadDualFormat tries YAML first, then HCL
func loadDualFormat(ctx context.Context, data []byte) (*Config, error) {
	yamlParser := &YAMLParser{}
	cfg, yamlErr := yamlParser.Parse(ctx, data)
	if yamlErr == nil {
		return cfg, nil
	}

	hclParser := &HCLParser{}
	cfg, hclErr := hclParser.Parse(ctx, data)
	if hclErr == nil {
		return cfg, nil
	}

	return nil, errors.Errorf("failed to parse .renamerc as YAML or HCL: %w", hclErr)
}
