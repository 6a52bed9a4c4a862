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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/renamerc/pkg/rule"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// DefaultNames are the rules files looked up by Find, in order.
var DefaultNames = []string{
	".renamerc.yaml",
	".renamerc.yml",
	".renamerc.hcl",
	".renamerc.json",
}

// 🔧 Defaults preset the output mode; command line flags can only turn them on
type Defaults struct {
	Quiet   bool `json:"quiet,omitempty" yaml:"quiet,omitempty"`
	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty"`
	DryRun  bool `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
}

// 📚 Config is a rules file
type Config struct {
	Rules    []rule.Rule `json:"rules" yaml:"rules"`
	Defaults Defaults    `json:"defaults,omitempty" yaml:"defaults,omitempty"`

	location string
}

// 🎯 Load reads, parses and validates the rules file at path
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	cfg.location = path
	logger.Debug().Str("path", path).Int("rules", len(cfg.Rules)).Msg("loaded configuration")

	return cfg, nil
}

// 🔎 Find returns the first default rules file present in dir, or "" when
// there is none
func Find(dir string) (string, error) {
	for _, name := range DefaultNames {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
		if err != nil && !os.IsNotExist(err) {
			return "", errors.Errorf("checking %s: %w", path, err)
		}
	}
	return "", nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if len(cfg.Rules) == 0 {
		return errors.Errorf("at least one rule is required")
	}
	if err := rule.Validate(cfg.Rules); err != nil {
		return errors.Errorf("validating rules: %w", err)
	}
	return nil
}

// Location returns the file the config was loaded from
func (cfg *Config) Location() string {
	return cfg.location
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	kinds := make([]string, 0, len(cfg.Rules))
	for _, r := range cfg.Rules {
		kinds = append(kinds, string(r.Kind))
	}
	return fmt.Sprintf("%d rules [%s]", len(cfg.Rules), strings.Join(kinds, " -> "))
}
