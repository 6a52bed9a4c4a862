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
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/renamerc/pkg/rule"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		config      string
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid_yaml",
			file: ".renamerc.yaml",
			config: `
defaults:
  dry_run: true
rules:
  - kind: literal
    pattern: " "
    replacement: "_"
    all: true
  - kind: regex
    pattern: '^IMG_(\d+)'
    replacement: 'photo-$1'
    ignore_case: true
    match: "*.jpg"
  - kind: lower
`,
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.Defaults.DryRun, "dry_run should be set")
				assert.False(t, cfg.Defaults.Quiet, "quiet should not be set")
				require.Len(t, cfg.Rules, 3, "should have three rules")
				assert.Equal(t, rule.Rule{Kind: rule.KindLiteral, Pattern: " ", Replacement: "_", All: true}, cfg.Rules[0])
				assert.Equal(t, rule.Rule{Kind: rule.KindRegex, Pattern: `^IMG_(\d+)`, Replacement: "photo-$1", IgnoreCase: true, Match: "*.jpg"}, cfg.Rules[1])
				assert.Equal(t, rule.KindLower, cfg.Rules[2].Kind)
			},
		},
		{
			name: "valid_yml",
			file: "rules.yml",
			config: `
rules:
  - kind: upper
`,
			check: func(t *testing.T, cfg *Config) {
				require.Len(t, cfg.Rules, 1)
				assert.Equal(t, rule.KindUpper, cfg.Rules[0].Kind)
			},
		},
		{
			name: "valid_hcl",
			file: ".renamerc.hcl",
			config: `
defaults {
  verbose = true
}

rule "prefix" {
  text = "2025-"
}

rule "regex" {
  pattern     = "\\s+"
  replacement = "-"
  all         = true
  match       = "*.md"
}

rule "regex" {
  pattern   = "^x.y$"
  multiline = true
  dot_all   = true
}
`,
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.Defaults.Verbose, "verbose should be set")
				require.Len(t, cfg.Rules, 3)
				assert.Equal(t, rule.Rule{Kind: rule.KindPrefix, Text: "2025-"}, cfg.Rules[0])
				assert.Equal(t, rule.Rule{Kind: rule.KindRegex, Pattern: `\s+`, Replacement: "-", All: true, Match: "*.md"}, cfg.Rules[1])
				assert.Equal(t, rule.Rule{Kind: rule.KindRegex, Pattern: "^x.y$", Multiline: true, DotAll: true}, cfg.Rules[2])
			},
		},
		{
			name: "valid_json",
			file: ".renamerc.json",
			config: `{
  "defaults": {"quiet": true},
  "rules": [{"kind": "title"}, {"kind": "trim", "text": "_"}]
}`,
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.Defaults.Quiet)
				require.Len(t, cfg.Rules, 2)
				assert.Equal(t, rule.KindTitle, cfg.Rules[0].Kind)
				assert.Equal(t, "_", cfg.Rules[1].Text)
			},
		},
		{
			name: "unknown_yaml_field",
			file: ".renamerc.yaml",
			config: `
rules:
  - kind: lower
    colour: red
`,
			errContains: "parsing YAML",
		},
		{
			name:        "unknown_json_field",
			file:        ".renamerc.json",
			config:      `{"rules": [{"kind": "lower"}], "extra": 1}`,
			errContains: "parsing JSON",
		},
		{
			name: "unknown_hcl_attribute",
			file: ".renamerc.hcl",
			config: `
rule "lower" {
  colour = "red"
}
`,
			errContains: "decoding HCL",
		},
		{
			name:        "invalid_hcl_syntax",
			file:        ".renamerc.hcl",
			config:      `rule "lower" {`,
			errContains: "parsing HCL",
		},
		{
			name:        "empty_file",
			file:        ".renamerc.yaml",
			config:      ``,
			errContains: "at least one rule is required",
		},
		{
			name: "invalid_rule",
			file: ".renamerc.yaml",
			config: `
rules:
  - kind: regex
    pattern: "("
`,
			errContains: "rule 0",
		},
		{
			name:        "unsupported_extension",
			file:        "rules.toml",
			config:      `rules = []`,
			errContains: "no parser found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := zerolog.New(zerolog.NewTestWriter(t))
			ctx := logger.WithContext(context.Background())

			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.config), 0644), "writing config file")

			cfg, err := Load(ctx, path)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, path, cfg.Location())
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), ".renamerc.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestFind(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		path, err := Find(t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, path)
	})

	t.Run("prefers_yaml", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{".renamerc.hcl", ".renamerc.yaml"} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
		}
		path, err := Find(dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, ".renamerc.yaml"), path)
	})

	t.Run("ignores_directories", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".renamerc.yaml"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".renamerc.json"), nil, 0644))
		path, err := Find(dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, ".renamerc.json"), path)
	})
}

func TestGetParser(t *testing.T) {
	assert.IsType(t, &YAMLParser{}, GetParser("a.yaml"))
	assert.IsType(t, &YAMLParser{}, GetParser("a.yml"))
	assert.IsType(t, &HCLParser{}, GetParser("a.hcl"))
	assert.IsType(t, &JSONParser{}, GetParser("a.JSON"))
	assert.Nil(t, GetParser("a.toml"))
}

func TestConfigString(t *testing.T) {
	cfg := &Config{Rules: []rule.Rule{{Kind: rule.KindLower}, {Kind: rule.KindPrefix, Text: "x"}}}
	assert.Equal(t, "2 rules [lower -> prefix]", cfg.String())
}
