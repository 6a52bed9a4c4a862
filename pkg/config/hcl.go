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
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/walteh/renamerc/pkg/rule"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the config from HCL
//
//	defaults {
//	  dry_run = true
//	}
//
//	rule "regex" {
//	  pattern     = "\\s+"
//	  replacement = "_"
//	  all         = true
//	  multiline   = false
//	  dot_all     = false
//	}
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "renamerc.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	// Define HCL schema
	type hclConfig struct {
		Defaults *struct {
			Quiet   bool `hcl:"quiet,optional"`
			Verbose bool `hcl:"verbose,optional"`
			DryRun  bool `hcl:"dry_run,optional"`
		} `hcl:"defaults,block"`
		Rules []struct {
			Kind        string `hcl:"kind,label"`
			Pattern     string `hcl:"pattern,optional"`
			Replacement string `hcl:"replacement,optional"`
			Text        string `hcl:"text,optional"`
			All         bool   `hcl:"all,optional"`
			IgnoreCase  bool   `hcl:"ignore_case,optional"`
			Multiline   bool   `hcl:"multiline,optional"`
			DotAll      bool   `hcl:"dot_all,optional"`
			Match       string `hcl:"match,optional"`
		} `hcl:"rule,block"`
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	cfg := &Config{}
	if hclCfg.Defaults != nil {
		cfg.Defaults = Defaults{
			Quiet:   hclCfg.Defaults.Quiet,
			Verbose: hclCfg.Defaults.Verbose,
			DryRun:  hclCfg.Defaults.DryRun,
		}
	}
	for _, r := range hclCfg.Rules {
		cfg.Rules = append(cfg.Rules, rule.Rule{
			Kind:        rule.Kind(r.Kind),
			Pattern:     r.Pattern,
			Replacement: r.Replacement,
			Text:        r.Text,
			All:         r.All,
			IgnoreCase:  r.IgnoreCase,
			Multiline:   r.Multiline,
			DotAll:      r.DotAll,
			Match:       r.Match,
		})
	}

	return cfg, nil
}
