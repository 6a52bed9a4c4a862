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

package opts

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/walteh/renamerc/pkg/rename"
	"github.com/walteh/renamerc/pkg/rule"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile string
	Debug      bool
}

// AddFlags adds shared flags to cmd
func (o *RootOpts) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", "", "rules file (default: .renamerc.{yaml,yml,hcl,json} when no rule flags are given)")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
}

// 🔧 RenameFlags are the output and mode flags any rename command can carry
type RenameFlags struct {
	Quiet   bool
	Verbose bool
	DryRun  bool
	TryOut  bool
}

// AddFlags binds the flags to cmd
func (f *RenameFlags) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.Quiet, "quiet", "q", false, "silent output")
	cmd.Flags().BoolVarP(&f.Verbose, "verbose", "v", false, `verbose output (overrides "--quiet")`)
	cmd.Flags().BoolVar(&f.DryRun, "dry-run", false, "don't perform rename, just output the result")
	cmd.Flags().BoolVar(&f.TryOut, "try", false, "treat the argument as a hypothetical file name, never touching the disk")
}

// Options builds rename options for files
func (f RenameFlags) Options(files []string) rename.Options {
	return rename.Options{
		Files:   files,
		Quiet:   f.Quiet,
		Verbose: f.Verbose,
		DryRun:  f.DryRun,
		TryOut:  f.TryOut,
	}
}

// 🔧 RuleFlags describe a rename rule on the command line
type RuleFlags struct {
	Regex      string
	Replace    string
	All        bool
	IgnoreCase bool
	Multiline  bool
	DotAll     bool
	Literals   []string
	Lower      bool
	Upper      bool
	Title      bool
	Prefix     string
	Suffix     string
}

// AddFlags binds the flags to cmd
func (f *RuleFlags) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Regex, "regex", "e", "", "regular expression to replace in the base name")
	cmd.Flags().StringVarP(&f.Replace, "replace", "r", "", "replacement template for --regex ($1, ${name})")
	cmd.Flags().BoolVarP(&f.All, "all", "a", false, "replace every match instead of the first")
	cmd.Flags().BoolVarP(&f.IgnoreCase, "ignore-case", "i", false, "match case-insensitively")
	cmd.Flags().BoolVar(&f.Multiline, "multiline", false, "let ^ and $ in --regex match at line breaks")
	cmd.Flags().BoolVar(&f.DotAll, "dot-all", false, "let . in --regex match line breaks")
	cmd.Flags().StringArrayVar(&f.Literals, "literal", nil, "plain text replacement FROM=TO (repeatable)")
	cmd.Flags().BoolVar(&f.Lower, "lower", false, "lower-case the base name")
	cmd.Flags().BoolVar(&f.Upper, "upper", false, "upper-case the base name")
	cmd.Flags().BoolVar(&f.Title, "title", false, "title-case the base name")
	cmd.Flags().StringVar(&f.Prefix, "prefix", "", "text to prepend to the base name")
	cmd.Flags().StringVar(&f.Suffix, "suffix", "", "text to append to the base name")
	cmd.MarkFlagsMutuallyExclusive("lower", "upper", "title")
}

// Empty reports whether no rule flag was given
func (f RuleFlags) Empty() bool {
	return f.Regex == "" && f.Replace == "" && len(f.Literals) == 0 &&
		!f.Lower && !f.Upper && !f.Title && f.Prefix == "" && f.Suffix == ""
}

// 📝 Rules converts the flags into rules, applied in this order: literal
// replacements, regex, case change, prefix, suffix
func (f RuleFlags) Rules() ([]rule.Rule, error) {
	var rules []rule.Rule

	for _, l := range f.Literals {
		from, to, ok := strings.Cut(l, "=")
		if !ok || from == "" {
			return nil, errors.Errorf("invalid --literal %q: expected FROM=TO", l)
		}
		rules = append(rules, rule.Rule{Kind: rule.KindLiteral, Pattern: from, Replacement: to, All: f.All, IgnoreCase: f.IgnoreCase})
	}

	if f.Regex == "" {
		switch {
		case f.Replace != "":
			return nil, errors.Errorf("--replace requires --regex")
		case f.Multiline || f.DotAll:
			return nil, errors.Errorf("--multiline and --dot-all require --regex")
		}
	} else {
		rules = append(rules, rule.Rule{
			Kind:        rule.KindRegex,
			Pattern:     f.Regex,
			Replacement: f.Replace,
			All:         f.All,
			IgnoreCase:  f.IgnoreCase,
			Multiline:   f.Multiline,
			DotAll:      f.DotAll,
		})
	}

	switch {
	case f.Lower:
		rules = append(rules, rule.Rule{Kind: rule.KindLower})
	case f.Upper:
		rules = append(rules, rule.Rule{Kind: rule.KindUpper})
	case f.Title:
		rules = append(rules, rule.Rule{Kind: rule.KindTitle})
	}

	if f.Prefix != "" {
		rules = append(rules, rule.Rule{Kind: rule.KindPrefix, Text: f.Prefix})
	}
	if f.Suffix != "" {
		rules = append(rules, rule.Rule{Kind: rule.KindSuffix, Text: f.Suffix})
	}

	return rules, nil
}
