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

// Package rule turns declarative rename rules into a rename.Transform.
package rule

import (
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/renamerc/pkg/pathparts"
	"github.com/walteh/renamerc/pkg/rename"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// 🏷️ Kind names what a rule does to the base name
type Kind string

const (
	KindRegex   Kind = "regex"   // Pattern is a regular expression, Replacement a template
	KindLiteral Kind = "literal" // Pattern is plain text
	KindLower   Kind = "lower"
	KindUpper   Kind = "upper"
	KindTitle   Kind = "title"
	KindPrefix  Kind = "prefix" // prepend Text
	KindSuffix  Kind = "suffix" // append Text
	KindTrim    Kind = "trim"   // trim Text as a cutset, or whitespace when empty
)

// 📝 Rule is one step applied to a base name
type Rule struct {
	Kind        Kind   `json:"kind" yaml:"kind"`
	Pattern     string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Replacement string `json:"replacement,omitempty" yaml:"replacement,omitempty"`
	Text        string `json:"text,omitempty" yaml:"text,omitempty"`
	All         bool   `json:"all,omitempty" yaml:"all,omitempty"`
	IgnoreCase  bool   `json:"ignore_case,omitempty" yaml:"ignore_case,omitempty"`
	Multiline   bool   `json:"multiline,omitempty" yaml:"multiline,omitempty"` // regex only: ^ and $ match at line breaks
	DotAll      bool   `json:"dot_all,omitempty" yaml:"dot_all,omitempty"`     // regex only: . matches \n

	// Match limits the rule to file names (base plus extension) matching
	// this doublestar pattern.
	Match string `json:"match,omitempty" yaml:"match,omitempty"`
}

// 🔍 Validate checks every rule without compiling a transform
func Validate(rules []Rule) error {
	for i, r := range rules {
		if _, err := r.compile(); err != nil {
			return errors.Errorf("rule %d: %w", i, err)
		}
	}
	return nil
}

// 🏭 Compile validates rules and returns a transform applying them in order.
// Rules see the base produced by the previous rule.
func Compile(rules []Rule) (rename.Transform, error) {
	steps := make([]step, 0, len(rules))
	for i, r := range rules {
		s, err := r.compile()
		if err != nil {
			return nil, errors.Errorf("rule %d: %w", i, err)
		}
		steps = append(steps, s)
	}

	return func(base, extn string) (string, error) {
		for _, s := range steps {
			if s.match != "" {
				ok, err := doublestar.Match(s.match, pathparts.JoinExtension(base, extn))
				if err != nil {
					return "", errors.Errorf("matching %q: %w", s.match, err)
				}
				if !ok {
					continue
				}
			}
			base = s.apply(base)
		}
		return base, nil
	}, nil
}

type step struct {
	match string
	apply func(string) string
}

func (r Rule) compile() (step, error) {
	if r.Match != "" && !doublestar.ValidatePattern(r.Match) {
		return step{}, errors.Errorf("invalid match pattern %q", r.Match)
	}

	s := step{match: r.Match}

	switch r.Kind {
	case KindRegex:
		if r.Pattern == "" {
			return step{}, errors.Errorf("regex rule requires a pattern")
		}
		re, err := CompileRegex(r.Pattern, r.flags())
		if err != nil {
			return step{}, err
		}
		s.apply = regexStep(re, r.Replacement, r.All)
	case KindLiteral:
		if r.Pattern == "" {
			return step{}, errors.Errorf("literal rule requires a pattern")
		}
		if r.IgnoreCase {
			re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(r.Pattern))
			// Literal replacements must not expand $ references.
			s.apply = regexStep(re, escapeTemplate(r.Replacement), r.All)
			break
		}
		from, to, n := r.Pattern, r.Replacement, 1
		if r.All {
			n = -1
		}
		s.apply = func(base string) string {
			return strings.Replace(base, from, to, n)
		}
	case KindLower:
		s.apply = strings.ToLower
	case KindUpper:
		s.apply = strings.ToUpper
	case KindTitle:
		caser := cases.Title(language.Und)
		s.apply = caser.String
	case KindPrefix:
		if r.Text == "" {
			return step{}, errors.Errorf("prefix rule requires text")
		}
		text := r.Text
		s.apply = func(base string) string { return text + base }
	case KindSuffix:
		if r.Text == "" {
			return step{}, errors.Errorf("suffix rule requires text")
		}
		text := r.Text
		s.apply = func(base string) string { return base + text }
	case KindTrim:
		cutset := r.Text
		s.apply = func(base string) string {
			if cutset == "" {
				return strings.TrimSpace(base)
			}
			return strings.Trim(base, cutset)
		}
	case "":
		return step{}, errors.Errorf("kind is required")
	default:
		return step{}, errors.Errorf("unknown kind %q", r.Kind)
	}

	if r.Kind != KindRegex && (r.Multiline || r.DotAll) {
		return step{}, errors.Errorf("multiline and dot_all only apply to regex rules")
	}

	return s, nil
}

func (r Rule) flags() Flags {
	var flags Flags
	if r.IgnoreCase {
		flags |= IgnoreCase
	}
	if r.Multiline {
		flags |= Multiline
	}
	if r.DotAll {
		flags |= DotAll
	}
	return flags
}

func regexStep(re *regexp.Regexp, template string, all bool) func(string) string {
	if all {
		return func(base string) string { return re.ReplaceAllString(base, template) }
	}
	return func(base string) string { return replaceFirst(re, base, template) }
}

func escapeTemplate(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}
