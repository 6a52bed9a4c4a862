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

package rule

import (
	"regexp"

	"gitlab.com/tozd/go/errors"
)

// 🚩 Flags are regular expression options
type Flags uint8

const (
	IgnoreCase Flags = 1 << iota // (?i)
	Multiline                    // (?m)
	DotAll                       // (?s)
)

func (f Flags) prefix() string {
	s := ""
	if f&IgnoreCase != 0 {
		s += "i"
	}
	if f&Multiline != 0 {
		s += "m"
	}
	if f&DotAll != 0 {
		s += "s"
	}
	if s == "" {
		return ""
	}
	return "(?" + s + ")"
}

// 🔧 CompileRegex compiles pattern with flags applied
func CompileRegex(pattern string, flags Flags) (*regexp.Regexp, error) {
	re, err := regexp.Compile(flags.prefix() + pattern)
	if err != nil {
		return nil, errors.Errorf("compiling pattern %q: %w", pattern, err)
	}
	return re, nil
}

// ReplaceFirst replaces the first match of pattern in s with template.
// Templates expand $1, ${1} and ${name} like regexp.Expand.
func ReplaceFirst(s, pattern string, flags Flags, template string) (string, error) {
	re, err := CompileRegex(pattern, flags)
	if err != nil {
		return "", err
	}
	return replaceFirst(re, s, template), nil
}

// ReplaceAll replaces every match of pattern in s with template.
func ReplaceAll(s, pattern string, flags Flags, template string) (string, error) {
	re, err := CompileRegex(pattern, flags)
	if err != nil {
		return "", err
	}
	return re.ReplaceAllString(s, template), nil
}

func replaceFirst(re *regexp.Regexp, s, template string) string {
	m := re.FindStringSubmatchIndex(s)
	if m == nil {
		return s
	}
	expanded := re.ExpandString(nil, template, s, m)
	return s[:m[0]] + string(expanded) + s[m[1]:]
}
