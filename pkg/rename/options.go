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

package rename

import "context"

// 🔧 Options configures a single Run
type Options struct {
	// Files are the paths to rename, in order. Entries with an empty file name
	// component are skipped. In try mode they are hypothetical names and only
	// the first usable one is considered.
	Files []string

	Quiet   bool // suppress output when renaming for real
	Verbose bool // numbered before/after output, wins over Quiet
	DryRun  bool // report, but never touch the disk
	TryOut  bool // treat Files as hypothetical names, no file system access
}

// mutates reports whether a changed name should be renamed on disk.
func (o Options) mutates() bool {
	return !o.DryRun && !o.TryOut
}

// silent reports whether non-verbose after-lines are suppressed. Quiet only
// applies when the run touches the disk.
func (o Options) silent() bool {
	return o.Quiet && o.mutates()
}

// 🎯 Transform maps a base name to a new base name. The extension is passed
// for context only and cannot be changed. Returning "" keeps the original
// name untouched.
type Transform func(base, extn string) (string, error)

// 📄 Result is the outcome for one processed entry
type Result struct {
	Index       int    // 1-based position among processed entries
	Path        string // argument as given
	Dir         string // directory shown in verbose output, with trailing separator
	Original    string // file name before the transform
	Replacement string // file name after the transform
	Renamed     bool   // Replacement differs from Original
}

// 🎨 Style selects how an after-line is rendered
type Style int

const (
	StyleBrief   Style = iota // 'old' renamed to 'new'
	StyleVerbose              // indented under the numbered before-line
)

// 📢 Reporter renders progress lines. Deciding whether a line is shown at all
// is the Renamer's job; a Reporter only formats.
type Reporter interface {
	Before(ctx context.Context, res Result)
	After(ctx context.Context, res Result, style Style)
}
