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

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/renamerc/pkg/pathparts"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Renamer runs a Transform over a list of files
type Renamer struct {
	fs       FileSystem
	reporter Reporter
}

// 🏗️ New creates a Renamer
func New(fs FileSystem, reporter Reporter) *Renamer {
	return &Renamer{
		fs:       fs,
		reporter: reporter,
	}
}

// 🏃 Run applies transform to every entry of opts.Files and returns how many
// names changed, whether or not the disk was touched. Try mode always returns 0.
//
// The first error aborts the run. Renames done before it are kept.
func (r *Renamer) Run(ctx context.Context, opts Options, transform Transform) (int, error) {
	if transform == nil {
		return 0, errors.New("transform is required")
	}
	if r.reporter == nil {
		return 0, errors.New("reporter is required")
	}

	if opts.TryOut {
		return 0, r.try(ctx, opts, transform)
	}

	if r.fs == nil {
		return 0, errors.New("file system is required")
	}

	logger := zerolog.Ctx(ctx)
	index, renamed := 0, 0

	for _, path := range opts.Files {
		if _, name := pathparts.SplitPath(path); name == "" {
			logger.Debug().Str("path", path).Msg("skipping entry without a file name")
			continue
		}
		index++

		handle, err := r.fs.Resolve(ctx, path)
		if err != nil {
			return 0, &Error{Kind: KindFileNotFound, Path: path, Err: err}
		}
		parent, ok := handle.Parent()
		if !ok {
			return 0, &Error{Kind: KindCannotRenameRoot, Path: path}
		}

		res := Result{
			Index:    index,
			Path:     path,
			Dir:      withSeparator(parent),
			Original: handle.Name(),
		}
		if err := r.evaluate(ctx, opts, &res, transform); err != nil {
			return 0, err
		}

		if res.Renamed {
			if opts.mutates() {
				if err := handle.Rename(ctx, res.Replacement); err != nil {
					return 0, &Error{Kind: KindFileSystemRenameFailed, Path: path, Err: err}
				}
			}
			renamed++
		}

		r.after(ctx, opts, res)
	}

	logger.Debug().Int("processed", index).Int("renamed", renamed).Bool("dry_run", opts.DryRun).Msg("rename run complete")

	return renamed, nil
}

// 🧪 try evaluates the first usable hypothetical name without any file
// system access.
func (r *Renamer) try(ctx context.Context, opts Options, transform Transform) error {
	for _, path := range opts.Files {
		dir, name := pathparts.SplitPath(path)
		if name == "" {
			continue
		}

		res := Result{
			Index:    1,
			Path:     path,
			Dir:      dir,
			Original: name,
		}
		if err := r.evaluate(ctx, opts, &res, transform); err != nil {
			return err
		}
		r.after(ctx, opts, res)
		return nil
	}

	zerolog.Ctx(ctx).Debug().Msg("try mode without a usable name")
	return nil
}

// evaluate prints the before-line and fills in the replacement name.
func (r *Renamer) evaluate(ctx context.Context, opts Options, res *Result, transform Transform) error {
	if opts.Verbose {
		r.reporter.Before(ctx, *res)
	}

	base, extn := pathparts.SplitExtension(res.Original)
	newBase, err := transform(base, extn)
	if err != nil {
		return &Error{Kind: KindTransformFailed, Path: res.Path, Err: err}
	}

	// An empty or unchanged base keeps the name verbatim, so "file." is never
	// stripped of its trailing dot by recomposition.
	res.Replacement = res.Original
	if newBase != "" && newBase != base {
		res.Replacement = pathparts.JoinExtension(newBase, extn)
	}
	res.Renamed = res.Replacement != res.Original

	zerolog.Ctx(ctx).Debug().
		Int("index", res.Index).
		Str("path", res.Path).
		Str("from", res.Original).
		Str("to", res.Replacement).
		Bool("renamed", res.Renamed).
		Msg("evaluated name")

	return nil
}

func (r *Renamer) after(ctx context.Context, opts Options, res Result) {
	switch {
	case opts.Verbose:
		r.reporter.After(ctx, res, StyleVerbose)
	case opts.silent():
	default:
		r.reporter.After(ctx, res, StyleBrief)
	}
}

func withSeparator(dir string) string {
	if dir == "" || os.IsPathSeparator(dir[len(dir)-1]) {
		return dir
	}
	return dir + string(os.PathSeparator)
}
