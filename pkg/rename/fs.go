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
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 💾 FileSystem resolves paths into renameable entries
type FileSystem interface {
	// Resolve looks up path; it fails when the path does not exist.
	Resolve(ctx context.Context, path string) (Handle, error)
}

// 📄 Handle is a resolved file system entry
type Handle interface {
	// Name returns the entry's file name
	Name() string
	// Parent returns the containing directory, or false for a root
	Parent() (string, bool)
	// Rename gives the entry a new name inside the same directory
	Rename(ctx context.Context, newName string) error
}

// 🖥️ OSFileSystem is the local disk
type OSFileSystem struct{}

var _ FileSystem = (*OSFileSystem)(nil)

// 🏭 NewOSFileSystem creates a FileSystem backed by the os package
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (f *OSFileSystem) Resolve(ctx context.Context, path string) (Handle, error) {
	// "." and ".." would clean into a directory the caller never named.
	if _, name := filepath.Split(path); name == "." || name == ".." {
		return nil, errors.Errorf("%q does not name a file: %w", path, os.ErrNotExist)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Errorf("getting absolute path: %w", err)
	}

	if _, err := os.Lstat(abs); err != nil {
		return nil, errors.Errorf("checking file existence: %w", err)
	}

	zerolog.Ctx(ctx).Trace().Str("path", path).Str("abs", abs).Msg("resolved path")

	return &osHandle{path: abs}, nil
}

type osHandle struct {
	path string // absolute and clean
}

func (h *osHandle) Name() string {
	return filepath.Base(h.path)
}

func (h *osHandle) Parent() (string, bool) {
	dir := filepath.Dir(h.path)
	if dir == h.path {
		return "", false
	}
	return dir, true
}

func (h *osHandle) Rename(ctx context.Context, newName string) error {
	dir, ok := h.Parent()
	if !ok {
		return errors.Errorf("%s has no parent directory", h.path)
	}
	target := filepath.Join(dir, newName)

	// os.Rename silently replaces an existing target on unix; refuse instead.
	// Case-only renames on case-insensitive volumes stat as the same file.
	if targetInfo, err := os.Lstat(target); err == nil {
		sourceInfo, serr := os.Lstat(h.path)
		if serr != nil {
			return errors.Errorf("checking source: %w", serr)
		}
		if !os.SameFile(sourceInfo, targetInfo) {
			return errors.Errorf("target already exists: %s", target)
		}
	} else if !os.IsNotExist(err) {
		return errors.Errorf("checking target existence: %w", err)
	}

	if err := os.Rename(h.path, target); err != nil {
		return errors.Errorf("renaming file: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("from", h.path).Str("to", target).Msg("renamed file")

	h.path = target
	return nil
}
