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
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// ❌ ErrorKind classifies why a run stopped
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindCannotRenameRoot
	KindFileNotFound
	KindFileSystemRenameFailed
	KindTransformFailed
)

// String returns a string representation of ErrorKind
func (k ErrorKind) String() string {
	switch k {
	case KindCannotRenameRoot:
		return "cannot rename root"
	case KindFileNotFound:
		return "file not found"
	case KindFileSystemRenameFailed:
		return "rename failed"
	case KindTransformFailed:
		return "transform failed"
	default:
		return "unknown"
	}
}

// Error is returned by Run for every fatal condition.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err carries an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var re *Error
	return errors.As(err, &re) && re.Kind == kind
}
