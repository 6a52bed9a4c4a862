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

// Package pathparts splits paths into directory and file name, and file names
// into base and extension. Everything here is pure string work; nothing touches
// the file system.
package pathparts

import (
	"os"
	"strings"
)

// 📂 SplitPath splits full on its last path separator.
//
// dir keeps the trailing separator so that dir+name == full. When full has no
// separator, dir is empty and name is full. A trailing separator yields an
// empty name.
func SplitPath(full string) (dir, name string) {
	i := len(full) - 1
	for i >= 0 && !os.IsPathSeparator(full[i]) {
		i--
	}
	return full[:i+1], full[i+1:]
}

// 🏷️ SplitExtension splits name on its last '.'.
//
// A name without a '.', or whose only usable '.' is the first character
// (".gitignore"), has no extension and is returned whole as base. The
// extension may be empty when name ends in '.' ("file." -> "file", "").
func SplitExtension(name string) (base, extn string) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name, ""
	}
	return name[:i], name[i+1:]
}

// 🔗 JoinExtension is the inverse of SplitExtension: an empty extension
// never produces a trailing dot.
func JoinExtension(base, extn string) string {
	if extn == "" {
		return base
	}
	return base + "." + extn
}
