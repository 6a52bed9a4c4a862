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

package pathparts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPath(t *testing.T) {
	tests := []struct {
		name     string
		full     string
		wantDir  string
		wantName string
	}{
		{name: "no_separator", full: "photo.jpg", wantDir: "", wantName: "photo.jpg"},
		{name: "relative_dir", full: "a/b/photo.jpg", wantDir: "a/b/", wantName: "photo.jpg"},
		{name: "absolute", full: "/tmp/photo.jpg", wantDir: "/tmp/", wantName: "photo.jpg"},
		{name: "root_file", full: "/photo.jpg", wantDir: "/", wantName: "photo.jpg"},
		{name: "trailing_separator", full: "a/b/", wantDir: "a/b/", wantName: ""},
		{name: "root_only", full: "/", wantDir: "/", wantName: ""},
		{name: "empty", full: "", wantDir: "", wantName: ""},
		{name: "dotfile_in_dir", full: "repo/.gitignore", wantDir: "repo/", wantName: ".gitignore"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, name := SplitPath(tt.full)
			assert.Equal(t, tt.wantDir, dir, "dir")
			assert.Equal(t, tt.wantName, name, "name")
			assert.Equal(t, tt.full, dir+name, "dir+name should rebuild the input")
		})
	}
}

func TestSplitExtension(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantBase string
		wantExtn string
	}{
		{name: "simple", input: "photo.jpg", wantBase: "photo", wantExtn: "jpg"},
		{name: "multiple_dots", input: "archive.tar.gz", wantBase: "archive.tar", wantExtn: "gz"},
		{name: "no_dot", input: "Makefile", wantBase: "Makefile", wantExtn: ""},
		{name: "dotfile", input: ".gitignore", wantBase: ".gitignore", wantExtn: ""},
		{name: "dotfile_with_extension", input: ".env.local", wantBase: ".env", wantExtn: "local"},
		{name: "trailing_dot", input: "file.", wantBase: "file", wantExtn: ""},
		{name: "empty", input: "", wantBase: "", wantExtn: ""},
		{name: "only_dot", input: ".", wantBase: ".", wantExtn: ""},
		{name: "double_dot", input: "..", wantBase: ".", wantExtn: ""},
		{name: "consecutive_dots", input: "a..b", wantBase: "a.", wantExtn: "b"},
		{name: "version_suffix", input: "LICENSE-2.0", wantBase: "LICENSE-2", wantExtn: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, extn := SplitExtension(tt.input)
			assert.Equal(t, tt.wantBase, base, "base")
			assert.Equal(t, tt.wantExtn, extn, "extension")
		})
	}
}

func TestSplitExtensionRoundTrip(t *testing.T) {
	names := []string{
		"photo.jpg",
		"archive.tar.gz",
		"a.b",
		".env.local",
		"x.y.z.w",
		"with space.txt",
		"unicode-é.md",
	}

	for _, n := range names {
		t.Run(n, func(t *testing.T) {
			base, extn := SplitExtension(n)
			assert.Equal(t, n, JoinExtension(base, extn))
		})
	}
}

func TestSplitExtensionNoExtension(t *testing.T) {
	for _, n := range []string{"README", ".gitignore", ".bashrc", "", "LICENSE"} {
		t.Run(n, func(t *testing.T) {
			base, extn := SplitExtension(n)
			assert.Equal(t, n, base)
			assert.Empty(t, extn)
		})
	}
}

func TestJoinExtension(t *testing.T) {
	assert.Equal(t, "photo", JoinExtension("photo", ""))
	assert.Equal(t, "photo.jpg", JoinExtension("photo", "jpg"))
	assert.Equal(t, ".jpg", JoinExtension("", "jpg"))
}
