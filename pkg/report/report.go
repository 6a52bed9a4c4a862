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

package report

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/renamerc/pkg/rename"
)

// 🎯 Console writes rename progress to a writer and mirrors every line to
// the context logger
type Console struct {
	console io.Writer
	mu      sync.Mutex
}

var _ rename.Reporter = (*Console)(nil)

// 🏭 New creates a Console writing to console
func New(console io.Writer) *Console {
	return &Console{
		console: console,
	}
}

// 📝 Before prints the numbered line shown ahead of a verbose transform
func (c *Console) Before(ctx context.Context, res rename.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintf(c.console, "%d. %s%s\n", res.Index, res.Dir, color.New(color.Bold).Sprint(res.Original))

	zerolog.Ctx(ctx).Debug().
		Int("index", res.Index).
		Str("dir", res.Dir).
		Str("name", res.Original).
		Msg("before")
}

// 📝 After prints the outcome for one entry
func (c *Console) After(ctx context.Context, res rename.Result, style rename.Style) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintln(c.console, FormatAfter(res, style))

	zerolog.Ctx(ctx).Debug().
		Int("index", res.Index).
		Str("from", res.Original).
		Str("to", res.Replacement).
		Bool("renamed", res.Renamed).
		Msg("after")
}

// 🎨 FormatAfter renders an after-line. Verbose lines are indented by the
// width of the "N. " label so they line up under the before-line's text.
func FormatAfter(res rename.Result, style rename.Style) string {
	if style == rename.StyleVerbose {
		indent := strings.Repeat(" ", len(strconv.Itoa(res.Index))+2)
		if res.Renamed {
			return indent + "renamed to " + color.GreenString(res.Replacement)
		}
		return indent + color.HiBlackString("not renamed")
	}

	if res.Renamed {
		return fmt.Sprintf("'%s' renamed to '%s'", res.Original, color.GreenString(res.Replacement))
	}
	return fmt.Sprintf("'%s' %s", res.Original, color.HiBlackString("not renamed"))
}

// ✅ Summary prints the closing count of a run
func (c *Console) Summary(ctx context.Context, renamed int, opts rename.Options) {
	c.mu.Lock()
	defer c.mu.Unlock()

	msg := summaryMessage(renamed, opts)
	if renamed > 0 && !opts.DryRun {
		pterm.Success.WithWriter(c.console).Println(msg)
	} else {
		pterm.Info.WithWriter(c.console).Println(msg)
	}

	zerolog.Ctx(ctx).Debug().Int("renamed", renamed).Bool("dry_run", opts.DryRun).Msg(msg)
}

// ❌ Failure prints a fatal error
func (c *Console) Failure(ctx context.Context, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pterm.Error.WithWriter(c.console).Println(err.Error())

	zerolog.Ctx(ctx).Error().Err(err).Msg("rename aborted")
}

func summaryMessage(renamed int, opts rename.Options) string {
	noun := "files"
	if renamed == 1 {
		noun = "file"
	}
	if opts.DryRun {
		return fmt.Sprintf("%d %s would be renamed", renamed, noun)
	}
	return fmt.Sprintf("%d %s renamed", renamed, noun)
}
