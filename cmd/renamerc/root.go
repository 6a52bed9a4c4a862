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

package main

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/renamerc/cmd/renamerc/opts"
	"github.com/walteh/renamerc/pkg/config"
	"github.com/walteh/renamerc/pkg/rename"
	"github.com/walteh/renamerc/pkg/report"
	"github.com/walteh/renamerc/pkg/rule"
	"gitlab.com/tozd/go/errors"
)

// newRootCmd creates the renamerc command
func newRootCmd() *cobra.Command {
	var (
		rootOpts    opts.RootOpts
		renameFlags opts.RenameFlags
		ruleFlags   opts.RuleFlags
	)

	cmd := &cobra.Command{
		Use:   "renamerc [flags] <files...>",
		Short: "Rename files by rewriting their base names",
		Long: `Renamerc applies a rename rule to the base name of every file given.
The extension is kept aside and never changed.

Examples:
  renamerc --regex '^IMG_' --replace 'photo-' *.jpg
  renamerc --literal ' =_' --all --dry-run *.pdf
  renamerc --try --upper report.txt
  renamerc --version`,
		Version:       FormatVersion(GetVersionInfo()),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if renameFlags.TryOut && len(args) != 1 {
				return errors.Errorf("--try takes exactly one file name, got %d", len(args))
			}
			if len(args) == 0 {
				return errors.Errorf("at least one file is required")
			}
			return nil
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(setupLogging(cmd.Context(), cmd.ErrOrStderr(), rootOpts.Debug))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), rootOpts, renameFlags.Options(args), ruleFlags)
		},
	}

	rootOpts.AddFlags(cmd)
	renameFlags.AddFlags(cmd)
	ruleFlags.AddFlags(cmd)

	cmd.SetVersionTemplate("{{.Version}}")

	return cmd
}

// run resolves the rules, then renames
func run(ctx context.Context, out io.Writer, rootOpts opts.RootOpts, options rename.Options, ruleFlags opts.RuleFlags) error {
	logger := zerolog.Ctx(ctx)

	rules, err := ruleFlags.Rules()
	if err != nil {
		return errors.Errorf("reading rule flags: %w", err)
	}

	configFile := rootOpts.ConfigFile
	if configFile == "" && ruleFlags.Empty() {
		if configFile, err = config.Find("."); err != nil {
			return errors.Errorf("looking for rules file: %w", err)
		}
	}

	if configFile != "" {
		cfg, err := config.Load(ctx, configFile)
		if err != nil {
			return errors.Errorf("loading config: %w", err)
		}
		logger.Debug().Str("config", cfg.Location()).Str("rules", cfg.String()).Msg("using rules file")

		rules = append(cfg.Rules, rules...)
		options.Quiet = options.Quiet || cfg.Defaults.Quiet
		options.Verbose = options.Verbose || cfg.Defaults.Verbose
		options.DryRun = options.DryRun || cfg.Defaults.DryRun
	}

	if len(rules) == 0 {
		return errors.Errorf("no rename rule given: use --regex, --literal, --lower, --upper, --title, --prefix, --suffix or a rules file")
	}

	transform, err := rule.Compile(rules)
	if err != nil {
		return errors.Errorf("compiling rules: %w", err)
	}

	console := report.New(out)
	renamed, err := rename.New(rename.NewOSFileSystem(), console).Run(ctx, options, transform)
	if err != nil {
		return errors.Errorf("renaming files: %w", err)
	}

	if options.Verbose && !options.TryOut {
		console.Summary(ctx, renamed, options)
	}

	return nil
}

// setupLogging configures zerolog based on flags
func setupLogging(ctx context.Context, w io.Writer, debug bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}
