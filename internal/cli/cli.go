// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package cli implements the hookguard command line.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/hookguard/analyzer"
	"fillmore-labs.com/hookguard/internal/config"
	"fillmore-labs.com/hookguard/internal/report"
)

// Exit codes of the command.
const (
	ExitOK       = 0 // No problems found
	ExitFindings = 1 // One or more problems were reported
	ExitError    = 2 // Bad invocation, unreadable files or configuration errors
)

// DefaultConfig is the configuration file used when present and none is given.
const DefaultConfig = ".hookguard.yaml"

var errUsage = errors.New("invalid usage")

// exitError carries the exit code of a completed run.
type exitError struct{ code int }

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// settings are the command line options not handled by [analyzer.Flags].
type settings struct {
	config  string
	rules   []string
	json    bool
	fix     bool
	diff    bool
	list    bool
	verbose bool
	jobs    int
	color   string
}

// Main runs the command with args and returns the process exit code.
func Main(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewCommand(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)

	var exit exitError

	switch {
	case err == nil:
		return ExitOK

	case errors.As(err, &exit):
		return exit.code

	default:
		fmt.Fprintf(stderr, "hookguard: %v\n", err) // ignore error

		return ExitError
	}
}

// NewCommand creates the hookguard command writing results to stdout and logs to stderr.
//
// Flags can be set through HOOKGUARD_ prefixed environment variables, e.g. HOOKGUARD_JOBS=4.
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	host := analyzer.NewFlags()

	cmd := &cobra.Command{
		Use:   "hookguard [flags] [paths...]",
		Short: "Check React hook stability in TypeScript and JavaScript sources",
		Long: `Check React hook stability in TypeScript and JavaScript sources.

hookguard reports functions and values that defeat memoization, memoizing
wrappers that add nothing, and violations of project conventions. Directories
are searched for .ts, .tsx, .js and .jsx files, skipping node_modules and
hidden directories. With no paths, the current directory is checked.

Exit codes:
  0  No problems found
  1  One or more problems were reported
  2  Bad invocation, unreadable files or invalid configuration

To suppress a diagnostic, add a comment on the same line or the line above:
  const onClickHandler = () => {}; // nolint:no-handler-suffix

Available rules:
` + analyzer.RuleDoc(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyEnv(cmd.Flags(), v); err != nil {
				return err
			}

			s := settings{
				config:  v.GetString("config"),
				rules:   v.GetStringSlice("rules"),
				json:    v.GetBool("json"),
				fix:     v.GetBool("fix"),
				diff:    v.GetBool("diff"),
				list:    v.GetBool("list"),
				verbose: v.GetBool("verbose"),
				jobs:    v.GetInt("jobs"),
				color:   v.GetString("color"),
			}

			return run(cmd.Context(), s, host, args, stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.String("config", "", "rule configuration file (default "+DefaultConfig+" when present)")
	f.StringSlice("rules", nil, "comma separated rules to run, overriding the configuration")
	f.Bool("json", false, "print diagnostics as JSON")
	f.Bool("fix", false, "apply suggested fixes in place")
	f.Bool("diff", false, "print suggested fixes as unified diff")
	f.Bool("list", false, "list available rules and exit")
	f.IntP("jobs", "j", runtime.GOMAXPROCS(0), "number of files analyzed in parallel")
	f.BoolP("verbose", "v", false, "log debug output")
	f.String("color", "auto", `colored output: "auto", "always" or "never"`)

	goFlags := flag.NewFlagSet("hookguard", flag.ContinueOnError)
	host.Register(goFlags)
	f.AddGoFlagSet(goFlags)

	cmd.MarkFlagsMutuallyExclusive("fix", "diff")
	cmd.MarkFlagsMutuallyExclusive("json", "diff")

	v.SetEnvPrefix("hookguard")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(f); err != nil {
		panic(err) // only fails for a nil flag set
	}

	return cmd
}

// applyEnv sets flags handled by [analyzer.Flags] from the environment, unless given on the command line.
func applyEnv(flags *pflag.FlagSet, v *viper.Viper) error {
	var errs []error

	for _, name := range []string{"generated", "suggest-fixes", "nolint", "max-file-size"} {
		f := flags.Lookup(name)
		if f == nil || f.Changed || !v.IsSet(name) {
			continue
		}

		if err := flags.Set(name, v.GetString(name)); err != nil {
			errs = append(errs, fmt.Errorf("%w: environment for %s: %w", errUsage, name, err))
		}
	}

	return errors.Join(errs...)
}

func run(ctx context.Context, s settings, host *analyzer.Flags, args []string, stdout, stderr io.Writer) error {
	level := slog.LevelInfo
	if s.verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if s.list {
		_, err := io.WriteString(stdout, analyzer.RuleDoc())

		return err
	}

	p, err := choosePalette(s.color, stdout)
	if err != nil {
		return err
	}

	opts := analyzer.Options{host.Option(), analyzer.WithLogger(logger)}

	cfg, err := loadConfig(s.config)
	if err != nil {
		return err
	}

	if cfg != nil {
		opts = append(opts, analyzer.WithConfig(cfg))
	}

	if len(s.rules) > 0 {
		opts = append(opts, analyzer.WithRules(s.rules...))
	}

	a, err := analyzer.New(opts)
	if err != nil {
		return err
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "Active rules", slog.Any("rules", a.Rules()))

	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	results, failed := analyzeAll(ctx, a, files, s.jobs)

	for _, err := range failed {
		logger.LogAttrs(ctx, slog.LevelError, "Analysis failed", slog.Any("error", err))
	}

	var findings int

	switch {
	case s.diff:
		findings, err = writeDiffs(stdout, results)

	case s.fix:
		findings, err = fixFiles(ctx, logger, results)
		if err == nil {
			err = output(stdout, p, s.json, results)
		}

	default:
		findings = count(results)
		err = output(stdout, p, s.json, results)
	}

	switch {
	case err != nil:
		return err

	case len(failed) > 0:
		return exitError{ExitError}

	case findings > 0:
		return exitError{ExitFindings}

	default:
		return nil
	}
}

// loadConfig reads the rule configuration. Without a name, [DefaultConfig] is read when present.
func loadConfig(name string) (*config.File, error) {
	if name != "" {
		return config.Load(name)
	}

	cfg, err := config.Load(DefaultConfig)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	return cfg, err
}

// analyzeAll analyzes files in parallel, keeping the order of files.
func analyzeAll(ctx context.Context, a *analyzer.Analyzer, files []string, jobs int) ([]*analyzer.Result, []error) {
	results := make([]*analyzer.Result, len(files))
	errs := make([]error, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))

	for i, file := range files {
		g.Go(func() error {
			src, err := os.ReadFile(file)
			if err == nil {
				results[i], err = a.AnalyzeFile(ctx, file, src)
			}

			errs[i] = err

			return nil
		})
	}

	_ = g.Wait() // errors are collected per file

	var (
		ok     = results[:0]
		failed []error
	)

	for i, res := range results {
		if errs[i] != nil {
			failed = append(failed, errs[i])

			continue
		}

		ok = append(ok, res)
	}

	return ok, failed
}

func count(results []*analyzer.Result) int {
	var n int
	for _, res := range results {
		n += len(res.Diagnostics)
	}

	return n
}

func output(w io.Writer, p palette, asJSON bool, results []*analyzer.Result) error {
	if asJSON {
		return writeJSON(w, results)
	}

	return writeText(w, p, results)
}

// writeDiffs prints the suggested fixes of all results as unified diffs and
// returns the number of diagnostics.
func writeDiffs(w io.Writer, results []*analyzer.Result) (int, error) {
	for _, res := range results {
		fixed, applied := res.Fixed()
		if !slices.Contains(applied, true) {
			continue
		}

		d, err := report.Diff(filepath.ToSlash(res.Path), res.Source(), fixed)
		if err != nil {
			return 0, err
		}

		if _, err := w.Write(d); err != nil {
			return 0, err
		}
	}

	return count(results), nil
}

// fixFiles writes the fixed sources and removes fixed diagnostics from results.
// It returns the number of remaining diagnostics.
func fixFiles(ctx context.Context, logger *slog.Logger, results []*analyzer.Result) (int, error) {
	var remaining int

	for _, res := range results {
		fixed, applied := res.Fixed()
		if n := countApplied(applied); n > 0 {
			info, err := os.Stat(res.Path)
			if err != nil {
				return 0, err
			}

			if err := os.WriteFile(res.Path, fixed, info.Mode().Perm()); err != nil {
				return 0, err
			}

			logger.LogAttrs(ctx, slog.LevelInfo, "Applied fixes", slog.String("path", res.Path), slog.Int("count", n))
		}

		res.Diagnostics = unfixed(res.Diagnostics, applied)
		remaining += len(res.Diagnostics)
	}

	return remaining, nil
}

func countApplied(applied []bool) int {
	var n int

	for _, a := range applied {
		if a {
			n++
		}
	}

	return n
}

// unfixed returns the diagnostics whose fix was not applied.
func unfixed(diagnostics []analysis.Diagnostic, applied []bool) []analysis.Diagnostic {
	remaining := diagnostics[:0]

	for i, d := range diagnostics {
		if !applied[i] {
			remaining = append(remaining, d)
		}
	}

	return remaining
}
