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

package analyzer

import (
	"cmp"
	"context"
	"go/token"
	"log/slog"
	"path/filepath"
	"runtime/trace"
	"slices"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/hookguard/internal/astutil"
	"fillmore-labs.com/hookguard/internal/config"
	"fillmore-labs.com/hookguard/internal/report"
	"fillmore-labs.com/hookguard/internal/rules"
	"fillmore-labs.com/hookguard/internal/scope"
	"fillmore-labs.com/hookguard/internal/syntax"
)

// Result holds the diagnostics of one analyzed file.
type Result struct {
	// Path is the path of the analyzed file.
	Path string

	// Generated is true when the file is generated and was skipped.
	Generated bool

	// Diagnostics in document order. The Category is the rule name.
	Diagnostics []analysis.Diagnostic

	file *syntax.File
}

// FileSet returns the file set diagnostic positions are relative to.
func (r *Result) FileSet() *token.FileSet {
	return r.file.FileSet()
}

// Source returns the analyzed source.
func (r *Result) Source() []byte {
	return r.file.Src
}

// Position converts a diagnostic position.
func (r *Result) Position(pos token.Pos) token.Position {
	return r.file.FileSet().Position(pos)
}

// Fixed returns the source with the suggested fixes of all diagnostics applied.
// fixed[i] reports whether the first suggested fix of Diagnostics[i] was applied;
// fixes overlapping an earlier fix are skipped.
func (r *Result) Fixed() (src []byte, fixed []bool) {
	fixes := make([]*report.Fix, len(r.Diagnostics))

	for i, d := range r.Diagnostics {
		if len(d.SuggestedFixes) == 0 {
			continue
		}

		sf := d.SuggestedFixes[0]
		fix := &report.Fix{Message: sf.Message, Edits: make([]report.Edit, 0, len(sf.TextEdits))}
		for _, e := range sf.TextEdits {
			fix.Edits = append(fix.Edits, report.Edit{
				Start: r.file.Offset(e.Pos),
				End:   r.file.Offset(e.End),
				Text:  string(e.NewText),
			})
		}

		fixes[i] = fix
	}

	return report.ApplyFixes(r.file.Src, fixes)
}

// AnalyzeFile parses src as the file path and runs all active rules applying to path.
//
// Parse failures are returned as errors, syntax errors in the source are tolerated.
// A failing rule yields an internal error diagnostic, other rules are unaffected.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string, src []byte) (*Result, error) {
	ctx, task := trace.NewTask(ctx, "HookGuard")
	defer task.End()

	var (
		f   *syntax.File
		err error
	)

	trace.WithRegion(ctx, "parse", func() {
		f, err = a.parser.Parse(ctx, path, src)
	})

	if err != nil {
		return nil, err
	}

	result := &Result{Path: path, file: f}

	currentFile := astutil.NewCurrentFile(f)
	if currentFile.Generated() && !a.behavior.Enabled(config.IncludeGenerated) {
		a.logger.LogAttrs(ctx, slog.LevelDebug, "Skipping generated file", slog.String("path", path))
		result.Generated = true

		return result, nil
	}

	if f.HasErrors {
		a.logger.LogAttrs(ctx, slog.LevelDebug, "File has syntax errors", slog.String("path", path))
	}

	var tree *scope.Tree

	trace.WithRegion(ctx, "scope", func() {
		tree = scope.Build(f)
	})

	slashPath := filepath.ToSlash(path)

	for _, ar := range a.rules {
		if !ar.cfg.Applies(slashPath) {
			continue
		}

		result.Diagnostics = append(result.Diagnostics, a.runRule(ctx, ar, currentFile, tree)...)
	}

	slices.SortStableFunc(result.Diagnostics, func(x, y analysis.Diagnostic) int {
		return cmp.Compare(x.Pos, y.Pos)
	})

	return result, nil
}

// runRule runs a single rule, converting findings to diagnostics.
func (a *Analyzer) runRule(ctx context.Context, ar activeRule, currentFile astutil.CurrentFile, tree *scope.Tree) (diagnostics []analysis.Diagnostic) {
	defer trace.StartRegion(ctx, ar.rule.Name).End()

	f := currentFile.File()

	defer func() {
		if p := recover(); p != nil {
			a.logger.LogAttrs(ctx, slog.LevelDebug, "Rule panicked",
				slog.String("rule", ar.rule.Name), slog.String("path", f.Path), slog.Any("panic", p))

			diagnostics = []analysis.Diagnostic{astutil.InternalError(f, nil, ar.rule.Name, "rule %s failed: %v", ar.rule.Name, p)}
		}
	}()

	findings, err := rules.Run(ar.inst, rules.NewContext(f, tree))
	if err != nil {
		return []analysis.Diagnostic{astutil.InternalError(f, nil, ar.rule.Name, "rule %s: %v", ar.rule.Name, err)}
	}

	diagnostics = make([]analysis.Diagnostic, 0, len(findings))

	for _, finding := range findings {
		if a.behavior.Enabled(config.HonorNoLint) && currentFile.NoLintComment(finding.Node.Start, ar.rule.Name) {
			continue
		}

		if !a.behavior.Enabled(config.SuggestFixes) {
			finding.Fix = nil
		}

		d, err := report.Diagnostic(f, ar.rule.Name, ar.rule.Messages, finding)
		if err != nil {
			a.logger.LogAttrs(ctx, slog.LevelDebug, "Incomplete message",
				slog.String("rule", ar.rule.Name), slog.String("kind", finding.Kind), slog.Any("error", err))
		}

		diagnostics = append(diagnostics, d)
	}

	return diagnostics
}
