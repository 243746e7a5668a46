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

// Package testsource provides utilities for running hookguard rules in tests.
//
// Rule tests are txtar archives holding the source under test, optional rule options,
// the expected findings and the expected source after all fixes are applied:
//
//	-- options.yaml --
//	properties: {onSubmit: callback}
//	-- input.tsx --
//	...
//	-- findings --
//	3:20 rawFunction: onSubmit receives a function recreated on every render ...
//	-- fixed.tsx --
//	...
package testsource

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/hookguard/internal/config"
	"fillmore-labs.com/hookguard/internal/report"
	"fillmore-labs.com/hookguard/internal/rules"
	"fillmore-labs.com/hookguard/internal/scope"
	"fillmore-labs.com/hookguard/internal/syntax"
)

// Parse parses a source fragment as the file path and builds its scope tree.
func Parse(tb testing.TB, path, src string) (*syntax.File, *scope.Tree) {
	tb.Helper()

	f, err := syntax.NewParser().Parse(tb.Context(), path, []byte(src))
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	if f.HasErrors {
		tb.Fatalf("Source %q has syntax errors", src)
	}

	return f, scope.Build(f)
}

// Options creates a rule configuration with the given YAML options.
func Options(tb testing.TB, options string) *config.Rule {
	tb.Helper()

	cfg := &config.Rule{}
	if strings.TrimSpace(options) == "" {
		return cfg
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(options), &doc); err != nil {
		tb.Fatalf("Failed to parse options %q: %v", options, err)
	}

	if len(doc.Content) > 0 {
		cfg.Options = *doc.Content[0]
	}

	return cfg
}

// RunDir runs every txtar archive in dir as a subtest.
func RunDir(t *testing.T, rule *rules.Rule, dir string) {
	t.Helper()

	archives, err := filepath.Glob(filepath.Join(dir, "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}

	if len(archives) == 0 {
		t.Fatalf("No test archives in %s", dir)
	}

	for _, archive := range archives {
		name := strings.TrimSuffix(filepath.Base(archive), ".txtar")
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			RunArchive(t, rule, archive)
		})
	}
}

// RunArchive runs rule on the input of a txtar archive and compares findings and fixes.
func RunArchive(t *testing.T, rule *rules.Rule, archive string) {
	t.Helper()

	ar, err := txtar.ParseFile(archive)
	if err != nil {
		t.Fatal(err)
	}

	var (
		input, fixed   *txtar.File
		options        string
		expected       []string
		expectFindings bool
	)

	for i := range ar.Files {
		file := &ar.Files[i]

		switch {
		case file.Name == "options.yaml":
			options = string(file.Data)

		case file.Name == "findings":
			expectFindings = true
			expected = lines(string(file.Data))

		case strings.HasPrefix(file.Name, "input."):
			input = file

		case strings.HasPrefix(file.Name, "fixed."):
			fixed = file
		}
	}

	if input == nil || !expectFindings {
		t.Fatalf("Archive %s needs an input and a findings file", archive)
	}

	inst, err := rule.New(Options(t, options))
	if err != nil {
		t.Fatalf("Rule construction failed: %v", err)
	}

	f, tree := Parse(t, input.Name, string(input.Data))

	findings, err := rules.Run(inst, rules.NewContext(f, tree))
	if err != nil {
		t.Fatalf("Rule run failed: %v", err)
	}

	got := make([]string, 0, len(findings))
	fixes := make([]*report.Fix, 0, len(findings))

	for _, finding := range findings {
		msg, err := rule.Messages.Render(finding.Kind, finding.Data)
		if err != nil {
			t.Errorf("Message for %s: %v", finding.Kind, err)
		}

		pos := f.Position(finding.Node.Start)
		got = append(got, fmt.Sprintf("%d:%d %s: %s", pos.Line, pos.Column, finding.Kind, msg))
		fixes = append(fixes, finding.Fix)
	}

	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("Findings mismatch (-want +got):\n%s", diff)
	}

	result, _ := report.ApplyFixes(f.Src, fixes)

	want := input.Data
	if fixed != nil {
		want = fixed.Data
	}

	if diff := cmp.Diff(string(want), string(result)); diff != "" {
		t.Errorf("Fixed source mismatch (-want +got):\n%s", diff)
	}
}

func lines(s string) []string {
	result := []string{}

	for line := range strings.Lines(s) {
		if line = strings.TrimSpace(line); line != "" && !strings.HasPrefix(line, "#") {
			result = append(result, line)
		}
	}

	return result
}
