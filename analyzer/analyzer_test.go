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

package analyzer_test

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/hookguard/analyzer"
	"fillmore-labs.com/hookguard/internal/config"
	"fillmore-labs.com/hookguard/internal/syntax"
)

const storeMessage = "direct call to localStorage.clear bypasses the storage facade (hg:direct-store)"

func TestAnalyzeFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		src     string
		options Option
		want    []string
	}{
		{
			name: "Default",
			path: "src/Form.tsx",
			src: `export function Form({ onSave }) {
  return <Editor onSubmit={(v) => onSave(v)} />;
}
`,
			want: []string{
				"2:28 memoized-options: onSubmit receives a function recreated on every render, wrap it in useCallback (hg:raw-function)",
			},
		},
		{
			name:    "Selected",
			path:    "src/store.ts",
			src:     "localStorage.clear();\nconst clickHandler = () => {};\n",
			options: WithRules("no-direct-store"),
			want:    []string{"1:1 no-direct-store: " + storeMessage},
		},
		{
			name:    "Ordered",
			path:    "src/store.ts",
			src:     "const clickHandler = () => {};\nlocalStorage.clear();\n",
			options: WithRules("no-direct-store", "no-handler-suffix"),
			want: []string{
				"1:7 no-handler-suffix: clickHandler ends in Handler, name it handleClick (hg:handler-suffix)",
				"2:1 no-direct-store: " + storeMessage,
			},
		},
		{
			name: "NoLint",
			path: "src/store.ts",
			src: `localStorage.clear(); // nolint:no-direct-store
// nolint:hookguard
localStorage.clear();
localStorage.clear(); // nolint:no-handler-suffix
`,
			options: WithRules("no-direct-store"),
			want:    []string{"4:1 no-direct-store: " + storeMessage},
		},
		{
			name: "IgnoreNoLint",
			path: "src/store.ts",
			src:  "localStorage.clear(); // nolint:no-direct-store\n",
			options: Options{
				WithRules("no-direct-store"),
				WithNoLint(false),
			},
			want: []string{"1:1 no-direct-store: " + storeMessage},
		},
		{
			name:    "Generated",
			path:    "src/store.ts",
			src:     "// Code generated by storegen. DO NOT EDIT.\n\nlocalStorage.clear();\n",
			options: WithRules("no-direct-store"),
			want:    []string{},
		},
		{
			name:    "IncludeGenerated",
			path:    "src/store.ts",
			src:     "// Code generated by storegen. DO NOT EDIT.\n\nlocalStorage.clear();\n",
			options: Options{WithRules("no-direct-store"), WithGenerated(true)},
			want:    []string{"3:1 no-direct-store: " + storeMessage},
		},
		{
			name: "Excluded",
			path: "src/storage/facade.ts",
			src:  "localStorage.clear();\n",
			options: WithConfig(mustParse(t, `
rules:
  no-direct-store:
    exclude: ["src/storage/**"]
`)),
			want: []string{},
		},
		{
			name: "Configured",
			path: "src/api.ts",
			src:  "localStorage.clear();\ndb.query();\n",
			options: WithConfig(mustParse(t, `
rules:
  no-direct-store:
    options:
      forbidden:
        - pattern: "db.*"
          facade: "the repository"
  no-handler-suffix:
    disabled: true
`)),
			want: []string{"2:1 no-direct-store: direct call to db.query bypasses the repository (hg:direct-store)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a, err := New(tt.options)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}

			res, err := a.AnalyzeFile(t.Context(), tt.path, []byte(tt.src))
			if err != nil {
				t.Fatalf("AnalyzeFile failed: %v", err)
			}

			got := make([]string, 0, len(res.Diagnostics))
			for _, d := range res.Diagnostics {
				pos := res.Position(d.Pos)
				got = append(got, fmt.Sprintf("%d:%d %s: %s", pos.Line, pos.Column, d.Category, d.Message))
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Diagnostics mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFixed(t *testing.T) {
	t.Parallel()

	const (
		src  = "const submitHandler = () => {};\nsubmitHandler();\n"
		want = "const handleSubmit = () => {};\nhandleSubmit();\n"
	)

	a, err := New(WithRules("no-handler-suffix"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	res, err := a.AnalyzeFile(t.Context(), "form.js", []byte(src))
	if err != nil {
		t.Fatalf("AnalyzeFile failed: %v", err)
	}

	got, applied := res.Fixed()
	if wantApplied := []bool{true}; !slices.Equal(applied, wantApplied) {
		t.Errorf("Got applied fixes %v, want %v", applied, wantApplied)
	}

	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("Fixed source mismatch (-want +got):\n%s", diff)
	}
}

func TestWithoutFixes(t *testing.T) {
	t.Parallel()

	a, err := New(WithRules("no-handler-suffix"), WithFixes(false))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	res, err := a.AnalyzeFile(t.Context(), "form.js", []byte("const submitHandler = () => {};\n"))
	if err != nil {
		t.Fatalf("AnalyzeFile failed: %v", err)
	}

	if len(res.Diagnostics) != 1 {
		t.Fatalf("Got %d diagnostics, want 1", len(res.Diagnostics))
	}

	if fixes := res.Diagnostics[0].SuggestedFixes; len(fixes) != 0 {
		t.Errorf("Got suggested fixes %v, want none", fixes)
	}
}

func TestNewErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		options Option
		want    error
	}{
		{"UnknownRule", WithRules("no-such-rule"), config.ErrUnknownRule},
		{"UnknownConfigured", WithConfig(mustParse(t, "rules: {no-such-rule: {}}")), config.ErrUnknownRule},
		{"InvalidOption", WithConfig(mustParse(t, "rules: {no-handler-suffix: {options: {prefix: \"\"}}}")), config.ErrInvalidOption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := New(tt.options); !errors.Is(err, tt.want) {
				t.Errorf("Got error %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAnalyzeFileErrors(t *testing.T) {
	t.Parallel()

	a, err := New(WithMaxFileSize(16))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	tests := []struct {
		name string
		path string
		src  string
		want error
	}{
		{"TooLarge", "big.ts", strings.Repeat("x;", 16), syntax.ErrFileTooLarge},
		{"InvalidContent", "bad.ts", "\xff;", syntax.ErrInvalidContent},
		{"Unsupported", "style.css", "a {}", syntax.ErrUnsupportedLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := a.AnalyzeFile(t.Context(), tt.path, []byte(tt.src)); !errors.Is(err, tt.want) {
				t.Errorf("Got error %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRules(t *testing.T) {
	t.Parallel()

	a, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if diff := cmp.Diff(RuleNames(), a.Rules()); diff != "" {
		t.Errorf("Active rules mismatch (-want +got):\n%s", diff)
	}

	for _, name := range RuleNames() {
		if !strings.Contains(RuleDoc(), name) {
			t.Errorf("Got rule documentation without %s", name)
		}
	}
}

func mustParse(tb testing.TB, src string) *config.File {
	tb.Helper()

	cfg, err := config.Parse(strings.NewReader(src))
	if err != nil {
		tb.Fatalf("Failed to parse configuration: %v", err)
	}

	return cfg
}
