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

package report_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/hookguard/internal/report"
	"fillmore-labs.com/hookguard/internal/syntax"
)

func TestFindingsOrder(t *testing.T) {
	t.Parallel()

	var r Reporter

	r.Report(Finding{Node: &syntax.Node{Start: 20, End: 25}, Kind: "c"})
	r.Report(Finding{Node: &syntax.Node{Start: 5, End: 9}, Kind: "b"})
	r.Report(Finding{Node: &syntax.Node{Start: 5, End: 7}, Kind: "a"})
	r.Report(Finding{Node: &syntax.Node{Start: 20, End: 25}, Kind: "d"})

	var got []string
	for _, f := range r.Findings() {
		got = append(got, f.Kind)
	}

	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, got); diff != "" {
		t.Errorf("Findings() mismatch (-want +got):\n%s", diff)
	}

	if r.Len() != 4 {
		t.Errorf("Got %d findings, want 4", r.Len())
	}
}

func TestNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		names []string
		want  string
	}{
		{nil, ""},
		{[]string{"a"}, "'a'"},
		{[]string{"a", "b"}, "'a' and 'b'"},
		{[]string{"a", "b", "c"}, "'a', 'b' and 'c'"},
	}

	for _, tt := range tests {
		if got := Names(tt.names); got != tt.want {
			t.Errorf("Got %q, want %q", got, tt.want)
		}
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	messages := Messages{
		"unstable": "{{ attribute }} receives an unstable function ({{reason}})",
		"plain":    "no placeholders",
		"broken":   "open {{ end",
	}

	tests := []struct {
		name string
		kind string
		data map[string]string
		want string
		err  error
	}{
		{"Filled", "unstable", map[string]string{"attribute": "onSubmit", "reason": "raw"}, "onSubmit receives an unstable function (raw)", nil},
		{"Plain", "plain", nil, "no placeholders", nil},
		{"Unclosed", "broken", nil, "open {{ end", nil},
		{"Missing", "unstable", map[string]string{"attribute": "onSubmit"}, "onSubmit receives an unstable function ()", ErrMissingData},
		{"Unknown", "other", nil, "", ErrUnknownMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := messages.Render(tt.kind, tt.data)
			if got != tt.want {
				t.Errorf("Got %q, want %q", got, tt.want)
			}

			if !errors.Is(err, tt.err) {
				t.Errorf("Got error %v, want %v", err, tt.err)
			}
		})
	}
}

func TestDiagnostic(t *testing.T) {
	t.Parallel()

	const src = "const x = useCallback(f, [f]);\n"

	f, err := syntax.NewParser().Parse(t.Context(), "a.ts", []byte(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	var call *syntax.Node

	for n := range f.Root.Preorder() {
		if n.Kind == syntax.KindCallExpression {
			call = n

			break
		}
	}

	if call == nil {
		t.Fatal("No call expression found")
	}

	finding := Finding{
		Node:    call,
		Kind:    "wrapper",
		Data:    map[string]string{"name": "f"},
		Related: []Related{{Node: call.Children[0], Message: "wrapper"}},
		Fix:     Replace(call, "f", ""),
	}

	d, err := Diagnostic(f, "redundant-memo-wrapper", Messages{"wrapper": "{{name}} is already stable"}, finding)
	if err != nil {
		t.Fatalf("Diagnostic failed: %v", err)
	}

	if d.Category != "redundant-memo-wrapper" || d.Message != "f is already stable" {
		t.Errorf("Got %q: %q, want redundant-memo-wrapper: f is already stable", d.Category, d.Message)
	}

	if got := f.Offset(d.Pos); got != call.Start {
		t.Errorf("Got start offset %d, want %d", got, call.Start)
	}

	if len(d.Related) != 1 || len(d.SuggestedFixes) != 1 {
		t.Fatalf("Got %d related and %d fixes, want 1 and 1", len(d.Related), len(d.SuggestedFixes))
	}

	fix := d.SuggestedFixes[0]
	if fix.Message != d.Message || len(fix.TextEdits) != 1 || string(fix.TextEdits[0].NewText) != "f" {
		t.Errorf("Got fix %+v, want a single edit to %q", fix, "f")
	}
}
