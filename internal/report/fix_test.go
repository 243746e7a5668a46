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
	"slices"
	"testing"

	. "fillmore-labs.com/hookguard/internal/report"
	"fillmore-labs.com/hookguard/internal/scope"
	"fillmore-labs.com/hookguard/internal/syntax"
)

func TestApplyFixes(t *testing.T) {
	t.Parallel()

	const src = "const a = b + c;"

	tests := []struct {
		name    string
		fixes   []*Fix
		want    string
		applied []bool
	}{
		{
			name:    "None",
			want:    src,
			applied: nil,
		},
		{
			name:    "Single",
			fixes:   []*Fix{{Edits: []Edit{{Start: 10, End: 11, Text: "x"}}}},
			want:    "const a = x + c;",
			applied: []bool{true},
		},
		{
			name: "Disjoint",
			fixes: []*Fix{
				{Edits: []Edit{{Start: 14, End: 15, Text: "z"}}},
				{Edits: []Edit{{Start: 10, End: 11, Text: "y"}}},
			},
			want:    "const a = y + z;",
			applied: []bool{true, true},
		},
		{
			name: "Overlapping",
			fixes: []*Fix{
				{Edits: []Edit{{Start: 10, End: 15, Text: "d"}}},
				{Edits: []Edit{{Start: 14, End: 15, Text: "z"}}},
			},
			want:    "const a = d;",
			applied: []bool{true, false},
		},
		{
			name: "Atomic",
			fixes: []*Fix{
				{Edits: []Edit{{Start: 14, End: 15, Text: "z"}}},
				{Edits: []Edit{{Start: 6, End: 7, Text: "q"}, {Start: 14, End: 15, Text: "w"}}},
			},
			want:    "const a = b + z;",
			applied: []bool{true, false},
		},
		{
			name:    "Insertion",
			fixes:   []*Fix{{Edits: []Edit{{Start: 15, End: 15, Text: " * 2"}}}},
			want:    "const a = b + c * 2;",
			applied: []bool{true},
		},
		{
			name:    "OutOfRange",
			fixes:   []*Fix{{Edits: []Edit{{Start: 15, End: 99, Text: ""}}}},
			want:    src,
			applied: []bool{false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, applied := ApplyFixes([]byte(src), tt.fixes)
			if string(got) != tt.want || !slices.Equal(applied, tt.applied) {
				t.Errorf("Got %q (applied %v), want %q (applied %v)", got, applied, tt.want, tt.applied)
			}
		})
	}
}

func TestRename(t *testing.T) {
	t.Parallel()

	const src = `import { clickHandler } from "./handlers";
const submitHandler = () => {};
function C() {
  const handleSubmit = 1;
  return { submitHandler, handleSubmit, clickHandler };
}
export { submitHandler };
`

	f, err := syntax.NewParser().Parse(t.Context(), "rename.ts", []byte(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	tree := scope.Build(f)

	var r Renamer

	fixes := []*Fix{
		r.Rename(tree.Root.Lookup("submitHandler"), "handleSubmit"),
		r.Rename(tree.Root.Lookup("clickHandler"), "handleClick"),
	}

	if again := r.Rename(tree.Root.Lookup("submitHandler"), "onSubmit"); again != nil {
		t.Errorf("Got second rename %v, want nil", again)
	}

	got, applied := ApplyFixes(f.Src, fixes)

	const want = `import { clickHandler as handleClick } from "./handlers";
const handleSubmit2 = () => {};
function C() {
  const handleSubmit = 1;
  return { submitHandler: handleSubmit2, handleSubmit, clickHandler: handleClick };
}
export { handleSubmit2 as submitHandler };
`

	if string(got) != want || !slices.Equal(applied, []bool{true, true}) {
		t.Errorf("Got %q (applied %v), want %q", got, applied, want)
	}
}
