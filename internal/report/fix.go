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

package report

import (
	"bytes"
	"cmp"
	"slices"

	"fillmore-labs.com/hookguard/internal/syntax"
)

// Replace creates a fix replacing the source of n.
func Replace(n *syntax.Node, text, message string) *Fix {
	return &Fix{Message: message, Edits: []Edit{{Start: n.Start, End: n.End, Text: text}}}
}

// InsertAfter creates a fix inserting text after n.
func InsertAfter(n *syntax.Node, text, message string) *Fix {
	return &Fix{Message: message, Edits: []Edit{{Start: n.End, End: n.End, Text: text}}}
}

// ApplyFixes applies fixes to src and returns the result. applied[i] reports whether fixes[i]
// was applied.
//
// Fixes are considered in order. A fix with an edit overlapping an edit of an earlier
// applied fix is skipped entirely; edits are relative to the unmodified source.
func ApplyFixes(src []byte, fixes []*Fix) (result []byte, applied []bool) {
	var accepted []Edit

	applied = make([]bool, len(fixes))

fixes:
	for i, fix := range fixes {
		if fix == nil || len(fix.Edits) == 0 {
			continue
		}

		for _, e := range fix.Edits {
			if e.Start < 0 || e.End < e.Start || e.End > len(src) {
				continue fixes
			}

			for _, a := range accepted {
				if overlaps(a, e) {
					continue fixes
				}
			}
		}

		// Edits within one fix may not overlap each other either
		edits := slices.Clone(fix.Edits)
		sortEdits(edits)

		for j := 1; j < len(edits); j++ {
			if overlaps(edits[j-1], edits[j]) {
				continue fixes
			}
		}

		accepted = append(accepted, edits...)
		applied[i] = true
	}

	sortEdits(accepted)

	var (
		out  bytes.Buffer
		last int
	)

	out.Grow(len(src))

	for _, e := range accepted {
		out.Write(src[last:e.Start]) // ignore error
		out.WriteString(e.Text)      // ignore error
		last = e.End
	}

	out.Write(src[last:]) // ignore error

	return out.Bytes(), applied
}

func sortEdits(edits []Edit) {
	slices.SortStableFunc(edits, func(a, b Edit) int {
		return cmp.Or(cmp.Compare(a.Start, b.Start), cmp.Compare(a.End, b.End))
	})
}

// overlaps reports whether two edits touch the same bytes. Two insertions at the same
// offset overlap, since their order would be ambiguous.
func overlaps(a, b Edit) bool {
	if a.Start == b.Start {
		return true
	}

	return a.Start < b.End && b.Start < a.End
}
