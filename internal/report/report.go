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
	"cmp"
	"slices"
	"strings"

	"fillmore-labs.com/hookguard/internal/syntax"
)

// Finding is one rule match.
type Finding struct {
	// Node is the reported node, findings are ordered by its position.
	Node *syntax.Node

	// Kind selects the message template.
	Kind string

	// Data fills the placeholders of the message template.
	Data map[string]string

	// Related points to other nodes relevant to the finding.
	Related []Related

	// Fix is an optional rewrite.
	Fix *Fix
}

// Related is additional position information of a [Finding].
type Related struct {
	Node    *syntax.Node
	Message string
}

// Fix is a rewrite of the unmodified source. Its edits are applied together or not at all.
type Fix struct {
	Message string
	Edits   []Edit
}

// Edit replaces the source bytes [Start, End) with Text.
type Edit struct {
	Start, End int
	Text       string
}

// Reporter collects the findings of one rule run on one file.
type Reporter struct {
	findings []Finding
}

// Report records a finding.
func (r *Reporter) Report(f Finding) {
	r.findings = append(r.findings, f)
}

// Len returns the number of recorded findings.
func (r *Reporter) Len() int {
	return len(r.findings)
}

// Findings returns the recorded findings in document order of their nodes.
// Findings on the same position keep their reporting order.
func (r *Reporter) Findings() []Finding {
	findings := slices.Clone(r.findings)

	slices.SortStableFunc(findings, func(a, b Finding) int {
		return cmp.Or(
			cmp.Compare(a.Node.Start, b.Node.Start),
			cmp.Compare(a.Node.End, b.Node.End),
		)
	})

	return findings
}

// Names formats a list of names into a human-readable string (e.g., "'a', 'b' and 'c'").
func Names(names []string) string {
	var all strings.Builder

	for i, name := range names {
		if i > 0 {
			var separator string
			if i == len(names)-1 {
				separator = " and "
			} else {
				separator = ", "
			}

			all.WriteString(separator) // ignore error
		}

		all.WriteByte('\'')   // ignore error
		all.WriteString(name) // ignore error
		all.WriteByte('\'')   // ignore error
	}

	return all.String()
}
