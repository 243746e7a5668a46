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
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sourcegraph/go-diff/diff"
)

// contextLines is the number of unchanged lines surrounding a change in a hunk.
const contextLines = 3

// Diff returns a unified diff between the original and the fixed source of path,
// or nil when both are equal.
func Diff(path string, orig, fixed []byte) ([]byte, error) {
	if bytes.Equal(orig, fixed) {
		return nil, nil
	}

	a, b := splitLines(orig), splitLines(fixed)
	m := difflib.NewMatcher(a, b)

	fd := &diff.FileDiff{
		OrigName: "a/" + path,
		NewName:  "b/" + path,
	}

	for _, group := range m.GetGroupedOpCodes(contextLines) {
		fd.Hunks = append(fd.Hunks, hunk(group, a, b))
	}

	return diff.PrintFileDiff(fd)
}

// splitLines splits src after each newline, a final line without newline is kept as is.
func splitLines(src []byte) []string {
	lines := strings.SplitAfter(string(src), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

func hunk(group []difflib.OpCode, a, b []string) *diff.Hunk {
	first, last := group[0], group[len(group)-1]

	h := &diff.Hunk{
		OrigLines: int32(last.I2 - first.I1),
		NewLines:  int32(last.J2 - first.J1),
	}

	// Unified diff positions of empty ranges name the line before the range
	h.OrigStartLine = int32(first.I1) + 1
	if h.OrigLines == 0 {
		h.OrigStartLine--
	}

	h.NewStartLine = int32(first.J1) + 1
	if h.NewLines == 0 {
		h.NewStartLine--
	}

	var body bytes.Buffer

	for _, op := range group {
		if op.Tag == 'e' {
			writeLines(&body, ' ', a[op.I1:op.I2])

			continue
		}

		if op.Tag == 'r' || op.Tag == 'd' {
			writeLines(&body, '-', a[op.I1:op.I2])
		}

		if op.Tag == 'r' || op.Tag == 'i' {
			writeLines(&body, '+', b[op.J1:op.J2])
		}
	}

	h.Body = body.Bytes()

	return h
}

func writeLines(body *bytes.Buffer, prefix byte, lines []string) {
	for _, line := range lines {
		body.WriteByte(prefix) // ignore error
		body.WriteString(line) // ignore error

		if !strings.HasSuffix(line, "\n") {
			body.WriteString("\n\\ No newline at end of file\n") // ignore error
		}
	}
}
