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

package astutil

import (
	"regexp"
	"slices"
	"strings"

	"fillmore-labs.com/hookguard/internal/syntax"
)

// hookguard is the name of the linter.
const hookguard = "hookguard"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file      *syntax.File
	generated bool
}

// NewCurrentFile creates a new [CurrentFile] from a parsed [syntax.File].
func NewCurrentFile(file *syntax.File) CurrentFile {
	if file == nil || file.Root == nil {
		return CurrentFile{}
	}

	return CurrentFile{file, IsGenerated(file)}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a parsed file.
func (c CurrentFile) Valid() bool {
	return c.file != nil
}

// File returns the underlying file.
func (c CurrentFile) File() *syntax.File {
	return c.file
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Lines returns the number of lines a node spans.
func (c CurrentFile) Lines(n *syntax.Node) int {
	return c.file.Line(n.End) - c.file.Line(n.Start) + 1
}

// NoLintComment checks if the line of offset carries a nolint directive for rule,
// either trailing on the same line or on a comment line directly above.
func (c CurrentFile) NoLintComment(offset int, rule string) bool {
	if c.file == nil {
		return false
	}

	comments := c.file.Comments
	line := c.file.Line(offset)

	// find the first comment ending on or after the line above
	i, _ := slices.BinarySearchFunc(comments, line-1,
		func(cm syntax.Comment, l int) int { return c.file.Line(cm.End) - l })

	for ; i < len(comments); i++ {
		comment := comments[i]

		switch l := c.file.Line(comment.Start); {
		case l > line:
			return false

		case l == line-1 && !c.ownLine(comment):
			continue
		}

		if CommentHasNoLint(comment.Text, rule) {
			return true
		}
	}

	return false
}

// ownLine reports whether only whitespace precedes the comment on its line.
func (c CurrentFile) ownLine(comment syntax.Comment) bool {
	indent := c.file.IndentAt(comment.Start)
	start := strings.LastIndexByte(string(c.file.Src[:comment.Start]), '\n') + 1

	return start+len(indent) == comment.Start
}

var nolintPattern = regexp.MustCompile(`^(?://|/\*)\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment contains a `// nolint:hookguard`
// directive, or one naming rule.
func CommentHasNoLint(text, rule string) bool {
	matches := nolintPattern.FindStringSubmatch(text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == hookguard || l == "all" || l == rule {
			return true
		}
	}

	return false
}

var generatedPattern = regexp.MustCompile(`@generated\b|^// Code generated .* DO NOT EDIT\.$`)

// IsGenerated reports whether a comment before the first statement of the file
// marks it as generated.
func IsGenerated(file *syntax.File) bool {
	end := len(file.Src)
	if len(file.Root.Children) > 0 {
		end = file.Root.Children[0].Start
	}

	for _, comment := range file.Comments {
		if comment.Start >= end {
			break
		}

		for line := range strings.Lines(comment.Text) {
			if generatedPattern.MatchString(strings.TrimRight(line, "\r\n")) {
				return true
			}
		}
	}

	return false
}
