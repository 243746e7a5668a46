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

package syntax

import (
	"go/token"
	"strings"
)

// Comment is a source comment, including its delimiters.
type Comment struct {
	Start, End int
	Text       string
}

// File is a parsed source file. It owns the syntax tree and the source text.
type File struct {
	Path      string
	Src       []byte
	Language  Language
	Root      *Node
	Comments  []Comment // In source order
	HasErrors bool      // The tree contains syntax errors

	fset   *token.FileSet
	handle *token.File
}

func newFile(path string, src []byte, lang Language) *File {
	fset := token.NewFileSet()
	handle := fset.AddFile(path, -1, len(src))
	handle.SetLinesForContent(src)

	return &File{
		Path:     path,
		Src:      src,
		Language: lang,
		fset:     fset,
		handle:   handle,
	}
}

// FileSet returns the file set positions of this file are relative to.
func (f *File) FileSet() *token.FileSet {
	return f.fset
}

// Pos converts a byte offset into a [token.Pos].
func (f *File) Pos(offset int) token.Pos {
	return f.handle.Pos(offset)
}

// Offset converts a [token.Pos] of this file into a byte offset.
func (f *File) Offset(pos token.Pos) int {
	return f.handle.Offset(pos)
}

// Position returns the line and column of a byte offset.
func (f *File) Position(offset int) token.Position {
	return f.handle.PositionFor(f.handle.Pos(offset), false)
}

// Line returns the 1-based line number of a byte offset.
func (f *File) Line(offset int) int {
	return f.handle.Line(f.handle.Pos(offset))
}

// Text returns the source text of a node.
func (f *File) Text(n *Node) string {
	if n == nil {
		return ""
	}

	return string(f.Src[n.Start:n.End])
}

// StringValue returns the contents of a string literal without quotes.
func (f *File) StringValue(n *Node) string {
	if n == nil || n.Kind != KindStringLiteral {
		return ""
	}

	s := f.Text(n)
	if len(s) >= 2 {
		s = s[1 : len(s)-1]
	}

	return s
}

// IndentAt returns the leading whitespace of the line containing offset.
func (f *File) IndentAt(offset int) string {
	start := strings.LastIndexByte(string(f.Src[:offset]), '\n') + 1

	end := start
	for end < len(f.Src) && (f.Src[end] == ' ' || f.Src[end] == '\t') {
		end++
	}

	return string(f.Src[start:end])
}
