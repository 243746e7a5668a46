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
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

var (
	// ErrFileTooLarge is returned when the source exceeds the parser's size limit.
	ErrFileTooLarge = errors.New("file too large")

	// ErrInvalidContent is returned when the source is not valid UTF-8.
	ErrInvalidContent = errors.New("content is not valid UTF-8")

	// ErrUnsupportedLanguage is returned for file extensions without a grammar.
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// DefaultMaxFileSize is the default size limit for parsed files.
const DefaultMaxFileSize = 4 << 20

// Language selects the grammar used for a file.
type Language uint8

const (
	// TypeScript parses plain TypeScript, without JSX.
	TypeScript Language = iota + 1

	// TSX parses TypeScript and JavaScript with JSX.
	TSX
)

func (l Language) grammar() *sitter.Language {
	switch l {
	case TypeScript:
		return typescript.GetLanguage()

	default:
		return tsx.GetLanguage()
	}
}

// LanguageFor selects the grammar by file extension.
func LanguageFor(path string) (Language, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".mts", ".cts":
		return TypeScript, true

	case ".tsx", ".js", ".jsx", ".mjs", ".cjs":
		return TSX, true

	default:
		return 0, false
	}
}

// Parser converts source text into a [File].
//
// A Parser is safe for concurrent use, every call creates its own tree-sitter parser.
type Parser struct {
	maxFileSize int
}

// ParserOption configures a [Parser].
type ParserOption func(*Parser)

// WithMaxFileSize sets the maximum accepted source size in bytes. Non-positive values are ignored.
func WithMaxFileSize(size int) ParserOption {
	return func(p *Parser) {
		if size > 0 {
			p.maxFileSize = size
		}
	}
}

// NewParser creates a [Parser].
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{maxFileSize: DefaultMaxFileSize}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse parses src, selecting the grammar by the extension of path.
//
// The parser is error tolerant, syntax errors are recorded in [File.HasErrors].
func (p *Parser) Parse(ctx context.Context, path string, src []byte) (*File, error) {
	lang, ok := LanguageFor(path)
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedLanguage)
	}

	return p.ParseLanguage(ctx, path, src, lang)
}

// ParseLanguage parses src with the given grammar.
func (p *Parser) ParseLanguage(ctx context.Context, path string, src []byte, lang Language) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse canceled before start: %w", err)
	}

	if len(src) > p.maxFileSize {
		return nil, fmt.Errorf("%s: %w: size %d exceeds limit %d", path, ErrFileTooLarge, len(src), p.maxFileSize)
	}

	if !utf8.Valid(src) {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidContent)
	}

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(lang.grammar())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%s: tree-sitter parse failed: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()

	c := converter{src: src}
	f := newFile(path, src, lang)
	f.Root = c.convert(root, "")
	f.Comments = c.comments
	f.HasErrors = root.HasError()

	return f, nil
}

type converter struct {
	src      []byte
	comments []Comment
}

// convert copies the named nodes of the tree-sitter tree, synthesizing [KindChainExpression]
// wrappers on top of optional chains.
func (c *converter) convert(tn *sitter.Node, field string) *Node {
	n := &Node{
		Type:  tn.Type(),
		Field: field,
		Start: int(tn.StartByte()),
		End:   int(tn.EndByte()),
	}
	n.Kind = kindOf(n.Type)

	if n.Kind == KindType {
		n.text = string(c.src[n.Start:n.End])
		return n
	}

	if n.Type == "variable_declaration" {
		n.Keyword = "var"
	}

	for i := range int(tn.ChildCount()) {
		child := tn.Child(i)
		if child == nil {
			continue
		}

		fieldName := tn.FieldNameForChild(i)

		if !child.IsNamed() {
			switch fieldName {
			case FieldKind:
				n.Keyword = child.Type()

			case FieldOperator:
				n.Operator = child.Type()
			}

			continue
		}

		switch child.Type() {
		case "comment":
			start, end := int(child.StartByte()), int(child.EndByte())
			c.comments = append(c.comments, Comment{Start: start, End: end, Text: string(c.src[start:end])})

			continue

		case "optional_chain":
			n.Optional = true

			continue
		}

		cn := c.convert(child, fieldName)

		if cn.chained && !continuesChain(n, cn) {
			cn = wrapChain(cn)
		}

		cn.Parent = n
		n.Children = append(n.Children, cn)
	}

	if n.Kind.IsChainElement() {
		n.chained = n.Optional
		for _, cn := range n.Children {
			if continuesChain(n, cn) && cn.chained {
				n.chained = true
			}
		}
	}

	if len(n.Children) == 0 {
		n.text = string(c.src[n.Start:n.End])
	}

	return n
}

// continuesChain reports whether child is the object or callee of the chain element parent.
func continuesChain(parent, child *Node) bool {
	return parent.Kind.IsChainElement() && child.Kind.IsChainElement() &&
		(child.Field == FieldObject || child.Field == FieldFunction)
}

func wrapChain(n *Node) *Node {
	w := &Node{
		Kind:     KindChainExpression,
		Type:     "chain_expression",
		Field:    n.Field,
		Start:    n.Start,
		End:      n.End,
		Children: []*Node{n},
	}

	n.Field = FieldExpression
	n.Parent = w

	return w
}
