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

package scope

import (
	"unicode"
	"unicode/utf8"

	"fillmore-labs.com/hookguard/internal/syntax"
)

// Tree is the scope tree of one file.
type Tree struct {
	Root *Scope

	scopes map[*syntax.Node]*Scope
	refs   map[*syntax.Node]*Reference
}

// Build resolves the scopes, declarations and references of a file.
//
// References are resolved after all declarations are known, so hoisted
// declarations and forward references resolve like at run time.
func Build(f *syntax.File) *Tree {
	t := &Tree{
		scopes: make(map[*syntax.Node]*Scope),
		refs:   make(map[*syntax.Node]*Reference),
	}

	kind := Global
	if isModule(f.Root) {
		kind = Module
	}

	t.Root = t.open(kind, f.Root, nil)

	b := binder{tree: t}
	b.children(f.Root, t.Root, nil)

	for _, r := range b.refs {
		r.Resolved = r.From.Resolve(r.Name())
	}

	return t
}

func isModule(program *syntax.Node) bool {
	for _, stmt := range program.Children {
		switch stmt.Kind {
		case syntax.KindImportStatement, syntax.KindExportStatement:
			return true
		}
	}

	return false
}

func (t *Tree) open(kind Kind, block *syntax.Node, upper *Scope) *Scope {
	s := newScope(kind, block, upper)
	t.scopes[block] = s

	return s
}

type binder struct {
	tree *Tree
	refs []*Reference
}

func (b *binder) reference(id *syntax.Node, s *Scope) {
	r := &Reference{Identifier: id, From: s}
	s.References = append(s.References, r)
	b.tree.refs[id] = r
	b.refs = append(b.refs, r)
}

// children visits the children of n in s, skipping the given node.
func (b *binder) children(n *syntax.Node, s *Scope, skip *syntax.Node) {
	for _, c := range n.Children {
		if c != skip {
			b.visit(c, s)
		}
	}
}

// visit handles a node in expression or statement position.
func (b *binder) visit(n *syntax.Node, s *Scope) {
	switch n.Kind {
	case syntax.KindType, syntax.KindPropertyIdentifier, syntax.KindPrivatePropertyIdentifier:

	case syntax.KindIdentifier, syntax.KindShorthandProperty, syntax.KindShorthandPropertyPattern:
		b.reference(n, s)

	case syntax.KindFunctionDeclaration:
		b.function(n, s, declaredFunction)

	case syntax.KindFunctionExpression, syntax.KindArrowFunction:
		b.function(n, s, anonymousFunction)

	case syntax.KindMethodDefinition:
		if key := n.ChildByField(syntax.FieldName); key != nil && key.Kind == syntax.KindComputedPropertyName {
			b.visit(key, s)
		}

		b.function(n, s, method)

	case syntax.KindClassDeclaration, syntax.KindClassExpression:
		b.class(n, s)

	case syntax.KindVariableDeclaration:
		b.declaration(n, s)

	case syntax.KindEnumDeclaration:
		name := n.ChildByField(syntax.FieldName)
		if name != nil {
			s.declare(name.Name(), Definition{Kind: EnumName, Name: name, Node: n})
		}

		b.children(n, s, name)

	case syntax.KindStatementBlock:
		b.children(n, b.tree.open(Block, n, s), nil)

	case syntax.KindForStatement:
		b.children(n, b.tree.open(For, n, s), nil)

	case syntax.KindForInStatement:
		b.forIn(n, s)

	case syntax.KindCatchClause:
		b.catch(n, s)

	case syntax.KindImportStatement:
		b.imports(n)

	case syntax.KindExportStatement:
		if n.ChildByField(syntax.FieldSource) != nil {
			return // re-export
		}

		b.children(n, s, nil)

	case syntax.KindExportSpecifier:
		if name := n.ChildByField(syntax.FieldName); name != nil && name.Kind == syntax.KindIdentifier {
			b.reference(name, s)
		}

	case syntax.KindJSXOpeningElement, syntax.KindJSXSelfClosingElement:
		name := syntax.ElementName(n)
		if id := componentIdentifier(name); id != nil {
			b.reference(id, s)
		}

		b.children(n, s, name)

	case syntax.KindPair, syntax.KindPairPattern:
		if key := n.ChildByField(syntax.FieldKey); key != nil && key.Kind == syntax.KindComputedPropertyName {
			b.visit(key, s)
		}

		if value := n.ChildByField(syntax.FieldValue); value != nil {
			b.visit(value, s)
		}

	default:
		switch n.Type {
		case "jsx_closing_element", "statement_identifier", "label":
			return

		case "switch_body":
			b.children(n, b.tree.open(Block, n, s), nil)

			return
		}

		b.children(n, s, nil)
	}
}

// componentIdentifier returns the identifier a JSX tag name reads, if any.
// Lower case names are intrinsic elements.
func componentIdentifier(name *syntax.Node) *syntax.Node {
	if name == nil {
		return nil
	}

	switch name.Kind {
	case syntax.KindIdentifier:
		if r, _ := utf8.DecodeRuneInString(name.Name()); unicode.IsLower(r) {
			return nil
		}

		return name

	case syntax.KindMemberExpression:
		// <ns.Component>: the first child is the object, even for nested identifiers
		for name.Kind == syntax.KindMemberExpression && len(name.Children) > 0 {
			name = name.Children[0]
		}

		if name.Kind == syntax.KindIdentifier {
			return name
		}
	}

	return nil
}

type functionKind uint8

const (
	declaredFunction functionKind = iota
	anonymousFunction
	method
)

func (b *binder) function(n *syntax.Node, s *Scope, kind functionKind) {
	fs := b.tree.open(Function, n, s)

	if name := n.ChildByField(syntax.FieldName); name != nil && name.Kind == syntax.KindIdentifier {
		def := Definition{Kind: FunctionName, Name: name, Node: n}

		switch kind {
		case declaredFunction:
			s.VariableScope().declare(name.Name(), def)

		case anonymousFunction:
			fs.declare(name.Name(), def)
		}
	}

	for _, p := range syntax.Params(n) {
		b.pattern(p, fs, fs, Definition{Kind: Parameter, Node: n})
	}

	body := syntax.Body(n)
	switch {
	case body == nil:

	case body.Kind == syntax.KindStatementBlock:
		b.children(body, fs, nil)

	default:
		b.visit(body, fs)
	}
}

func (b *binder) class(n *syntax.Node, s *Scope) {
	name := n.ChildByField(syntax.FieldName)
	cs := b.tree.open(Class, n, s)

	if name != nil {
		def := Definition{Kind: ClassName, Name: name, Node: n}
		if n.Kind == syntax.KindClassDeclaration {
			s.declare(name.Name(), def)
		} else {
			cs.declare(name.Name(), def)
		}
	}

	b.children(n, cs, name)
}

func (b *binder) declaration(n *syntax.Node, s *Scope) {
	target := s
	if n.Keyword == "var" {
		target = s.VariableScope()
	}

	for _, decl := range n.Children {
		if decl.Kind != syntax.KindVariableDeclarator {
			b.visit(decl, s)

			continue
		}

		name := decl.ChildByField(syntax.FieldName)
		value := decl.ChildByField(syntax.FieldValue)

		if name != nil {
			def := Definition{
				Kind:         VariableDecl,
				Node:         decl,
				Init:         value,
				Destructured: name.Kind != syntax.KindIdentifier,
			}
			b.pattern(name, target, s, def)
		}

		if value != nil {
			b.visit(value, s)
		}
	}
}

// pattern declares the names bound by a binding pattern in target. Default values and
// computed keys are expressions evaluated in s.
func (b *binder) pattern(p *syntax.Node, target, s *Scope, def Definition) {
	switch p.Kind {
	case syntax.KindIdentifier, syntax.KindShorthandPropertyPattern:
		def.Name = p
		target.declare(p.Name(), def)

	case syntax.KindObjectPattern, syntax.KindArrayPattern:
		if def.Kind == VariableDecl || def.Kind == Parameter {
			def.Destructured = true
		}

		for _, c := range p.Children {
			b.pattern(c, target, s, def)
		}

	case syntax.KindPairPattern:
		if key := p.ChildByField(syntax.FieldKey); key != nil && key.Kind == syntax.KindComputedPropertyName {
			b.visit(key, s)
		}

		if value := p.ChildByField(syntax.FieldValue); value != nil {
			b.pattern(value, target, s, def)
		}

	case syntax.KindAssignmentPattern:
		if left := p.ChildByField(syntax.FieldLeft); left != nil {
			b.pattern(left, target, s, def)
		}

		if right := p.ChildByField(syntax.FieldRight); right != nil {
			b.visit(right, s)
		}

	case syntax.KindRestPattern:
		for _, c := range p.Children {
			b.pattern(c, target, s, def)
		}

	case syntax.KindRequiredParameter, syntax.KindOptionalParameter:
		binding := p.ChildByField(syntax.FieldPattern)
		if binding == nil {
			binding = p.Expression()
		}

		if binding != nil {
			b.pattern(binding, target, s, def)
		}

		if value := p.ChildByField(syntax.FieldValue); value != nil {
			b.visit(value, s)
		}

	case syntax.KindType, syntax.KindThis:

	default:
		if p.Type == "accessibility_modifier" || p.Type == "override_modifier" || p.Type == "decorator" {
			return
		}

		// Assignment targets like member expressions.
		b.visit(p, s)
	}
}

func (b *binder) forIn(n *syntax.Node, s *Scope) {
	fs := b.tree.open(For, n, s)
	left := n.ChildByField(syntax.FieldLeft)

	if left != nil && n.Keyword != "" {
		target := fs
		if n.Keyword == "var" {
			target = s.VariableScope()
		}

		b.pattern(left, target, fs, Definition{Kind: VariableDecl, Node: n})
	}

	for _, c := range n.Children {
		if c == left && n.Keyword != "" {
			continue
		}

		b.visit(c, fs)
	}
}

func (b *binder) catch(n *syntax.Node, s *Scope) {
	cs := b.tree.open(Catch, n, s)
	param := n.ChildByField(syntax.FieldParameter)

	if param != nil {
		b.pattern(param, cs, cs, Definition{Kind: CatchClause, Node: n})
	}

	b.children(n, cs, param)
}

func (b *binder) imports(n *syntax.Node) {
	target := b.tree.Root

	var bind func(c *syntax.Node)
	bind = func(c *syntax.Node) {
		switch c.Kind {
		case syntax.KindIdentifier:
			target.declare(c.Name(), Definition{Kind: ImportBinding, Name: c, Node: n})

		case syntax.KindImportSpecifier:
			name := c.ChildByField(syntax.FieldAlias)
			if name == nil {
				name = c.ChildByField(syntax.FieldName)
			}

			if name != nil && name.Kind == syntax.KindIdentifier {
				bind(name)
			}

		case syntax.KindImportClause, syntax.KindNamedImports, syntax.KindNamespaceImport:
			for _, cc := range c.Children {
				bind(cc)
			}

		default:
			if c.Type == "import_require_clause" && len(c.Children) > 0 {
				bind(c.Children[0])
			}
		}
	}

	for _, c := range n.Children {
		bind(c)
	}
}
