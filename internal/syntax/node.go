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

import "iter"

// Grammar field names used to address child slots.
const (
	// keep-sorted start
	FieldAlias       = "alias"
	FieldArguments   = "arguments"
	FieldAttribute   = "attribute"
	FieldBody        = "body"
	FieldConstructor = "constructor"
	FieldDeclaration = "declaration"
	FieldExpression  = "expression"
	FieldFunction    = "function"
	FieldIndex       = "index"
	FieldKey         = "key"
	FieldKind        = "kind"
	FieldLeft        = "left"
	FieldName        = "name"
	FieldObject      = "object"
	FieldOpenTag     = "open_tag"
	FieldOperator    = "operator"
	FieldParameter   = "parameter"
	FieldParameters  = "parameters"
	FieldPattern     = "pattern"
	FieldProperty    = "property"
	FieldRight       = "right"
	FieldSource      = "source"
	FieldValue       = "value"
	// keep-sorted end
)

// Node is a named node of the syntax tree.
//
// Parent is a non-owning back reference, Children are owned and in source order.
// Nodes are immutable after [Parser.Parse] returns.
type Node struct {
	Kind     Kind
	Type     string // Grammar node type
	Field    string // Grammar field name of this node in Parent, if any
	Keyword  string // Anonymous "kind" token, e.g. "const"
	Operator string // Anonymous "operator" token, e.g. "=" or "of"
	Start    int    // Byte offset of the first character
	End      int    // Byte offset after the last character
	Optional bool   // Member access or call using "?."
	Parent   *Node
	Children []*Node

	text    string // Source text of leaves
	chained bool   // Chain element with an optional link below
}

// Name returns the source text of leaf nodes like identifiers, and "" otherwise.
func (n *Node) Name() string {
	if n == nil {
		return ""
	}

	return n.text
}

// ChildByField returns the first child in the given grammar field, or nil.
func (n *Node) ChildByField(field string) *Node {
	if n == nil {
		return nil
	}

	for _, c := range n.Children {
		if c.Field == field {
			return c
		}
	}

	return nil
}

// Expression returns the first child that is not a type, which is the operand of transparent wrappers.
func (n *Node) Expression() *Node {
	if n == nil {
		return nil
	}

	for _, c := range n.Children {
		if c.Kind != KindType {
			return c
		}
	}

	return nil
}

// Ancestors iterates from the parent of n up to the root.
func (n *Node) Ancestors() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for p := n.Parent; p != nil; p = p.Parent {
			if !yield(p) {
				return
			}
		}
	}
}

// Preorder iterates over n and all its descendants, depth-first.
func (n *Node) Preorder() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.preorder(yield)
	}
}

func (n *Node) preorder(yield func(*Node) bool) bool {
	if !yield(n) {
		return false
	}

	for _, c := range n.Children {
		if !c.preorder(yield) {
			return false
		}
	}

	return true
}

