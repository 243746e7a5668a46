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

// Unwrap strips transparent wrappers (parentheses, type assertions, non-null assertions
// and optional chains) until a fixpoint is reached.
func Unwrap(n *Node) *Node {
	for n != nil && n.Kind.IsTransparent() {
		inner := n.Expression()
		if inner == nil {
			break
		}

		n = inner
	}

	return n
}

// IsFunction reports whether n is a function literal.
func IsFunction(n *Node) bool {
	return n != nil && n.Kind.IsFunction()
}

// IsIdentifier reports whether n reads a variable by name.
func IsIdentifier(n *Node) bool {
	return n != nil && (n.Kind == KindIdentifier || n.Kind == KindShorthandProperty)
}

// IsPropertyName reports whether n is in a property-name position, i.e. it names a
// property instead of reading a variable.
func IsPropertyName(n *Node) bool {
	if n == nil {
		return false
	}

	switch n.Kind {
	case KindPropertyIdentifier, KindPrivatePropertyIdentifier:
		return true
	}

	p := n.Parent
	if p == nil {
		return false
	}

	switch p.Kind {
	case KindMemberExpression:
		return n.Field == FieldProperty

	case KindPair, KindPairPattern:
		return n.Field == FieldKey

	case KindJSXAttribute:
		return p.Children[0] == n
	}

	return false
}

// Callee returns the function part of a call or new expression.
func Callee(call *Node) *Node {
	switch call.Kind {
	case KindCallExpression:
		return call.ChildByField(FieldFunction)

	case KindNewExpression:
		return call.ChildByField(FieldConstructor)

	default:
		return nil
	}
}

// CalleeName returns the simple name of a call's callee: the identifier name, or the
// property name when the callee is a non-computed member access.
func CalleeName(call *Node) string {
	return SimpleName(Unwrap(Callee(call)))
}

// SimpleName returns the name of an identifier, or the property name of a non-computed member access.
func SimpleName(n *Node) string {
	if n == nil {
		return ""
	}

	switch n.Kind {
	case KindIdentifier, KindShorthandProperty:
		return n.Name()

	case KindMemberExpression:
		return n.ChildByField(FieldProperty).Name()

	default:
		return ""
	}
}

// RootIdentifier returns the base identifier of a non-computed member chain like a.b.c,
// or n itself if it is an identifier.
func RootIdentifier(n *Node) *Node {
	for n != nil {
		switch n.Kind {
		case KindIdentifier, KindShorthandProperty:
			return n

		case KindMemberExpression:
			n = Unwrap(n.ChildByField(FieldObject))

		default:
			return nil
		}
	}

	return nil
}

// Arguments returns the argument expressions of a call or new expression.
func Arguments(call *Node) []*Node {
	args := call.ChildByField(FieldArguments)
	if args == nil || args.Kind != KindArguments {
		return nil
	}

	return args.Children
}

// Params returns the parameter nodes of a function.
func Params(fn *Node) []*Node {
	if p := fn.ChildByField(FieldParameter); p != nil {
		return []*Node{p}
	}

	if ps := fn.ChildByField(FieldParameters); ps != nil {
		return ps.Children
	}

	return nil
}

// ParamIdentifier returns the identifier of a simple parameter, or nil for patterns.
func ParamIdentifier(param *Node) *Node {
	switch param.Kind {
	case KindIdentifier:
		return param

	case KindRequiredParameter, KindOptionalParameter:
		p := param.ChildByField(FieldPattern)
		if p == nil {
			p = param.Expression()
		}

		if p != nil && p.Kind == KindIdentifier {
			return p
		}
	}

	return nil
}

// Body returns the body of a function: a statement block or an expression.
func Body(fn *Node) *Node {
	return fn.ChildByField(FieldBody)
}

// PropertyName returns the static name of an object property key or JSX attribute.
// Computed keys yield "".
func (f *File) PropertyName(n *Node) string {
	var key *Node

	switch n.Kind {
	case KindPair, KindPairPattern:
		key = n.ChildByField(FieldKey)

	case KindJSXAttribute:
		if len(n.Children) > 0 {
			key = n.Children[0]
		}

	case KindShorthandProperty, KindShorthandPropertyPattern:
		return n.Name()

	default:
		return ""
	}

	if key == nil {
		return ""
	}

	switch key.Kind {
	case KindPropertyIdentifier, KindIdentifier:
		return key.Name()

	case KindStringLiteral:
		return f.StringValue(key)

	case KindNumberLiteral:
		return key.Name()

	default:
		if key.Type == "jsx_namespace_name" {
			return f.Text(key)
		}

		return ""
	}
}

// AttributeValue returns the expression of a JSX attribute value, or nil for string or missing values.
func AttributeValue(attr *Node) *Node {
	if len(attr.Children) < 2 {
		return nil
	}

	v := attr.Children[1]
	if v.Kind != KindJSXExpression {
		return nil
	}

	return v.Expression()
}

// ElementName returns the tag name node of a JSX opening or self-closing element.
func ElementName(el *Node) *Node {
	if n := el.ChildByField(FieldName); n != nil {
		return n
	}

	if len(el.Children) > 0 {
		return el.Children[0]
	}

	return nil
}

// Statements returns the statements of a block, or nil if n is not a block.
func Statements(n *Node) []*Node {
	if n == nil || n.Kind != KindStatementBlock {
		return nil
	}

	return n.Children
}
