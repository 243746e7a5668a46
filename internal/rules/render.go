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

package rules

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"fillmore-labs.com/hookguard/internal/syntax"
)

// EnclosingFunction returns the nearest function literal or declaration strictly containing n, or nil.
func EnclosingFunction(n *syntax.Node) *syntax.Node {
	for p := range n.Ancestors() {
		if p.Kind.IsFunction() || p.Kind == syntax.KindFunctionDeclaration || p.Kind == syntax.KindMethodDefinition {
			return p
		}
	}

	return nil
}

// FunctionName returns the name a function is declared or bound with, looking through
// wrapping calls like memo(() => ...). Anonymous functions yield "".
func FunctionName(fn *syntax.Node) string {
	if name := fn.ChildByField(syntax.FieldName); name != nil {
		return name.Name()
	}

	n := fn.Parent
	for n != nil && (n.Kind == syntax.KindArguments || n.Kind == syntax.KindCallExpression ||
		n.Kind == syntax.KindParenthesizedExpression) {
		n = n.Parent
	}

	if n != nil && n.Kind == syntax.KindVariableDeclarator {
		if name := n.ChildByField(syntax.FieldName); name != nil && name.Kind == syntax.KindIdentifier {
			return name.Name()
		}
	}

	return ""
}

// IsRenderFunction reports whether fn is a component or a hook by naming convention:
// components start with an upper case letter, hooks with "use".
func IsRenderFunction(fn *syntax.Node) bool {
	if fn == nil {
		return false
	}

	name := FunctionName(fn)
	if r, _ := utf8.DecodeRuneInString(name); unicode.IsUpper(r) {
		return true
	}

	rest, ok := strings.CutPrefix(name, "use")
	if !ok {
		return false
	}

	r, _ := utf8.DecodeRuneInString(rest)

	return rest == "" || unicode.IsUpper(r)
}

// InRenderScope reports whether n is evaluated directly while a component or hook runs,
// so a hook call can be placed at n.
func InRenderScope(n *syntax.Node) bool {
	return IsRenderFunction(EnclosingFunction(n))
}
