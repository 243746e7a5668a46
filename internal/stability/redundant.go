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

package stability

import (
	"slices"

	"fillmore-labs.com/hookguard/internal/syntax"
)

// Shape classifies a memoizing-hook call that re-exposes a stable function.
type Shape uint8

//go:generate go tool stringer -type Shape -linecomment

const (
	// NotRedundant means the wrapper adds behavior or its target is not known to be stable.
	NotRedundant Shape = iota // not-redundant

	// PassThrough wraps the stable function itself: useCallback(fn, [fn]).
	PassThrough // pass-through

	// ZeroArgumentCall wraps a call without arguments: useCallback(() => fn(), [fn]).
	ZeroArgumentCall // zero-argument-call

	// ParameterRenaming forwards the wrapper parameters: useCallback((v) => fn(v), [fn]).
	ParameterRenaming // parameter-renaming
)

// Redundancy is the result of [Classify].
type Redundancy struct {
	Shape Shape

	// Target is the stable function reference the wrapper re-exposes.
	Target *syntax.Node

	// Suppressed is set when the wrapper calls an event suppression method before forwarding.
	Suppressed bool

	// Fixable means the wrapper call can be replaced by the source text of Target.
	Fixable bool
}

// IsRedundant reports whether the wrapper should be flagged.
func (r Redundancy) IsRedundant() bool {
	return r.Shape != NotRedundant
}

// KnownStable reports whether an identifier refers to a binding known to hold a stable value.
type KnownStable func(id *syntax.Node) bool

// Classify decides whether a memoizing-hook call only re-exposes an already stable function.
//
// Recognized are a direct pass-through of a stable reference, a function forwarding to a
// stable target without arguments or with its own parameters, optionally preceded by an
// event suppression call like e.preventDefault() on its first parameter. Forwarding
// parameters is only flagged when the dependency array has exactly one entry, and never
// fixed automatically.
func Classify(call *syntax.Node, known KnownStable, suppressionMethods []string) Redundancy {
	args := syntax.Arguments(call)
	if len(args) == 0 {
		return Redundancy{}
	}

	inner := syntax.Unwrap(args[0])

	switch {
	case isStableReference(inner, known):
		return Redundancy{Shape: PassThrough, Target: inner, Fixable: true}

	case syntax.IsFunction(inner):
		return classifyFunction(call, inner, known, suppressionMethods)

	default:
		return Redundancy{}
	}
}

func classifyFunction(call, fn *syntax.Node, known KnownStable, suppressionMethods []string) Redundancy {
	params := syntax.Params(fn)

	body := syntax.Body(fn)
	if body == nil {
		return Redundancy{}
	}

	if body.Kind != syntax.KindStatementBlock {
		return classifyForward(call, body, params, known)
	}

	stmts := syntax.Statements(body)

	var suppressed bool

	switch len(stmts) {
	case 1:

	case 2:
		if !isSuppression(stmts[0], params, suppressionMethods) {
			return Redundancy{}
		}

		suppressed, stmts = true, stmts[1:]

	default:
		return Redundancy{}
	}

	var expr *syntax.Node

	switch stmt := stmts[0]; stmt.Kind {
	case syntax.KindExpressionStatement, syntax.KindReturnStatement:
		expr = stmt.Expression()
	}

	r := classifyForward(call, expr, params, known)
	r.Suppressed = suppressed

	return r
}

// classifyForward handles the call a wrapper body consists of.
func classifyForward(call, expr *syntax.Node, params []*syntax.Node, known KnownStable) Redundancy {
	forward := syntax.Unwrap(expr)
	if forward == nil || forward.Kind != syntax.KindCallExpression {
		return Redundancy{}
	}

	target := syntax.Unwrap(syntax.Callee(forward))
	if !isStableReference(target, known) {
		return Redundancy{}
	}

	args := syntax.Arguments(forward)
	if len(args) == 0 {
		return Redundancy{Shape: ZeroArgumentCall, Target: target, Fixable: true}
	}

	if !renamesParameters(args, params) {
		return Redundancy{}
	}

	if deps := DependencyArray(call); deps == nil || len(deps.Children) != 1 {
		return Redundancy{}
	}

	return Redundancy{Shape: ParameterRenaming, Target: target}
}

// isStableReference reports whether n is an identifier or member access based on a known stable binding.
func isStableReference(n *syntax.Node, known KnownStable) bool {
	if n == nil || (!syntax.IsIdentifier(n) && n.Kind != syntax.KindMemberExpression) {
		return false
	}

	root := syntax.RootIdentifier(n)

	return root != nil && known(root)
}

// renamesParameters reports whether every argument is a bare parameter of the wrapper.
func renamesParameters(args, params []*syntax.Node) bool {
	names := make([]string, 0, len(params))

	for _, p := range params {
		if id := syntax.ParamIdentifier(p); id != nil {
			names = append(names, id.Name())
		}
	}

	for _, arg := range args {
		id := syntax.Unwrap(arg)
		if id == nil || id.Kind != syntax.KindIdentifier || !slices.Contains(names, id.Name()) {
			return false
		}
	}

	return true
}

// isSuppression reports whether stmt is a call like e.preventDefault() on the first parameter.
func isSuppression(stmt *syntax.Node, params []*syntax.Node, methods []string) bool {
	if stmt.Kind != syntax.KindExpressionStatement || len(params) == 0 {
		return false
	}

	event := syntax.ParamIdentifier(params[0])
	if event == nil {
		return false
	}

	call := syntax.Unwrap(stmt.Expression())
	if call == nil || call.Kind != syntax.KindCallExpression || len(syntax.Arguments(call)) != 0 {
		return false
	}

	callee := syntax.Unwrap(syntax.Callee(call))
	if callee == nil || callee.Kind != syntax.KindMemberExpression {
		return false
	}

	object := syntax.Unwrap(callee.ChildByField(syntax.FieldObject))
	if object == nil || object.Kind != syntax.KindIdentifier || object.Name() != event.Name() {
		return false
	}

	return slices.Contains(methods, syntax.SimpleName(callee))
}
