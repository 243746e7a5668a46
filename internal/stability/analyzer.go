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

// Package stability decides whether expressions keep their referential identity across
// re-evaluations of the enclosing component.
package stability

import (
	"fillmore-labs.com/hookguard/internal/scope"
	"fillmore-labs.com/hookguard/internal/syntax"
)

// DefaultMaxDepth bounds how many variables are chased to their initializers.
const DefaultMaxDepth = 32

// Config configures the hook and utility names an [Analyzer] recognizes.
type Config struct {
	// ValueHooks cache a computed value, the first one is suggested in fixes.
	ValueHooks []string

	// CallbackHooks cache a function identity, the first one is suggested in fixes.
	CallbackHooks []string

	// StableUtilities return referentially fixed values.
	StableUtilities []string

	// MaxDepth bounds the variable chase. Non-positive values select [DefaultMaxDepth].
	MaxDepth int
}

// DefaultConfig returns the React hook names.
func DefaultConfig() Config {
	return Config{
		ValueHooks:      []string{"useMemo"},
		CallbackHooks:   []string{"useCallback"},
		StableUtilities: []string{"useEvent", "useEffectEvent", "useStableCallback", "useRef"},
		MaxDepth:        DefaultMaxDepth,
	}
}

// Analyzer analyzes expressions of one file.
//
// An Analyzer holds no state between calls, repeated analysis of the same node yields
// the same verdict.
type Analyzer struct {
	tree      *scope.Tree
	hooks     map[string]Policy
	preferred [CallbackMemo + 1]string
	stable    map[string]struct{}
	maxDepth  int
}

// New creates an [Analyzer] for the file described by tree.
func New(tree *scope.Tree, cfg Config) *Analyzer {
	a := &Analyzer{
		tree:     tree,
		hooks:    make(map[string]Policy, len(cfg.ValueHooks)+len(cfg.CallbackHooks)),
		stable:   make(map[string]struct{}, len(cfg.StableUtilities)),
		maxDepth: cfg.MaxDepth,
	}

	for _, name := range cfg.ValueHooks {
		a.hooks[name] = ValueMemo
	}

	for _, name := range cfg.CallbackHooks {
		a.hooks[name] = CallbackMemo
	}

	if len(cfg.ValueHooks) > 0 {
		a.preferred[ValueMemo] = cfg.ValueHooks[0]
	}

	if len(cfg.CallbackHooks) > 0 {
		a.preferred[CallbackMemo] = cfg.CallbackHooks[0]
	}

	for _, name := range cfg.StableUtilities {
		a.stable[name] = struct{}{}
	}

	if a.maxDepth <= 0 {
		a.maxDepth = DefaultMaxDepth
	}

	return a
}

// HookFor returns the hook name suggested for a policy, or "" when none is configured.
func (a *Analyzer) HookFor(p Policy) string {
	if p != ValueMemo && p != CallbackMemo {
		return ""
	}

	return a.preferred[p]
}

// IsStableUtility reports whether calls of name return referentially fixed values.
func (a *Analyzer) IsStableUtility(name string) bool {
	_, ok := a.stable[name]

	return ok
}

// visited is an immutable list of names on the current chase path.
type visited struct {
	name string
	next *visited
}

func (v *visited) contains(name string) bool {
	for ; v != nil; v = v.next {
		if v.name == name {
			return true
		}
	}

	return false
}

// Analyze decides whether expr keeps its identity when the enclosing component re-renders.
//
// The expected policy selects which kind of memoizing hook is accepted. s is the scope
// enclosing expr; a nil scope is derived from the tree.
func (a *Analyzer) Analyze(expr *syntax.Node, expected Policy, s *scope.Scope) Verdict {
	return a.analyze(expr, expected, s, nil, 0)
}

func (a *Analyzer) analyze(expr *syntax.Node, expected Policy, s *scope.Scope, seen *visited, depth int) Verdict {
	expr = syntax.Unwrap(expr)

	v := Verdict{Node: expr, Expected: expected}

	switch {
	case expr == nil:
		v.Reason = RawFunction

	case syntax.IsFunction(expr):
		v.Reason = RawFunction

	case expr.Kind == syntax.KindCallExpression:
		return a.call(expr, v)

	case syntax.IsIdentifier(expr):
		return a.identifier(expr, v, s, seen, depth)

	default:
		// Object and array literals, member accesses and others can not be proven stable.
		v.Reason = RawFunction
	}

	return v
}

func (a *Analyzer) call(call *syntax.Node, v Verdict) Verdict {
	name := syntax.CalleeName(call)

	if policy, ok := a.hooks[name]; ok {
		return a.hook(call, name, policy, v)
	}

	if a.IsStableUtility(name) {
		v.Reason = Stable

		return v
	}

	v.Reason = RawFunction

	return v
}

func (a *Analyzer) hook(call *syntax.Node, name string, policy Policy, v Verdict) Verdict {
	v.Hook, v.Found = name, policy

	if policy != v.Expected {
		v.Reason = WrongHook

		return v
	}

	if fn := MemoizedFunction(call); fn != nil {
		v.Dependencies = a.FreeVariables(fn)
	}

	deps := DependencyArray(call)
	if deps == nil {
		v.Reason = MissingDependencyArray

		return v
	}

	v.DependencyArray = deps

	v.Missing = v.Dependencies.Difference(DeclaredDependencies(deps))
	if v.Missing.Len() > 0 {
		v.Reason = MissingDependency

		return v
	}

	v.Reason = Stable

	return v
}

func (a *Analyzer) identifier(id *syntax.Node, v Verdict, s *scope.Scope, seen *visited, depth int) Verdict {
	name := id.Name()

	if depth >= a.maxDepth || seen.contains(name) {
		v.Reason = Stable

		return v
	}

	variable := a.resolve(id, s)
	if variable == nil || variable.IsParameter() || variable.Scope.IsModuleLevel() {
		v.Reason = Stable

		return v
	}

	init := variable.Def().Init
	if init == nil {
		v.Reason = RawFunction

		return v
	}

	return a.analyze(init, v.Expected, a.tree.Innermost(init), &visited{name: name, next: seen}, depth+1)
}

// resolve finds the variable an identifier refers to, preferring the recorded reference.
func (a *Analyzer) resolve(id *syntax.Node, s *scope.Scope) *scope.Variable {
	if r := a.tree.ReferenceOf(id); r != nil {
		return r.Resolved
	}

	if s == nil {
		s = a.tree.Innermost(id)
	}

	return s.Resolve(id.Name())
}
