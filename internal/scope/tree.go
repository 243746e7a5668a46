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

import "fillmore-labs.com/hookguard/internal/syntax"

// Acquire returns the scope introduced by n, or nil if n does not introduce one.
func (t *Tree) Acquire(n *syntax.Node) *Scope {
	return t.scopes[n]
}

// Innermost returns the smallest scope enclosing n, falling back to the root scope.
//
// A node that introduces a scope is inside it.
func (t *Tree) Innermost(n *syntax.Node) *Scope {
	if n == nil {
		return t.Root
	}

	if s := t.scopes[n]; s != nil {
		return s
	}

	for p := range n.Ancestors() {
		if s := t.scopes[p]; s != nil {
			return s
		}
	}

	return t.Root
}

// ReferenceOf returns the reference recorded for an identifier, or nil.
func (t *Tree) ReferenceOf(id *syntax.Node) *Reference {
	return t.refs[id]
}

// Resolve returns the variable an identifier refers to.
//
// Recorded references answer directly; other identifiers are looked up by name from
// the innermost enclosing scope outward. It returns nil for globals and unknown names.
func (t *Tree) Resolve(id *syntax.Node) *Variable {
	if id == nil {
		return nil
	}

	if r := t.refs[id]; r != nil {
		return r.Resolved
	}

	name := id.Name()
	if name == "" {
		return nil
	}

	return t.Innermost(id).Resolve(name)
}

