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
	"cmp"
	"slices"

	"fillmore-labs.com/hookguard/internal/scope"
	"fillmore-labs.com/hookguard/internal/syntax"
)

// FreeVariables returns the names a function literal reads from enclosing scopes
// below the module level, in source order of their first read.
//
// Nested closures are included: a variable captured by an inner function from outside
// fn is a dependency of fn as well.
func (a *Analyzer) FreeVariables(fn *syntax.Node) DependencySet {
	var deps DependencySet

	fs := a.tree.Acquire(fn)
	if fs == nil {
		return deps
	}

	var free []*scope.Reference

	for s := range fs.All() {
		for _, r := range s.References {
			if syntax.IsPropertyName(r.Identifier) {
				continue
			}

			v := r.Resolved
			if v == nil || v.Scope.IsModuleLevel() || !v.Scope.IsStrictAncestorOf(fs) {
				continue
			}

			free = append(free, r)
		}
	}

	slices.SortFunc(free, func(a, b *scope.Reference) int {
		return cmp.Compare(a.Identifier.Start, b.Identifier.Start)
	})

	for _, r := range free {
		deps.Add(r.Name())
	}

	return deps
}
