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

import "fillmore-labs.com/hookguard/internal/syntax"

// MemoizedFunction returns the function literal passed as first argument of a hook call, or nil.
func MemoizedFunction(call *syntax.Node) *syntax.Node {
	args := syntax.Arguments(call)
	if len(args) == 0 {
		return nil
	}

	if fn := syntax.Unwrap(args[0]); syntax.IsFunction(fn) {
		return fn
	}

	return nil
}

// DependencyArray returns the trailing array literal argument of a hook call, or nil.
func DependencyArray(call *syntax.Node) *syntax.Node {
	args := syntax.Arguments(call)
	if len(args) < 2 {
		return nil
	}

	if deps := syntax.Unwrap(args[len(args)-1]); deps.Kind == syntax.KindArrayLiteral {
		return deps
	}

	return nil
}

// DeclaredDependencies returns the names listed in a dependency array.
//
// A bare identifier contributes its name, a member access like a.b.c contributes its base a.
// Computed accesses and spread elements are ignored.
func DeclaredDependencies(deps *syntax.Node) DependencySet {
	var declared DependencySet

	for _, el := range deps.Children {
		if id := syntax.RootIdentifier(syntax.Unwrap(el)); id != nil {
			declared.Add(id.Name())
		}
	}

	return declared
}
