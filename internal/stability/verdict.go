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
	"iter"
	"slices"
	"strings"

	"fillmore-labs.com/hookguard/internal/syntax"
)

// Verdict is the result of analyzing one expression.
type Verdict struct {
	Reason Reason

	// Node is the expression the verdict was decided on, after unwrapping and chasing
	// variables to their initializers.
	Node *syntax.Node

	// Hook is the name of the memoizing hook called, if Node is a hook call.
	Hook string

	// Found is the policy of Hook.
	Found Policy

	// Expected is the policy the value was analyzed against.
	Expected Policy

	// Dependencies are the free variables of the memoized callback.
	Dependencies DependencySet

	// Missing are the dependencies absent from the dependency array.
	Missing DependencySet

	// DependencyArray is the dependency array of the hook call, if present.
	DependencyArray *syntax.Node
}

// IsStable reports whether the value keeps its identity.
func (v Verdict) IsStable() bool {
	return v.Reason == Stable
}

// DependencySet is a set of variable names in insertion order.
//
// The zero value is an empty set ready to use.
type DependencySet struct {
	names []string
	index map[string]struct{}
}

// NewDependencySet returns a set containing the given names.
func NewDependencySet(names ...string) DependencySet {
	var d DependencySet
	for _, name := range names {
		d.Add(name)
	}

	return d
}

// Add inserts a name, reporting whether it was absent.
func (d *DependencySet) Add(name string) bool {
	if _, ok := d.index[name]; ok {
		return false
	}

	if d.index == nil {
		d.index = make(map[string]struct{})
	}

	d.index[name] = struct{}{}
	d.names = append(d.names, name)

	return true
}

// Has reports whether the set contains name.
func (d DependencySet) Has(name string) bool {
	_, ok := d.index[name]

	return ok
}

// Len returns the number of names.
func (d DependencySet) Len() int {
	return len(d.names)
}

// All yields the names in insertion order.
func (d DependencySet) All() iter.Seq[string] {
	return slices.Values(d.names)
}

// Names returns a copy of the names in insertion order.
func (d DependencySet) Names() []string {
	return slices.Clone(d.names)
}

// Difference returns the names of d not in other, in the order of d.
func (d DependencySet) Difference(other DependencySet) DependencySet {
	var diff DependencySet

	for _, name := range d.names {
		if !other.Has(name) {
			diff.Add(name)
		}
	}

	return diff
}

// String joins the names with commas.
func (d DependencySet) String() string {
	return strings.Join(d.names, ", ")
}
