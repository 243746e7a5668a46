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

// Package traverse walks syntax trees, calling handlers registered by node kind.
package traverse

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"fillmore-labs.com/hookguard/internal/syntax"
)

// ErrUnknownSelector is returned for handler keys naming no node kind.
var ErrUnknownSelector = errors.New("unknown selector")

// exitSuffix qualifies a selector to run after the children of a node are visited.
const exitSuffix = ":exit"

// Handler is called for a matching node. An enter handler returning false prunes the
// children of the node; the return value of exit handlers is ignored.
type Handler func(n *syntax.Node) bool

// Handlers maps selectors to handlers.
//
// A selector is a kind name like "CallExpression", optionally followed by ":exit",
// or several of them separated by commas, like "ClassDeclaration, ClassExpression".
type Handlers map[string]Handler

// Visitor dispatches nodes to handlers by kind.
type Visitor struct {
	enter [syntax.KindType + 1][]Handler
	exit  [syntax.KindType + 1][]Handler
}

// New compiles handlers into a [Visitor]. Unknown kind names are an error.
func New(handlers Handlers) (*Visitor, error) {
	v := &Visitor{}

	if err := v.Add(handlers); err != nil {
		return nil, err
	}

	return v, nil
}

// Add registers more handlers. Handlers for the same kind run in registration order.
func (v *Visitor) Add(handlers Handlers) error {
	var errs []error

	for _, selector := range slices.Sorted(maps.Keys(handlers)) {
		h := handlers[selector]

		for part := range strings.SplitSeq(selector, ",") {
			part = strings.TrimSpace(part)

			name, exit := strings.CutSuffix(part, exitSuffix)

			kind, ok := syntax.KindByName(name)
			if !ok {
				errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownSelector, part))

				continue
			}

			if exit {
				v.exit[kind] = append(v.exit[kind], h)
			} else {
				v.enter[kind] = append(v.enter[kind], h)
			}
		}
	}

	return errors.Join(errs...)
}

// Walk visits n and its descendants depth-first, children in source order.
//
// Enter handlers run in pre-order, exit handlers in post-order. Handlers must not
// modify the tree structure.
func (v *Visitor) Walk(n *syntax.Node) {
	if n == nil {
		return
	}

	descend := true

	for _, h := range v.enter[n.Kind] {
		if !h(n) {
			descend = false
		}
	}

	if descend {
		for _, c := range n.Children {
			v.Walk(c)
		}
	}

	for _, h := range v.exit[n.Kind] {
		h(n)
	}
}
