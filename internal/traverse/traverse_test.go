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

package traverse_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/hookguard/internal/syntax"
	. "fillmore-labs.com/hookguard/internal/traverse"
)

func parse(t *testing.T, src string) *syntax.File {
	t.Helper()

	f, err := syntax.NewParser().Parse(t.Context(), "a.tsx", []byte(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	return f
}

func TestWalkOrder(t *testing.T) {
	t.Parallel()

	f := parse(t, "class A { m() { f(g()); } }\nconst B = class {};\n")

	var events []string

	record := func(prefix string) Handler {
		return func(n *syntax.Node) bool {
			events = append(events, prefix+" "+f.Text(n))

			return true
		}
	}

	handlers := make(Handlers)
	handlers["CallExpression"] = record("enter")
	handlers["CallExpression:exit"] = record("exit")
	handlers["ClassDeclaration, ClassExpression"] = record("class")
	handlers["ClassDeclaration:exit,ClassExpression:exit"] = record("class-exit")

	v, err := New(handlers)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	v.Walk(f.Root)

	want := []string{
		"class class A { m() { f(g()); } }",
		"enter f(g())",
		"enter g()",
		"exit g()",
		"exit f(g())",
		"class-exit class A { m() { f(g()); } }",
		"class class {}",
		"class-exit class {}",
	}

	if diff := cmp.Diff(want, events); diff != "" {
		t.Errorf("Walk events mismatch (-want +got):\n%s", diff)
	}
}

func TestPrune(t *testing.T) {
	t.Parallel()

	f := parse(t, "outer(() => inner());\n")

	var calls, exits int

	v, err := New(Handlers{
		"CallExpression": func(*syntax.Node) bool {
			calls++

			return false
		},
		"CallExpression:exit": func(*syntax.Node) bool {
			exits++

			return true
		},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	v.Walk(f.Root)

	if calls != 1 || exits != 1 {
		t.Errorf("Got %d enter and %d exit calls, want 1 and 1", calls, exits)
	}
}

func TestUnknownSelector(t *testing.T) {
	t.Parallel()

	_, err := New(Handlers{
		"CallExpression, Bogus": func(*syntax.Node) bool { return true },
	})

	if !errors.Is(err, ErrUnknownSelector) {
		t.Errorf("Got error %v, want %v", err, ErrUnknownSelector)
	}
}
