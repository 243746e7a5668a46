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

import (
	"iter"

	"fillmore-labs.com/hookguard/internal/syntax"
)

// Kind classifies lexical scopes.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment

const (
	Global   Kind = iota + 1 // global
	Module                   // module
	Function                 // function
	Block                    // block
	Class                    // class
	Catch                    // catch
	For                      // for
)

// Scope is a lexical binding region.
//
// Upper is a non-owning back reference, Children are owned.
// A Scope is immutable after [Build] returns.
type Scope struct {
	Kind       Kind
	Block      *syntax.Node // Node that introduced this scope
	Upper      *Scope
	Children   []*Scope
	Variables  []*Variable  // In declaration order
	References []*Reference // Identifiers read directly in this scope, excluding child scopes

	names map[string]*Variable
}

func newScope(kind Kind, block *syntax.Node, upper *Scope) *Scope {
	s := &Scope{Kind: kind, Block: block, Upper: upper}
	if upper != nil {
		upper.Children = append(upper.Children, s)
	}

	return s
}

// Lookup returns the variable declared in this scope with the given name, or nil.
func (s *Scope) Lookup(name string) *Variable {
	return s.names[name]
}

// Resolve searches the scope chain from s upward for a variable with the given name.
// It returns nil when no enclosing scope declares the name.
func (s *Scope) Resolve(name string) *Variable {
	for sc := range s.Chain() {
		if v := sc.names[name]; v != nil {
			return v
		}
	}

	return nil
}

// IsModuleLevel reports whether s is the file-level scope.
func (s *Scope) IsModuleLevel() bool {
	return s.Kind == Global || s.Kind == Module
}

// IsStrictAncestorOf reports whether s encloses other and is not other.
func (s *Scope) IsStrictAncestorOf(other *Scope) bool {
	for sc := range other.Upper.Chain() {
		if sc == s {
			return true
		}
	}

	return false
}

// VariableScope returns the nearest scope that receives hoisted declarations.
func (s *Scope) VariableScope() *Scope {
	sc := s
	for sc.Upper != nil && sc.Kind != Function && !sc.IsModuleLevel() {
		sc = sc.Upper
	}

	return sc
}

// Chain yields s and its enclosing scopes, innermost first.
func (s *Scope) Chain() iter.Seq[*Scope] {
	return func(yield func(*Scope) bool) {
		for sc := s; sc != nil; sc = sc.Upper {
			if !yield(sc) {
				return
			}
		}
	}
}

// All yields s and every scope nested in it, depth-first.
func (s *Scope) All() iter.Seq[*Scope] {
	return func(yield func(*Scope) bool) {
		s.all(yield)
	}
}

func (s *Scope) all(yield func(*Scope) bool) bool {
	if !yield(s) {
		return false
	}

	for _, c := range s.Children {
		if !c.all(yield) {
			return false
		}
	}

	return true
}

func (s *Scope) declare(name string, def Definition) *Variable {
	if v := s.names[name]; v != nil {
		v.Defs = append(v.Defs, def)

		return v
	}

	v := &Variable{Name: name, Scope: s, Defs: []Definition{def}}
	if s.names == nil {
		s.names = make(map[string]*Variable)
	}

	s.names[name] = v
	s.Variables = append(s.Variables, v)

	return v
}

// Variable is a named binding. Defs is never empty.
type Variable struct {
	Name  string
	Scope *Scope
	Defs  []Definition
}

// Def returns the first definition of v.
func (v *Variable) Def() Definition {
	return v.Defs[0]
}

// IsParameter reports whether v is bound as a function parameter.
func (v *Variable) IsParameter() bool {
	return v.Def().Kind == Parameter
}

// DefKind classifies how a variable was declared.
type DefKind uint8

//go:generate go tool stringer -type DefKind -linecomment

const (
	Parameter     DefKind = iota + 1 // parameter
	FunctionName                     // function-name
	VariableDecl                     // variable
	ImportBinding                    // import
	ClassName                        // class-name
	CatchClause                      // catch-clause
	EnumName                         // enum
)

// Definition is one declaration of a [Variable].
type Definition struct {
	Kind DefKind

	// Name is the declaring identifier.
	Name *syntax.Node

	// Node is the declaring construct: the variable declarator, function, class or import statement.
	Node *syntax.Node

	// Init is the initializer of a variable declarator, nil for other kinds or declarators without value.
	Init *syntax.Node

	// Destructured is true when the name is bound by a destructuring pattern,
	// in which case Init is the value being destructured.
	Destructured bool
}

// Reference is an occurrence of an identifier in expression position.
type Reference struct {
	Identifier *syntax.Node
	From       *Scope    // Innermost scope containing the identifier
	Resolved   *Variable // nil for globals and unknown names
}

// Name returns the referenced name.
func (r *Reference) Name() string {
	return r.Identifier.Name()
}
