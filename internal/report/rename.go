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

package report

import (
	"slices"
	"strconv"

	"fillmore-labs.com/hookguard/internal/scope"
	"fillmore-labs.com/hookguard/internal/syntax"
)

// Renamer renames variables, choosing names that do not collide with other bindings.
//
// The zero value is ready to use. Internal maps are allocated when the first variable is renamed.
type Renamer struct {
	// renamed tracks variables that have already been processed to prevent duplicate renaming.
	renamed map[*scope.Variable]struct{}

	// assigned holds the names given by earlier renames, keyed by the scope of the renamed variable.
	assigned map[*scope.Scope][]string
}

// Rename creates a fix renaming v and all its references to name. When name is taken,
// a numeric suffix is appended.
//
// The method returns nil if the variable has already been renamed or no free name is found.
func (r *Renamer) Rename(v *scope.Variable, name string) *Fix {
	if r == nil {
		return nil
	}

	// Has this variable already been renamed?
	if _, ok := r.renamed[v]; ok {
		return nil
	}

	newName, ok := r.uniqueName(v.Scope, name)
	if !ok {
		return nil
	}

	var edits []Edit

	for _, def := range v.Defs {
		if def.Name != nil {
			edits = append(edits, renameEdit(def.Name, v.Name, newName))
		}
	}

	for s := range v.Scope.All() {
		for _, ref := range s.References {
			if ref.Resolved == v {
				edits = append(edits, renameEdit(ref.Identifier, v.Name, newName))
			}
		}
	}

	if len(edits) == 0 {
		return nil
	}

	// Mark this variable as renamed to prevent duplicate processing
	if r.renamed == nil {
		r.renamed = make(map[*scope.Variable]struct{})
	}

	r.renamed[v] = struct{}{}

	if r.assigned == nil {
		r.assigned = make(map[*scope.Scope][]string)
	}

	r.assigned[v.Scope] = append(r.assigned[v.Scope], newName)

	return &Fix{Message: "Rename " + v.Name + " to " + newName, Edits: edits}
}

// renameEdit renames one occurrence, keeping property keys and module interface names intact.
func renameEdit(id *syntax.Node, oldName, newName string) Edit {
	text := newName

	switch id.Kind {
	case syntax.KindShorthandProperty, syntax.KindShorthandPropertyPattern:
		text = oldName + ": " + newName

	default:
		switch p := id.Parent; {
		case p == nil:

		case p.Kind == syntax.KindExportSpecifier && p.ChildByField(syntax.FieldAlias) == nil:
			text = newName + " as " + oldName

		case p.Kind == syntax.KindImportSpecifier && p.ChildByField(syntax.FieldAlias) == nil:
			text = oldName + " as " + newName
		}
	}

	return Edit{Start: id.Start, End: id.End, Text: text}
}

// uniqueName generates a deterministic unique name based on name.
//
// The method checks both parent and child scopes to ensure the new name doesn't
// conflict with any existing variables in the scope hierarchy or names given by earlier renames.
func (r *Renamer) uniqueName(s *scope.Scope, name string) (string, bool) {
	if !r.conflicts(s, name) {
		return name, true
	}

	const maxTries = 99

	for c := 2; c < maxTries+2; c++ {
		candidate := name + strconv.Itoa(c)
		if !r.conflicts(s, candidate) {
			return candidate, true
		}
	}

	return "", false
}

// conflicts checks whether name is bound in s or its parents, declared or read in its children,
// or given to a variable of a related scope by an earlier rename.
func (r *Renamer) conflicts(s *scope.Scope, name string) bool {
	if s.Resolve(name) != nil {
		return true
	}

	for child := range s.All() {
		if child.Lookup(name) != nil {
			return true
		}

		for _, ref := range child.References {
			if ref.Name() == name {
				return true
			}
		}
	}

	for t, names := range r.assigned {
		if (t == s || t.IsStrictAncestorOf(s) || s.IsStrictAncestorOf(t)) && slices.Contains(names, name) {
			return true
		}
	}

	return false
}
