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

// Package storecall reports direct calls into low-level data stores that should go through a facade.
package storecall

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"fillmore-labs.com/hookguard/internal/config"
	"fillmore-labs.com/hookguard/internal/report"
	"fillmore-labs.com/hookguard/internal/rules"
	"fillmore-labs.com/hookguard/internal/syntax"
	"fillmore-labs.com/hookguard/internal/traverse"
)

// Name of the rule.
const Name = "no-direct-store"

// MsgDirectCall is the message kind of findings.
const MsgDirectCall = "directCall"

// Rule is the no-direct-store rule.
var Rule = &rules.Rule{
	Name: Name,
	Doc:  "data stores must be accessed through their facade",
	Messages: report.Messages{
		MsgDirectCall: "direct call to {{callee}} bypasses {{facade}} (hg:direct-store)",
	},
	New: newInstance,
}

// Forbidden is a callee pattern like "localStorage.*" with the facade to use instead.
type Forbidden struct {
	Pattern string `yaml:"pattern"`
	Facade  string `yaml:"facade"`
}

// Options are the rule options.
type Options struct {
	Forbidden []Forbidden `yaml:"forbidden"`

	// Allow exempts files implementing the facades.
	Allow []string `yaml:"allow"`
}

// DefaultOptions returns the options used for absent keys.
func DefaultOptions() Options {
	return Options{
		Forbidden: []Forbidden{
			{Pattern: "localStorage.*", Facade: "the storage facade"},
			{Pattern: "sessionStorage.*", Facade: "the storage facade"},
			{Pattern: "window.localStorage.*", Facade: "the storage facade"},
			{Pattern: "window.sessionStorage.*", Facade: "the storage facade"},
			{Pattern: "indexedDB.open", Facade: "the storage facade"},
		},
	}
}

type instance struct {
	forbidden []Forbidden
	allow     []string
}

func newInstance(cfg *config.Rule) (rules.Instance, error) {
	opts := DefaultOptions()
	if err := rules.Decode(Name, cfg, &opts); err != nil {
		return nil, err
	}

	return New(opts)
}

// New creates a rule instance from options.
func New(opts Options) (rules.Instance, error) {
	for _, f := range opts.Forbidden {
		if f.Pattern == "" || f.Facade == "" {
			return nil, rules.Invalid(Name, "forbidden entries need a pattern and a facade")
		}

		if !doublestar.ValidatePattern(f.Pattern) {
			return nil, rules.BadPattern(Name, f.Pattern)
		}
	}

	for _, pattern := range opts.Allow {
		if !doublestar.ValidatePattern(pattern) {
			return nil, rules.BadPattern(Name, pattern)
		}
	}

	return &instance{forbidden: opts.Forbidden, allow: opts.Allow}, nil
}

// Handlers implements [rules.Instance].
func (i *instance) Handlers(c *rules.Context) traverse.Handlers {
	path := filepath.ToSlash(c.File.Path)
	for _, pattern := range i.allow {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return nil
		}
	}

	return traverse.Handlers{
		"CallExpression, NewExpression": func(n *syntax.Node) bool {
			callee := Path(c.File, syntax.Callee(n))
			if callee == "" {
				return true
			}

			for _, f := range i.forbidden {
				if ok, _ := doublestar.Match(f.Pattern, callee); ok {
					c.Report(n, MsgDirectCall, map[string]string{"callee": callee, "facade": f.Facade}, nil)

					break
				}
			}

			return true
		},
	}
}

// Path returns the dotted name of a static member chain like window.localStorage.getItem,
// or "" for other expressions. Optional chaining, subscripts with string literals and
// transparent wrappers are normalized away.
func Path(f *syntax.File, n *syntax.Node) string {
	n = syntax.Unwrap(n)
	if n == nil {
		return ""
	}

	switch n.Kind {
	case syntax.KindIdentifier:
		return n.Name()

	case syntax.KindThis:
		return "this"

	case syntax.KindMemberExpression:
		object := Path(f, n.ChildByField(syntax.FieldObject))
		property := n.ChildByField(syntax.FieldProperty)

		if object == "" || property == nil || property.Kind != syntax.KindPropertyIdentifier {
			return ""
		}

		return object + "." + property.Name()

	case syntax.KindSubscriptExpression:
		object := Path(f, n.ChildByField(syntax.FieldObject))
		index := syntax.Unwrap(n.ChildByField(syntax.FieldIndex))

		if object == "" || index == nil || index.Kind != syntax.KindStringLiteral {
			return ""
		}

		return object + "." + f.StringValue(index)

	default:
		return ""
	}
}
