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

// Package imports rewrites deprecated module specifiers.
package imports

import (
	"cmp"
	"maps"
	"slices"
	"strings"

	"fillmore-labs.com/hookguard/internal/config"
	"fillmore-labs.com/hookguard/internal/report"
	"fillmore-labs.com/hookguard/internal/rules"
	"fillmore-labs.com/hookguard/internal/syntax"
	"fillmore-labs.com/hookguard/internal/traverse"
)

// Name of the rule.
const Name = "import-path"

// MsgDeprecated is the message kind of findings.
const MsgDeprecated = "deprecatedImport"

// Rule is the import-path rule.
var Rule = &rules.Rule{
	Name: Name,
	Doc:  "deprecated import paths are rewritten",
	Messages: report.Messages{
		MsgDeprecated: "import of {{source}} is deprecated, use {{replacement}} (hg:import-path)",
	},
	New: newInstance,
}

// Options are the rule options.
type Options struct {
	// Rewrites maps deprecated module prefixes to their replacement. A prefix matches
	// the whole specifier or a path below it; prefixes ending in a slash match any continuation.
	Rewrites map[string]string `yaml:"rewrites"`
}

type rewrite struct {
	from, to string
}

type instance struct {
	rewrites []rewrite // longest prefix first
}

func newInstance(cfg *config.Rule) (rules.Instance, error) {
	var opts Options
	if err := rules.Decode(Name, cfg, &opts); err != nil {
		return nil, err
	}

	return New(opts)
}

// New creates a rule instance from options.
func New(opts Options) (rules.Instance, error) {
	i := &instance{rewrites: make([]rewrite, 0, len(opts.Rewrites))}

	for _, from := range slices.Sorted(maps.Keys(opts.Rewrites)) {
		to := opts.Rewrites[from]
		if from == "" || to == "" {
			return nil, rules.Invalid(Name, "empty rewrite %q: %q", from, to)
		}

		i.rewrites = append(i.rewrites, rewrite{from, to})
	}

	slices.SortStableFunc(i.rewrites, func(a, b rewrite) int {
		return cmp.Compare(len(b.from), len(a.from))
	})

	return i, nil
}

// Rewrite returns the replacement of a module specifier.
func (i *instance) Rewrite(source string) (string, bool) {
	for _, r := range i.rewrites {
		rest, ok := strings.CutPrefix(source, r.from)
		if !ok || (rest != "" && !strings.HasSuffix(r.from, "/") && rest[0] != '/') {
			continue
		}

		return r.to + rest, true
	}

	return "", false
}

// Handlers implements [rules.Instance].
func (i *instance) Handlers(c *rules.Context) traverse.Handlers {
	check := func(lit *syntax.Node) {
		if lit == nil || lit.Kind != syntax.KindStringLiteral || lit.End-lit.Start < 2 {
			return
		}

		source := c.File.StringValue(lit)

		replacement, ok := i.Rewrite(source)
		if !ok {
			return
		}

		fix := &report.Fix{
			Message: "Import " + replacement,
			Edits:   []report.Edit{{Start: lit.Start + 1, End: lit.End - 1, Text: replacement}},
		}

		c.Report(lit, MsgDeprecated, map[string]string{"source": source, "replacement": replacement}, fix)
	}

	return traverse.Handlers{
		"ImportStatement, ExportStatement": func(n *syntax.Node) bool {
			check(n.ChildByField(syntax.FieldSource))

			return true
		},
		"CallExpression": func(n *syntax.Node) bool {
			callee := syntax.Callee(n)
			if callee == nil || (callee.Type != "import" && !(callee.Kind == syntax.KindIdentifier && callee.Name() == "require")) {
				return true
			}

			if args := syntax.Arguments(n); len(args) == 1 {
				check(args[0])
			}

			return true
		},
	}
}
