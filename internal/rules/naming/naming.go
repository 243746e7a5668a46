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

// Package naming reports event handler names using a suffix instead of the handle prefix.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"fillmore-labs.com/hookguard/internal/config"
	"fillmore-labs.com/hookguard/internal/report"
	"fillmore-labs.com/hookguard/internal/rules"
	"fillmore-labs.com/hookguard/internal/scope"
	"fillmore-labs.com/hookguard/internal/syntax"
	"fillmore-labs.com/hookguard/internal/traverse"
)

// Name of the rule.
const Name = "no-handler-suffix"

// MsgSuffix is the message kind of findings.
const MsgSuffix = "handlerSuffix"

// Rule is the no-handler-suffix rule.
var Rule = &rules.Rule{
	Name: Name,
	Doc:  "event handlers are named with a prefix, not a suffix",
	Messages: report.Messages{
		MsgSuffix: "{{name}} ends in {{suffix}}, name it {{suggestion}} (hg:handler-suffix)",
	},
	New: newInstance,
}

// Options are the rule options.
type Options struct {
	// Suffixes are the flagged name endings.
	Suffixes []string `yaml:"suffixes"`

	// Prefix starts the suggested name.
	Prefix string `yaml:"prefix"`
}

// DefaultOptions returns the options used for absent keys.
func DefaultOptions() Options {
	return Options{Suffixes: []string{"Handler"}, Prefix: "handle"}
}

type instance struct {
	Options
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
	if len(opts.Suffixes) == 0 {
		return nil, rules.Invalid(Name, "no suffixes configured")
	}

	for _, s := range opts.Suffixes {
		if r, _ := utf8.DecodeRuneInString(s); !unicode.IsUpper(r) {
			return nil, rules.Invalid(Name, "suffix %q must start with an upper case letter", s)
		}
	}

	if opts.Prefix == "" {
		return nil, rules.Invalid(Name, "empty prefix")
	}

	return &instance{opts}, nil
}

// Handlers implements [rules.Instance].
func (i *instance) Handlers(c *rules.Context) traverse.Handlers {
	var renamer report.Renamer

	return traverse.Handlers{
		"Program": func(*syntax.Node) bool {
			for s := range c.Tree.Root.All() {
				for _, v := range s.Variables {
					i.check(c, &renamer, v)
				}
			}

			return false
		},
	}
}

func (i *instance) check(c *rules.Context, renamer *report.Renamer, v *scope.Variable) {
	def := v.Def()

	switch def.Kind {
	case scope.VariableDecl, scope.FunctionName, scope.Parameter:

	default:
		return
	}

	for _, suffix := range i.Suffixes {
		base, ok := strings.CutSuffix(v.Name, suffix)
		if !ok || base == "" {
			continue
		}

		suggestion := i.suggest(base)

		var fix *report.Fix
		if def.Kind == scope.Parameter || !exported(def.Node) {
			fix = renamer.Rename(v, suggestion)
		}

		c.Report(def.Name, MsgSuffix, map[string]string{"name": v.Name, "suffix": suffix, "suggestion": suggestion}, fix)

		return
	}
}

// suggest turns the name base into the prefixed form: submit and onSubmit become handleSubmit.
func (i *instance) suggest(base string) string {
	if rest, ok := strings.CutPrefix(base, "on"); ok {
		if r, _ := utf8.DecodeRuneInString(rest); unicode.IsUpper(r) {
			base = rest
		}
	}

	r, size := utf8.DecodeRuneInString(base)

	return i.Prefix + string(unicode.ToUpper(r)) + base[size:]
}

// exported reports whether a declaration is part of an export statement, renaming it
// would change the module interface.
func exported(decl *syntax.Node) bool {
	if decl == nil {
		return false
	}

	for n := range decl.Ancestors() {
		switch n.Kind {
		case syntax.KindExportStatement:
			return true

		case syntax.KindStatementBlock, syntax.KindProgram:
			return false
		}
	}

	return false
}
