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

// Package redundant reports memoizing-hook calls that only re-expose an already stable function.
//
// Wrappers that suppress the event before forwarding are reported but never fixed automatically.
package redundant

import (
	"slices"

	"fillmore-labs.com/hookguard/internal/config"
	"fillmore-labs.com/hookguard/internal/report"
	"fillmore-labs.com/hookguard/internal/rules"
	"fillmore-labs.com/hookguard/internal/scope"
	"fillmore-labs.com/hookguard/internal/stability"
	"fillmore-labs.com/hookguard/internal/syntax"
	"fillmore-labs.com/hookguard/internal/traverse"
)

// Name of the rule.
const Name = "redundant-memo-wrapper"

// Message kinds.
const (
	MsgRedundant  = "redundantWrapper"
	MsgForwarding = "forwardsParameters"
	MsgSuppress   = "suppressesEvent"
)

// Rule is the redundant-memo-wrapper rule.
var Rule = &rules.Rule{
	Name: Name,
	Doc:  "memoizing hooks must not wrap functions that are already stable, event suppressing wrappers are not auto-fixed",
	Messages: report.Messages{
		MsgRedundant:  "{{hook}} only re-exposes the stable function {{target}}, use it directly (hg:redundant-wrapper)",
		MsgForwarding: "{{hook}} only forwards its parameters to the stable function {{target}} (hg:redundant-wrapper)",
		MsgSuppress:   "{{hook}} only suppresses the event before calling the stable function {{target}} (hg:redundant-wrapper)",
	},
	New: newInstance,
}

// Options are the rule options.
type Options struct {
	// CallbackHooks are the memoizing hooks checked for redundancy.
	CallbackHooks []string `yaml:"callbackHooks"`

	// StableProducers are calls whose results, directly or destructured, are known to be stable.
	StableProducers []string `yaml:"stableProducers"`

	// SuppressionMethods are event methods a wrapper may call on its first parameter
	// before forwarding, like preventDefault.
	SuppressionMethods []string `yaml:"suppressionMethods"`
}

// DefaultOptions returns the options used for absent keys.
func DefaultOptions() Options {
	cfg := stability.DefaultConfig()

	return Options{
		CallbackHooks:      cfg.CallbackHooks,
		StableProducers:    slices.Concat(cfg.CallbackHooks, cfg.ValueHooks, []string{"useEvent", "useEffectEvent", "useStableCallback"}),
		SuppressionMethods: []string{"preventDefault", "stopPropagation"},
	}
}

type instance struct {
	hooks       []string
	producers   []string
	suppression []string
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
	if len(opts.CallbackHooks) == 0 {
		return nil, rules.Invalid(Name, "no callback hooks configured")
	}

	for _, name := range slices.Concat(opts.CallbackHooks, opts.StableProducers, opts.SuppressionMethods) {
		if name == "" {
			return nil, rules.Invalid(Name, "empty name")
		}
	}

	return &instance{
		hooks:       slices.Clone(opts.CallbackHooks),
		producers:   slices.Clone(opts.StableProducers),
		suppression: slices.Clone(opts.SuppressionMethods),
	}, nil
}

// Handlers implements [rules.Instance].
func (i *instance) Handlers(c *rules.Context) traverse.Handlers {
	ch := &checker{instance: i, Context: c, known: make(map[*scope.Variable]struct{})}

	return traverse.Handlers{
		"VariableDeclarator": ch.declarator,
		"CallExpression":     ch.call,
	}
}

type checker struct {
	*instance
	*rules.Context

	// known holds the variables of this file initialized from stable producers.
	known map[*scope.Variable]struct{}
}

// declarator records the variables bound to the result of a stable producer call.
func (c *checker) declarator(n *syntax.Node) bool {
	value := syntax.Unwrap(n.ChildByField(syntax.FieldValue))
	if value == nil || value.Kind != syntax.KindCallExpression || !slices.Contains(c.producers, syntax.CalleeName(value)) {
		return true
	}

	name := n.ChildByField(syntax.FieldName)
	if name == nil {
		return true
	}

	for id := range name.Preorder() {
		if id.Kind != syntax.KindIdentifier && id.Kind != syntax.KindShorthandPropertyPattern {
			continue
		}

		v := c.Tree.Resolve(id)
		if v == nil {
			continue
		}

		// Skip identifiers read by default values
		if slices.ContainsFunc(v.Defs, func(d scope.Definition) bool { return d.Name == id }) {
			c.known[v] = struct{}{}
		}
	}

	return true
}

func (c *checker) isKnown(id *syntax.Node) bool {
	v := c.Tree.Resolve(id)
	if v == nil {
		return false
	}

	_, ok := c.known[v]

	return ok
}

func (c *checker) call(n *syntax.Node) bool {
	hook := syntax.CalleeName(n)
	if !slices.Contains(c.hooks, hook) {
		return true
	}

	r := stability.Classify(n, c.isKnown, c.suppression)
	if !r.IsRedundant() {
		return true
	}

	target := c.File.Text(r.Target)
	data := map[string]string{"hook": hook, "target": target}

	var (
		kind string
		fix  *report.Fix
	)

	switch {
	case r.Suppressed:
		// Replacing the wrapper would drop the suppression call
		kind = MsgSuppress

	case r.Shape == stability.ParameterRenaming:
		kind = MsgForwarding

	default:
		kind = MsgRedundant
		if r.Fixable {
			fix = report.Replace(n, target, "Replace with "+target)
		}
	}

	c.Report(n, kind, data, fix)

	return true
}
