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

// Package memoized enforces that configured component options receive stable values.
package memoized

import (
	"maps"
	"slices"
	"strings"

	"fillmore-labs.com/hookguard/internal/config"
	"fillmore-labs.com/hookguard/internal/report"
	"fillmore-labs.com/hookguard/internal/rules"
	"fillmore-labs.com/hookguard/internal/stability"
	"fillmore-labs.com/hookguard/internal/syntax"
	"fillmore-labs.com/hookguard/internal/traverse"
)

// Name of the rule.
const Name = "memoized-options"

// Message kinds.
const (
	MsgRawFunction            = "rawFunction"
	MsgUnstableValue          = "unstableValue"
	MsgWrongHook              = "wrongHook"
	MsgMissingDependencyArray = "missingDependencyArray"
	MsgMissingDependency      = "missingDependency"
)

// Rule is the memoized-options rule.
var Rule = &rules.Rule{
	Name: Name,
	Doc:  "options passed to component adapters must be memoized",
	Messages: report.Messages{
		MsgRawFunction:            "{{property}} receives a function recreated on every render, wrap it in {{hook}} (hg:raw-function)",
		MsgUnstableValue:          "{{property}} receives a value that can not be proven stable, memoize it with {{hook}} (hg:unstable-value)",
		MsgWrongHook:              "{{property}} is memoized with {{found}}, use {{hook}} (hg:wrong-hook)",
		MsgMissingDependencyArray: "{{hook}} for {{property}} has no dependency array (hg:no-deps)",
		MsgMissingDependency:      "{{hook}} for {{property}} is missing the dependencies {{missing}} (hg:missing-deps)",
	},
	New: newInstance,
}

// Options are the rule options.
type Options struct {
	// Properties maps option names to the expected policy, "value" or "callback".
	Properties map[string]string `yaml:"properties"`

	// Adapters restricts the check to arguments of calls and JSX elements with these names.
	// Empty means everywhere.
	Adapters []string `yaml:"adapters"`

	ValueHooks      []string `yaml:"valueHooks"`
	CallbackHooks   []string `yaml:"callbackHooks"`
	StableUtilities []string `yaml:"stableUtilities"`
	MaxDepth        int      `yaml:"maxDepth"`
}

// DefaultOptions returns the options used for absent keys.
func DefaultOptions() Options {
	cfg := stability.DefaultConfig()

	return Options{
		Properties: map[string]string{
			"transformValue": "value",
			"onSubmit":       "callback",
		},
		ValueHooks:      cfg.ValueHooks,
		CallbackHooks:   cfg.CallbackHooks,
		StableUtilities: cfg.StableUtilities,
		MaxDepth:        cfg.MaxDepth,
	}
}

type instance struct {
	properties map[string]stability.Policy
	adapters   map[string]struct{}
	cfg        stability.Config
}

func newInstance(cfg *config.Rule) (rules.Instance, error) {
	opts := DefaultOptions()

	// Decoding merges into existing maps
	defaults := opts.Properties
	opts.Properties = nil

	if err := rules.Decode(Name, cfg, &opts); err != nil {
		return nil, err
	}

	if opts.Properties == nil {
		opts.Properties = defaults
	}

	return New(opts)
}

// New creates a rule instance from options.
func New(opts Options) (rules.Instance, error) {
	if len(opts.Properties) == 0 {
		return nil, rules.Invalid(Name, "no properties configured")
	}

	if len(opts.ValueHooks) == 0 || len(opts.CallbackHooks) == 0 {
		return nil, rules.Invalid(Name, "value and callback hooks must not be empty")
	}

	if opts.MaxDepth < 0 {
		return nil, rules.Invalid(Name, "negative maxDepth %d", opts.MaxDepth)
	}

	i := &instance{
		properties: make(map[string]stability.Policy, len(opts.Properties)),
		cfg: stability.Config{
			ValueHooks:      opts.ValueHooks,
			CallbackHooks:   opts.CallbackHooks,
			StableUtilities: opts.StableUtilities,
			MaxDepth:        opts.MaxDepth,
		},
	}

	for _, name := range slices.Sorted(maps.Keys(opts.Properties)) {
		p, err := stability.ParsePolicy(opts.Properties[name])
		if err != nil {
			return nil, rules.Invalid(Name, "property %s: %v", name, err)
		}

		i.properties[name] = p
	}

	if len(opts.Adapters) > 0 {
		i.adapters = make(map[string]struct{}, len(opts.Adapters))
		for _, a := range opts.Adapters {
			i.adapters[a] = struct{}{}
		}
	}

	return i, nil
}

// Handlers implements [rules.Instance].
func (i *instance) Handlers(c *rules.Context) traverse.Handlers {
	ch := &checker{instance: i, Context: c, analyzer: stability.New(c.Tree, i.cfg)}

	return traverse.Handlers{
		"Pair, ShorthandProperty, MethodDefinition": ch.property,
		"JSXAttribute":                              ch.attribute,
	}
}

type checker struct {
	*instance
	*rules.Context
	analyzer *stability.Analyzer
}

func (c *checker) property(n *syntax.Node) bool {
	obj := n.Parent
	if obj == nil || obj.Kind != syntax.KindObjectLiteral {
		return true
	}

	name := c.File.PropertyName(n)
	if n.Kind == syntax.KindMethodDefinition {
		name = n.ChildByField(syntax.FieldName).Name()
	}

	policy, ok := c.properties[name]
	if !ok || !c.adapted(obj) {
		return true
	}

	switch n.Kind {
	case syntax.KindMethodDefinition:
		c.Report(n, MsgRawFunction, c.data(name, policy), nil)

	case syntax.KindShorthandProperty:
		c.check(name, n, policy)

	default:
		c.check(name, n.ChildByField(syntax.FieldValue), policy)
	}

	return true
}

func (c *checker) attribute(n *syntax.Node) bool {
	name := c.File.PropertyName(n)

	policy, ok := c.properties[name]
	if !ok {
		return true
	}

	if value := syntax.AttributeValue(n); value != nil && c.adaptedElement(n.Parent) {
		c.check(name, value, policy)
	}

	return true
}

// adapted reports whether an object literal is passed to a configured adapter,
// possibly nested in other object literals.
func (c *checker) adapted(obj *syntax.Node) bool {
	if c.adapters == nil {
		return true
	}

	for n := obj; n != nil; n = n.Parent {
		switch n.Kind {
		case syntax.KindObjectLiteral, syntax.KindPair, syntax.KindArguments,
			syntax.KindParenthesizedExpression, syntax.KindAsExpression, syntax.KindSatisfiesExpression:
			continue

		case syntax.KindCallExpression, syntax.KindNewExpression:
			_, ok := c.adapters[syntax.CalleeName(n)]

			return ok

		case syntax.KindJSXExpression:
			if attr := n.Parent; attr != nil && attr.Kind == syntax.KindJSXAttribute {
				return c.adaptedElement(attr.Parent)
			}
		}

		return false
	}

	return false
}

func (c *checker) adaptedElement(el *syntax.Node) bool {
	if c.adapters == nil {
		return true
	}

	if el == nil {
		return false
	}

	name := syntax.ElementName(el)
	if name == nil {
		return false
	}

	if _, ok := c.adapters[c.File.Text(name)]; ok {
		return true
	}

	_, ok := c.adapters[syntax.SimpleName(name)]

	return ok
}

func (c *checker) data(property string, policy stability.Policy) map[string]string {
	return map[string]string{"property": property, "hook": c.analyzer.HookFor(policy)}
}

func (c *checker) check(property string, value *syntax.Node, policy stability.Policy) {
	if value == nil {
		return
	}

	v := c.analyzer.Analyze(value, policy, c.Tree.Innermost(value))
	data := c.data(property, policy)

	var (
		kind string
		fix  *report.Fix
	)

	switch v.Reason {
	case stability.Stable:
		return

	case stability.RawFunction:
		kind = MsgUnstableValue
		if syntax.IsFunction(v.Node) {
			kind = MsgRawFunction
			fix = c.wrap(v.Node, policy)
		}

	case stability.WrongHook:
		kind = MsgWrongHook
		data["found"] = v.Hook

	case stability.MissingDependencyArray:
		kind = MsgMissingDependencyArray
		data["hook"] = v.Hook
		fix = c.appendArray(v)

	case stability.MissingDependency:
		kind = MsgMissingDependency
		data["hook"] = v.Hook
		data["missing"] = report.Names(v.Missing.Names())
		fix = c.extendArray(v)

	default:
		return
	}

	finding := report.Finding{Node: value, Kind: kind, Data: data, Fix: fix}
	if v.Node != nil && v.Node != syntax.Unwrap(value) {
		finding.Related = []report.Related{{Node: v.Node, Message: "value defined here"}}
	}

	c.Reporter.Report(finding)
}

// wrap memoizes a function literal evaluated while a component renders.
func (c *checker) wrap(fn *syntax.Node, policy stability.Policy) *report.Fix {
	if !rules.InRenderScope(fn) {
		return nil
	}

	hook := c.analyzer.HookFor(policy)
	deps := "[" + strings.Join(c.analyzer.FreeVariables(fn).Names(), ", ") + "]"

	text := c.File.Text(fn)

	var wrapped string
	if policy == stability.ValueMemo {
		wrapped = hook + "(() => " + text + ", " + deps + ")"
	} else {
		wrapped = hook + "(" + text + ", " + deps + ")"
	}

	return report.Replace(fn, wrapped, "Wrap in "+hook)
}

func (c *checker) appendArray(v stability.Verdict) *report.Fix {
	args := syntax.Arguments(v.Node)
	if len(args) != 1 {
		return nil
	}

	deps := "[" + v.Dependencies.String() + "]"

	return report.InsertAfter(args[0], ", "+deps, "Add dependency array "+deps)
}

func (c *checker) extendArray(v stability.Verdict) *report.Fix {
	arr := v.DependencyArray
	missing := v.Missing.String()

	if len(arr.Children) == 0 {
		return report.Replace(arr, "["+missing+"]", "Add dependencies "+missing)
	}

	last := arr.Children[len(arr.Children)-1]

	return report.InsertAfter(last, ", "+missing, "Add dependencies "+missing)
}
