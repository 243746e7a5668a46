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

// Package rules defines the contract between lint rules and the host running them.
package rules

import (
	"fmt"

	"fillmore-labs.com/hookguard/internal/config"
	"fillmore-labs.com/hookguard/internal/report"
	"fillmore-labs.com/hookguard/internal/scope"
	"fillmore-labs.com/hookguard/internal/syntax"
	"fillmore-labs.com/hookguard/internal/traverse"
)

// Rule describes a lint rule.
type Rule struct {
	// Name identifies the rule in configuration files and diagnostics.
	Name string

	// Doc is a one line description.
	Doc string

	// Messages holds the message templates for the finding kinds of the rule.
	Messages report.Messages

	// New validates the rule options and creates an [Instance].
	New func(cfg *config.Rule) (Instance, error)
}

// Instance is a configured rule. Instances hold only immutable configuration and may
// be used for several files concurrently.
type Instance interface {
	// Handlers returns the traversal handlers for one file.
	Handlers(c *Context) traverse.Handlers
}

// InstanceFunc adapts a function to the [Instance] interface.
type InstanceFunc func(c *Context) traverse.Handlers

// Handlers implements [Instance].
func (f InstanceFunc) Handlers(c *Context) traverse.Handlers { return f(c) }

// Context is the per file state of one rule run.
type Context struct {
	File     *syntax.File
	Tree     *scope.Tree
	Reporter report.Reporter
}

// NewContext creates a fresh rule context for a parsed file.
func NewContext(f *syntax.File, tree *scope.Tree) *Context {
	return &Context{File: f, Tree: tree}
}

// Report records a finding at n.
func (c *Context) Report(n *syntax.Node, kind string, data map[string]string, fix *report.Fix) {
	c.Reporter.Report(report.Finding{Node: n, Kind: kind, Data: data, Fix: fix})
}

// Run walks the file with the handlers of inst and returns the findings in document order.
func Run(inst Instance, c *Context) ([]report.Finding, error) {
	v, err := traverse.New(inst.Handlers(c))
	if err != nil {
		return nil, err
	}

	v.Walk(c.File.Root)

	return c.Reporter.Findings(), nil
}

// Decode decodes the options of a rule configuration into v, wrapping errors
// with the rule name.
func Decode(name string, cfg *config.Rule, v any) error {
	if err := cfg.Decode(v); err != nil {
		return fmt.Errorf("rule %s: %w", name, err)
	}

	return nil
}

// Invalid returns an [config.ErrInvalidOption] error for rule name.
func Invalid(name, format string, args ...any) error {
	return fmt.Errorf("rule %s: %w: %s", name, config.ErrInvalidOption, fmt.Sprintf(format, args...))
}

// BadPattern returns a [config.ErrBadPattern] error for rule name.
func BadPattern(name, pattern string) error {
	return fmt.Errorf("rule %s: %w: %w: %q", name, config.ErrInvalidOption, config.ErrBadPattern, pattern)
}
