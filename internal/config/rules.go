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

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownRule is returned when the configuration names a rule that does not exist.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrInvalidOption is returned when rule options can not be decoded or fail validation.
	ErrInvalidOption = errors.New("invalid rule option")

	// ErrBadPattern is returned for malformed include or exclude globs.
	ErrBadPattern = errors.New("bad path pattern")
)

// File is a hookguard configuration file.
//
//	rules:
//	  memoized-options:
//	    include: ["src/**"]
//	    options:
//	      properties:
//	        onSubmit: callback
type File struct {
	// Rules maps rule names to their configuration. Rules not listed are disabled.
	Rules map[string]*Rule `yaml:"rules"`
}

// Rule configures one rule.
type Rule struct {
	// Disabled turns the rule off while keeping its configuration.
	Disabled bool `yaml:"disabled"`

	// Include limits the rule to matching paths, all paths when empty.
	Include []string `yaml:"include"`

	// Exclude exempts matching paths.
	Exclude []string `yaml:"exclude"`

	// Options are the rule specific settings, decoded by [Rule.Decode].
	Options yaml.Node `yaml:"options"`
}

// Load reads a configuration file.
func Load(name string) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return c, nil
}

// Parse decodes a configuration strictly, rejecting unknown keys.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c File
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	for name, rule := range c.Rules {
		if rule == nil {
			c.Rules[name] = &Rule{}

			continue
		}

		if err := rule.validate(); err != nil {
			return nil, fmt.Errorf("rule %s: %w", name, err)
		}
	}

	return &c, nil
}

// Check verifies that every configured rule is known.
func (c *File) Check(known func(name string) bool) error {
	var errs []error

	for _, name := range slices.Sorted(maps.Keys(c.Rules)) {
		if !known(name) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownRule, name))
		}
	}

	return errors.Join(errs...)
}

// Enabled returns the names of enabled rules in sorted order.
func (c *File) Enabled() []string {
	var names []string

	for _, name := range slices.Sorted(maps.Keys(c.Rules)) {
		if !c.Rules[name].Disabled {
			names = append(names, name)
		}
	}

	return names
}

func (r *Rule) validate() error {
	var errs []error

	for _, pattern := range slices.Concat(r.Include, r.Exclude) {
		if !doublestar.ValidatePattern(pattern) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrBadPattern, pattern))
		}
	}

	return errors.Join(errs...)
}

// Decode decodes the rule options into v, rejecting unknown keys.
// Absent options leave v unchanged.
func (r *Rule) Decode(v any) error {
	if r == nil || r.Options.Kind == 0 {
		return nil
	}

	// yaml.Node.Decode does not support strict decoding, round trip through a decoder
	data, err := yaml.Marshal(&r.Options)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}

	return nil
}

// Applies reports whether the rule applies to the slash separated path.
func (r *Rule) Applies(path string) bool {
	if r == nil {
		return true
	}

	if len(r.Include) > 0 && !matchAny(r.Include, path) {
		return false
	}

	return !matchAny(r.Exclude, path)
}

func matchAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, path); ok { // patterns are validated
			return true
		}
	}

	return false
}

// LogValue implements [slog.LogValuer].
func (r *Rule) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("disabled", r.Disabled),
		slog.Any("include", r.Include),
		slog.Any("exclude", r.Exclude),
	)
}
