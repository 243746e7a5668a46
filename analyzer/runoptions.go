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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/hookguard/internal/config"
	"fillmore-labs.com/hookguard/internal/syntax"
)

// runOptions represent configuration runOptions for the hookguard analyzer.
type runOptions struct {
	// config holds per rule settings. Without a configuration all rules run with default options.
	config *config.File

	// rules selects the rules to run, overriding the enabled rules of config.
	rules []string

	// behavior holds host options applying to all rules.
	behavior config.BitMask[config.Behavior]

	// maxFileSize limits the size of analyzed sources.
	maxFileSize int

	logger *slog.Logger
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

// defaultRunOptions initializes and returns a new runOptions instance with default values.
func defaultRunOptions() *runOptions {
	return &runOptions{
		behavior:    config.DefaultBehavior(),
		maxFileSize: syntax.DefaultMaxFileSize,
		logger:      slog.New(slog.DiscardHandler),
	}
}

// ruleNames returns the names of the rules to run.
func (r *runOptions) ruleNames() ([]string, error) {
	if r.config != nil {
		if err := r.config.Check(KnownRule); err != nil {
			return nil, err
		}
	}

	switch {
	case r.rules != nil:
		for _, name := range r.rules {
			if !KnownRule(name) {
				return nil, unknownRule(name)
			}
		}

		return r.rules, nil

	case r.config != nil:
		return r.config.Enabled(), nil

	default:
		return RuleNames(), nil
	}
}

// ruleConfig returns the configuration of a rule, nil when it has none.
func (r *runOptions) ruleConfig(name string) *config.Rule {
	if r.config == nil {
		return nil
	}

	return r.config.Rules[name]
}
