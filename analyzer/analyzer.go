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
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fillmore-labs.com/hookguard/internal/config"
	"fillmore-labs.com/hookguard/internal/rules"
	"fillmore-labs.com/hookguard/internal/syntax"
)

// ErrUnknownRule is returned when a selected rule does not exist.
var ErrUnknownRule = config.ErrUnknownRule

// Analyzer runs the configured rules on source files.
//
// An Analyzer is immutable after [New] returns and safe for concurrent use;
// every analyzed file gets its own syntax tree, scopes and rule context.
type Analyzer struct {
	parser   *syntax.Parser
	rules    []activeRule
	behavior config.BitMask[config.Behavior]
	logger   *slog.Logger
}

type activeRule struct {
	rule *rules.Rule
	cfg  *config.Rule
	inst rules.Instance
}

// New creates a new hookguard analyzer configured with [Option] values.
//
// Rule construction validates all options, errors of every rule are reported together.
func New(opts ...Option) (*Analyzer, error) {
	r := makeRunOptions(opts)

	r.logger.LogAttrs(context.Background(), slog.LevelDebug, "Creating analyzer", Options(opts).LogAttr())

	names, err := r.ruleNames()
	if err != nil {
		return nil, err
	}

	a := &Analyzer{
		parser:   syntax.NewParser(syntax.WithMaxFileSize(r.maxFileSize)),
		rules:    make([]activeRule, 0, len(names)),
		behavior: r.behavior,
		logger:   r.logger,
	}

	var errs []error

	for _, name := range names {
		rule, cfg := lookup(name), r.ruleConfig(name)

		inst, err := rule.New(cfg)
		if err != nil {
			errs = append(errs, err)

			continue
		}

		a.rules = append(a.rules, activeRule{rule: rule, cfg: cfg, inst: inst})
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return a, nil
}

// Rules returns the names of the active rules.
func (a *Analyzer) Rules() []string {
	names := make([]string, 0, len(a.rules))
	for _, ar := range a.rules {
		names = append(names, ar.rule.Name)
	}

	return names
}

func unknownRule(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownRule, name)
}
