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
	"flag"
	"strconv"

	"fillmore-labs.com/hookguard/internal/config"
	"fillmore-labs.com/hookguard/internal/syntax"
)

// Flags holds host settings bound to command line flags.
type Flags struct {
	behavior    config.BitMask[config.Behavior]
	maxFileSize int
}

// NewFlags returns the default host settings.
func NewFlags() *Flags {
	return &Flags{behavior: config.DefaultBehavior(), maxFileSize: syntax.DefaultMaxFileSize}
}

// Register binds the settings to command line flag values.
// A nil flag set value defaults to the program's command line.
func (f *Flags) Register(flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(NewBehaviorValue(&f.behavior, config.IncludeGenerated), "generated", "report findings in generated files")
	flags.Var(NewBehaviorValue(&f.behavior, config.SuggestFixes), "suggest-fixes", "attach suggested fixes to diagnostics")
	flags.Var(NewBehaviorValue(&f.behavior, config.HonorNoLint), "nolint", "honor nolint directives")
	flags.IntVar(&f.maxFileSize, "max-file-size", f.maxFileSize, "maximum size of analyzed files in bytes")
}

// Option returns the settings as an [Option].
func (f *Flags) Option() Option {
	return Options{
		WithGenerated(f.behavior.Enabled(config.IncludeGenerated)),
		WithFixes(f.behavior.Enabled(config.SuggestFixes)),
		WithNoLint(f.behavior.Enabled(config.HonorNoLint)),
		WithMaxFileSize(f.maxFileSize),
	}
}

// NewBehaviorValue creates a boolean [flag.Value] toggling value in flags.
func NewBehaviorValue(flags *config.BitMask[config.Behavior], value config.Behavior) flag.Getter {
	return behaviorValue{flags: flags, value: value}
}

type behaviorValue struct {
	flags *config.BitMask[config.Behavior]
	value config.Behavior
}

// Set implements [flag.Value].
func (b behaviorValue) Set(s string) error {
	enabled, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}

	b.flags.Set(b.value, enabled)

	return nil
}

// String implements [flag.Value]. The flag package calls it on the zero value.
func (b behaviorValue) String() string {
	return strconv.FormatBool(b.enabled())
}

// Get implements [flag.Getter].
func (b behaviorValue) Get() any { return b.enabled() }

// IsBoolFlag marks the value as a boolean flag.
func (b behaviorValue) IsBoolFlag() bool { return true }

func (b behaviorValue) enabled() bool {
	return b.flags != nil && b.flags.Enabled(b.value)
}
