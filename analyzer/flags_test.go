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

package analyzer_test

import (
	"flag"
	"strings"
	"testing"

	. "fillmore-labs.com/hookguard/analyzer"
	"fillmore-labs.com/hookguard/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.Behavior
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.SuggestFixes,
			args:    []string{"-generated"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.IncludeGenerated,
			args:    []string{"-generated=false"},
			want:    false,
		},
		{
			name:    "Keep",
			initial: config.IncludeGenerated,
			args:    []string{},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags := config.NewBitMask(tt.initial)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.IncludeGenerated
			fv := NewBehaviorValue(&flags, value)
			fs.Var(fv, "generated", "report findings in generated files")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Got flag value %v, want %v", fv.Get(), tt.want)
			}

			if got := flags.Enabled(value); got != tt.want {
				t.Errorf("Got IncludeGenerated %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	var flags config.BitMask[config.Behavior]

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	fs.Var(NewBehaviorValue(&flags, config.HonorNoLint), "nolint", "honor nolint directives")

	if err := fs.Parse([]string{"-nolint=maybe"}); err == nil {
		t.Error("Got no error for invalid boolean")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	NewFlags().Register(fs)

	const expectedUsage = `
  -nolint
    	honor nolint directives (default true)
  -suggest-fixes
    	attach suggested fixes to diagnostics (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Got usage %q, want suffix %q", got, want)
	}
}
