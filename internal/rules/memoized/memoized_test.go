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

package memoized_test

import (
	"errors"
	"testing"

	"fillmore-labs.com/hookguard/internal/config"
	. "fillmore-labs.com/hookguard/internal/rules/memoized"
	"fillmore-labs.com/hookguard/internal/testsource"
)

func TestRule(t *testing.T) {
	t.Parallel()

	testsource.RunDir(t, Rule, "testdata")
}

func TestInvalidOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		options string
	}{
		{"UnknownPolicy", "properties: {onSubmit: stable}"},
		{"UnknownKey", "property: {onSubmit: callback}"},
		{"NoHooks", "valueHooks: []"},
		{"NoProperties", "properties: {}"},
		{"NegativeDepth", "maxDepth: -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Rule.New(testsource.Options(t, tt.options))
			if !errors.Is(err, config.ErrInvalidOption) {
				t.Errorf("Got error %v, want %v", err, config.ErrInvalidOption)
			}
		})
	}
}
