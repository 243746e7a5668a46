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

package report

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownMessage is returned when a finding names a message kind without template.
	ErrUnknownMessage = errors.New("unknown message kind")

	// ErrMissingData is returned when a template placeholder has no value.
	ErrMissingData = errors.New("missing message data")
)

// Messages maps message kinds to templates with {{key}} placeholders.
type Messages map[string]string

// Render fills the template of kind with data.
func (m Messages) Render(kind string, data map[string]string) (string, error) {
	tmpl, ok := m[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMessage, kind)
	}

	var (
		msg  strings.Builder
		errs []error
	)

	for {
		before, rest, found := strings.Cut(tmpl, "{{")
		msg.WriteString(before) // ignore error

		if !found {
			break
		}

		key, after, closed := strings.Cut(rest, "}}")
		if !closed {
			msg.WriteString("{{" + rest) // ignore error

			break
		}

		key = strings.TrimSpace(key)

		value, ok := data[key]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q in %q", ErrMissingData, key, kind))
		}

		msg.WriteString(value) // ignore error

		tmpl = after
	}

	return msg.String(), errors.Join(errs...)
}
