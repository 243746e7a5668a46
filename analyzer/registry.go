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
	"fmt"
	"strings"
	"text/tabwriter"

	"fillmore-labs.com/hookguard/internal/rules"
	"fillmore-labs.com/hookguard/internal/rules/imports"
	"fillmore-labs.com/hookguard/internal/rules/memoized"
	"fillmore-labs.com/hookguard/internal/rules/naming"
	"fillmore-labs.com/hookguard/internal/rules/redundant"
	"fillmore-labs.com/hookguard/internal/rules/storecall"
)

// registry lists the available rules in reporting order.
var registry = [...]*rules.Rule{
	memoized.Rule,
	redundant.Rule,
	storecall.Rule,
	naming.Rule,
	imports.Rule,
}

// RuleNames returns the names of all available rules.
func RuleNames() []string {
	names := make([]string, 0, len(registry))
	for _, r := range registry {
		names = append(names, r.Name)
	}

	return names
}

// RuleDoc returns a table of rule names and their descriptions.
func RuleDoc() string {
	var b strings.Builder

	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	for _, r := range registry {
		fmt.Fprintf(w, "  %s\t%s\n", r.Name, r.Doc) // ignore error
	}

	w.Flush() // ignore error

	return b.String()
}

// KnownRule reports whether a rule name exists.
func KnownRule(name string) bool {
	return lookup(name) != nil
}

func lookup(name string) *rules.Rule {
	for _, r := range registry {
		if r.Name == name {
			return r
		}
	}

	return nil
}
