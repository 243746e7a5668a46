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

package astutil

import (
	"fmt"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/hookguard/internal/syntax"
)

// InternalError creates an internal error diagnostic for rule at n, or at the file start when n is nil.
// These errors indicate bugs in the analyzer logic rather than issues in the user's code.
func InternalError(f *syntax.File, n *syntax.Node, rule, format string, args ...any) analysis.Diagnostic {
	msg := []byte("Internal Error: ")
	msg = fmt.Appendf(msg, format, args...)

	var start, end int
	if n != nil {
		start, end = n.Start, n.End
	}

	return analysis.Diagnostic{Pos: f.Pos(start), End: f.Pos(end), Category: rule, Message: string(msg)}
}
