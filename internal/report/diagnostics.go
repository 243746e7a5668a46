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
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/hookguard/internal/syntax"
)

// Diagnostic converts a finding of rule into an [analysis.Diagnostic] positioned in f.
//
// A message rendering error still yields a diagnostic with the partially rendered message.
func Diagnostic(f *syntax.File, rule string, messages Messages, finding Finding) (analysis.Diagnostic, error) {
	msg, err := messages.Render(finding.Kind, finding.Data)

	d := analysis.Diagnostic{
		Pos:      f.Pos(finding.Node.Start),
		End:      f.Pos(finding.Node.End),
		Category: rule,
		Message:  msg,
	}

	for _, rel := range finding.Related {
		d.Related = append(d.Related, analysis.RelatedInformation{
			Pos:     f.Pos(rel.Node.Start),
			End:     f.Pos(rel.Node.End),
			Message: rel.Message,
		})
	}

	if fix := finding.Fix; fix != nil && len(fix.Edits) > 0 {
		message := fix.Message
		if message == "" {
			message = msg
		}

		edits := make([]analysis.TextEdit, 0, len(fix.Edits))
		for _, e := range fix.Edits {
			edits = append(edits, analysis.TextEdit{
				Pos:     f.Pos(e.Start),
				End:     f.Pos(e.End),
				NewText: []byte(e.Text),
			})
		}

		d.SuggestedFixes = []analysis.SuggestedFix{{Message: message, TextEdits: edits}}
	}

	return d, err
}
