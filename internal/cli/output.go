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

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"fillmore-labs.com/hookguard/analyzer"
)

// palette holds the ANSI escape sequences for diagnostic output.
type palette struct {
	bold, cyan, yellow, reset string
}

var (
	ansiPalette = palette{bold: "\033[1m", cyan: "\033[36m", yellow: "\033[33m", reset: "\033[0m"}
	noPalette   = palette{}
)

// choosePalette selects the colors for w by mode, one of auto, always or never.
func choosePalette(mode string, w io.Writer) (palette, error) {
	switch mode {
	case "always":
		return ansiPalette, nil

	case "never":
		return noPalette, nil

	case "", "auto":
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return noPalette, nil
		}

		f, ok := w.(*os.File)
		if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			return noPalette, nil
		}

		return ansiPalette, nil

	default:
		return noPalette, fmt.Errorf("%w: color %q", errUsage, mode)
	}
}

// writeText prints diagnostics as "path:line:column: message [rule]".
func writeText(w io.Writer, p palette, results []*analyzer.Result) error {
	for _, res := range results {
		for _, d := range res.Diagnostics {
			pos := res.Position(d.Pos)

			_, err := fmt.Fprintf(w, "%s%s:%d:%d%s: %s %s[%s]%s\n",
				p.bold, res.Path, pos.Line, pos.Column, p.reset,
				d.Message, p.cyan, d.Category, p.reset)
			if err != nil {
				return err
			}

			for _, rel := range d.Related {
				rpos := res.Position(rel.Pos)

				_, err := fmt.Fprintf(w, "\t%s%s:%d:%d%s: %s\n", p.yellow, res.Path, rpos.Line, rpos.Column, p.reset, rel.Message)
				if err != nil {
					return err
				}
			}
		}
	}

	return nil
}

type jsonPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type jsonEdit struct {
	Start jsonPosition `json:"start"`
	End   jsonPosition `json:"end"`
	Text  string       `json:"text"`
}

type jsonFix struct {
	Message string     `json:"message"`
	Edits   []jsonEdit `json:"edits"`
}

type jsonRelated struct {
	Start   jsonPosition `json:"start"`
	Message string       `json:"message"`
}

type jsonDiagnostic struct {
	Path    string        `json:"path"`
	Rule    string        `json:"rule"`
	Message string        `json:"message"`
	Start   jsonPosition  `json:"start"`
	End     jsonPosition  `json:"end"`
	Related []jsonRelated `json:"related,omitempty"`
	Fixes   []jsonFix     `json:"fixes,omitempty"`
}

// writeJSON prints all diagnostics as one indented JSON array.
func writeJSON(w io.Writer, results []*analyzer.Result) error {
	diagnostics := []jsonDiagnostic{}

	for _, res := range results {
		for _, d := range res.Diagnostics {
			start, end := res.Position(d.Pos), res.Position(d.End)

			jd := jsonDiagnostic{
				Path:    res.Path,
				Rule:    d.Category,
				Message: d.Message,
				Start:   jsonPosition{start.Line, start.Column},
				End:     jsonPosition{end.Line, end.Column},
			}

			for _, rel := range d.Related {
				rpos := res.Position(rel.Pos)
				jd.Related = append(jd.Related, jsonRelated{jsonPosition{rpos.Line, rpos.Column}, rel.Message})
			}

			for _, sf := range d.SuggestedFixes {
				fix := jsonFix{Message: sf.Message, Edits: make([]jsonEdit, 0, len(sf.TextEdits))}
				for _, e := range sf.TextEdits {
					es, ee := res.Position(e.Pos), res.Position(e.End)
					fix.Edits = append(fix.Edits, jsonEdit{
						Start: jsonPosition{es.Line, es.Column},
						End:   jsonPosition{ee.Line, ee.Column},
						Text:  string(e.NewText),
					})
				}

				jd.Fixes = append(jd.Fixes, fix)
			}

			diagnostics = append(diagnostics, jd)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(diagnostics)
}
