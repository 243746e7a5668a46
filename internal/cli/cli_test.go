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

package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/hookguard/analyzer"
	. "fillmore-labs.com/hookguard/internal/cli"
)

const (
	handlerSource = "const clickHandler = () => {};\nclickHandler();\n"
	fixedSource   = "const handleClick = () => {};\nhandleClick();\n"
	handlerRule   = "--rules=no-handler-suffix"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func execute(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	var out, errOut bytes.Buffer
	code = Main(t.Context(), args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestList(t *testing.T) {
	t.Parallel()

	code, stdout, _ := execute(t, "--list")
	assert.Equal(t, ExitOK, code)

	for _, name := range analyzer.RuleNames() {
		assert.Contains(t, stdout, name)
	}
}

func TestFlags(t *testing.T) {
	t.Parallel()

	cmd := NewCommand(&bytes.Buffer{}, &bytes.Buffer{})
	for _, name := range []string{"config", "rules", "json", "fix", "diff", "list", "jobs", "verbose", "color", "generated", "nolint", "suggest-fixes", "max-file-size"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
}

func TestFindings(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	form := writeFile(t, dir, "src/Form.tsx", handlerSource)
	writeFile(t, dir, "node_modules/lib/index.js", handlerSource)
	writeFile(t, dir, ".cache/index.js", handlerSource)
	writeFile(t, dir, "src/types.d.ts", "declare const clickHandler: () => void;\n")
	writeFile(t, dir, "README.md", "# clickHandler\n")

	code, stdout, _ := execute(t, "--color=never", handlerRule, dir)
	assert.Equal(t, ExitFindings, code)
	assert.Equal(t, form+":1:7: clickHandler ends in Handler, name it handleClick (hg:handler-suffix) [no-handler-suffix]\n", stdout)
}

func TestClean(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "src/Form.tsx", fixedSource)

	code, stdout, _ := execute(t, "--color=never", dir)
	assert.Equal(t, ExitOK, code)
	assert.Empty(t, stdout)
}

func TestJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	form := writeFile(t, dir, "form.js", handlerSource)

	code, stdout, _ := execute(t, "--json", handlerRule, form)
	assert.Equal(t, ExitFindings, code)

	var diagnostics []struct {
		Path  string `json:"path"`
		Rule  string `json:"rule"`
		Start struct {
			Line   int `json:"line"`
			Column int `json:"column"`
		} `json:"start"`
		Fixes []struct {
			Message string `json:"message"`
		} `json:"fixes"`
	}

	require.NoError(t, json.Unmarshal([]byte(stdout), &diagnostics))
	require.Len(t, diagnostics, 1)

	d := diagnostics[0]
	assert.Equal(t, form, d.Path)
	assert.Equal(t, "no-handler-suffix", d.Rule)
	assert.Equal(t, 1, d.Start.Line)
	assert.Equal(t, 7, d.Start.Column)
	require.Len(t, d.Fixes, 1)
	assert.Equal(t, "Rename clickHandler to handleClick", d.Fixes[0].Message)
}

func TestFix(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	form := writeFile(t, dir, "form.js", handlerSource)

	code, stdout, _ := execute(t, "--fix", "--color=never", handlerRule, form)
	assert.Equal(t, ExitOK, code)
	assert.Empty(t, stdout)

	got, err := os.ReadFile(form)
	require.NoError(t, err)
	assert.Equal(t, fixedSource, string(got))
}

func TestFixOverlapping(t *testing.T) {
	t.Parallel()

	const (
		source = "function SignIn() {\n" +
			"  const { signIn } = useAuthSubmit();\n" +
			"  return useField({ onSubmit: useCallback(() => signIn(), []) });\n" +
			"}\n"
		fixed = "function SignIn() {\n" +
			"  const { signIn } = useAuthSubmit();\n" +
			"  return useField({ onSubmit: useCallback(() => signIn(), [signIn]) });\n" +
			"}\n"
		cfg = "rules:\n" +
			"  memoized-options: {}\n" +
			"  redundant-memo-wrapper:\n" +
			"    options:\n" +
			"      stableProducers: [useAuthSubmit]\n"
	)

	dir := t.TempDir()
	form := writeFile(t, dir, "form.js", source)
	config := writeFile(t, dir, "hookguard.yaml", cfg)

	// Both rules fix the same useCallback call, only the first fix is applied
	code, stdout, _ := execute(t, "--fix", "--color=never", "--config", config, form)
	assert.Equal(t, ExitFindings, code)
	assert.Contains(t, stdout, "[redundant-memo-wrapper]")
	assert.NotContains(t, stdout, "[memoized-options]")

	got, err := os.ReadFile(form)
	require.NoError(t, err)
	assert.Equal(t, fixed, string(got))
}

func TestDiff(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	form := writeFile(t, dir, "form.js", handlerSource)

	code, stdout, _ := execute(t, "--diff", handlerRule, form)
	assert.Equal(t, ExitFindings, code)
	assert.Contains(t, stdout, "-const clickHandler = () => {};\n")
	assert.Contains(t, stdout, "+const handleClick = () => {};\n")

	got, err := os.ReadFile(form)
	require.NoError(t, err)
	assert.Equal(t, handlerSource, string(got), "diff must not modify the file")
}

func TestErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	form := writeFile(t, dir, "form.js", handlerSource)
	badConfig := writeFile(t, dir, "hookguard.yaml", "rules:\n  no-such-rule: {}\n")
	badOption := writeFile(t, dir, "options.yaml", "rules:\n  no-handler-suffix:\n    options:\n      sufixes: [Handler]\n")

	tests := []struct {
		name   string
		args   []string
		stderr string
	}{
		{"UnknownRuleConfig", []string{"--config", badConfig, form}, "unknown rule"},
		{"UnknownRuleFlag", []string{"--rules=no-such-rule", form}, "unknown rule"},
		{"InvalidOption", []string{"--config", badOption, form}, "invalid rule option"},
		{"MissingConfig", []string{"--config", filepath.Join(dir, "missing.yaml"), form}, "missing.yaml"},
		{"MissingPath", []string{filepath.Join(dir, "missing")}, "missing"},
		{"Unsupported", []string{filepath.Join(dir, "hookguard.yaml")}, "unsupported language"},
		{"Color", []string{"--color=sometimes", form}, "invalid usage"},
		{"FixAndDiff", []string{"--fix", "--diff", form}, "fix"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, _, stderr := execute(t, tt.args...)
			assert.Equal(t, ExitError, code)
			assert.Contains(t, stderr, tt.stderr)
		})
	}
}

func TestEnvironment(t *testing.T) {
	t.Setenv("HOOKGUARD_RULES", "no-direct-store")
	t.Setenv("HOOKGUARD_NOLINT", "false")
	t.Setenv("HOOKGUARD_COLOR", "never")

	dir := t.TempDir()
	store := writeFile(t, dir, "store.ts", "localStorage.clear(); // nolint:no-direct-store\nconst clickHandler = () => {};\n")

	code, stdout, _ := execute(t, store)
	assert.Equal(t, ExitFindings, code)
	assert.Equal(t, store+":1:1: direct call to localStorage.clear bypasses the storage facade (hg:direct-store) [no-direct-store]\n", stdout)
}
