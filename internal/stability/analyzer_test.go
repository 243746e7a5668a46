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

package stability_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/hookguard/internal/scope"
	. "fillmore-labs.com/hookguard/internal/stability"
	"fillmore-labs.com/hookguard/internal/syntax"
)

const form = `import { convertToBoolean } from "./convert";

export function Form({ onChange }) {
  const formatter = useFormatter();
  const local = 5;
  const a = b;
  const b = a;
  const memoValue = useMemo(() => (value) => formatter(value), [formatter]);
  const noDeps = useMemo(() => (value) => Boolean(value));
  const missing = useMemo(() => (value) => formatter(value) + local, [formatter]);
  const wrong = useCallback((value) => formatter(value), [formatter.format]);
  const stableEvent = useEvent((value) => formatter(value));
  const chained = memoValue;
  const declared = function () {};
  let unset;

  return (
    <Adapter
      raw={(value) => Boolean(value)}
      module={convertToBoolean}
      param={onChange}
      memo={memoValue}
      noDeps={noDeps}
      missing={missing}
      wrong={wrong}
      cycle={a}
      stableEvent={stableEvent}
      chained={(chained as any)!}
      callResult={formatter}
      member={React.useMemo(() => (v) => v, [])}
      object={{ value: 1 }}
      declared={declared}
      unset={unset}
      global={window.handler}
    />
  );
}
`

func load(t *testing.T, src string) (*syntax.File, *scope.Tree) {
	t.Helper()

	f, err := syntax.NewParser().Parse(t.Context(), "form.tsx", []byte(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	return f, scope.Build(f)
}

func attribute(t *testing.T, f *syntax.File, name string) *syntax.Node {
	t.Helper()

	for n := range f.Root.Preorder() {
		if n.Kind == syntax.KindJSXAttribute && f.PropertyName(n) == name {
			return syntax.AttributeValue(n)
		}
	}

	t.Fatalf("Attribute %s not found", name)

	return nil
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	f, tree := load(t, form)
	a := New(tree, DefaultConfig())

	tests := []struct {
		attribute string
		policy    Policy
		want      Reason
		missing   []string
	}{
		{"raw", ValueMemo, RawFunction, nil},
		{"module", ValueMemo, Stable, nil},
		{"param", ValueMemo, Stable, nil},
		{"memo", ValueMemo, Stable, nil},
		{"noDeps", ValueMemo, MissingDependencyArray, nil},
		{"missing", ValueMemo, MissingDependency, []string{"local"}},
		{"wrong", ValueMemo, WrongHook, nil},
		{"wrong", CallbackMemo, Stable, nil},
		{"cycle", ValueMemo, Stable, nil},
		{"stableEvent", CallbackMemo, Stable, nil},
		{"chained", ValueMemo, Stable, nil},
		{"callResult", ValueMemo, RawFunction, nil},
		{"member", ValueMemo, Stable, nil},
		{"object", ValueMemo, RawFunction, nil},
		{"declared", CallbackMemo, RawFunction, nil},
		{"unset", CallbackMemo, RawFunction, nil},
		{"global", CallbackMemo, RawFunction, nil},
	}

	for _, tt := range tests {
		t.Run(tt.attribute+"/"+tt.policy.String(), func(t *testing.T) {
			t.Parallel()

			expr := attribute(t, f, tt.attribute)

			v := a.Analyze(expr, tt.policy, tree.Innermost(expr))
			if v.Reason != tt.want {
				t.Errorf("Got %s, want %s", v.Reason, tt.want)
			}

			if diff := cmp.Diff(tt.missing, v.Missing.Names()); diff != "" {
				t.Errorf("Missing dependencies mismatch (-want +got):\n%s", diff)
			}

			again := a.Analyze(expr, tt.policy, tree.Innermost(expr))
			if again.Reason != v.Reason || again.Node != v.Node {
				t.Errorf("Got %s on repeated analysis, want %s", again.Reason, v.Reason)
			}
		})
	}
}

func TestWrongHookData(t *testing.T) {
	t.Parallel()

	f, tree := load(t, form)
	a := New(tree, DefaultConfig())

	v := a.Analyze(attribute(t, f, "wrong"), ValueMemo, nil)

	if v.Hook != "useCallback" || v.Found != CallbackMemo || v.Expected != ValueMemo {
		t.Errorf("Got hook %q (%s), expected %s, want useCallback (callback-memo), value-memo", v.Hook, v.Found, v.Expected)
	}
}

func TestDependencyArrayData(t *testing.T) {
	t.Parallel()

	f, tree := load(t, form)
	a := New(tree, DefaultConfig())

	v := a.Analyze(attribute(t, f, "missing"), ValueMemo, nil)

	if got, want := v.Dependencies.Names(), []string{"formatter", "local"}; !cmp.Equal(got, want) {
		t.Errorf("Got dependencies %v, want %v", got, want)
	}

	if v.DependencyArray == nil || f.Text(v.DependencyArray) != "[formatter]" {
		t.Errorf("Got dependency array %v, want [formatter]", v.DependencyArray)
	}
}

func TestMaxDepth(t *testing.T) {
	t.Parallel()

	f, tree := load(t, `function C() {
  const a = () => 1;
  const b = a;
  const c = b;
  return <X v={c} />;
}
`)

	cfg := DefaultConfig()
	cfg.MaxDepth = 1

	expr := attribute(t, f, "v")

	if v := New(tree, cfg).Analyze(expr, CallbackMemo, nil); v.Reason != Stable {
		t.Errorf("Got %s with depth 1, want %s", v.Reason, Stable)
	}

	if v := New(tree, DefaultConfig()).Analyze(expr, CallbackMemo, nil); v.Reason != RawFunction {
		t.Errorf("Got %s with default depth, want %s", v.Reason, RawFunction)
	}
}

func TestFreeVariables(t *testing.T) {
	t.Parallel()

	f, tree := load(t, `function C(x) {
  const y = 1;
  const fn = function rec(n) {
    const z = n;
    return () => x + y + z + rec(n) + Math.max(n) + obj.y + x;
  };
}
`)

	var fn *syntax.Node
	for n := range f.Root.Preorder() {
		if n.Kind == syntax.KindFunctionExpression {
			fn = n

			break
		}
	}

	got := New(tree, DefaultConfig()).FreeVariables(fn)

	if diff := cmp.Diff([]string{"x", "y"}, got.Names()); diff != "" {
		t.Errorf("Free variables mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Policy
		ok   bool
	}{
		{"value", ValueMemo, true},
		{"callback-memo", CallbackMemo, true},
		{"other", 0, false},
	}

	for _, tt := range tests {
		got, err := ParsePolicy(tt.in)
		if got != tt.want || (err == nil) != tt.ok {
			t.Errorf("ParsePolicy(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestDependencySet(t *testing.T) {
	t.Parallel()

	d := NewDependencySet("b", "a", "b")

	if d.Len() != 2 || d.String() != "b, a" {
		t.Errorf("Got %q (%d), want \"b, a\" (2)", d.String(), d.Len())
	}

	diff := d.Difference(NewDependencySet("a"))
	if got := diff.Names(); !cmp.Equal(got, []string{"b"}) {
		t.Errorf("Got difference %v, want [b]", got)
	}

	var zero DependencySet
	if zero.Has("a") || zero.Len() != 0 {
		t.Error("Zero set is not empty")
	}
}
