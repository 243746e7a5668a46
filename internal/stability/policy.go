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

package stability

import (
	"errors"
	"fmt"
)

// Policy is the kind of memoizing hook a value is expected to be wrapped in.
type Policy uint8

//go:generate go tool stringer -type Policy,Reason -linecomment

const (
	// ValueMemo expects a hook caching the result of a computation, like useMemo.
	ValueMemo Policy = iota + 1 // value-memo

	// CallbackMemo expects a hook caching a function identity, like useCallback.
	CallbackMemo // callback-memo
)

// ErrUnknownPolicy is returned when parsing an unrecognized policy name.
var ErrUnknownPolicy = errors.New("unknown policy")

// ParsePolicy converts a policy name. It accepts the [Policy.String] forms and the
// short forms "value" and "callback".
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "value", ValueMemo.String():
		return ValueMemo, nil

	case "callback", CallbackMemo.String():
		return CallbackMemo, nil

	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Reason classifies a [Verdict].
type Reason uint8

const (
	// Stable means the value keeps its identity across re-renders.
	Stable Reason = iota // stable

	// RawFunction means the value is recreated on every evaluation, or its stability cannot be proven.
	RawFunction // raw-function-literal

	// WrongHook means the value is memoized with a hook of the other policy.
	WrongHook // wrong-memoizing-call

	// MissingDependencyArray means the memoizing hook has no dependency array.
	MissingDependencyArray // missing-dependency-array

	// MissingDependency means the dependency array omits variables the callback reads.
	MissingDependency // missing-declared-dependency
)
