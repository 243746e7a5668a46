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

// Package analyzer implements the hookguard host: it parses TypeScript and JavaScript
// sources, builds their scopes and runs the configured rules.
//
// # Overview
//
// HookGuard checks React components and hooks for values that break memoization,
// memoizing wrappers that add nothing, and a few project conventions.
//
// # Example
//
// Before:
//
//	function Form({ onSave }) {
//	  return <Editor onSubmit={(v) => onSave(v)} />;
//	}
//
// After applying hookguard's suggested fix:
//
//	function Form({ onSave }) {
//	  return <Editor onSubmit={useCallback((v) => onSave(v), [onSave])} />;
//	}
//
// # Rules
//
//   - memoized-options: functions and values passed to configured properties must be memoized
//   - redundant-memo-wrapper: memoizing hooks that only re-expose a stable function
//   - no-direct-store: calls bypassing a storage facade
//   - no-handler-suffix: names ending in Handler
//   - import-path: deprecated module specifiers
//
// Diagnostics use the [golang.org/x/tools/go/analysis] model, with the rule name as category.
package analyzer
