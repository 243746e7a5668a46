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
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"fillmore-labs.com/hookguard/internal/syntax"
)

// skipDirs are directory names never descended into.
var skipDirs = []string{"node_modules", "dist", "build", "coverage"}

// collectFiles expands directory arguments into the analyzable files below them.
// File arguments are kept as given.
func collectFiles(args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}

	var files []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, arg)

			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != arg && skipDir(d.Name()) {
					return filepath.SkipDir
				}

				return nil
			}

			if analyzable(path) {
				files = append(files, path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return slices.Compact(files), nil
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || slices.Contains(skipDirs, name)
}

// analyzable reports whether a file found in a directory walk is analyzed.
// Declaration files carry no runtime code.
func analyzable(path string) bool {
	if _, ok := syntax.LanguageFor(path); !ok {
		return false
	}

	return !strings.HasSuffix(path, ".d.ts")
}
