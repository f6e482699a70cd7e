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

package fix

import (
	"go/types"
	"strconv"
)

// UniqueName returns base, or base with a numeric suffix (1, 2, ...), so
// that the name is neither visible from scope nor declared in any of its
// child scopes, and not rejected by taken.
//
// The search is linear and gives up after a bounded number of tries.
func UniqueName(scope *types.Scope, base string, taken func(string) bool) (string, bool) {
	const maxTries = 99

	for i := range maxTries + 1 {
		name := base
		if i > 0 {
			name += strconv.Itoa(i)
		}

		if checkParents(scope, name) || checkChildren(scope, name) {
			continue
		}

		if taken != nil && taken(name) {
			continue
		}

		return name, true
	}

	return "", false
}

// checkParents checks if the name is already defined in the scope or any of its parent scopes.
func checkParents(scope *types.Scope, name string) bool {
	for parent := scope; parent != nil; parent = parent.Parent() {
		if parent.Lookup(name) != nil {
			return true
		}
	}

	return false
}

// checkChildren recursively checks if the name is defined in any of the child scopes.
//
// This performs a depth-first search through the scope tree. In practice, most
// functions have modest nesting depth, making this acceptable.
func checkChildren(scope *types.Scope, name string) bool {
	if scope == nil {
		return false
	}

	for child := range scope.Children() {
		if child.Lookup(name) != nil {
			return true
		}

		if checkChildren(child, name) {
			return true
		}
	}

	return false
}
