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

package framework

import (
	"go/types"
	"sync"
)

// Symbol is a lazily resolved handle to a framework type, function or method.
//
// Resolution happens at most once and never fails: an absent symbol simply
// stays unresolved.
type Symbol struct {
	name    string
	once    sync.Once
	resolve func() types.Object
	obj     types.Object
}

// Name returns the fully-qualified name of the symbol.
func (s *Symbol) Name() string { return s.name }

// Object returns the resolved object, or nil.
func (s *Symbol) Object() types.Object {
	if s == nil {
		return nil
	}

	s.once.Do(func() {
		if s.resolve != nil {
			s.obj = s.resolve()
		}
	})

	return s.obj
}

// Resolved reports whether the symbol exists in the analyzed program.
func (s *Symbol) Resolved() bool { return s.Object() != nil }

// Matches reports whether obj is this symbol, comparing generic instances by origin.
func (s *Symbol) Matches(obj types.Object) bool {
	obj = origin(obj)
	if obj == nil {
		return false
	}

	want := s.Object()

	return want != nil && obj == want
}

// origin returns the generic origin of obj. A typed nil, as produced for
// calls of builtins and conversions, yields nil.
func origin(obj types.Object) types.Object {
	switch o := obj.(type) {
	case *types.Func:
		if o == nil {
			return nil
		}

		return o.Origin()

	case *types.Var:
		if o == nil {
			return nil
		}

		return o.Origin()

	default:
		return obj
	}
}
