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

package rule

import (
	"context"

	"fillmore-labs.com/actorlint/internal/framework"
)

// Rule is a single diagnostic check.
//
// Analyze is only called when ShouldAnalyze returned true for the pass's
// framework context. Implementations must not keep state between passes;
// per-pass state lives in the [Pass].
type Rule interface {
	Descriptor() Descriptor
	ShouldAnalyze(fw *framework.Context) bool
	Analyze(ctx context.Context, p *Pass) error
}

// Gate decides whether a rule runs for a given framework context.
type Gate func(fw *framework.Context) bool

// RequireCore is the default [Gate]: the core actor runtime must be referenced.
func RequireCore(fw *framework.Context) bool {
	return fw.Core().Present()
}

// RequirePresent returns a [Gate] requiring the given sub-framework.
func RequirePresent(sub framework.Sub) Gate {
	return func(fw *framework.Context) bool {
		return fw.Get(sub).Present()
	}
}

// RequireVersion returns a [Gate] requiring the given sub-framework in at least the minimum version.
func RequireVersion(sub framework.Sub, minimum framework.Version) Gate {
	return func(fw *framework.Context) bool {
		f := fw.Get(sub)

		return f.Present() && f.Version().AtLeast(minimum)
	}
}

// All combines gates, requiring all of them.
func All(gates ...Gate) Gate {
	return func(fw *framework.Context) bool {
		for _, g := range gates {
			if !g(fw) {
				return false
			}
		}

		return true
	}
}
