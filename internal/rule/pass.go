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
	"cmp"
	"context"
	"go/ast"
	"go/token"
	"slices"
	"sync"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/actorlint/internal/fix"
	"fillmore-labs.com/actorlint/internal/framework"
)

// Pass is the view of one analysis pass given to a single rule.
//
// The embedded [analysis.Pass], the inspector, the framework context, the
// index and the repair environment are shared between rules. The de-duplication set and the
// collected records belong to this rule alone.
type Pass struct {
	*analysis.Pass

	Inspector *inspector.Inspector
	Framework *framework.Context
	Index     *Index
	Fixes     *fix.Env

	rule Descriptor

	mu      sync.Mutex
	seen    map[span]struct{}
	records []Record
}

type span struct{ pos, end token.Pos }

// NewPass creates a [Pass] for the rule described by d.
func NewPass(ap *analysis.Pass, in *inspector.Inspector, fw *framework.Context, index *Index, env *fix.Env, d Descriptor) *Pass {
	return &Pass{
		Pass:      ap,
		Inspector: in,
		Framework: fw,
		Index:     index,
		Fixes:     env,
		rule:      d,
	}
}

// Rule returns the descriptor of the rule this pass belongs to.
func (p *Pass) Rule() Descriptor { return p.rule }

// Report records a finding. It returns false when the same span was already
// reported by this rule during the pass.
func (p *Pass) Report(r Record) bool {
	r.Rule = p.rule

	p.mu.Lock()
	defer p.mu.Unlock()

	key := span{r.Pos, r.End}
	if _, ok := p.seen[key]; ok {
		return false
	}

	if p.seen == nil {
		p.seen = make(map[span]struct{})
	}
	p.seen[key] = struct{}{}

	p.records = append(p.records, r)

	return true
}

// Reported reports whether the span of rng has already been reported.
func (p *Pass) Reported(rng analysis.Range) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, ok := p.seen[span{rng.Pos(), rng.End()}]

	return ok
}

// Records returns the collected findings in source order.
func (p *Pass) Records() []Record {
	p.mu.Lock()
	defer p.mu.Unlock()

	records := slices.Clone(p.records)
	slices.SortStableFunc(records, func(a, b Record) int {
		return cmp.Or(cmp.Compare(a.Pos, b.Pos), cmp.Compare(a.End, b.End))
	})

	return records
}

// Walk visits all nodes of the given types in preorder, checking for
// cancellation between visits.
func (p *Pass) Walk(ctx context.Context, types []ast.Node, visit func(c inspector.Cursor)) error {
	for c := range p.Inspector.Root().Preorder(types...) {
		if err := ctx.Err(); err != nil {
			return err
		}

		visit(c)
	}

	return ctx.Err()
}
