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

package checks

import (
	"context"
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/actorlint/internal/fix"
	"fillmore-labs.com/actorlint/internal/rule"
)

// analyzeSender flags continuations that read the sender of the current message
// after it may have changed.
func analyzeSender(ctx context.Context, p *rule.Pass) error {
	core := p.Framework.Core()

	return p.Walk(ctx, []ast.Node{(*ast.CallExpr)(nil)}, func(c inspector.Cursor) {
		call := c.Node().(*ast.CallExpr)

		fn := callee(p.TypesInfo, call)
		if !core.IsContinuation(fn) {
			return
		}

		var (
			lit      *ast.FuncLit
			accesses []ast.Expr
			related  []analysis.RelatedInformation
			multiple bool
		)

		for _, arg := range call.Args {
			l, ok := ast.Unparen(arg).(*ast.FuncLit)
			if !ok {
				continue
			}

			lc, ok := c.FindNode(l)
			if !ok {
				continue
			}

			found := false

			for a := range lc.Preorder((*ast.CallExpr)(nil)) {
				access := a.Node().(*ast.CallExpr)
				if len(access.Args) != 0 || !core.IsSender(callee(p.TypesInfo, access)) {
					continue
				}

				accesses = append(accesses, access)
				related = append(related, analysis.RelatedInformation{Pos: access.Pos(), End: access.End(), Message: "sender read here"})
				found = true
			}

			if found {
				multiple = lit != nil
				lit = l
			}
		}

		if len(accesses) == 0 {
			return
		}

		r := rule.Record{
			Pos:     call.Pos(),
			End:     call.End(),
			Args:    []any{fn.Name()},
			Related: related,
		}

		if !multiple {
			r.Fix = fix.IntroduceLocal(p.Fixes, c, lit, accesses)
		}

		p.Report(r)
	})
}
