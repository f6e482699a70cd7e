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

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/actorlint/internal/fix"
	"fillmore-labs.com/actorlint/internal/framework"
	"fillmore-labs.com/actorlint/internal/rule"
)

// analyzeStopAwait flags asynchronous handlers waiting for the graceful stop of their own actor.
// The stop only completes after the handler returns.
func analyzeStopAwait(ctx context.Context, p *rule.Pass) error {
	core := p.Framework.Core()

	return p.Walk(ctx, []ast.Node{(*ast.CallExpr)(nil)}, func(c inspector.Cursor) {
		call := c.Node().(*ast.CallExpr)
		if len(call.Args) == 0 || !core.IsAsyncReceive(callee(p.TypesInfo, call)) {
			return
		}

		arg := c.ChildAt(edge.CallExpr_Args, len(call.Args)-1)

		handler, ok := handlerFunc(p, arg)
		if !ok {
			return
		}

		inspectFunc(handler, func(a inspector.Cursor) {
			await, ok := a.Node().(*ast.CallExpr)
			if !ok || !core.IsAwait(callee(p.TypesInfo, await)) {
				return
			}

			future := receiverOf(await)
			if !isSelfStop(core, p, future) {
				return
			}

			p.Report(rule.Record{
				Pos: await.Pos(),
				End: await.End(),
				Fix: fix.DiscardAwait(p.Fixes, a, future),
			})
		})
	})
}

// isSelfStop reports whether expr is a graceful stop requested on the actor's own reference.
func isSelfStop(core framework.CoreContext, p *rule.Pass, expr ast.Expr) bool {
	stop, ok := ast.Unparen(expr).(*ast.CallExpr)
	if !ok || !core.IsGracefulStop(callee(p.TypesInfo, stop)) {
		return false
	}

	ref := receiverOf(stop)

	return ref != nil && isSelfCall(core, p.TypesInfo, ref)
}
