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
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/actorlint/internal/fix"
	"fillmore-labs.com/actorlint/internal/framework"
	"fillmore-labs.com/actorlint/internal/rule"
)

// analyzeAsyncReceive flags asynchronous handlers that never suspend.
func analyzeAsyncReceive(ctx context.Context, p *rule.Pass) error {
	core := p.Framework.Core()

	return p.Walk(ctx, []ast.Node{(*ast.CallExpr)(nil)}, func(c inspector.Cursor) {
		call := c.Node().(*ast.CallExpr)

		fn := callee(p.TypesInfo, call)
		if len(call.Args) == 0 || !core.IsAsyncReceive(fn) {
			return
		}

		lit := c.ChildAt(edge.CallExpr_Args, len(call.Args)-1)
		if _, ok := lit.Node().(*ast.FuncLit); !ok {
			return
		}

		if suspends(core, p.TypesInfo, lit) {
			return
		}

		r := rule.Record{
			Pos: call.Pos(),
			End: call.End(),
		}

		if sync := core.SyncReceive(fn); sync != nil {
			r.Args = []any{fn.Name(), sync.Name()}
			r.Fix = fix.DowngradeReceive(p.Fixes, call, lit, sync.Name())
		} else {
			r.Args = []any{fn.Name(), "a synchronous registration"}
		}

		p.Report(r)
	})
}

// suspends reports whether the handler literal at lit contains a suspension point.
func suspends(core framework.CoreContext, info *types.Info, lit inspector.Cursor) bool {
	fl := lit.Node().(*ast.FuncLit)

	var ctxParam types.Object
	if params := fl.Type.Params.List; len(params) > 0 && len(params[0].Names) > 0 {
		ctxParam = info.Defs[params[0].Names[0]]
	}

	found := false

	inspectFunc(lit, func(c inspector.Cursor) {
		if found {
			return
		}

		switch n := c.Node().(type) {
		case *ast.UnaryExpr:
			found = n.Op == token.ARROW

		case *ast.SelectStmt:
			found = true

		case *ast.RangeStmt:
			if t := info.TypeOf(n.X); t != nil {
				_, found = t.Underlying().(*types.Chan)
			}

		case *ast.Ident:
			found = ctxParam != nil && info.Uses[n] == ctxParam

		case *ast.CallExpr:
			found = core.IsAwait(callee(info, n)) || takesContext(info, n)
		}
	})

	return found
}

// takesContext reports whether the function called by call has a [context.Context] parameter.
func takesContext(info *types.Info, call *ast.CallExpr) bool {
	t := info.TypeOf(call.Fun)
	if t == nil {
		return false
	}

	sig, ok := t.Underlying().(*types.Signature)
	if !ok {
		return false
	}

	for v := range sig.Params().Variables() {
		if isContextType(v.Type()) {
			return true
		}
	}

	return false
}
