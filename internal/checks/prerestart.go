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
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/actorlint/internal/fix"
	"fillmore-labs.com/actorlint/internal/framework"
	"fillmore-labs.com/actorlint/internal/rule"
)

// analyzePreRestart flags timers started in the "before restart" lifecycle callbacks.
func analyzePreRestart(ctx context.Context, p *rule.Pass) error {
	core := p.Framework.Core()

	bases := core.PreRestartMethods()
	if len(bases) == 0 {
		return nil
	}

	timers := &timerReach{p: p, core: core, memo: make(map[*types.Func]bool)}

	return p.Walk(ctx, []ast.Node{(*ast.FuncDecl)(nil)}, func(c inspector.Cursor) {
		fd := c.Node().(*ast.FuncDecl)
		if fd.Body == nil || fd.Recv == nil {
			return
		}

		fn, ok := p.TypesInfo.Defs[fd.Name].(*types.Func)
		if !ok || !overrides(fn, bases) {
			return
		}

		named, path, ok := actorType(core, p.TypesInfo, fd)
		if !ok {
			return
		}

		var stmts []inspector.Cursor

		for s := range c.ChildAt(edge.FuncDecl_Body, -1).Children() {
			if timers.starts(named, s) {
				stmts = append(stmts, s)
			}
		}

		if len(stmts) == 0 {
			return
		}

		repair := moveTimers(p, core, c, named, path, stmts)

		for _, s := range stmts {
			p.Report(rule.Record{
				Pos:  s.Node().Pos(),
				End:  s.Node().End(),
				Args: []any{fn.Name()},
				Fix:  repair,
			})
		}
	})
}

// overrides reports whether fn has the name and signature of one of the base methods.
func overrides(fn *types.Func, bases []*types.Func) bool {
	for _, base := range bases {
		if fn.Name() == base.Name() && types.Identical(fn.Signature(), base.Signature()) {
			return true
		}
	}

	return false
}

// moveTimers builds the repair moving stmts of the lifecycle method at method to PostRestart.
func moveTimers(p *rule.Pass, core framework.CoreContext, method inspector.Cursor, named *types.Named, path string, stmts []inspector.Cursor) *fix.Fix {
	var post *ast.FuncDecl

	if c, ok := p.Index.Methods(named)[framework.MethodPostRestart]; ok {
		fd := c.Node().(*ast.FuncDecl)

		fn, _ := p.TypesInfo.Defs[fd.Name].(*types.Func)
		if base := core.PostRestart(); fn == nil || base == nil || !types.Identical(fn.Signature(), base.Signature()) {
			return nil
		}

		post = fd
	}

	repair := fix.MoveToPostRestart(p.Fixes, method, stmts, post, path)
	if repair == nil {
		return nil
	}

	spec, ok := p.Index.TypeSpec(named.Obj())
	if !ok {
		return nil
	}

	edits, ok := fix.EnsureTimers(p.Fixes, spec, core.Path(), core.WithTimers())
	if !ok {
		return nil
	}

	return repair.With(edits...)
}

// timerReach determines whether code starts timers, directly or through
// methods of the same actor type declared in the analyzed package.
type timerReach struct {
	p    *rule.Pass
	core framework.CoreContext
	memo map[*types.Func]bool
}

// starts reports whether the code at c starts a timer.
func (t *timerReach) starts(named *types.Named, c inspector.Cursor) bool {
	for call := range c.Preorder((*ast.CallExpr)(nil)) {
		fn := callee(t.p.TypesInfo, call.Node().(*ast.CallExpr))
		if fn == nil {
			continue
		}

		if t.core.IsTimerCall(fn) || t.helperStarts(named, fn) {
			return true
		}
	}

	return false
}

// helperStarts reports whether fn is a method of named that starts a timer.
func (t *timerReach) helperStarts(named *types.Named, fn *types.Func) bool {
	fn = fn.Origin()

	recv := fn.Signature().Recv()
	if recv == nil {
		return false
	}

	rt := recv.Type()
	if ptr, ok := rt.(*types.Pointer); ok {
		rt = ptr.Elem()
	}

	if n, ok := types.Unalias(rt).(*types.Named); !ok || n.Origin() != named.Origin() {
		return false
	}

	if result, ok := t.memo[fn]; ok {
		return result
	}

	decl, ok := t.p.Index.FuncDecl(fn)
	if !ok {
		return false
	}

	t.memo[fn] = false // cycles

	result := t.starts(named, decl)
	t.memo[fn] = result

	return result
}
