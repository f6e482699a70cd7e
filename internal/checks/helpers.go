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
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/actorlint/internal/framework"
	"fillmore-labs.com/actorlint/internal/rule"
)

// callee returns the function or method called by call, or nil.
func callee(info *types.Info, call *ast.CallExpr) *types.Func {
	fn, _ := typeutil.Callee(info, call).(*types.Func)

	return fn
}

// isSelfCall reports whether expr is a call of the actor's own reference accessor.
func isSelfCall(core framework.CoreContext, info *types.Info, expr ast.Expr) bool {
	call, ok := ast.Unparen(expr).(*ast.CallExpr)

	return ok && len(call.Args) == 0 && core.IsSelf(callee(info, call))
}

// receiverOf returns the operand of the selector called by call, or nil.
func receiverOf(call *ast.CallExpr) ast.Expr {
	sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok {
		return nil
	}

	return sel.X
}

// inspectFunc calls visit for the nodes inside the function at fn, a function
// literal or declaration, without descending into nested function literals or
// go statements.
func inspectFunc(fn inspector.Cursor, visit func(c inspector.Cursor)) {
	fn.Inspect(nil, func(c inspector.Cursor) bool {
		switch c.Node().(type) {
		case *ast.FuncLit:
			if c != fn {
				return false
			}

		case *ast.GoStmt:
			return false
		}

		visit(c)

		return true
	})
}

// handlerFunc resolves the message handler passed as arg to a function literal or a method declaration.
//
// Handlers are function literals, local variables initialized with a function
// literal, or method values of methods declared in the analyzed package.
func handlerFunc(p *rule.Pass, arg inspector.Cursor) (inspector.Cursor, bool) {
	expr, ok := arg.Node().(ast.Expr)
	if !ok {
		return inspector.Cursor{}, false
	}

	switch n := ast.Unparen(expr).(type) {
	case *ast.FuncLit:
		return arg.FindNode(n)

	case *ast.Ident:
		v, ok := p.TypesInfo.Uses[n].(*types.Var)
		if !ok || v.Parent() == nil || v.Parent() == p.Pkg.Scope() {
			return inspector.Cursor{}, false
		}

		return localFuncLit(p, arg, v)

	case *ast.SelectorExpr:
		sel := p.TypesInfo.Selections[n]
		if sel == nil || sel.Kind() != types.MethodVal {
			return inspector.Cursor{}, false
		}

		fn, _ := sel.Obj().(*types.Func)

		return p.Index.FuncDecl(fn)

	default:
		return inspector.Cursor{}, false
	}
}

// enclosingFuncDecl returns the innermost function declaration containing c, c included.
func enclosingFuncDecl(c inspector.Cursor) (inspector.Cursor, bool) {
	for decl := range c.Enclosing((*ast.FuncDecl)(nil)) {
		return decl, true
	}

	return inspector.Cursor{}, false
}

// localFuncLit finds the function literal initializing the local variable v, used at c.
func localFuncLit(p *rule.Pass, c inspector.Cursor, v *types.Var) (inspector.Cursor, bool) {
	decl, ok := enclosingFuncDecl(c)
	if !ok {
		return inspector.Cursor{}, false
	}

	for id := range decl.Preorder((*ast.Ident)(nil)) {
		if p.TypesInfo.Defs[id.Node().(*ast.Ident)] != v {
			continue
		}

		var value ast.Expr

		switch kind, i := id.ParentEdge(); kind {
		case edge.AssignStmt_Lhs:
			if assign := id.Parent().Node().(*ast.AssignStmt); len(assign.Rhs) == len(assign.Lhs) {
				value = assign.Rhs[i]
			}

		case edge.ValueSpec_Names:
			if spec := id.Parent().Node().(*ast.ValueSpec); len(spec.Values) == len(spec.Names) {
				value = spec.Values[i]
			}
		}

		lit, ok := ast.Unparen(value).(*ast.FuncLit)
		if !ok {
			return inspector.Cursor{}, false
		}

		return decl.FindNode(lit)
	}

	return inspector.Cursor{}, false
}

// actorType returns the named type of a method receiver together with the
// selector path to its embedded runtime base, for example "Base".
func actorType(core framework.CoreContext, info *types.Info, fd *ast.FuncDecl) (*types.Named, string, bool) {
	if fd.Recv == nil || len(fd.Recv.List) != 1 {
		return nil, "", false
	}

	t := info.TypeOf(fd.Recv.List[0].Type)
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}

	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return nil, "", false
	}

	path, ok := basePath(core, named)

	return named, path, ok
}

// basePath returns the selector path from named to its embedded runtime base.
func basePath(core framework.CoreContext, named *types.Named) (string, bool) {
	base := core.Base()
	if base == nil {
		return "", false
	}

	obj, index, _ := types.LookupFieldOrMethod(named, true, base.Pkg(), base.Name())

	v, ok := obj.(*types.Var)
	if !ok || !v.Embedded() || !core.IsType(v.Type(), framework.TypeBase) {
		return "", false
	}

	names := make([]string, 0, len(index))

	var t types.Type = named
	for _, i := range index {
		if ptr, ok := t.Underlying().(*types.Pointer); ok {
			t = ptr.Elem()
		}

		st, ok := t.Underlying().(*types.Struct)
		if !ok {
			return "", false
		}

		f := st.Field(i)
		names = append(names, f.Name())
		t = f.Type()
	}

	return strings.Join(names, "."), true
}

// isContextType reports whether t is context.Context.
func isContextType(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()

	return obj.Pkg() != nil && obj.Pkg().Path() == "context" && obj.Name() == "Context"
}
