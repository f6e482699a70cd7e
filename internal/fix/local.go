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
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

// senderName is the preferred name of the introduced local variable.
const senderName = "sender"

// IntroduceLocal captures the first of accesses in a new local variable
// declared immediately before the statement containing call, and rewrites all
// accesses to use the variable.
//
// The accesses must be inside lit, the function literal scheduled by call.
func IntroduceLocal(e *Env, call inspector.Cursor, lit *ast.FuncLit, accesses []ast.Expr) *Fix {
	if len(accesses) == 0 {
		return nil
	}

	stmt, ok := EnclosingStmt(call)
	if !ok {
		return nil
	}

	for _, access := range accesses {
		if !hoistable(e.Info, access, lit, stmt.Node().Pos()) {
			return nil
		}
	}

	name, ok := UniqueName(e.Pkg.Scope().Innermost(stmt.Node().Pos()), senderName, nil)
	if !ok {
		return nil
	}

	text, err := e.Text(accesses[0])
	if err != nil {
		return nil
	}

	edits := []analysis.TextEdit{{
		Pos:     stmt.Node().Pos(),
		NewText: []byte(name + " := " + text + "\n"),
	}}

	for _, access := range accesses {
		edits = append(edits, analysis.TextEdit{Pos: access.Pos(), End: access.End(), NewText: []byte(name)})
	}

	return newFix(KindIntroduceLocal, edits...)
}

// EnclosingStmt returns the nearest statement enclosing c that is an element of a statement list.
func EnclosingStmt(c inspector.Cursor) (inspector.Cursor, bool) {
	for ; c.Index() >= 0; c = c.Parent() {
		switch kind, _ := c.ParentEdge(); kind {
		case edge.BlockStmt_List, edge.CaseClause_Body, edge.CommClause_Body:
			return c, true

		case edge.FuncDecl_Body, edge.File_Decls:
			return inspector.Cursor{}, false
		}
	}

	return inspector.Cursor{}, false
}

// hoistable reports whether expr only refers to variables that are visible before pos
// and not declared inside lit.
func hoistable(info *types.Info, expr ast.Expr, lit *ast.FuncLit, pos token.Pos) bool {
	ok := true

	ast.Inspect(expr, func(n ast.Node) bool {
		id, isIdent := n.(*ast.Ident)
		if !isIdent || !ok {
			return ok
		}

		v, isVar := info.Uses[id].(*types.Var)
		if !isVar || v.IsField() {
			return true
		}

		local := v.Pkg() == nil || v.Parent() != v.Pkg().Scope()
		if lit.Pos() <= v.Pos() && v.Pos() < lit.End() || local && v.Pos() >= pos {
			ok = false
		}

		return ok
	})

	return ok
}
