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
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

// RemoveIfBranches rewrites the if-else chain starting at root without the links selected by remove.
//
// The chain is rebuilt as a whole, so repairs for different links of the same
// chain are identical. When no link remains, a trailing else block is unwrapped
// unless it declares names.
func RemoveIfBranches(e *Env, root inspector.Cursor, remove func(*ast.IfStmt) bool) *Fix {
	first, ok := root.Node().(*ast.IfStmt)
	if !ok {
		return nil
	}

	if kind, _ := root.ParentEdge(); kind == edge.IfStmt_Else || kind == edge.LabeledStmt_Stmt {
		return nil
	}

	var (
		kept, removed []*ast.IfStmt
		els           *ast.BlockStmt
	)

	for link := first; link != nil; {
		if remove(link) {
			removed = append(removed, link)
		} else {
			kept = append(kept, link)
		}

		switch next := link.Else.(type) {
		case *ast.IfStmt:
			link = next

		case *ast.BlockStmt:
			els, link = next, nil

		default:
			link = nil
		}
	}

	if len(removed) == 0 || !initsUnused(e.Info, removed, kept, els) {
		return nil
	}

	if len(kept) == 0 {
		return unwrapElse(e, root, els)
	}

	var b strings.Builder

	for i, link := range kept {
		if i > 0 {
			b.WriteString(" else ")
		}

		b.WriteString("if ")

		if link.Init != nil {
			text, err := e.Text(link.Init)
			if err != nil {
				return nil
			}

			b.WriteString(text + "; ")
		}

		cond, err := e.Text(link.Cond)
		if err != nil {
			return nil
		}

		body, err := e.Text(link.Body)
		if err != nil {
			return nil
		}

		b.WriteString(cond + " " + body)
	}

	if els != nil {
		text, err := e.Text(els)
		if err != nil {
			return nil
		}

		b.WriteString(" else " + text)
	}

	return newFix(KindRemoveBranch, analysis.TextEdit{Pos: first.Pos(), End: first.End(), NewText: []byte(b.String())})
}

// unwrapElse replaces the statement at root with the content of els, or removes it when els is nil or empty.
func unwrapElse(e *Env, root inspector.Cursor, els *ast.BlockStmt) *Fix {
	stmt := root.Node()

	if els == nil || len(els.List) == 0 {
		pos, end := e.StmtRange(root)

		return newFix(KindRemoveBranch, analysis.TextEdit{Pos: pos, End: end})
	}

	var (
		text string
		err  error
	)

	if scope := e.Info.Scopes[els]; scope != nil && scope.Len() > 0 {
		text, err = e.Text(els)
	} else {
		text, err = e.TextRange(els.List[0].Pos(), els.List[len(els.List)-1].End(), nil)
	}

	if err != nil {
		return nil
	}

	return newFix(KindRemoveBranch, analysis.TextEdit{Pos: stmt.Pos(), End: stmt.End(), NewText: []byte(text)})
}

// initsUnused reports whether the names declared by the init statements of
// removed links are unused by the kept parts of the chain.
func initsUnused(info *types.Info, removed, kept []*ast.IfStmt, els *ast.BlockStmt) bool {
	defs := make(map[types.Object]bool)

	for _, link := range removed {
		if link.Init == nil {
			continue
		}

		ast.Inspect(link.Init, func(n ast.Node) bool {
			if id, ok := n.(*ast.Ident); ok {
				if obj := info.Defs[id]; obj != nil {
					defs[obj] = true
				}
			}

			return true
		})
	}

	if len(defs) == 0 {
		return true
	}

	nodes := make([]ast.Node, 0, 3*len(kept)+1)
	for _, link := range kept {
		if link.Init != nil {
			nodes = append(nodes, link.Init)
		}
		nodes = append(nodes, link.Cond, link.Body)
	}

	if els != nil {
		nodes = append(nodes, els)
	}

	for _, n := range nodes {
		if uses(info, n, defs) {
			return false
		}
	}

	return true
}

// RemoveTypeCases rewrites the type switch at sw without the case expressions
// selected by reserved, removing clauses that are left without expressions.
//
// The repair covers the whole switch, so repairs for different clauses of the
// same switch are identical. A clause narrowed to a single type is refused when
// its body uses the switch variable. The variable is dropped when no remaining
// clause uses it.
func RemoveTypeCases(e *Env, sw inspector.Cursor, reserved func(ast.Expr) bool) *Fix {
	ts, ok := sw.Node().(*ast.TypeSwitchStmt)
	if !ok {
		return nil
	}

	body, ok := sw.FindNode(ts.Body)
	if !ok {
		return nil
	}

	var (
		edits    []analysis.TextEdit
		varUsed  bool
		modified bool
	)

	for c := range body.Children() {
		cc, ok := c.Node().(*ast.CaseClause)
		if !ok {
			continue
		}

		var keep []ast.Expr

		for _, expr := range cc.List {
			if !reserved(expr) {
				keep = append(keep, expr)
			}
		}

		used := clauseVarUsed(e.Info, cc)

		switch {
		case len(keep) == len(cc.List):
			varUsed = varUsed || used

		case len(keep) == 0:
			pos, end := e.StmtRange(c)
			edits = append(edits, analysis.TextEdit{Pos: pos, End: end})
			modified = true

		case len(keep) == 1 && used:
			return nil

		default:
			texts := make([]string, 0, len(keep))
			for _, expr := range keep {
				text, err := e.Text(expr)
				if err != nil {
					return nil
				}

				texts = append(texts, text)
			}

			edits = append(edits, analysis.TextEdit{
				Pos:     cc.List[0].Pos(),
				End:     cc.List[len(cc.List)-1].End(),
				NewText: []byte(strings.Join(texts, ", ")),
			})
			varUsed = varUsed || used
			modified = true
		}
	}

	if !modified {
		return nil
	}

	if assign, ok := ts.Assign.(*ast.AssignStmt); ok && !varUsed && len(assign.Rhs) == 1 {
		edits = append(edits, analysis.TextEdit{Pos: assign.Pos(), End: assign.Rhs[0].Pos()})
	}

	return newFix(KindRemoveBranch, edits...)
}

// clauseVarUsed reports whether the body of cc uses the implicitly declared switch variable.
func clauseVarUsed(info *types.Info, cc *ast.CaseClause) bool {
	obj := info.Implicits[cc]
	if obj == nil {
		return false
	}

	for _, stmt := range cc.Body {
		if uses(info, stmt, map[types.Object]bool{obj: true}) {
			return true
		}
	}

	return false
}

// uses reports whether n refers to one of objs.
func uses(info *types.Info, n ast.Node, objs map[types.Object]bool) bool {
	found := false

	ast.Inspect(n, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok && objs[info.Uses[id]] {
			found = true
		}

		return !found
	})

	return found
}
