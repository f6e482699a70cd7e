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

// analyzeExtractor flags branches of message extractors handling messages
// the sharding runtime unwraps before calling the extractor.
func analyzeExtractor(ctx context.Context, p *rule.Pass) error {
	sharding := p.Framework.Sharding()
	x := &extractorCheck{p: p, sharding: sharding}

	return p.Walk(ctx, []ast.Node{(*ast.FuncDecl)(nil), (*ast.CallExpr)(nil)}, func(c inspector.Cursor) {
		switch n := c.Node().(type) {
		case *ast.FuncDecl:
			if x.isExtractionMethod(n) {
				x.check(c)
			}

		case *ast.CallExpr:
			for _, i := range sharding.ExtractionArgs(callee(p.TypesInfo, n)) {
				if i >= len(n.Args) {
					continue
				}

				if _, ok := ast.Unparen(n.Args[i]).(*ast.FuncLit); !ok {
					continue
				}

				if lit, ok := c.ChildAt(edge.CallExpr_Args, i).FindNode(ast.Unparen(n.Args[i])); ok {
					x.check(lit)
				}
			}
		}
	})
}

type extractorCheck struct {
	p        *rule.Pass
	sharding framework.ShardingContext
}

// isExtractionMethod reports whether fd is an entity extraction method of a message extractor.
func (x *extractorCheck) isExtractionMethod(fd *ast.FuncDecl) bool {
	if fd.Recv == nil || fd.Body == nil || !x.sharding.IsExtractionMethod(fd.Name.Name) {
		return false
	}

	iface := x.sharding.MessageExtractor()
	if iface == nil {
		return false
	}

	fn, ok := x.p.TypesInfo.Defs[fd.Name].(*types.Func)
	if !ok {
		return false
	}

	recv := fn.Signature().Recv().Type()
	if ptr, ok := recv.(*types.Pointer); ok {
		recv = ptr.Elem()
	}

	return types.Implements(recv, iface) || types.Implements(types.NewPointer(recv), iface)
}

// check reports the reserved message branches inside the function at fn.
func (x *extractorCheck) check(fn inspector.Cursor) {
	info := x.p.TypesInfo

	for c := range fn.Preorder((*ast.TypeSwitchStmt)(nil), (*ast.TypeAssertExpr)(nil)) {
		switch n := c.Node().(type) {
		case *ast.TypeSwitchStmt:
			x.checkSwitch(c, n)

		case *ast.TypeAssertExpr:
			if n.Type == nil || !x.sharding.IsReservedMessage(info.TypeOf(n.Type)) {
				continue
			}

			x.checkAssert(c, n)
		}
	}
}

func (x *extractorCheck) checkSwitch(sw inspector.Cursor, n *ast.TypeSwitchStmt) {
	reserved := func(expr ast.Expr) bool {
		return x.sharding.IsReservedMessage(x.p.TypesInfo.TypeOf(expr))
	}

	var repair *fix.Fix

	for _, stmt := range n.Body.List {
		cc, ok := stmt.(*ast.CaseClause)
		if !ok {
			continue
		}

		for _, expr := range cc.List {
			if !reserved(expr) {
				continue
			}

			if repair == nil {
				repair = fix.RemoveTypeCases(x.p.Fixes, sw, reserved)
			}

			x.p.Report(rule.Record{
				Pos:  cc.Pos(),
				End:  cc.Colon + 1,
				Args: []any{x.typeName(expr)},
				Fix:  repair,
			})
		}
	}
}

func (x *extractorCheck) checkAssert(c inspector.Cursor, n *ast.TypeAssertExpr) {
	record := rule.Record{
		Pos:  n.Pos(),
		End:  n.End(),
		Args: []any{x.typeName(n.Type)},
	}

	if branch, ok := enclosingIfHeader(c); ok {
		stmt := branch.Node().(*ast.IfStmt)
		record.Pos, record.End = stmt.Pos(), stmt.Body.Lbrace

		root := branch
		for kind, _ := root.ParentEdge(); kind == edge.IfStmt_Else; kind, _ = root.ParentEdge() {
			root = root.Parent()
		}

		record.Fix = fix.RemoveIfBranches(x.p.Fixes, root, x.handlesReserved)
	}

	x.p.Report(record)
}

// handlesReserved reports whether the header of link asserts a reserved message type.
func (x *extractorCheck) handlesReserved(link *ast.IfStmt) bool {
	found := false

	for _, n := range []ast.Node{link.Init, link.Cond} {
		if n == nil {
			continue
		}

		ast.Inspect(n, func(n ast.Node) bool {
			if ta, ok := n.(*ast.TypeAssertExpr); ok && ta.Type != nil && x.sharding.IsReservedMessage(x.p.TypesInfo.TypeOf(ta.Type)) {
				found = true
			}

			return !found
		})
	}

	return found
}

func (x *extractorCheck) typeName(expr ast.Expr) string {
	return types.TypeString(x.p.TypesInfo.TypeOf(expr), func(pkg *types.Package) string { return pkg.Name() })
}

// enclosingIfHeader returns the if statement whose init statement or condition contains c.
func enclosingIfHeader(c inspector.Cursor) (inspector.Cursor, bool) {
	for cur := c; ; cur = cur.Parent() {
		switch kind, _ := cur.ParentEdge(); kind {
		case edge.IfStmt_Init, edge.IfStmt_Cond:
			return cur.Parent(), true

		case edge.Invalid:
			return inspector.Cursor{}, false
		}

		switch cur.Node().(type) {
		case ast.Stmt, *ast.FuncLit:
			return inspector.Cursor{}, false
		}
	}
}
