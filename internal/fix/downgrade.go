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
	"bytes"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"
)

// DowngradeReceive rewrites an asynchronous receive registration into its synchronous counterpart.
//
// The call is renamed to syncName, the handler literal at lit loses its leading
// context parameter and its error result; a trailing "return nil" is removed
// and other "return nil" statements become bare returns. An import only used
// by the removed parameter is deleted. Handlers returning anything but nil are
// left alone.
func DowngradeReceive(e *Env, call *ast.CallExpr, lit inspector.Cursor, syncName string) *Fix {
	fn, ok := lit.Node().(*ast.FuncLit)
	if !ok {
		return nil
	}

	id := calleeIdent(call.Fun)
	if id == nil {
		return nil
	}

	params, results := fn.Type.Params, fn.Type.Results
	if params == nil || len(params.List) != 2 || len(params.List[0].Names) > 1 {
		return nil
	}

	if results == nil || len(results.List) != 1 || len(results.List[0].Names) > 0 {
		return nil
	}

	edits := []analysis.TextEdit{
		{Pos: id.Pos(), End: id.End(), NewText: []byte(syncName)},
		{Pos: params.List[0].Pos(), End: params.List[1].Pos()},
		{Pos: params.Closing + 1, End: results.End()},
	}

	returns, ok := nilReturns(e.Info, lit)
	if !ok {
		return nil
	}

	for _, pkg := range importsUsedBy(e.Info, params.List[0].Type) {
		if unused, ok := e.removeUnusedImport(pkg, params.List[0].Pos(), params.List[1].Pos()); ok {
			edits = append(edits, unused)
		}
	}

	last := len(fn.Body.List) - 1
	for _, ret := range returns {
		if last >= 0 && ret.Node() == fn.Body.List[last] {
			pos, end := e.StmtRange(ret)
			edits = append(edits, analysis.TextEdit{Pos: pos, End: end})

			continue
		}

		r := ret.Node()
		edits = append(edits, analysis.TextEdit{Pos: r.Pos(), End: r.End(), NewText: []byte("return")})
	}

	return newFix(KindDowngradeReceive, edits...)
}

// nilReturns collects the return statements of the function literal at lit,
// excluding nested literals. It fails when a return statement has a result other than nil.
func nilReturns(info *types.Info, lit inspector.Cursor) ([]inspector.Cursor, bool) {
	var returns []inspector.Cursor

	ok := true

	lit.Inspect([]ast.Node{(*ast.FuncLit)(nil), (*ast.ReturnStmt)(nil)}, func(c inspector.Cursor) bool {
		switch n := c.Node().(type) {
		case *ast.FuncLit:
			return c == lit

		case *ast.ReturnStmt:
			if len(n.Results) != 1 || !info.Types[n.Results[0]].IsNil() {
				ok = false
			}

			returns = append(returns, c)
		}

		return ok
	})

	return returns, ok
}

// calleeIdent returns the identifier naming the called function, looking through instantiations.
func calleeIdent(fun ast.Expr) *ast.Ident {
	switch f := ast.Unparen(fun).(type) {
	case *ast.IndexExpr:
		return calleeIdent(f.X)

	case *ast.IndexListExpr:
		return calleeIdent(f.X)

	case *ast.SelectorExpr:
		return f.Sel

	case *ast.Ident:
		return f

	default:
		return nil
	}
}

// importsUsedBy returns the imported packages referenced in expr.
func importsUsedBy(info *types.Info, expr ast.Expr) []*types.PkgName {
	var pkgs []*types.PkgName

	ast.Inspect(expr, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok {
			if pkg, ok := info.Uses[id].(*types.PkgName); ok {
				pkgs = append(pkgs, pkg)
			}
		}

		return true
	})

	return pkgs
}

// removeUnusedImport returns an edit deleting the import of pkg when all its
// uses lie between pos and end.
func (e *Env) removeUnusedImport(pkg *types.PkgName, pos, end token.Pos) (analysis.TextEdit, bool) {
	for id, obj := range e.Info.Uses {
		if obj == pkg && (id.Pos() < pos || end <= id.Pos()) {
			return analysis.TextEdit{}, false
		}
	}

	file := e.File(pos)
	if file == nil {
		return analysis.TextEdit{}, false
	}

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.IMPORT {
			continue
		}

		for _, spec := range gen.Specs {
			if e.importedAs(spec.(*ast.ImportSpec)) != pkg {
				continue
			}

			var node ast.Node = spec
			if len(gen.Specs) == 1 {
				node = gen
			}

			start, stop := e.lineRange(node)

			return analysis.TextEdit{Pos: start, End: stop}, true
		}
	}

	return analysis.TextEdit{}, false
}

// importedAs returns the package name declared by spec.
func (e *Env) importedAs(spec *ast.ImportSpec) *types.PkgName {
	var obj types.Object
	if spec.Name != nil {
		obj = e.Info.Defs[spec.Name]
	} else {
		obj = e.Info.Implicits[spec]
	}

	pkg, _ := obj.(*types.PkgName)

	return pkg
}

// lineRange extends the range of node to whole lines when nothing else shares them.
func (e *Env) lineRange(node ast.Node) (pos, end token.Pos) {
	pos, end = node.Pos(), node.End()

	tf, src, err := e.source(pos)
	if err != nil {
		return pos, end
	}

	startLine, endLine := tf.Line(pos), tf.Line(end)
	if endLine >= tf.LineCount() {
		return pos, end
	}

	lineStart, nextLine := tf.LineStart(startLine), tf.LineStart(endLine+1)

	before := src[tf.Offset(lineStart):tf.Offset(pos)]
	after := src[tf.Offset(end):tf.Offset(nextLine)]

	if len(bytes.TrimSpace(before)) > 0 || len(bytes.TrimSpace(after)) > 0 {
		return pos, end
	}

	return lineStart, nextLine
}
