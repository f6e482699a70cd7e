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
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"
)

const reasonName = "reason"

// MoveToPostRestart moves stmts, top-level statements of the lifecycle method
// at method, to the end of post.
//
// When post is nil a PostRestart method is created after method that first
// delegates to the embedded base at basePath. The statements must not depend
// on the parameters or local variables of method, and no remaining statement
// may depend on declarations of the moved ones.
func MoveToPostRestart(e *Env, method inspector.Cursor, stmts []inspector.Cursor, post *ast.FuncDecl, basePath string) *Fix {
	fd, ok := method.Node().(*ast.FuncDecl)
	if !ok || fd.Body == nil || len(stmts) == 0 {
		return nil
	}

	recv, ok := recvName(fd)
	if !ok {
		return nil
	}

	if post != nil {
		if name, ok := recvName(post); !ok || name != recv || post.Body == nil {
			return nil
		}
	}

	moved := make([]ast.Node, 0, len(stmts))
	for _, c := range stmts {
		moved = append(moved, c.Node())
	}

	if !selfContained(e.Info, fd, moved) {
		return nil
	}

	var (
		edits []analysis.TextEdit
		body  strings.Builder
		taken = make(map[string]bool)
	)

	for i, c := range stmts {
		text, err := e.Text(c.Node())
		if err != nil {
			return nil
		}

		if i > 0 {
			body.WriteByte('\n')
		}
		body.WriteString(text)

		pos, end := e.StmtRange(c)
		edits = append(edits, analysis.TextEdit{Pos: pos, End: end})

		ast.Inspect(c.Node(), func(n ast.Node) bool {
			if id, ok := n.(*ast.Ident); ok {
				taken[id.Name] = true
			}

			return true
		})
	}

	if post != nil {
		text := body.String() + "\n"
		if e.sameLine(lastInBlock(post.Body), post.Body.Rbrace) {
			text = "\n" + text
		}

		edits = append(edits, analysis.TextEdit{Pos: post.Body.Rbrace, NewText: []byte(text)})

		return newFix(KindMoveToPostRestart, edits...)
	}

	recvType, err := e.Text(fd.Recv.List[0].Type)
	if err != nil {
		return nil
	}

	reason, ok := UniqueName(nil, reasonName, func(name string) bool { return taken[name] || name == recv })
	if !ok {
		return nil
	}

	var decl strings.Builder

	decl.WriteString("\n\nfunc (" + recv + " " + recvType + ") PostRestart(" + reason + " error) {\n")
	decl.WriteString(recv + "." + basePath + ".PostRestart(" + reason + ")\n")
	decl.WriteString(body.String())
	decl.WriteString("\n}")

	edits = append(edits, analysis.TextEdit{Pos: fd.End(), NewText: []byte(decl.String())})

	return newFix(KindMoveToPostRestart, edits...)
}

// recvName returns the receiver name of a method declaration.
func recvName(fd *ast.FuncDecl) (string, bool) {
	if fd.Recv == nil || len(fd.Recv.List) != 1 || len(fd.Recv.List[0].Names) != 1 {
		return "", false
	}

	name := fd.Recv.List[0].Names[0].Name
	if name == "_" {
		return "", false
	}

	return name, true
}

// selfContained reports whether the moved statements of fd use neither its
// parameters nor its other local declarations, and whether the rest of fd
// doesn't use declarations of the moved statements.
func selfContained(info *types.Info, fd *ast.FuncDecl, moved []ast.Node) bool {
	params := make(map[types.Object]bool)
	for _, field := range fd.Type.Params.List {
		for _, name := range field.Names {
			if obj := info.Defs[name]; obj != nil {
				params[obj] = true
			}
		}
	}

	ok := true

	ast.Inspect(fd.Body, func(n ast.Node) bool {
		id, isIdent := n.(*ast.Ident)
		if !isIdent || !ok {
			return ok
		}

		obj := info.Uses[id]
		if obj == nil {
			return true
		}

		declared := fd.Body.Pos() <= obj.Pos() && obj.Pos() < fd.Body.End()

		switch {
		case within(moved, id.Pos()):
			if params[obj] || declared && !within(moved, obj.Pos()) {
				ok = false
			}

		case declared && within(moved, obj.Pos()):
			ok = false
		}

		return ok
	})

	return ok
}

// within reports whether pos is inside one of nodes.
func within(nodes []ast.Node, pos token.Pos) bool {
	for _, n := range nodes {
		if n.Pos() <= pos && pos < n.End() {
			return true
		}
	}

	return false
}

// lastInBlock returns the end of the last statement of block, or the position
// after its opening brace.
func lastInBlock(block *ast.BlockStmt) token.Pos {
	if n := len(block.List); n > 0 {
		return block.List[n-1].End()
	}

	return block.Lbrace + 1
}

// sameLine reports whether a and b are on the same line.
func (e *Env) sameLine(a, b token.Pos) bool {
	tf := e.Fset.File(a)

	return tf != nil && tf.Line(a) == tf.Line(b)
}
