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
	"testing"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/actorlint/internal/testsource"
)

func TestEnclosingFuncDecl(t *testing.T) {
	t.Parallel()

	const src = `package test

var v = func() int { return len("top") }()

func outer() {
	f := func() { println("inner") }
	f()
}
`

	fset, file := testsource.ParseFile(t, src)
	root := inspector.New([]*ast.File{file}).Root()

	want := map[int]string{3: "", 6: "outer", 7: "outer"}

	for c := range root.Preorder((*ast.CallExpr)(nil)) {
		line := fset.Position(c.Node().Pos()).Line

		name := ""
		if decl, ok := enclosingFuncDecl(c); ok {
			name = decl.Node().(*ast.FuncDecl).Name.Name
		}

		if w, ok := want[line]; ok && name != w {
			t.Errorf("Line %d: got enclosing function %q, want %q", line, name, w)
		}
	}

	for c := range root.Preorder((*ast.FuncDecl)(nil)) {
		if decl, ok := enclosingFuncDecl(c); !ok || decl != c {
			t.Error("A function declaration should enclose itself")
		}
	}
}
