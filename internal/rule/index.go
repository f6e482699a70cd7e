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

package rule

import (
	"go/ast"
	"go/types"
	"sync"

	"golang.org/x/tools/go/ast/inspector"
)

// Index maps package-level objects back to their declarations.
//
// It is built lazily, at most once per pass, and is safe for concurrent use.
type Index struct {
	build func() index
}

type index struct {
	funcs map[*types.Func]inspector.Cursor
	types map[*types.TypeName]inspector.Cursor
}

// NewIndex creates a lazily built [Index] over the files of the inspector.
func NewIndex(info *types.Info, in *inspector.Inspector) *Index {
	return &Index{build: sync.OnceValue(func() index {
		idx := index{
			funcs: make(map[*types.Func]inspector.Cursor),
			types: make(map[*types.TypeName]inspector.Cursor),
		}

		for c := range in.Root().Preorder((*ast.FuncDecl)(nil), (*ast.TypeSpec)(nil)) {
			switch n := c.Node().(type) {
			case *ast.FuncDecl:
				if fn, ok := info.Defs[n.Name].(*types.Func); ok {
					idx.funcs[fn] = c
				}

			case *ast.TypeSpec:
				if tn, ok := info.Defs[n.Name].(*types.TypeName); ok {
					idx.types[tn] = c
				}
			}
		}

		return idx
	})}
}

// FuncDecl returns the cursor of the declaration of fn, if it is declared in this package.
func (x *Index) FuncDecl(fn *types.Func) (inspector.Cursor, bool) {
	if fn == nil {
		return inspector.Cursor{}, false
	}

	c, ok := x.build().funcs[fn.Origin()]

	return c, ok
}

// TypeSpec returns the cursor of the declaration of tn, if it is declared in this package.
func (x *Index) TypeSpec(tn *types.TypeName) (inspector.Cursor, bool) {
	if tn == nil {
		return inspector.Cursor{}, false
	}

	c, ok := x.build().types[tn]

	return c, ok
}

// Methods returns the declarations of the methods of the named type, keyed by name.
func (x *Index) Methods(named *types.Named) map[string]inspector.Cursor {
	methods := make(map[string]inspector.Cursor)

	for i := range named.NumMethods() {
		m := named.Method(i)
		if c, ok := x.FuncDecl(m); ok {
			methods[m.Name()] = c
		}
	}

	return methods
}
