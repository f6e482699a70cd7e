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

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

// DiscardAwait replaces waiting on future with discarding it.
//
// The await call at c must either be an expression statement, which becomes
// "_ = future", or the single result of a return statement, which becomes
// "_ = future" followed by "return nil".
func DiscardAwait(e *Env, c inspector.Cursor, future ast.Expr) *Fix {
	text, err := e.Text(future)
	if err != nil {
		return nil
	}

	discard := "_ = " + text

	switch kind, _ := c.ParentEdge(); kind {
	case edge.ExprStmt_X:
		stmt := c.Parent().Node()

		return newFix(KindDiscardAwait, analysis.TextEdit{Pos: stmt.Pos(), End: stmt.End(), NewText: []byte(discard)})

	case edge.ReturnStmt_Results:
		ret, ok := c.Parent().Node().(*ast.ReturnStmt)
		if !ok || len(ret.Results) != 1 {
			return nil
		}

		if _, ok := EnclosingStmt(c.Parent()); !ok {
			return nil
		}

		return newFix(KindDiscardAwait, analysis.TextEdit{Pos: ret.Pos(), End: ret.End(), NewText: []byte(discard + "\nreturn nil")})

	default:
		return nil
	}
}
