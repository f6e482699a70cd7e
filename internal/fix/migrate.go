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
	"strconv"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

// TimerKey is a package-level constant naming a timer.
type TimerKey struct {
	Name, Value string
}

// NewTimerKey returns a timer key for the call site hash, with a name not
// visible in scope and not rejected by taken.
func NewTimerKey(scope *types.Scope, hash string, taken func(string) bool) (TimerKey, bool) {
	name, ok := UniqueName(scope, "timerKey"+strings.ToUpper(hash), taken)
	if !ok {
		return TimerKey{}, false
	}

	return TimerKey{Name: name, Value: "timer-" + hash}, true
}

// MigrateToTimers replaces the scheduler tell at call with a timer started on
// the actor named recv.
//
// A single tell becomes a single timer, a repeated tell becomes a periodic
// timer with initial delay. The key constant is declared before decl, the
// function declaration containing call.
func MigrateToTimers(e *Env, call inspector.Cursor, repeated bool, recv string, key TimerKey, decl inspector.Cursor) *Fix {
	ce, ok := call.Node().(*ast.CallExpr)
	if !ok || ce.Ellipsis.IsValid() {
		return nil
	}

	if kind, _ := call.ParentEdge(); kind != edge.ExprStmt_X {
		return nil
	}

	fd, ok := decl.Node().(*ast.FuncDecl)
	if !ok {
		return nil
	}

	var order []int // argument indices: message, then durations
	switch {
	case !repeated && len(ce.Args) == 4:
		order = []int{2, 0}

	case repeated && len(ce.Args) == 5:
		order = []int{3, 0, 1}

	default:
		return nil
	}

	args := []string{key.Name}
	for _, i := range order {
		text, err := e.Text(ce.Args[i])
		if err != nil {
			return nil
		}

		args = append(args, text)
	}

	method := "StartSingleTimer"
	if repeated {
		method = "StartPeriodicTimerWithDelay"
	}

	replacement := recv + "." + timersGetter + "()." + method + "(" + strings.Join(args, ", ") + ")"

	pos := fd.Pos()
	if fd.Doc != nil {
		pos = fd.Doc.Pos()
	}

	return newFix(KindMigrateToTimers,
		analysis.TextEdit{Pos: pos, NewText: []byte("const " + key.Name + " = " + strconv.Quote(key.Value) + "\n\n")},
		analysis.TextEdit{Pos: ce.Pos(), End: ce.End(), NewText: []byte(replacement)},
	)
}
