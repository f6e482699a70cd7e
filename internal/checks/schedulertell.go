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
	"bytes"
	"context"
	"fmt"
	"go/ast"
	"go/printer"
	"go/token"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/actorlint/internal/fix"
	"fillmore-labs.com/actorlint/internal/framework"
	"fillmore-labs.com/actorlint/internal/rule"
)

// PropertyHash is the record property holding the call site hash.
const PropertyHash = "hash"

// analyzeSchedulerTell flags scheduler tells from the actor to itself.
func analyzeSchedulerTell(ctx context.Context, p *rule.Pass) error {
	core := p.Framework.Core()

	taken := make(map[string]bool)

	return p.Walk(ctx, []ast.Node{(*ast.CallExpr)(nil)}, func(c inspector.Cursor) {
		call := c.Node().(*ast.CallExpr)

		fn := callee(p.TypesInfo, call)
		if !core.IsLegacySchedule(fn) {
			return
		}

		repeated := fn.Name() == framework.MethodScheduleTellRepeatedly

		receiver, sender := 1, 3
		if repeated {
			receiver, sender = 2, 4
		}

		if len(call.Args) <= sender ||
			!isSelfCall(core, p.TypesInfo, call.Args[receiver]) ||
			!isSelfCall(core, p.TypesInfo, call.Args[sender]) {
			return
		}

		hash, err := CallSiteHash(p.Fset, call)
		if err != nil {
			return
		}

		p.Report(rule.Record{
			Pos:        call.Pos(),
			End:        call.End(),
			Args:       []any{fn.Name()},
			Properties: map[string]string{PropertyHash: hash},
			Fix:        migrateTimers(p, core, c, repeated, hash, taken),
		})
	})
}

// migrateTimers builds the repair replacing the scheduler tell at c with a timer.
// Names of key constants introduced by earlier repairs of the pass are recorded in taken.
func migrateTimers(p *rule.Pass, core framework.CoreContext, c inspector.Cursor, repeated bool, hash string, taken map[string]bool) *fix.Fix {
	decl, ok := enclosingFuncDecl(c)
	if !ok {
		return nil
	}

	fd := decl.Node().(*ast.FuncDecl)

	named, _, ok := actorType(core, p.TypesInfo, fd)
	if !ok || len(fd.Recv.List[0].Names) != 1 {
		return nil
	}

	recv := fd.Recv.List[0].Names[0]
	if recv.Name == "_" || !visibleAt(p, recv, c.Node().Pos()) {
		return nil
	}

	key, ok := fix.NewTimerKey(p.Pkg.Scope(), hash, func(name string) bool { return taken[name] })
	if !ok {
		return nil
	}

	repair := fix.MigrateToTimers(p.Fixes, c, repeated, recv.Name, key, decl)
	if repair == nil {
		return nil
	}

	spec, ok := p.Index.TypeSpec(named.Obj())
	if !ok {
		return nil
	}

	edits, ok := fix.EnsureTimers(p.Fixes, spec, core.Path(), core.WithTimers())
	if !ok {
		return nil
	}

	taken[key.Name] = true

	return repair.With(edits...)
}

// visibleAt reports whether the object declared by id is not shadowed at pos.
func visibleAt(p *rule.Pass, id *ast.Ident, pos token.Pos) bool {
	obj := p.TypesInfo.Defs[id]
	if obj == nil {
		return false
	}

	scope := p.Pkg.Scope().Innermost(pos)
	if scope == nil {
		return false
	}

	_, found := scope.LookupParent(id.Name, pos)

	return found == obj
}

// CallSiteHash returns the first eight hex digits of the xxhash64 of the
// normalized source of call.
func CallSiteHash(fset *token.FileSet, call *ast.CallExpr) (string, error) {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, call); err != nil {
		return "", fmt.Errorf("can't render call: %w", err)
	}

	return fmt.Sprintf("%016x", xxhash.Sum64(buf.Bytes()))[:8], nil
}
