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
	"go/types"
	"unicode"
	"unicode/utf8"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"
)

// Names of the timer capability.
const (
	timersField          = "timers"
	timersGetter         = "Timers"
	timersSetter         = "SetTimers"
	timerSchedulerType   = "TimerScheduler"
	timerCapabilityIface = "WithTimers"
)

// EnsureTimers returns the edits that make the actor type declared at spec
// implement the timer capability.
//
// The edits add an unexported field, the accessor methods and a compile-time
// assertion. They depend only on the type, so all repairs needing the capability
// produce identical edits for the same type. No edits are needed when the type
// already implements withTimers.
func EnsureTimers(e *Env, spec inspector.Cursor, actorPath string, withTimers *types.Interface) ([]analysis.TextEdit, bool) {
	ts, ok := spec.Node().(*ast.TypeSpec)
	if !ok || withTimers == nil {
		return nil, false
	}

	tn, ok := e.Info.Defs[ts.Name].(*types.TypeName)
	if !ok {
		return nil, false
	}

	if types.Implements(types.NewPointer(tn.Type()), withTimers) {
		return nil, true
	}

	st, ok := ts.Type.(*ast.StructType)
	if !ok || ts.TypeParams != nil || ts.Assign.IsValid() {
		return nil, false
	}

	decl, ok := spec.Parent().Node().(*ast.GenDecl)
	if !ok {
		return nil, false
	}

	for _, name := range [...]string{timersField, timersGetter, timersSetter} {
		if obj, _, _ := types.LookupFieldOrMethod(types.NewPointer(tn.Type()), false, tn.Pkg(), name); obj != nil {
			return nil, false
		}
	}

	pkg, ok := ImportName(e.File(ts.Pos()), actorPath)
	if !ok {
		return nil, false
	}

	recv := receiverName(e, tn)
	typ := ts.Name.Name
	scheduler := pkg + "." + timerSchedulerType

	param := "t"
	if recv == param {
		param = "ts"
	}

	field := timersField + " " + scheduler + "\n"
	if n := len(st.Fields.List); n > 0 {
		if tf := e.Fset.File(ts.Pos()); tf != nil && tf.Line(st.Fields.List[n-1].End()) == tf.Line(st.Fields.Closing) {
			field = "\n" + field
		}
	}

	var buf bytes.Buffer

	buf.WriteString("\n\nvar _ " + pkg + "." + timerCapabilityIface + " = (*" + typ + ")(nil)\n\n")
	buf.WriteString("func (" + recv + " *" + typ + ") " + timersGetter + "() " + scheduler + " { return " + recv + "." + timersField + " }\n\n")
	buf.WriteString("func (" + recv + " *" + typ + ") " + timersSetter + "(" + param + " " + scheduler + ") { " + recv + "." + timersField + " = " + param + " }")

	return []analysis.TextEdit{
		{Pos: st.Fields.Closing, NewText: []byte(field)},
		{Pos: decl.End(), NewText: buf.Bytes()},
	}, true
}

// receiverName returns the receiver name used by the methods of tn, or one derived from the type name.
func receiverName(e *Env, tn *types.TypeName) string {
	var name string

	f := e.File(tn.Pos())
	if f != nil {
		for _, d := range f.Decls {
			fd, ok := d.(*ast.FuncDecl)
			if !ok || fd.Recv == nil || len(fd.Recv.List) != 1 || len(fd.Recv.List[0].Names) != 1 {
				continue
			}

			if recvTypeName(fd.Recv.List[0].Type) != tn.Name() {
				continue
			}

			if n := fd.Recv.List[0].Names[0].Name; n != "_" {
				name = n

				break
			}
		}
	}

	if name == "" || name == timersField {
		r, _ := utf8.DecodeRuneInString(tn.Name())
		name = string(unicode.ToLower(r))
	}

	return name
}

// recvTypeName returns the base type name of a receiver type expression.
func recvTypeName(expr ast.Expr) string {
	switch t := ast.Unparen(expr).(type) {
	case *ast.StarExpr:
		return recvTypeName(t.X)

	case *ast.IndexExpr:
		return recvTypeName(t.X)

	case *ast.IndexListExpr:
		return recvTypeName(t.X)

	case *ast.Ident:
		return t.Name

	default:
		return ""
	}
}
