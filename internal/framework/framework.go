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

package framework

import (
	"go/types"
	"strings"
	"sync"
)

// Framework is one sub-framework of the actor runtime as seen by a single analysis pass.
//
// An absent Framework answers every lookup with nil, so callers only check
// the individual lookup results.
type Framework struct {
	sub     Sub
	path    string
	pkg     *types.Package // nil when absent
	version Version

	mu      sync.Mutex
	symbols map[string]*Symbol
}

func newFramework(sub Sub, path string, pkg *types.Package, version Version) *Framework {
	return &Framework{sub: sub, path: path, pkg: pkg, version: version}
}

// Sub returns the sub-framework kind.
func (f *Framework) Sub() Sub { return f.sub }

// Path returns the import path of the sub-framework package.
func (f *Framework) Path() string { return f.path }

// Present reports whether the analyzed package references this sub-framework.
func (f *Framework) Present() bool { return f != nil && f.pkg != nil }

// Version returns the detected version, which may be unknown.
func (f *Framework) Version() Version {
	if f == nil {
		return Version{}
	}

	return f.version
}

// Package returns the framework package or nil.
func (f *Framework) Package() *types.Package {
	if f == nil {
		return nil
	}

	return f.pkg
}

// Lookup returns the [Symbol] for name, which is either a package-level
// name ("Future") or a type-qualified method or field ("Future.Wait").
func (f *Framework) Lookup(name string) *Symbol {
	if f == nil {
		return &Symbol{name: name}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if s, ok := f.symbols[name]; ok {
		return s
	}

	s := &Symbol{name: f.path + "." + name}
	if f.pkg != nil {
		s.resolve = func() types.Object { return f.resolve(name) }
	}

	if f.symbols == nil {
		f.symbols = make(map[string]*Symbol)
	}
	f.symbols[name] = s

	return s
}

func (f *Framework) resolve(name string) types.Object {
	typeName, member, qualified := strings.Cut(name, ".")

	obj := f.pkg.Scope().Lookup(typeName)
	if !qualified {
		return obj
	}

	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil
	}

	recv := tn.Type()
	if !types.IsInterface(recv) {
		recv = types.NewPointer(recv)
	}

	m, _, _ := types.LookupFieldOrMethod(recv, false, f.pkg, member)

	return m
}

// Type returns the named type name, or nil.
func (f *Framework) Type(name string) *types.TypeName {
	tn, _ := f.Lookup(name).Object().(*types.TypeName)

	return tn
}

// Func returns the package-level function or method name, or nil.
func (f *Framework) Func(name string) *types.Func {
	fn, _ := f.Lookup(name).Object().(*types.Func)

	return fn
}

// Is reports whether obj is one of the named framework symbols.
func (f *Framework) Is(obj types.Object, names ...string) bool {
	if obj == nil || !f.Present() {
		return false
	}

	for _, name := range names {
		if f.Lookup(name).Matches(obj) {
			return true
		}
	}

	return false
}

// IsType reports whether t, or the type t points to, is one of the named framework types.
func (f *Framework) IsType(t types.Type, names ...string) bool {
	if t == nil || !f.Present() {
		return false
	}

	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}

	n, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}

	return f.Is(n.Origin().Obj(), names...)
}

// Method returns the method name of the named type, or nil.
func (f *Framework) Method(typeName, name string) *types.Func {
	return f.Func(typeName + "." + name)
}
