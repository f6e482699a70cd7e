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
	"context"
	"go/constant"
	"go/types"
	"path"
	"runtime/trace"
)

// DefaultRoot is the import path prefix of the actor runtime.
const DefaultRoot = "github.com/actorkit/actorkit"

// Sub identifies a sub-framework of the actor runtime.
type Sub uint8

//go:generate go tool stringer -type Sub -linecomment
const (
	// Core is the actor runtime.
	Core Sub = iota // core

	// Cluster is the clustering support.
	Cluster // cluster

	// Sharding is the cluster-sharding support.
	Sharding // cluster-sharding

	// Tools is the cluster-tools support (singletons, pub-sub).
	Tools // cluster-tools

	numSubs = iota
)

// subPaths are the import paths of the sub-frameworks, relative to the runtime root.
var subPaths = [numSubs]string{
	Core:     "actor",
	Cluster:  "cluster",
	Sharding: "cluster/sharding",
	Tools:    "cluster/tools",
}

// Context aggregates the sub-frameworks referenced by one analyzed package.
//
// A Context is built per analysis pass and discarded afterwards; different
// packages may reference different framework versions.
type Context struct {
	root string
	subs [numSubs]*Framework
}

// Resolve detects the sub-frameworks imported, directly or transitively, by pkg.
func Resolve(ctx context.Context, pkg *types.Package, root string) *Context {
	defer trace.StartRegion(ctx, "ResolveFramework").End()

	if root == "" {
		root = DefaultRoot
	}

	c := &Context{root: root}

	wanted := make(map[string]Sub, numSubs)
	for sub, rel := range subPaths {
		wanted[path.Join(root, rel)] = Sub(sub)
	}

	seen := make(map[*types.Package]struct{})

	var visit func(p *types.Package)
	visit = func(p *types.Package) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}

		if sub, ok := wanted[p.Path()]; ok {
			c.subs[sub] = newFramework(sub, p.Path(), p, detectVersion(ctx, p))
		}

		for _, imp := range p.Imports() {
			visit(imp)
		}
	}

	if pkg != nil {
		visit(pkg)
	}

	for sub, rel := range subPaths {
		if c.subs[sub] == nil {
			c.subs[sub] = newFramework(Sub(sub), path.Join(root, rel), nil, Version{})
		}
	}

	return c
}

// detectVersion reads the exported Version string constant of a framework package.
func detectVersion(ctx context.Context, pkg *types.Package) Version {
	k, ok := pkg.Scope().Lookup("Version").(*types.Const)
	if !ok || k.Val().Kind() != constant.String {
		trace.Logf(ctx, "framework", "%s: no version constant", pkg.Path())

		return Version{}
	}

	v, err := ParseVersion(constant.StringVal(k.Val()))
	if err != nil {
		trace.Logf(ctx, "framework", "%s: %v", pkg.Path(), err)

		return Version{}
	}

	return v
}

// Root returns the import path prefix of the runtime.
func (c *Context) Root() string { return c.root }

// Get returns the sub-framework, which is never nil.
func (c *Context) Get(sub Sub) *Framework { return c.subs[sub] }

// Core returns the core actor runtime view.
func (c *Context) Core() CoreContext { return CoreContext{c.subs[Core]} }

// Cluster returns the clustering view.
func (c *Context) Cluster() ClusterContext { return ClusterContext{c.subs[Cluster]} }

// Sharding returns the cluster-sharding view.
func (c *Context) Sharding() ShardingContext { return ShardingContext{c.subs[Sharding]} }

// Tools returns the cluster-tools view.
func (c *Context) Tools() ToolsContext { return ToolsContext{c.subs[Tools]} }
