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

// Package engine runs the actorlint rules over an analysis pass.
package engine

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime"
	"runtime/trace"
	"slices"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/actorlint/internal/astutil"
	"fillmore-labs.com/actorlint/internal/config"
	"fillmore-labs.com/actorlint/internal/fix"
	"fillmore-labs.com/actorlint/internal/framework"
	"fillmore-labs.com/actorlint/internal/rule"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// ErrRulePanic marks a rule that panicked during analysis.
var ErrRulePanic = errors.New("rule panicked")

// Options represent the configuration of an engine run.
type Options struct {
	// Rules are the available rules, in id order.
	Rules []rule.Rule

	// Enabled selects the rules to run by their position in Rules.
	Enabled config.BitMask[config.RuleFlags]

	// Behavior holds behavioral options.
	Behavior config.BitMask[config.Config]

	// Framework is the import path prefix of the actor runtime.
	Framework string
}

// Run executes the enabled rules on the pass and reports their findings.
func (o *Options) Run(p *analysis.Pass) (any, error) {
	return o.RunContext(context.Background(), p)
}

// RunContext is like [Options.Run], but stops early when ctx is cancelled.
// A cancelled run reports nothing.
func (o *Options) RunContext(ctx context.Context, p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("actorlint: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx, task := trace.NewTask(ctx, "ActorLint")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	fw := framework.Resolve(ctx, p.Pkg, o.Framework)

	var eligible []rule.Rule

	for i, r := range o.Rules {
		if o.Enabled.Enabled(config.RuleFlag(i)) && r.ShouldAnalyze(fw) {
			eligible = append(eligible, r)
		}
	}

	if len(eligible) == 0 {
		return nil, nil
	}

	index := rule.NewIndex(p.TypesInfo, in)
	env := fix.NewEnv(p)

	passes := make([]*rule.Pass, len(eligible))
	failed := make([]error, len(eligible))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, r := range eligible {
		d := r.Descriptor()
		passes[i] = rule.NewPass(p, in, fw, index, env, d)

		g.Go(func() (err error) {
			defer trace.StartRegion(gctx, d.ID).End()

			defer func() {
				if v := recover(); v != nil {
					failed[i], err = fmt.Errorf("%w: %v", ErrRulePanic, v), nil
				}
			}()

			err = r.Analyze(gctx, passes[i])
			if err != nil && gctx.Err() == nil && ctx.Err() == nil {
				failed[i] = err

				return nil
			}

			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	o.report(p, in, passes, failed)

	return nil, nil
}

// report emits the findings of all rules in positional order, skipping
// generated files unless configured and suppressed findings.
func (o *Options) report(p *analysis.Pass, in *inspector.Inspector, passes []*rule.Pass, failed []error) {
	files := make([]astutil.CurrentFile, 0, len(p.Files))
	for c := range in.Root().Children() {
		file, ok := c.Node().(*ast.File)
		if !ok {
			continue
		}

		cf := astutil.NewCurrentFile(p.Fset, file)
		if !cf.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		files = append(files, cf)
	}

	for i, err := range failed {
		if err != nil && len(p.Files) > 0 {
			astutil.InternalError(p, p.Files[0].Name, "%s failed: %v", passes[i].Rule().ID, err)
		}
	}

	var records []rule.Record
	for i, rp := range passes {
		if failed[i] == nil {
			records = append(records, rp.Records()...)
		}
	}

	slices.SortStableFunc(records, func(a, b rule.Record) int {
		return cmp.Or(cmp.Compare(a.Pos, b.Pos), cmp.Compare(a.End, b.End), cmp.Compare(a.Rule.ID, b.Rule.ID))
	})

	includeGenerated := o.Behavior.Enabled(config.IncludeGenerated)

	for _, r := range records {
		i := slices.IndexFunc(files, func(f astutil.CurrentFile) bool { return f.Contains(r.Pos) })
		if i < 0 {
			continue
		}

		if f := files[i]; f.Generated() && !includeGenerated || f.Suppressed(r.Pos, r.Rule.ID) {
			continue
		}

		p.Report(r.Diagnostic())
	}
}
