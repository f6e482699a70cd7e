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

package engine_test

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"slices"
	"strings"
	"testing"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/actorlint/internal/config"
	. "fillmore-labs.com/actorlint/internal/engine"
	"fillmore-labs.com/actorlint/internal/framework"
	"fillmore-labs.com/actorlint/internal/rule"
	"fillmore-labs.com/actorlint/internal/testsource"
)

// callRule reports every call expression.
type callRule struct {
	id    string
	err   error
	panic bool
}

func (r callRule) Descriptor() rule.Descriptor {
	return rule.Descriptor{ID: r.id, Title: strings.ToLower(r.id), Message: "call of %s"}
}

func (callRule) ShouldAnalyze(*framework.Context) bool { return true }

func (r callRule) Analyze(ctx context.Context, p *rule.Pass) error {
	if r.err != nil {
		return r.err
	}

	return p.Walk(ctx, []ast.Node{(*ast.CallExpr)(nil)}, func(c inspector.Cursor) {
		call := c.Node().(*ast.CallExpr)
		p.Report(rule.Record{Pos: call.Pos(), End: call.End(), Args: []any{call.Fun}})

		if r.panic {
			panic("boom")
		}
	})
}

const src = `package test

func bad() {}

func _() {
	bad()
	bad() //nolint:AL0002
}

//nolint:actorlint
func _() {
	bad()
}
`

func newOptions(rules ...rule.Rule) *Options {
	return &Options{
		Rules:   rules,
		Enabled: config.NewBitMask(config.AllRules(len(rules))),
	}
}

func summary(p *analysis.Pass, diagnostics []analysis.Diagnostic) []string {
	result := make([]string, 0, len(diagnostics))
	for _, d := range diagnostics {
		result = append(result, fmt.Sprintf("%d:%s", p.Fset.Position(d.Pos).Line, d.Message))
	}

	return result
}

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		src       string
		rules     []rule.Rule
		disabled  []int
		generated bool
		want      []string
	}{
		{
			name:  "Ordered",
			src:   src,
			rules: []rule.Rule{callRule{id: "AL0002"}, callRule{id: "AL0001"}},
			want: []string{
				"6:call of bad (AL0001)",
				"6:call of bad (AL0002)",
				"7:call of bad (AL0001)",
			},
		},
		{
			name:     "Disabled",
			src:      src,
			rules:    []rule.Rule{callRule{id: "AL0001"}, callRule{id: "AL0002"}},
			disabled: []int{0},
			want:     []string{"6:call of bad (AL0002)"},
		},
		{
			name:  "Failed",
			src:   src,
			rules: []rule.Rule{callRule{id: "AL0001", err: errors.New("boom")}, callRule{id: "AL0002"}},
			want: []string{
				"1:Internal Error: AL0001 failed: boom",
				"6:call of bad (AL0002)",
			},
		},
		{
			name:  "Panicked",
			src:   src,
			rules: []rule.Rule{callRule{id: "AL0001", panic: true}, callRule{id: "AL0002"}},
			want: []string{
				"1:Internal Error: AL0001 failed: rule panicked: boom",
				"6:call of bad (AL0002)",
			},
		},
		{
			name:  "Generated",
			src:   "// Code generated by test. DO NOT EDIT.\n\n" + src,
			rules: []rule.Rule{callRule{id: "AL0001"}},
			want:  []string{},
		},
		{
			name:      "IncludeGenerated",
			src:       "// Code generated by test. DO NOT EDIT.\n\n" + src,
			rules:     []rule.Rule{callRule{id: "AL0001"}},
			generated: true,
			want: []string{
				"8:call of bad (AL0001)",
				"9:call of bad (AL0001)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, diagnostics := testsource.Pass(t, tt.src)

			o := newOptions(tt.rules...)
			for _, i := range tt.disabled {
				o.Enabled.Disable(config.RuleFlag(i))
			}

			o.Behavior.Set(config.IncludeGenerated, tt.generated)

			if _, err := o.Run(p); err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			if got := summary(p, *diagnostics); !slices.Equal(got, tt.want) {
				t.Errorf("Got diagnostics %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	p, diagnostics := testsource.Pass(t, src)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := newOptions(callRule{id: "AL0001"}).RunContext(ctx, p)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Got error %v, want %v", err, context.Canceled)
	}

	if len(*diagnostics) > 0 {
		t.Errorf("Got %d diagnostics from cancelled run", len(*diagnostics))
	}
}

func TestRunMissingInspector(t *testing.T) {
	t.Parallel()

	p, _ := testsource.Pass(t, src)
	p.ResultOf = nil

	if _, err := newOptions(callRule{id: "AL0001"}).Run(p); !errors.Is(err, ErrResultMissing) {
		t.Errorf("Got error %v, want %v", err, ErrResultMissing)
	}
}
