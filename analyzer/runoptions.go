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

package analyzer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"

	"fillmore-labs.com/actorlint/internal/checks"
	"fillmore-labs.com/actorlint/internal/config"
	"fillmore-labs.com/actorlint/internal/engine"
	"fillmore-labs.com/actorlint/internal/framework"
	"fillmore-labs.com/actorlint/internal/rule"
)

// ErrUnknownRule is returned when the configuration names a rule that doesn't exist.
var ErrUnknownRule = errors.New("unknown rule")

// runOptions represent configuration runOptions for the actorlint analyzer.
type runOptions struct {
	engine engine.Options

	// configFile is the path of a TOML configuration file, if any.
	configFile string

	// disable lists rule ids switched off on the command line.
	disable ruleList

	// errs collects configuration errors reported on the first run.
	errs []error

	loadOnce sync.Once
	loaded   engine.Options
	loadErr  error
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

// defaultRunOptions initializes and returns a new runOptions instance with default values.
func defaultRunOptions() *runOptions {
	rules := checks.All()

	return &runOptions{
		engine: engine.Options{
			Rules:     rules,
			Enabled:   config.NewBitMask(config.AllRules(len(rules))),
			Framework: framework.DefaultRoot,
		},
	}
}

// analyzer returns an actorlint *[analysis.Analyzer] instance.
func (r *runOptions) analyzer() *analysis.Analyzer {
	return &analysis.Analyzer{
		Name:     name,
		Doc:      doc,
		URL:      url,
		Run:      r.run,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}
}

// run executes the actorlint engine with the effective configuration.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	o, err := r.effective()
	if err != nil {
		return nil, err
	}

	return o.RunContext(context.Background(), p)
}

// effective merges the configuration file and command line settings into the
// configured options. The result is computed once, after flag parsing.
func (r *runOptions) effective() (*engine.Options, error) {
	r.loadOnce.Do(func() {
		o := r.engine
		errs := r.errs

		if r.configFile != "" {
			cfg, err := config.LoadFile(r.configFile)
			if err != nil {
				errs = append(errs, err)
			}

			if cfg.Framework != "" {
				o.Framework = cfg.Framework
			}

			if cfg.Generated != nil {
				o.Behavior.Set(config.IncludeGenerated, *cfg.Generated)
			}

			errs = append(errs, disableRules(&o, cfg.Disable))
		}

		errs = append(errs, disableRules(&o, r.disable))

		r.loaded, r.loadErr = o, errors.Join(errs...)
	})

	if r.loadErr != nil {
		return nil, fmt.Errorf("actorlint: %w", r.loadErr)
	}

	return &r.loaded, nil
}

// disableRules switches off the rules with the given ids.
func disableRules(o *engine.Options, ids []string) error {
	var errs []error

	for _, id := range ids {
		i, ok := ruleIndex(o.Rules, id)
		if !ok {
			errs = append(errs, fmt.Errorf("%w %q", ErrUnknownRule, id))

			continue
		}

		o.Enabled.Disable(config.RuleFlag(i))
	}

	return errors.Join(errs...)
}

// ruleIndex returns the position of the rule with the given id or title.
func ruleIndex(rules []rule.Rule, id string) (int, bool) {
	for i, r := range rules {
		if d := r.Descriptor(); d.ID == id || d.Title == id {
			return i, true
		}
	}

	return -1, false
}
