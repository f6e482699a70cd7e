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
	"fmt"
	"log/slog"

	"fillmore-labs.com/actorlint/internal/config"
)

// Option configures specific behavior of a [New] actorlint analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.engine.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithFramework is an [Option] to configure the import path prefix of the actor runtime.
func WithFramework(root string) Option { return frameworkOption{root: root} }

type frameworkOption struct{ root string }

func (o frameworkOption) apply(r *runOptions) {
	r.engine.Framework = o.root
}

func (o frameworkOption) LogAttr() slog.Attr {
	return slog.String("framework", o.root)
}

// WithRule is an [Option] to enable or disable the rule with the given id, e.g. "AL1003".
func WithRule(id string, enabled bool) Option { return ruleOption{id: id, enabled: enabled} }

type ruleOption struct {
	id      string
	enabled bool
}

func (o ruleOption) apply(r *runOptions) {
	i, ok := ruleIndex(r.engine.Rules, o.id)
	if !ok {
		r.errs = append(r.errs, fmt.Errorf("%w %q", ErrUnknownRule, o.id))

		return
	}

	r.engine.Enabled.Set(config.RuleFlag(i), o.enabled)
}

func (o ruleOption) LogAttr() slog.Attr {
	return slog.Bool(o.id, o.enabled)
}

// WithConfigFile is an [Option] to read additional settings from a TOML file.
func WithConfigFile(path string) Option { return configFileOption{path: path} }

type configFileOption struct{ path string }

func (o configFileOption) apply(r *runOptions) {
	r.configFile = o.path
}

func (o configFileOption) LogAttr() slog.Attr {
	return slog.String("config", o.path)
}
