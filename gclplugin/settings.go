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

package gclplugin

import "fillmore-labs.com/actorlint/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Framework is the import path prefix of the actor runtime.
	Framework *string `json:"framework,omitzero"`
	// Generated enables diagnostics in generated files.
	Generated *bool `json:"generated,omitzero"`
	// Config is the path of a TOML configuration file.
	Config *string `json:"config,omitzero"`
	// Disable lists the ids of rules to switch off.
	Disable []string `json:"disable,omitzero"`
}

// Options converts [Settings] into a list of [analyzer.Option] for the actorlint analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.Framework, analyzer.WithFramework)
	opts = appendOption(opts, s.Generated, analyzer.WithGenerated)
	opts = appendOption(opts, s.Config, analyzer.WithConfigFile)

	for _, id := range s.Disable {
		opts = append(opts, analyzer.WithRule(id, false))
	}

	return opts
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
