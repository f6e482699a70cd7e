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

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrUnknownKey is returned for configuration files with unrecognized settings.
var ErrUnknownKey = errors.New("unknown configuration key")

// File is the content of a TOML configuration file:
//
//	framework = "github.com/actorkit/actorkit"
//	generated = false
//	disable   = ["AL1003"]
type File struct {
	// Framework is the import path prefix of the actor runtime.
	Framework string `toml:"framework"`

	// Generated enables diagnostics in generated files, when set.
	Generated *bool `toml:"generated"`

	// Disable lists the ids of rules to switch off.
	Disable []string `toml:"disable"`
}

// LoadFile reads the configuration file at path.
func LoadFile(path string) (File, error) {
	var cfg File

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return File{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}

		return File{}, fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}

	cfg.Framework = strings.TrimSpace(cfg.Framework)

	return cfg, nil
}
