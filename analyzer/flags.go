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
	"flag"

	"fillmore-labs.com/actorlint/internal/config"
)

// registerFlags binds the [runOptions] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(r *runOptions, flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(NewBehaviorValue(&r.engine.Behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.StringVar(&r.engine.Framework, "framework", r.engine.Framework, "import path prefix of the actor runtime")
	flags.StringVar(&r.configFile, "config", r.configFile, "read settings from a TOML `file`")
	flags.Var(&r.disable, "disable", "comma-separated list of rule `ids` to disable")

	for i, rl := range r.engine.Rules {
		d := rl.Descriptor()
		flags.Var(NewRuleValue(&r.engine.Enabled, config.RuleFlag(i)), d.ID, "enable "+d.Title+" checks")
	}
}
