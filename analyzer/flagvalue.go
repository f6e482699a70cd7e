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
	"strconv"
	"strings"

	"fillmore-labs.com/actorlint/internal/config"
)

type boolValue[F any, B boolFlag[F]] struct {
	flags B
	value F
}

type boolFlag[F any] interface {
	comparable
	Set(flag F, value bool)
	Enabled(flag F) bool
}

// NewRuleValue returns a boolean [flag.Value] enabling a single rule.
func NewRuleValue(rules *config.BitMask[config.RuleFlags], value config.RuleFlags) interface {
	Set(s string) error
	String() string
	Get() any
	IsBoolFlag() bool
} {
	return boolValue[config.RuleFlags, *config.BitMask[config.RuleFlags]]{flags: rules, value: value}
}

// NewBehaviorValue returns a boolean [flag.Value] for a behavioral option.
func NewBehaviorValue(behavior *config.BitMask[config.Config], value config.Config) interface {
	Set(s string) error
	String() string
	Get() any
	IsBoolFlag() bool
} {
	return boolValue[config.Config, *config.BitMask[config.Config]]{flags: behavior, value: value}
}

// Set implements [flag.Value].
func (f boolValue[_, B]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.flags.Set(f.value, b)

	return nil
}

// String implements [flag.Value].
func (f boolValue[_, B]) String() string {
	var null B
	if f.flags == null {
		return "false"
	}

	return strconv.FormatBool(f.flags.Enabled(f.value))
}

// Get implements [flag.Getter].
func (f boolValue[_, B]) Get() any {
	var null B
	if f.flags == null {
		return false
	}

	return f.flags.Enabled(f.value)
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (f boolValue[_, _]) IsBoolFlag() bool { return true }

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}

// ruleList is a comma-separated list of rule ids, accumulated over repeated flags.
type ruleList []string

// Set implements [flag.Value].
func (l *ruleList) Set(s string) error {
	for id := range strings.SplitSeq(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			*l = append(*l, id)
		}
	}

	return nil
}

// String implements [flag.Value].
func (l *ruleList) String() string {
	if l == nil {
		return ""
	}

	return strings.Join(*l, ",")
}
