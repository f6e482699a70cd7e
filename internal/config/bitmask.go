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

// flags are the unsigned integer types usable as a set of single-bit options.
type flags interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// BitMask is a set of options of type T, each option being one bit.
type BitMask[T flags] struct {
	value T
}

// NewBitMask returns a [BitMask] with all given options enabled.
func NewBitMask[T flags](options ...T) BitMask[T] {
	var b BitMask[T]
	for _, o := range options {
		b.value |= o
	}

	return b
}

// Set enables or disables option.
func (b *BitMask[T]) Set(option T, enabled bool) {
	if enabled {
		b.value |= option
	} else {
		b.value &^= option
	}
}

// Enable turns option on.
func (b *BitMask[T]) Enable(option T) { b.Set(option, true) }

// Disable turns option off.
func (b *BitMask[T]) Disable(option T) { b.Set(option, false) }

// Enabled reports whether any bit of option is on.
func (b BitMask[T]) Enabled(option T) bool {
	return b.value&option != 0
}

// RuleFlags selects rules by their position in the rule list, so at most
// 64 rules can be configured.
type RuleFlags uint64

// RuleFlag returns the flag of the i-th rule.
func RuleFlag(i int) RuleFlags { return 1 << i }

// AllRules returns the flags of the first n rules.
func AllRules(n int) RuleFlags { return 1<<n - 1 }

// Config represents behavioral options of the analyzer.
type Config uint8

const (
	// IncludeGenerated reports findings in generated files.
	IncludeGenerated Config = 1 << iota
)
