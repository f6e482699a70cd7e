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

package rule

// Severity is the default severity of a diagnostic rule.
type Severity uint8

//go:generate go tool stringer -type Severity,Category -linecomment
const (
	// SeverityInfo marks suggestions.
	SeverityInfo Severity = iota // info

	// SeverityWarning marks likely bugs.
	SeverityWarning // warning

	// SeverityError marks definite bugs.
	SeverityError // error
)

// Category groups rules by the numbering of their ids.
type Category uint8

const (
	// CategoryDesign is the 1000-series: actor lifecycle and design rules.
	CategoryDesign Category = iota // design

	// CategoryUsage is the 2000-series: framework API usage rules.
	CategoryUsage // usage
)

// Descriptor describes one diagnostic rule.
type Descriptor struct {
	// ID is the stable rule id, e.g. "AL1001".
	ID string

	// Title is a short human-readable name.
	Title string

	Category Category
	Severity Severity

	// Message is a [fmt.Sprintf] template for the diagnostic text.
	Message string
}
