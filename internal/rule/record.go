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

import (
	"fmt"
	"go/token"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/actorlint/internal/fix"
)

// Record is one finding of a rule.
type Record struct {
	Rule     Descriptor
	Pos, End token.Pos

	// Args are the positional arguments of the rule's message template.
	Args []any

	// Properties carry auxiliary data for repairs that is not part of the message.
	Properties map[string]string

	Related []analysis.RelatedInformation

	// Fix is the suggested repair, if one could be computed.
	Fix *fix.Fix
}

// Message renders the human-readable message, tagged with the rule id.
func (r Record) Message() string {
	return fmt.Sprintf(r.Rule.Message, r.Args...) + " (" + r.Rule.ID + ")"
}

// Diagnostic converts the record into an [analysis.Diagnostic].
func (r Record) Diagnostic() analysis.Diagnostic {
	d := analysis.Diagnostic{
		Pos:      r.Pos,
		End:      r.End,
		Category: r.Rule.ID,
		Message:  r.Message(),
		Related:  r.Related,
	}

	if r.Fix != nil && len(r.Fix.Edits) > 0 {
		d.SuggestedFixes = []analysis.SuggestedFix{r.Fix.Suggested()}
	}

	return d
}
