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

// Package fix builds the suggested repairs for actorlint diagnostics.
//
// Repairs are computed against the pass's syntax tree and expressed as
// [analysis.TextEdit]s anchored at node positions, so independent repairs for
// the same file compose. A builder that does not find the shape it expects
// returns nil: repairs are all-or-nothing.
package fix

import (
	"slices"

	"golang.org/x/tools/go/analysis"
)

// Kind identifies a repair action. Its String method returns a stable,
// machine-readable key.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// KindIntroduceLocal captures a live property in a local variable before an async boundary.
	KindIntroduceLocal Kind = iota // introduce-local-sender

	// KindDiscardAwait stops waiting for a future and discards it instead.
	KindDiscardAwait // discard-graceful-stop

	// KindDowngradeReceive replaces an asynchronous receive registration with its synchronous counterpart.
	KindDowngradeReceive // downgrade-receive

	// KindMoveToPostRestart moves statements from a "before restart" callback to PostRestart.
	KindMoveToPostRestart // move-to-post-restart

	// KindMigrateToTimers replaces a scheduler tell with the timer capability.
	KindMigrateToTimers // migrate-to-timers

	// KindRemoveBranch removes a conditional branch handling a reserved message.
	KindRemoveBranch // remove-reserved-branch
)

var titles = [...]string{
	KindIntroduceLocal:    "Capture the sender in a local variable before the continuation",
	KindDiscardAwait:      "Don't wait for the actor's own graceful stop",
	KindDowngradeReceive:  "Register a synchronous handler instead",
	KindMoveToPostRestart: "Move timer setup to PostRestart",
	KindMigrateToTimers:   "Use the actor's timers instead of the scheduler",
	KindRemoveBranch:      "Remove the branch handling a reserved message",
}

// Title returns the human-readable title of the repair.
func (k Kind) Title() string {
	if int(k) < len(titles) {
		return titles[k]
	}

	return k.String()
}

// Fix is a repair for one diagnostic.
type Fix struct {
	Kind  Kind
	Edits []analysis.TextEdit
}

// Suggested converts the repair into an [analysis.SuggestedFix]. The message
// is prefixed with the repair's key in brackets.
func (f *Fix) Suggested() analysis.SuggestedFix {
	return analysis.SuggestedFix{Message: "[" + f.Kind.String() + "] " + f.Kind.Title(), TextEdits: f.Edits}
}

// With returns the repair extended by edits. A nil repair stays nil.
func (f *Fix) With(edits ...analysis.TextEdit) *Fix {
	if f == nil || len(edits) == 0 {
		return f
	}

	return &Fix{Kind: f.Kind, Edits: append(slices.Clip(f.Edits), edits...)}
}

// newFix returns a [Fix], or nil when there are no edits.
func newFix(kind Kind, edits ...analysis.TextEdit) *Fix {
	if len(edits) == 0 {
		return nil
	}

	return &Fix{Kind: kind, Edits: edits}
}
