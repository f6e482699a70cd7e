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

// Package checks implements the actorlint rules.
//
// Rule ids are stable and sparse: AL1xxx are actor design rules, AL2xxx are
// framework API usage rules.
package checks

import (
	"context"

	"fillmore-labs.com/actorlint/internal/framework"
	"fillmore-labs.com/actorlint/internal/rule"
)

// check is a [rule.Rule] assembled from a descriptor, a gate and an analysis function.
type check struct {
	desc    rule.Descriptor
	gate    rule.Gate
	analyze func(ctx context.Context, p *rule.Pass) error
}

func (c check) Descriptor() rule.Descriptor { return c.desc }

func (c check) ShouldAnalyze(fw *framework.Context) bool { return c.gate(fw) }

func (c check) Analyze(ctx context.Context, p *rule.Pass) error { return c.analyze(ctx, p) }

// All returns the rules in id order.
func All() []rule.Rule {
	return []rule.Rule{
		check{SenderInContinuation, rule.RequireCore, analyzeSender},
		check{AwaitSelfStop, rule.RequireCore, analyzeStopAwait},
		check{AsyncWithoutSuspension, rule.RequireCore, analyzeAsyncReceive},
		check{SchedulerTellToSelf, rule.RequireCore, analyzeSchedulerTell},
		check{TimersInPreRestart, rule.RequireCore, analyzePreRestart},
		check{ReservedMessageInExtractor, rule.RequireVersion(framework.Sharding, ShardingReservedSince), analyzeExtractor},
	}
}

// ShardingReservedSince is the first cluster-sharding version that unwraps reserved messages itself.
var ShardingReservedSince = framework.MustParseVersion("1.5.15")

// Rule descriptors.
var (
	SenderInContinuation = rule.Descriptor{
		ID:       "AL1001",
		Title:    "sender-in-continuation",
		Category: rule.CategoryDesign,
		Severity: rule.SeverityError,
		Message:  "Sender accessed inside the continuation passed to %s; capture it in a local variable before the call",
	}

	AwaitSelfStop = rule.Descriptor{
		ID:       "AL1002",
		Title:    "await-self-stop-in-async-handler",
		Category: rule.CategoryDesign,
		Severity: rule.SeverityError,
		Message:  "Waiting for the actor's own graceful stop inside an asynchronous handler never completes",
	}

	AsyncWithoutSuspension = rule.Descriptor{
		ID:       "AL1003",
		Title:    "async-handler-without-suspension",
		Category: rule.CategoryDesign,
		Severity: rule.SeverityInfo,
		Message:  "Handler registered with %s never suspends; register it with %s",
	}

	SchedulerTellToSelf = rule.Descriptor{
		ID:       "AL1004",
		Title:    "scheduler-tell-to-self",
		Category: rule.CategoryDesign,
		Severity: rule.SeverityWarning,
		Message:  "%s sends a message to the actor itself; use the actor's timers instead",
	}

	TimersInPreRestart = rule.Descriptor{
		ID:       "AL1007",
		Title:    "timers-in-pre-restart",
		Category: rule.CategoryDesign,
		Severity: rule.SeverityWarning,
		Message:  "Timers started in %s are cancelled by the restart; start them in PostRestart",
	}

	ReservedMessageInExtractor = rule.Descriptor{
		ID:       "AL2001",
		Title:    "reserved-message-in-extractor",
		Category: rule.CategoryUsage,
		Severity: rule.SeverityWarning,
		Message:  "%s is unwrapped by the sharding runtime and never reaches the message extractor",
	}
)
