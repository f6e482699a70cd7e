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

// Package analyzer implements the actorlint static analysis pass.
//
// # Overview
//
// actorlint reports code that misuses an actor framework: state of the current
// message read from continuations, self-deadlocking graceful stops, needless
// asynchronous handlers, scheduler tells that should be timers, timers started
// before a restart and message extractors handling messages the sharding
// runtime consumes itself. Most diagnostics come with a suggested fix.
//
// # Example
//
// Before:
//
//	func (a *Greeter) greet(f *actor.Future) {
//	    f.ContinueWith(func(result any, err error) {
//	        a.Sender().Tell(result, a.Self()) // sender of a later message
//	    })
//	}
//
// After applying actorlint's suggested fix:
//
//	func (a *Greeter) greet(f *actor.Future) {
//	    sender := a.Sender()
//	    f.ContinueWith(func(result any, err error) {
//	        sender.Tell(result, a.Self())
//	    })
//	}
//
// # Rules
//
//   - AL1001 sender-in-continuation
//   - AL1002 await-self-stop-in-async-handler
//   - AL1003 async-handler-without-suspension
//   - AL1004 scheduler-tell-to-self
//   - AL1007 timers-in-pre-restart
//   - AL2001 reserved-message-in-extractor
//
// Rules are switched off with -disable=AL1003 or -AL1003=false, or with a
// TOML file passed as -config. Diagnostics are silenced with a
// //nolint:actorlint or //nolint:AL1001 comment.
package analyzer
