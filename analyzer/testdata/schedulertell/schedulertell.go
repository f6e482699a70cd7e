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

package schedulertell

import (
	"time"

	"test/actorkit/actor"
)

type Ticker struct {
	actor.Base
}

type (
	tick  struct{}
	flush struct{}
)

// start begins ticking.
func (t *Ticker) start() {
	t.Context().Scheduler().ScheduleTellRepeatedly(time.Second, time.Minute, t.Self(), tick{}, t.Self()) // want "ScheduleTellRepeatedly sends a message to the actor itself; use the actor's timers instead"
}

type Flusher struct {
	actor.Base
	timers actor.TimerScheduler
}

func (f *Flusher) Timers() actor.TimerScheduler { return f.timers }

func (f *Flusher) SetTimers(t actor.TimerScheduler) { f.timers = t }

func (f *Flusher) schedule(ctx actor.Context) {
	ctx.Scheduler().ScheduleTellOnce(time.Second, f.Self(), flush{}, f.Self()) // want "ScheduleTellOnce sends a message to the actor itself; use the actor's timers instead"
}

func (f *Flusher) forward(ctx actor.Context, target *actor.Ref) {
	ctx.Scheduler().ScheduleTellOnce(time.Second, target, flush{}, f.Self())
}

func schedule(a *Ticker) {
	a.Context().Scheduler().ScheduleTellOnce(time.Second, a.Self(), tick{}, a.Self()) // want "ScheduleTellOnce sends a message to the actor itself; use the actor's timers instead"
}
