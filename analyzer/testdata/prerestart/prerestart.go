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

package prerestart

import (
	"time"

	"test/actorkit/actor"
)

type Worker struct {
	actor.Base
	timers actor.TimerScheduler
}

func (w *Worker) Timers() actor.TimerScheduler { return w.timers }

func (w *Worker) SetTimers(t actor.TimerScheduler) { w.timers = t }

type (
	tick struct{}
	poll struct{}
)

func (w *Worker) PreRestart(reason error, msg any) {
	w.Timers().StartPeriodicTimer("tick", tick{}, time.Second) // want "Timers started in PreRestart are cancelled by the restart; start them in PostRestart"

	w.Base.PreRestart(reason, msg)
}

type Poller struct {
	actor.Base
	timers actor.TimerScheduler
	delay  time.Duration
}

func (p *Poller) Timers() actor.TimerScheduler { return p.timers }

func (p *Poller) SetTimers(t actor.TimerScheduler) { p.timers = t }

func (p *Poller) AroundPreRestart(reason error, msg any) {
	p.Base.AroundPreRestart(reason, msg)
	p.schedule() // want "Timers started in AroundPreRestart are cancelled by the restart; start them in PostRestart"
}

func (p *Poller) PostRestart(reason error) {
	p.Base.PostRestart(reason)
}

func (p *Poller) schedule() {
	p.Timers().StartSingleTimer("poll", poll{}, p.delay)
}

type Retrier struct {
	actor.Base
	timers actor.TimerScheduler
}

func (r *Retrier) Timers() actor.TimerScheduler { return r.timers }

func (r *Retrier) SetTimers(t actor.TimerScheduler) { r.timers = t }

func (r *Retrier) PreRestart(reason error, msg any) {
	r.Timers().StartSingleTimer(msg, reason, time.Second) // want "Timers started in PreRestart are cancelled by the restart; start them in PostRestart"
}

func (r *Retrier) PostRestart(reason error) {
	r.Timers().StartPeriodicTimer("retry", tick{}, time.Minute)
}

func (r *Retrier) Restart(reason error) {
	r.Timers().StartSingleTimer("other", tick{}, time.Second)
}

type Beacon struct {
	actor.Base
	timers actor.TimerScheduler
}

func (b *Beacon) Timers() actor.TimerScheduler { return b.timers }

func (b *Beacon) SetTimers(t actor.TimerScheduler) { b.timers = t }

func (b *Beacon) PreRestart(reason error, msg any) {
	b.Base.PreRestart(reason, msg)
	b.Timers().StartSingleTimer("beacon", tick{}, time.Second) // want "Timers started in PreRestart are cancelled by the restart; start them in PostRestart"
}

func (b *Beacon) PostRestart(reason error) { b.Base.PostRestart(reason) }

type Standalone struct {
	timers actor.TimerScheduler
}

func (s *Standalone) PreRestart(reason error, msg any) {
	s.timers.StartSingleTimer("standalone", tick{}, time.Second)
}

type Base struct{}

func (Base) PreRestart(reason error, msg any) {}

type Imposter struct {
	Base
	timers actor.TimerScheduler
}

func (i *Imposter) PreRestart(reason error, msg any) {
	i.timers.StartSingleTimer("imposter", tick{}, time.Second)
}
