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

// Package actor is a minimal actor runtime for analyzer tests.
package actor

import (
	"context"
	"time"
)

const Version = "1.6.0"

type Ref struct{ name string }

func (r *Ref) Tell(msg any, sender *Ref) {}

func (r *Ref) GracefulStop(timeout time.Duration) *Future { return &Future{} }

type Future struct{}

func (f *Future) ContinueWith(fn func(result any, err error)) {}

func (f *Future) PipeTo(target *Ref) {}

func (f *Future) Wait() error { return nil }

func (f *Future) Await(ctx context.Context) (any, error) { return nil, nil }

type Context interface {
	Sender() *Ref
	Self() *Ref
	ReenterAfter(f *Future, fn func(result any, err error))
	Scheduler() Scheduler
}

type Scheduler interface {
	ScheduleTellOnce(delay time.Duration, receiver *Ref, msg any, sender *Ref)
	ScheduleTellRepeatedly(initial, interval time.Duration, receiver *Ref, msg any, sender *Ref)
}

type TimerScheduler interface {
	StartSingleTimer(key, msg any, timeout time.Duration)
	StartPeriodicTimer(key, msg any, interval time.Duration)
	StartPeriodicTimerWithDelay(key, msg any, initial, interval time.Duration)
	Cancel(key any)
}

type WithTimers interface {
	Timers() TimerScheduler
	SetTimers(t TimerScheduler)
}

type Base struct{ ctx Context }

func (b *Base) Context() Context { return b.ctx }

func (b *Base) Sender() *Ref { return b.ctx.Sender() }

func (b *Base) Self() *Ref { return b.ctx.Self() }

func (b *Base) PreRestart(reason error, msg any) {}

func (b *Base) AroundPreRestart(reason error, msg any) {}

func (b *Base) PostRestart(reason error) {}

func Receive[T any](b *Base, handler func(msg T)) {}

func ReceiveWhen[T any](b *Base, pred func(msg T) bool, handler func(msg T)) {}

func ReceiveAsync[T any](b *Base, handler func(ctx context.Context, msg T) error) {}

func ReceiveWhenAsync[T any](b *Base, pred func(msg T) bool, handler func(ctx context.Context, msg T) error) {}
