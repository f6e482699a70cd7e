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

package framework

import (
	"go/types"
	"strings"
)

// Core runtime symbol names.
const (
	TypeBase           = "Base"
	TypeContext        = "Context"
	TypeFuture         = "Future"
	TypeRef            = "Ref"
	TypeScheduler      = "Scheduler"
	TypeTimerScheduler = "TimerScheduler"
	TypeWithTimers     = "WithTimers"

	MethodPreRestart       = "PreRestart"
	MethodAroundPreRestart = "AroundPreRestart"
	MethodPostRestart      = "PostRestart"

	MethodScheduleTellOnce       = "ScheduleTellOnce"
	MethodScheduleTellRepeatedly = "ScheduleTellRepeatedly"

	MethodStartSingleTimer            = "StartSingleTimer"
	MethodStartPeriodicTimer          = "StartPeriodicTimer"
	MethodStartPeriodicTimerWithDelay = "StartPeriodicTimerWithDelay"

	FuncReceive          = "Receive"
	FuncReceiveWhen      = "ReceiveWhen"
	FuncReceiveAsync     = "ReceiveAsync"
	FuncReceiveWhenAsync = "ReceiveWhenAsync"

	// AsyncSuffix marks asynchronous receive registrations.
	AsyncSuffix = "Async"
)

// CoreContext is the typed view of the core actor runtime.
type CoreContext struct{ *Framework }

// IsSender reports whether obj is the accessor for the sender of the current message.
func (c CoreContext) IsSender(obj types.Object) bool {
	return c.Is(obj, "Context.Sender", "Base.Sender")
}

// IsSelf reports whether obj is an accessor for the actor's own reference.
func (c CoreContext) IsSelf(obj types.Object) bool {
	return c.Is(obj, "Context.Self", "Base.Self")
}

// IsContinuation reports whether obj schedules a continuation on a pending future.
func (c CoreContext) IsContinuation(obj types.Object) bool {
	return c.Is(obj, "Future.ContinueWith", "Future.PipeTo", "Context.ReenterAfter")
}

// IsGracefulStop reports whether obj is the asynchronous graceful stop of a reference.
func (c CoreContext) IsGracefulStop(obj types.Object) bool {
	return c.Is(obj, "Ref.GracefulStop")
}

// IsAwait reports whether obj blocks until a future completes.
func (c CoreContext) IsAwait(obj types.Object) bool {
	return c.Is(obj, "Future.Wait", "Future.Await")
}

// IsAsyncReceive reports whether obj registers an asynchronous message handler.
func (c CoreContext) IsAsyncReceive(obj types.Object) bool {
	return c.Is(obj, FuncReceiveAsync, FuncReceiveWhenAsync)
}

// SyncReceive returns the synchronous counterpart of an asynchronous receive registration, or nil.
func (c CoreContext) SyncReceive(async *types.Func) *types.Func {
	if async == nil || !c.IsAsyncReceive(async) {
		return nil
	}

	return c.Func(strings.TrimSuffix(async.Name(), AsyncSuffix))
}

// PreRestartMethods returns the resolved "before restart" lifecycle callbacks.
func (c CoreContext) PreRestartMethods() []*types.Func {
	var methods []*types.Func

	for _, name := range [...]string{MethodPreRestart, MethodAroundPreRestart} {
		if fn := c.Func(TypeBase + "." + name); fn != nil {
			methods = append(methods, fn)
		}
	}

	return methods
}

// PostRestart returns the "after restart" lifecycle callback, or nil.
func (c CoreContext) PostRestart() *types.Func {
	return c.Func(TypeBase + "." + MethodPostRestart)
}

// IsTimerCall reports whether obj starts a timer on the timer capability.
func (c CoreContext) IsTimerCall(obj types.Object) bool {
	return c.Is(obj,
		TypeTimerScheduler+"."+MethodStartSingleTimer,
		TypeTimerScheduler+"."+MethodStartPeriodicTimer,
		TypeTimerScheduler+"."+MethodStartPeriodicTimerWithDelay)
}

// IsLegacySchedule reports whether obj is a scheduler tell API superseded by timers.
func (c CoreContext) IsLegacySchedule(obj types.Object) bool {
	return c.Is(obj,
		TypeScheduler+"."+MethodScheduleTellOnce,
		TypeScheduler+"."+MethodScheduleTellRepeatedly)
}

// Base returns the embeddable actor base type, or nil.
func (c CoreContext) Base() *types.TypeName { return c.Type(TypeBase) }

// WithTimers returns the timer capability interface, or nil.
func (c CoreContext) WithTimers() *types.Interface {
	tn := c.Type(TypeWithTimers)
	if tn == nil {
		return nil
	}

	iface, _ := tn.Type().Underlying().(*types.Interface)

	return iface
}
