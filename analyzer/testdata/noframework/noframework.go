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

// Package noframework declares look-alikes of the actor runtime that must not be reported.
package noframework

import (
	"context"
	"time"
)

type Ref struct{}

func (r *Ref) Tell(msg any, sender *Ref) {}

type Future struct{}

func (f *Future) ContinueWith(fn func(result any, err error)) {}

type Base struct{}

func (b *Base) Sender() *Ref { return nil }

func (b *Base) Self() *Ref { return nil }

func (b *Base) PreRestart(reason error, msg any) {}

func ReceiveAsync[T any](b *Base, handler func(ctx context.Context, msg T) error) {}

type Greeter struct{ Base }

func (g *Greeter) greet(f *Future) {
	f.ContinueWith(func(result any, err error) {
		g.Sender().Tell(result, g.Self())
	})

	ReceiveAsync(&g.Base, func(ctx context.Context, msg string) error {
		return nil
	})
}

func (g *Greeter) PreRestart(reason error, msg any) {
	time.Sleep(time.Millisecond)
}
