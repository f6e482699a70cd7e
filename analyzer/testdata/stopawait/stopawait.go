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

package stopawait

import (
	"context"
	"time"

	"test/actorkit/actor"
)

type Stopper struct {
	actor.Base
}

type (
	stop     struct{}
	shutdown struct{}
	halt     struct{}
	other    struct{ ref *actor.Ref }
)

func (s *Stopper) init() {
	actor.ReceiveAsync(&s.Base, func(ctx context.Context, msg stop) error {
		return s.Self().GracefulStop(time.Second).Wait() // want "Waiting for the actor's own graceful stop inside an asynchronous handler never completes"
	})

	actor.ReceiveAsync(&s.Base, func(ctx context.Context, msg shutdown) error {
		s.Self().GracefulStop(time.Second).Wait() // want "Waiting for the actor's own graceful stop inside an asynchronous handler never completes"
		return ctx.Err()
	})

	actor.ReceiveAsync(&s.Base, s.onHalt)

	actor.ReceiveAsync(&s.Base, func(ctx context.Context, msg other) error {
		return msg.ref.GracefulStop(time.Second).Wait()
	})

	actor.ReceiveAsync(&s.Base, func(ctx context.Context, msg stop) error {
		go func() {
			_ = s.Self().GracefulStop(time.Second).Wait()
		}()

		return ctx.Err()
	})
}

func (s *Stopper) onHalt(ctx context.Context, msg halt) error {
	_, err := s.Self().GracefulStop(time.Second).Await(ctx) // want "Waiting for the actor's own graceful stop inside an asynchronous handler never completes"

	return err
}

type pause struct{}

type lookalike struct{}

func (l *lookalike) Self() *lookalike { return l }

func (l *lookalike) GracefulStop(timeout time.Duration) *lookalike { return l }

func (l *lookalike) Wait() error { return nil }

var mirror = &lookalike{}

func (s *Stopper) lookalikes() {
	actor.ReceiveAsync(&s.Base, func(ctx context.Context, msg pause) error {
		_ = mirror.Self().GracefulStop(time.Second).Wait()

		return ctx.Err()
	})
}
