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

package asyncreceive

import (
	"context"
	"errors"

	"test/actorkit/actor"
)

type Counter struct {
	actor.Base
	count int
	ch    chan int
}

type (
	increment struct{ n int }
	reset     struct{ force bool }
	fail      struct{}
	fetch     struct{}
	drain     struct{}
)

func (c *Counter) init() {
	actor.ReceiveAsync(&c.Base, func(ctx context.Context, msg increment) error { // want "Handler registered with ReceiveAsync never suspends; register it with Receive"
		c.count += msg.n
		return nil
	})

	actor.ReceiveWhenAsync(&c.Base, func(msg reset) bool { return msg.force }, func(_ context.Context, msg reset) error { // want "Handler registered with ReceiveWhenAsync never suspends; register it with ReceiveWhen"
		if c.count == 0 {
			return nil
		}

		c.count = 0

		return nil
	})

	actor.ReceiveAsync(&c.Base, func(ctx context.Context, msg fail) error { // want "Handler registered with ReceiveAsync never suspends; register it with Receive"
		return errors.New("failed")
	})

	actor.ReceiveAsync(&c.Base, func(ctx context.Context, msg fetch) error {
		<-c.ch

		return nil
	})

	actor.ReceiveAsync(&c.Base, func(ctx context.Context, msg drain) error {
		for range c.ch {
			c.count--
		}

		return ctx.Err()
	})
}
