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

package builtins

import (
	"context"
	"time"

	"test/actorkit/actor"
	"test/actorkit/cluster/sharding"
)

type Counter struct {
	actor.Base
	counts map[string]int
	log    func(string)
}

type (
	add   struct{ key string }
	delay time.Duration
)

func (c *Counter) init() {
	actor.ReceiveAsync(&c.Base, func(ctx context.Context, msg add) error {
		c.counts[msg.key] = len(c.counts) + int(int64(3))
		c.log(string([]byte(msg.key)))

		return ctx.Err()
	})

	actor.Receive(&c.Base, func(msg delay) {
		d := time.Duration(msg)
		c.log(d.String())
		keys := make([]string, 0, cap([]int{}))
		_ = append(keys, "x")
	})
}

func (c *Counter) relay(f *actor.Future) {
	sender := c.Sender()
	f.ContinueWith(func(result any, err error) {
		s, _ := result.(string)
		c.log(string(rune(len(s))))
		sender.Tell(min(len(s), 3), c.Self())
	})
}

func (c *Counter) PreRestart(reason error, msg any) {
	clear(c.counts)
	print(len(c.counts))
	c.Base.PreRestart(reason, msg)
}

func (c *Counter) schedule(s actor.Scheduler) {
	next := func() time.Duration { return time.Duration(max(1, len(c.counts))) }
	s.ScheduleTellOnce(next(), &actor.Ref{}, add{}, nil)
}

var extractor = sharding.NewMessageExtractor(
	func(msg any) string { return string(rune(len(msg.(string)))) },
	func(msg any) any { return any(msg) },
	int(10),
)
