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

package sender

import "test/actorkit/actor"

type Greeter struct {
	actor.Base
}

type greeting struct{ name string }

func (g *Greeter) greet(f *actor.Future) {
	f.ContinueWith(func(result any, err error) { // want "Sender accessed inside the continuation passed to ContinueWith"
		g.Sender().Tell(result, g.Self())
	})
}

func (g *Greeter) relay(ctx actor.Context, f *actor.Future, sender *actor.Ref) {
	ctx.ReenterAfter(f, func(result any, err error) { // want "Sender accessed inside the continuation passed to ReenterAfter"
		if err != nil {
			ctx.Sender().Tell(err, sender)

			return
		}

		sender.Tell(result, ctx.Sender())
	})
}

func (g *Greeter) captured(f *actor.Future) {
	sender := g.Sender()
	f.ContinueWith(func(result any, err error) {
		sender.Tell(result, g.Self())
	})
}

func (g *Greeter) outside(f *actor.Future) {
	g.Sender().Tell(greeting{name: "hello"}, g.Self())
	f.PipeTo(g.Self())
}

func (g *Greeter) suppressed(f *actor.Future) {
	f.ContinueWith(func(result any, err error) { //nolint:AL1001
		g.Sender().Tell(result, g.Self())
	})
}
