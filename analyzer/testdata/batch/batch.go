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

package batch

import (
	"time"

	"test/actorkit/actor"
)

type Pinger struct {
	actor.Base
}

type (
	ping struct{}
	pong struct{}
)

func (p *Pinger) start() {
	p.Context().Scheduler().ScheduleTellOnce(time.Second, p.Self(), ping{}, p.Self()) // want "ScheduleTellOnce sends a message to the actor itself"
}

func (p *Pinger) resume() {
	p.Context().Scheduler().ScheduleTellRepeatedly(time.Second, time.Second, p.Self(), pong{}, p.Self()) // want "ScheduleTellRepeatedly sends a message to the actor itself"
}
