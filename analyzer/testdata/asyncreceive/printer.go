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
	"fmt"

	"test/actorkit/actor"
)

type Printer struct {
	actor.Base
}

type line struct{ text string }

func (p *Printer) init() {
	actor.ReceiveAsync(&p.Base, func(ctx context.Context, msg line) error { // want "Handler registered with ReceiveAsync never suspends; register it with Receive"
		fmt.Println(msg.text)

		return nil
	})
}
