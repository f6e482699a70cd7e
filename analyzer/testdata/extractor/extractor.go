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

package extractor

import (
	"hash/fnv"
	"strconv"

	"test/actorkit/cluster/sharding"
)

type Command struct {
	ID   string
	Body string
}

type extractor struct{ shards uint32 }

var _ sharding.MessageExtractor = extractor{}

func (extractor) EntityID(msg any) string {
	switch m := msg.(type) {
	case sharding.ShardEnvelope: // want "sharding.ShardEnvelope is unwrapped by the sharding runtime and never reaches the message extractor"
		return m.EntityID
	case Command:
		return m.ID
	}

	return ""
}

func (extractor) EntityMessage(msg any) any {
	if env, ok := msg.(sharding.ShardEnvelope); ok { // want "sharding.ShardEnvelope is unwrapped by the sharding runtime and never reaches the message extractor"
		return env.Message
	} else if cmd, ok := msg.(Command); ok {
		return cmd.Body
	}

	return msg
}

func (x extractor) ShardID(msg any) string {
	h := fnv.New32a()
	h.Write([]byte(x.EntityID(msg)))

	return strconv.FormatUint(uint64(h.Sum32()%x.shards), 10)
}

var byID = sharding.NewMessageExtractor(
	func(msg any) string {
		if cmd, ok := msg.(Command); ok {
			return cmd.ID
		} else if start, ok := msg.(sharding.StartEntity); ok { // want "sharding.StartEntity is unwrapped by the sharding runtime and never reaches the message extractor"
			return start.EntityID
		}

		return ""
	},
	func(msg any) any {
		switch msg.(type) {
		case Command, sharding.StartEntity: // want "sharding.StartEntity is unwrapped by the sharding runtime and never reaches the message extractor"
			return msg
		default:
			return nil
		}
	},
	10,
)

var hashed = sharding.HashCodeMessageExtractor(10,
	func(msg any) string {
		if _, ok := msg.(sharding.StartEntity); ok { // want "sharding.StartEntity is unwrapped by the sharding runtime and never reaches the message extractor"
			return ""
		}

		return msg.(Command).ID
	},
	func(msg any) any {
		if env, ok := msg.(*sharding.ShardEnvelope); ok { // want "sharding.ShardEnvelope is unwrapped by the sharding runtime and never reaches the message extractor"
			return env.Message
		} else {
			return msg
		}
	},
)

func unrelated(msg any) string {
	if env, ok := msg.(sharding.ShardEnvelope); ok {
		return env.EntityID
	}

	return ""
}
