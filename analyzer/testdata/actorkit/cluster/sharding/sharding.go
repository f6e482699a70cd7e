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

// Package sharding is a minimal cluster sharding stub for analyzer tests.
package sharding

const Version = "1.6.0"

type ShardEnvelope struct {
	EntityID string
	Message  any
}

type StartEntity struct{ EntityID string }

type MessageExtractor interface {
	EntityID(msg any) string
	EntityMessage(msg any) any
	ShardID(msg any) string
}

func NewMessageExtractor(entityID func(msg any) string, entityMessage func(msg any) any, shards int) MessageExtractor {
	return nil
}

func HashCodeMessageExtractor(shards int, entityID func(msg any) string, entityMessage func(msg any) any) MessageExtractor {
	return nil
}
