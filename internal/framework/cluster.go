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

import "go/types"

// Cluster-sharding symbol names.
const (
	TypeMessageExtractor = "MessageExtractor"
	TypeShardEnvelope    = "ShardEnvelope"
	TypeStartEntity      = "StartEntity"

	MethodEntityID      = "EntityID"
	MethodEntityMessage = "EntityMessage"

	FuncNewMessageExtractor      = "NewMessageExtractor"
	FuncHashCodeMessageExtractor = "HashCodeMessageExtractor"
)

// ClusterContext is the typed view of the clustering support.
//
// No rule inspects cluster types yet; the view resolves the package version
// and type identities for rules that need to recognize cluster handles.
type ClusterContext struct{ *Framework }

// IsCluster reports whether t is the cluster extension.
func (c ClusterContext) IsCluster(t types.Type) bool { return c.IsType(t, "Cluster") }

// IsMember reports whether t is a cluster member.
func (c ClusterContext) IsMember(t types.Type) bool { return c.IsType(t, "Member") }

// ShardingContext is the typed view of the cluster-sharding support.
type ShardingContext struct{ *Framework }

// MessageExtractor returns the message extractor interface, or nil.
func (c ShardingContext) MessageExtractor() *types.Interface {
	tn := c.Type(TypeMessageExtractor)
	if tn == nil {
		return nil
	}

	iface, _ := tn.Type().Underlying().(*types.Interface)

	return iface
}

// IsReservedMessage reports whether t is a message type unwrapped by the sharding runtime itself.
func (c ShardingContext) IsReservedMessage(t types.Type) bool {
	return c.IsType(t, TypeShardEnvelope, TypeStartEntity)
}

// IsExtractionMethod reports whether name is one of the entity extraction methods.
func (ShardingContext) IsExtractionMethod(name string) bool {
	return name == MethodEntityID || name == MethodEntityMessage
}

// ExtractionArgs returns the argument positions of the entity extraction
// functions for a message extractor factory, or nil if obj is not a factory.
func (c ShardingContext) ExtractionArgs(obj types.Object) []int {
	switch {
	case c.Is(obj, FuncNewMessageExtractor):
		return []int{0, 1}

	case c.Is(obj, FuncHashCodeMessageExtractor):
		return []int{1, 2}

	default:
		return nil
	}
}

// ToolsContext is the typed view of the cluster-tools support.
//
// Like [ClusterContext], it is not consulted by any rule yet.
type ToolsContext struct{ *Framework }

// IsSingleton reports whether t is the cluster singleton manager.
func (c ToolsContext) IsSingleton(t types.Type) bool { return c.IsType(t, "Singleton") }

// IsMediator reports whether t is the distributed pub-sub mediator.
func (c ToolsContext) IsMediator(t types.Type) bool { return c.IsType(t, "Mediator") }
