// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/ordertree/counter"
)

// global totals for the allocator
var (
	totalNodes    counter.Counter // total nodes created
	releasedNodes counter.Counter // nodes detached from a tree
)

// NodeStatistics - allocator totals
type NodeStatistics struct {
	Created  uint64 `json:"created"`
	Released uint64 `json:"released"`
	Live     uint64 `json:"live"`
}

// NewNode - allocate a new leaf node
func NewNode(key Item) *Node {
	totalNodes.Increment()
	return &Node{
		key:     key,
		balance: 0,
	}
}

// Release - clear a node that has been spliced out of a tree
//
// released nodes are not reused, a stale handle may still refer to
// one of them
func Release(node *Node) {
	node.left = nil
	node.right = nil
	node.key = nil
	node.balance = 0
	releasedNodes.Increment()
}

// Statistics - read the allocator totals
func Statistics() NodeStatistics {
	created := totalNodes.Uint64()
	released := releasedNodes.Uint64()
	return NodeStatistics{
		Created:  created,
		Released: released,
		Live:     created - released,
	}
}
