// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"math"
)

// CheckOrder - true if every key is strictly greater than all keys
// in its left sub-tree and strictly less than all in its right
func CheckOrder(root *Node) bool {
	var previous Item
	stack := []*Node{}
	node := root

	for nil != node || len(stack) > 0 {
		if nil != node {
			stack = append(stack, node)
			node = node.left
			continue
		}
		n := len(stack) - 1
		node = stack[n]
		stack = stack[:n]

		if nil == node.key {
			return false
		}
		if nil != previous && previous.Compare(node.key) >= 0 {
			return false
		}
		previous = node.key
		node = node.right
	}
	return true
}

// Height - number of levels in a sub-tree, zero if empty
func Height(p *Node) int {
	if nil == p {
		return 0
	}
	l := Height(p.left)
	r := Height(p.right)
	if l > r {
		return 1 + l
	}
	return 1 + r
}

// Count - number of nodes in a sub-tree
func Count(p *Node) int {
	if nil == p {
		return 0
	}
	return 1 + Count(p.left) + Count(p.right)
}

// MaximumHeight - the height that a balanced tree of n nodes can
// never exceed: 1.44·log2(n+2)
func MaximumHeight(n int) float64 {
	return 1.44 * math.Log2(float64(n)+2)
}
