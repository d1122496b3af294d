// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// Edge - a parent to child link for an external renderer
type Edge struct {
	Parent Item      `json:"parent"`
	Child  Item      `json:"child"`
	Side   Direction `json:"side"`
}

// Edges - every link in breadth-first order, left before right
//
// an empty tree or a single node has no edges and returns nil
func Edges(root *Node) []Edge {
	if nil == root {
		return nil
	}

	var edges []Edge
	queue := []*Node{root}

	for head := 0; head < len(queue); head += 1 {
		node := queue[head]
		queue[head] = nil

		if nil != node.left {
			queue = append(queue, node.left)
			edges = append(edges, Edge{Parent: node.key, Child: node.left.key, Side: Left})
		}
		if nil != node.right {
			queue = append(queue, node.right)
			edges = append(edges, Edge{Parent: node.key, Child: node.right.key, Side: Right})
		}
	}
	return edges
}
