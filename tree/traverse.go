// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// true if node holds target; a nil target never matches
func matches(node *Node, target Item) bool {
	return nil != target && 0 == node.key.Compare(target)
}

// DepthFirstSearch - pre-order walk that stops at target
//
// returns the keys visited before target was reached, the matching
// key is not included; if target is absent (or nil) the whole
// pre-order sequence is returned
func DepthFirstSearch(root *Node, target Item) []Item {
	if nil == root {
		return nil
	}

	stack := []*Node{root}
	visited := []Item{}

	for len(stack) > 0 {
		n := len(stack) - 1
		node := stack[n]
		stack = stack[:n]

		if matches(node, target) {
			break
		}
		visited = append(visited, node.key)

		// right first so that left is popped first
		if nil != node.right {
			stack = append(stack, node.right)
		}
		if nil != node.left {
			stack = append(stack, node.left)
		}
	}
	return visited
}

// BreadthFirstSearch - level order walk that stops at target
//
// same result rules as DepthFirstSearch
func BreadthFirstSearch(root *Node, target Item) []Item {
	if nil == root {
		return nil
	}

	queue := []*Node{root}
	visited := []Item{}

	for head := 0; head < len(queue); head += 1 {
		node := queue[head]
		queue[head] = nil

		if matches(node, target) {
			break
		}
		visited = append(visited, node.key)

		if nil != node.left {
			queue = append(queue, node.left)
		}
		if nil != node.right {
			queue = append(queue, node.right)
		}
	}
	return visited
}

// TraverseInOrder - all keys in ascending order
func TraverseInOrder(root *Node) []Item {
	keys := []Item{}
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

		keys = append(keys, node.key)
		node = node.right
	}
	return keys
}
