// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// Step - an ancestor and the direction taken from it
type Step struct {
	Node *Node
	Dir  Direction
}

// Path - the ancestors visited while descending, root first
//
// a path belongs to a single call and is never stored in a node
type Path []Step

// initial capacity, enough for a balanced tree of about a million nodes
const pathCapacity = 32

// NewPath - create an empty path
func NewPath() Path {
	return make(Path, 0, pathCapacity)
}

// Push - record a step
func (path *Path) Push(node *Node, d Direction) {
	*path = append(*path, Step{Node: node, Dir: d})
}

// Pop - remove and return the deepest step
func (path *Path) Pop() (Step, bool) {
	n := len(*path)
	if 0 == n {
		return Step{}, false
	}
	s := (*path)[n-1]
	*path = (*path)[:n-1]
	return s, true
}

// Last - the deepest step without removing it
func (path Path) Last() (Step, bool) {
	if 0 == len(path) {
		return Step{}, false
	}
	return path[len(path)-1], true
}

// Relink - attach subtree below the deepest step
//
// returns the root of the whole tree: unchanged if the path has an
// ancestor to link to, otherwise subtree becomes the new root
func (path Path) Relink(root *Node, subtree *Node) *Node {
	s, ok := path.Last()
	if !ok {
		return subtree
	}
	s.Node.SetChild(s.Dir, subtree)
	return root
}
