// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"io"
)

// Tree - operations common to every tree variant
//
// Insert and Delete return the handle that replaces the receiver;
// the receiver must not be used again after a mutating call.
type Tree interface {
	Insert(key Item) (Tree, bool)
	Delete(key Item) (Tree, bool)

	Search(key Item) (bool, int)
	TraverseInOrder() []Item
	DepthFirstSearch(target Item) []Item
	BreadthFirstSearch(target Item) []Item
	Edges() []Edge

	Root() *Node
	IsEmpty() bool
	Count() int
	Height() int
	Check() bool
	Print(w io.Writer, showBalance bool) int
}

// Handle - root node and size of a tree, embedded by each variant
// to supply the read-only operations
type Handle struct {
	root  *Node
	count int
}

// NewHandle - wrap a root node
func NewHandle(root *Node, count int) Handle {
	return Handle{
		root:  root,
		count: count,
	}
}

// Root - return the root node of the tree
func (h Handle) Root() *Node {
	return h.root
}

// IsEmpty - true if tree contains no data
func (h Handle) IsEmpty() bool {
	return nil == h.root
}

// Count - number of nodes currently in the tree
func (h Handle) Count() int {
	return h.count
}

// Height - number of levels
func (h Handle) Height() int {
	return Height(h.root)
}

// Search - see Search
func (h Handle) Search(key Item) (bool, int) {
	return Search(h.root, key)
}

// TraverseInOrder - see TraverseInOrder
func (h Handle) TraverseInOrder() []Item {
	return TraverseInOrder(h.root)
}

// DepthFirstSearch - see DepthFirstSearch
func (h Handle) DepthFirstSearch(target Item) []Item {
	return DepthFirstSearch(h.root, target)
}

// BreadthFirstSearch - see BreadthFirstSearch
func (h Handle) BreadthFirstSearch(target Item) []Item {
	return BreadthFirstSearch(h.root, target)
}

// Edges - see Edges
func (h Handle) Edges() []Edge {
	return Edges(h.root)
}

// Print - see Print
func (h Handle) Print(w io.Writer, showBalance bool) int {
	return Print(w, h.root, showBalance)
}
