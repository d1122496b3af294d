// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/ordertree/tree"
)

// Delete - removes a specific key from the tree
//
// returns false and the unchanged tree if the key is absent
func (t Tree) Delete(key tree.Item) (tree.Tree, bool) {
	target, path := Locate(t.Root(), key)
	if nil == target {
		return t, false
	}
	root, _ := Splice(t.Root(), target, path)
	return Tree{tree.NewHandle(root, t.Count()-1)}, true
}

// Locate - descend to the node holding key
//
// the path records every ancestor of the node and the direction
// taken from it; target is nil (with an empty path) if key is absent
func Locate(root *tree.Node, key tree.Item) (target *tree.Node, path tree.Path) {
	path = tree.NewPath()
	p := root
	for nil != p {
		c := p.Key().Compare(key)
		switch {
		case c > 0: // p.key > key
			path.Push(p, tree.Left)
			p = p.Left()
		case c < 0: // p.key < key
			path.Push(p, tree.Right)
			p = p.Right()
		default:
			return p, path
		}
	}
	return nil, nil
}

// Splice - unlink target, found by Locate, from the tree
//
// A node with two children takes the key of its successor (lowest
// key of the right sub-tree) and the successor is unlinked instead.
// The unlinked node has at most one child, which takes its place.
//
// Returns the root, which changes only if the old root was unlinked,
// and the path extended to the parent of the vacated position; the
// last step names the side that lost a node.
func Splice(root *tree.Node, target *tree.Node, path tree.Path) (*tree.Node, tree.Path) {
	if nil != target.Left() && nil != target.Right() {
		path.Push(target, tree.Right)
		successor := target.Right()
		for nil != successor.Left() {
			path.Push(successor, tree.Left)
			successor = successor.Left()
		}
		target.SetKey(successor.Key())
		target = successor
	}

	child := target.Left()
	if nil == child {
		child = target.Right()
	}

	root = path.Relink(root, child)
	tree.Release(target)
	return root, path
}
