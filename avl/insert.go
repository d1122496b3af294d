// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/ordertree/tree"
)

// Insert - insert a new key into the tree
//
// returns the possibly updated tree, and false if the key was
// already present (the tree is then unchanged)
func (t Tree) Insert(key tree.Item) (tree.Tree, bool) {
	root := t.Root()
	if nil == root {
		return Tree{tree.NewHandle(tree.NewNode(key), 1)}, true
	}

	path := tree.NewPath()
	p := root
	for {
		c := p.Key().Compare(key)
		if 0 == c {
			return t, false
		}
		d := tree.Right
		if c > 0 { // p.key > key
			d = tree.Left
		}
		path.Push(p, d)
		next := p.Child(d)
		if nil == next {
			p.SetChild(d, tree.NewNode(key))
			break
		}
		p = next
	}

	root = balanceInsert(root, path)
	return Tree{tree.NewHandle(root, t.Count()+1)}, true
}

// balanceInsert - walk back up from a new leaf
//
// each ancestor gains height on the side that was taken; stop as
// soon as one becomes level, since its height did not change, or
// after a rotation, which restores the height the sub-tree had
// before the insert
func balanceInsert(root *tree.Node, path tree.Path) *tree.Node {
	for {
		s, ok := path.Pop()
		if !ok {
			return root
		}

		delta := -1
		if tree.Left == s.Dir {
			delta = +1
		}

		switch s.Node.AdjustBalance(delta) {
		case 0:
			return root
		case -1, +1:
			// sub-tree grew, continue upwards
		default:
			return path.Relink(root, rebalance(s.Node))
		}
	}
}
