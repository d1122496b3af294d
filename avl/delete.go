// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/ordertree/bst"
	"github.com/bitmark-inc/ordertree/tree"
)

// Delete - removes a specific key from the tree
//
// returns the possibly updated tree, and false if the key was not
// present (the tree is then unchanged)
func (t Tree) Delete(key tree.Item) (tree.Tree, bool) {
	target, path := bst.Locate(t.Root(), key)
	if nil == target {
		return t, false
	}

	root, path := bst.Splice(t.Root(), target, path)
	root = balanceDelete(root, path)
	return Tree{tree.NewHandle(root, t.Count()-1)}, true
}

// balanceDelete - walk back up from the vacated position
//
// each ancestor loses height on the side that was taken.  Continue
// upwards only while the sub-tree below the next ancestor is shorter
// than it was:
//   ±1 after adjusting: was level, height unchanged - stop
//    0 after adjusting: the taller side shrank - continue
//   ±2: rotate; continue if the new sub-tree root is level
func balanceDelete(root *tree.Node, path tree.Path) *tree.Node {
	for {
		s, ok := path.Pop()
		if !ok {
			return root
		}

		delta := +1
		if tree.Left == s.Dir {
			delta = -1
		}

		switch s.Node.AdjustBalance(delta) {
		case -1, +1:
			return root
		case 0:
			// sub-tree shrank, continue upwards
		default:
			p := rebalance(s.Node)
			root = path.Relink(root, p)
			if 0 != p.Balance() {
				return root
			}
		}
	}
}
