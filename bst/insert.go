// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/ordertree/tree"
)

// Insert - insert a new key into the tree
//
// a key that is already present leaves the tree unchanged and
// returns false
func (t Tree) Insert(key tree.Item) (tree.Tree, bool) {
	root := t.Root()
	if nil == root {
		return Tree{tree.NewHandle(tree.NewNode(key), 1)}, true
	}

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
		next := p.Child(d)
		if nil == next {
			p.SetChild(d, tree.NewNode(key))
			break
		}
		p = next
	}
	return Tree{tree.NewHandle(root, t.Count()+1)}, true
}
