// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// Search - find a specific item
//
// comparisons is the number of nodes examined that did not match,
// so a key found at the root costs zero; for a missing key it is the
// length of the path that was followed
func Search(root *Node, key Item) (found bool, comparisons int) {
	for p := root; nil != p; comparisons += 1 {
		c := p.key.Compare(key)
		switch {
		case c > 0: // p.key > key
			p = p.left
		case c < 0: // p.key < key
			p = p.right
		default:
			return true, comparisons
		}
	}
	return false, comparisons
}

// Find - the node holding key or nil
func Find(root *Node, key Item) *Node {
	p := root
	for nil != p {
		c := p.key.Compare(key)
		switch {
		case c > 0:
			p = p.left
		case c < 0:
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// First - the node with the lowest key in a sub-tree
func First(p *Node) *Node {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - the node with the highest key in a sub-tree
func Last(p *Node) *Node {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}
