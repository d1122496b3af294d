// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/ordertree/tree"
)

// rotateRight - the left child becomes the sub-tree root and p its
// right child; a no-op if p has no left child
//
// balances are not touched
func rotateRight(p *tree.Node) *tree.Node {
	p1 := p.Left()
	if nil == p1 {
		return p
	}
	p.SetChild(tree.Left, p1.Right())
	p1.SetChild(tree.Right, p)
	return p1
}

// rotateLeft - mirror of rotateRight
func rotateLeft(p *tree.Node) *tree.Node {
	p1 := p.Right()
	if nil == p1 {
		return p
	}
	p.SetChild(tree.Right, p1.Left())
	p1.SetChild(tree.Left, p)
	return p1
}

// resolveDoubleRotationBalance - fix balances after a double rotation
//
// p2 is the new sub-tree root and still holds the balance it had as
// the grandchild before rotating, which tells which of its sub-trees
// was the taller one
func resolveDoubleRotationBalance(p2 *tree.Node) {
	switch p2.Balance() {
	case +1:
		p2.Left().SetBalance(0)
		p2.Right().SetBalance(-1)
	case -1:
		p2.Left().SetBalance(+1)
		p2.Right().SetBalance(0)
	default:
		p2.Left().SetBalance(0)
		p2.Right().SetBalance(0)
	}
	p2.SetBalance(0)
}

// rebalance - rotate a node whose balance has reached ±2
//
// after a deletion a single rotation over a child with zero balance
// leaves both nodes tilted (and the sub-tree height unchanged),
// otherwise all balances end at zero and the sub-tree is one level
// lower than before the rotation
func rebalance(p *tree.Node) *tree.Node {
	if p.Balance() > 0 {
		p1 := p.Left()
		if p1.Balance() < 0 {
			// double LR rotation
			p.SetChild(tree.Left, rotateLeft(p1))
			p2 := rotateRight(p)
			resolveDoubleRotationBalance(p2)
			return p2
		}

		// single LL rotation
		p1 = rotateRight(p)
		if 0 == p1.Balance() {
			p.SetBalance(+1)
			p1.SetBalance(-1)
		} else {
			p.SetBalance(0)
			p1.SetBalance(0)
		}
		return p1
	}

	p1 := p.Right()
	if p1.Balance() > 0 {
		// double RL rotation
		p.SetChild(tree.Right, rotateRight(p1))
		p2 := rotateLeft(p)
		resolveDoubleRotationBalance(p2)
		return p2
	}

	// single RR rotation
	p1 = rotateLeft(p)
	if 0 == p1.Balance() {
		p.SetBalance(-1)
		p1.SetBalance(+1)
	} else {
		p.SetBalance(0)
		p1.SetBalance(0)
	}
	return p1
}
