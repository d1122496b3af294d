// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/ordertree/tree"
)

// CheckBalance - check the stored balance factors for consistency
//
// true if every node holds height(left) - height(right) and that
// value is in the range -1…+1
func CheckBalance(root *tree.Node) bool {
	_, ok := checkBalance(root)
	return ok
}

// internal: consistency checker, returns the height of the sub-tree
func checkBalance(p *tree.Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	lh, ok := checkBalance(p.Left())
	if !ok {
		return 0, false
	}
	rh, ok := checkBalance(p.Right())
	if !ok {
		return 0, false
	}
	b := lh - rh
	if b != p.Balance() || b < -1 || b > +1 {
		return 0, false
	}
	if lh > rh {
		return 1 + lh, true
	}
	return 1 + rh, true
}

// Check - order and balance of the whole tree
func (t Tree) Check() bool {
	return tree.CheckOrder(t.Root()) && CheckBalance(t.Root())
}
