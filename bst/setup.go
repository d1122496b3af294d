// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/ordertree/tree"
)

// Tree - handle of an unbalanced tree
type Tree struct {
	tree.Handle
}

// New - create an initially empty tree
func New() Tree {
	return Tree{}
}

// check that the interface is fully implemented
var _ tree.Tree = Tree{}
