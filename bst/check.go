// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/ordertree/tree"
)

// Check - true if the keys are in strict order
func (t Tree) Check() bool {
	return tree.CheckOrder(t.Root())
}
