// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - an unbalanced binary search tree
//
// Insertion order decides the shape, so the height can reach the
// number of nodes.  Locate and Splice are exported because the
// balanced tree removes nodes the same way before repairing.
package bst
