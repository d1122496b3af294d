// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree without parent pointers
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node stores height(left) - height(right) which is kept in
// the range -1…+1.  Insert and delete record the path taken from the
// root and walk it back upwards adjusting balances, rotating where a
// balance reaches ±2.  An insert needs at most one (single or double)
// rotation; a delete may need one at every level of the path.
//
// Removal of a node uses the same splice as the unbalanced tree in
// package bst.
package avl
