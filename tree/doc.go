// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tree - primitives shared by the ordered tree variants
//
// A tree is a set of *Node linked only downwards; there are no parent
// pointers.  Operations that need the ancestors of a node build a
// Path while descending and discard it when the call returns.
//
// A tree handle is a value, every mutating operation returns the
// handle that must be used from then on, since the root node can be
// replaced by a rotation or a deletion.  An empty tree is a handle
// with a nil root.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
package tree
