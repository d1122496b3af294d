// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keystore - an ordered key store over one of the tree variants
//
// A Store holds the current tree handle and rebinds it after every
// insert and delete.  All calls are serialised by a mutex so a store
// may be shared between go routines, unlike the trees it wraps.
//
// Duplicate inserts and deletes of absent keys leave the store
// unchanged and are reported as fault.ErrKeyAlreadyExists and
// fault.ErrKeyNotFound.
package keystore
