// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// ordertree - run a sequence of commands against a key store
//
// usage:
//
//   ordertree [--config-file=FILE] insert 5 3 8 delete 3 search 8 inorder dfs 8 edges stats
//
// Each command consumes the following arguments up to the next
// command name.  Results are written to stdout as one JSON record per
// command.  The optional Lua configuration file selects the tree
// type, key type, initial keys, search cache and logging; the
// default is an AVL tree of integer keys logging to ./log.
package main
