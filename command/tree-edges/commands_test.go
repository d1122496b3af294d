// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ordertree/fault"
)

func run(t *testing.T, arguments ...string) (string, error) {
	w := &bytes.Buffer{}
	e := &bytes.Buffer{}
	app := newApp(w, e)
	err := app.Run(append([]string{"tree-edges"}, arguments...))
	return w.String(), err
}

func decode(t *testing.T, text string) interface{} {
	var result interface{}
	require.Nil(t, json.Unmarshal([]byte(text), &result), "decode: %s", text)
	return result
}

func TestEdges(t *testing.T) {
	out, err := run(t, "edges", "3", "2", "1")
	require.Nil(t, err, "run")

	// the balanced tree rotates the chain to root 2
	assert.Equal(t, []interface{}{
		map[string]interface{}{"parent": 2.0, "child": 1.0, "side": "L"},
		map[string]interface{}{"parent": 2.0, "child": 3.0, "side": "R"},
	}, decode(t, out), "avl edges")

	out, err = run(t, "--type", "bst", "edges", "3", "2", "1")
	require.Nil(t, err, "run")
	assert.Equal(t, []interface{}{
		map[string]interface{}{"parent": 3.0, "child": 2.0, "side": "L"},
		map[string]interface{}{"parent": 2.0, "child": 1.0, "side": "L"},
	}, decode(t, out), "bst edges")

	out, err = run(t, "edges", "7")
	require.Nil(t, err, "run")
	assert.Equal(t, []interface{}{}, decode(t, out), "single node")
}

func TestInOrder(t *testing.T) {
	out, err := run(t, "--key-type", "string", "inorder", "pear", "apple", "fig", "apple")
	require.Nil(t, err, "run")
	assert.Equal(t, []interface{}{"apple", "fig", "pear"}, decode(t, out), "in-order")
}

func TestTraversals(t *testing.T) {
	keys := []string{"4", "2", "6", "1", "3", "5", "7"}

	out, err := run(t, append([]string{"--type", "bst", "dfs", "--target", "5"}, keys...)...)
	require.Nil(t, err, "run")
	assert.Equal(t, map[string]interface{}{
		"target":  5.0,
		"visited": []interface{}{4.0, 2.0, 1.0, 3.0, 6.0},
	}, decode(t, out), "depth first")

	out, err = run(t, append([]string{"--type", "bst", "bfs", "--target", "5"}, keys...)...)
	require.Nil(t, err, "run")
	assert.Equal(t, map[string]interface{}{
		"target":  5.0,
		"visited": []interface{}{4.0, 2.0, 6.0, 1.0, 3.0},
	}, decode(t, out), "breadth first")

	out, err = run(t, append([]string{"bfs"}, keys...)...)
	require.Nil(t, err, "run")
	assert.Equal(t, map[string]interface{}{
		"target":  nil,
		"visited": []interface{}{4.0, 2.0, 6.0, 1.0, 3.0, 5.0, 7.0},
	}, decode(t, out), "full breadth first")
}

func TestSearch(t *testing.T) {
	out, err := run(t, "search", "--target", "7", "4", "2", "6", "1", "3", "5", "7")
	require.Nil(t, err, "run")
	assert.Equal(t, map[string]interface{}{
		"target":      7.0,
		"found":       true,
		"comparisons": 2.0,
	}, decode(t, out), "search")

	_, err = run(t, "search", "1", "2")
	assert.Equal(t, fault.ErrMissingArgument, err, "no target")
}

func TestErrors(t *testing.T) {
	_, err := run(t, "--type", "splay", "edges", "1")
	assert.Equal(t, fault.ErrInvalidTreeType, err, "tree type")

	_, err = run(t, "edges", "1", "x")
	assert.Equal(t, fault.ErrInvalidIntegerKey, err, "integer key")

	_, err = run(t, "--key-type", "float", "edges", "1")
	assert.Equal(t, fault.ErrInvalidKeyType, err, "key type")
}

func TestPrint(t *testing.T) {
	out, err := run(t, "print", "2", "1", "3")
	require.Nil(t, err, "run")
	assert.Contains(t, out, "|------+ 2", "root line")
}
