// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ordertree/tree"
)

func TestPath(t *testing.T) {
	a := tree.NewNode(tree.IntKey(10))
	b := tree.NewNode(tree.IntKey(5))
	a.SetChild(tree.Left, b)

	path := tree.NewPath()
	_, ok := path.Last()
	assert.False(t, ok, "empty last")

	path.Push(a, tree.Left)
	path.Push(b, tree.Right)
	assert.Len(t, path, 2, "length")

	s, ok := path.Last()
	assert.True(t, ok, "last")
	assert.Equal(t, b, s.Node, "last node")
	assert.Equal(t, tree.Right, s.Dir, "last direction")

	// relink below b: root is unchanged
	c := tree.NewNode(tree.IntKey(7))
	root := path.Relink(a, c)
	assert.Equal(t, a, root, "root unchanged")
	assert.Equal(t, c, b.Right(), "linked right of b")

	s, ok = path.Pop()
	assert.True(t, ok, "pop b")
	assert.Equal(t, b, s.Node, "popped b")
	s, ok = path.Pop()
	assert.True(t, ok, "pop a")
	assert.Equal(t, a, s.Node, "popped a")
	_, ok = path.Pop()
	assert.False(t, ok, "pop empty")

	// empty path: subtree becomes the root
	assert.Equal(t, c, path.Relink(a, c), "new root")
}

func TestDirection(t *testing.T) {
	assert.Equal(t, "L", tree.Left.String(), "left")
	assert.Equal(t, "R", tree.Right.String(), "right")
	assert.Equal(t, tree.Right, tree.Left.Opposite(), "opposite left")
	assert.Equal(t, tree.Left, tree.Right.Opposite(), "opposite right")

	b, err := tree.Right.MarshalText()
	assert.NoError(t, err, "marshal")
	assert.Equal(t, "R", string(b), "text")
}

func TestNodeAccessors(t *testing.T) {
	n := tree.NewNode(tree.StringKey("m"))
	assert.True(t, n.IsLeaf(), "new node is a leaf")
	assert.Equal(t, 0, n.Balance(), "initial balance")

	n.SetChild(tree.Right, tree.NewNode(tree.StringKey("z")))
	assert.False(t, n.IsLeaf(), "has a child")
	assert.Nil(t, n.Child(tree.Left), "no left child")
	assert.Equal(t, n.Right(), n.Child(tree.Right), "right child")

	assert.Equal(t, -1, n.AdjustBalance(-1), "adjust")
	n.SetBalance(+1)
	assert.Equal(t, +1, n.Balance(), "set")
}

func TestNodeStatistics(t *testing.T) {
	before := tree.Statistics()

	n := tree.NewNode(tree.IntKey(1))
	m := tree.NewNode(tree.IntKey(2))
	tree.Release(n)

	after := tree.Statistics()
	assert.Equal(t, before.Created+2, after.Created, "created")
	assert.Equal(t, before.Released+1, after.Released, "released")
	assert.Equal(t, before.Live+1, after.Live, "live")

	assert.Nil(t, n.Key(), "released key cleared")
	assert.Equal(t, tree.IntKey(2), m.Key(), "live key kept")
}
