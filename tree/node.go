// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// Direction - which child link was followed
type Direction int

// the two children of a node
const (
	Left  Direction = iota
	Right Direction = iota
)

// String - single letter form used by the edge export
func (d Direction) String() string {
	if Left == d {
		return "L"
	}
	return "R"
}

// MarshalText - so that JSON shows "L" or "R"
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Opposite - the other direction
func (d Direction) Opposite() Direction {
	if Left == d {
		return Right
	}
	return Left
}

// Node - a node in the tree
type Node struct {
	left    *Node // left sub-tree
	right   *Node // right sub-tree
	key     Item  // key part for ordering
	balance int   // height(left) - height(right), only kept by balanced trees
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// SetKey - overwrite the key, used when a successor replaces a
// deleted key
func (p *Node) SetKey(key Item) {
	p.key = key
}

// Left - the left sub-tree
func (p *Node) Left() *Node {
	return p.left
}

// Right - the right sub-tree
func (p *Node) Right() *Node {
	return p.right
}

// Child - sub-tree in a given direction
func (p *Node) Child(d Direction) *Node {
	if Left == d {
		return p.left
	}
	return p.right
}

// SetChild - replace the sub-tree in a given direction
func (p *Node) SetChild(d Direction, child *Node) {
	if Left == d {
		p.left = child
	} else {
		p.right = child
	}
}

// IsLeaf - true if the node has no children
func (p *Node) IsLeaf() bool {
	return nil == p.left && nil == p.right
}

// Balance - the stored balance factor
func (p *Node) Balance() int {
	return p.balance
}

// SetBalance - store a new balance factor
func (p *Node) SetBalance(balance int) {
	p.balance = balance
}

// AdjustBalance - add delta to the balance factor and return the result
func (p *Node) AdjustBalance(delta int) int {
	p.balance += delta
	return p.balance
}
