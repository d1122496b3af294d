// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/ordertree/fault"
	"github.com/bitmark-inc/ordertree/tree"
)

type traversalResult struct {
	Target  tree.Item   `json:"target"`
	Visited []tree.Item `json:"visited"`
}

type searchResult struct {
	Target      tree.Item `json:"target"`
	Found       bool      `json:"found"`
	Comparisons int       `json:"comparisons"`
}

// build the tree from the command arguments
func setup(c *cli.Context) (*metadata, error) {
	m := c.App.Metadata["metadata"].(*metadata)

	keys, err := tree.ParseItems(m.keyType, c.Args())
	if nil != err {
		return nil, err
	}
	n, err := m.store.InsertAll(keys)
	if nil != err {
		return nil, err
	}
	m.log.Debugf("keys: %d  added: %d", len(keys), n)
	return m, nil
}

// the --target flag as a key, nil when absent
func target(c *cli.Context, m *metadata, required bool) (tree.Item, error) {
	s := c.String("target")
	if "" == s {
		if required {
			return nil, fault.ErrMissingArgument
		}
		return nil, nil
	}
	return tree.ParseItem(m.keyType, s)
}

func runEdges(c *cli.Context) error {
	m, err := setup(c)
	if nil != err {
		return err
	}

	edges := m.store.Edges()
	if nil == edges {
		edges = []tree.Edge{}
	}
	return printJson(m.w, edges)
}

func runInOrder(c *cli.Context) error {
	m, err := setup(c)
	if nil != err {
		return err
	}
	return printJson(m.w, m.store.InOrder())
}

func runDepthFirst(c *cli.Context) error {
	m, err := setup(c)
	if nil != err {
		return err
	}
	t, err := target(c, m, false)
	if nil != err {
		return err
	}
	return printJson(m.w, traversalResult{Target: t, Visited: m.store.DepthFirst(t)})
}

func runBreadthFirst(c *cli.Context) error {
	m, err := setup(c)
	if nil != err {
		return err
	}
	t, err := target(c, m, false)
	if nil != err {
		return err
	}
	return printJson(m.w, traversalResult{Target: t, Visited: m.store.BreadthFirst(t)})
}

func runSearch(c *cli.Context) error {
	m, err := setup(c)
	if nil != err {
		return err
	}
	t, err := target(c, m, true)
	if nil != err {
		return err
	}
	found, comparisons, err := m.store.Search(t)
	if nil != err {
		return err
	}
	return printJson(m.w, searchResult{Target: t, Found: found, Comparisons: comparisons})
}

func runPrint(c *cli.Context) error {
	m, err := setup(c)
	if nil != err {
		return err
	}
	m.store.Print(m.w)
	return nil
}
