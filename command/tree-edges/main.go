// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/ordertree/keystore"
	"github.com/bitmark-inc/ordertree/tree"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

type metadata struct {
	store   *keystore.Store
	keyType string
	log     *logger.L
	w       io.Writer
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	logDirectory := filepath.Join(os.TempDir(), "tree-edges")
	if err := os.MkdirAll(logDirectory, 0700); nil != err {
		exitwithstatus.Message("log directory: %q  error: %s", logDirectory, err)
	}

	logging := logger.Configuration{
		Directory: logDirectory,
		File:      "tree-edges.log",
		Size:      1024 * 1024,
		Count:     2,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		exitwithstatus.Message("logger setup failed with error: %s", err)
	}
	defer logger.Finalise()

	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); nil != err {
		exitwithstatus.Message("error: %s", err)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "tree-edges"
	app.Usage = "build a tree from keys and emit its structure as JSON"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "type, t",
			Value: keystore.TypeAVL,
			Usage: " tree `TYPE` [avl|bst]",
		},
		cli.StringFlag{
			Name:  "key-type, k",
			Value: tree.KeyTypeInt,
			Usage: " key `TYPE` [int|string]",
		},
	}

	targetFlag := cli.StringFlag{
		Name:  "target, T",
		Value: "",
		Usage: " stop at `KEY`",
	}

	app.Commands = []cli.Command{
		{
			Name:      "edges",
			Usage:     "parent to child edge list in breadth first order",
			ArgsUsage: "KEY...",
			Action:    runEdges,
		},
		{
			Name:      "inorder",
			Usage:     "keys in ascending order",
			ArgsUsage: "KEY...",
			Action:    runInOrder,
		},
		{
			Name:      "dfs",
			Usage:     "depth first visit before the target",
			ArgsUsage: "KEY...",
			Flags:     []cli.Flag{targetFlag},
			Action:    runDepthFirst,
		},
		{
			Name:      "bfs",
			Usage:     "breadth first visit before the target",
			ArgsUsage: "KEY...",
			Flags:     []cli.Flag{targetFlag},
			Action:    runBreadthFirst,
		},
		{
			Name:      "search",
			Usage:     "comparisons needed to find the target",
			ArgsUsage: "KEY...",
			Flags:     []cli.Flag{targetFlag},
			Action:    runSearch,
		},
		{
			Name:      "print",
			Usage:     "draw the tree",
			ArgsUsage: "KEY...",
			Action:    runPrint,
		},
		{
			Name:  "version",
			Usage: "display version",
			Action: func(c *cli.Context) error {
				_, err := io.WriteString(c.App.Writer, version+"\n")
				return err
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		log := logger.New("tree-edges")

		store, err := keystore.New(c.GlobalString("type"), logger.New("keystore"))
		if nil != err {
			return err
		}

		c.App.Metadata = map[string]interface{}{
			"metadata": &metadata{
				store:   store,
				keyType: c.GlobalString("key-type"),
				log:     log,
				w:       c.App.Writer,
			},
		}
		return nil
	}

	return app
}
