// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ordertree/fault"
	"github.com/bitmark-inc/ordertree/keystore"
	"github.com/bitmark-inc/ordertree/tree"
)

// how many arguments a command consumes
type arity int

const (
	noArguments       arity = iota // e.g. inorder
	optionalArgument               // dfs and bfs take an optional target
	multipleArguments              // insert, delete, search: one or more keys
)

var commandArity = map[string]arity{
	"insert":  multipleArguments,
	"delete":  multipleArguments,
	"search":  multipleArguments,
	"inorder": noArguments,
	"dfs":     optionalArgument,
	"bfs":     optionalArgument,
	"edges":   noArguments,
	"print":   noArguments,
	"check":   noArguments,
	"stats":   noArguments,
}

// a command and its arguments
type commandLine struct {
	command   string
	arguments []string
}

// output record for one command
type output struct {
	Command string      `json:"command"`
	Result  interface{} `json:"result"`
}

type keyResult struct {
	Key    tree.Item `json:"key"`
	Result string    `json:"result"`
}

type searchResult struct {
	Key         tree.Item `json:"key"`
	Found       bool      `json:"found"`
	Comparisons int       `json:"comparisons"`
}

type traversalResult struct {
	Target  tree.Item   `json:"target"`
	Visited []tree.Item `json:"visited"`
}

type statisticsResult struct {
	Store keystore.Statistics `json:"store"`
	Nodes tree.NodeStatistics `json:"nodes"`
}

// setup command handler
//
// commands that do not need the configuration
func processSetupCommand(w io.Writer, program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Fprintf(w, "%s\n", version)

	case "help", "h", "?":
		fmt.Fprintf(w, "usage: %s [--help] [--verbose] [--version] [--config-file=FILE] command [command...]\n", program)
		fmt.Fprintf(w, "\n")
		fmt.Fprintf(w, "commands:\n")
		fmt.Fprintf(w, "  insert KEY...   - add keys\n")
		fmt.Fprintf(w, "  delete KEY...   - remove keys\n")
		fmt.Fprintf(w, "  search KEY...   - find keys and count comparisons\n")
		fmt.Fprintf(w, "  inorder         - keys in ascending order\n")
		fmt.Fprintf(w, "  dfs [KEY]       - depth first visit up to KEY\n")
		fmt.Fprintf(w, "  bfs [KEY]       - breadth first visit up to KEY\n")
		fmt.Fprintf(w, "  edges           - parent/child list for a renderer\n")
		fmt.Fprintf(w, "  print           - draw the tree\n")
		fmt.Fprintf(w, "  check           - verify tree structure\n")
		fmt.Fprintf(w, "  stats           - operation totals\n")
		fmt.Fprintf(w, "\n")

	default:
		return false
	}

	return true
}

// split the argument list into commands, each command takes
// following arguments up to the next command name
func splitCommands(arguments []string) ([]commandLine, error) {
	lines := make([]commandLine, 0, len(arguments))

	for i := 0; i < len(arguments); {
		command := arguments[i]
		a, ok := commandArity[command]
		if !ok {
			return nil, fault.ErrUnknownCommand
		}
		i += 1

		line := commandLine{
			command:   command,
			arguments: []string{},
		}

	loop:
		for ; i < len(arguments); i += 1 {
			if _, ok := commandArity[arguments[i]]; ok {
				break loop
			}
			switch a {
			case noArguments:
				return nil, fault.ErrUnknownCommand
			case optionalArgument:
				if 1 == len(line.arguments) {
					return nil, fault.ErrUnknownCommand
				}
			}
			line.arguments = append(line.arguments, arguments[i])
		}

		if multipleArguments == a && 0 == len(line.arguments) {
			return nil, fault.ErrMissingArgument
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// runs commands against a store
type processor struct {
	log     *logger.L
	store   *keystore.Store
	keyType string
	w       io.Writer
}

// run all the commands in order, stopping at the first error
func (p *processor) run(lines []commandLine) error {
	for _, line := range lines {
		p.log.Debugf("command: %s  arguments: %q", line.command, line.arguments)
		if err := p.runOne(line); nil != err {
			p.log.Errorf("command: %s  error: %s", line.command, err)
			return err
		}
	}
	return nil
}

func (p *processor) runOne(line commandLine) error {
	keys, err := tree.ParseItems(p.keyType, line.arguments)
	if nil != err {
		return err
	}

	var result interface{}

	switch line.command {
	case "insert":
		results := make([]keyResult, len(keys))
		for i, key := range keys {
			results[i] = keyResult{Key: key, Result: resultText(p.store.Insert(key))}
		}
		result = results

	case "delete":
		results := make([]keyResult, len(keys))
		for i, key := range keys {
			results[i] = keyResult{Key: key, Result: resultText(p.store.Delete(key))}
		}
		result = results

	case "search":
		results := make([]searchResult, len(keys))
		for i, key := range keys {
			found, comparisons, err := p.store.Search(key)
			if nil != err {
				return err
			}
			results[i] = searchResult{Key: key, Found: found, Comparisons: comparisons}
		}
		result = results

	case "inorder":
		result = p.store.InOrder()

	case "dfs":
		target := firstKey(keys)
		result = traversalResult{Target: target, Visited: p.store.DepthFirst(target)}

	case "bfs":
		target := firstKey(keys)
		result = traversalResult{Target: target, Visited: p.store.BreadthFirst(target)}

	case "edges":
		edges := p.store.Edges()
		if nil == edges {
			edges = []tree.Edge{}
		}
		result = edges

	case "print":
		p.store.Print(p.w)
		return nil

	case "check":
		if err := p.store.Check(); nil != err {
			return err
		}
		result = "ok"

	case "stats":
		result = statisticsResult{
			Store: p.store.Statistics(),
			Nodes: tree.Statistics(),
		}

	default:
		return fault.ErrUnknownCommand
	}

	return printJson(p.w, output{Command: line.command, Result: result})
}

// duplicate inserts and absent deletes are reported, not fatal
func resultText(err error) string {
	if nil == err {
		return "ok"
	}
	return err.Error()
}

func firstKey(keys []tree.Item) tree.Item {
	if 0 == len(keys) {
		return nil
	}
	return keys[0]
}
