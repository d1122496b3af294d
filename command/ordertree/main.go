// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ordertree/fault"
	"github.com/bitmark-inc/ordertree/keystore"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(os.Stdout, program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 || 0 == len(arguments) {
		processSetupCommand(os.Stdout, program, []string{"help"})
		return
	}

	if len(arguments) > 0 && processSetupCommand(os.Stdout, program, arguments) {
		return
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}

	// check the command line before anything is started
	lines, err := splitCommands(arguments)
	if nil != err {
		exitwithstatus.Message("%s: invalid command line: %q  error: %s", program, arguments, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	store, err := keystore.New(theConfiguration.TreeType, logger.New("keystore"), theConfiguration.storeOptions()...)
	if nil != err {
		log.Criticalf("keystore initialise error: %s", err)
		exitwithstatus.Message("keystore initialise error: %s", err)
	}

	keys, err := theConfiguration.initialKeys()
	if nil != err {
		log.Criticalf("initial keys error: %s", err)
		exitwithstatus.Message("initial keys error: %s", err)
	}
	n, err := store.InsertAll(keys)
	if nil != err {
		log.Criticalf("initial keys insert error: %s", err)
		exitwithstatus.Message("initial keys insert error: %s", err)
	}
	log.Infof("initial keys: %d  added: %d", len(keys), n)

	p := &processor{
		log:     log,
		store:   store,
		keyType: theConfiguration.KeyType,
		w:       os.Stdout,
	}
	if err := p.run(lines); nil != err {
		if fault.ErrInconsistentTree == err {
			fault.Criticalf("%s tree is inconsistent", theConfiguration.TreeType)
		}
		exitwithstatus.Message("%s: error: %s", program, err)
	}
}
