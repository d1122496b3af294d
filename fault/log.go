// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/bitmark-inc/logger"
)

// channel for failures that end the program
var log *logger.L

// Initialise - open the fault log channel
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("fault")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush and close the channel
func Finalise() {
	if nil != log {
		log.Flush()
	}
	log = nil
}

// Criticalf - log a formatted message prefixed by the caller's
// file and line
//
// the message goes to stderr if the channel is not open
func Criticalf(format string, arguments ...interface{}) string {
	message := fmt.Sprintf(format, arguments...)
	if _, file, line, ok := runtime.Caller(1); ok {
		message = fmt.Sprintf("(%s:%d) %s", filepath.Base(file), line, message)
	}

	if nil == log {
		fmt.Fprintf(os.Stderr, "*** %s\n", message)
	} else {
		log.Critical(message)
		log.Flush() // make sure log file is saved
	}
	return message
}
