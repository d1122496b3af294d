// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"os"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ordertree/fault"
)

const dir = "testing"

func TestMain(m *testing.M) {
	_ = os.RemoveAll(dir)
	_ = os.Mkdir(dir, 0700)

	_ = logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(dir)
	os.Exit(rc)
}

func TestInitialise(t *testing.T) {
	assert.Nil(t, fault.Initialise(), "first initialise")
	assert.Equal(t, fault.ErrAlreadyInitialised, fault.Initialise(), "second initialise")

	fault.Finalise()
	assert.Nil(t, fault.Initialise(), "initialise after finalise")
	fault.Finalise()
}

func TestCriticalf(t *testing.T) {
	assert.Nil(t, fault.Initialise(), "initialise")
	defer fault.Finalise()

	message := fault.Criticalf("tree: %s  count: %d", "avl", 7)
	assert.True(t, strings.HasPrefix(message, "(log_test.go:"), "caller prefix: %s", message)
	assert.True(t, strings.HasSuffix(message, ") tree: avl  count: 7"), "message text: %s", message)
}
