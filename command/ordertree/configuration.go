// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ordertree/configuration"
	"github.com/bitmark-inc/ordertree/fault"
	"github.com/bitmark-inc/ordertree/keystore"
	"github.com/bitmark-inc/ordertree/tree"
	"github.com/bitmark-inc/ordertree/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultTreeType = keystore.TypeAVL
	defaultKeyType  = tree.KeyTypeInt

	defaultLogDirectory = "log"
	defaultLogFile      = "ordertree.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	TreeType      string               `gluamapper:"tree_type" json:"tree_type"`
	KeyType       string               `gluamapper:"key_type" json:"key_type"`
	Keys          []string             `gluamapper:"keys" json:"keys"`
	SearchCache   string               `gluamapper:"search_cache" json:"search_cache"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`

	// derived from SearchCache
	cacheExpiration time.Duration
}

func defaultConfiguration() *Configuration {
	levels := make(LoglevelMap, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	return &Configuration{
		DataDirectory: defaultDataDirectory,
		TreeType:      defaultTreeType,
		KeyType:       defaultKeyType,
		Keys:          []string{},
		SearchCache:   "",

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}
}

// will read decode and verify the configuration
//
// a blank file name gives the defaults relative to the current directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := defaultConfiguration()

	// absolute path to the main directory
	dataDirectory, err := os.Getwd()
	if nil != err {
		return nil, err
	}

	if "" != configurationFileName {
		configurationFileName, err = filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		dataDirectory, _ = filepath.Split(configurationFileName)

		if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
			return nil, err
		}
	}

	return options, options.verify(dataDirectory)
}

// normalise names, check values and expand paths
func (options *Configuration) verify(dataDirectory string) error {

	options.TreeType = strings.ToLower(options.TreeType)
	switch options.TreeType {
	case keystore.TypeAVL, keystore.TypeBST:
	default:
		return fault.ErrInvalidTreeType
	}

	options.KeyType = strings.ToLower(options.KeyType)
	switch options.KeyType {
	case tree.KeyTypeInt, tree.KeyTypeString:
	default:
		return fault.ErrInvalidKeyType
	}

	if "" != options.SearchCache {
		d, err := time.ParseDuration(options.SearchCache)
		if nil != err || d < 0 {
			return fault.ErrInvalidCacheDuration
		}
		options.cacheExpiration = d
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return errors.New(fmt.Sprintf("Path: %q is not a valid directory", options.DataDirectory))
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if !util.IsDirectory(options.DataDirectory) {
		return errors.New(fmt.Sprintf("Path: %q is not a directory", options.DataDirectory))
	}

	// the log file must be a plain name inside the log directory
	if !util.IsPlainName(options.Logging.File) {
		return errors.New(fmt.Sprintf("Files: %q is not plain name", options.Logging.File))
	}

	// make absolute and create directories if they do not already exist
	d, err := util.EnsureDirectory(options.DataDirectory, options.Logging.Directory)
	if nil != err {
		return err
	}
	options.Logging.Directory = d

	return nil
}

// the initial keys converted to the configured key type
func (options *Configuration) initialKeys() ([]tree.Item, error) {
	return tree.ParseItems(options.KeyType, options.Keys)
}

// options for the key store
func (options *Configuration) storeOptions() []keystore.Option {
	return []keystore.Option{
		keystore.WithSearchCache(options.cacheExpiration),
	}
}
