// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keystore

import (
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/ordertree/avl"
	"github.com/bitmark-inc/ordertree/bst"
	"github.com/bitmark-inc/ordertree/counter"
	"github.com/bitmark-inc/ordertree/fault"
	"github.com/bitmark-inc/ordertree/tree"
)

// names of the tree variants
const (
	TypeAVL = "avl"
	TypeBST = "bst"
)

// Store - a key store
type Store struct {
	sync.Mutex

	log      *logger.L
	treeType string
	handle   tree.Tree

	// optional memo of search results, flushed by every mutation
	memo *cache.Cache

	inserts     counter.Counter
	duplicates  counter.Counter
	deletes     counter.Counter
	misses      counter.Counter
	searches    counter.Counter
	comparisons counter.Counter
	cacheHits   counter.Counter
}

// Option - optional store setting
type Option func(*Store) error

// WithSearchCache - remember search results for the given time;
// zero disables the cache
func WithSearchCache(expiration time.Duration) Option {
	return func(s *Store) error {
		if expiration < 0 {
			return fault.ErrInvalidCacheDuration
		}
		if 0 == expiration {
			s.memo = nil
			return nil
		}
		s.memo = cache.New(expiration, 2*expiration)
		return nil
	}
}

// New - create an empty store of the named tree type
func New(treeType string, log *logger.L, options ...Option) (*Store, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	handle, err := newTree(treeType)
	if nil != err {
		return nil, err
	}

	s := &Store{
		log:      log,
		treeType: strings.ToLower(treeType),
		handle:   handle,
	}
	for _, option := range options {
		if err := option(s); nil != err {
			return nil, err
		}
	}

	log.Infof("new %s store, search cache: %t", s.treeType, nil != s.memo)
	return s, nil
}

// create an empty tree of a type
func newTree(treeType string) (tree.Tree, error) {
	switch strings.ToLower(treeType) {
	case TypeAVL:
		return avl.New(), nil
	case TypeBST:
		return bst.New(), nil
	default:
		return nil, fault.ErrInvalidTreeType
	}
}

// TreeType - name of the tree variant
func (s *Store) TreeType() string {
	return s.treeType
}
