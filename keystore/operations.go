// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keystore

import (
	"fmt"
	"io"

	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/ordertree/fault"
	"github.com/bitmark-inc/ordertree/tree"
)

// a memoised search result
type searchResult struct {
	found       bool
	comparisons int
}

// Insert - add a key
func (s *Store) Insert(key tree.Item) error {
	if nil == key {
		return fault.ErrNilKey
	}

	s.Lock()
	defer s.Unlock()

	handle, added := s.handle.Insert(key)
	s.handle = handle
	if !added {
		s.duplicates.Increment()
		s.log.Debugf("insert: %v already present", key)
		return fault.ErrKeyAlreadyExists
	}
	s.inserts.Increment()
	s.flush()
	s.log.Debugf("insert: %v  count: %d", key, s.handle.Count())
	return nil
}

// InsertAll - add a list of keys, duplicates are skipped
//
// returns the number of keys actually added
func (s *Store) InsertAll(keys []tree.Item) (int, error) {
	n := 0
	for _, key := range keys {
		err := s.Insert(key)
		if fault.ErrKeyAlreadyExists == err {
			continue
		}
		if nil != err {
			return n, err
		}
		n += 1
	}
	return n, nil
}

// Delete - remove a key
func (s *Store) Delete(key tree.Item) error {
	if nil == key {
		return fault.ErrNilKey
	}

	s.Lock()
	defer s.Unlock()

	handle, removed := s.handle.Delete(key)
	s.handle = handle
	if !removed {
		s.misses.Increment()
		s.log.Debugf("delete: %v not present", key)
		return fault.ErrKeyNotFound
	}
	s.deletes.Increment()
	s.flush()
	s.log.Debugf("delete: %v  count: %d", key, s.handle.Count())
	return nil
}

// Search - look for a key
//
// returns whether it was found and the number of nodes that were
// compared before the match (or before giving up)
func (s *Store) Search(key tree.Item) (bool, int, error) {
	if nil == key {
		return false, 0, fault.ErrNilKey
	}

	s.Lock()
	defer s.Unlock()

	s.searches.Increment()

	memoKey := ""
	if nil != s.memo {
		memoKey = fmt.Sprintf("%T/%v", key, key)
		if r, ok := s.memo.Get(memoKey); ok {
			s.cacheHits.Increment()
			result := r.(searchResult)
			return result.found, result.comparisons, nil
		}
	}

	found, comparisons := s.handle.Search(key)
	s.comparisons.Add(uint64(comparisons))

	if nil != s.memo {
		s.memo.Set(memoKey, searchResult{found: found, comparisons: comparisons}, cache.DefaultExpiration)
	}
	return found, comparisons, nil
}

// InOrder - all keys in ascending order
func (s *Store) InOrder() []tree.Item {
	s.Lock()
	defer s.Unlock()
	return s.handle.TraverseInOrder()
}

// DepthFirst - pre-order keys visited before target
func (s *Store) DepthFirst(target tree.Item) []tree.Item {
	s.Lock()
	defer s.Unlock()
	return s.handle.DepthFirstSearch(target)
}

// BreadthFirst - level order keys visited before target
func (s *Store) BreadthFirst(target tree.Item) []tree.Item {
	s.Lock()
	defer s.Unlock()
	return s.handle.BreadthFirstSearch(target)
}

// Edges - parent to child links for a renderer
func (s *Store) Edges() []tree.Edge {
	s.Lock()
	defer s.Unlock()
	return s.handle.Edges()
}

// Count - number of keys
func (s *Store) Count() int {
	s.Lock()
	defer s.Unlock()
	return s.handle.Count()
}

// Check - verify the tree structure
func (s *Store) Check() error {
	s.Lock()
	defer s.Unlock()
	if !s.handle.Check() {
		s.log.Criticalf("%s tree failed consistency check, count: %d", s.treeType, s.handle.Count())
		return fault.ErrInconsistentTree
	}
	return nil
}

// Print - ASCII drawing of the tree, returns its depth
func (s *Store) Print(w io.Writer) int {
	s.Lock()
	defer s.Unlock()
	return s.handle.Print(w, TypeAVL == s.treeType)
}

// any mutation invalidates remembered searches
func (s *Store) flush() {
	if nil != s.memo {
		s.memo.Flush()
	}
}
