// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keystore_test

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ordertree/fault"
	"github.com/bitmark-inc/ordertree/keystore"
	"github.com/bitmark-inc/ordertree/tree"
)

func newStore(t *testing.T, treeType string, options ...keystore.Option) *keystore.Store {
	s, err := keystore.New(treeType, logger.New(category), options...)
	require.Nil(t, err, "new store")
	return s
}

func sevenKeys(t *testing.T, s *keystore.Store) {
	for i := 1; i <= 7; i += 1 {
		require.Nil(t, s.Insert(tree.IntKey(i)), "insert: %d", i)
	}
}

func TestInsertDelete(t *testing.T) {
	for _, treeType := range []string{keystore.TypeAVL, keystore.TypeBST} {
		s := newStore(t, treeType)
		sevenKeys(t, s)

		assert.Equal(t, fault.ErrKeyAlreadyExists, s.Insert(tree.IntKey(3)), "duplicate: %s", treeType)
		assert.Equal(t, 7, s.Count(), "count after duplicate: %s", treeType)

		assert.Nil(t, s.Delete(tree.IntKey(1)), "delete: %s", treeType)
		assert.Equal(t, fault.ErrKeyNotFound, s.Delete(tree.IntKey(1)), "second delete: %s", treeType)
		assert.Equal(t, fault.ErrKeyNotFound, s.Delete(tree.IntKey(99)), "absent: %s", treeType)

		assert.Nil(t, s.Check(), "check: %s", treeType)
		assert.Equal(t, []tree.Item{
			tree.IntKey(2), tree.IntKey(3), tree.IntKey(4),
			tree.IntKey(5), tree.IntKey(6), tree.IntKey(7),
		}, s.InOrder(), "in-order: %s", treeType)

		stats := s.Statistics()
		assert.Equal(t, treeType, stats.TreeType, "tree type")
		assert.Equal(t, 6, stats.Count, "count")
		assert.Equal(t, uint64(7), stats.Inserts, "inserts")
		assert.Equal(t, uint64(1), stats.Duplicates, "duplicates")
		assert.Equal(t, uint64(1), stats.Deletes, "deletes")
		assert.Equal(t, uint64(2), stats.Misses, "misses")
	}
}

func TestNilKey(t *testing.T) {
	s := newStore(t, keystore.TypeAVL)

	assert.Equal(t, fault.ErrNilKey, s.Insert(nil), "insert")
	assert.Equal(t, fault.ErrNilKey, s.Delete(nil), "delete")
	_, _, err := s.Search(nil)
	assert.Equal(t, fault.ErrNilKey, err, "search")
}

func TestEmptyStore(t *testing.T) {
	s := newStore(t, keystore.TypeBST)

	assert.Equal(t, []tree.Item{}, s.InOrder(), "in-order")
	assert.Nil(t, s.DepthFirst(tree.IntKey(1)), "depth first")
	assert.Nil(t, s.BreadthFirst(tree.IntKey(1)), "breadth first")
	assert.Nil(t, s.Edges(), "edges")
	assert.Nil(t, s.Check(), "check")

	found, comparisons, err := s.Search(tree.IntKey(1))
	assert.Nil(t, err, "search")
	assert.False(t, found, "found")
	assert.Equal(t, 0, comparisons, "comparisons")
}

func TestBalancedShape(t *testing.T) {
	s := newStore(t, keystore.TypeAVL)
	sevenKeys(t, s)

	// 1..7 in order gives the perfect tree rooted at 4
	assert.Equal(t, []tree.Item{
		tree.IntKey(4), tree.IntKey(2), tree.IntKey(1),
	}, s.DepthFirst(tree.IntKey(3)), "depth first")
	assert.Equal(t, []tree.Item{
		tree.IntKey(4), tree.IntKey(2), tree.IntKey(6), tree.IntKey(1),
	}, s.BreadthFirst(tree.IntKey(3)), "breadth first")

	edges := s.Edges()
	require.Equal(t, 6, len(edges), "edge count")
	assert.Equal(t, tree.Edge{Parent: tree.IntKey(4), Child: tree.IntKey(2), Side: tree.Left}, edges[0], "first edge")
	assert.Equal(t, tree.Edge{Parent: tree.IntKey(4), Child: tree.IntKey(6), Side: tree.Right}, edges[1], "second edge")

	stats := s.Statistics()
	assert.Equal(t, 3, stats.Height, "height")

	buffer := &bytes.Buffer{}
	assert.Equal(t, 3, s.Print(buffer), "print depth")
	assert.Contains(t, buffer.String(), "4", "print output")
}

func TestSearch(t *testing.T) {
	s := newStore(t, keystore.TypeAVL)
	sevenKeys(t, s)

	tests := []struct {
		key         int
		found       bool
		comparisons int
	}{
		{4, true, 0},
		{6, true, 1},
		{7, true, 2},
		{1, true, 2},
		{8, false, 3},
		{0, false, 3},
	}

	total := 0
	for i, test := range tests {
		found, comparisons, err := s.Search(tree.IntKey(test.key))
		assert.Nil(t, err, "%d: error", i)
		assert.Equal(t, test.found, found, "%d: found", i)
		assert.Equal(t, test.comparisons, comparisons, "%d: comparisons", i)
		total += test.comparisons
	}

	stats := s.Statistics()
	assert.Equal(t, uint64(len(tests)), stats.Searches, "searches")
	assert.Equal(t, uint64(total), stats.Comparisons, "comparisons")
	assert.Equal(t, uint64(0), stats.CacheHits, "cache hits")
}

func TestSearchCache(t *testing.T) {
	s := newStore(t, keystore.TypeAVL, keystore.WithSearchCache(time.Minute))
	sevenKeys(t, s)

	for i := 0; i < 2; i += 1 {
		found, comparisons, err := s.Search(tree.IntKey(7))
		assert.Nil(t, err, "%d: error", i)
		assert.True(t, found, "%d: found", i)
		assert.Equal(t, 2, comparisons, "%d: comparisons", i)
	}

	stats := s.Statistics()
	assert.Equal(t, uint64(2), stats.Searches, "searches")
	assert.Equal(t, uint64(1), stats.CacheHits, "cache hits")
	assert.Equal(t, uint64(2), stats.Comparisons, "comparisons")

	// a deletion must not leave a stale result
	require.Nil(t, s.Delete(tree.IntKey(7)), "delete")
	found, _, err := s.Search(tree.IntKey(7))
	assert.Nil(t, err, "error")
	assert.False(t, found, "found after delete")
	assert.Equal(t, uint64(1), s.Statistics().CacheHits, "cache hits after delete")
}

func TestConcurrentInsert(t *testing.T) {
	const workers = 8
	const perWorker = 64

	s := newStore(t, keystore.TypeAVL)

	var wg sync.WaitGroup
	for w := 0; w < workers; w += 1 {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < perWorker; i += 1 {
				_ = s.Insert(tree.IntKey(base*perWorker + i))
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, s.Count(), "count")
	assert.Nil(t, s.Check(), "check")
	assert.LessOrEqual(t, float64(s.Statistics().Height), tree.MaximumHeight(workers*perWorker), "height")
}

func TestInsertAll(t *testing.T) {
	s := newStore(t, keystore.TypeBST)

	keys, err := tree.ParseItems(tree.KeyTypeInt, []string{"5", "3", "5", "8", "3"})
	require.Nil(t, err, "parse")

	n, err := s.InsertAll(keys)
	assert.Nil(t, err, "insert all")
	assert.Equal(t, 3, n, "added")

	n, err = s.InsertAll([]tree.Item{tree.IntKey(1), nil})
	assert.Equal(t, fault.ErrNilKey, err, "nil key")
	assert.Equal(t, 1, n, "added before nil")
}
