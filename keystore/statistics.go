// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keystore

// Statistics - operation totals of a store
type Statistics struct {
	TreeType    string `json:"tree_type"`
	Count       int    `json:"count"`
	Height      int    `json:"height"`
	Inserts     uint64 `json:"inserts"`
	Duplicates  uint64 `json:"duplicates"`
	Deletes     uint64 `json:"deletes"`
	Misses      uint64 `json:"misses"`
	Searches    uint64 `json:"searches"`
	Comparisons uint64 `json:"comparisons"`
	CacheHits   uint64 `json:"cache_hits"`
}

// Statistics - read the current totals
func (s *Store) Statistics() Statistics {
	s.Lock()
	defer s.Unlock()
	return Statistics{
		TreeType:    s.treeType,
		Count:       s.handle.Count(),
		Height:      s.handle.Height(),
		Inserts:     s.inserts.Uint64(),
		Duplicates:  s.duplicates.Uint64(),
		Deletes:     s.deletes.Uint64(),
		Misses:      s.misses.Uint64(),
		Searches:    s.searches.Uint64(),
		Comparisons: s.comparisons.Uint64(),
		CacheHits:   s.cacheHits.Uint64(),
	}
}
