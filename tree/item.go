// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/ordertree/fault"
)

// names of the built-in key types
const (
	KeyTypeInt    = "int"
	KeyTypeString = "string"
)

// Item - a key item must implement the Compare function
//
// Compare returns a negative value if the receiver sorts before the
// argument, zero if they are equal and a positive value otherwise.
// All keys in one tree must have the same concrete type.
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// IntKey - an integer key
type IntKey int

// Compare - numeric ordering
func (k IntKey) Compare(x interface{}) int {
	y := x.(IntKey)
	switch {
	case k < y:
		return -1
	case k > y:
		return +1
	default:
		return 0
	}
}

// String - decimal form
func (k IntKey) String() string {
	return strconv.Itoa(int(k))
}

// StringKey - a string key
type StringKey string

// Compare - lexical ordering
func (k StringKey) Compare(x interface{}) int {
	return strings.Compare(string(k), string(x.(StringKey)))
}

// String - the key itself
func (k StringKey) String() string {
	return string(k)
}

// ParseItem - convert text to a key of the named type
func ParseItem(keyType string, s string) (Item, error) {
	switch keyType {
	case KeyTypeInt:
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if nil != err {
			return nil, fault.ErrInvalidIntegerKey
		}
		return IntKey(n), nil
	case KeyTypeString:
		return StringKey(s), nil
	default:
		return nil, fault.ErrInvalidKeyType
	}
}

// ParseItems - convert a list of strings to keys of the named type
func ParseItems(keyType string, items []string) ([]Item, error) {
	keys := make([]Item, 0, len(items))
	for _, s := range items {
		k, err := ParseItem(keyType, s)
		if nil != err {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}
