// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureDirectory - make the path absolute relative to the directory
// and create it if it does not already exist
func EnsureDirectory(directory string, dirPath string) (string, error) {
	dirPath = EnsureAbsolute(directory, dirPath)
	if err := os.MkdirAll(dirPath, 0700); nil != err {
		return "", err
	}
	return dirPath, nil
}

// IsDirectory - true if the path exists and is a directory
func IsDirectory(name string) bool {
	info, err := os.Stat(name)
	return nil == err && info.IsDir()
}

// IsPlainName - true if the file name has no directory part
func IsPlainName(name string) bool {
	switch filepath.Dir(name) {
	case "", ".":
		return "" != filepath.Base(name)
	default:
		return false
	}
}
