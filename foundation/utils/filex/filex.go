// File: filex.go
// Title: Core File Utility Functions
// Description: Implements file inspection and reading helpers for OFX
//              document handling. Guards document reads with a size
//              limit so oversized inputs fail before parsing starts.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation with core utilities

package filex

import (
	"fmt"
	"io"
	"os"
)

// Exists checks whether the path exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile checks whether the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Size returns the size of the file in bytes
func Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// ReadString reads the entire file as a string
func ReadString(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadStringLimit reads the entire file as a string, failing when the
// file exceeds maxBytes. A maxBytes of 0 disables the check.
func ReadStringLimit(path string, maxBytes int64) (string, error) {
	if maxBytes > 0 {
		size, err := Size(path)
		if err != nil {
			return "", err
		}
		if size > maxBytes {
			return "", fmt.Errorf("file %s exceeds size limit (%d > %d bytes)", path, size, maxBytes)
		}
	}
	return ReadString(path)
}

// ReadAllLimit reads from r until EOF, failing when the input exceeds
// maxBytes. A maxBytes of 0 disables the check.
func ReadAllLimit(r io.Reader, maxBytes int64) (string, error) {
	if maxBytes <= 0 {
		data, err := io.ReadAll(r)
		return string(data), err
	}

	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return "", err
	}
	if int64(len(data)) > maxBytes {
		return "", fmt.Errorf("input exceeds size limit (%d bytes)", maxBytes)
	}
	return string(data), nil
}
