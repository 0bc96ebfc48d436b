// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements essential string operations that extend the Go
//              standard library. Focuses on Unicode safety and the text
//              handling needs of OFX document processing (blank detection,
//              normalization, safe truncation for log output).
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation with core utilities

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
// OFX tag text consisting only of whitespace is treated as absent, so this
// check decides leaf vs. aggregate classification.
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains non-whitespace characters.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Truncate truncates a string to the specified length, adding an ellipsis if
// truncated. This function is Unicode-aware and will not break multi-byte
// characters. If the string is shorter than maxLen, it returns the original.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}

	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		runes := []rune(ellipsis)
		return string(runes[:maxLen])
	}

	keep := maxLen - ellipsisLen
	var b strings.Builder
	for _, r := range s {
		if keep == 0 {
			break
		}
		b.WriteRune(r)
		keep--
	}
	return b.String() + ellipsis
}

// DefaultIfBlank returns the default value if the string is blank,
// otherwise the string itself.
func DefaultIfBlank(s, def string) string {
	if IsBlank(s) {
		return def
	}
	return s
}

// CollapseWhitespace trims the string and collapses internal whitespace
// runs to a single space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// EqualsIgnoreCase compares two strings case-insensitively.
func EqualsIgnoreCase(a, b string) bool {
	return strings.EqualFold(a, b)
}
