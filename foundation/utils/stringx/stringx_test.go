// File: stringx_test.go
// Title: String Utility Unit Tests
// Description: Tests for blank detection, truncation, and whitespace
//              normalization helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12

package stringx

import "testing"

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty string", "", true},
		{"spaces only", "   ", true},
		{"tabs and newlines", "\t\n \r", true},
		{"text", "MEMO", false},
		{"text with surrounding space", "  100.00  ", false},
		{"unicode whitespace", "  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlank(tt.input); got != tt.want {
				t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		want     string
	}{
		{"no truncation needed", "short", 10, "...", "short"},
		{"basic truncation", "a very long memo field", 10, "...", "a very ..."},
		{"zero length", "anything", 0, "...", ""},
		{"unicode safe", "über-länge", 6, "…", "über-…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen, tt.ellipsis); got != tt.want {
				t.Errorf("Truncate(%q, %d, %q) = %q, want %q",
					tt.input, tt.maxLen, tt.ellipsis, got, tt.want)
			}
		})
	}
}

func TestDefaultIfBlank(t *testing.T) {
	if got := DefaultIfBlank("  ", "USD"); got != "USD" {
		t.Errorf("DefaultIfBlank = %q, want USD", got)
	}
	if got := DefaultIfBlank("EUR", "USD"); got != "EUR" {
		t.Errorf("DefaultIfBlank = %q, want EUR", got)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	if got := CollapseWhitespace("  ACME   PAYMENT \n CORP "); got != "ACME PAYMENT CORP" {
		t.Errorf("CollapseWhitespace = %q", got)
	}
}
