// File: filex_test.go
// Title: Tests for File Utilities
// Description: Tests file inspection and size-limited reading.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial tests

package filex

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.ofx")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestExistsAndIsFile(t *testing.T) {
	path := writeTempFile(t, "OFXHEADER:100")

	if !Exists(path) {
		t.Error("expected file to exist")
	}
	if !IsFile(path) {
		t.Error("expected path to be a regular file")
	}
	if Exists(filepath.Join(t.TempDir(), "missing")) {
		t.Error("expected missing path to not exist")
	}
	if IsFile(t.TempDir()) {
		t.Error("expected directory to not be a regular file")
	}
}

func TestReadStringLimit(t *testing.T) {
	content := "OFXHEADER:100\nDATA:OFXSGML\n"
	path := writeTempFile(t, content)

	got, err := ReadStringLimit(path, 1024)
	if err != nil {
		t.Fatalf("ReadStringLimit failed: %v", err)
	}
	if got != content {
		t.Errorf("expected file content, got %q", got)
	}

	// Zero disables the limit
	if _, err := ReadStringLimit(path, 0); err != nil {
		t.Errorf("expected unlimited read to succeed, got %v", err)
	}

	if _, err := ReadStringLimit(path, 5); err == nil {
		t.Error("expected oversized file to be rejected")
	}
}

func TestReadAllLimit(t *testing.T) {
	content := "<OFX><STATUS><CODE>0</CODE></STATUS></OFX>"

	got, err := ReadAllLimit(strings.NewReader(content), 1024)
	if err != nil {
		t.Fatalf("ReadAllLimit failed: %v", err)
	}
	if got != content {
		t.Errorf("expected input content, got %q", got)
	}

	if _, err := ReadAllLimit(strings.NewReader(content), 10); err == nil {
		t.Error("expected oversized input to be rejected")
	}

	got, err = ReadAllLimit(strings.NewReader(content), 0)
	if err != nil || got != content {
		t.Errorf("expected unlimited read to succeed, got %q, %v", got, err)
	}
}
