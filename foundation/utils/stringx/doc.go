// Package stringx provides string utility functions for the mOFX platform.
//
// Package: stringx
// Title: mOFX String Utilities
// Description: Extends the Go standard library with the string operations
//              the platform needs repeatedly: blank detection (which drives
//              leaf vs. aggregate classification in the OFX parser),
//              Unicode-safe truncation for log output, and whitespace
//              normalization.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation
package stringx
