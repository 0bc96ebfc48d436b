// Package filex provides file utility functions for the mOFX platform.
//
// Package: filex
// Title: mOFX File Utilities
// Description: Provides file inspection and size-limited reading for OFX
//              document handling, so oversized inputs are rejected before
//              any parsing work begins.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation
package filex
