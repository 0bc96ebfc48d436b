// File: doc.go
// Title: Header Package Documentation
// Description: Package documentation for OFX header handling
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-15
//
// Change History:
// - 2026-08-15 v0.1.0: Initial documentation

// Package header strips and validates the metadata block that precedes
// the OFX body. OFXv1 documents start with a block of Key:Value lines,
// OFXv2 documents with an XML declaration and an OFX processing
// instruction. In both cases the remaining body is plain tag soup for
// the parser package.
package header
