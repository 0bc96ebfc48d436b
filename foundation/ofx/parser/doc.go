// File: doc.go
// Title: Parser Package Documentation
// Description: Package documentation for the OFX tag soup parser
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-13
// Modified: 2026-08-13
//
// Change History:
// - 2026-08-13 v0.1.0: Initial documentation

// Package parser turns OFX tag soup into a tag tree.
//
// The package works in two stages. The Scanner performs a single
// left-to-right pass over the document and emits classified tokens: a tag
// followed by non-blank text is a data leaf (its closing tag is optional
// and consumed when present), a bare tag opens an aggregate, and a tag
// starting with "/" closes the innermost open aggregate. Bytes that do not
// form a tag match are skipped, as legacy OFXv1 producers emit stray text
// freely.
//
// The Builder consumes the token stream and assembles a tree.Node
// hierarchy using an explicit stack of open aggregates. It enforces a
// single top-level element, matching open/close pairs, and a nesting
// limit for untrusted input. Because <TAG></TAG> scans as an open tag
// with an adjacent closing fragment, an empty aggregate is represented as
// a childless non-leaf node rather than an error.
//
// Malformed documents are rejected with document-level error codes such
// as CodeTagMismatch or CodeLeafClosingText. CodeInternalInvariant is
// never used for bad input; it indicates a defect in the parser itself.
package parser
