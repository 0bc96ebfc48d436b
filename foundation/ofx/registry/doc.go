// File: doc.go
// Title: Registry Package Documentation
// Description: Package documentation for the OFX aggregate registry
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-14
//
// Change History:
// - 2026-08-14 v0.1.0: Initial documentation

// Package registry maintains the set of known OFX aggregate definitions.
//
// A Definition records everything the converter needs to know about one
// aggregate tag: whether it can carry currency sub-aggregates, which of
// its children are repeated lists that must be extracted before
// flattening, and an optional constructor that turns the flattened
// attribute map into a typed aggregate.
//
// The built-in definitions for the common statement aggregates live in
// the aggregates package; this package only provides the storage and
// lookup machinery so that applications can register their own
// definitions alongside the built-ins.
package registry
