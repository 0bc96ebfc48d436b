// File: doc.go
// Title: Aggregates Package Documentation
// Description: Package documentation for the built-in OFX aggregates
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-15
//
// Change History:
// - 2026-08-15 v0.1.0: Initial documentation

// Package aggregates provides typed representations of the common OFX
// statement aggregates and their registry definitions.
//
// Constructors take the flattened attribute map produced by the convert
// package and coerce element text into Go types. Monetary values become
// exact decimals; binary floating point is unsuitable for financial
// amounts. The strict flag controls how malformed values are treated:
// strict mode rejects them, lax mode drops them and keeps the zero value.
// Missing optional elements are never an error in either mode.
package aggregates
