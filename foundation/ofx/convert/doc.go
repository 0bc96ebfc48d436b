// File: doc.go
// Title: Convert Package Documentation
// Description: Package documentation for the OFX aggregate converter
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-14
//
// Change History:
// - 2026-08-14 v0.1.0: Initial documentation

// Package convert turns parsed OFX aggregate subtrees into domain objects.
//
// Flatten collapses a subtree into a single-level map from lowercase
// element names to trimmed text values, rejecting any key collision.
// Dotted vendor-extension tags are excluded from the map.
//
// The Converter wraps Flatten with the surrounding conversion contract:
// repeated list structures named by the registry definition are converted
// item by item and detached before flattening, the currency provenance
// destroyed by flattening is recorded under the synthesized curtype key,
// and the registered constructor builds the typed aggregate under the
// caller's strictness policy. Extracted lists and vendor extensions are
// returned in explicit Result fields, never attached to the aggregate by
// reflection.
package convert
