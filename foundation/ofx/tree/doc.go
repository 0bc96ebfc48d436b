// File: doc.go
// Title: OFX Tree Package Documentation
// Description: In-memory parse tree for OFX documents. The tree is built
//              once per parse call by the parser package, consumed by the
//              convert package, and then discarded.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-13
// Modified: 2026-08-13
//
// Change History:
// - 2026-08-13 v0.1.0: Initial tree package

/*
Package tree defines the in-memory parse tree for OFX documents.

A Node is either a data-bearing leaf (text, no children) or an aggregate
(children, no text). Every node is owned exclusively by its parent, so the
structure is a proper tree: no sharing, no cycles. The root node has no
parent.

The package provides the navigation primitives the converter needs:

  - FindChild for direct children (list pre-extraction)
  - FindGrandchild for the one-level wildcard search used by currency
    disambiguation
  - RemoveChild for detaching list-valued substructures before flattening
*/
package tree
