// File: flatten.go
// Title: OFX Aggregate Flattener
// Description: Collapses an aggregate subtree into a single-level map of
//              lowercase element names to trimmed text values. Detects key
//              collisions between sibling leaves, between nested aggregates,
//              and across levels, and silently excludes dotted
//              vendor-extension tags from the result.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-14
//
// Change History:
// - 2026-08-14 v0.1.0: Initial flattener implementation

package convert

import (
	"strings"

	mofxerror "github.com/msto63/mOFX/foundation/core/error"
	"github.com/msto63/mOFX/foundation/ofx/registry"
	"github.com/msto63/mOFX/foundation/ofx/tree"
)

// maxFlattenDepth guards against pathological nesting in hand-built trees.
// Trees from the parser are already depth-limited.
const maxFlattenDepth = 64

// extensionMarker marks vendor-proprietary tags, e.g. INTU.BID
const extensionMarker = "."

// Flatten collapses the subtree under node into a flat attribute map.
// Leaf values are keyed by their lowercase tag names; nested aggregates
// are flattened recursively and merged in. Any two children producing the
// same key is a duplicate-key error, whether the key comes from sibling
// leaves, sibling aggregates, or a leaf and an aggregate at different
// levels. Leaves with dotted vendor-extension tags are excluded.
//
// Repeated list structures must be detached before calling Flatten;
// repeated tags at one level always collide.
func Flatten(node *tree.Node) (registry.Attributes, error) {
	return flatten(node, 0)
}

func flatten(node *tree.Node, depth int) (registry.Attributes, error) {
	if depth > maxFlattenDepth {
		return nil, mofxerror.Newf("aggregate nesting exceeds limit of %d at <%s>", maxFlattenDepth, node.Tag).
			WithCode(mofxerror.CodeNestingTooDeep).
			WithOperation("convert.Flatten").
			WithTag(node.Tag)
	}

	leaves := make(registry.Attributes)
	aggregated := make(registry.Attributes)

	for _, child := range node.Children {
		if child.IsLeaf() {
			if strings.Contains(child.Tag, extensionMarker) {
				// Vendor-proprietary data is not modeled.
				continue
			}
			key := strings.ToLower(child.Tag)
			if _, exists := leaves[key]; exists {
				return nil, duplicateKey(node.Tag, key, "sibling elements")
			}
			leaves[key] = child.Text
			continue
		}

		sub, err := flatten(child, depth+1)
		if err != nil {
			return nil, err
		}
		for key, value := range sub {
			if _, exists := aggregated[key]; exists {
				return nil, duplicateKey(node.Tag, key, "sibling aggregates")
			}
			aggregated[key] = value
		}
	}

	for key, value := range aggregated {
		if _, exists := leaves[key]; exists {
			return nil, duplicateKey(node.Tag, key, "an element and a nested aggregate")
		}
		leaves[key] = value
	}

	return leaves, nil
}

// duplicateKey builds the error for a flattening key collision
func duplicateKey(tag, key, source string) *mofxerror.Error {
	return mofxerror.Newf("<%s> produces flattened key %q twice, from %s", tag, key, source).
		WithCode(mofxerror.CodeDuplicateKey).
		WithOperation("convert.Flatten").
		WithTag(tag).
		WithDetail("key", key)
}
