// File: definition.go
// Title: OFX Aggregate Definitions
// Description: Defines the data types describing known OFX aggregates:
//              flattened attribute maps, list specifications for repeated
//              sub-aggregates, and the definition record the registry
//              stores per aggregate tag.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-14
//
// Change History:
// - 2026-08-14 v0.1.0: Initial definition types

package registry

import (
	"sort"
	"strings"
)

// Attributes is the flattened form of an aggregate: leaf values keyed by
// their lowercase tag names. Repeated sub-aggregates and dotted vendor
// extension tags are not part of an attribute map.
type Attributes map[string]string

// Get returns the value for a key, or the empty string when absent.
// Lookup is case-insensitive since keys are stored lowercase.
func (a Attributes) Get(key string) string {
	return a[strings.ToLower(key)]
}

// Has checks whether a key is present
func (a Attributes) Has(key string) bool {
	_, exists := a[strings.ToLower(key)]
	return exists
}

// Keys returns the sorted keys of the attribute map
func (a Attributes) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Aggregate is a typed OFX aggregate built from flattened attributes
type Aggregate interface {
	// AggregateName returns the OFX tag the aggregate was built from
	AggregateName() string
}

// Constructor builds a typed aggregate from flattened attributes
type Constructor func(attrs Attributes, strict bool) (Aggregate, error)

// ListSpec describes a repeated sub-aggregate inside an aggregate. The
// list container is detached from the tree and converted item by item
// before the parent is flattened, so repeated tags never collide in the
// attribute map.
type ListSpec struct {
	// Tag is the child aggregate holding the list, e.g. MFASSETCLASS
	Tag string

	// ItemTag is the repeated item aggregate inside it, e.g. PORTION
	ItemTag string
}

// Definition describes one known OFX aggregate tag
type Definition struct {
	// Name is the OFX tag, stored uppercase
	Name string

	// Description is a short human-readable summary
	Description string

	// CurrencyBearing marks aggregates whose children may carry a
	// CURRENCY or ORIGCURRENCY sub-aggregate that needs disambiguation
	CurrencyBearing bool

	// Lists names the repeated sub-aggregates to extract before
	// flattening
	Lists []ListSpec

	// New builds the typed aggregate. When nil the converter returns
	// only the flattened attributes.
	New Constructor
}
