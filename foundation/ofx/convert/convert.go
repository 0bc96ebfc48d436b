// File: convert.go
// Title: OFX Aggregate Converter
// Description: Converts a parsed aggregate subtree into its domain form:
//              extracts repeated list structures before flattening, resolves
//              the target type through the aggregate registry, reconstructs
//              the currency provenance that flattening destroys, and invokes
//              the registered constructor with the caller's strictness
//              policy.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-14
//
// Change History:
// - 2026-08-14 v0.1.0: Initial converter implementation

package convert

import (
	"strings"

	mofxerror "github.com/msto63/mOFX/foundation/core/error"
	"github.com/msto63/mOFX/foundation/core/log"
	"github.com/msto63/mOFX/foundation/ofx/registry"
	"github.com/msto63/mOFX/foundation/ofx/tree"
)

// Currency provenance tags. Flattening merges both down to the same
// currate/cursym keys, so the converter records which aggregate was the
// source under the synthesized curtype key.
const (
	tagCurrency     = "CURRENCY"
	tagOrigCurrency = "ORIGCURRENCY"

	// CurTypeKey is the synthesized attribute holding the currency
	// provenance, either "CURRENCY" or "ORIGCURRENCY"
	CurTypeKey = "curtype"
)

// Result is the outcome of one aggregate conversion. Extracted list
// sequences and vendor extensions travel alongside the primary object in
// explicit fields.
type Result struct {
	// Aggregate is the typed domain object, nil when the registry
	// definition carries no constructor
	Aggregate registry.Aggregate

	// Attributes is the flattened element map, including the
	// synthesized curtype key for currency-bearing aggregates
	Attributes registry.Attributes

	// Lists holds the converted items of extracted list structures,
	// keyed by the lowercase list container tag
	Lists map[string][]*Result

	// Extensions holds dotted vendor-extension leaves found in the
	// subtree, keyed by lowercase tag. Extensions are excluded from
	// Attributes and never validated.
	Extensions map[string]string
}

// Options configures a Converter
type Options struct {
	// Registry supplying the aggregate definitions. Required.
	Registry *registry.Registry

	// Logger for conversion diagnostics. Uses the default logger when nil.
	Logger *log.Logger
}

// Converter turns parsed aggregate subtrees into domain objects
type Converter struct {
	registry *registry.Registry
	logger   *log.Logger
}

// New creates a new Converter
func New(opts Options) (*Converter, error) {
	if opts.Registry == nil {
		return nil, mofxerror.New("converter requires a registry").
			WithCode(mofxerror.CodeValidationFailed).
			WithOperation("convert.New")
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.GetDefault().WithName("ofx.convert")
	}

	return &Converter{
		registry: opts.Registry,
		logger:   logger,
	}, nil
}

// Convert turns the aggregate subtree rooted at node into its domain form.
// List-valued children of designated container types are converted item by
// item and detached before flattening. The strict flag is passed through
// to the registered constructor unchanged; validation policy belongs to
// the aggregate types, not the converter.
//
// Malformed financial data is never partially accepted: the first error
// aborts the conversion.
func (c *Converter) Convert(node *tree.Node, strict bool) (*Result, error) {
	if node == nil {
		return nil, mofxerror.New("cannot convert a nil node").
			WithCode(mofxerror.CodeInternalInvariant).
			WithOperation("convert.Converter.Convert")
	}

	def, lookupErr := c.registry.Lookup(node.Tag)

	result := &Result{}

	// Lists must come out before flattening; repeated items at one
	// level cannot be represented as unique keys.
	if def != nil && len(def.Lists) > 0 {
		lists, err := c.extractLists(node, def, strict)
		if err != nil {
			return nil, err
		}
		result.Lists = lists
	}

	result.Extensions = collectExtensions(node)

	attrs, err := Flatten(node)
	if err != nil {
		return nil, err
	}
	result.Attributes = attrs

	if lookupErr != nil {
		return nil, lookupErr
	}

	if def.CurrencyBearing {
		if err := c.disambiguateCurrency(node, attrs); err != nil {
			return nil, err
		}
	}

	if def.New != nil {
		aggregate, err := def.New(attrs, strict)
		if err != nil {
			return nil, err
		}
		result.Aggregate = aggregate
	}

	c.logger.Debug("OFX aggregate converted", log.Fields{
		"tag":        def.Name,
		"attributes": len(attrs),
		"lists":      len(result.Lists),
	})

	return result, nil
}

// extractLists converts and detaches the repeated list structures named by
// the definition. Item conversion recursively applies the full conversion
// contract.
func (c *Converter) extractLists(node *tree.Node, def *registry.Definition, strict bool) (map[string][]*Result, error) {
	lists := make(map[string][]*Result)

	for _, spec := range def.Lists {
		container := node.FindChild(spec.Tag)
		if container == nil {
			continue
		}

		items := make([]*Result, 0, len(container.Children))
		for _, item := range container.Children {
			if item.Tag != spec.ItemTag {
				return nil, mofxerror.Newf("<%s> may only contain <%s> items, found <%s>", spec.Tag, spec.ItemTag, item.Tag).
					WithCode(mofxerror.CodeSyntax).
					WithOperation("convert.Converter.extractLists").
					WithTag(spec.Tag)
			}
			converted, err := c.Convert(item, strict)
			if err != nil {
				return nil, err
			}
			items = append(items, converted)
		}

		node.RemoveChild(container)
		lists[strings.ToLower(spec.Tag)] = items
	}

	return lists, nil
}

// disambiguateCurrency records the currency provenance lost by flattening.
// Exactly one of CURRENCY or ORIGCURRENCY may appear below the node's
// children; both at once is a fatal ambiguity.
func (c *Converter) disambiguateCurrency(node *tree.Node, attrs registry.Attributes) error {
	currency := node.FindGrandchild(tagCurrency)
	origCurrency := node.FindGrandchild(tagOrigCurrency)

	if currency != nil && origCurrency != nil {
		return mofxerror.Newf("<%s> may not contain both <%s> and <%s>", node.Tag, tagCurrency, tagOrigCurrency).
			WithCode(mofxerror.CodeAmbiguousCurrency).
			WithOperation("convert.Converter.disambiguateCurrency").
			WithTag(node.Tag)
	}

	found := currency
	if found == nil {
		found = origCurrency
	}
	if found != nil {
		attrs[CurTypeKey] = found.Tag
	}

	return nil
}

// collectExtensions gathers dotted vendor-extension leaves from the
// subtree. The flattener drops them silently; financial records should
// not lose data without a trace, so they are retained here. The first
// occurrence of a tag wins.
func collectExtensions(node *tree.Node) map[string]string {
	var extensions map[string]string

	node.Walk(func(n *tree.Node) bool {
		if n.IsLeaf() && strings.Contains(n.Tag, extensionMarker) {
			key := strings.ToLower(n.Tag)
			if extensions == nil {
				extensions = make(map[string]string)
			}
			if _, exists := extensions[key]; !exists {
				extensions[key] = n.Text
			}
		}
		return true
	})

	return extensions
}
