// File: ofx.go
// Title: OFX Engine Interface
// Description: Provides the main OFX engine and high-level API for parsing
//              OFX documents. Integrates header handling, the tag soup
//              parser, the aggregate registry, and the converter into one
//              entry point.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-16
// Modified: 2026-08-16
//
// Change History:
// - 2026-08-16 v0.1.0: Initial OFX engine implementation

package ofx

import (
	"time"

	mofxerror "github.com/msto63/mOFX/foundation/core/error"
	mofxlog "github.com/msto63/mOFX/foundation/core/log"
	mofxaggregates "github.com/msto63/mOFX/foundation/ofx/aggregates"
	mofxconvert "github.com/msto63/mOFX/foundation/ofx/convert"
	mofxheader "github.com/msto63/mOFX/foundation/ofx/header"
	mofxparser "github.com/msto63/mOFX/foundation/ofx/parser"
	mofxregistry "github.com/msto63/mOFX/foundation/ofx/registry"
	mofxtree "github.com/msto63/mOFX/foundation/ofx/tree"
)

// DefaultMaxDocumentSize limits accepted document size. Bank statements
// are small; anything beyond a few megabytes is suspect.
const DefaultMaxDocumentSize = 8 << 20

// Options configures the OFX engine behavior
type Options struct {
	// Logger for OFX operations (optional, defaults to default logger)
	Logger *mofxlog.Logger

	// Registry of aggregate definitions (optional, defaults to the
	// built-in set)
	Registry *mofxregistry.Registry

	// MaxDocumentSize limits input document length in bytes
	// (default: DefaultMaxDocumentSize)
	MaxDocumentSize int

	// MaxDepth limits aggregate nesting (default: parser default)
	MaxDepth int

	// Strict controls element validation during conversion
	// (default: true; set Lax to disable)
	Lax bool
}

// Document is a parsed OFX document
type Document struct {
	// Header is the stripped metadata block
	Header *mofxheader.Header

	// Root is the top-level node of the tag tree
	Root *mofxtree.Node

	// ParseTime is the time taken to parse the document
	ParseTime time.Duration
}

// Find returns all nodes with the given tag in document order
func (d *Document) Find(tag string) []*mofxtree.Node {
	var found []*mofxtree.Node
	d.Root.Walk(func(n *mofxtree.Node) bool {
		if n.Tag == tag {
			found = append(found, n)
		}
		return true
	})
	return found
}

// Engine coordinates header stripping, parsing, and conversion
type Engine struct {
	builder   *mofxparser.Builder
	converter *mofxconvert.Converter
	registry  *mofxregistry.Registry
	logger    *mofxlog.Logger
	options   Options
}

// NewEngine creates a new OFX engine with the specified options
func NewEngine(opts ...Options) (*Engine, error) {
	options := Options{
		Logger:          mofxlog.GetDefault(),
		MaxDocumentSize: DefaultMaxDocumentSize,
	}

	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.Registry != nil {
			options.Registry = provided.Registry
		}
		if provided.MaxDocumentSize > 0 {
			options.MaxDocumentSize = provided.MaxDocumentSize
		}
		if provided.MaxDepth > 0 {
			options.MaxDepth = provided.MaxDepth
		}
		options.Lax = provided.Lax
	}

	if options.Registry == nil {
		options.Registry = mofxaggregates.Default()
	}

	logger := options.Logger.WithField("component", "ofx-engine")

	builder := mofxparser.New(mofxparser.Options{
		Logger:   logger,
		MaxDepth: options.MaxDepth,
	})

	converter, err := mofxconvert.New(mofxconvert.Options{
		Registry: options.Registry,
		Logger:   logger,
	})
	if err != nil {
		return nil, mofxerror.Wrap(err, "failed to initialize OFX converter")
	}

	engine := &Engine{
		builder:   builder,
		converter: converter,
		registry:  options.Registry,
		logger:    logger,
		options:   options,
	}

	logger.Info("OFX engine initialized", mofxlog.Fields{
		"maxDocumentSize": options.MaxDocumentSize,
		"aggregates":      options.Registry.Len(),
		"lax":             options.Lax,
	})

	return engine, nil
}

// Parse strips the header and builds the tag tree of an OFX document
func (e *Engine) Parse(text string) (*Document, error) {
	timer := e.logger.StartTimer("ofx_document_parse")
	defer timer.Stop()

	if err := e.validateInput(text); err != nil {
		return nil, err
	}

	hdr, body, err := mofxheader.Strip(text)
	if err != nil {
		e.logger.Warn("OFX header rejected", mofxlog.Fields{
			"error": err.Error(),
		})
		return nil, err
	}

	start := time.Now()
	root, err := e.builder.Build(body)
	if err != nil {
		e.logger.Warn("OFX document rejected", mofxlog.Fields{
			"error": err.Error(),
		})
		return nil, err
	}

	doc := &Document{
		Header:    hdr,
		Root:      root,
		ParseTime: time.Since(start),
	}

	e.logger.Info("OFX document parsed", mofxlog.Fields{
		"root":     root.Tag,
		"nodes":    root.Count(),
		"version":  int(hdr.Version),
		"duration": doc.ParseTime,
	})

	return doc, nil
}

// Convert converts one aggregate subtree into its domain form under the
// engine's strictness policy
func (e *Engine) Convert(node *mofxtree.Node) (*mofxconvert.Result, error) {
	return e.converter.Convert(node, !e.options.Lax)
}

// ConvertAll finds every aggregate with the given tag in the document and
// converts each. Conversion stops at the first failure; malformed
// financial data is never partially accepted.
func (e *Engine) ConvertAll(doc *Document, tag string) ([]*mofxconvert.Result, error) {
	nodes := doc.Find(tag)

	results := make([]*mofxconvert.Result, 0, len(nodes))
	for _, node := range nodes {
		result, err := e.Convert(node)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}

// Registry returns the aggregate registry for registration of custom
// definitions
func (e *Engine) Registry() *mofxregistry.Registry {
	return e.registry
}

// validateInput validates the raw document text
func (e *Engine) validateInput(text string) error {
	if text == "" {
		return mofxerror.New("document input cannot be empty").
			WithCode(mofxerror.CodeInvalidInput).
			WithOperation("ofx.Engine.Parse")
	}

	if len(text) > e.options.MaxDocumentSize {
		return mofxerror.Newf("document exceeds maximum size: %d > %d", len(text), e.options.MaxDocumentSize).
			WithCode(mofxerror.CodeInvalidInput).
			WithOperation("ofx.Engine.Parse")
	}

	return nil
}
