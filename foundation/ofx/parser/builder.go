// File: builder.go
// Title: OFX Tree Builder
// Description: Implements the tree building stage of the OFX parser.
//              Consumes the token stream from the scanner and assembles a
//              tag tree, maintaining an explicit stack of open aggregates,
//              enforcing the nesting limit, and keeping document-level
//              rejections strictly apart from internal defects.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-13
// Modified: 2026-08-13
//
// Change History:
// - 2026-08-13 v0.1.0: Initial tree builder implementation

package parser

import (
	mofxerror "github.com/msto63/mOFX/foundation/core/error"
	"github.com/msto63/mOFX/foundation/core/log"
	"github.com/msto63/mOFX/foundation/ofx/tree"
)

// DefaultMaxDepth is the default aggregate nesting limit. Real OFX
// statements nest well below ten levels; the limit exists because the
// input is untrusted.
const DefaultMaxDepth = 32

// Options configures a Builder
type Options struct {
	// Logger for parse diagnostics. Uses the default logger when nil.
	Logger *log.Logger

	// MaxDepth is the aggregate nesting limit. Zero means DefaultMaxDepth.
	MaxDepth int
}

// Builder assembles a tag tree from OFX tag soup. A Builder is stateless
// between calls to Build and may be reused; it must not be used from
// multiple goroutines at once.
type Builder struct {
	logger   *log.Logger
	maxDepth int
}

// New creates a new Builder with the given options
func New(opts Options) *Builder {
	logger := opts.Logger
	if logger == nil {
		logger = log.GetDefault().WithName("ofx.parser")
	}

	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	return &Builder{
		logger:   logger,
		maxDepth: maxDepth,
	}
}

// Build parses the given tag soup and returns the root of the resulting
// tag tree. The input must contain exactly one top-level element. Errors
// returned for malformed documents carry document-level error codes;
// CodeInternalInvariant is reserved for defects in the builder itself and
// never signals bad input.
func (b *Builder) Build(text string) (*tree.Node, error) {
	scanner := NewScanner(text)

	var root *tree.Node
	var stack []*tree.Node

	for {
		tok, err := scanner.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenEOF {
			break
		}

		switch tok.Kind {
		case TokenLeaf:
			leaf := tree.NewLeaf(tok.Name, tok.Text)
			if len(stack) == 0 {
				if err := setRoot(&root, leaf, tok); err != nil {
					return nil, err
				}
				continue
			}
			stack[len(stack)-1].AddChild(leaf)

		case TokenOpen:
			node := tree.New(tok.Name)
			if len(stack) == 0 {
				if err := setRoot(&root, node, tok); err != nil {
					return nil, err
				}
			} else {
				stack[len(stack)-1].AddChild(node)
			}
			if tok.InlineClose {
				// <TAG></TAG> is the legal empty-aggregate shorthand;
				// the node stays a childless aggregate.
				continue
			}
			stack = append(stack, node)
			if len(stack) > b.maxDepth {
				return nil, mofxerror.Newf("aggregate nesting exceeds limit of %d at <%s>", b.maxDepth, tok.Name).
					WithCode(mofxerror.CodeNestingTooDeep).
					WithOperation("parser.Builder.Build").
					WithTag(tok.Name).
					WithDetail("line", tok.Line)
			}

		case TokenClose:
			if len(stack) == 0 {
				return nil, mofxerror.Newf("closing tag </%s> without any open aggregate", tok.Name).
					WithCode(mofxerror.CodeTagMismatch).
					WithOperation("parser.Builder.Build").
					WithTag(tok.Name).
					WithDetail("line", tok.Line)
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.Tag != tok.Name {
				return nil, mofxerror.Newf("closing tag </%s> does not match open aggregate <%s>", tok.Name, top.Tag).
					WithCode(mofxerror.CodeTagMismatch).
					WithOperation("parser.Builder.Build").
					WithTag(tok.Name).
					WithDetail("expected", top.Tag).
					WithDetail("line", tok.Line)
			}

		default:
			// The scanner only emits the kinds handled above.
			return nil, mofxerror.Newf("builder received unexpected token kind %v", tok.Kind).
				WithCode(mofxerror.CodeInternalInvariant).
				WithOperation("parser.Builder.Build")
		}
	}

	if len(stack) > 0 {
		return nil, mofxerror.Newf("document ends with %d unclosed aggregate(s), innermost <%s>", len(stack), stack[len(stack)-1].Tag).
			WithCode(mofxerror.CodeTagMismatch).
			WithOperation("parser.Builder.Build").
			WithTag(stack[len(stack)-1].Tag)
	}

	if root == nil {
		return nil, mofxerror.New("document contains no OFX tags").
			WithCode(mofxerror.CodeSyntax).
			WithOperation("parser.Builder.Build")
	}

	b.logger.WithField("root", root.Tag).
		WithField("nodes", root.Count()).
		Debug("OFX tree built")

	return root, nil
}

// Build parses the given tag soup with default options
func Build(text string) (*tree.Node, error) {
	return New(Options{}).Build(text)
}

// setRoot installs the top-level element, rejecting a second one
func setRoot(root **tree.Node, node *tree.Node, tok Token) error {
	if *root != nil {
		return mofxerror.Newf("document has more than one top-level element, second is <%s>", node.Tag).
			WithCode(mofxerror.CodeSyntax).
			WithOperation("parser.Builder.Build").
			WithTag(node.Tag).
			WithDetail("line", tok.Line)
	}
	*root = node
	return nil
}
