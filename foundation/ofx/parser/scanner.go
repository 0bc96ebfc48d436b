// File: scanner.go
// Title: OFX Tag Scanner
// Description: Implements the lexical scan of OFX tag soup. Converts raw
//              document text into a stream of typed tag tokens for the tree
//              builder, handling both OFXv1 (SGML, optional closing tags)
//              and OFXv2 (XML, explicit closing tags) conventions, and
//              provides position information for error reporting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-13
// Modified: 2026-08-13
//
// Change History:
// - 2026-08-13 v0.1.0: Initial scanner implementation

package parser

import (
	"fmt"
	"strings"

	mofxerror "github.com/msto63/mOFX/foundation/core/error"
)

// TokenKind classifies a scanned tag token
type TokenKind int

const (
	// TokenEOF marks the end of the input
	TokenEOF TokenKind = iota

	// TokenLeaf is a data-bearing element: a tag followed by non-blank text.
	// Closing tags are optional for leaves in OFXv1, so the scanner never
	// emits a separate close event for them.
	TokenLeaf

	// TokenOpen opens an aggregate (tagged branch without data)
	TokenOpen

	// TokenClose closes the innermost open aggregate
	TokenClose
)

// String returns a string representation of the token kind
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EOF"
	case TokenLeaf:
		return "LEAF"
	case TokenOpen:
		return "OPEN"
	case TokenClose:
		return "CLOSE"
	default:
		return "UNKNOWN"
	}
}

// Token represents one classified tag match with position information
type Token struct {
	Kind        TokenKind // Token classification
	Name        string    // Tag name without angle brackets or closing marker
	Text        string    // Trimmed payload text (TokenLeaf only)
	InlineClose bool      // An immediately adjacent matching closing tag was consumed
	Position    int       // Byte position of the opening '<' (0-based)
	Line        int       // Line number (1-based)
	Column      int       // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Kind {
	case TokenLeaf:
		return fmt.Sprintf("LEAF(%s=%q)", t.Name, t.Text)
	case TokenEOF:
		return "EOF"
	default:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Name)
	}
}

// Scanner performs the lexical scan of OFX tag soup. It is a single-pass,
// left-to-right scanner; text that is not part of a tag match is skipped,
// mirroring the legacy format's tolerance for stray bytes between tags.
type Scanner struct {
	input string
	pos   int // Current byte position
	line  int // Current line number (1-based)
	col   int // Current column number (1-based)
}

// closingMarker is the tag-name prefix that marks a closing tag
const closingMarker = '/'

// NewScanner creates a new scanner for the given input
func NewScanner(input string) *Scanner {
	return &Scanner{
		input: input,
		line:  1,
		col:   1,
	}
}

// Next returns the next classified token from the input. It returns a
// TokenEOF token once the input is exhausted. The only scan-level error is
// a closing tag carrying trailing text, which the OFX grammar forbids.
func (s *Scanner) Next() (Token, error) {
	for {
		start, ok := s.findTagStart()
		if !ok {
			return Token{Kind: TokenEOF, Position: len(s.input), Line: s.line, Column: s.col}, nil
		}

		tok := Token{Position: start.pos, Line: start.line, Column: start.col}

		name, ok := s.readTagName(start.pos + 1)
		if !ok {
			// Not a well-formed tag; skip the '<' and keep scanning.
			s.advanceTo(start.pos + 1)
			continue
		}

		afterName := start.pos + 1 + len(name) + 1 // '<' + name + '>'
		text, afterText := s.readText(afterName)
		inline, afterClose := s.readInlineClose(afterText, name)

		s.advanceTo(afterClose)

		tok.Name = name
		tok.InlineClose = inline

		trimmed := strings.TrimSpace(text)
		if trimmed != "" {
			// Data-bearing element. A closing tag can never carry payload.
			if name[0] == closingMarker {
				return tok, mofxerror.Newf("<%s> is a closing tag, but has trailing text: %q", name, trimmed).
					WithCode(mofxerror.CodeLeafClosingText).
					WithOperation("parser.Scanner.Next").
					WithTag(strings.TrimPrefix(name, string(closingMarker))).
					WithDetail("line", tok.Line)
			}
			tok.Kind = TokenLeaf
			tok.Text = trimmed
			return tok, nil
		}

		if name[0] == closingMarker {
			tok.Kind = TokenClose
			tok.Name = name[1:]
			return tok, nil
		}

		tok.Kind = TokenOpen
		return tok, nil
	}
}

// Tokenize returns all tokens from the input as a slice
func (s *Scanner) Tokenize() ([]Token, error) {
	var tokens []Token

	for {
		tok, err := s.Next()
		if err != nil {
			return tokens, err
		}

		tokens = append(tokens, tok)

		if tok.Kind == TokenEOF {
			return tokens, nil
		}
	}
}

// position captures a byte position with its line/column
type position struct {
	pos  int
	line int
	col  int
}

// findTagStart advances to the next '<' and returns its position
func (s *Scanner) findTagStart() (position, bool) {
	for s.pos < len(s.input) {
		if s.input[s.pos] == '<' {
			return position{pos: s.pos, line: s.line, col: s.col}, true
		}
		s.step()
	}
	return position{}, false
}

// readTagName reads a tag name starting at the given offset (just past the
// '<'). A name is one or more characters from the restricted OFX tag
// charset, optionally prefixed with the closing marker, and must be
// terminated by '>'. Returns the name without brackets and whether the
// match is well formed.
func (s *Scanner) readTagName(offset int) (string, bool) {
	i := offset

	if i < len(s.input) && s.input[i] == closingMarker {
		i++
	}

	nameStart := i
	for i < len(s.input) && isTagChar(s.input[i]) {
		i++
	}

	if i == nameStart || i >= len(s.input) || s.input[i] != '>' {
		return "", false
	}

	return s.input[offset:i], true
}

// readText reads the raw text run following a tag up to the next '<' or EOF
func (s *Scanner) readText(offset int) (string, int) {
	i := offset
	for i < len(s.input) && s.input[i] != '<' {
		i++
	}
	return s.input[offset:i], i
}

// readInlineClose consumes an immediately adjacent matching closing tag
// fragment ("</" + name + ">") if present, returning whether it was found
// and the offset after it
func (s *Scanner) readInlineClose(offset int, name string) (bool, int) {
	frag := "</" + name + ">"
	if strings.HasPrefix(s.input[offset:], frag) {
		return true, offset + len(frag)
	}
	return false, offset
}

// advanceTo moves the scanner position forward to the given offset while
// maintaining line and column tracking
func (s *Scanner) advanceTo(offset int) {
	for s.pos < offset && s.pos < len(s.input) {
		s.step()
	}
}

// step advances one byte and updates line/column tracking
func (s *Scanner) step() {
	if s.input[s.pos] == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.pos++
}

// isTagChar reports whether the byte belongs to the restricted OFX tag
// charset: uppercase letters, digits 1-9, dot, and slash. Whether a tag
// closes an aggregate is decided by the leading marker alone, so a slash
// inside the name body stays part of the name.
func isTagChar(ch byte) bool {
	return ('A' <= ch && ch <= 'Z') || ('1' <= ch && ch <= '9') || ch == '.' || ch == closingMarker
}
