// File: builder_test.go
// Title: OFX Tree Builder Unit Tests
// Description: Unit tests for the OFX tree builder. Tests cover tree
//              assembly, closing tag optionality, empty aggregates, tag
//              mismatches, nesting limits, and root constraints.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-13
// Modified: 2026-08-13
//
// Change History:
// - 2026-08-13 v0.1.0: Initial tree builder test suite

package parser

import (
	"strings"
	"testing"

	mofxerror "github.com/msto63/mOFX/foundation/core/error"
	mofxtree "github.com/msto63/mOFX/foundation/ofx/tree"
)

func TestBuilder_Build(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		errCode mofxerror.Code
		check   func(t *testing.T, root *mofxtree.Node)
	}{
		{
			name:  "Single empty aggregate",
			input: "<OFX></OFX>",
			check: func(t *testing.T, root *mofxtree.Node) {
				if root.Tag != "OFX" {
					t.Errorf("Expected root OFX, got %s", root.Tag)
				}
				if root.IsLeaf() {
					t.Error("Empty aggregate must not be a leaf")
				}
				if len(root.Children) != 0 {
					t.Errorf("Expected no children, got %d", len(root.Children))
				}
			},
		},
		{
			name:  "Single leaf root",
			input: "<ACCTID>12345</ACCTID>",
			check: func(t *testing.T, root *mofxtree.Node) {
				if !root.IsLeaf() {
					t.Error("Expected leaf root")
				}
				if root.Text != "12345" {
					t.Errorf("Expected text 12345, got %q", root.Text)
				}
			},
		},
		{
			name:  "Leaf with interior slash in the tag name",
			input: "<OFX><A/B>1</OFX>",
			check: func(t *testing.T, root *mofxtree.Node) {
				if len(root.Children) != 1 {
					t.Fatalf("Expected 1 child, got %d", len(root.Children))
				}
				leaf := root.Children[0]
				if leaf.Tag != "A/B" || leaf.Text != "1" {
					t.Errorf("Expected leaf A/B=1, got %s=%q", leaf.Tag, leaf.Text)
				}
			},
		},
		{
			name:  "Leaves without closing tags",
			input: "<BANKACCTFROM><BANKID>10010010<ACCTID>12345<ACCTTYPE>CHECKING</BANKACCTFROM>",
			check: func(t *testing.T, root *mofxtree.Node) {
				if len(root.Children) != 3 {
					t.Fatalf("Expected 3 children, got %d", len(root.Children))
				}
				if root.Children[1].Tag != "ACCTID" || root.Children[1].Text != "12345" {
					t.Errorf("Unexpected second child: %v", root.Children[1])
				}
			},
		},
		{
			name:  "Nested aggregates",
			input: "<OFX><SIGNONMSGSRSV1><SONRS><STATUS><CODE>0<SEVERITY>INFO</STATUS></SONRS></SIGNONMSGSRSV1></OFX>",
			check: func(t *testing.T, root *mofxtree.Node) {
				status := root.Children[0].Children[0].Children[0]
				if status.Tag != "STATUS" {
					t.Fatalf("Expected STATUS, got %s", status.Tag)
				}
				if len(status.Children) != 2 {
					t.Errorf("Expected 2 children under STATUS, got %d", len(status.Children))
				}
			},
		},
		{
			name:  "Empty aggregate between siblings",
			input: "<SONRS><STATUS></STATUS><LANGUAGE>GER</SONRS>",
			check: func(t *testing.T, root *mofxtree.Node) {
				if len(root.Children) != 2 {
					t.Fatalf("Expected 2 children, got %d", len(root.Children))
				}
				status := root.Children[0]
				if status.IsLeaf() || len(status.Children) != 0 {
					t.Error("STATUS must be an empty aggregate")
				}
			},
		},
		{
			name:  "Surrounding junk is ignored",
			input: "garbage before\n<OFX><CODE>0</OFX>\ngarbage after",
			check: func(t *testing.T, root *mofxtree.Node) {
				if root.Tag != "OFX" || len(root.Children) != 1 {
					t.Errorf("Unexpected tree: %v", root)
				}
			},
		},
		{
			name:    "Mismatched closing tag",
			input:   "<OFX><SONRS></OFX>",
			wantErr: true,
			errCode: mofxerror.CodeTagMismatch,
		},
		{
			name:    "Closing tag without open aggregate",
			input:   "</OFX>",
			wantErr: true,
			errCode: mofxerror.CodeTagMismatch,
		},
		{
			name:    "Unclosed aggregate at end of input",
			input:   "<OFX><SONRS><CODE>0",
			wantErr: true,
			errCode: mofxerror.CodeTagMismatch,
		},
		{
			name:    "Closing tag with trailing text",
			input:   "<OFX></CODE>0</OFX>",
			wantErr: true,
			errCode: mofxerror.CodeLeafClosingText,
		},
		{
			name:    "Second top-level element",
			input:   "<OFX></OFX><OFX></OFX>",
			wantErr: true,
			errCode: mofxerror.CodeSyntax,
		},
		{
			name:    "Leaf after closed root",
			input:   "<OFX></OFX><CODE>0",
			wantErr: true,
			errCode: mofxerror.CodeSyntax,
		},
		{
			name:    "No tags at all",
			input:   "this is not an OFX document",
			wantErr: true,
			errCode: mofxerror.CodeSyntax,
		},
	}

	builder := New(Options{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := builder.Build(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error but build succeeded")
				}
				if !mofxerror.HasCode(err, tt.errCode) {
					t.Errorf("Expected code %s, got %s: %v", tt.errCode, mofxerror.GetCode(err), err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, root)
			}
		})
	}
}

// Closing tags on data leaves are optional in OFXv1. Both spellings must
// produce identical trees.
func TestBuilder_ClosingTagOptionality(t *testing.T) {
	withClosing := "<STMTTRN><TRNTYPE>DEBIT</TRNTYPE><TRNAMT>-12.50</TRNAMT><FITID>X1</FITID></STMTTRN>"
	withoutClosing := "<STMTTRN><TRNTYPE>DEBIT<TRNAMT>-12.50<FITID>X1</STMTTRN>"

	a, err := Build(withClosing)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	b, err := Build(withoutClosing)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if a.String() != b.String() {
		t.Errorf("Trees differ:\n%s\n%s", a.String(), b.String())
	}
}

func TestBuilder_MaxDepth(t *testing.T) {
	builder := New(Options{MaxDepth: 4})

	var sb strings.Builder
	for _, tag := range []string{"A", "B", "C", "D"} {
		sb.WriteString("<" + tag + ">")
	}
	sb.WriteString("<E>1")
	for _, tag := range []string{"D", "C", "B", "A"} {
		sb.WriteString("</" + tag + ">")
	}

	// Four open aggregates plus a leaf stays within the limit.
	if _, err := builder.Build(sb.String()); err != nil {
		t.Fatalf("Unexpected error at limit: %v", err)
	}

	deep := "<A><B><C><D><E>"
	_, err := builder.Build(deep)
	if err == nil {
		t.Fatal("Expected nesting error but build succeeded")
	}
	if !mofxerror.HasCode(err, mofxerror.CodeNestingTooDeep) {
		t.Errorf("Expected code %s, got %s", mofxerror.CodeNestingTooDeep, mofxerror.GetCode(err))
	}
}

func TestBuilder_ErrorsAreDocumentErrors(t *testing.T) {
	inputs := []string{
		"</OFX>",
		"<OFX><SONRS></OFX>",
		"<OFX></CODE>0</OFX>",
		"<OFX></OFX><OFX></OFX>",
		"no tags here",
	}

	for _, input := range inputs {
		_, err := Build(input)
		if err == nil {
			t.Errorf("Expected error for %q", input)
			continue
		}
		if !mofxerror.GetCode(err).IsDocumentError() {
			t.Errorf("Expected document error for %q, got %s", input, mofxerror.GetCode(err))
		}
		if mofxerror.HasCode(err, mofxerror.CodeInternalInvariant) {
			t.Errorf("Malformed input %q must never surface as internal invariant", input)
		}
	}
}

func TestBuilder_Reuse(t *testing.T) {
	builder := New(Options{})

	if _, err := builder.Build("<OFX><SONRS>"); err == nil {
		t.Fatal("Expected error for unclosed input")
	}

	// A failed build must not leak state into the next one.
	root, err := builder.Build("<OFX><CODE>0</OFX>")
	if err != nil {
		t.Fatalf("Unexpected error after failed build: %v", err)
	}
	if root.Tag != "OFX" || len(root.Children) != 1 {
		t.Errorf("Unexpected tree after reuse: %v", root)
	}
}
