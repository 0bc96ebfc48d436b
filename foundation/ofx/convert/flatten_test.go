// File: flatten_test.go
// Title: OFX Flattener Unit Tests
// Description: Unit tests for the aggregate flattener covering key
//              normalization, collision detection at and across levels,
//              vendor-extension exclusion, and empty aggregates.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-14
//
// Change History:
// - 2026-08-14 v0.1.0: Initial flattener test suite

package convert

import (
	"testing"

	mofxerror "github.com/msto63/mOFX/foundation/core/error"
	"github.com/msto63/mOFX/foundation/ofx/parser"
	"github.com/msto63/mOFX/foundation/ofx/registry"
)

func TestFlatten(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    registry.Attributes
		wantErr bool
	}{
		{
			name:  "All leaves is the identity",
			input: "<STATUS><CODE>0<SEVERITY>INFO</STATUS>",
			want:  registry.Attributes{"code": "0", "severity": "INFO"},
		},
		{
			name:  "Nested aggregate is merged in",
			input: "<A><B>1</B><C><D>2</D></C></A>",
			want:  registry.Attributes{"b": "1", "d": "2"},
		},
		{
			name:  "Empty aggregate flattens to empty map",
			input: "<A></A>",
			want:  registry.Attributes{},
		},
		{
			name:  "Keys are lowercase, values trimmed",
			input: "<SONRS><LANGUAGE>  GER  \n</SONRS>",
			want:  registry.Attributes{"language": "GER"},
		},
		{
			name:  "Dotted vendor tag is excluded",
			input: "<SIGNONMSGSRSV1><INTU.BID>00000<LANGUAGE>GER</SIGNONMSGSRSV1>",
			want:  registry.Attributes{"language": "GER"},
		},
		{
			name:    "Duplicate sibling elements",
			input:   "<A><B>1</B><B>2</B></A>",
			wantErr: true,
		},
		{
			name:    "Duplicate keys from sibling aggregates",
			input:   "<A><C><B>1</B></C><D><B>2</B></D></A>",
			wantErr: true,
		},
		{
			name:    "Cross-level collision",
			input:   "<A><B>1</B><C><B>2</B></C></A>",
			wantErr: true,
		},
		{
			name:    "Deeply nested collision is still detected",
			input:   "<A><B><C><D>1</D></C></B><E><F><D>2</D></F></E></A>",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := parser.Build(tt.input)
			if err != nil {
				t.Fatalf("Unexpected parse error: %v", err)
			}

			attrs, err := Flatten(root)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected duplicate-key error, got %v", attrs)
				}
				if !mofxerror.HasCode(err, mofxerror.CodeDuplicateKey) {
					t.Errorf("Expected code %s, got %s", mofxerror.CodeDuplicateKey, mofxerror.GetCode(err))
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(attrs) != len(tt.want) {
				t.Fatalf("Expected %d keys, got %d: %v", len(tt.want), len(attrs), attrs)
			}
			for key, want := range tt.want {
				if got := attrs[key]; got != want {
					t.Errorf("Key %q: expected %q, got %q", key, want, got)
				}
			}
		})
	}
}

// Closing-tag optionality must be invisible after flattening.
func TestFlatten_ClosingTagOptionality(t *testing.T) {
	withClosing, err := parser.Build("<STATUS><CODE>0</CODE><SEVERITY>INFO</SEVERITY></STATUS>")
	if err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}
	withoutClosing, err := parser.Build("<STATUS><CODE>0<SEVERITY>INFO</STATUS>")
	if err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}

	a, err := Flatten(withClosing)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	b, err := Flatten(withoutClosing)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(a) != len(b) {
		t.Fatalf("Maps differ in size: %v vs %v", a, b)
	}
	for key, value := range a {
		if b[key] != value {
			t.Errorf("Key %q: %q vs %q", key, value, b[key])
		}
	}
}
