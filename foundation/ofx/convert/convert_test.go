// File: convert_test.go
// Title: OFX Converter Unit Tests
// Description: Unit tests for the aggregate converter covering registry
//              resolution, list extraction, currency disambiguation,
//              strictness passthrough, and vendor-extension collection.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-14
//
// Change History:
// - 2026-08-14 v0.1.0: Initial converter test suite

package convert

import (
	"testing"

	mofxerror "github.com/msto63/mOFX/foundation/core/error"
	"github.com/msto63/mOFX/foundation/ofx/parser"
	"github.com/msto63/mOFX/foundation/ofx/registry"
)

// testAggregate is a minimal typed aggregate for converter tests
type testAggregate struct {
	name  string
	attrs registry.Attributes
}

func (a *testAggregate) AggregateName() string {
	return a.name
}

// newTestRegistry builds a registry with the definitions the tests need
func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()

	reg := registry.New(registry.Options{})

	constructor := func(name string) registry.Constructor {
		return func(attrs registry.Attributes, strict bool) (registry.Aggregate, error) {
			return &testAggregate{name: name, attrs: attrs}, nil
		}
	}

	reg.MustRegister(&registry.Definition{
		Name: "STATUS",
		New:  constructor("STATUS"),
	})
	reg.MustRegister(&registry.Definition{
		Name:            "STMTTRN",
		CurrencyBearing: true,
		New:             constructor("STMTTRN"),
	})
	reg.MustRegister(&registry.Definition{
		Name: "MFINFO",
		Lists: []registry.ListSpec{
			{Tag: "MFASSETCLASS", ItemTag: "PORTION"},
			{Tag: "FIMFASSETCLASS", ItemTag: "FIPORTION"},
		},
		New: constructor("MFINFO"),
	})
	reg.MustRegister(&registry.Definition{
		Name: "PORTION",
		New:  constructor("PORTION"),
	})
	reg.MustRegister(&registry.Definition{
		Name: "FIPORTION",
		New:  constructor("FIPORTION"),
	})

	// Rejects in strict mode when fitid is missing.
	reg.MustRegister(&registry.Definition{
		Name: "PICKYTRN",
		New: func(attrs registry.Attributes, strict bool) (registry.Aggregate, error) {
			if strict && !attrs.Has("fitid") {
				return nil, mofxerror.New("fitid is required").
					WithCode(mofxerror.CodeRequiredField).
					WithTag("PICKYTRN")
			}
			return &testAggregate{name: "PICKYTRN", attrs: attrs}, nil
		},
	})

	return reg
}

func newTestConverter(t *testing.T) *Converter {
	t.Helper()

	converter, err := New(Options{Registry: newTestRegistry(t)})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return converter
}

func TestConverter_Convert(t *testing.T) {
	converter := newTestConverter(t)

	root, err := parser.Build("<STATUS><CODE>0<SEVERITY>INFO</STATUS>")
	if err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}

	result, err := converter.Convert(root, true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.Aggregate == nil {
		t.Fatal("Expected typed aggregate")
	}
	if result.Aggregate.AggregateName() != "STATUS" {
		t.Errorf("Expected STATUS, got %s", result.Aggregate.AggregateName())
	}
	if result.Attributes.Get("code") != "0" {
		t.Errorf("Expected code 0, got %q", result.Attributes.Get("code"))
	}
	if len(result.Lists) != 0 {
		t.Errorf("Expected no lists, got %v", result.Lists)
	}
}

func TestConverter_UnknownTag(t *testing.T) {
	converter := newTestConverter(t)

	root, err := parser.Build("<NOSUCHAGG><CODE>0</NOSUCHAGG>")
	if err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}

	_, err = converter.Convert(root, true)
	if err == nil {
		t.Fatal("Expected error for unknown tag")
	}
	if !mofxerror.HasCode(err, mofxerror.CodeUnknownAggregate) {
		t.Errorf("Expected code %s, got %s", mofxerror.CodeUnknownAggregate, mofxerror.GetCode(err))
	}
}

// Flatten errors surface before the unresolved-tag error.
func TestConverter_FlattenErrorWins(t *testing.T) {
	converter := newTestConverter(t)

	root, err := parser.Build("<NOSUCHAGG><B>1</B><B>2</B></NOSUCHAGG>")
	if err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}

	_, err = converter.Convert(root, true)
	if err == nil {
		t.Fatal("Expected error")
	}
	if !mofxerror.HasCode(err, mofxerror.CodeDuplicateKey) {
		t.Errorf("Expected code %s, got %s", mofxerror.CodeDuplicateKey, mofxerror.GetCode(err))
	}
}

func TestConverter_CurrencyDisambiguation(t *testing.T) {
	converter := newTestConverter(t)

	tests := []struct {
		name        string
		input       string
		wantCurType string
		wantErr     bool
	}{
		{
			name:        "Original currency below a child",
			input:       "<STMTTRN><TRNAMT>-12.50<PAYEEINFO><ORIGCURRENCY><CURSYM>EUR</ORIGCURRENCY></PAYEEINFO></STMTTRN>",
			wantCurType: "ORIGCURRENCY",
		},
		{
			name:        "Current-rate currency below a child",
			input:       "<STMTTRN><TRNAMT>-12.50<PAYEEINFO><CURRENCY><CURSYM>EUR</CURRENCY></PAYEEINFO></STMTTRN>",
			wantCurType: "CURRENCY",
		},
		{
			name:        "No currency aggregate at all",
			input:       "<STMTTRN><TRNAMT>-12.50</STMTTRN>",
			wantCurType: "",
		},
		{
			name:    "Both currency aggregates is ambiguous",
			input:   "<STMTTRN><TRNAMT>-12.50<A><CURRENCY><CURSYM>EUR</CURRENCY></A><B><ORIGCURRENCY><CURRATE>1.1</ORIGCURRENCY></B></STMTTRN>",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := parser.Build(tt.input)
			if err != nil {
				t.Fatalf("Unexpected parse error: %v", err)
			}

			result, err := converter.Convert(root, true)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected ambiguous-currency error")
				}
				if !mofxerror.HasCode(err, mofxerror.CodeAmbiguousCurrency) {
					t.Errorf("Expected code %s, got %s", mofxerror.CodeAmbiguousCurrency, mofxerror.GetCode(err))
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got := result.Attributes.Get(CurTypeKey); got != tt.wantCurType {
				t.Errorf("Expected curtype %q, got %q", tt.wantCurType, got)
			}
		})
	}
}

func TestConverter_ListExtraction(t *testing.T) {
	converter := newTestConverter(t)

	input := "<MFINFO>" +
		"<SECNAME>MUSTERFONDS" +
		"<MFASSETCLASS>" +
		"<PORTION><ASSETCLASS>DOMESTICBOND<PERCENT>40</PORTION>" +
		"<PORTION><ASSETCLASS>INTLBOND<PERCENT>60</PORTION>" +
		"</MFASSETCLASS>" +
		"</MFINFO>"

	root, err := parser.Build(input)
	if err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}

	result, err := converter.Convert(root, true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Repeated PORTION items would collide during flattening; extraction
	// must leave only the plain elements behind.
	if result.Attributes.Get("secname") != "MUSTERFONDS" {
		t.Errorf("Expected secname MUSTERFONDS, got %q", result.Attributes.Get("secname"))
	}
	if result.Attributes.Has("assetclass") {
		t.Error("List contents must not leak into the attribute map")
	}

	portions := result.Lists["mfassetclass"]
	if len(portions) != 2 {
		t.Fatalf("Expected 2 portions, got %d", len(portions))
	}
	if portions[0].Attributes.Get("assetclass") != "DOMESTICBOND" {
		t.Errorf("Unexpected first portion: %v", portions[0].Attributes)
	}
	if portions[1].Attributes.Get("percent") != "60" {
		t.Errorf("Unexpected second portion: %v", portions[1].Attributes)
	}
	if portions[0].Aggregate == nil || portions[0].Aggregate.AggregateName() != "PORTION" {
		t.Error("Portion items must be converted with the full contract")
	}

	if _, exists := result.Lists["fimfassetclass"]; exists {
		t.Error("Absent list container must not produce an entry")
	}
}

func TestConverter_ListWithForeignItem(t *testing.T) {
	converter := newTestConverter(t)

	input := "<MFINFO><MFASSETCLASS><STATUS><CODE>0</STATUS></MFASSETCLASS></MFINFO>"
	root, err := parser.Build(input)
	if err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}

	_, err = converter.Convert(root, true)
	if err == nil {
		t.Fatal("Expected error for foreign list item")
	}
	if !mofxerror.HasCode(err, mofxerror.CodeSyntax) {
		t.Errorf("Expected code %s, got %s", mofxerror.CodeSyntax, mofxerror.GetCode(err))
	}
}

func TestConverter_StrictPassthrough(t *testing.T) {
	converter := newTestConverter(t)

	root, err := parser.Build("<PICKYTRN><TRNAMT>-12.50</PICKYTRN>")
	if err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}

	_, err = converter.Convert(root, true)
	if err == nil {
		t.Fatal("Expected constructor error in strict mode")
	}
	if !mofxerror.HasCode(err, mofxerror.CodeRequiredField) {
		t.Errorf("Constructor error must propagate unchanged, got %s", mofxerror.GetCode(err))
	}

	// Detached list state must not leak between calls; rebuild the tree.
	root, err = parser.Build("<PICKYTRN><TRNAMT>-12.50</PICKYTRN>")
	if err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}

	result, err := converter.Convert(root, false)
	if err != nil {
		t.Fatalf("Unexpected error in lax mode: %v", err)
	}
	if result.Aggregate == nil {
		t.Fatal("Expected aggregate in lax mode")
	}
}

func TestConverter_Extensions(t *testing.T) {
	converter := newTestConverter(t)

	input := "<STATUS><CODE>0<INTU.BID>00000<SEVERITY>INFO</STATUS>"
	root, err := parser.Build(input)
	if err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}

	result, err := converter.Convert(root, true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.Attributes.Has("intu.bid") {
		t.Error("Vendor extension must not appear in the attribute map")
	}
	if result.Extensions["intu.bid"] != "00000" {
		t.Errorf("Expected extension intu.bid=00000, got %v", result.Extensions)
	}
}

func TestConverter_RequiresRegistry(t *testing.T) {
	_, err := New(Options{})
	if err == nil {
		t.Fatal("Expected error for missing registry")
	}
}
