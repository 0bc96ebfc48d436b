// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the mOFX platform. These codes enable
//              structured error handling, document-rejection reporting,
//              and error monitoring.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the mOFX platform
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Parsing (tag soup -> tree)
	CodeSyntax            Code = "OFX_SYNTAX"
	CodeTagMismatch       Code = "OFX_TAG_MISMATCH"
	CodeLeafClosingText   Code = "OFX_LEAF_CLOSING_TEXT"
	CodeNestingTooDeep    Code = "OFX_NESTING_TOO_DEEP"
	CodeInternalInvariant Code = "OFX_INTERNAL_INVARIANT"

	// Conversion (tree -> aggregate)
	CodeDuplicateKey      Code = "OFX_DUPLICATE_KEY"
	CodeAmbiguousCurrency Code = "OFX_AMBIGUOUS_CURRENCY"
	CodeUnknownAggregate  Code = "OFX_UNKNOWN_AGGREGATE"

	// Header handling
	CodeHeaderInvalid     Code = "OFX_HEADER_INVALID"
	CodeHeaderUnsupported Code = "OFX_HEADER_UNSUPPORTED"

	// Validation (field-level coercion in aggregates)
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidLength    Code = "INVALID_LENGTH"

	// Storage
	CodeDatabaseError  Code = "DATABASE_ERROR"
	CodeDuplicateEntry Code = "DUPLICATE_ENTRY"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeSyntax, CodeTagMismatch, CodeLeafClosingText, CodeNestingTooDeep, CodeInternalInvariant,
		CodeDuplicateKey, CodeAmbiguousCurrency, CodeUnknownAggregate,
		CodeHeaderInvalid, CodeHeaderUnsupported,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidLength,
		CodeDatabaseError, CodeDuplicateEntry,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeSyntax, CodeTagMismatch, CodeLeafClosingText, CodeNestingTooDeep, CodeInternalInvariant:
		return "parsing"
	case CodeDuplicateKey, CodeAmbiguousCurrency, CodeUnknownAggregate:
		return "conversion"
	case CodeHeaderInvalid, CodeHeaderUnsupported:
		return "header"
	case CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidLength:
		return "validation"
	case CodeDatabaseError, CodeDuplicateEntry:
		return "storage"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// IsDocumentError reports whether the code describes a defect in the input
// document rather than a defect in the parser itself. Document errors are
// surfaced to the user as document rejection; internal errors are bugs.
// CodeInternalInvariant is never a document error.
func (c Code) IsDocumentError() bool {
	switch c {
	case CodeSyntax, CodeTagMismatch, CodeLeafClosingText, CodeNestingTooDeep,
		CodeDuplicateKey, CodeAmbiguousCurrency, CodeUnknownAggregate,
		CodeHeaderInvalid, CodeHeaderUnsupported,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat,
		CodeValueOutOfRange, CodeInvalidLength:
		return true
	default:
		return false
	}
}
