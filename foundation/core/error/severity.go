// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization, monitoring, and alerting. Severity levels
//              separate routine document rejections from parser defects.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: invalid leaf value under lax validation, missing optional fields
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that rejects a document but leaves the
	// system healthy
	// Examples: malformed tag soup, duplicate keys, unknown aggregates
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: database failures, unusable configuration
	SeverityHigh

	// SeverityCritical indicates a defect in mOFX itself
	// Examples: builder invariant violations, data corruption
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the appropriate severity level based on
// an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// A violated builder invariant is a bug in mOFX, not bad input
	case CodeInternalInvariant, CodeInternal:
		return SeverityCritical

	// High severity errors
	case CodeDatabaseError, CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh

	// Document rejections
	case CodeSyntax, CodeTagMismatch, CodeLeafClosingText, CodeNestingTooDeep,
		CodeDuplicateKey, CodeAmbiguousCurrency, CodeUnknownAggregate,
		CodeHeaderInvalid, CodeHeaderUnsupported, CodeDuplicateEntry:
		return SeverityMedium

	// Field-level validation issues
	case CodeInvalidInput, CodeNotFound, CodeValidationFailed, CodeRequiredField,
		CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidLength:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
