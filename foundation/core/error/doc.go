// Package error provides comprehensive error handling capabilities for the mOFX platform.
//
// Package: error
// Title: mOFX Error Handling Framework
// Description: This package implements a structured error handling system with
//              contextual information, error codes, stack traces, and integration
//              with logging. It keeps document rejections (bad OFX input) and
//              internal defects (parser bugs) on separate, non-overlapping
//              error surfaces.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation with contextual errors and codes
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes for consistent classification
// - Offending OFX tag names carried on document rejections
// - Stack trace capture for debugging
// - Error severity levels and categorization
//
// Usage:
//   import "github.com/msto63/mOFX/foundation/core/error"
//
//   // Reject a document with the offending tag
//   err := error.New("closing tag </BANKID> does not match open tag <ACCTID>").
//     WithCode(error.CodeTagMismatch).
//     WithTag("BANKID")
//
//   // Check error classification
//   if error.GetCode(err).IsDocumentError() {
//     // Reject the document, keep serving
//   }
package error
