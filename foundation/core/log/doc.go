// Package log provides structured logging capabilities for the mOFX platform.
//
// Package: log
// Title: mOFX Structured Logging Framework
// Description: This package implements a structured logging system with log
//              levels, contextual fields, and multiple output formats (JSON,
//              text, colored console). It integrates with the mOFX error
//              system so document rejections and internal defects are logged
//              at the level their severity demands.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation with structured logging
//
// Usage:
//   import "github.com/msto63/mOFX/foundation/core/log"
//
//   logger := log.New().WithName("ofx-parser").WithField("component", "builder")
//   logger.Info("document parsed", log.Fields{"tags": 41, "depth": 6})
//
//   // Severity-aware error logging
//   logger.LogError(err)
package log
