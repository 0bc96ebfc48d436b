// Package timex provides time utility functions for the mOFX platform.
//
// Package: timex
// Title: mOFX Time Utilities
// Description: Provides date parsing for command line filters and
//              day-boundary helpers so that date ranges over statement
//              transactions behave inclusively.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation
package timex
