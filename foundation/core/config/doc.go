// Package config provides configuration management for the mOFX platform.
//
// Package: config
// Title: mOFX Configuration Framework
// Description: This package implements configuration loading from TOML and
//              YAML files with auto format detection, dot-notation key
//              access, typed getters with defaults, and environment
//              variable overrides.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation with TOML/YAML support
//
// Usage:
//   import "github.com/msto63/mOFX/foundation/core/config"
//
//   cfg, err := config.LoadWithOptions("configs/config.toml", config.LoadOptions{
//     EnvPrefix: "MOFX",
//   })
//   strict := cfg.GetBool("parser.strict", true)
//   dbPath := cfg.GetString("store.path", "mofx.db")
package config
