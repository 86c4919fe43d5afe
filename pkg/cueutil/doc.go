// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates configuration data against embedded CUE schemas.
//
// Two entry points share one schema check:
//
//   - ParseAndDecode compiles CUE source, unifies it with a schema
//     definition and decodes the result.
//   - ValidateGo encodes an already-decoded Go value (for example the map
//     produced by a TOML decoder) and checks it against the same definition.
//
// Errors carry the file name and a JSON-style path to the offending field:
//
//	config.toml: log.level: 2 errors in empty disjunction
package cueutil
