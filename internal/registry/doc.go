// SPDX-License-Identifier: MPL-2.0

// Package registry holds the static table of top-level command groups.
//
// A Descriptor names a group and says where its implementation lives; it never
// references the implementation itself. The table is built once at startup
// and is read-only afterwards.
package registry
