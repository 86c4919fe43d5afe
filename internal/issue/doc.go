// SPDX-License-Identifier: MPL-2.0

// Package issue holds the catalog of long-form guidance shown for known
// failure situations, and ActionableError, the error type the CLI layer uses
// to attach operation context and remediation hints to a failure.
package issue
