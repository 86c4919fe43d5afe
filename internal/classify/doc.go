// SPDX-License-Identifier: MPL-2.0

// Package classify maps failures raised by device command groups to the
// message, exit code and retry decision the dispatcher acts on.
//
// The mapping is a closed table keyed by device.FailureKind. Errors that
// carry no known kind are unclassified; the dispatcher treats them as fatal.
package classify
