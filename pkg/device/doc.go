// SPDX-License-Identifier: MPL-2.0

// Package device defines the closed set of structured failures that device
// command groups raise.
//
// Command group implementations return a *Error carrying a FailureKind and,
// for some kinds, the device identifier, OS name, feature or service involved.
// The dispatcher classifies these failures into user-facing messages and, for
// a few kinds, retries the invocation over a tunnel.
package device
