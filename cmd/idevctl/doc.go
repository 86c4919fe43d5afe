// SPDX-License-Identifier: MPL-2.0

// Package cmd is the idevctl command line. It builds a fresh cobra root for
// every attempt, routes the first argument to a lazily resolved command
// group, and hands failures to the dispatcher, which classifies them and may
// retry once over tunneld.
package cmd
