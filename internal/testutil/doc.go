// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers for tests that change process state
// (environment, working directory, home directory) or write fixture files.
// Each Must* helper fails the test on error; helpers that change state
// return a function that restores it.
package testutil
