// SPDX-License-Identifier: MPL-2.0

// Package lazygroup defers loading a command group until one of its commands
// is needed.
//
// A Provider is created for every registered group when the CLI starts and
// does nothing until ListCommands or GetCommand is called. The first call
// loads the group's module through a devicegroup.Loader and keeps the result
// (success or failure) for the rest of the process.
package lazygroup
