// SPDX-License-Identifier: MPL-2.0

// Package devicegroup defines the contract between the idevctl dispatcher and
// the packages that implement device command groups.
//
// A command group package registers a module with the catalog from an init
// function:
//
//	func init() {
//		devicegroup.Register("idevctl/cli/afc", func() (devicegroup.Module, error) {
//			return devicegroup.Module{"afc": devicegroup.FromCobraFunc(newAFCCommand)}, nil
//		})
//	}
//
// newAFCCommand must build a new tree on every call. The dispatcher may run
// a command twice in one process (the tunneld retry), and cobra keeps parsed
// flag values on the tree.
//
// The load function runs at most once per process, the first time the
// dispatcher needs an attribute of that module. Until then the package only
// pays for the registration itself.
package devicegroup
