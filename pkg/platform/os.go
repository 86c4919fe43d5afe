// SPDX-License-Identifier: MPL-2.0

package platform

import "runtime"

// OS name constants for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// Current returns the running OS name.
func Current() string { return runtime.GOOS }

// DisplayName returns a human-readable OS name for messages.
func DisplayName(goos string) string {
	switch goos {
	case Windows:
		return "Windows"
	case Darwin:
		return "macOS"
	case Linux:
		return "Linux"
	default:
		return goos
	}
}
