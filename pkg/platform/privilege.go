// SPDX-License-Identifier: MPL-2.0

package platform

// AccessDeniedHint returns the message shown when a device operation fails
// because the process lacks the privileges to reach the device stack.
func AccessDeniedHint(goos string, sandbox SandboxType) string {
	if sandbox != SandboxNone {
		return "This command requires access to the host USB stack, which the " +
			string(sandbox) + " sandbox does not grant. Consider running idevctl outside the sandbox" +
			spawnSuffix(sandbox) + "."
	}

	if goos == Windows {
		return "This command requires admin privileges. Consider retrying with \"run-as administrator\"."
	}
	return "This command requires root privileges. Consider retrying with \"sudo\"."
}

// CurrentAccessDeniedHint is AccessDeniedHint for the running process.
func CurrentAccessDeniedHint() string {
	return AccessDeniedHint(Current(), DetectSandbox())
}

func spawnSuffix(st SandboxType) string {
	cmd := SpawnCommandFor(st)
	if cmd == "" {
		return ""
	}
	return " (e.g. via \"" + cmd + "\")"
}
