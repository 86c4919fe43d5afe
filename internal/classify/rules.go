// SPDX-License-Identifier: MPL-2.0

package classify

import (
	"github.com/idevctl/idevctl/internal/issue"
	"github.com/idevctl/idevctl/pkg/device"
	"github.com/idevctl/idevctl/pkg/types"
)

const contributeURL = "https://github.com/idevctl/idevctl"

type (
	// Rule is the handling of one failure kind.
	Rule struct {
		// Kind is the failure kind the rule handles.
		Kind device.FailureKind
		// Message is a text/template rendered against the failure's fields
		// (see messageData). Empty for silent rules.
		Message string
		// Retry is the tunneld retry policy.
		Retry RetryPolicy
		// Predicate decides RetryConditional rules. It is not consulted for
		// other policies.
		Predicate func(f *device.Error, argv []string) bool
		// RetryReason completes "Trying again over tunneld since ...".
		RetryReason string
		// Silent suppresses all output and makes the invocation succeed.
		Silent bool
		// ShowTrace prints the failure's cause chain after the message.
		ShowTrace bool
		// Issue is the catalog entry with long-form guidance, if any.
		Issue issue.Id
		// ExitCode is the process exit status for the failure.
		ExitCode types.ExitCode
	}
)

// invalidServiceRetryable holds when the failure names a device, the
// invocation is a developer command, and no tunnel was requested yet.
func invalidServiceRetryable(f *device.Error, argv []string) bool {
	return f.Identifier != "" && IsDeveloperCommand(argv) && !HasTunnelFlag(argv)
}

// DefaultRules returns the shipped rule table, one rule per failure kind.
func DefaultRules() []Rule {
	return []Rule{
		{Kind: device.NoDeviceConnected, Message: "Device is not connected", ExitCode: 10},
		{Kind: device.DeviceDisconnected, Message: "Device was disconnected", ExitCode: 11},
		{Kind: device.NotPaired, Message: "Device is not paired", Issue: issue.PairingRequiredId, ExitCode: 12},
		{Kind: device.PairingDenied, Message: "User refused to trust this computer", ExitCode: 13},
		{Kind: device.PairingPending, Message: "Waiting for user dialog approval", Issue: issue.PairingRequiredId, ExitCode: 14},
		{Kind: device.AccessProhibited, Message: "lockdownd denied the access", ExitCode: 15},
		{Kind: device.MissingValue, Message: "No such value", ExitCode: 16},
		{Kind: device.PasscodeSet, Message: "Cannot enable developer-mode when passcode is set", ExitCode: 17},
		{Kind: device.DeveloperModeFailed, Message: "Failed to enable developer-mode. Error: {{.Cause}}", ExitCode: 18},
		{
			Kind:     device.UsbmuxConnectionFailed,
			Message:  "Failed to connect to usbmuxd socket. Make sure it's running.",
			Issue:    issue.UsbmuxUnavailableId,
			ExitCode: 19,
		},
		{Kind: device.MessageNotSupported, Message: "Message not supported for this iOS version", ShowTrace: true, ExitCode: 20},
		{Kind: device.InternalFailure, Message: "Internal Error", ExitCode: 21},
		{
			Kind:     device.DeveloperModeDisabled,
			Message:  "Developer Mode is disabled. You can try to enable it using: idevctl amfi enable-developer-mode",
			Issue:    issue.DeveloperModeDisabledId,
			ExitCode: 22,
		},
		{
			Kind:        device.InvalidService,
			Message:     "Failed to start service.",
			Retry:       RetryConditional,
			Predicate:   invalidServiceRetryable,
			RetryReason: "it is a developer command",
			Issue:       issue.InvalidServiceId,
			ExitCode:    23,
		},
		{
			Kind:        device.RSDRequired,
			Message:     "RSD is required for this command. Pass --tunnel <udid> or start tunneld with: sudo idevctl remote tunneld",
			Retry:       RetryAlways,
			RetryReason: "RSD is required for this command",
			Issue:       issue.TunneldUnreachableId,
			ExitCode:    24,
		},
		{Kind: device.NoDeviceSelected, Silent: true, ExitCode: types.ExitSuccess},
		{Kind: device.PasswordRequired, Message: "Device is password protected. Please unlock and retry", ExitCode: 25},
		{Kind: device.AccessDenied, Message: "{{.AccessDeniedHint}}", Issue: issue.AccessDeniedId, ExitCode: 26},
		{Kind: device.BrokenPipe, Message: "Broken pipe", ShowTrace: true, ExitCode: 27},
		{
			Kind:     device.TunneldUnreachable,
			Message:  "Unable to connect to Tunneld. You can start one using:\nsudo idevctl remote tunneld",
			Issue:    issue.TunneldUnreachableId,
			ExitCode: 28,
		},
		{Kind: device.DeviceNotFound, Message: "Device not found: {{.Identifier}}", ExitCode: 29},
		{Kind: device.NotEnoughDiskSpace, Message: "Not enough disk space", ExitCode: 30},
		{Kind: device.Deprecated, Message: "failed to query MobileGestalt, MobileGestalt deprecated (iOS >= 17.4).", ExitCode: 31},
		{
			Kind:     device.OSNotSupported,
			Message:  "Unsupported OS - {{.OSName}}. To add support, consider contributing at " + contributeURL + ".",
			Issue:    issue.UnsupportedHostId,
			ExitCode: 32,
		},
		{
			Kind:     device.FeatureNotSupported,
			Message:  "Missing implementation of `{{.Feature}}` on `{{.OSName}}`. To add support, consider contributing at " + contributeURL + ".",
			Issue:    issue.UnsupportedHostId,
			ExitCode: 33,
		},
	}
}
