// SPDX-License-Identifier: MPL-2.0

package device

import (
	"errors"
	"fmt"
)

const (
	// NoDeviceConnected means no device is attached over usbmux.
	NoDeviceConnected FailureKind = iota + 1
	// DeviceDisconnected means the device went away mid-session.
	DeviceDisconnected
	// NotPaired means the host has no pairing record for the device.
	NotPaired
	// PairingDenied means the user refused the trust dialog.
	PairingDenied
	// PairingPending means the trust dialog is still waiting for the user.
	PairingPending
	// AccessProhibited means lockdownd refused to set a value.
	AccessProhibited
	// MissingValue means a lockdown domain/key lookup returned nothing.
	MissingValue
	// PasscodeSet means developer mode cannot be enabled while a passcode is set.
	PasscodeSet
	// DeveloperModeFailed means enabling developer mode failed for another reason.
	DeveloperModeFailed
	// UsbmuxConnectionFailed means the usbmuxd socket is unreachable.
	UsbmuxConnectionFailed
	// MessageNotSupported means the device OS does not understand the request.
	MessageNotSupported
	// InternalFailure is a failure inside a device service.
	InternalFailure
	// DeveloperModeDisabled means developer mode is off on the device.
	DeveloperModeDisabled
	// InvalidService means a lockdown service could not be started.
	InvalidService
	// RSDRequired means the command only works over Remote Service Discovery.
	RSDRequired
	// NoDeviceSelected means the user dismissed the device picker.
	NoDeviceSelected
	// PasswordRequired means the device is locked.
	PasswordRequired
	// AccessDenied means the host OS refused a privileged operation.
	AccessDenied
	// BrokenPipe means the peer closed the connection while writing.
	BrokenPipe
	// TunneldUnreachable means the tunneld daemon could not be contacted.
	TunneldUnreachable
	// DeviceNotFound means the requested device identifier is not attached.
	DeviceNotFound
	// NotEnoughDiskSpace means the device ran out of storage.
	NotEnoughDiskSpace
	// Deprecated means the requested device API was removed by the vendor.
	Deprecated
	// OSNotSupported means the host OS has no implementation for the command.
	OSNotSupported
	// FeatureNotSupported means a feature is missing on the host OS.
	FeatureNotSupported

	// kindSentinel marks the end of the enumeration; keep it last.
	kindSentinel
)

// ErrInvalidFailureKind is the sentinel error wrapped by InvalidFailureKindError.
var ErrInvalidFailureKind = errors.New("invalid failure kind")

var kindNames = map[FailureKind]string{
	NoDeviceConnected:      "no-device-connected",
	DeviceDisconnected:     "device-disconnected",
	NotPaired:              "not-paired",
	PairingDenied:          "pairing-denied",
	PairingPending:         "pairing-pending",
	AccessProhibited:       "access-prohibited",
	MissingValue:           "missing-value",
	PasscodeSet:            "passcode-set",
	DeveloperModeFailed:    "developer-mode-error",
	UsbmuxConnectionFailed: "usbmux-connection-failed",
	MessageNotSupported:    "message-not-supported",
	InternalFailure:        "internal-error",
	DeveloperModeDisabled:  "developer-mode-disabled",
	InvalidService:         "invalid-service",
	RSDRequired:            "rsd-required",
	NoDeviceSelected:       "no-device-selected",
	PasswordRequired:       "password-required",
	AccessDenied:           "access-denied",
	BrokenPipe:             "broken-pipe",
	TunneldUnreachable:     "tunneld-unreachable",
	DeviceNotFound:         "device-not-found",
	NotEnoughDiskSpace:     "not-enough-disk-space",
	Deprecated:             "deprecated-feature",
	OSNotSupported:         "os-not-supported",
	FeatureNotSupported:    "feature-not-supported",
}

type (
	// FailureKind tags a device failure. The set is closed: every value
	// between NoDeviceConnected and FeatureNotSupported is defined.
	FailureKind int

	// InvalidFailureKindError is returned when a FailureKind is outside the
	// defined enumeration.
	InvalidFailureKindError struct {
		Value FailureKind
	}
)

// Kinds returns every defined failure kind in declaration order.
func Kinds() []FailureKind {
	kinds := make([]FailureKind, 0, int(kindSentinel)-1)
	for k := NoDeviceConnected; k < kindSentinel; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// String returns the kebab-case name of the kind.
func (k FailureKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("failure-kind(%d)", int(k))
}

// Validate returns nil if the kind is one of the defined values.
func (k FailureKind) Validate() error {
	if k < NoDeviceConnected || k >= kindSentinel {
		return &InvalidFailureKindError{Value: k}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidFailureKindError) Error() string {
	return fmt.Sprintf("invalid failure kind %d", int(e.Value))
}

// Unwrap returns ErrInvalidFailureKind so callers can use errors.Is for programmatic detection.
func (e *InvalidFailureKindError) Unwrap() error { return ErrInvalidFailureKind }
