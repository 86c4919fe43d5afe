// SPDX-License-Identifier: MPL-2.0

package device

import (
	"errors"
	"strings"
)

// Error is a structured failure raised by a device command group.
// Only Kind is required; the other fields are set for the kinds that carry them.
type Error struct {
	// Kind identifies the failure.
	Kind FailureKind
	// Identifier is the device UDID, when the failure is tied to one device.
	Identifier string
	// OSName is the host OS name for OSNotSupported and FeatureNotSupported.
	OSName string
	// Feature names the missing feature for FeatureNotSupported.
	Feature string
	// Service is the lockdown service name for InvalidService.
	Service string
	// Cause is the underlying error, if any.
	Cause error
}

// NewError creates a failure of the given kind wrapping cause (which may be nil).
func NewError(kind FailureKind, cause error) *Error {
	return &Error{Kind: kind, Cause: cause}
}

// NewInvalidService reports that service could not be started on the device.
func NewInvalidService(identifier, service string) *Error {
	return &Error{Kind: InvalidService, Identifier: identifier, Service: service}
}

// NewRSDRequired reports that the command must run over RSD for the device.
func NewRSDRequired(identifier string) *Error {
	return &Error{Kind: RSDRequired, Identifier: identifier}
}

// NewDeviceNotFound reports that no attached device has the given identifier.
func NewDeviceNotFound(identifier string) *Error {
	return &Error{Kind: DeviceNotFound, Identifier: identifier}
}

// NewOSNotSupported reports that the host OS has no implementation.
func NewOSNotSupported(osName string) *Error {
	return &Error{Kind: OSNotSupported, OSName: osName}
}

// NewFeatureNotSupported reports that feature is not implemented on osName.
func NewFeatureNotSupported(feature, osName string) *Error {
	return &Error{Kind: FeatureNotSupported, Feature: feature, OSName: osName}
}

// NewDeveloperModeFailed reports a developer-mode toggle failure.
func NewDeveloperModeFailed(cause error) *Error {
	return &Error{Kind: DeveloperModeFailed, Cause: cause}
}

// WithIdentifier returns a copy of e carrying the device identifier.
func (e *Error) WithIdentifier(identifier string) *Error {
	out := *e
	out.Identifier = identifier
	return &out
}

// Error implements the error interface.
func (e *Error) Error() string {
	var msg strings.Builder
	msg.WriteString(e.Kind.String())

	for _, field := range []struct{ key, value string }{
		{"identifier", e.Identifier},
		{"service", e.Service},
		{"feature", e.Feature},
		{"os", e.OSName},
	} {
		if field.value == "" {
			continue
		}
		msg.WriteString(" ")
		msg.WriteString(field.key)
		msg.WriteString("=")
		msg.WriteString(field.value)
	}

	if e.Cause != nil {
		msg.WriteString(": ")
		msg.WriteString(e.Cause.Error())
	}

	return msg.String()
}

// Unwrap returns the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is a *Error of the same kind. Field values are
// not compared, so errors.Is(err, &Error{Kind: RSDRequired}) matches any
// RSD failure.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return other.Kind == e.Kind
}

// AsError extracts the first *Error in err's chain.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
