// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLocator is the sentinel for locators that are not "<module>:<attribute>".
var ErrInvalidLocator = errors.New("invalid group locator")

type (
	// Locator is the deferred reference to a group implementation, in the form
	// "<module path>:<attribute>".
	Locator string

	// Descriptor describes one top-level command group.
	Descriptor struct {
		// Name is the token users type as the first argument.
		Name string
		// Locator points at the module attribute implementing the group.
		Locator Locator
		// ShortHelp is the one-line description shown in group listings.
		ShortHelp string
	}

	// InvalidLocatorError is returned when a locator cannot be split.
	InvalidLocatorError struct {
		Value Locator
	}
)

// NewLocator joins a module path and attribute name.
func NewLocator(modulePath, attribute string) Locator {
	return Locator(modulePath + ":" + attribute)
}

// Split returns the module path and attribute name.
func (l Locator) Split() (modulePath, attribute string, err error) {
	modulePath, attribute, ok := strings.Cut(string(l), ":")
	if !ok || modulePath == "" || attribute == "" || strings.Contains(attribute, ":") {
		return "", "", &InvalidLocatorError{Value: l}
	}
	return modulePath, attribute, nil
}

// String returns the locator text.
func (l Locator) String() string { return string(l) }

// Error implements the error interface.
func (e *InvalidLocatorError) Error() string {
	return fmt.Sprintf("invalid group locator %q (expected <module>:<attribute>)", string(e.Value))
}

// Unwrap returns ErrInvalidLocator for errors.Is() compatibility.
func (e *InvalidLocatorError) Unwrap() error { return ErrInvalidLocator }
