// SPDX-License-Identifier: MPL-2.0

// Package platform provides host-OS facts used in user-facing messages:
// OS name constants, sandbox detection and the privilege hints shown when the
// device layer is denied access to the USB multiplexer.
package platform
