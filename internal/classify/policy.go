// SPDX-License-Identifier: MPL-2.0

package classify

import (
	"slices"
	"strings"
)

const (
	// TunnelFlag selects the tunneld transport for a command.
	TunnelFlag = "--tunnel"
	// DeveloperToken marks an invocation of the developer group.
	DeveloperToken = "developer"
)

// RetryPolicy says whether a failure is retried over tunneld.
type RetryPolicy int

const (
	// RetryNever reports the failure and stops.
	RetryNever RetryPolicy = iota
	// RetryAlways retries over tunneld, within the dispatcher's budget.
	RetryAlways
	// RetryConditional retries only when the rule's predicate holds.
	RetryConditional
)

var retryPolicyNames = map[RetryPolicy]string{
	RetryNever:       "never",
	RetryAlways:      "always",
	RetryConditional: "conditional",
}

// String returns the policy name.
func (p RetryPolicy) String() string {
	if name, ok := retryPolicyNames[p]; ok {
		return name
	}
	return "unknown"
}

// HasTunnelFlag reports whether argv already selects a tunnel, either as
// "--tunnel <id>" or "--tunnel=<id>".
func HasTunnelFlag(argv []string) bool {
	return slices.ContainsFunc(argv, func(arg string) bool {
		return arg == TunnelFlag || strings.HasPrefix(arg, TunnelFlag+"=")
	})
}

// IsDeveloperCommand reports whether argv contains the developer token as a
// whole argument.
func IsDeveloperCommand(argv []string) bool {
	return slices.Contains(argv, DeveloperToken)
}

// WithTunnel returns a copy of argv with "--tunnel <identifier>" appended.
// argv itself is never modified.
func WithTunnel(argv []string, identifier string) []string {
	out := make([]string, 0, len(argv)+2)
	out = append(out, argv...)
	return append(out, TunnelFlag, identifier)
}
