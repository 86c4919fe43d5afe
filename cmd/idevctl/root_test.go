// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"testing"

	"github.com/idevctl/idevctl/internal/issue"
	"github.com/idevctl/idevctl/pkg/types"
)

func TestParseGlobalFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want globalFlags
	}{
		{name: "none", args: nil},
		{name: "verbose short", args: []string{"-v", "afc", "ls"}, want: globalFlags{verbose: true}},
		{name: "config", args: []string{"--config", "/tmp/c.cue", "afc"}, want: globalFlags{configPath: "/tmp/c.cue"}},
		{name: "output value is skipped", args: []string{"-o", "json", "-v"}, want: globalFlags{verbose: true}},
		{name: "stops at group", args: []string{"developer", "-v", "--config", "x"}},
		{name: "unknown flags ignored", args: []string{"--tunnel", "ABCD", "--verbose"}, want: globalFlags{verbose: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := parseGlobalFlags(tt.args); got != tt.want {
				t.Errorf("parseGlobalFlags(%v) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestFormatErrorForDisplay(t *testing.T) {
	t.Parallel()

	if got := formatErrorForDisplay(nil, true); got != "" {
		t.Errorf("nil error = %q", got)
	}
	if got := formatErrorForDisplay(errors.New("plain"), true); got != "plain" {
		t.Errorf("plain error = %q", got)
	}

	ae := issue.NewErrorContext().
		WithOperation("run command group").
		WithResource("sysog").
		WithSuggestion("Did you mean 'syslog'?").
		BuildError()
	want := "failed to run command group: sysog\n\n  • Did you mean 'syslog'?"
	if got := formatErrorForDisplay(ae, false); got != want {
		t.Errorf("actionable error = %q, want %q", got, want)
	}
}

func TestExitCodeOf(t *testing.T) {
	t.Parallel()

	if got := exitCodeOf(nil); got != types.ExitSuccess {
		t.Errorf("nil = %d", got)
	}
	if got := exitCodeOf(errors.New("x")); got != types.ExitFailure {
		t.Errorf("plain error = %d", got)
	}
	if got := exitCodeOf(&ExitError{Code: 28}); got != 28 {
		t.Errorf("ExitError = %d", got)
	}
	if got := (&ExitError{Code: 3}).Error(); got != "exit status 3" {
		t.Errorf("Error() = %q", got)
	}
}
