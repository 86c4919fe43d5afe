// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idevctl/idevctl/internal/classify"
	"github.com/idevctl/idevctl/internal/issue"
)

// reporter writes dispatch outcomes to stderr: one-line messages through the
// logger, long-form guidance from the issue catalog through glamour.
type reporter struct {
	stderr  io.Writer
	logger  *log.Logger
	verbose bool
	style   string
}

func newReporter(stderr io.Writer, logger *log.Logger, verbose bool, glamourStyle string) *reporter {
	return &reporter{stderr: stderr, logger: logger, verbose: verbose, style: glamourStyle}
}

// Report logs a classified failure, its cause chain when the rule or the
// user asks for it, and the linked catalog entry.
func (r *reporter) Report(_ context.Context, res classify.Result) {
	r.logger.Error(res.Text)
	if res.ShowTrace || r.verbose {
		fmt.Fprintln(r.stderr, VerboseStyle.Render(issue.FormatChain(res.Failure)))
	}
	r.renderIssue(res.Issue)
}

// ReportUnclassified prints a failure no rule covers. Actionable errors are
// user mistakes and get their suggestions; anything else gets the whole
// error chain.
func (r *reporter) ReportUnclassified(_ context.Context, err error) {
	fmt.Fprintf(r.stderr, "\n%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, r.verbose))

	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		r.renderIssue(ae.Issue)
		return
	}
	fmt.Fprintf(r.stderr, "\n%s\n", VerboseStyle.Render(issue.FormatChain(err)))
}

// ReportRetry announces the tunneld retry.
func (r *reporter) ReportRetry(_ context.Context, res classify.Result, argv []string) {
	r.logger.Warn("Trying again over tunneld since "+res.RetryReason, "tunnel", res.Failure.Identifier)
	r.logger.Debug("retrying", "argv", strings.Join(argv, " "))
}

func (r *reporter) renderIssue(id issue.Id) {
	if id == 0 {
		return
	}
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	rendered, err := entry.Render(r.style)
	if err != nil {
		slog.Warn("failed to render issue catalog entry", "issueID", id, "error", err)
		return
	}
	fmt.Fprint(r.stderr, rendered)
}
