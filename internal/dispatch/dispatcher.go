// SPDX-License-Identifier: MPL-2.0

package dispatch

import (
	"context"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/idevctl/idevctl/internal/classify"
	"github.com/idevctl/idevctl/pkg/types"
)

// DefaultMaxRetries is the number of tunneld retries per invocation.
const DefaultMaxRetries = 1

// State is the dispatcher's position in an invocation.
type State int

const (
	// StateRunning means an attempt is in progress or about to start.
	StateRunning State = iota
	// StateDone means the invocation has an outcome.
	StateDone
)

type (
	// Executor runs one attempt of the command line argv (program name
	// excluded).
	Executor func(ctx context.Context, argv []string) error

	// Reporter presents outcomes to the user.
	Reporter interface {
		// Report presents a classified, non-silent failure.
		Report(ctx context.Context, res classify.Result)
		// ReportUnclassified presents a failure outside the classification
		// table with full diagnostics.
		ReportUnclassified(ctx context.Context, err error)
		// ReportRetry announces a retry over tunneld with the rewritten argv.
		ReportRetry(ctx context.Context, res classify.Result, argv []string)
	}

	// Outcome is the result of one Dispatch call.
	Outcome struct {
		State State
		// ExitCode is the process exit status.
		ExitCode types.ExitCode
		// Attempts counts executions, including the retry.
		Attempts int
		// Argv is the argument vector of the last attempt.
		Argv []string
		// Err is the last attempt's error; nil on success and for silent
		// failures.
		Err error
		// Result is the classification of Err, when it was classified.
		Result *classify.Result
		// InvocationID correlates the log lines of one invocation.
		InvocationID string
	}

	// Dispatcher executes argv and applies the classification table to
	// failures.
	Dispatcher struct {
		exec       Executor
		classifier *classify.Classifier
		reporter   Reporter
		maxRetries int
		logger     *slog.Logger
	}

	// Option configures a Dispatcher.
	Option func(*Dispatcher)
)

// WithMaxRetries sets the tunneld retry budget. Negative values count as 0.
func WithMaxRetries(n int) Option {
	return func(d *Dispatcher) { d.maxRetries = max(n, 0) }
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

// New creates a Dispatcher.
func New(exec Executor, classifier *classify.Classifier, reporter Reporter, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		exec:       exec,
		classifier: classifier,
		reporter:   reporter,
		maxRetries: DefaultMaxRetries,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// MaxRetries returns the retry budget.
func (d *Dispatcher) MaxRetries() int { return d.maxRetries }

// Dispatch runs argv until it succeeds, fails terminally, or the retry
// budget is spent. argv is not modified.
func (d *Dispatcher) Dispatch(ctx context.Context, argv []string) Outcome {
	out := Outcome{
		State:        StateRunning,
		Argv:         slices.Clone(argv),
		InvocationID: uuid.NewString(),
	}
	log := d.logger.With("invocation", out.InvocationID)
	retries := 0

	for out.State == StateRunning {
		out.Attempts++
		out.Result = nil
		log.Debug("executing", "attempt", out.Attempts, "argv", out.Argv)

		err := d.exec(ctx, out.Argv)
		if err == nil {
			out.ExitCode = types.ExitSuccess
			out.Err = nil
			out.State = StateDone
			continue
		}

		res, ok := d.classifier.Classify(err, out.Argv)
		if !ok {
			log.Debug("unclassified failure", "error", err)
			d.reporter.ReportUnclassified(ctx, err)
			out.ExitCode = types.ExitFailure
			out.Err = err
			out.State = StateDone
			continue
		}
		out.Result = &res
		log.Debug("classified failure", "kind", res.Kind.String(), "retry", res.Retry.String(), "should_retry", res.ShouldRetry)

		if res.ShouldRetry && retries < d.maxRetries && ctx.Err() == nil {
			retries++
			out.Argv = classify.WithTunnel(out.Argv, res.Failure.Identifier)
			d.reporter.ReportRetry(ctx, res, out.Argv)
			continue
		}

		out.ExitCode = res.ExitCode
		out.State = StateDone
		if res.Silent {
			out.Err = nil
			continue
		}
		out.Err = err
		d.reporter.Report(ctx, res)
	}

	log.Debug("done", "exit_code", int(out.ExitCode), "attempts", out.Attempts)
	return out
}
