// SPDX-License-Identifier: MPL-2.0

package dispatch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"testing"

	"github.com/idevctl/idevctl/internal/classify"
	"github.com/idevctl/idevctl/pkg/device"
	"github.com/idevctl/idevctl/pkg/types"
)

type (
	// scriptedExecutor returns errs[i] on the i-th call and records argv.
	scriptedExecutor struct {
		errs  []error
		calls [][]string
	}

	recordingReporter struct {
		reported     []classify.Result
		unclassified []error
		retries      [][]string
	}
)

func (e *scriptedExecutor) run(_ context.Context, argv []string) error {
	e.calls = append(e.calls, slices.Clone(argv))
	idx := len(e.calls) - 1
	if idx < len(e.errs) {
		return e.errs[idx]
	}
	return nil
}

func (r *recordingReporter) Report(_ context.Context, res classify.Result) {
	r.reported = append(r.reported, res)
}

func (r *recordingReporter) ReportUnclassified(_ context.Context, err error) {
	r.unclassified = append(r.unclassified, err)
}

func (r *recordingReporter) ReportRetry(_ context.Context, _ classify.Result, argv []string) {
	r.retries = append(r.retries, slices.Clone(argv))
}

func newTestDispatcher(t *testing.T, exec *scriptedExecutor, opts ...Option) (*Dispatcher, *recordingReporter) {
	t.Helper()

	rep := &recordingReporter{}
	opts = append([]Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	return New(exec.run, classify.Default(), rep, opts...), rep
}

func TestDispatchSuccess(t *testing.T) {
	t.Parallel()

	exec := &scriptedExecutor{}
	d, rep := newTestDispatcher(t, exec)

	out := d.Dispatch(context.Background(), []string{"usbmux", "list"})
	if out.State != StateDone || out.ExitCode != types.ExitSuccess || out.Attempts != 1 || out.Err != nil {
		t.Errorf("Dispatch() = %+v, want done/success after 1 attempt", out)
	}
	if out.InvocationID == "" {
		t.Error("InvocationID is empty")
	}
	if len(rep.reported)+len(rep.unclassified)+len(rep.retries) != 0 {
		t.Errorf("reporter called on success: %+v", rep)
	}
}

func TestDispatchRSDRequiredRetriesOnce(t *testing.T) {
	t.Parallel()

	rsd := device.NewRSDRequired("ABCD-1234")
	exec := &scriptedExecutor{errs: []error{rsd, rsd, rsd}}
	d, rep := newTestDispatcher(t, exec)

	argv := []string{"syslog", "live"}
	out := d.Dispatch(context.Background(), argv)

	if len(exec.calls) != 2 {
		t.Fatalf("executor called %d times, want 2: %v", len(exec.calls), exec.calls)
	}
	wantRetry := []string{"syslog", "live", "--tunnel", "ABCD-1234"}
	if !slices.Equal(exec.calls[1], wantRetry) {
		t.Errorf("retry argv = %v, want %v", exec.calls[1], wantRetry)
	}
	if len(rep.retries) != 1 || !slices.Equal(rep.retries[0], wantRetry) {
		t.Errorf("ReportRetry calls = %v", rep.retries)
	}
	if len(rep.reported) != 1 || rep.reported[0].Kind != device.RSDRequired {
		t.Errorf("Report calls = %+v, want one RSDRequired", rep.reported)
	}
	if out.Attempts != 2 || out.ExitCode.IsSuccess() || !errors.Is(out.Err, rsd) {
		t.Errorf("Dispatch() = %+v", out)
	}
	if !slices.Equal(argv, []string{"syslog", "live"}) {
		t.Errorf("Dispatch() modified its input: %v", argv)
	}
}

func TestDispatchRSDRetrySucceeds(t *testing.T) {
	t.Parallel()

	exec := &scriptedExecutor{errs: []error{device.NewRSDRequired("ABCD-1234")}}
	d, rep := newTestDispatcher(t, exec)

	out := d.Dispatch(context.Background(), []string{"syslog", "live"})
	if out.ExitCode != types.ExitSuccess || out.Attempts != 2 {
		t.Errorf("Dispatch() = %+v, want success on attempt 2", out)
	}
	if len(rep.reported) != 0 {
		t.Errorf("Report called after a successful retry: %+v", rep.reported)
	}
}

func TestDispatchResultDescribesLastAttempt(t *testing.T) {
	t.Parallel()

	boom := errors.New("plist decode: unexpected EOF")
	tests := []struct {
		name     string
		errs     []error
		wantKind device.FailureKind
	}{
		{name: "retry succeeds", errs: []error{device.NewRSDRequired("ABCD-1234")}},
		{name: "retry fails unclassified", errs: []error{device.NewRSDRequired("ABCD-1234"), boom}},
		{
			name:     "retry fails classified",
			errs:     []error{device.NewRSDRequired("ABCD-1234"), device.NewDeviceNotFound("ABCD-1234")},
			wantKind: device.DeviceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d, _ := newTestDispatcher(t, &scriptedExecutor{errs: tt.errs})
			out := d.Dispatch(context.Background(), []string{"syslog", "live"})

			if out.Attempts != 2 {
				t.Fatalf("attempts = %d, want 2", out.Attempts)
			}
			switch {
			case tt.wantKind == 0 && out.Result != nil:
				t.Errorf("Result = %+v, want nil (Err = %v)", out.Result, out.Err)
			case tt.wantKind != 0 && (out.Result == nil || out.Result.Kind != tt.wantKind):
				t.Errorf("Result = %+v, want kind %s", out.Result, tt.wantKind)
			}
		})
	}
}

func TestDispatchInvalidService(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		argv      []string
		wantCalls [][]string
	}{
		{
			name: "developer command retries",
			argv: []string{"developer", "dvt", "ls"},
			wantCalls: [][]string{
				{"developer", "dvt", "ls"},
				{"developer", "dvt", "ls", "--tunnel", "UDID1"},
			},
		},
		{
			name:      "non-developer command reports",
			argv:      []string{"afc", "ls"},
			wantCalls: [][]string{{"afc", "ls"}},
		},
		{
			name:      "tunnel already given reports",
			argv:      []string{"developer", "dvt", "ls", "--tunnel", "UDID1"},
			wantCalls: [][]string{{"developer", "dvt", "ls", "--tunnel", "UDID1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			invalid := device.NewInvalidService("UDID1", "com.apple.instruments.remoteserver")
			exec := &scriptedExecutor{errs: []error{invalid, invalid}}
			d, rep := newTestDispatcher(t, exec)

			out := d.Dispatch(context.Background(), tt.argv)

			if len(exec.calls) != len(tt.wantCalls) {
				t.Fatalf("executor calls = %v, want %v", exec.calls, tt.wantCalls)
			}
			for i := range tt.wantCalls {
				if !slices.Equal(exec.calls[i], tt.wantCalls[i]) {
					t.Errorf("call %d argv = %v, want %v", i, exec.calls[i], tt.wantCalls[i])
				}
			}
			if len(rep.reported) != 1 || rep.reported[0].Text != "Failed to start service." {
				t.Errorf("Report calls = %+v, want the invalid service message once", rep.reported)
			}
			if out.Result == nil || out.Result.Kind != device.InvalidService {
				t.Errorf("Outcome.Result = %+v", out.Result)
			}
		})
	}
}

func TestDispatchNoDeviceSelectedIsSilent(t *testing.T) {
	t.Parallel()

	exec := &scriptedExecutor{errs: []error{device.NewError(device.NoDeviceSelected, nil)}}
	d, rep := newTestDispatcher(t, exec)

	out := d.Dispatch(context.Background(), []string{"lockdown", "info"})
	if out.ExitCode != types.ExitSuccess || out.Err != nil || out.State != StateDone {
		t.Errorf("Dispatch() = %+v, want silent success", out)
	}
	if len(rep.reported)+len(rep.unclassified)+len(rep.retries) != 0 {
		t.Errorf("reporter called for a silent failure: %+v", rep)
	}
}

func TestDispatchUnclassified(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	exec := &scriptedExecutor{errs: []error{boom}}
	d, rep := newTestDispatcher(t, exec)

	out := d.Dispatch(context.Background(), []string{"crash", "ls"})
	if out.ExitCode != types.ExitFailure || !errors.Is(out.Err, boom) || out.Result != nil {
		t.Errorf("Dispatch() = %+v, want unclassified failure", out)
	}
	if len(rep.unclassified) != 1 || rep.unclassified[0] != boom {
		t.Errorf("ReportUnclassified calls = %v", rep.unclassified)
	}
}

func TestDispatchClassifiedExitCode(t *testing.T) {
	t.Parallel()

	exec := &scriptedExecutor{errs: []error{device.NewError(device.PasswordRequired, nil)}}
	d, _ := newTestDispatcher(t, exec)

	out := d.Dispatch(context.Background(), []string{"afc", "ls"})
	rule, _ := classify.Default().Rule(device.PasswordRequired)
	if out.ExitCode != rule.ExitCode {
		t.Errorf("ExitCode = %d, want %d", out.ExitCode, rule.ExitCode)
	}
}

func TestDispatchRetryDisabled(t *testing.T) {
	t.Parallel()

	exec := &scriptedExecutor{errs: []error{device.NewRSDRequired("ABCD-1234")}}
	d, rep := newTestDispatcher(t, exec, WithMaxRetries(0))

	out := d.Dispatch(context.Background(), []string{"syslog", "live"})
	if out.Attempts != 1 || len(rep.retries) != 0 || len(rep.reported) != 1 {
		t.Errorf("Dispatch() with no budget = %+v, reporter %+v", out, rep)
	}

	negative := New(exec.run, classify.Default(), rep, WithMaxRetries(-3))
	if negative.MaxRetries() != 0 {
		t.Errorf("MaxRetries() = %d, want 0", negative.MaxRetries())
	}
}

func TestDispatchBoundHoldsForDifferentRetryableKinds(t *testing.T) {
	t.Parallel()

	// RSDRequired always asks for a retry; the budget still stops it.
	exec := &scriptedExecutor{errs: []error{
		device.NewRSDRequired("A"),
		device.NewRSDRequired("B"),
		device.NewRSDRequired("C"),
	}}
	d, rep := newTestDispatcher(t, exec)

	out := d.Dispatch(context.Background(), []string{"developer", "dvt", "ls"})
	if len(exec.calls) != 2 || len(rep.retries) != 1 {
		t.Errorf("calls = %v, retries = %v", exec.calls, rep.retries)
	}
	if out.Result == nil || out.Result.Failure.Identifier != "B" {
		t.Errorf("reported failure = %+v, want the second attempt's", out.Result)
	}
}

func TestDispatchCancelledContextDoesNotRetry(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &scriptedExecutor{errs: []error{device.NewRSDRequired("ABCD-1234")}}
	d, rep := newTestDispatcher(t, exec)

	out := d.Dispatch(ctx, []string{"syslog", "live"})
	if out.Attempts != 1 || len(rep.retries) != 0 {
		t.Errorf("Dispatch() on cancelled context retried: %+v", out)
	}
}
