// SPDX-License-Identifier: MPL-2.0

package classify

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
	"text/template"

	"github.com/idevctl/idevctl/pkg/device"
	"github.com/idevctl/idevctl/pkg/platform"
)

var (
	// ErrDuplicateRule is returned by New when two rules share a kind.
	ErrDuplicateRule = errors.New("duplicate classification rule")
	// ErrIncompleteRule is returned by New for a rule that cannot be applied.
	ErrIncompleteRule = errors.New("incomplete classification rule")
)

type (
	// Classifier looks failures up in a closed rule table.
	Classifier struct {
		rules     map[device.FailureKind]*compiledRule
		hintForOS func() string
	}

	// Result is the classification of one failure for one argv.
	Result struct {
		Rule
		// Failure is the structured failure that matched.
		Failure *device.Error
		// Text is the rendered user message. Empty for silent rules.
		Text string
		// ShouldRetry reports whether the policy asks for a tunneld retry
		// with this argv. The dispatcher still applies its retry budget.
		ShouldRetry bool
	}

	// Option configures a Classifier.
	Option func(*Classifier)

	compiledRule struct {
		Rule
		tmpl *template.Template
	}

	// messageData is the template context for rule messages.
	messageData struct {
		Identifier       string
		OSName           string
		Feature          string
		Service          string
		Cause            string
		AccessDeniedHint string
	}
)

// WithAccessDeniedHint overrides the source of the AccessDenied message.
func WithAccessDeniedHint(hint func() string) Option {
	return func(c *Classifier) { c.hintForOS = hint }
}

// New compiles rules into a classifier. Every rule needs a valid kind, a
// message unless it is silent, and a predicate if its policy is conditional.
func New(rules []Rule, opts ...Option) (*Classifier, error) {
	c := &Classifier{
		rules:     make(map[device.FailureKind]*compiledRule, len(rules)),
		hintForOS: platform.CurrentAccessDeniedHint,
	}
	for _, opt := range opts {
		opt(c)
	}

	for _, r := range rules {
		if err := r.Kind.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIncompleteRule, err)
		}
		if _, exists := c.rules[r.Kind]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRule, r.Kind)
		}
		if r.Retry == RetryConditional && r.Predicate == nil {
			return nil, fmt.Errorf("%w: %s is conditional but has no predicate", ErrIncompleteRule, r.Kind)
		}
		if !r.Silent && r.Message == "" {
			return nil, fmt.Errorf("%w: %s has no message", ErrIncompleteRule, r.Kind)
		}

		tmpl, err := template.New(r.Kind.String()).Option("missingkey=error").Parse(r.Message)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrIncompleteRule, r.Kind, err)
		}
		c.rules[r.Kind] = &compiledRule{Rule: r, tmpl: tmpl}
	}

	return c, nil
}

// Default returns a classifier over DefaultRules.
func Default(opts ...Option) *Classifier {
	c, err := New(DefaultRules(), opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Rule returns the rule for kind.
func (c *Classifier) Rule(kind device.FailureKind) (Rule, bool) {
	r, ok := c.rules[kind]
	if !ok {
		return Rule{}, false
	}
	return r.Rule, true
}

// Classify matches err against the table. argv is the invocation's
// arguments (without the program name); it feeds conditional predicates.
// The second result is false when err is unclassified.
func (c *Classifier) Classify(err error, argv []string) (Result, bool) {
	failure, ok := failureOf(err)
	if !ok {
		return Result{}, false
	}
	r, ok := c.rules[failure.Kind]
	if !ok {
		return Result{}, false
	}

	res := Result{Rule: r.Rule, Failure: failure}
	switch r.Retry {
	case RetryAlways:
		res.ShouldRetry = true
	case RetryConditional:
		res.ShouldRetry = r.Predicate(failure, argv)
	}

	if !r.Silent {
		res.Text = c.render(r, failure)
	}
	return res, true
}

func (c *Classifier) render(r *compiledRule, f *device.Error) string {
	data := messageData{
		Identifier: f.Identifier,
		OSName:     platform.DisplayName(f.OSName),
		Feature:    f.Feature,
		Service:    f.Service,
	}
	if f.Cause != nil {
		data.Cause = f.Cause.Error()
	}
	if f.Kind == device.AccessDenied {
		data.AccessDeniedHint = c.hintForOS()
	}

	var out strings.Builder
	if err := r.tmpl.Execute(&out, data); err != nil {
		// Fall back to the raw template so the user still gets a message.
		return r.Message
	}
	return out.String()
}

// failureOf extracts a structured failure from err. OS-level errors for a
// closed pipe or an aborted connection map to their device kinds.
func failureOf(err error) (*device.Error, bool) {
	if err == nil {
		return nil, false
	}
	if f, ok := device.AsError(err); ok {
		return f, true
	}
	switch {
	case errors.Is(err, syscall.EPIPE):
		return device.NewError(device.BrokenPipe, err), true
	case errors.Is(err, syscall.ECONNABORTED):
		return device.NewError(device.DeviceDisconnected, err), true
	}
	return nil, false
}
