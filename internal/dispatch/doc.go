// SPDX-License-Identifier: MPL-2.0

// Package dispatch runs one CLI invocation and turns its failure, if any,
// into a reported outcome.
//
// A failure the classifier marks as retryable is re-run once with
// "--tunnel <identifier>" appended to the arguments. The retry budget is
// explicit, so a failure that recurs after the retry is reported, not
// retried again.
package dispatch
