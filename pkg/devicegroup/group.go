// SPDX-License-Identifier: MPL-2.0

package devicegroup

import (
	"context"
	"io"
	"slices"

	"github.com/spf13/cobra"
)

type (
	// Group is a resolved command group. Implementations expose their own
	// subcommands; the dispatcher treats them as opaque.
	Group interface {
		// ListCommands returns the names of the group's commands in display order.
		ListCommands(ctx context.Context) []string
		// GetCommand returns the named command, or nil if the group has none.
		GetCommand(ctx context.Context, name string) *cobra.Command
	}

	// RunOption configures the command tree executed by Run.
	RunOption func(root *cobra.Command)

	// cobraGroup adapts a cobra command tree factory to the Group interface.
	cobraGroup struct {
		build func() *cobra.Command
	}
)

// FromCobraFunc adapts a cobra command tree to a Group. build is called on
// every lookup, so a command returned by GetCommand belongs to a tree whose
// flags have never been parsed, and running it twice behaves like two
// separate invocations. The root's direct, non-hidden children become the
// group's commands.
func FromCobraFunc(build func() *cobra.Command) Group {
	if build == nil {
		panic("devicegroup: FromCobraFunc called with nil factory")
	}
	return &cobraGroup{build: build}
}

// WithOutput points the executed tree's output and error streams at stdout
// and stderr.
func WithOutput(stdout, stderr io.Writer) RunOption {
	return func(root *cobra.Command) {
		root.SetOut(stdout)
		root.SetErr(stderr)
	}
}

func (g *cobraGroup) tree() *cobra.Command {
	root := g.build()
	if root == nil {
		panic("devicegroup: command factory returned nil")
	}
	root.SilenceErrors = true
	root.SilenceUsage = true
	// Executing the tree would otherwise add a "completion" child.
	root.CompletionOptions.DisableDefaultCmd = true
	return root
}

// ListCommands returns the visible child command names.
func (g *cobraGroup) ListCommands(_ context.Context) []string {
	children := g.tree().Commands()
	names := make([]string, 0, len(children))
	for _, c := range children {
		if c.Hidden || c.Name() == "help" {
			continue
		}
		names = append(names, c.Name())
	}
	return names
}

// GetCommand finds a direct child by name or alias in a freshly built tree.
func (g *cobraGroup) GetCommand(_ context.Context, name string) *cobra.Command {
	for _, c := range g.tree().Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return c
		}
	}
	return nil
}

// Run executes command with args. The command's whole tree is executed from
// its root so that persistent flags and hooks of parent commands apply; the
// path from the root down to command is prepended to args.
func Run(ctx context.Context, command *cobra.Command, args []string, opts ...RunOption) error {
	root := command.Root()

	var path []string
	for c := command; c != root; c = c.Parent() {
		path = append(path, c.Name())
	}
	slices.Reverse(path)

	for _, opt := range opts {
		opt(root)
	}
	root.SetArgs(append(path, args...))
	root.SilenceErrors = true
	root.SilenceUsage = true
	return root.ExecuteContext(ctx)
}
