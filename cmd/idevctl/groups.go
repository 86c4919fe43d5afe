// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/idevctl/idevctl/internal/issue"
	"github.com/idevctl/idevctl/internal/lazygroup"
	"github.com/idevctl/idevctl/internal/registry"
	"github.com/idevctl/idevctl/pkg/devicegroup"
)

// newGroupCommand returns the placeholder for one group. Flag parsing is off
// so everything after the group name, including an appended --tunnel, reaches
// the group's own command tree untouched.
func (a *App) newGroupCommand(desc registry.Descriptor) *cobra.Command {
	return &cobra.Command{
		Use:                desc.Name + " <command> [args...]",
		Short:              desc.ShortHelp,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGroup(cmd, desc, args)
		},
	}
}

func (a *App) runGroup(cmd *cobra.Command, desc registry.Descriptor, args []string) error {
	ctx := cmd.Context()
	provider := a.providers[desc.Name]

	if len(args) == 0 || isHelpToken(args[0]) {
		return writeCommandListing(ctx, cmd.OutOrStdout(), provider)
	}

	sub, err := provider.GetCommand(ctx, args[0])
	if err != nil {
		return groupLoadError(desc, err)
	}
	if sub == nil {
		return unknownCommandError(desc, args[0])
	}

	return devicegroup.Run(ctx, sub, args[1:], devicegroup.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()))
}

func isHelpToken(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}

func writeCommandListing(ctx context.Context, w io.Writer, provider *lazygroup.Provider) error {
	desc := provider.Descriptor()
	names, err := provider.ListCommands(ctx)
	if err != nil {
		return groupLoadError(desc, err)
	}

	fmt.Fprintf(w, "%s %s\n\n", TitleStyle.Render("Usage:"), "idevctl "+desc.Name+" <command> [args...]")
	if desc.ShortHelp != "" {
		fmt.Fprintln(w, SubtitleStyle.Render(desc.ShortHelp))
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, TitleStyle.Render("Commands:"))
	for _, name := range names {
		var short string
		if c, err := provider.GetCommand(ctx, name); err == nil && c != nil {
			short = c.Short
		}
		fmt.Fprintln(w, nameColumnStyle.Render(name)+SubtitleStyle.Render(short))
	}
	return nil
}

func groupLoadError(desc registry.Descriptor, err error) error {
	return issue.NewErrorContext().
		WithOperation("load command group").
		WithResource(desc.Name).
		WithSuggestion("Run with --verbose to see which module failed to load").
		WithIssue(issue.GroupLoadFailedId).
		Wrap(err).
		BuildError()
}

func unknownCommandError(desc registry.Descriptor, name string) error {
	return issue.NewErrorContext().
		WithOperation("run command").
		WithResource(desc.Name + " " + name).
		WithSuggestion(fmt.Sprintf("Run 'idevctl %s --help' to list its commands", desc.Name)).
		WithIssue(issue.UnknownCommandId).
		BuildError()
}
