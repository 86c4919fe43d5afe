// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idevctl/idevctl/internal/issue"
	"github.com/idevctl/idevctl/internal/registry"
)

// rootOptions hold the flag values of one root command instance.
type rootOptions struct {
	verbose    bool
	configPath string
	output     string
}

// Execute runs idevctl with the process arguments and exits with the
// invocation's status.
func Execute() {
	if err := NewApp(Dependencies{}).Execute(context.Background(), os.Args[1:]); err != nil {
		os.Exit(int(exitCodeOf(err)))
	}
}

func (a *App) newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "idevctl [flags] <group> <command> [args...]",
		Short: "Interact with iOS devices from the command line",
		Long: `idevctl talks to iOS devices over usbmuxd, lockdownd and RemoteXPC.

Run a group without a command to list its commands. Commands that need a
RemoteXPC tunnel are retried once through tunneld when the first attempt
fails because of it.`,
		Args:             cobra.ArbitraryArgs,
		TraverseChildren: true,
		SilenceErrors:    true,
		SilenceUsage:     true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRoot(cmd, opts, args)
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/idevctl/config.cue)")
	root.Flags().StringVarP(&opts.output, "output", "o", string(formatTable), "group listing format (table, json, yaml)")

	for _, desc := range a.Registry.Enumerate() {
		root.AddCommand(a.newGroupCommand(desc))
	}

	return root
}

// runRoot lists the groups. Any positional argument reaching it names a
// group that does not exist, since known groups are subcommands.
func (a *App) runRoot(cmd *cobra.Command, opts *rootOptions, args []string) error {
	if len(args) > 0 {
		if _, err := a.Registry.Lookup(args[0]); err != nil {
			return unknownGroupError(args[0], err)
		}
	}

	format, err := parseOutputFormat(opts.output)
	if err != nil {
		return err
	}
	return writeGroupListing(cmd.OutOrStdout(), a.Registry.Enumerate(), format, opts.verbose)
}

// parseGlobalFlags reads --verbose and --config ahead of cobra, stopping at
// the first positional argument so group and command flags are left alone.
func parseGlobalFlags(args []string) globalFlags {
	var gf globalFlags

	fs := pflag.NewFlagSet("idevctl", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SetInterspersed(false)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.BoolVarP(&gf.verbose, "verbose", "v", false, "")
	fs.StringVar(&gf.configPath, "config", "", "")
	fs.StringP("output", "o", "", "")

	_ = fs.Parse(args)
	return gf
}

func unknownGroupError(name string, err error) error {
	suggestions := []string{"Run 'idevctl' to list the available groups"}
	var unknown *registry.UnknownGroupError
	if errors.As(err, &unknown) {
		for _, s := range unknown.Suggestions {
			suggestions = append(suggestions, "Did you mean '"+s+"'?")
		}
	}

	return issue.NewErrorContext().
		WithOperation("run command group").
		WithResource(name).
		WithSuggestions(suggestions...).
		WithIssue(issue.UnknownGroupId).
		Wrap(err).
		BuildError()
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method with verbose mode.
// Otherwise, it returns the standard error message.
func formatErrorForDisplay(err error, verbose bool) string {
	if err == nil {
		return ""
	}

	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}

	return err.Error()
}
