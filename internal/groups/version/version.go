// SPDX-License-Identifier: MPL-2.0

// Package version implements the in-tree "version" command group. Importing
// the package registers it with the default devicegroup catalog.
package version

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/idevctl/idevctl/internal/registry"
	"github.com/idevctl/idevctl/pkg/devicegroup"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
)

// Info is the build information printed by "idevctl version show".
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func init() {
	devicegroup.Register(registry.VersionModulePath, func() (devicegroup.Module, error) {
		return devicegroup.Module{"cli": devicegroup.FromCobraFunc(newCommand)}, nil
	})
}

// String returns a formatted version string for display.
func String() string {
	if Version != "dev" {
		return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "dev (built from source)"
}

// Current collects the running binary's build information.
func Current() Info {
	return Info{
		Version:   String(),
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func newCommand() *cobra.Command {
	root := &cobra.Command{Use: "version"}

	var asJSON bool
	show := &cobra.Command{
		Use:   "show",
		Short: "Show the idevctl version and build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return write(cmd.OutOrStdout(), Current(), asJSON)
		},
	}
	show.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	root.AddCommand(show)
	return root
}

func write(w io.Writer, info Info, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	for _, row := range [][2]string{
		{"Version", info.Version},
		{"Go", info.GoVersion},
		{"Platform", info.Platform},
	} {
		if _, err := fmt.Fprintf(w, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-9s", row[0]+":")), valueStyle.Render(row[1])); err != nil {
			return err
		}
	}
	return nil
}
