// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/idevctl/idevctl/internal/issue"
	"github.com/idevctl/idevctl/internal/registry"
)

const (
	formatTable outputFormat = "table"
	formatJSON  outputFormat = "json"
	formatYAML  outputFormat = "yaml"
)

type (
	// outputFormat selects how the group listing is written.
	outputFormat string

	// groupEntry is one group in machine-readable listings.
	groupEntry struct {
		Name        string `json:"name" yaml:"name"`
		Description string `json:"description" yaml:"description"`
		Locator     string `json:"locator" yaml:"locator"`
	}
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch f := outputFormat(s); f {
	case formatTable, formatJSON, formatYAML:
		return f, nil
	case "":
		return formatTable, nil
	default:
		return "", issue.NewErrorContext().
			WithOperation("list command groups").
			WithResource("--output " + s).
			WithSuggestion("Use one of: table, json, yaml").
			Wrap(fmt.Errorf("unsupported output format %q", s)).
			BuildError()
	}
}

func writeGroupListing(w io.Writer, descs []registry.Descriptor, format outputFormat, verbose bool) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(groupEntries(descs))
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(groupEntries(descs)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeGroupTable(w, descs, verbose)
	}
}

func groupEntries(descs []registry.Descriptor) []groupEntry {
	entries := make([]groupEntry, 0, len(descs))
	for _, d := range descs {
		entries = append(entries, groupEntry{Name: d.Name, Description: d.ShortHelp, Locator: d.Locator.String()})
	}
	return entries
}

func writeGroupTable(w io.Writer, descs []registry.Descriptor, verbose bool) error {
	if _, err := fmt.Fprintf(w, "%s %s\n\n", TitleStyle.Render("Usage:"), "idevctl [flags] <group> <command> [args...]"); err != nil {
		return err
	}
	fmt.Fprintln(w, TitleStyle.Render("Groups:"))
	for _, d := range descs {
		line := nameColumnStyle.Render(d.Name) + SubtitleStyle.Render(d.ShortHelp)
		if verbose {
			line += " " + VerboseStyle.Render("("+d.Locator.String()+")")
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "\nRun %s to list a group's commands.\n", CmdStyle.Render("idevctl <group> --help"))
	return nil
}
