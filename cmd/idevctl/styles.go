// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette shared by all CLI output. Tuned for dark terminal backgrounds.
const (
	// ColorPrimary is purple, for titles and headers.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray, for descriptions and secondary text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorError is red, for errors and failure indicators.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber, for warnings and retry notices.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue, for group and command names.
	ColorHighlight = lipgloss.Color("#3B82F6")

	// ColorVerbose is light gray, for diagnostics shown in verbose mode.
	ColorVerbose = lipgloss.Color("#9CA3AF")
)

var (
	// TitleStyle is for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// ErrorStyle is for the "Error:" prefix.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warnings.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// CmdStyle is for group and command names.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	// VerboseStyle is for error chains and other diagnostics.
	VerboseStyle = lipgloss.NewStyle().
			Foreground(ColorVerbose)

	// nameColumnStyle pads names in listings so descriptions line up.
	nameColumnStyle = CmdStyle.
			PaddingLeft(2).
			Width(18)
)
