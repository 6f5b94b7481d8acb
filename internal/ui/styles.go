/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package ui

import (
	"os"

	"charm.land/lipgloss/v2"
)

// Styles contains the styles for rendering recommendation and estimate output
type Styles struct {
	// Header styles
	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	HeaderValue lipgloss.Style

	// Ranking styles
	Rank      lipgloss.Style
	Score     lipgloss.Style
	StackType lipgloss.Style
	Engine    lipgloss.Style

	// Content styles
	Key    lipgloss.Style
	Value  lipgloss.Style
	Subtle lipgloss.Style
	Bold   lipgloss.Style

	// Semantic styles
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	// Layout styles
	Footer    lipgloss.Style
	Separator lipgloss.Style

	UseColour bool
}

// NewStyles builds a style set. Colours follow the terminal background.
func NewStyles(useColour bool) *Styles {
	s := &Styles{UseColour: useColour}

	if !useColour {
		plainStyle := lipgloss.NewStyle()

		s.Header = plainStyle.
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			Padding(0, 1)
		s.HeaderTitle = plainStyle
		s.HeaderValue = plainStyle

		s.Rank = plainStyle
		s.Score = plainStyle
		s.StackType = plainStyle.Bold(true)
		s.Engine = plainStyle

		s.Key = plainStyle
		s.Value = plainStyle
		s.Subtle = plainStyle
		s.Bold = plainStyle.Bold(true)

		s.Success = plainStyle
		s.Warning = plainStyle
		s.Error = plainStyle

		s.Footer = plainStyle.
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			Padding(0, 1)
		s.Separator = plainStyle
		return s
	}

	hasDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	var (
		headerText    string
		baseText      string
		warningText   string
		successText   string
		keyText       string
		subtleText    string
		borderText    string
		highlightText string
		errorText     string
	)

	if hasDark {
		headerText = "12"    // Bright Blue
		baseText = "15"      // White
		warningText = "11"   // Yellow
		successText = "10"   // Green
		keyText = "14"       // Cyan
		subtleText = "8"     // Dark Grey
		borderText = "240"   // Dimmed Grey
		highlightText = "13" // Magenta
		errorText = "9"      // Red
	} else {
		headerText = "4"    // Blue
		baseText = "0"      // Black
		warningText = "3"   // Yellow/Brown
		successText = "2"   // Green
		keyText = "6"       // Cyan
		subtleText = "8"    // Grey
		borderText = "245"  // Light Grey
		highlightText = "5" // Magenta
		errorText = "1"     // Red
	}

	borderColor := lipgloss.Color(borderText)

	s.Header = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(borderColor).
		Padding(0, 1)

	s.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(headerText))

	s.HeaderValue = lipgloss.NewStyle().
		Foreground(lipgloss.Color(baseText))

	s.Rank = lipgloss.NewStyle().
		Foreground(lipgloss.Color(subtleText))

	s.Score = lipgloss.NewStyle().
		Foreground(lipgloss.Color(successText)).
		Bold(true)

	s.StackType = lipgloss.NewStyle().
		Foreground(lipgloss.Color(highlightText)).
		Bold(true)

	s.Engine = lipgloss.NewStyle().
		Foreground(lipgloss.Color(keyText))

	s.Key = lipgloss.NewStyle().
		Foreground(lipgloss.Color(keyText))

	s.Value = lipgloss.NewStyle()

	s.Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(subtleText))

	s.Bold = lipgloss.NewStyle().Bold(true)

	s.Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color(successText))

	s.Warning = lipgloss.NewStyle().
		Foreground(lipgloss.Color(warningText)).
		Bold(true)

	s.Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color(errorText)).
		Bold(true)

	s.Footer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(borderColor).
		Padding(0, 1)

	s.Separator = lipgloss.NewStyle().
		Foreground(borderColor)

	return s
}

// ShouldUseColour determines if colour output should be used
func ShouldUseColour() bool {
	// https://no-color.org/
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	term := os.Getenv("TERM")
	if term == "dumb" || term == "" {
		return false
	}

	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
