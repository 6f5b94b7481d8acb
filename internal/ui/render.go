/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package ui

import (
	"fmt"
	"strings"

	"github.com/sitestack/sitestack/internal/cost"
	"github.com/sitestack/sitestack/internal/model"
)

// RenderRecommendations formats ranked recommendations, best first
func RenderRecommendations(entries []model.RecommendationEntry, s *Styles) string {
	var b strings.Builder

	b.WriteString(s.Header.Render(
		s.HeaderTitle.Render("Recommendations") + " " +
			s.HeaderValue.Render(fmt.Sprintf("(%d)", len(entries)))))
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString(s.Warning.Render("No stack type matches these requirements"))
		b.WriteString("\n")
		return b.String()
	}

	for i, entry := range entries {
		fmt.Fprintf(&b, "%s %s %s %s\n",
			s.Rank.Render(fmt.Sprintf("%2d.", i+1)),
			s.StackType.Render(string(entry.StackType)),
			s.Engine.Render("with "+string(entry.RecommendedEngine)),
			s.Score.Render(fmt.Sprintf("score %d", entry.Score)))
		if entry.Rationale != "" {
			fmt.Fprintf(&b, "    %s\n", s.Subtle.Render(entry.Rationale))
		}
		if entry.TargetAudience != "" {
			fmt.Fprintf(&b, "    %s %s\n", s.Key.Render("For:"), s.Value.Render(entry.TargetAudience))
		}
		if len(entry.Features) > 0 {
			fmt.Fprintf(&b, "    %s %s\n", s.Key.Render("Features:"), s.Value.Render(strings.Join(entry.Features, ", ")))
		}
	}
	return b.String()
}

// RenderEstimate formats a cost breakdown as a table of line items
func RenderEstimate(breakdown *cost.Breakdown, s *Styles) string {
	var b strings.Builder

	b.WriteString(s.Header.Render(
		s.HeaderTitle.Render(string(breakdown.StackType)) + " " +
			s.HeaderValue.Render("with "+string(breakdown.Engine))))
	b.WriteString("\n")

	width := len("Item")
	for _, item := range breakdown.Items {
		width = max(width, len(item.Name))
	}

	fmt.Fprintf(&b, "%s  %s  %s\n",
		s.Bold.Render(pad("Item", width)),
		s.Bold.Render(pad("Monthly", 20)),
		s.Bold.Render("Setup"))
	for _, item := range breakdown.Items {
		fmt.Fprintf(&b, "%s  %s  %s\n",
			s.Key.Render(pad(item.Name, width)),
			s.Value.Render(pad(item.Monthly.String(), 20)),
			s.Value.Render(item.Setup.String()))
		if item.Detail != "" {
			fmt.Fprintf(&b, "%s  %s\n", pad("", width), s.Subtle.Render(item.Detail))
		}
	}

	b.WriteString(s.Footer.Render(fmt.Sprintf("%s %s   %s %s",
		s.Bold.Render("Monthly:"), s.Success.Render(breakdown.MonthlyTotal.String()),
		s.Bold.Render("Setup:"), s.Success.Render(breakdown.SetupTotal.String()))))
	b.WriteString("\n")
	return b.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
