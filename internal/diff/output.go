/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package diff

import (
	"fmt"
	"strings"

	"github.com/sitestack/sitestack/internal/ui"
)

// FormatResult renders a diff result for the terminal
func FormatResult(r *Result, s *ui.Styles) string {
	var output strings.Builder

	output.WriteString(s.Header.Render(
		s.HeaderTitle.Render("Stack: "+r.StackName) + " " + s.HeaderValue.Render("("+r.Region+")")))
	output.WriteString("\n")

	switch {
	case !r.StackExists:
		output.WriteString(s.Success.Render("Status: NEW STACK"))
		output.WriteString("\nThis stack does not exist in AWS and will be created.\n")
		writeValues(&output, s, "Parameters to be set:", r.ParameterDiffs)
		writeValues(&output, s, "Tags to be set:", r.TagDiffs)
		return output.String()
	case !r.HasChanges():
		output.WriteString(s.Subtle.Render("Status: NO CHANGES"))
		output.WriteString("\nThe deployed stack matches the client configuration.\n")
		return output.String()
	}

	output.WriteString(s.Warning.Render("Status: CHANGES DETECTED"))
	output.WriteString("\n")

	if tc := r.TemplateChange; tc != nil && tc.HasChanges {
		output.WriteString("\n")
		output.WriteString(s.Bold.Render("Template Changes:"))
		output.WriteString("\n")
		for _, section := range tc.Sections {
			fmt.Fprintf(&output, "  %s %s\n", symbol(s, section.ChangeType), s.Key.Render(section.Name))
		}
		if len(tc.Resources) > 0 {
			fmt.Fprintf(&output, "\n%s %d to add, %d to change, %d to remove\n",
				s.Bold.Render("Resources:"),
				tc.Count(ChangeTypeAdd), tc.Count(ChangeTypeModify), tc.Count(ChangeTypeRemove))
			for _, resource := range tc.Resources {
				fmt.Fprintf(&output, "  %s %s %s\n", symbol(s, resource.ChangeType),
					s.Key.Render(resource.LogicalID), s.Subtle.Render("("+resource.Type+")"))
			}
		}
	}

	writeValues(&output, s, "Parameter Changes:", r.ParameterDiffs)
	writeValues(&output, s, "Tag Changes:", r.TagDiffs)
	return output.String()
}

func writeValues(output *strings.Builder, s *ui.Styles, title string, diffs []ValueDiff) {
	if len(diffs) == 0 {
		return
	}

	output.WriteString("\n")
	output.WriteString(s.Bold.Render(title))
	output.WriteString("\n")
	for _, d := range diffs {
		key := s.Key.Render(d.Key)
		switch d.ChangeType {
		case ChangeTypeAdd:
			fmt.Fprintf(output, "  %s %s: %s\n", symbol(s, d.ChangeType), key, s.Value.Render(d.ProposedValue))
		case ChangeTypeRemove:
			fmt.Fprintf(output, "  %s %s: %s\n", symbol(s, d.ChangeType), key, s.Value.Render(d.CurrentValue))
		default:
			fmt.Fprintf(output, "  %s %s: %s → %s\n", symbol(s, d.ChangeType), key,
				s.Subtle.Render(d.CurrentValue), s.Value.Render(d.ProposedValue))
		}
	}
}

func symbol(s *ui.Styles, changeType ChangeType) string {
	switch changeType {
	case ChangeTypeAdd:
		return s.Success.Render("+")
	case ChangeTypeRemove:
		return s.Error.Render("-")
	default:
		return s.Warning.Render("~")
	}
}
