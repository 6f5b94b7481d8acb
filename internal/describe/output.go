/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package describe

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
)

// FormatClientDescription formats a client description for display
func FormatClientDescription(desc *ClientDescription) string {
	var output strings.Builder

	// Client summary section
	fmt.Fprintf(&output, "Client: %s\n", desc.ClientID)
	if desc.Company != "" {
		fmt.Fprintf(&output, "Company: %s\n", desc.Company)
	}
	fmt.Fprintf(&output, "Domain: %s\n", desc.Domain)
	fmt.Fprintf(&output, "Tier: %s\n", desc.ServiceTier)
	fmt.Fprintf(&output, "Environment: %s\n", desc.Environment)
	fmt.Fprintf(&output, "Region: %s\n", desc.Region)

	// Stack section
	output.WriteString("\nStack:\n")
	fmt.Fprintf(&output, "  Type: %s (%s)\n", desc.StackType, desc.Category)
	fmt.Fprintf(&output, "  Engine: %s\n", desc.Engine)
	if desc.CMSProvider != "" {
		fmt.Fprintf(&output, "  CMS: %s\n", desc.CMSProvider)
	}
	if desc.EcommerceProvider != "" {
		fmt.Fprintf(&output, "  E-commerce: %s\n", desc.EcommerceProvider)
	}
	fmt.Fprintf(&output, "  Construct: %s\n", desc.ConstructID)
	fmt.Fprintf(&output, "  Deployment: %s\n", desc.DeploymentName)
	fmt.Fprintf(&output, "  Resource prefix: %s\n", desc.ResourcePrefix)
	if len(desc.RequiredServices) > 0 {
		fmt.Fprintf(&output, "  Services: %s\n", strings.Join(desc.RequiredServices, ", "))
	}

	if len(desc.EnvironmentVariables) > 0 {
		output.WriteString("\nEnvironment Variables:\n")
		for _, name := range desc.EnvironmentVariables {
			fmt.Fprintf(&output, "  %s\n", name)
		}
	}

	if len(desc.Webhooks) > 0 {
		output.WriteString("\nWebhooks:\n")
		for _, webhook := range desc.Webhooks {
			fmt.Fprintf(&output, "  %s: %s\n", webhook.Name, webhook.Path)
		}
	}

	if len(desc.Tags) > 0 {
		output.WriteString("\nTags:\n")
		writeKeyValueMap(&output, desc.Tags)
	}

	output.WriteString("\nDeployment Status:\n")
	if desc.Stack == nil {
		output.WriteString("  Not deployed\n")
		return output.String()
	}

	stack := desc.Stack
	fmt.Fprintf(&output, "  Status: %s\n", stack.Status)
	if !stack.CreatedTime.IsZero() {
		fmt.Fprintf(&output, "  Created: %s\n", formatTime(stack.CreatedTime))
	}
	if stack.UpdatedTime != nil {
		fmt.Fprintf(&output, "  Updated: %s\n", formatTime(*stack.UpdatedTime))
	}
	if stack.StackID != "" && stack.StackID != stack.Name {
		fmt.Fprintf(&output, "  Stack ID: %s\n", stack.StackID)
	}
	if len(stack.Outputs) > 0 {
		output.WriteString("\nOutputs:\n")
		writeKeyValueMap(&output, stack.Outputs)
	}

	return output.String()
}

// formatTime formats time in ISO 8601 style
func formatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05 MST")
}

// writeKeyValueMap writes a sorted map as key-value pairs with indentation
func writeKeyValueMap(output *strings.Builder, m map[string]string) {
	for _, key := range slices.Sorted(maps.Keys(m)) {
		fmt.Fprintf(output, "  %s: %s\n", key, m[key])
	}
}
