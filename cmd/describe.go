/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sitestack/sitestack/internal/aws"
	"github.com/sitestack/sitestack/internal/describe"
)

var (
	// describer can be injected for testing
	describer describe.Describer
)

// describeCmd represents the describe command
var describeCmd = &cobra.Command{
	Use:   "describe <client-id>",
	Short: "Describe a client's deployment",
	Long: `Describe a client's deployment.

Shows the composed stack, derived names, tags, environment variable names and
webhook endpoints for the client. Unless --offline is set, the live state of
the client's CloudFormation stack is looked up as well.

Examples:
  sitestack describe acme-co             # Planned deployment and live status
  sitestack describe acme-co --offline   # Planned deployment only
  sitestack describe acme-co -o yaml     # Structured output`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		clientID := args[0]

		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}

		provider, err := getConfigProvider()
		if err != nil {
			return err
		}
		cfg, err := provider.LoadClient(ctx, clientID)
		if err != nil {
			return fmt.Errorf("failed to load client %s: %w", clientID, err)
		}

		offline, _ := cmd.Flags().GetBool("offline")
		d, err := getDescriber(cmd, offline)
		if err != nil {
			return err
		}

		description, err := d.DescribeClient(ctx, cfg)
		if err != nil {
			return err
		}

		if format != outputText {
			return writeStructured(cmd.OutOrStdout(), format, description)
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), describe.FormatClientDescription(description))
		return err
	},
}

// getDescriber returns the describer instance, creating a default one if none is set
func getDescriber(cmd *cobra.Command, offline bool) (describe.Describer, error) {
	if describer != nil {
		return describer, nil
	}

	var factory aws.ClientFactory
	if !offline {
		var err error
		if factory, err = getClientFactory(cmd.Context()); err != nil {
			return nil, err
		}
	}
	return describe.NewClientDescriber(newComposer(), state.store, factory), nil
}

// SetDescriber allows injection of a describer (for testing)
func SetDescriber(d describe.Describer) {
	describer = d
}

func init() {
	describeCmd.Flags().Bool("offline", false, "skip the CloudFormation lookup")
	addOutputFlag(describeCmd)
	rootCmd.AddCommand(describeCmd)
}
