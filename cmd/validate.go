/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sitestack/sitestack/internal/aws"
	"github.com/sitestack/sitestack/internal/deploy"
	"github.com/sitestack/sitestack/internal/validate"
)

var (
	// validator can be injected for testing
	validator validate.Validator
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [client-id]",
	Short: "Validate client configurations",
	Long: `Validate client configurations end to end.

Each client is checked for field errors and provider settings, its stack is
composed to confirm the CMS and e-commerce providers share an engine, and its
CloudFormation template is rendered. With --remote the rendered template is
also validated by the AWS CloudFormation API.

If no client id is provided, every client in the configuration file is validated.

Examples:
  sitestack validate                  # Validate all clients
  sitestack validate acme-co          # Validate a single client
  sitestack validate --remote         # Also validate templates with AWS`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		remote, _ := cmd.Flags().GetBool("remote")
		v, err := getValidator(cmd, remote)
		if err != nil {
			return err
		}

		if len(args) > 0 {
			return v.ValidateClient(ctx, args[0])
		}
		return v.ValidateAllClients(ctx)
	},
}

// getValidator returns the validator instance, creating a default one if none is set
func getValidator(cmd *cobra.Command, remote bool) (validate.Validator, error) {
	if validator != nil {
		return validator, nil
	}

	provider, err := getConfigProvider()
	if err != nil {
		return nil, err
	}

	var factory aws.ClientFactory
	if remote {
		if factory, err = getClientFactory(cmd.Context()); err != nil {
			return nil, err
		}
	}

	composer := newComposer()
	renderer := deploy.NewCloudFormationEmitter(composer, state.store, nil,
		deploy.WithDryRun(true),
		deploy.WithLogger(state.logger),
	)
	return validate.NewClientValidator(provider, composer, renderer, factory), nil
}

// SetValidator allows injection of a validator (for testing)
func SetValidator(v validate.Validator) {
	validator = v
}

func init() {
	validateCmd.Flags().Bool("remote", false, "validate rendered templates with the AWS CloudFormation API")
	rootCmd.AddCommand(validateCmd)
}
