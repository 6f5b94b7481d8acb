/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sitestack/sitestack/internal/delete"
)

var (
	// deleter can be injected for testing
	deleter delete.Deleter
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete [client-id]",
	Short: "Delete client stacks",
	Long: `Delete the CloudFormation stack provisioned for a client.

The stack is looked up in the client's region and a preview of what will be
deleted is shown before you are asked to confirm. Pass --all to delete the
stack of every client in the configuration file.

Examples:
  sitestack delete acme-co          # Delete one client's stack with confirmation
  sitestack delete --all --yes      # Delete every client's stack without prompts

CAUTION: Deletion is destructive and cannot be undone. Always verify what
will be deleted before confirming.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		all, _ := cmd.Flags().GetBool("all")

		if len(args) == 0 && !all {
			return fmt.Errorf("a client id argument or --all is required")
		}
		if len(args) > 0 && all {
			return fmt.Errorf("pass either a client id or --all, not both")
		}

		provider, err := getConfigProvider()
		if err != nil {
			return err
		}

		clientIDs := args
		if all {
			if clientIDs, err = provider.ListClients(); err != nil {
				return fmt.Errorf("failed to list clients: %w", err)
			}
		}

		d, err := getDeleter(cmd)
		if err != nil {
			return err
		}

		for _, clientID := range clientIDs {
			cfg, err := provider.LoadClient(ctx, clientID)
			if err != nil {
				return fmt.Errorf("failed to load client %s: %w", clientID, err)
			}

			result, err := d.DeleteClient(ctx, cfg)
			if err != nil {
				return fmt.Errorf("error deleting stack for client %s: %w", clientID, err)
			}
			if result.Outcome == delete.OutcomeDeleted {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully deleted stack %s in %s\n", result.StackName, result.Region)
			}
		}
		return nil
	},
}

// getDeleter returns the deleter instance, creating a default one if none is set
func getDeleter(cmd *cobra.Command) (delete.Deleter, error) {
	if deleter != nil {
		return deleter, nil
	}

	factory, err := getClientFactory(cmd.Context())
	if err != nil {
		return nil, err
	}

	opts := []delete.Option{delete.WithOutput(cmd.OutOrStdout()), delete.WithLogger(state.logger)}
	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		opts = append(opts, delete.WithoutConfirmation())
	}
	if noWait, _ := cmd.Flags().GetBool("no-wait"); !noWait && state.settings.Deploy.Wait {
		opts = append(opts, delete.WithWait(state.settings.Deploy.Timeout))
	}
	return delete.NewStackDeleter(factory, opts...), nil
}

// SetDeleter allows injection of a deleter (for testing)
func SetDeleter(d delete.Deleter) {
	deleter = d
}

func init() {
	deleteCmd.Flags().Bool("all", false, "delete the stack of every configured client")
	deleteCmd.Flags().BoolP("yes", "y", false, "delete without asking for confirmation")
	deleteCmd.Flags().Bool("no-wait", false, "return as soon as CloudFormation accepts the deletion")
	rootCmd.AddCommand(deleteCmd)
}
