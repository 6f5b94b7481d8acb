/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/sitestack/sitestack/internal/aws"
	"github.com/sitestack/sitestack/internal/config"
	"github.com/sitestack/sitestack/internal/deploy"
	"github.com/sitestack/sitestack/internal/naming"
	"github.com/sitestack/sitestack/internal/prompt"
)

var (
	// emitter can be injected for testing
	emitter deploy.Emitter
)

// deployCmd represents the deploy command
var deployCmd = &cobra.Command{
	Use:   "deploy [client-id]",
	Short: "Provision client stacks with CloudFormation",
	Long: `Provision client stacks with CloudFormation.

Each client's stack is composed, its template rendered and validated, and the
stack created or updated in the client's region. You are asked to confirm
before each stack is provisioned unless --yes is given. With --dry-run the
template is rendered and nothing is sent to AWS.

After an update of a client with caching enabled, the CloudFront distribution
is invalidated once the stack has finished updating.

If no client id is provided, every client in the configuration file is deployed.

Examples:
  sitestack deploy acme-co              # Deploy one client with confirmation
  sitestack deploy acme-co --dry-run    # Render without provisioning
  sitestack deploy --yes                # Deploy every client without prompts`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		provider, err := getConfigProvider()
		if err != nil {
			return err
		}

		clientIDs := args
		if len(clientIDs) == 0 {
			if clientIDs, err = provider.ListClients(); err != nil {
				return fmt.Errorf("failed to list clients: %w", err)
			}
		}
		if len(clientIDs) == 0 {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No clients defined")
			return nil
		}

		e, err := getEmitter(cmd)
		if err != nil {
			return err
		}

		opts := deployOptions{}
		opts.dryRun, _ = cmd.Flags().GetBool("dry-run")
		opts.skipConfirm, _ = cmd.Flags().GetBool("yes")

		for _, clientID := range clientIDs {
			cfg, err := provider.LoadClient(ctx, clientID)
			if err != nil {
				return fmt.Errorf("failed to load client %s: %w", clientID, err)
			}
			if err := deployClient(ctx, cmd.OutOrStdout(), e, cfg, opts); err != nil {
				return fmt.Errorf("error deploying client %s: %w", clientID, err)
			}
		}
		return nil
	},
}

type deployOptions struct {
	dryRun      bool
	skipConfirm bool
}

// deployClient composes and provisions one client, asking for confirmation first
func deployClient(ctx context.Context, out io.Writer, e deploy.Emitter, cfg *config.ClientServiceConfig, opts deployOptions) error {
	descriptor, err := newComposer().FromConfig(cfg)
	if err != nil {
		return err
	}

	stackName := naming.DeploymentName(cfg)
	_, _ = fmt.Fprintf(out, "Client %s: %s on %s as stack %s in %s\n",
		cfg.ClientID, descriptor.StackType, descriptor.Engine, stackName, cfg.Region)

	if !opts.dryRun && !opts.skipConfirm {
		confirmed, err := prompt.ConfirmProvisioning(stackName, cfg.Region)
		if err != nil {
			return err
		}
		if !confirmed {
			_, _ = fmt.Fprintf(out, "Skipped stack %s\n", stackName)
			return nil
		}
	}

	result, err := e.Provision(ctx, descriptor, cfg)
	if err != nil {
		return err
	}
	writeProvisionResult(out, result)
	return nil
}

func writeProvisionResult(out io.Writer, result *deploy.ProvisionResult) {
	switch result.Operation {
	case deploy.OperationDryRun:
		_, _ = fmt.Fprintf(out, "Rendered %s for stack %s (dry run, nothing provisioned)\n", result.TemplateName, result.StackName)
	case deploy.OperationNone:
		_, _ = fmt.Fprintf(out, "Stack %s is up to date\n", result.StackName)
	default:
		_, _ = fmt.Fprintf(out, "Successfully provisioned stack %s (%s)\n", result.StackName, result.Operation)
	}

	for _, key := range slices.Sorted(maps.Keys(result.Outputs)) {
		_, _ = fmt.Fprintf(out, "  %s: %s\n", key, result.Outputs[key])
	}
	if result.InvalidationID != "" {
		_, _ = fmt.Fprintf(out, "  Cache invalidation: %s\n", result.InvalidationID)
	}
}

// getEmitter returns the emitter instance, creating a default one if none is set
func getEmitter(cmd *cobra.Command) (deploy.Emitter, error) {
	if emitter != nil {
		return emitter, nil
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	opts := []deploy.Option{deploy.WithDryRun(dryRun), deploy.WithLogger(state.logger)}

	wait := state.settings.Deploy.Wait
	if cmd.Flags().Changed("no-wait") {
		noWait, _ := cmd.Flags().GetBool("no-wait")
		wait = !noWait
	}
	if wait {
		opts = append(opts, deploy.WithWait(state.settings.Deploy.Timeout))
	}

	var factory aws.ClientFactory
	if !dryRun {
		f, err := getClientFactory(cmd.Context())
		if err != nil {
			return nil, err
		}
		factory = f
	}
	return deploy.NewCloudFormationEmitter(newComposer(), state.store, factory, opts...), nil
}

// SetEmitter allows injection of an emitter (for testing)
func SetEmitter(e deploy.Emitter) {
	emitter = e
}

func init() {
	deployCmd.Flags().Bool("dry-run", false, "render templates without provisioning")
	deployCmd.Flags().BoolP("yes", "y", false, "provision without asking for confirmation")
	deployCmd.Flags().Bool("no-wait", false, "return as soon as CloudFormation accepts the change")
	rootCmd.AddCommand(deployCmd)
}
