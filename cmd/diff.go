/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sitestack/sitestack/internal/deploy"
	"github.com/sitestack/sitestack/internal/diff"
	"github.com/sitestack/sitestack/internal/ui"
)

var (
	// differ can be injected for testing
	differ diff.Differ
)

// diffCmd represents the diff command
var diffCmd = &cobra.Command{
	Use:   "diff <client-id>",
	Short: "Show differences between a client's deployed stack and its configuration",
	Long: `Compare the client's deployed CloudFormation stack with the stack its
configuration renders to.

This command shows what would change if you ran 'sitestack deploy' for the
client. It compares:

• Template sections and resources
• Stack parameters
• Stack tags

Examples:
  sitestack diff acme-co               # Show all changes
  sitestack diff acme-co --template    # Template changes only
  sitestack diff acme-co --tags        # Tag changes only
  sitestack diff acme-co -o json       # Structured output`,
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

		composer := newComposer()
		descriptor, err := composer.FromConfig(cfg)
		if err != nil {
			return fmt.Errorf("failed to compose stack for client %s: %w", clientID, err)
		}

		renderer := deploy.NewCloudFormationEmitter(composer, state.store, nil,
			deploy.WithDryRun(true),
			deploy.WithLogger(state.logger),
		)
		proposed, err := renderer.Provision(ctx, descriptor, cfg)
		if err != nil {
			return fmt.Errorf("failed to render stack for client %s: %w", clientID, err)
		}

		d, err := getDiffer(cmd)
		if err != nil {
			return err
		}
		result, err := d.Diff(ctx, proposed)
		if err != nil {
			return fmt.Errorf("error calculating diff for client %s: %w", clientID, err)
		}

		out := cmd.OutOrStdout()
		if format != outputText {
			return writeStructured(out, format, result)
		}

		_, _ = fmt.Fprint(out, diff.FormatResult(result, ui.NewStyles(ui.ShouldUseColour())))
		if result.HasChanges() {
			_, _ = fmt.Fprintf(out, "\nChanges detected. Run 'sitestack deploy %s' to apply them.\n", clientID)
		} else {
			_, _ = fmt.Fprintln(out, "\nNo changes detected.")
		}
		return nil
	},
}

// getDiffer returns the differ instance, creating a default one if none is set
func getDiffer(cmd *cobra.Command) (diff.Differ, error) {
	if differ != nil {
		return differ, nil
	}

	factory, err := getClientFactory(cmd.Context())
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	templateOnly, _ := flags.GetBool("template")
	parametersOnly, _ := flags.GetBool("parameters")
	tagsOnly, _ := flags.GetBool("tags")

	return diff.NewStackDiffer(factory, diff.Options{
		TemplateOnly:   templateOnly,
		ParametersOnly: parametersOnly,
		TagsOnly:       tagsOnly,
	}), nil
}

// SetDiffer allows injection of a differ (for testing)
func SetDiffer(d diff.Differ) {
	differ = d
}

func init() {
	diffCmd.Flags().Bool("template", false, "show only template differences")
	diffCmd.Flags().Bool("parameters", false, "show only parameter differences")
	diffCmd.Flags().Bool("tags", false, "show only tag differences")
	diffCmd.MarkFlagsMutuallyExclusive("template", "parameters", "tags")
	addOutputFlag(diffCmd)
	rootCmd.AddCommand(diffCmd)
}
