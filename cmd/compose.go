/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sitestack/sitestack/internal/compose"
	"github.com/sitestack/sitestack/internal/deploy"
	"github.com/sitestack/sitestack/internal/model"
)

// composeCmd represents the compose command
var composeCmd = &cobra.Command{
	Use:   "compose [client-id]",
	Short: "Compose the stack descriptor for a client",
	Long: `Compose the stack descriptor for a client.

With a client id the client's configuration is loaded and its stack composed.
Without one, --client and either --stack-type or both --cms and --ecommerce
compose a stack directly from the catalog. --render prints the CloudFormation
template that would be provisioned for a configured client.

Examples:
  sitestack compose acme-co                                 # Descriptor from configuration
  sitestack compose acme-co --render                        # Rendered template
  sitestack compose --client acme-co --stack-type hugo_static_site
  sitestack compose --client acme-co --cms sanity --ecommerce shopify_basic --engine astro`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}
		render, _ := cmd.Flags().GetBool("render")
		out := cmd.OutOrStdout()

		if len(args) > 0 {
			return composeClient(cmd.Context(), out, args[0], format, render)
		}
		if render {
			return fmt.Errorf("--render requires a client id")
		}

		clientID, _ := cmd.Flags().GetString("client")
		stackType, _ := cmd.Flags().GetString("stack-type")
		cms, _ := cmd.Flags().GetString("cms")
		ecommerce, _ := cmd.Flags().GetString("ecommerce")
		engine, _ := cmd.Flags().GetString("engine")

		descriptor, err := composeAdHoc(newComposer(), clientID, stackType, cms, ecommerce, model.Engine(engine))
		if err != nil {
			return err
		}
		return writeDescriptor(out, format, descriptor)
	},
}

// composeClient composes, and optionally renders, a configured client
func composeClient(ctx context.Context, out io.Writer, clientID, format string, render bool) error {
	provider, err := getConfigProvider()
	if err != nil {
		return err
	}
	cfg, err := provider.LoadClient(ctx, clientID)
	if err != nil {
		return err
	}

	composer := newComposer()
	descriptor, err := composer.FromConfig(cfg)
	if err != nil {
		return err
	}
	if !render {
		return writeDescriptor(out, format, descriptor)
	}

	renderer := deploy.NewCloudFormationEmitter(composer, state.store, nil,
		deploy.WithDryRun(true),
		deploy.WithLogger(state.logger),
	)
	result, err := renderer.Provision(ctx, descriptor, cfg)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, result.TemplateBody)
	return err
}

// composeAdHoc composes a stack from flags without a configuration file
func composeAdHoc(composer compose.Composer, clientID, stackType, cms, ecommerce string, engine model.Engine) (*model.StackDescriptor, error) {
	if clientID == "" {
		return nil, fmt.Errorf("a client id argument or --client is required")
	}

	switch {
	case cms != "" && ecommerce != "":
		return composer.CreateComposed(clientID, model.ProviderID(cms), model.ProviderID(ecommerce), engine)
	case stackType != "":
		return composer.Create(clientID, model.StackTypeID(stackType), engine)
	}
	return nil, fmt.Errorf("--stack-type or both --cms and --ecommerce are required")
}

func writeDescriptor(out io.Writer, format string, descriptor *model.StackDescriptor) error {
	if format != outputText {
		return writeStructured(out, format, descriptor)
	}

	_, _ = fmt.Fprintf(out, "Stack type:  %s (%s)\n", descriptor.StackType, descriptor.Category)
	_, _ = fmt.Fprintf(out, "Engine:      %s\n", descriptor.Engine)
	if descriptor.CMSProvider != "" {
		_, _ = fmt.Fprintf(out, "CMS:         %s\n", descriptor.CMSProvider)
	}
	if descriptor.EcommerceProvider != "" {
		_, _ = fmt.Fprintf(out, "E-commerce:  %s\n", descriptor.EcommerceProvider)
	}
	_, _ = fmt.Fprintf(out, "Construct:   %s\n", descriptor.ConstructID)
	_, _ = fmt.Fprintf(out, "Template:    %s\n", descriptor.TemplateVariant)
	_, _ = fmt.Fprintf(out, "Services:    %v\n", descriptor.RequiredServices)
	return nil
}

func init() {
	composeCmd.Flags().Bool("render", false, "print the rendered CloudFormation template")
	composeCmd.Flags().String("client", "", "client id for ad hoc composition")
	composeCmd.Flags().String("stack-type", "", "stack type id, for example hugo_static_site")
	composeCmd.Flags().String("cms", "", "CMS provider for a composed stack")
	composeCmd.Flags().String("ecommerce", "", "e-commerce provider for a composed stack")
	composeCmd.Flags().String("engine", "", "SSG engine; defaults to the provider's recommendation")
	addOutputFlag(composeCmd)
	rootCmd.AddCommand(composeCmd)
}
