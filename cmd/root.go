/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/sitestack/sitestack/internal/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sitestack",
	Short: "Compose, price and provision static-site stacks for hosting clients",
	Long: `Sitestack turns a client's declared service intent into a deployable stack:

• Validated client configuration in YAML files
• Engine compatibility across CMS and e-commerce providers
• Stack recommendations ranked against client requirements
• Monthly and setup cost estimates
• CloudFormation provisioning with tags, environment and webhooks

Use sitestack to check client definitions, explore the provider catalog and
provision each client's site in its AWS region.`,
	Version:           version.Short(),
	SilenceUsage:      true,
	PersistentPreRunE: setupRuntime,
}

// RootCommand returns the root command, for documentation generation
func RootCommand() *cobra.Command {
	return rootCmd
}

// Execute runs the root command through fang. It is called by main.main().
func Execute(ctx context.Context) error {
	info := version.Current()
	return fang.Execute(ctx, rootCmd,
		fang.WithVersion(info.Version),
		fang.WithCommit(info.GitCommit),
	)
}

func init() {
	rootCmd.SetVersionTemplate(version.Info() + "\n")

	rootCmd.PersistentFlags().StringP("config", "c", "sitestack.yaml", "client configuration file")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "AWS profile (overrides SITESTACK_AWS_PROFILE)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text or json")
}
