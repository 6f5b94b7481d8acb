/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sitestack/sitestack/internal/catalog"
	"github.com/sitestack/sitestack/internal/model"
)

const stacksListing = "stacks"

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog [cms|ecommerce|ssg|stacks]",
	Short: "List providers, engines and stack types",
	Long: `List the provider catalog.

Without an argument every CMS, e-commerce and SSG provider is listed. Pass a
category to narrow the listing, or "stacks" to list the declared stack types.
When SITESTACK_REGISTRY_BUCKET or SITESTACK_REGISTRY_FILE is set, the external
metadata registry is overlaid on the embedded catalog first.

Examples:
  sitestack catalog                   # All providers
  sitestack catalog cms               # CMS providers only
  sitestack catalog stacks -o yaml    # Stack types as YAML`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(model.CategoryCMS), string(model.CategoryEcommerce), string(model.CategorySSG), stacksListing},
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}

		cat := state.store.Load()
		out := cmd.OutOrStdout()

		if len(args) > 0 && args[0] == stacksListing {
			stackTypes := cat.StackTypes()
			if format != outputText {
				return writeStructured(out, format, stackTypes)
			}
			writeStackTypes(out, stackTypes)
			return nil
		}

		categories := []model.Category{model.CategoryCMS, model.CategoryEcommerce, model.CategorySSG}
		if len(args) > 0 {
			category := model.Category(args[0])
			switch category {
			case model.CategoryCMS, model.CategoryEcommerce, model.CategorySSG:
			default:
				return fmt.Errorf("unknown category '%s': expected cms, ecommerce, ssg or stacks", args[0])
			}
			categories = []model.Category{category}
		}

		var providers []catalog.ProviderDescriptor
		for _, category := range categories {
			providers = append(providers, cat.Providers(category)...)
		}

		if format != outputText {
			return writeStructured(out, format, providers)
		}
		writeRegistryStatus(out)
		writeProviders(out, providers)
		return nil
	},
}

func writeRegistryStatus(out io.Writer) {
	if state.registry == nil {
		return
	}
	health := state.registry.Health()
	if health.Fallback {
		_, _ = fmt.Fprintf(out, "Registry: %s unavailable, using embedded catalog\n\n", health.Source)
		return
	}
	_, _ = fmt.Fprintf(out, "Registry: %s (%d providers)\n\n", health.Source, health.Providers)
}

func writeProviders(out io.Writer, providers []catalog.ProviderDescriptor) {
	for _, p := range providers {
		_, _ = fmt.Fprintf(out, "%-18s %-10s %-12s $%d-$%d/mo", p.ID, p.Category, p.Complexity, p.MonthlyCost.Min, p.MonthlyCost.Max)
		if p.Category != model.CategorySSG {
			_, _ = fmt.Fprintf(out, "  engines: %s (recommended %s)", model.JoinEngines(p.SupportedEngines), p.RecommendedEngine)
		}
		_, _ = fmt.Fprintln(out)
	}
}

func writeStackTypes(out io.Writer, stackTypes []catalog.StackType) {
	for _, st := range stackTypes {
		engine := "flexible"
		if st.FixedEngine != "" {
			engine = string(st.FixedEngine)
		}
		_, _ = fmt.Fprintf(out, "%-30s %-15s %s\n", st.ID, st.Category, engine)
	}
}

func init() {
	addOutputFlag(catalogCmd)
	rootCmd.AddCommand(catalogCmd)
}
