/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sitestack/sitestack/internal/recommend"
	"github.com/sitestack/sitestack/internal/ui"
)

// recommendCmd represents the recommend command
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank stack types against client requirements",
	Long: `Rank stack types against client requirements.

Requirements come from a YAML file (--requirements) and from flags; flags
override keys read from the file. Only stacks whose category passes the
content management and e-commerce gates are ranked.

Examples:
  sitestack recommend --content-management --budget-conscious
  sitestack recommend --ecommerce --react --monthly-budget 100
  sitestack recommend --requirements client-needs.yaml -o json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}

		req, err := requirementsFromFlags(cmd)
		if err != nil {
			return err
		}

		entries := recommend.Recommend(state.store.Load(), req)
		if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 && len(entries) > limit {
			entries = entries[:limit]
		}

		if format != outputText {
			return writeStructured(cmd.OutOrStdout(), format, entries)
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), ui.RenderRecommendations(entries, ui.NewStyles(ui.ShouldUseColour())))
		return err
	},
}

// requirementsFromFlags reads the optional requirements file and overlays
// every flag the user set
func requirementsFromFlags(cmd *cobra.Command) (recommend.Requirements, error) {
	req := recommend.Requirements{}
	flags := cmd.Flags()

	if path, _ := flags.GetString("requirements"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read requirements file: %w", err)
		}
		if err := yaml.Unmarshal(data, &req); err != nil {
			return nil, fmt.Errorf("failed to parse requirements file: %w", err)
		}
		if req == nil {
			req = recommend.Requirements{}
		}
	}

	boolFlags := map[string]string{
		"content-management":   recommend.ContentManagement,
		"ecommerce":            recommend.Ecommerce,
		"budget-conscious":     recommend.BudgetConscious,
		"react":                recommend.ReactPreferred,
		"vue":                  recommend.VuePreferred,
		"performance-critical": recommend.PerformanceCritical,
	}
	for flag, key := range boolFlags {
		if flags.Changed(flag) {
			req[key], _ = flags.GetBool(flag)
		}
	}

	if flags.Changed("monthly-budget") {
		req[recommend.MonthlyBudget], _ = flags.GetFloat64("monthly-budget")
	}
	if flags.Changed("complexity") {
		req[recommend.ComplexityLevel], _ = flags.GetString("complexity")
	}
	if flags.Changed("use-cases") {
		req[recommend.UseCases], _ = flags.GetString("use-cases")
	}
	if flags.Changed("features") {
		req[recommend.Features], _ = flags.GetString("features")
	}
	return req, nil
}

func init() {
	flags := recommendCmd.Flags()
	flags.String("requirements", "", "YAML file of requirements")
	flags.Bool("content-management", false, "the client edits content through a CMS")
	flags.Bool("ecommerce", false, "the client sells online")
	flags.Bool("budget-conscious", false, "prefer low-cost stacks")
	flags.Float64("monthly-budget", 0, "monthly budget in dollars")
	flags.String("complexity", "", "acceptable complexity: low, low-medium, medium, medium-high or high")
	flags.Bool("react", false, "prefer React-based engines")
	flags.Bool("vue", false, "prefer Vue-based engines")
	flags.Bool("performance-critical", false, "favour the fastest engines")
	flags.String("use-cases", "", "comma-separated use cases, for example blog,docs")
	flags.String("features", "", "comma-separated required features")
	flags.Int("limit", 0, "show at most this many recommendations")
	addOutputFlag(recommendCmd)
	rootCmd.AddCommand(recommendCmd)
}
