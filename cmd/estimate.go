/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sitestack/sitestack/internal/cost"
	"github.com/sitestack/sitestack/internal/model"
	"github.com/sitestack/sitestack/internal/ui"
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate [stack-type]",
	Short: "Estimate monthly and setup costs",
	Long: `Estimate the monthly and setup cost range of a stack type.

Either name a stack type or pass --client to estimate a configured client, in
which case its stack type, engine and integration mode are used. Estimates are
indicative only.

Examples:
  sitestack estimate hugo_static_site
  sitestack estimate sanity_cms_tier --engine astro --event-driven
  sitestack estimate decap_snipcart_composed --sales-volume 10000
  sitestack estimate --client acme-co`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		engine, _ := flags.GetString("engine")
		eventDriven, _ := flags.GetBool("event-driven")
		builds, _ := flags.GetInt("builds")
		volume, _ := flags.GetString("sales-volume")
		clientID, _ := flags.GetString("client")

		assumptions := cost.Assumptions{EventDriven: eventDriven, BuildsPerMonth: builds}
		if volume != "" {
			if assumptions.MonthlySalesVolume, err = decimal.NewFromString(volume); err != nil {
				return fmt.Errorf("invalid sales volume '%s': %w", volume, err)
			}
		}

		var stackType model.StackTypeID
		switch {
		case len(args) > 0 && clientID != "":
			return fmt.Errorf("pass either a stack type or --client, not both")
		case len(args) > 0:
			stackType = model.StackTypeID(args[0])
		case clientID != "":
			provider, err := getConfigProvider()
			if err != nil {
				return err
			}
			cfg, err := provider.LoadClient(cmd.Context(), clientID)
			if err != nil {
				return err
			}
			stackType = cfg.StackType()
			if engine == "" {
				engine = string(cfg.Integration.SSGEngine)
			}
			assumptions.EventDriven = assumptions.EventDriven || cfg.IsEventDriven()
		default:
			return fmt.Errorf("a stack type argument or --client is required")
		}

		breakdown, err := cost.Estimate(state.store.Load(), stackType, model.Engine(engine), assumptions)
		if err != nil {
			return err
		}

		if format != outputText {
			return writeStructured(cmd.OutOrStdout(), format, breakdown)
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), ui.RenderEstimate(breakdown, ui.NewStyles(ui.ShouldUseColour())))
		return err
	},
}

func init() {
	flags := estimateCmd.Flags()
	flags.String("engine", "", "SSG engine for flexible stacks")
	flags.Bool("event-driven", false, "include event bus messaging costs")
	flags.Int("builds", 0, "site builds per month (default assumption when 0)")
	flags.String("sales-volume", "", "monthly sales volume in dollars for transaction fees")
	flags.String("client", "", "estimate a configured client")
	addOutputFlag(estimateCmd)
	rootCmd.AddCommand(estimateCmd)
}
