/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sitestack/sitestack/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}
		if format != outputText {
			return writeStructured(cmd.OutOrStdout(), format, version.Current())
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		return err
	},
}

func init() {
	addOutputFlag(versionCmd)
	rootCmd.AddCommand(versionCmd)
}
