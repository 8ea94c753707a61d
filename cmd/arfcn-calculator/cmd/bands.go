package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mwk/arfcn-calculator/internal/band"
	"github.com/mwk/arfcn-calculator/internal/display"
)

var bandsCmd = &cobra.Command{
	Use:   "bands",
	Short: "Print the supported network ranges and the network info dialer codes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return display.Overview(cmd.OutOrStdout(), band.Bands(), displayOptions())
	},
}
