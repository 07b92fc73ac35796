package cli

import (
	"github.com/spf13/cobra"

	"github.com/noah-isme/bank-bukti-api/internal/seed"
)

func newSeedCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Print the demo snapshot as JSON",
		Long:  "Print the demo requests and evidence. The output is accepted by stats --file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := opts.referenceDate()
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), seed.DemoSnapshot(date))
		},
	}
}
