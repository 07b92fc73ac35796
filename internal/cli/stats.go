package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/noah-isme/bank-bukti-api/internal/dto"
	"github.com/noah-isme/bank-bukti-api/internal/models"
	"github.com/noah-isme/bank-bukti-api/internal/seed"
	"github.com/noah-isme/bank-bukti-api/internal/service"
)

func newStatsCmd(opts *RootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Compute dashboard statistics over a snapshot",
		Long: `Compute the fulfillment dashboard over a JSON snapshot of the form
{"permintaan": [...], "bukti": [...]}. Without --file the demo data is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := opts.referenceDate()
			if err != nil {
				return err
			}

			snapshot := seed.DemoSnapshot(opts.now())
			if file != "" {
				snapshot, err = loadSnapshot(file)
				if err != nil {
					return err
				}
			}

			result := dto.DashboardResponse{
				Date:        date.Format(models.DateLayout),
				WarningDays: opts.WarningDays,
				Stats:       service.AggregateStats(snapshot.Requests, snapshot.Evidence, opts.WarningDays, date),
			}
			if opts.OutputFormat == outputJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			return printStats(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "snapshot JSON file (default: demo data)")
	return cmd
}

func loadSnapshot(path string) (models.Snapshot, error) {
	var snapshot models.Snapshot
	raw, err := os.ReadFile(path)
	if err != nil {
		return snapshot, fmt.Errorf("read snapshot: %w", err)
	}
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return snapshot, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	return snapshot, nil
}

func printStats(out io.Writer, result dto.DashboardResponse) error {
	stats := result.Stats
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Tanggal\t%s\n", result.Date)
	fmt.Fprintf(tw, "Batas peringatan\t%d hari\n", result.WarningDays)
	fmt.Fprintf(tw, "Total permintaan\t%d\n", stats.TotalRequests)
	fmt.Fprintf(tw, "Terpenuhi\t%d (%d%%)\n", stats.Fulfilled, stats.FulfillmentPercentage)
	fmt.Fprintf(tw, "Mendekati tenggat\t%d\n", stats.ApproachingDeadline)
	fmt.Fprintf(tw, "Terlambat\t%d\n", stats.Overdue)
	for _, bucket := range stats.StatusDistribution {
		fmt.Fprintf(tw, "Status %s\t%d\n", bucket.Status, bucket.Count)
	}
	for _, unit := range stats.RequestsPerUnit {
		fmt.Fprintf(tw, "Permintaan %s\t%d\n", unit.Unit, unit.Count)
	}
	for _, unit := range stats.EvidencePerUnit {
		fmt.Fprintf(tw, "Bukti %s\t%d\n", unit.Unit, unit.Count)
	}
	return tw.Flush()
}
