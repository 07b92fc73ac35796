package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/noah-isme/bank-bukti-api/internal/dto"
	"github.com/noah-isme/bank-bukti-api/internal/models"
	"github.com/noah-isme/bank-bukti-api/internal/service"
)

func newDeadlineCmd(opts *RootOptions) *cobra.Command {
	var dueDate string

	cmd := &cobra.Command{
		Use:   "deadline",
		Short: "Classify a due date against the warning window",
		Example: `  bukti deadline --tenggat 2025-10-10 --date 2025-10-08
  bukti deadline --tenggat 2025-10-10 -w 1 -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dueDate = strings.TrimSpace(dueDate)
			if dueDate == "" {
				return fmt.Errorf("--tenggat is required")
			}
			date, err := opts.referenceDate()
			if err != nil {
				return err
			}

			result := dto.DeadlineResponse{
				DueDate:     dueDate,
				Date:        date.Format(models.DateLayout),
				WarningDays: opts.WarningDays,
				Deadline:    service.ClassifyDueDate(dueDate, opts.WarningDays, date),
			}
			if opts.OutputFormat == outputJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			if result.Deadline.Tier == models.UrgencyUnknown {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: tanggal tidak valid\n", dueDate)
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", dueDate, result.Deadline.Label, result.Deadline.Tier)
			return err
		},
	}

	cmd.Flags().StringVarP(&dueDate, "tenggat", "t", "", "due date YYYY-MM-DD")
	return cmd
}
