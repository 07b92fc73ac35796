// Package cli implements the bukti command line tool: offline deadline classification,
// dashboard statistics over a snapshot file and the demo data export.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/noah-isme/bank-bukti-api/internal/models"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// RootOptions holds global CLI flags.
type RootOptions struct {
	OutputFormat string
	Date         string
	WarningDays  int

	// now is overridden in tests.
	now func() time.Time
}

// NewRootCommand creates the root command with its global flags and subcommands.
func NewRootCommand() *cobra.Command {
	return newRootCommand(time.Now)
}

func newRootCommand(now func() time.Time) *cobra.Command {
	opts := &RootOptions{now: now}

	cmd := &cobra.Command{
		Use:     "bukti",
		Short:   "Audit evidence bank tooling",
		Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.OutputFormat {
			case outputText, outputJSON:
				return nil
			default:
				return fmt.Errorf("invalid output format %q (must be text or json)", opts.OutputFormat)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.OutputFormat, "output", "o", outputText, "output format (text, json)")
	pf.StringVar(&opts.Date, "date", "", "reference date YYYY-MM-DD (default: today)")
	pf.IntVarP(&opts.WarningDays, "warning-days", "w", 7, "warning window in days")

	cmd.AddCommand(newDeadlineCmd(opts))
	cmd.AddCommand(newStatsCmd(opts))
	cmd.AddCommand(newSeedCmd(opts))

	return cmd
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// referenceDate resolves --date in the local timezone, defaulting to now.
func (o *RootOptions) referenceDate() (time.Time, error) {
	raw := strings.TrimSpace(o.Date)
	if raw == "" {
		return o.now(), nil
	}
	date, err := time.ParseInLocation(models.DateLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", raw)
	}
	return date, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
