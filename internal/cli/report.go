package cli

import (
	"github.com/spf13/cobra"

	"sysreport/internal/report"
)

func NewReportCmd() *cobra.Command {
	var output string
	var manifest bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Collect system information into " + report.DefaultOutput,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, output, manifest)
		},
	}

	cmd.Flags().StringVar(&output, "output", report.DefaultOutput, "Report destination file")
	cmd.Flags().BoolVar(&manifest, "manifest", false, "Also write a JSON run manifest next to the report")
	return cmd
}

// runReport is the platform-gated entry: off Windows it returns immediately
// with nothing written and exit code 0. On Windows it never fails either;
// probes degrade to placeholders and the write is best-effort.
func runReport(cmd *cobra.Command, output string, manifest bool) error {
	if !report.Supported() {
		return nil
	}
	_, err := report.Run(cmd.Context(), report.Options{
		Output:        output,
		WriteManifest: manifest,
	})
	return err
}
