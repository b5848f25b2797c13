package cli

import (
	"fmt"
	"runtime"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"sysreport/internal/report"
	"sysreport/internal/version"
)

func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "sysreport",
		Short:         "Host diagnostic report generator (Windows)",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Running the bare binary collects the report with defaults.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, report.DefaultOutput, false)
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := hclog.Off
			if verbose {
				level = hclog.Debug
			}
			hclog.SetDefault(hclog.New(&hclog.LoggerOptions{
				Name:   "sysreport",
				Level:  level,
				Output: cmd.ErrOrStderr(),
			}))
		},
	}

	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log each probe invocation to stderr")

	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewToolchainsCmd())
	cmd.AddCommand(NewVersionCmd())

	cmd.SetVersionTemplate(fmt.Sprintf("%s (%s/%s)\n", version.Version, runtime.GOOS, runtime.GOARCH))
	cmd.Version = version.Version

	return cmd
}
