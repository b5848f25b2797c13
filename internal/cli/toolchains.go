package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sysreport/internal/catalog"
	"sysreport/internal/probe"
	"sysreport/internal/report"
)

func NewToolchainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toolchains",
		Short: "Show install status for each cataloged language toolchain",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !report.Supported() {
				return nil
			}

			runner := probe.NewExecRunner()
			installed := color.New(color.FgGreen)
			missing := color.New(color.FgRed)

			for _, tc := range catalog.MustLoad() {
				st := report.LookupToolchain(cmd.Context(), runner, tc)
				if st.Installed {
					_, _ = installed.Fprintf(cmd.OutOrStdout(), "%-12s installed  %s\n", tc.Name, st.Path)
				} else {
					_, _ = missing.Fprintf(cmd.OutOrStdout(), "%-12s not found\n", tc.Name)
				}
			}
			return nil
		},
	}
}
