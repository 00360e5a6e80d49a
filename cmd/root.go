package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "a11yreport",
	Short: "Aggregate accessibility scan artifacts into one report",
	Long: `a11yreport turns the artifacts of an accessibility audit run - a raw
axe-core CLI log, a Lighthouse JSON report and an optional list of manual
findings - into a single self-contained HTML report.`,
	Version:      version,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
