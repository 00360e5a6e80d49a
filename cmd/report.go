package cmd

import (
	"fmt"
	"os"

	"a11yreport/pkg/axe"
	"a11yreport/pkg/findings"
	"a11yreport/pkg/lighthouse"
	"a11yreport/pkg/reports"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	axePath          string
	lighthousePath   string
	manualJSON       string
	manualFile       string
	screenReaderPath string
	outputPath       string
	phase            string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the HTML accessibility report",
	Long: `Generates the HTML report from the scan artifacts. Every input is
optional and degrades independently; only a missing --output is fatal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if outputPath == "" {
			return fmt.Errorf("--output is required")
		}

		lh, violations, manual, tree := loadInputs()
		view := reports.BuildReportView(reports.Phase(phase), lh, violations, manual, tree)
		if err := reports.GenerateHTMLReport(view, outputPath); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), outputPath)
		return nil
	},
}

func init() {
	addInputFlags(reportCmd)
	reportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination HTML file path (required)")
	reportCmd.Flags().StringVar(&phase, "phase", "pre", "Audit phase, pre or post (controls the report title)")
	rootCmd.AddCommand(reportCmd)
}

// addInputFlags registers the scan artifact flags shared by report and summary.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&axePath, "axe", "", "Path to the raw axe-core CLI text log")
	cmd.Flags().StringVar(&lighthousePath, "lighthouse-json", "", "Path to the Lighthouse JSON report")
	cmd.Flags().StringVar(&manualJSON, "manual", "", "Inline JSON array of manual findings")
	cmd.Flags().StringVar(&manualFile, "manual-file", "", "Path to a JSON array of manual findings (overrides --manual)")
	cmd.Flags().StringVar(&screenReaderPath, "screen-reader", "", "Path to a plain-text screen reader tree dump")
}

// loadInputs reads the optional scan artifacts. Each one degrades to an empty
// value on failure so a single bad input never suppresses the report.
func loadInputs() (*lighthouse.Result, axe.ViolationList, []findings.ManualFinding, string) {
	violations, err := axe.LoadLog(axePath)
	if err != nil {
		warn("skipping axe log: %v", err)
		violations = nil
	}

	lh, err := lighthouse.Load(lighthousePath)
	if err != nil {
		warn("skipping lighthouse report: %v", err)
		lh = nil
	}

	manual, err := findings.LoadManualFindings(manualFile, manualJSON)
	if err != nil {
		warn("skipping manual findings: %v", err)
		manual = nil
	}

	var tree string
	if screenReaderPath != "" {
		b, err := os.ReadFile(screenReaderPath)
		if err != nil {
			warn("skipping screen reader dump: %v", err)
		} else {
			tree = string(b)
		}
	}

	return lh, violations, manual, tree
}

func warn(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}
