package cmd

import (
	"a11yreport/pkg/scorecard"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the scan score cards to the terminal",
	Long:  `Prints the Lighthouse score, axe violation total and manual finding count without writing an HTML file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lh, violations, manual, _ := loadInputs()

		var score *int
		if lh != nil {
			score = lh.Score
		}
		scorecard.DisplayCards(scorecard.NewCards(score, violations.TotalCount(), len(manual)))
		return nil
	},
}

func init() {
	addInputFlags(summaryCmd)
	rootCmd.AddCommand(summaryCmd)
}
