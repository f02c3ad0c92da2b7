package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"Girder/internal/calc/girder"
	"Girder/internal/calc/report"
)

var (
	reportInput string
	reportOut   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run a verification and write the PDF design note",
	Long: `Run the verification pipeline for one bridge and write the
PDF design note with inputs, section, design forces and the check
table.

Examples:
  girderctl report --input bridge.yaml --out bridge.pdf`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportInput, "input", "i", "", "Input file, YAML or JSON [required]")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "girder-report.pdf", "Output PDF path")

	reportCmd.MarkFlagRequired("input")
}

func runReport(cmd *cobra.Command, args []string) error {
	input, err := loadInput(reportInput)
	if err != nil {
		return err
	}

	res, err := girder.Calculate(context.Background(), input)
	if err != nil {
		return err
	}

	pdf := report.Build(res)
	if err := pdf.OutputFileAndClose(reportOut); err != nil {
		return err
	}
	fmt.Printf("Report written to %s (overall: %s)\n", reportOut, res.Status)
	return nil
}
