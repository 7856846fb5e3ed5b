// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pocketport/internal/convert"
)

var validateCmd = &cobra.Command{
	Use:   "validate <input.csv>",
	Short: "Dry-run a Pocket CSV export without writing HTML",
	Long: `Validate checks the schema of a Pocket CSV export and reports what a
conversion would produce: total rows, rows with and without URLs, and rows
with malformed timestamps. No output file is written.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	stats, err := convert.Validate(args[0], os.Stderr)
	if err != nil {
		return err
	}

	fmt.Printf("Columns:            %s\n", strings.Join(stats.Columns, ", "))
	fmt.Printf("Data rows:          %d\n", stats.Rows)
	fmt.Printf("Convertible rows:   %d\n", stats.WithURL)
	fmt.Printf("Missing URL:        %d\n", stats.MissingURL)
	fmt.Printf("Bad timestamps:     %d\n", stats.BadTimestamps)

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		if err := convert.WriteReport(reportPath, stats); err != nil {
			return err
		}
		fmt.Printf("Report saved to: %s\n", reportPath)
	}
	return nil
}

func init() {
	validateCmd.Flags().String("report", "", "write a YAML validation report to this path")

	rootCmd.AddCommand(validateCmd)
}
