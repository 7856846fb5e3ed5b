// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pocketport/internal/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input.csv> <output.html>",
	Short: "Convert a Pocket CSV export to a Netscape Bookmark file",
	Long: `Convert reads a Pocket CSV export and writes a Netscape Bookmark HTML
file. Rows without a URL are skipped with a warning; rows with a malformed
time_added keep their bookmark but lose the ADD_DATE attribute. The input
schema is validated before the output file is created, so a schema error
leaves nothing on disk.`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	report, err := convert.Run(args[0], args[1], os.Stderr)
	if err != nil {
		return err
	}

	fmt.Printf("\nSuccessfully converted %d bookmarks.\n", report.Added)
	if report.SkippedMissingURL > 0 {
		fmt.Printf("Skipped %d items due to missing URLs.\n", report.SkippedMissingURL)
	}
	fmt.Printf("Output HTML file saved to: %s\n", report.OutputPath)

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		if err := convert.WriteReport(reportPath, report); err != nil {
			return err
		}
		fmt.Printf("Report saved to: %s\n", reportPath)
	}

	printImportInstructions(report.OutputPath)
	return nil
}

// printImportInstructions prints the fixed follow-up steps for importing the
// generated file into Linkwarden.
func printImportInstructions(outputPath string) {
	fmt.Println("\n--- Importing into Linkwarden ---")
	fmt.Println("1. Log in to your Linkwarden instance.")
	fmt.Println("2. Open the 'Import Links' option (usually on the dashboard).")
	fmt.Println("3. Select 'HTML Bookmarks File' (or 'Netscape Bookmarks').")
	fmt.Printf("4. Upload the generated file: %s\n", outputPath)
	fmt.Println("5. Follow Linkwarden's prompts to complete the import.")
}

func init() {
	convertCmd.Flags().String("report", "", "write a YAML conversion report to this path")

	rootCmd.AddCommand(convertCmd)
}
