// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pocketport/internal/convert"
	"github.com/pdiddy/pocketport/internal/netscape"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <bookmarks.html>",
	Short: "Parse a Netscape Bookmark file and list its entries",
	Long: `Verify re-parses a generated Netscape Bookmark file and prints each
bookmark's URL, title, tags, and date. Use it to sanity-check a conversion
before importing the file into Linkwarden.`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", convert.ErrInputNotFound, args[0])
		}
		return fmt.Errorf("opening %s: %w", args[0], err)
	}
	defer f.Close()

	entries, err := netscape.Parse(f)
	if err != nil {
		return err
	}

	for i, e := range entries {
		date := "-"
		if e.HasDate {
			date = time.Unix(e.AddDate, 0).UTC().Format("2006-01-02")
		}
		tags := e.Tags
		if tags == "" {
			tags = "-"
		}
		fmt.Printf("%-4d  %-10s  %-30s  %s\n", i+1, date, truncate(e.Title, 30), e.HRef)
		if tags != "-" {
			fmt.Printf("      tags: %s\n", tags)
		}
	}
	fmt.Printf("\n%d bookmarks\n", len(entries))
	return nil
}

// truncate shortens s to at most n display runes. Counting runes rather
// than bytes keeps multibyte titles intact.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n-3]) + "..."
	}
	return s
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
