// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pocketport/internal/catalog"
	"github.com/pdiddy/pocketport/internal/convert"
	"github.com/pdiddy/pocketport/internal/pocket"
	"github.com/pdiddy/pocketport/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Maintain a local SQLite index of parsed bookmarks",
	Long: `Catalog keeps an optional local SQLite index of bookmarks parsed from
Pocket exports. Conversion never touches the catalog; it exists so a large
export can be inspected and queried before importing anywhere.`,
}

// --- load subcommand ---

var catalogLoadCmd = &cobra.Command{
	Use:   "load <input.csv>",
	Short: "Parse a Pocket CSV export into the catalog",
	Long: `Load parses a Pocket CSV export with the same schema rules as convert
and upserts every row with a URL into the catalog. Rows without a URL and
rows with a malformed time_added get the same warnings convert prints.`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogLoad,
}

func runCatalogLoad(cmd *cobra.Command, args []string) error {
	in, err := os.Open(args[0])
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", convert.ErrInputNotFound, args[0])
		}
		return fmt.Errorf("opening %s: %w", args[0], err)
	}
	defer in.Close()

	reader, err := pocket.NewReader(in)
	if err != nil {
		return err
	}

	store, err := catalog.Open(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	result, err := store.Load(reader, os.Stderr)
	if err != nil {
		return err
	}

	fmt.Printf("Cataloged %d bookmarks.\n", result.Stored)
	if result.Skipped > 0 {
		fmt.Printf("Skipped %d items due to missing URLs.\n", result.Skipped)
	}
	return nil
}

// --- list subcommand ---

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cataloged bookmarks, most recently imported first",
	RunE:  runCatalogList,
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	store, err := catalog.Open(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := store.List(limit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("Catalog is empty.")
		return nil
	}

	for _, e := range entries {
		date := "-"
		if e.HasDate {
			date = time.Unix(e.AddedAt, 0).UTC().Format("2006-01-02")
		}
		fmt.Printf("%-10s  %-30s  %s\n", date, truncate(e.Title, 30), e.URL)
	}

	total, err := store.Count()
	if err != nil {
		return err
	}
	fmt.Printf("\n%d of %d bookmarks\n", len(entries), total)
	return nil
}

// catalogConfig builds the catalog configuration: the catalog.db config key
// supplies the database path, overridden by the --db flag when set.
func catalogConfig(cmd *cobra.Command) types.CatalogConfig {
	cfg := types.CatalogConfig{
		DBPath: viper.GetString("catalog.db"),
	}
	if path, _ := cmd.Flags().GetString("db"); path != "" {
		cfg.DBPath = path
	}
	return cfg
}

func init() {
	catalogCmd.PersistentFlags().String("db", "", "catalog database file (default from config: pocketport.db)")
	catalogListCmd.Flags().Int("limit", 0, "maximum entries to list (0 = all)")

	catalogCmd.AddCommand(catalogLoadCmd)
	catalogCmd.AddCommand(catalogListCmd)
	rootCmd.AddCommand(catalogCmd)
}
