// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pocketport CLI, which converts
// Pocket CSV exports into Netscape Bookmark HTML files for import into
// Linkwarden and other bookmark managers.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pocketport/internal/convert"
	"github.com/pdiddy/pocketport/internal/pocket"
)

// version is set at build time via ldflags.
var version = "dev"

// Exit codes for the fatal error taxonomy. Row-level problems are warnings
// and never change the exit code.
const (
	exitUnexpected    = 1
	exitInputNotFound = 2
	exitSchemaError   = 3
)

// rootCmd is the base command for the pocketport CLI.
var rootCmd = &cobra.Command{
	Use:   "pocketport",
	Short: "Convert Pocket CSV exports to Netscape Bookmark HTML",
	Long: `pocketport converts a Pocket bookmark export (CSV) into a Netscape
Bookmark HTML file that Linkwarden's importer accepts. The conversion is a
single deterministic pass: rows stream in, anchor lines stream out, and a
summary is printed at the end.

Supporting subcommands cover the rest of the workflow: validate dry-runs a
CSV without writing HTML, verify re-parses a generated bookmark file, and
catalog keeps an optional local SQLite index of parsed bookmarks.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pocketport.yaml or ~/.config/pocketport/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pocketport")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pocketport"))
		}
	}

	viper.SetDefault("catalog.db", "pocketport.db")

	viper.SetEnvPrefix("POCKETPORT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// exitCode maps a fatal error to its process exit code.
func exitCode(err error) int {
	var schemaErr *pocket.SchemaError
	switch {
	case errors.As(err, &schemaErr):
		return exitSchemaError
	case errors.Is(err, convert.ErrInputNotFound):
		return exitInputNotFound
	default:
		return exitUnexpected
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}
