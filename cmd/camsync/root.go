package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gearbase/camsync/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "camsync",
	Short: "Sync YAML camera catalog files to the pricing database",
	Long: `camsync reconciles a directory tree of YAML product and filter files
into the pricing database.

Product files are upserted on (brand, model); their aliases and fuzzy
patterns are replaced wholesale on every run. Filter keyword files are
upserted on (keyword, filter_type) and never deleted. Each run commits
as a single transaction: per-file errors are tolerated and counted,
anything worse rolls the whole run back.`,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddGroup(&cobra.Group{ID: "sync", Title: "Sync Commands:"})
	rootCmd.AddGroup(&cobra.Group{ID: "database", Title: "Database Commands:"})

	rootCmd.PersistentFlags().String("db", "", "path to the SQLite database (env CAMSYNC_DB)")
	rootCmd.PersistentFlags().String("root", "", "catalog root directory (env CAMSYNC_ROOT)")
	rootCmd.PersistentFlags().String("log-file", "", "also write the sync log to this rotating file (env CAMSYNC_LOG_FILE)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "per-file debug detail (classification, child counts, keyword upserts)")

	cobra.OnInitialize(func() {
		if err := config.Bind(rootCmd.PersistentFlags()); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding flags: %v\n", err)
			os.Exit(1)
		}
	})
}
