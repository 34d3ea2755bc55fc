package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/gearbase/camsync/internal/config"
	"github.com/gearbase/camsync/internal/store"
	"github.com/gearbase/camsync/internal/syncer"
	"github.com/gearbase/camsync/internal/ui"
)

var syncCmd = &cobra.Command{
	Use:     "sync",
	GroupID: "sync",
	Short:   "Sync catalog files to the database",
	Long: `Sync all YAML catalog files under the root directory to the database.

This performs a full single-pass run:
  1. Recursively discovers *.yml / *.yaml files (lexicographic order)
  2. Classifies each file structurally as product, filter, or unrecognized
  3. Upserts products on (brand, model), replacing aliases and fuzzy
     patterns wholesale
  4. Upserts filter keywords on (keyword, filter_type)

The whole run commits as one transaction. Per-file parse and storage
errors are logged, counted, and do not stop the run; any failure outside
a record boundary rolls back everything and exits non-zero.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := cfg.ValidateRoot(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		db, err := store.Open(cfg.DatabasePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
			os.Exit(1)
		}
		defer db.Close()

		ctx := context.Background()
		if err := db.InitSchema(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing schema: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%s Syncing %s into %s...\n", ui.RenderAccent("→"), cfg.RootDir, cfg.DatabasePath)
		start := time.Now()

		stats, err := syncer.New(db, newSyncLogger(cfg), cfg.Verbose).Run(ctx, cfg.RootDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %v (all changes rolled back)\n", ui.RenderFail("✗"), err)
			os.Exit(1)
		}

		elapsed := time.Since(start)
		fmt.Printf("\n%s Sync committed in %v\n", ui.RenderPass("✓"), elapsed.Round(time.Millisecond))
		fmt.Printf("   Products synced: %d\n", stats.Products)
		fmt.Printf("   Filter keywords: %d\n", stats.Keywords)
		fmt.Printf("   Skipped files:   %d\n", stats.Skipped)
		fmt.Printf("   Errored files:   %d\n", stats.Errors)
		if stats.Errors > 0 {
			fmt.Printf("\n%s run committed with %d per-file errors, see log above\n",
				ui.RenderWarn("⚠"), stats.Errors)
		}
	},
}

// newSyncLogger builds the run logger: stderr always, plus a rotating
// file sink when --log-file is configured.
func newSyncLogger(cfg *config.Config) *log.Logger {
	var out io.Writer = os.Stderr
	if cfg.LogFile != "" {
		out = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		})
	}

	flags := log.LstdFlags
	if cfg.Verbose {
		flags |= log.Lmicroseconds
	}
	return log.New(out, "[sync] ", flags)
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
