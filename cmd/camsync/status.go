package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gearbase/camsync/internal/catalog"
	"github.com/gearbase/camsync/internal/config"
	"github.com/gearbase/camsync/internal/store"
	"github.com/gearbase/camsync/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	GroupID: "database",
	Short:   "Show database status",
	Long: `Display the current contents of the pricing database.

Shows:
  - Database file location and size
  - Number of products, aliases, and fuzzy patterns
  - Number of filter keywords per type`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		info, err := os.Stat(cfg.DatabasePath)
		if os.IsNotExist(err) {
			fmt.Printf("\n%s Database not initialized\n", ui.RenderWarn("⚠"))
			fmt.Printf("   Run 'camsync sync' to create it\n\n")
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error checking database: %v\n", err)
			os.Exit(1)
		}

		db, err := store.Open(cfg.DatabasePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
			os.Exit(1)
		}
		defer db.Close()

		ctx := context.Background()

		products, err := db.ProductCount(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error counting products: %v\n", err)
			os.Exit(1)
		}
		aliases, err := db.AliasCount(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error counting aliases: %v\n", err)
			os.Exit(1)
		}
		patterns, err := db.FuzzyPatternCount(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error counting fuzzy patterns: %v\n", err)
			os.Exit(1)
		}
		keywords, err := db.FilterKeywordCounts(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error counting filter keywords: %v\n", err)
			os.Exit(1)
		}

		size := info.Size()
		sizeStr := fmt.Sprintf("%d bytes", size)
		if size > 1024*1024 {
			sizeStr = fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
		} else if size > 1024 {
			sizeStr = fmt.Sprintf("%.1f KB", float64(size)/1024)
		}

		fmt.Printf("\n%s Pricing Database Status\n\n", ui.RenderAccent("▸"))
		fmt.Printf("Location: %s\n", cfg.DatabasePath)
		fmt.Printf("Size: %s\n", sizeStr)
		fmt.Printf("Products: %d\n", products)
		fmt.Printf("Aliases: %d\n", aliases)
		fmt.Printf("Fuzzy patterns: %d\n", patterns)
		fmt.Printf("Reject keywords: %d\n", keywords[catalog.FilterReject])
		fmt.Printf("Boost keywords: %d\n", keywords[catalog.FilterBoost])
		fmt.Printf("Modified: %s\n", info.ModTime().Format("2006-01-02 15:04:05"))
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
