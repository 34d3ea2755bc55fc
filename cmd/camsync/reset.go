package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/gearbase/camsync/internal/config"
	"github.com/gearbase/camsync/internal/store"
	"github.com/gearbase/camsync/internal/ui"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:     "reset",
	GroupID: "database",
	Short:   "Delete all synced rows",
	Long: `Delete every product, alias, fuzzy pattern, and filter keyword from
the database. The schema stays in place; the next sync repopulates it.

Asks for confirmation unless --force is given.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if _, err := os.Stat(cfg.DatabasePath); os.IsNotExist(err) {
			fmt.Printf("%s Database %s does not exist, nothing to reset\n",
				ui.RenderWarn("⚠"), cfg.DatabasePath)
			return
		}

		if !resetForce {
			var confirmed bool
			prompt := huh.NewConfirm().
				Title("Delete all synced rows?").
				Description(fmt.Sprintf("This removes every product, alias, pattern, and keyword from %s.", cfg.DatabasePath)).
				Affirmative("Delete").
				Negative("Cancel").
				Value(&confirmed)
			if err := prompt.Run(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if !confirmed {
				fmt.Println("Reset cancelled")
				return
			}
		}

		db, err := store.Open(cfg.DatabasePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := db.Wipe(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error wiping database: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%s All synced rows deleted from %s\n", ui.RenderPass("✓"), cfg.DatabasePath)
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}
