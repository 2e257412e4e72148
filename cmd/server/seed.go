package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"skillroots/internal/app/di"
	"skillroots/internal/app/seed"
	"skillroots/internal/platform/db"
)

var seedCatalog string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Migrate the store and insert the demo catalog if it has no videos.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
		defer cancel()

		c, err := loadCatalog(seedCatalog)
		if err != nil {
			return err
		}

		// 自動シードは行わず、結果をここで報告する
		store := db.NewStore(cfg.DB, nil, di.Collections(), nil)
		gdb, err := store.Open(ctx)
		if err != nil {
			return err
		}
		seeded, err := c.SeedIfEmpty(ctx, gdb)
		if err != nil {
			return err
		}
		if seeded {
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d videos and %d items\n", len(c.Videos), len(c.Items))
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "store already has videos; nothing to do")
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedCatalog, "catalog", "", "YAML catalog file (defaults to the embedded demo catalog)")
}

func loadCatalog(path string) (*seed.Catalog, error) {
	if path == "" {
		return seed.DefaultCatalog()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return seed.ParseCatalog(b)
}
