package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"skillroots/internal/platform/cache"
	infraredis "skillroots/internal/platform/redis"
)

var translationsCmd = &cobra.Command{
	Use:   "translations",
	Short: "Manage cached UI translations.",
}

var translationsPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete every cached translation table from Redis.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Redis.Host == "" {
			return fmt.Errorf("REDIS_HOST is not set")
		}
		rdb, err := infraredis.NewRedisClient(cmd.Context(), cfg.Redis)
		if err != nil {
			return err
		}
		defer rdb.Close()

		n, err := cache.NewCachingTranslator(rdb, cfg.TranslationCacheTTL, nil, "translations").Purge(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "purged %d cached translations\n", n)
		return nil
	},
}

func init() {
	translationsCmd.AddCommand(translationsPurgeCmd)
}
