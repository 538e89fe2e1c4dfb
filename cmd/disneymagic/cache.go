package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rjcampbel/DisneyMagic/internal/config"
	"github.com/rjcampbel/DisneyMagic/internal/store"
)

func addCache(topLevel *cobra.Command, opts *rootOptions) {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the on-disk image cache.",
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the cached images for the configured catalog.",
		Example: `
disneymagic cache clear
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}
			dir, err := config.ExpandPath(cfg.Cache.Dir)
			if err != nil {
				return err
			}
			cache, err := store.Open(dir, cfg.Catalog.BaseURL)
			if err != nil {
				return fmt.Errorf("failed to open image cache: %w", err)
			}
			defer cache.Close()
			if !cache.Persistent() {
				fmt.Fprintln(cmd.OutOrStdout(), "image cache is memory only; nothing to clear")
				return nil
			}
			if err := cache.InvalidateAll(); err != nil {
				return fmt.Errorf("failed to clear cache: %w", err)
			}
			logger.Info("image cache cleared", "dir", dir, "baseUrl", cfg.Catalog.BaseURL)
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("cleared"), cfg.Catalog.BaseURL, "in", dir)
			return nil
		},
	}

	cmd.AddCommand(clearCmd)
	topLevel.AddCommand(cmd)
}
