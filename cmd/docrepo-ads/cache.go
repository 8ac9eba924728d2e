package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ivoa/docrepo-ads/internal/cache"
	"github.com/ivoa/docrepo-ads/internal/config"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or purge the page cache",
}

var cacheInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the cache location and page count",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := mustOpenCache()
		defer store.Close()

		n, err := store.Count()
		if err != nil {
			os.Exit(outputError(ExitError, "counting cached pages: %v", err))
		}
		fmt.Printf("path:  %s\n", config.GetCachePath())
		fmt.Printf("pages: %d\n", n)
		return nil
	},
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete all cached pages",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := mustOpenCache()
		defer store.Close()

		if err := store.Purge(); err != nil {
			os.Exit(outputError(ExitError, "purging cache: %v", err))
		}
		fmt.Println("Cache purged")
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheInfoCmd)
	cacheCmd.AddCommand(cachePurgeCmd)
	rootCmd.AddCommand(cacheCmd)
}

func mustOpenCache() *cache.Store {
	store, err := cache.Open(config.GetCachePath())
	if err != nil {
		os.Exit(outputError(ExitConfigError, "opening page cache: %v", err))
	}
	return store
}
