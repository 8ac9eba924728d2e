package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ivoa/docrepo-ads/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set configuration values.

Usage:
  docrepo-ads config                           # Show all config
  docrepo-ads config repo-url                  # Get specific value
  docrepo-ads config ads-token <token>         # Set value

Keys:
  ads-token   ADS access token (ADS_API_TOKEN overrides)
  repo-url    Document repository index URL
  cache-path  Page cache database location
  notes-file  Allowlist of note landing URLs
  arxiv-file  Short-name to arXiv-id map

Values are stored in ` + config.GlobalConfigPath(),
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadGlobal()
	if err != nil {
		os.Exit(outputError(ExitConfigError, "%v", err))
	}

	// No args: show all config
	if len(args) == 0 {
		fmt.Printf("ads-token:  %s\n", maskToken(cfg.ADSToken))
		fmt.Printf("repo-url:   %s\n", config.GetRepoURL())
		fmt.Printf("cache-path: %s\n", config.GetCachePath())
		fmt.Printf("notes-file: %s\n", orDefault(cfg.NotesFile, config.DefaultNotesFile))
		fmt.Printf("arxiv-file: %s\n", orDefault(cfg.ArXivFile, config.DefaultArXivFile))
		return nil
	}

	key := args[0]
	field, err := configField(cfg, key)
	if err != nil {
		os.Exit(outputError(ExitError, "%v", err))
	}

	// One arg: get specific value
	if len(args) == 1 {
		if key == "ads-token" {
			fmt.Println(maskToken(*field))
		} else {
			fmt.Println(*field)
		}
		return nil
	}

	// Two args: set value
	*field = args[1]
	if err := cfg.Save(); err != nil {
		os.Exit(outputError(ExitConfigError, "%v", err))
	}
	fmt.Printf("Set %s\n", key)
	return nil
}

func configField(cfg *config.GlobalConfig, key string) (*string, error) {
	switch key {
	case "ads-token":
		return &cfg.ADSToken, nil
	case "repo-url":
		return &cfg.RepoURL, nil
	case "cache-path":
		return &cfg.CachePath, nil
	case "notes-file":
		return &cfg.NotesFile, nil
	case "arxiv-file":
		return &cfg.ArXivFile, nil
	default:
		return nil, fmt.Errorf("unknown config key %q (valid: ads-token, repo-url, cache-path, notes-file, arxiv-file)", key)
	}
}

// maskToken keeps the last four characters so tokens can be told apart
// without showing up in scrollback.
func maskToken(t string) string {
	if t == "" {
		return "(not set)"
	}
	if len(t) <= 4 {
		return strings.Repeat("*", len(t))
	}
	return strings.Repeat("*", len(t)-4) + t[len(t)-4:]
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
