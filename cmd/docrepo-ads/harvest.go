package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ivoa/docrepo-ads/internal/ads"
	"github.com/ivoa/docrepo-ads/internal/cache"
	"github.com/ivoa/docrepo-ads/internal/config"
	"github.com/ivoa/docrepo-ads/internal/dedup"
	"github.com/ivoa/docrepo-ads/internal/document"
	"github.com/ivoa/docrepo-ads/internal/harvest"
	"github.com/ivoa/docrepo-ads/internal/landing"
	"github.com/ivoa/docrepo-ads/internal/localmeta"
	"github.com/ivoa/docrepo-ads/internal/record"
)

var (
	harvestRepoURL   string
	harvestToken     string
	harvestUseCache  bool
	harvestSingleDoc string
	harvestSkipDedup bool
	harvestNotesFile string
	harvestArXivFile string
)

var harvestCmd = &cobra.Command{
	Use:   "harvest",
	Short: "Harvest the repository and write ADS tagged records",
	Long: `Harvest the document repository and write tagged records to stdout.

Scrapes the repository index for Recommendations and Endorsed Notes,
adds the Notes listed in the notes file, parses each landing page,
assigns bibcodes and eprint identifiers, and drops records that ADS
already knows about.

Deduplication needs an ADS access token (--ads-token, ADS_API_TOKEN, or
ads_token in the config file). Pass --skip-dedup to emit every record
without consulting ADS.`,
	RunE: runHarvest,
}

func init() {
	// Load .env file if present (for ADS_API_TOKEN)
	_ = godotenv.Load()

	harvestCmd.Flags().StringVar(&harvestRepoURL, "repo-url", "", "Document repository index URL (default from config)")
	harvestCmd.Flags().StringVar(&harvestToken, "ads-token", "", "ADS access token (default ADS_API_TOKEN or config)")
	harvestCmd.Flags().BoolVar(&harvestUseCache, "use-cache", false, "Cache fetched pages in a local database")
	harvestCmd.Flags().StringVar(&harvestSingleDoc, "single-doc", "", "Harvest a single landing page URL instead of the index")
	harvestCmd.Flags().BoolVar(&harvestSkipDedup, "skip-dedup", false, "Emit all records without checking ADS")
	harvestCmd.Flags().StringVar(&harvestNotesFile, "notes-file", config.DefaultNotesFile, "File listing landing URLs of Notes approved for submission")
	harvestCmd.Flags().StringVar(&harvestArXivFile, "arxiv-file", config.DefaultArXivFile, "File mapping document short names to arXiv ids")

	rootCmd.AddCommand(harvestCmd)
}

func runHarvest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	repoURL := harvestRepoURL
	if repoURL == "" {
		repoURL = config.GetRepoURL()
	}

	token := harvestToken
	if token == "" {
		token = config.GetADSToken()
	}
	if token == "" && !harvestSkipDedup {
		os.Exit(outputError(ExitConfigError,
			"an ADS token is required for deduplication; set ADS_API_TOKEN, use --ads-token, or pass --skip-dedup to emit records unchecked"))
	}

	// Auxiliary files are optional; a missing one just means we go without.
	var arxiv landing.ArXivLookup
	meta, err := localmeta.LoadArXivIDs(harvestArXivFile)
	switch {
	case err == nil:
		arxiv = meta
	case errors.Is(err, os.ErrNotExist):
		warnf("no arXiv id file at %s; records will lack arXiv links", harvestArXivFile)
	default:
		os.Exit(outputError(ExitDataError, "reading arXiv id file: %v", err))
	}

	var noteURLs []string
	if harvestSingleDoc == "" {
		noteURLs, err = localmeta.LoadPublishedNotes(harvestNotesFile)
		switch {
		case err == nil:
		case errors.Is(err, os.ErrNotExist):
			warnf("no notes file at %s; harvesting Recommendations and Endorsed Notes only", harvestNotesFile)
		default:
			os.Exit(outputError(ExitDataError, "reading notes file: %v", err))
		}
	}

	var fetchOpts []landing.FetcherOption
	if harvestUseCache {
		path := config.GetCachePath()
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			os.Exit(outputError(ExitConfigError, "creating cache directory: %v", err))
		}
		store, err := cache.Open(path)
		if err != nil {
			os.Exit(outputError(ExitConfigError, "opening page cache: %v", err))
		}
		defer store.Close()
		fetchOpts = append(fetchOpts, landing.WithCache(store))
	}
	fetcher := landing.NewFetcher(fetchOpts...)

	h := harvest.New(fetcher, arxiv, warnf)

	source := repoURL
	var docs []document.Document
	if harvestSingleDoc != "" {
		source = harvestSingleDoc
		docs, err = h.CollectSingle(ctx, harvestSingleDoc)
	} else {
		docs, err = h.Collect(ctx, repoURL, noteURLs)
	}
	if err != nil {
		os.Exit(outputError(ExitError, "harvesting %s: %v", source, err))
	}
	if len(docs) == 0 {
		os.Exit(outputError(ExitError, "no documents harvested from %s", source))
	}

	recs, err := harvest.Build(docs)
	if err != nil {
		os.Exit(outputError(ExitDataError, "assigning identifiers: %v", err))
	}

	var keys dedup.KeyFetcher
	if !harvestSkipDedup {
		keys = ads.NewClient(ads.WithToken(token))
	}
	total := len(recs)
	recs, err = harvest.Deduplicate(ctx, recs, keys)
	if err != nil {
		os.Exit(outputError(ExitError, "deduplicating against ADS: %v", err))
	}

	if len(recs) == 0 {
		warnf("all %d records already known to ADS; nothing to submit", total)
		return nil
	}

	fmt.Print(record.ToTaggedList(recs))
	return nil
}
