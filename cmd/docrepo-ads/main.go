// Package main provides the docrepo-ads CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		// This ensures Cobra errors (like missing required flags) are visible
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "docrepo-ads",
	Short: "Harvest IVOA document repository records for ADS",
	Long: `docrepo-ads harvests the IVOA document repository and emits
bibliographic records in the ADS tagged format.

Core features:
  - Scrapes the repository index and per-document landing pages
  - Generates deterministic bibcodes and IVOA eprint identifiers
  - Deduplicates against records already known to ADS
  - Writes ADS tagged records to stdout, ready for submission`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
}
