// Package main provides the readpaper CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var verbose bool

func main() {
	// Pick up READPAPER_EMAIL and friends from a local .env if present.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "readpaper",
	Short: "Curate bibliographic metadata for academic PDFs",
	Long: `readpaper extracts bibliographic metadata from academic PDF files,
cross-references it against Crossref, arXiv and the NCBI id converter,
reconciles conflicts, and writes the result back into the PDF's tags.

Files are renamed to the YEAR-AUTHOR-JOURNAL.pdf convention; each PDF
carries a hidden .bib sidecar with its resolved record.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Write progress to stderr")
	rootCmd.Version = Version
}

// progress prints a status line when --verbose is set.
func progress(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "... "+format+"\n", args...)
	}
}
