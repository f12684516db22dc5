package main

import (
	"fmt"
	"os"

	"github.com/kimlab/readpaper/internal/bib"
	"github.com/spf13/cobra"
)

var bibNoCache bool

func init() {
	rootCmd.AddCommand(bibCmd)

	bibCmd.Flags().BoolVar(&bibNoCache, "no-cache", false, "Ignore the sidecar and query the registry")
}

var bibCmd = &cobra.Command{
	Use:   "bib <pdf>",
	Short: "Resolve the paper's bibliography record",
	Long: `Resolve the full bibliography record for the paper's identifier.
The sidecar .bib file is used when present; otherwise the remote registry
is queried and the result persisted to the sidecar.`,
	Args: cobra.ExactArgs(1),
	RunE: runBib,
}

func runBib(cmd *cobra.Command, args []string) error {
	p, err := openPaper(args[0], false)
	if err != nil {
		return err
	}

	if _, found, err := p.ResolveDOI(cmd.Context(), false); err != nil {
		return err
	} else if !found {
		fmt.Fprintln(os.Stderr, "no identifier found; run 'readpaper doi' first")
		os.Exit(ExitNotFound)
	}

	found, err := p.ResolveBibliography(cmd.Context(), !bibNoCache)
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintln(os.Stderr, "no bibliography record found")
		os.Exit(ExitNotFound)
	}

	fmt.Print(bib.Format(*p.Record()))
	return nil
}
