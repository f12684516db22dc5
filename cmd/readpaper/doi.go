package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var doiByTitle bool

func init() {
	rootCmd.AddCommand(doiCmd)

	doiCmd.Flags().BoolVar(&doiByTitle, "by-title", false, "Fall back to a Crossref title search")
}

var doiCmd = &cobra.Command{
	Use:   "doi <pdf>",
	Short: "Resolve the paper's DOI or arXiv identifier",
	Long: `Resolve the paper's identifier from its tags, its body text, or
(with --by-title) a Crossref title search. A title-search candidate is
accepted only when its similarity to the known title exceeds 0.9.`,
	Args: cobra.ExactArgs(1),
	RunE: runDOI,
}

func runDOI(cmd *cobra.Command, args []string) error {
	p, err := openPaper(args[0], false)
	if err != nil {
		return err
	}

	id, found, err := p.ResolveDOI(cmd.Context(), doiByTitle)
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintln(os.Stderr, "no identifier found")
		os.Exit(ExitNotFound)
	}

	fmt.Println(id.Tagged())
	return nil
}
