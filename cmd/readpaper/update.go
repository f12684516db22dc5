package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	updateForce   bool
	updateByTitle bool
)

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().BoolVarP(&updateForce, "force", "f", false, "Resolve all conflicts in favor of new values")
	updateCmd.Flags().BoolVar(&updateByTitle, "by-title", false, "Fall back to a Crossref title search for the DOI")
}

var updateCmd = &cobra.Command{
	Use:   "update <pdf>",
	Short: "Resolve everything and write it back",
	Long: `Run the full pipeline: resolve the identifier, the bibliography
record and the keywords, push the result into the PDF's tags, and rename
the file to convention.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	p, err := openPaper(args[0], updateForce)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	id, found, err := p.ResolveDOI(ctx, updateByTitle)
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintln(os.Stderr, "no identifier found; try --by-title or set one in the tags")
		os.Exit(ExitNotFound)
	}
	progress("identifier: %s", id.Tagged())

	if found, err := p.ResolveBibliography(ctx, true); err != nil {
		return err
	} else if found {
		progress("bibliography resolved")
	}

	if _, err := p.ResolveKeywords(nil, true); err != nil {
		return err
	}

	if err := p.SaveBib(); err != nil {
		return err
	}
	if err := p.PushToTags(updateForce); err != nil {
		// Tags and record may now diverge; report and carry on.
		fmt.Fprintf(os.Stderr, "warning: writing tags: %s\n", err)
	}

	oldName := p.Name()
	newName, err := p.RenameToConvention()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s\n", err)
		return nil
	}
	if newName != oldName {
		fmt.Printf("%s -> %s\n", oldName, newName)
	}
	return nil
}
