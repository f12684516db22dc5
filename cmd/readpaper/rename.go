package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renameForce bool

func init() {
	rootCmd.AddCommand(renameCmd)

	renameCmd.Flags().BoolVarP(&renameForce, "force", "f", false, "Rename without asking")
}

var renameCmd = &cobra.Command{
	Use:   "rename <pdf>",
	Short: "Rename the PDF to the YEAR-AUTHOR-JOURNAL.pdf convention",
	Long: `Rename the PDF to its canonical YEAR-AUTHOR-JOURNAL.pdf name,
moving the .bib sidecar and text cache with it. A file already on
convention is left alone.`,
	Args: cobra.ExactArgs(1),
	RunE: runRename,
}

func runRename(cmd *cobra.Command, args []string) error {
	p, err := openPaper(args[0], renameForce)
	if err != nil {
		return err
	}

	oldName := p.Name()
	newName, err := p.RenameToConvention()
	if err != nil {
		return err
	}

	if newName == oldName {
		progress("already on convention: %s", oldName)
	} else {
		fmt.Printf("%s -> %s\n", oldName, newName)
	}
	return nil
}
