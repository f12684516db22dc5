package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <pdf> <text>",
	Short: "Search the paper's text",
	Args:  cobra.ExactArgs(2),
	RunE:  runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	p, err := openPaper(args[0], false)
	if err != nil {
		return err
	}

	matches, err := p.SearchText(args[1])
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Fprintln(os.Stderr, "no matches")
		os.Exit(ExitNotFound)
	}

	for _, m := range matches {
		fmt.Printf("[%d] %s\n", m.Line, m.Text)
	}
	return nil
}
