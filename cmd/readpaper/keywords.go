package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	keywordsSet     []string
	keywordsNoMerge bool
)

func init() {
	rootCmd.AddCommand(keywordsCmd)

	keywordsCmd.Flags().StringSliceVar(&keywordsSet, "set", nil, "Replace keywords with this list")
	keywordsCmd.Flags().BoolVar(&keywordsNoMerge, "no-merge", false, "Ignore existing keywords")
}

var keywordsCmd = &cobra.Command{
	Use:   "keywords <pdf>",
	Short: "Resolve the paper's keyword set",
	Args:  cobra.ExactArgs(1),
	RunE:  runKeywords,
}

func runKeywords(cmd *cobra.Command, args []string) error {
	p, err := openPaper(args[0], false)
	if err != nil {
		return err
	}

	var explicit []string
	if keywordsSet != nil {
		explicit = keywordsSet
	}

	kws, err := p.ResolveKeywords(explicit, !keywordsNoMerge)
	if err != nil {
		return err
	}

	fmt.Println(strings.Join(kws, ", "))
	return nil
}
