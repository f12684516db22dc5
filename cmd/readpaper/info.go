package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info <pdf>",
	Short: "Show the paper's current metadata",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	p, err := openPaper(args[0], false)
	if err != nil {
		return err
	}

	fmt.Print(p.Summary())
	return nil
}
