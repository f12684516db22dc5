package main

import (
	"path/filepath"

	"github.com/kimlab/readpaper/internal/viewer"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(openCmd)
}

var openCmd = &cobra.Command{
	Use:   "open <pdf>",
	Short: "Open the PDF in the configured reader",
	Args:  cobra.ExactArgs(1),
	RunE:  runOpen,
}

func runOpen(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()

	path, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	return viewer.Open(path, cfg.PDFReader)
}
