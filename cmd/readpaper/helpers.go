package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/kimlab/readpaper/internal/config"
	"github.com/kimlab/readpaper/internal/lookup"
	"github.com/kimlab/readpaper/internal/paper"
	"github.com/kimlab/readpaper/internal/reconcile"
	"github.com/kimlab/readpaper/internal/record"
	"github.com/kimlab/readpaper/internal/tags"
)

// mustLoadConfig loads the global config, exiting on parse failure.
func mustLoadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitConfigError)
	}
	return cfg
}

// openPaper builds a Paper wired to exiftool, the registry client and the
// conflict policy: force accepts every conflict, otherwise the operator is
// prompted.
func openPaper(path string, force bool) (*paper.Paper, error) {
	cfg := mustLoadConfig()

	var confirm reconcile.Confirmer = promptConfirmer{}
	if force {
		confirm = reconcile.AcceptNew
	}

	return paper.Open(path,
		paper.WithTagStore(tags.NewExifTool(cfg.ExifTool)),
		paper.WithLookup(lookup.NewClient(lookup.WithMailto(cfg.Email))),
		paper.WithConfirmer(confirm),
		paper.WithSQLiteCache(!cfg.DisableCache),
	)
}

// promptConfirmer resolves conflicts by asking the operator. Anything but
// an explicit yes keeps the old value.
type promptConfirmer struct{}

func (promptConfirmer) Confirm(field record.Field, oldValue, newValue any) bool {
	fmt.Printf("[%s] 1 -> 2\n[1] %v\n[2] %v\nChoose (Yes/No): ", field, oldValue, newValue)

	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	switch strings.TrimSpace(answer) {
	case "Yes", "yes", "Y", "y":
		return true
	}
	return false
}
