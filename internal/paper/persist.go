package paper

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kimlab/readpaper/internal/bib"
	"github.com/kimlab/readpaper/internal/cache"
	"github.com/kimlab/readpaper/internal/reconcile"
	"github.com/kimlab/readpaper/internal/record"
	"github.com/kimlab/readpaper/internal/tags"
)

// readSidecar loads the sidecar records, going through the tabular fast
// path when enabled. Cache trouble falls back to the authoritative file.
func (p *Paper) readSidecar() ([]record.Record, error) {
	if p.useCache {
		if recs, err := p.readCached(); err == nil {
			return recs, nil
		}
	}
	return bib.Read(p.BibPath())
}

func (p *Paper) readCached() ([]record.Record, error) {
	c, err := cache.Open(p.CacheDBPath())
	if err != nil {
		return nil, err
	}
	defer c.Close()

	if err := c.Sync(p.BibPath()); err != nil {
		return nil, err
	}
	return c.Records()
}

// SaveBib writes the current record to the sidecar and invalidates the
// tabular mirror. The record is not durable until this succeeds.
func (p *Paper) SaveBib() error {
	p.rec.LocalURL = p.name

	if err := bib.Write(p.BibPath(), []record.Record{*p.rec}); err != nil {
		return err
	}

	if p.useCache {
		if c, err := cache.Open(p.CacheDBPath()); err == nil {
			c.Invalidate()
			c.Close()
		}
	}
	return nil
}

// PushToTags writes the record back into the tag store. The store's
// current values are just another conflicting source: each field goes
// through the reconciler's policy, with force accepting every conflict.
func (p *Paper) PushToTags(force bool) error {
	if p.tagStore == nil {
		return fmt.Errorf("no tag store configured")
	}

	confirm := p.confirm
	if force {
		confirm = reconcile.AcceptNew
	}

	current := tags.Values{}
	if vals, err := p.tagStore.Read(p.Path()); err == nil {
		current = vals
	}

	// Seed a record from the store's view, merge ours over it, and write
	// the resolved values back.
	merged := &record.Record{
		Author:    current.GetString(tags.TagAuthor),
		Title:     current.GetString(tags.TagTitle),
		Abstract:  current.GetString(tags.TagDescription),
		Publisher: current.GetString(tags.TagPublisher),
		URL:       current.GetString(tags.TagURL),
		Keywords:  current.GetList(tags.TagKeywords),
	}
	if raw := current.GetString(tags.TagDOI); raw != "" {
		if id, ok := record.ParseIdentifier(raw); ok && id.Kind == record.KindDOI {
			merged.DOI = record.NormalizeDOI(id.Value)
		}
	}

	if err := reconcile.ReconcileAll(merged, p.rec, confirm); err != nil {
		return err
	}

	out := tags.Values{}
	setIf := func(name, val string) {
		if val != "" {
			out[name] = val
		}
	}
	setIf(tags.TagAuthor, merged.Author)
	setIf(tags.TagTitle, merged.Title)
	setIf(tags.TagDescription, merged.Abstract)
	setIf(tags.TagPublisher, merged.Publisher)
	setIf(tags.TagURL, merged.URL)
	setIf(tags.TagSubject, p.Subject())
	if len(merged.Keywords) > 0 {
		out[tags.TagKeywords] = merged.Keywords
	}
	if id, ok := p.Identifier(); ok {
		out[tags.TagDOI] = id.Tagged()
	}

	return p.tagStore.Write(p.Path(), out)
}

// Subject returns the synthesized Subject tag: "journal, (year), doi: d".
func (p *Paper) Subject() string {
	if p.rec.Journal == "" && p.rec.Year == 0 && p.rec.DOI == "" {
		return ""
	}
	return fmt.Sprintf("%s, (%d), doi: %s", p.rec.Journal, p.rec.Year, p.rec.DOI)
}

// ConventionName computes the canonical YEAR-AUTHOR-JOURNAL.pdf filename
// from the current record. Spaces and hyphens inside the author and
// journal tokens become underscores so they parse back out at load time.
func (p *Paper) ConventionName() (string, error) {
	if p.rec.Year == 0 || p.rec.Author1 == "" || p.rec.Journal == "" {
		return "", fmt.Errorf("metadata incomplete: need year, author and journal (resolve bibliography first)")
	}

	authorTok := strings.NewReplacer("-", "_", " ", "_").Replace(p.rec.Author1)
	journalTok := strings.ReplaceAll(p.rec.Journal, " ", "_")
	return fmt.Sprintf("%d-%s-%s.pdf", p.rec.Year, authorTok, journalTok), nil
}

// RenameToConvention renames the PDF to the canonical convention,
// confirmation-guarded, moving both sidecars and the tabular mirror with
// it. A filename already on convention is a no-op. Returns the resulting
// filename.
func (p *Paper) RenameToConvention() (string, error) {
	newName, err := p.ConventionName()
	if err != nil {
		return p.name, err
	}
	if newName == p.name {
		return p.name, nil
	}

	if !p.confirm.Confirm(record.FieldLocalURL, p.name, newName) {
		return p.name, nil
	}

	oldBib, oldTxt, oldDB := p.BibPath(), p.TextPath(), p.CacheDBPath()
	oldPath := p.Path()

	newPath := filepath.Join(p.dir, newName)
	if err := os.Rename(oldPath, newPath); err != nil {
		return p.name, fmt.Errorf("renaming pdf: %w", err)
	}

	p.name = newName
	p.rec.LocalURL = newName

	// Sidecars are part of the paper's identity; move them best-effort.
	renameIfExists(oldBib, p.BibPath())
	renameIfExists(oldTxt, p.TextPath())
	renameIfExists(oldDB, p.CacheDBPath())

	return p.name, nil
}

func renameIfExists(oldPath, newPath string) {
	if _, err := os.Stat(oldPath); err == nil {
		_ = os.Rename(oldPath, newPath)
	}
}

// Summary formats the record for display.
func (p *Paper) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "- Filename: %s\n", p.name)
	fmt.Fprintf(&b, "- Title: %s\n", p.rec.Title)
	fmt.Fprintf(&b, "- Author: %s\n", p.rec.Author)
	fmt.Fprintf(&b, "- Year: %d\n", p.rec.Year)
	if id, ok := p.Identifier(); ok {
		fmt.Fprintf(&b, "- DOI: %s\n", id.Tagged())
	} else {
		fmt.Fprintf(&b, "- DOI: \n")
	}
	fmt.Fprintf(&b, "- Journal: %s\n", p.rec.Journal)
	fmt.Fprintf(&b, "- Keywords: %s\n", strings.Join(p.rec.Keywords, ", "))
	fmt.Fprintf(&b, "- Subject: %s\n", p.Subject())
	fmt.Fprintf(&b, "- Abstract: %s\n", p.rec.Abstract)
	return b.String()
}
