// Package paper binds one PDF file to its reconciled bibliographic record
// and drives resolution, persistence and the rename-on-convention workflow.
package paper

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kimlab/readpaper/internal/lookup"
	"github.com/kimlab/readpaper/internal/pdftext"
	"github.com/kimlab/readpaper/internal/reconcile"
	"github.com/kimlab/readpaper/internal/record"
	"github.com/kimlab/readpaper/internal/tags"
)

// Paper is the aggregate root for one PDF file. It owns the merged
// record; the sidecar bib file and the hidden text cache derive from the
// PDF's filename and move with it on rename.
type Paper struct {
	dir  string
	name string

	rec      *record.Record
	ident    record.Identifier
	hasIdent bool
	pages    int

	confirm  reconcile.Confirmer
	tagStore tags.Store
	client   *lookup.Client
	useCache bool

	lines      []string
	linesPages int
}

// Option configures a Paper at construction.
type Option func(*Paper)

// WithTagStore sets the tag store boundary (nil disables tag I/O).
func WithTagStore(s tags.Store) Option {
	return func(p *Paper) { p.tagStore = s }
}

// WithLookup sets the remote registry client.
func WithLookup(c *lookup.Client) Option {
	return func(p *Paper) { p.client = c }
}

// WithConfirmer sets the conflict-confirmation policy. The default keeps
// existing values on conflict.
func WithConfirmer(c reconcile.Confirmer) Option {
	return func(p *Paper) { p.confirm = c }
}

// WithSQLiteCache toggles the tabular fast path over the sidecar.
func WithSQLiteCache(enabled bool) Option {
	return func(p *Paper) { p.useCache = enabled }
}

// Open constructs a Paper from a PDF path. Filename-derived defaults are
// seeded first, then tag values and any existing sidecar record are
// reconciled on top. Tag read failures are non-fatal; the record simply
// starts from fewer sources.
func Open(path string, opts ...Option) (*Paper, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	p := &Paper{
		dir:        filepath.Dir(abs),
		name:       filepath.Base(abs),
		confirm:    reconcile.KeepOld,
		useCache:   true,
		linesPages: -1,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.client == nil {
		p.client = lookup.NewClient()
	}

	p.rec = recordFromFilename(p.name)
	p.rec.LocalURL = p.name

	if p.tagStore != nil {
		if vals, err := p.tagStore.Read(p.Path()); err == nil {
			p.applyTags(vals)
		}
	}

	if err := p.loadSidecar(); err != nil {
		return nil, err
	}

	return p, nil
}

// Path returns the absolute path of the PDF.
func (p *Paper) Path() string { return filepath.Join(p.dir, p.name) }

// Name returns the current filename.
func (p *Paper) Name() string { return p.name }

// BibPath returns the sidecar bibliography path: same stem, leading dot,
// .bib extension.
func (p *Paper) BibPath() string {
	return filepath.Join(p.dir, "."+p.stem()+".bib")
}

// TextPath returns the hidden extracted-text cache path.
func (p *Paper) TextPath() string {
	return pdftext.CachePath(p.Path())
}

// CacheDBPath returns the tabular cache path beside the sidecar.
func (p *Paper) CacheDBPath() string {
	return filepath.Join(p.dir, "."+p.stem()+".db")
}

// Record returns the current merged record.
func (p *Paper) Record() *record.Record { return p.rec }

// Pages returns the page count reported by the tag store (0 if unknown).
func (p *Paper) Pages() int { return p.pages }

// GetField returns a record field value.
func (p *Paper) GetField(f record.Field) any { return p.rec.Get(f) }

// SetField merges a value into a record field through the reconciler's
// field-update contract.
func (p *Paper) SetField(f record.Field, v any) (any, error) {
	return reconcile.MergeField(p.rec, f, v, p.confirm)
}

// Identifier returns the paper's primary identifier: the DOI when known,
// otherwise a previously resolved arXiv id.
func (p *Paper) Identifier() (record.Identifier, bool) {
	if p.rec.DOI != "" {
		return record.Identifier{Kind: record.KindDOI, Value: p.rec.DOI}, true
	}
	if p.hasIdent {
		return p.ident, true
	}
	return record.Identifier{}, false
}

func (p *Paper) stem() string {
	return strings.TrimSuffix(p.name, filepath.Ext(p.name))
}

// recordFromFilename derives defaults from the YEAR-AUTHOR-JOURNAL.pdf
// convention. Underscores in the author token read back as hyphens and in
// the journal token as spaces; a filename off convention yields an empty
// record.
func recordFromFilename(name string) *record.Record {
	rec := &record.Record{}

	stem := strings.TrimSuffix(name, filepath.Ext(name))
	parts := strings.Split(stem, "-")
	if len(parts) < 3 {
		return rec
	}

	if y, err := strconv.Atoi(parts[0]); err == nil && y > 0 {
		rec.Year = y
	}
	rec.Author1 = strings.ReplaceAll(parts[1], "_", "-")
	rec.Journal = strings.ReplaceAll(strings.Join(parts[2:], ""), "_", " ")
	return rec
}

// applyTags reconciles tag-store values into the record. The DOI tag's
// prefixed form is translated to the internal representation here, at the
// boundary, and nowhere else.
func (p *Paper) applyTags(vals tags.Values) {
	src := &record.Record{
		Author:    vals.GetString(tags.TagAuthor),
		Title:     vals.GetString(tags.TagTitle),
		Abstract:  vals.GetString(tags.TagDescription),
		Publisher: vals.GetString(tags.TagPublisher),
		URL:       vals.GetString(tags.TagURL),
		Keywords:  vals.GetList(tags.TagKeywords),
	}

	if raw := vals.GetString(tags.TagDOI); raw != "" {
		if id, ok := record.ParseIdentifier(raw); ok {
			switch id.Kind {
			case record.KindDOI:
				src.DOI = record.NormalizeDOI(id.Value)
			case record.KindPMID:
				src.PMID = id.Value
			case record.KindPMCID:
				src.PMCID = id.Value
			case record.KindArXiv:
				p.ident = id
				p.hasIdent = true
			}
		}
	}

	if pc := vals.GetString(tags.TagPageCounts); pc != "" {
		if n, err := strconv.Atoi(strings.Fields(pc)[0]); err == nil {
			p.pages = n
		}
	}

	reconcile.ReconcileAll(p.rec, src, p.confirm)
}

// loadSidecar reconciles an existing sidecar record into the record.
func (p *Paper) loadSidecar() error {
	recs, err := p.readSidecar()
	if err != nil || len(recs) == 0 {
		return err
	}
	return reconcile.ReconcileAll(p.rec, &recs[0], p.confirm)
}
