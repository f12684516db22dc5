package paper

import (
	"context"
	"sort"

	"github.com/kimlab/readpaper/internal/author"
	"github.com/kimlab/readpaper/internal/lookup"
	"github.com/kimlab/readpaper/internal/pdftext"
	"github.com/kimlab/readpaper/internal/reconcile"
	"github.com/kimlab/readpaper/internal/record"
	"github.com/kimlab/readpaper/internal/similarity"
)

// ResolveDOI returns the paper's identifier, resolving it if necessary:
// the already-reconciled record first, then the text heuristics, then —
// only when confirmByTitle is set — a title search whose best candidate is
// accepted only above the similarity gate.
func (p *Paper) ResolveDOI(ctx context.Context, confirmByTitle bool) (record.Identifier, bool, error) {
	if id, ok := p.Identifier(); ok {
		return id, true, nil
	}

	lines, err := p.Lines(0)
	if err != nil {
		return record.Identifier{}, false, err
	}

	if raw := pdftext.FindDOI(lines); raw != "" {
		if id, ok := record.ParseIdentifier(raw); ok {
			if err := p.adoptIdentifier(id); err != nil {
				return record.Identifier{}, false, err
			}
			return id, true, nil
		}
	}

	if confirmByTitle && p.rec.Title != "" {
		res := p.client.ByTitle(ctx, p.rec.Title)
		if res.Success && res.Best.Similarity > similarity.TitleGate {
			// The gate is the confirmation: take the registry's title
			// and DOI as authoritative.
			reconcile.MergeField(p.rec, record.FieldTitle, res.Best.Title, reconcile.AcceptNew)
			reconcile.MergeField(p.rec, record.FieldDOI, record.NormalizeDOI(res.Best.DOI), reconcile.AcceptNew)
			id := record.Identifier{Kind: record.KindDOI, Value: p.rec.DOI}
			return id, true, nil
		}
	}

	return record.Identifier{}, false, nil
}

// adoptIdentifier merges a parsed identifier into the record (or, for
// arXiv ids, onto the paper itself).
func (p *Paper) adoptIdentifier(id record.Identifier) error {
	switch id.Kind {
	case record.KindDOI:
		_, err := reconcile.MergeField(p.rec, record.FieldDOI, record.NormalizeDOI(id.Value), p.confirm)
		return err
	case record.KindPMID:
		_, err := reconcile.MergeField(p.rec, record.FieldPMID, id.Value, p.confirm)
		return err
	case record.KindPMCID:
		_, err := reconcile.MergeField(p.rec, record.FieldPMCID, id.Value, p.confirm)
		return err
	case record.KindArXiv:
		p.ident = id
		p.hasIdent = true
	}
	return nil
}

// ResolveBibliography fills the record from the sidecar when present and
// allowed, otherwise from the remote registry, persisting a fresh remote
// result back to the sidecar. Returns false when no identifier is known
// or the registry has no record.
func (p *Paper) ResolveBibliography(ctx context.Context, useCache bool) (bool, error) {
	id, ok := p.Identifier()
	if !ok {
		return false, nil
	}

	if useCache {
		recs, err := p.readSidecar()
		if err != nil {
			return false, err
		}
		if len(recs) > 0 {
			if err := p.applyBibliography(&recs[0]); err != nil {
				return false, err
			}
			return true, nil
		}
	}

	found, remote, err := p.client.ByIdentifier(ctx, id)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}

	if err := p.applyBibliography(remote); err != nil {
		return false, err
	}
	if err := p.SaveBib(); err != nil {
		return true, err
	}
	return true, nil
}

// applyBibliography reconciles a bibliography record and refreshes the
// derived author1 field.
func (p *Paper) applyBibliography(src *record.Record) error {
	err := reconcile.ReconcileAll(p.rec, src, p.confirm)

	if p.rec.Author != "" {
		if fam := author.Name(p.rec.Author, author.Family); fam != "" {
			reconcile.MergeField(p.rec, record.FieldAuthor1, fam, p.confirm)
		}
	}
	return err
}

// ResolveKeywords resolves the keyword set. An explicit list wins
// outright; otherwise the text-heuristic keywords are combined with the
// existing set when mergeExisting is true. Tokens are cleaned, deduplicated
// and sorted.
func (p *Paper) ResolveKeywords(explicit []string, mergeExisting bool) ([]string, error) {
	var kws []string

	switch {
	case explicit != nil:
		kws = explicit
	default:
		if mergeExisting {
			kws = append(kws, p.rec.Keywords...)
		}
		lines, err := p.Lines(0)
		if err != nil {
			return nil, err
		}
		kws = append(kws, pdftext.FindKeywords(lines, nil, nil, nil)...)
	}

	seen := make(map[string]bool)
	var cleaned []string
	for _, k := range kws {
		k = pdftext.CleanText(k)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		cleaned = append(cleaned, k)
	}
	sort.Strings(cleaned)

	if _, err := reconcile.MergeField(p.rec, record.FieldKeywords, cleaned, p.confirm); err != nil {
		return nil, err
	}
	return p.rec.Keywords, nil
}

// ConvertIdentifier resolves a PMID/PMCID to the full identifier triple
// through the id converter and merges the results.
func (p *Paper) ConvertIdentifier(ctx context.Context, idString string) (bool, lookup.ConvertedID, error) {
	found, conv, err := p.client.ConvertID(ctx, idString)
	if err != nil || !found {
		return false, lookup.ConvertedID{}, err
	}

	if conv.DOI != "" {
		reconcile.MergeField(p.rec, record.FieldDOI, conv.DOI, p.confirm)
	}
	if conv.PMID != "" {
		reconcile.MergeField(p.rec, record.FieldPMID, conv.PMID, p.confirm)
	}
	if conv.PMCID != "" {
		reconcile.MergeField(p.rec, record.FieldPMCID, conv.PMCID, p.confirm)
	}
	return true, conv, nil
}
