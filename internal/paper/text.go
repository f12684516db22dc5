package paper

import (
	"strings"

	"github.com/kimlab/readpaper/internal/pdftext"
)

// Lines returns the extracted text lines of the PDF, at most maxPages
// pages (0 = all). Lines are computed lazily and kept until a different
// page limit is requested, which forces re-extraction.
func (p *Paper) Lines(maxPages int) ([]string, error) {
	if p.lines != nil && p.linesPages == maxPages {
		return p.lines, nil
	}

	refresh := p.lines != nil
	lines, err := pdftext.Lines(p.Path(), maxPages, refresh)
	if err != nil {
		return nil, err
	}

	p.lines = lines
	p.linesPages = maxPages
	return lines, nil
}

// Contents returns the text lines with short lines dropped and, when clean
// is set, punctuation noise removed. minLen <= 0 defaults to 10.
func (p *Paper) Contents(maxPages, minLen int, clean bool) ([]string, error) {
	if minLen <= 0 {
		minLen = 10
	}

	lines, err := p.Lines(maxPages)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, t := range lines {
		if len(t) < minLen {
			continue
		}
		if clean {
			t = strings.Map(func(r rune) rune {
				if strings.ContainsRune(`()\.,?!@#$%^&`, r) {
					return -1
				}
				return r
			}, t)
		}
		out = append(out, t)
	}
	return out, nil
}

// Head returns the first n content lines.
func (p *Paper) Head(n int) ([]string, error) {
	lines, err := p.Contents(0, 0, false)
	if err != nil {
		return nil, err
	}
	if n < len(lines) {
		lines = lines[:n]
	}
	return lines, nil
}

// TextMatch is one line matching a text search.
type TextMatch struct {
	Line int    `json:"line"`
	Text string `json:"text"`
}

// SearchText returns every content line containing the substring,
// case-insensitively.
func (p *Paper) SearchText(substr string) ([]TextMatch, error) {
	lines, err := p.Contents(0, 0, false)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(substr)
	var matches []TextMatch
	for i, t := range lines {
		if strings.Contains(strings.ToLower(t), needle) {
			matches = append(matches, TextMatch{Line: i, Text: t})
		}
	}
	return matches, nil
}
