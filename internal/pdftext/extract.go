package pdftext

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// CachePath returns the hidden text-cache path for a PDF: same directory,
// same stem, leading dot, .txt extension.
func CachePath(pdfPath string) string {
	dir := filepath.Dir(pdfPath)
	stem := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	return filepath.Join(dir, "."+stem+".txt")
}

// Lines returns the text lines of a PDF, at most maxPages pages
// (0 = all pages). The extracted text is cached next to the PDF; the cache
// is reused unless refresh is set.
func Lines(pdfPath string, maxPages int, refresh bool) ([]string, error) {
	cachePath := CachePath(pdfPath)

	if !refresh {
		if data, err := os.ReadFile(cachePath); err == nil {
			return splitLines(string(data)), nil
		}
	}

	text, err := extractText(pdfPath, maxPages)
	if err != nil {
		return nil, err
	}

	// Best effort: extraction still succeeds if the cache can't be written.
	_ = os.WriteFile(cachePath, []byte(text), 0644)

	return splitLines(text), nil
}

// PageCount returns the number of pages in a PDF.
func PageCount(pdfPath string) (int, error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return 0, fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()
	return r.NumPage(), nil
}

// extractText pulls plain text from the first maxPages pages.
func extractText(pdfPath string, maxPages int) (string, error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	if maxPages <= 0 || maxPages > r.NumPage() {
		maxPages = r.NumPage()
	}

	var b strings.Builder
	for i := 1; i <= maxPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	return b.String(), nil
}

func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		lines = append(lines, strings.TrimRight(l, "\r"))
	}
	return lines
}
