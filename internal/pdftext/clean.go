package pdftext

import (
	"fmt"
	"strings"
)

// permitted non-alphanumeric characters in cleaned bibliographic strings
const specialChars = "_- /.,():{}"

// CleanText retains only ASCII letters, digits and a small punctuation
// allowlist. Non-string input is formatted to its string form unfiltered.
func CleanText(v any) string {
	s, ok := v.(string)
	if !ok {
		return fmt.Sprint(v)
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteRune(c)
		case strings.ContainsRune(specialChars, c):
			b.WriteRune(c)
		}
	}
	return b.String()
}
