// Package author parses formatted author lists into name parts.
package author

import "strings"

// Mode selects which part of the first author's name to return.
type Mode int

const (
	Family   Mode = iota // family name only
	Given                // given name only
	Combined             // "given, family"
)

// First splits a multi-author field on the literal " and " separator and
// returns the given and family name of the first author.
//
// "Smith, John and Doe, Jane" → ("John", "Smith")
// "John Smith and Jane Doe"   → ("John", "Smith")
func First(field string) (given, family string) {
	names := strings.Split(field, " and ")
	n1 := names[0]

	if idx := strings.Index(n1, ","); idx > -1 {
		family = strings.TrimSpace(n1[:idx])
		given = strings.TrimSpace(n1[idx+1:])
		return given, family
	}

	parts := strings.Split(n1, " ")
	family = strings.TrimSpace(parts[len(parts)-1])
	given = strings.TrimSpace(strings.Join(parts[:len(parts)-1], " "))
	return given, family
}

// Name returns the first author's name in the requested mode.
func Name(field string, mode Mode) string {
	given, family := First(field)
	switch mode {
	case Given:
		return given
	case Combined:
		return given + ", " + family
	default:
		return family
	}
}
