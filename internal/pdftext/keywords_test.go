package pdftext

import (
	"reflect"
	"testing"
)

func TestFindKeywords(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "comma separated with end marker",
			lines: []string{"Keywords: alpha, beta, gamma. PACS"},
			want:  []string{"alpha", "beta", "gamma"},
		},
		{
			name:  "semicolon separated",
			lines: []string{"Introduction", "Keywords: ion channels; membranes; transport"},
			want:  []string{"ion channels", "membranes", "transport"},
		},
		{
			name:  "no marker line",
			lines: []string{"Abstract", "This paper discusses things."},
			want:  nil,
		},
		{
			name:  "duplicates removed",
			lines: []string{"Keywords: alpha, alpha, beta"},
			want:  []string{"alpha", "beta"},
		},
		{
			name:  "first marker line wins",
			lines: []string{"Keywords: one, two", "Keywords: three, four"},
			want:  []string{"one", "two"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindKeywords(tt.lines, nil, nil, nil)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindKeywords(%v) = %v, want %v", tt.lines, got, tt.want)
			}
		})
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"plain", "Hello World", "Hello World"},
		{"strips disallowed", "a*b&c%d", "abcd"},
		{"keeps allowlist", "x_y-z /.,():{}", "x_y-z /.,():{}"},
		{"non-string coerced unfiltered", 42, "42"},
		{"unicode stripped", "naïve café", "nave caf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.input); got != tt.want {
				t.Errorf("CleanText(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
