package record

import "testing"

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Identifier
		ok   bool
	}{
		{"doi prefix", "doi:10.1234/abcd", Identifier{KindDOI, "10.1234/abcd"}, true},
		{"doi prefix uppercase", "DOI:10.1234/abcd", Identifier{KindDOI, "10.1234/abcd"}, true},
		{"bare doi", "10.1234/abcd", Identifier{KindDOI, "10.1234/abcd"}, true},
		{"pmid", "pmid:12345678", Identifier{KindPMID, "12345678"}, true},
		{"pmcid", "pmcid:PMC1234567", Identifier{KindPMCID, "PMC1234567"}, true},
		{"arxiv mixed case", "arXiv:1234.5678", Identifier{KindArXiv, "1234.5678"}, true},
		{"whitespace", "  doi: 10.1/x ", Identifier{KindDOI, "10.1/x"}, true},
		{"unrecognized", "isbn:978-3", Identifier{}, false},
		{"empty", "", Identifier{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseIdentifier(tt.raw)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseIdentifier(%q) = (%v, %v), want (%v, %v)",
					tt.raw, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestTagged(t *testing.T) {
	tests := []struct {
		name string
		id   Identifier
		want string
	}{
		{"doi", Identifier{KindDOI, "10.1234/abcd"}, "doi:10.1234/abcd"},
		{"pmid", Identifier{KindPMID, "12345678"}, "pmid:12345678"},
		{"pmcid", Identifier{KindPMCID, "PMC42"}, "pmcid:PMC42"},
		{"arxiv keeps conventional casing", Identifier{KindArXiv, "1234.5678"}, "arXiv:1234.5678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.Tagged(); got != tt.want {
				t.Errorf("Tagged() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseIdentifierTaggedRoundTrip(t *testing.T) {
	for _, tagged := range []string{"doi:10.1/x", "pmid:1", "pmcid:PMC1", "arXiv:2101.00001"} {
		id, ok := ParseIdentifier(tagged)
		if !ok {
			t.Fatalf("ParseIdentifier(%q) failed", tagged)
		}
		if got := id.Tagged(); got != tagged {
			t.Errorf("round trip %q -> %q", tagged, got)
		}
	}
}

func TestNormalizeDOI(t *testing.T) {
	tests := []struct {
		name string
		doi  string
		want string
	}{
		{"bare", "10.1234/ABCD", "10.1234/abcd"},
		{"scheme prefix", "doi:10.1234/abcd", "10.1234/abcd"},
		{"https resolver", "https://doi.org/10.1234/abcd", "10.1234/abcd"},
		{"http resolver", "http://doi.org/10.1234/abcd", "10.1234/abcd"},
		{"bare resolver", "doi.org/10.1234/abcd", "10.1234/abcd"},
		{"whitespace", "  10.1/X  ", "10.1/x"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDOI(tt.doi); got != tt.want {
				t.Errorf("NormalizeDOI(%q) = %q, want %q", tt.doi, got, tt.want)
			}
		})
	}
}
