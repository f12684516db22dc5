// Package tags is the boundary to the PDF's embedded metadata block.
package tags

// Tag names the fixed tag vocabulary of the store.
const (
	TagAuthor      = "Author"
	TagDOI         = "DOI"
	TagTitle       = "Title"
	TagDescription = "Description"
	TagKeywords    = "Keywords"
	TagPublisher   = "Publisher"
	TagURL         = "URL"
	TagSubject     = "Subject"
	TagPageCounts  = "PageCounts"
)

// TagNames lists the vocabulary in read order.
var TagNames = []string{
	TagAuthor, TagDOI, TagTitle, TagDescription, TagKeywords,
	TagPublisher, TagURL, TagSubject, TagPageCounts,
}

// Values maps tag names to their values: string or []string.
// Absent tags are simply missing from the map.
type Values map[string]any

// Store reads and writes a file's tag block.
type Store interface {
	Read(path string) (Values, error)
	Write(path string, vals Values) error
}

// GetString returns a tag's string value, "" when absent or list-typed.
func (v Values) GetString(name string) string {
	s, _ := v[name].(string)
	return s
}

// GetList returns a tag's list value. A scalar string becomes a
// one-element list.
func (v Values) GetList(name string) []string {
	switch x := v[name].(type) {
	case []string:
		return x
	case string:
		if x == "" {
			return nil
		}
		return []string{x}
	}
	return nil
}
