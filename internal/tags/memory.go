package tags

// Memory is an in-memory tag store for tests and dry runs.
type Memory struct {
	files map[string]Values
}

// NewMemory creates an empty in-memory tag store.
func NewMemory() *Memory {
	return &Memory{files: make(map[string]Values)}
}

// Seed pre-populates the tags for a path.
func (m *Memory) Seed(path string, vals Values) {
	copied := Values{}
	for k, v := range vals {
		copied[k] = v
	}
	m.files[path] = copied
}

// Read returns the stored tags for the path, empty when never written.
func (m *Memory) Read(path string) (Values, error) {
	vals, ok := m.files[path]
	if !ok {
		return Values{}, nil
	}
	out := Values{}
	for k, v := range vals {
		out[k] = v
	}
	return out, nil
}

// Write merges the given values over the stored tags.
func (m *Memory) Write(path string, vals Values) error {
	stored, ok := m.files[path]
	if !ok {
		stored = Values{}
		m.files[path] = stored
	}
	for k, v := range vals {
		stored[k] = v
	}
	return nil
}

// Rename moves stored tags to a new path, mirroring a file rename.
func (m *Memory) Rename(oldPath, newPath string) {
	if vals, ok := m.files[oldPath]; ok {
		delete(m.files, oldPath)
		m.files[newPath] = vals
	}
}
