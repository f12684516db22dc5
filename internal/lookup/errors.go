package lookup

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the registry has no record for the identifier.
var ErrNotFound = errors.New("record not found")

// APIError represents a non-2xx response from a registry.
type APIError struct {
	StatusCode int
	Endpoint   string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Endpoint, e.StatusCode, e.Message)
}

// IsNotFound reports whether err means the record does not exist.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}
