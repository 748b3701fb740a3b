package dialfire

import (
	"errors"
	"fmt"
	"net/http"
)

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrInvalidDateTime     = errors.New("invalid dialfire datetime")
	ErrResponseNotPageable = errors.New("response is not bound to a request")
)

// APIError represents a completed HTTP exchange with a non-success status.
// The vendor's error body is carried verbatim and never classified further.
type APIError struct {
	StatusCode int
	Body       []byte
	URL        string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("dialfire API: status %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}

	return false
}
