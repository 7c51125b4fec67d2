package integrations

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single API request.
const DefaultTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when the API answers 404.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, unexpected status).
	ErrNetwork = errors.New("network error")
)

// StatusError reports a response whose status code was not 200.
// It unwraps to [ErrNotFound] for 404 and to [ErrNetwork] otherwise.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *StatusError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return ErrNetwork
}

// NewHTTPClient creates an HTTP client with the given timeout.
// A non-positive timeout selects [DefaultTimeout].
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}
