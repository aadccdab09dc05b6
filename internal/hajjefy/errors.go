package hajjefy

import (
	"errors"
	"fmt"
)

// AuthError signals a rejected or under-privileged token (HTTP 401/403).
// Never retried; the message is surfaced to the caller verbatim.
type AuthError struct {
	Status  int
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// APIError preserves any other non-2xx response, including the status code,
// so callers can tell a missing optional integration apart from a hard
// failure and degrade instead of failing.
type APIError struct {
	Status int
	URL    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hajjefy api: unexpected status %d for %s", e.Status, e.URL)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == 404
}

// IsUnavailable reports whether err indicates an absent or broken optional
// integration (404 or 500).
func IsUnavailable(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && (apiErr.Status == 404 || apiErr.Status == 500)
}
