package hsds

import (
	"errors"
	"fmt"
)

// Sentinel error categories for HSDS responses. Use errors.Is to test
// the category of an error returned by any client operation:
//
//	_, err := client.Domains.Get(ctx, "/home/user/missing.h5")
//	if errors.Is(err, hsds.ErrNotFound) { ... }
var (
	// ErrAuth indicates the server rejected the request credentials (401).
	ErrAuth = errors.New("authentication failed")

	// ErrPermissionDenied indicates the credentials lack access (403).
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotFound indicates the domain or object does not exist (404).
	ErrNotFound = errors.New("not found")

	// ErrInvalidParameter indicates a malformed request (400), or a
	// client-side parameter the library rejected before sending.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// APIError is the typed error returned for any non-2xx HSDS response.
// StatusCode is the HTTP status, Message the text parsed from the
// server's JSON error body (or "HTTP <status>" when unparsable).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hsds: API error (%d): %s", e.StatusCode, e.Message)
}

// Unwrap maps the status code onto a sentinel category so APIError
// values participate in errors.Is.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case 400:
		return ErrInvalidParameter
	case 401:
		return ErrAuth
	case 403:
		return ErrPermissionDenied
	case 404:
		return ErrNotFound
	default:
		return nil
	}
}

func invalidParamf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}
