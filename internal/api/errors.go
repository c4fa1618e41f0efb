package api

import "errors"

// Classified transport failures. Callers match with errors.Is; the user-visible
// notification has already been shown by the client when these are returned.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrServer       = errors.New("server error")
	ErrUnavailable  = errors.New("server unavailable")
)

// APIError is an application-level failure: the transport call succeeded but
// the response envelope carried a non-success code.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return "request failed"
	}
	return e.Message
}
