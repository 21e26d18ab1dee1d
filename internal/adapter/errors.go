package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("sha conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrRateLimited         = errors.New("rate limited")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrInvalidPayload is returned when a 2xx body cannot be decoded.
	ErrInvalidPayload = errors.New("invalid response payload")
	// ErrMissingToken is returned by write calls made without a token.
	ErrMissingToken = errors.New("missing API token")
)

// HTTPError is a non-2xx response from the remote host.
type HTTPError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Message is the host's "message" field, or the trimmed body when the
	// body is not a JSON error document.
	Message string
	// Err is the sentinel matching StatusCode.
	Err error
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%v (http %d)", e.Err, e.StatusCode)
	}

	return fmt.Sprintf("%v (http %d): %s", e.Err, e.StatusCode, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}
