package service

import (
	"errors"
	"fmt"
)

// Read-path failures. Resolve logs them and falls through to the next source;
// they only reach callers through [ConfigResolver.ResolveWith].
var (
	ErrRemoteUnavailable = errors.New("remote configuration unavailable")
	ErrCacheUnavailable  = errors.New("cached configuration unavailable")
)

// ErrIncompleteCredentials is wrapped by [RemoteWriteError] when the token,
// username or repo is missing.
var ErrIncompleteCredentials = errors.New("incomplete credentials")

// RemoteWriteError is returned by every failed remote write.
type RemoteWriteError struct {
	// Message is the host's reported message, or a generic description.
	Message string
	// StatusCode is the HTTP status of a rejected write, zero otherwise.
	StatusCode int
	Err        error
}

func (e *RemoteWriteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("remote write failed (http %d): %s", e.StatusCode, e.Message)
	}

	return "remote write failed: " + e.Message
}

func (e *RemoteWriteError) Unwrap() error {
	return e.Err
}
