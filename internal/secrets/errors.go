package secrets

import "errors"

var (
	// ErrSecretNotFound is returned when the secret or its latest version
	// does not exist.
	ErrSecretNotFound = errors.New("secret not found")

	// ErrSecretPermissionDenied is returned when the caller's identity may
	// not access the secret.
	ErrSecretPermissionDenied = errors.New("secret access denied")

	// ErrEmptySecret is returned when the secret payload is blank.
	ErrEmptySecret = errors.New("secret payload is empty")
)
