package models

import "errors"

var (
	// ErrDocumentNotObject is returned when a configuration payload is valid
	// JSON but not an object (for example `null` or a bare string).
	ErrDocumentNotObject = errors.New("configuration document is not a JSON object")
)
