package dictionary

import "errors"

var (
	// ErrNotFound is returned when the service has no entry for the word or
	// answers with a non-success status.
	ErrNotFound = errors.New("word not found")
	// ErrNetwork is returned when the service could not be reached.
	ErrNetwork = errors.New("dictionary service unreachable")
	// ErrMalformedResponse is returned when a success response cannot be decoded.
	ErrMalformedResponse = errors.New("malformed dictionary response")
)
