package edgegrid

import "errors"

// Signing errors.
var (
	// ErrMissingSecret is returned when the credential set has no client
	// secret. No partial header is produced.
	ErrMissingSecret = errors.New("edgegrid: client secret must not be empty")

	// ErrInvalidPath is returned when the request path is empty or does
	// not begin with a slash.
	ErrInvalidPath = errors.New("edgegrid: invalid request path")
)
