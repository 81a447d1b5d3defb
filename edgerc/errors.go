package edgerc

import "errors"

// Resolution errors.
var (
	// ErrIncompleteCredentials is returned when one or more required
	// credential fields remain unresolved after the environment and the
	// configuration file have been exhausted. File read failures and
	// missing sections wrap this error as well, so callers can treat
	// every resolution failure uniformly.
	ErrIncompleteCredentials = errors.New("edgerc: incomplete credentials")
)
