// Package edgegrid signs HTTP requests with the Akamai EdgeGrid
// EG1-HMAC-SHA256 authentication scheme.
//
// Signing is a pure computation over a credential set, a request
// description, a timestamp, and a random nonce. It produces the complete
// Authorization header value; sending the request is left to the caller's
// transport.
//
// # Signing a request
//
// Use SignRequest to set the Authorization header on a request in place:
//
//	creds, err := edgerc.Resolve("", "default")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	req, _ := http.NewRequest("GET", "https://"+creds.Host+"/papi/v1/contracts", nil)
//	if err := edgegrid.SignRequest(req, creds, edgegrid.SignConfig{}); err != nil {
//	    log.Fatal(err)
//	}
//
// AuthorizationHeader computes the raw header value without touching a
// request, for callers with their own transport plumbing:
//
//	header, err := edgegrid.AuthorizationHeader(creds, "GET", "/papi/v1/contracts", nil, edgegrid.SignConfig{})
//
// # Client transport
//
// NewTransport wraps an http.RoundTripper so every outgoing request is
// signed automatically:
//
//	client := &http.Client{
//	    Transport: edgegrid.NewTransport(nil, creds, edgegrid.SignConfig{}),
//	}
//
// # Body hashing
//
// Only POST bodies participate in the signature. Bodies larger than
// SignConfig.MaxBody (default 128 KiB) are hashed by their leading bytes
// only, matching the scheme's server-side verification.
//
// # Deterministic output
//
// SignConfig.Timestamp and SignConfig.Nonce override the wall clock and the
// random nonce, making the signer fully deterministic for tests against
// published vectors. Production callers leave both zero.
package edgegrid
