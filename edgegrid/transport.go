package edgegrid

import (
	"net/http"

	"github.com/vitalvas/edgegrid/edgerc"
)

// Transport is an http.RoundTripper that signs every outgoing request with
// the EdgeGrid scheme before delegating to a base transport.
type Transport struct {
	base   http.RoundTripper
	creds  edgerc.Credentials
	config SignConfig
}

// NewTransport creates a signing Transport that delegates to base after
// signing each request. When base is nil, a clone of http.DefaultTransport
// is used, giving an independent connection pool with default proxy, TLS,
// and timeout settings.
//
//	client := &http.Client{
//	    Transport: edgegrid.NewTransport(nil, creds, edgegrid.SignConfig{}),
//	}
//
// Each round trip gets a fresh timestamp and nonce unless the config pins
// them.
func NewTransport(base *http.Transport, creds edgerc.Credentials, cfg SignConfig) *Transport {
	var rt http.RoundTripper
	if base != nil {
		rt = base
	} else {
		rt = http.DefaultTransport.(*http.Transport).Clone()
	}

	return &Transport{
		base:   rt,
		creds:  creds,
		config: cfg,
	}
}

// RoundTrip signs the request and then delegates to the base transport.
// The original request is cloned before signing to avoid mutation. When
// GetBody is available, the clone receives its own body copy so that body
// hashing does not consume the caller's body.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())

	if clone.Body != nil && req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}

		clone.Body = body
	}

	if err := SignRequest(clone, t.creds, t.config); err != nil {
		return nil, err
	}

	return t.base.RoundTrip(clone)
}
