package edgerc

// Credentials holds one resolved EdgeGrid identity. The value is immutable
// after resolution and safe to share across concurrent signing calls.
type Credentials struct {
	// Host is the API origin, without scheme or trailing slash.
	Host string

	// ClientToken identifies the API client.
	ClientToken string

	// ClientSecret is the signing secret. It must never be logged.
	ClientSecret string

	// AccessToken authorizes the client for a set of APIs.
	AccessToken string

	// AccountKey is the optional account switch key used by multi-account
	// operators. It is not part of the signature computation.
	AccountKey string
}

// Complete reports whether all required fields are non-empty. AccountKey
// is always optional.
func (c Credentials) Complete() bool {
	return c.Host != "" && c.ClientToken != "" && c.ClientSecret != "" && c.AccessToken != ""
}

// missing lists the required field names that are still empty, for error
// messages.
func (c Credentials) missing() []string {
	var fields []string

	if c.Host == "" {
		fields = append(fields, "host")
	}

	if c.ClientToken == "" {
		fields = append(fields, "client_token")
	}

	if c.ClientSecret == "" {
		fields = append(fields, "client_secret")
	}

	if c.AccessToken == "" {
		fields = append(fields, "access_token")
	}

	return fields
}

// merge returns c with every empty field filled from other. Fields already
// set on c win, which gives the environment precedence over the file.
func (c Credentials) merge(other Credentials) Credentials {
	if c.Host == "" {
		c.Host = other.Host
	}

	if c.ClientToken == "" {
		c.ClientToken = other.ClientToken
	}

	if c.ClientSecret == "" {
		c.ClientSecret = other.ClientSecret
	}

	if c.AccessToken == "" {
		c.AccessToken = other.AccessToken
	}

	if c.AccountKey == "" {
		c.AccountKey = other.AccountKey
	}

	return c
}
