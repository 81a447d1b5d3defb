// Package edgerc resolves Akamai EdgeGrid API credentials from environment
// variables and .edgerc configuration files.
//
// A credential set consists of an API host, a client token, a client secret,
// and an access token, plus an optional account switch key. Resolution
// succeeds only when all four required fields are found; there is no
// partially valid result.
//
// # Resolution order
//
// Resolve first consults the environment, then fills any remaining gaps from
// the configuration file:
//
//	creds, err := edgerc.Resolve("", "default")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// When an explicit file path is given, the environment is skipped entirely:
//
//	creds, err := edgerc.Resolve("/etc/akamai/.edgerc", "production")
//
// A leading "~" in the path expands to the current user's home directory.
//
// # Environment variables
//
// Variables are named AKAMAI_{SECTION}_{FIELD} with the section upper-cased,
// e.g. AKAMAI_APPSEC_HOST. For the "default" section the segment is omitted:
// AKAMAI_HOST, AKAMAI_CLIENT_TOKEN, AKAMAI_CLIENT_SECRET, AKAMAI_ACCESS_TOKEN,
// AKAMAI_ACCOUNT_KEY.
//
// # File format
//
// The file is an INI-style list of bracketed sections:
//
//	[default]
//	client_secret = xxxx
//	host = xxxx.luna.akamaiapis.net
//	access_token = xxxx
//	client_token = xxxx
//
// Keys are case-insensitive and unknown keys are ignored. The optional
// account_key carries the account switch key for multi-account operators.
package edgerc
