package edgegrid

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vitalvas/edgegrid/edgerc"
)

// scheme is the tag identifying the signing scheme in the header.
const scheme = "EG1-HMAC-SHA256"

// DefaultMaxBody is the maximum number of request body bytes hashed into
// the signature. Larger bodies are hashed by prefix.
const DefaultMaxBody = 131072

// timestampLayout renders the signing time as yyyyMMddTHH:mm:ss+0000,
// always UTC with the literal +0000 suffix.
const timestampLayout = "20060102T15:04:05+0000"

// SignConfig configures EdgeGrid request signing. The zero value is ready
// to use.
type SignConfig struct {
	// MaxBody caps the number of POST body bytes hashed into the
	// signature. Defaults to DefaultMaxBody.
	MaxBody int

	// Timestamp overrides the signing time. When zero, the current time
	// is used. A single timestamp is shared by the auth data and the
	// signing key within one call.
	Timestamp time.Time

	// Nonce overrides the generated nonce. When empty, a random UUID v4
	// is generated per call. Rendered lower case.
	Nonce string
}

// AuthorizationHeader computes the EdgeGrid Authorization header value for
// one request. The method is upper-cased; pathAndQuery must begin with "/"
// and carries any query string (scheme and host come from creds). The body
// participates in the signature only for POST.
func AuthorizationHeader(creds edgerc.Credentials, method, pathAndQuery string, body []byte, cfg SignConfig) (string, error) {
	if creds.ClientSecret == "" {
		return "", ErrMissingSecret
	}

	if pathAndQuery == "" {
		return "", fmt.Errorf("%w: path must not be empty", ErrInvalidPath)
	}

	if !strings.HasPrefix(pathAndQuery, "/") {
		return "", fmt.Errorf("%w: %q must begin with a slash", ErrInvalidPath, pathAndQuery)
	}

	method = strings.ToUpper(method)

	maxBody := cfg.MaxBody
	if maxBody <= 0 {
		maxBody = DefaultMaxBody
	}

	ts := cfg.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	timestamp := ts.UTC().Format(timestampLayout)

	nonce := cfg.Nonce
	if nonce == "" {
		nonce = uuid.New().String()
	}

	authData := scheme + " " +
		"client_token=" + creds.ClientToken + ";" +
		"access_token=" + creds.AccessToken + ";" +
		"timestamp=" + timestamp + ";" +
		"nonce=" + strings.ToLower(nonce) + ";"

	// The empty element between pathAndQuery and the body hash is the
	// header-hash field, always empty in this scheme. The trailing tab
	// separates the string-to-sign from the auth data appended below.
	stringToSign := strings.Join([]string{
		method,
		"https",
		creds.Host,
		pathAndQuery,
		"",
		contentHash(method, body, maxBody),
	}, "\t") + "\t"

	signingKey := base64.StdEncoding.EncodeToString(computeHMAC([]byte(creds.ClientSecret), []byte(timestamp)))
	signature := base64.StdEncoding.EncodeToString(computeHMAC([]byte(signingKey), []byte(stringToSign+authData)))

	return authData + "signature=" + signature, nil
}

// SignRequest signs an HTTP request in place by setting its Authorization
// header. The request body, when present, is read and restored so the
// transport can still send it. The request is expected to target the
// credential host.
func SignRequest(r *http.Request, creds edgerc.Credentials, cfg SignConfig) error {
	body, err := readAndRestoreBody(r)
	if err != nil {
		return err
	}

	header, err := AuthorizationHeader(creds, r.Method, r.URL.RequestURI(), body, cfg)
	if err != nil {
		return err
	}

	r.Header.Set("Authorization", header)

	return nil
}

// contentHash returns the base64 SHA-256 of the leading maxBody bytes of
// body for POST requests. Every other method yields the empty string, even
// when a body is present.
func contentHash(method string, body []byte, maxBody int) string {
	if method != http.MethodPost || len(body) == 0 {
		return ""
	}

	if len(body) > maxBody {
		body = body[:maxBody]
	}

	sum := sha256.Sum256(body)

	return base64.StdEncoding.EncodeToString(sum[:])
}

func computeHMAC(key, message []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(message)

	return h.Sum(nil)
}

// readAndRestoreBody reads the entire request body and replaces it with a
// new reader so the body can still be sent after signing.
func readAndRestoreBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))

	return body, nil
}
