package edgerc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every credential variable for the default and given
// sections so ambient environment cannot leak into a test.
func clearEnv(t *testing.T, sections ...string) {
	t.Helper()

	fields := []string{"HOST", "CLIENT_TOKEN", "CLIENT_SECRET", "ACCESS_TOKEN", "ACCOUNT_KEY"}

	for _, field := range fields {
		t.Setenv("AKAMAI_"+field, "")
	}

	for _, section := range sections {
		for _, field := range fields {
			t.Setenv(envName(section, field), "")
		}
	}
}

// writeEdgerc writes content into a temp dir and returns the file path.
func writeEdgerc(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".edgerc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

const basicEdgerc = `[default]
client_secret = S1
host = H1
access_token = A1
client_token = C1
`

func TestFromFile(t *testing.T) {
	t.Run("parses the default section", func(t *testing.T) {
		path := writeEdgerc(t, basicEdgerc)

		creds, err := FromFile(path, "default")
		require.NoError(t, err)

		assert.Equal(t, Credentials{
			Host:         "H1",
			ClientToken:  "C1",
			ClientSecret: "S1",
			AccessToken:  "A1",
		}, creds)
	})

	t.Run("keys are case-insensitive, unknown keys ignored", func(t *testing.T) {
		path := writeEdgerc(t, `[default]
Client_Secret = S1
HOST = H1
access_token = A1
client_token = C1
max_body = 131072
`)

		creds, err := FromFile(path, "default")
		require.NoError(t, err)

		assert.Equal(t, "S1", creds.ClientSecret)
		assert.Equal(t, "H1", creds.Host)
	})

	t.Run("parsing stops at the next section", func(t *testing.T) {
		path := writeEdgerc(t, `[default]
host = H1
[other]
host = H2
client_token = C2
`)

		creds, err := FromFile(path, "default")
		require.NoError(t, err)

		assert.Equal(t, "H1", creds.Host)
		assert.Empty(t, creds.ClientToken)
	})

	t.Run("section name that prefixes another does not match it", func(t *testing.T) {
		path := writeEdgerc(t, `[production]
host = WRONG
[prod]
host = H1
client_token = C1
client_secret = S1
access_token = A1
`)

		creds, err := FromFile(path, "prod")
		require.NoError(t, err)

		assert.Equal(t, "H1", creds.Host)
	})

	t.Run("missing section", func(t *testing.T) {
		path := writeEdgerc(t, basicEdgerc)

		_, err := FromFile(path, "staging")
		assert.ErrorIs(t, err, ErrIncompleteCredentials)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := FromFile(filepath.Join(t.TempDir(), "absent"), "default")
		assert.ErrorIs(t, err, ErrIncompleteCredentials)
	})

	t.Run("account key is optional", func(t *testing.T) {
		path := writeEdgerc(t, basicEdgerc+"account_key = K1\n")

		creds, err := FromFile(path, "default")
		require.NoError(t, err)

		assert.Equal(t, "K1", creds.AccountKey)
	})
}

func TestFromEnv(t *testing.T) {
	t.Run("default section uses un-sectioned names", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("AKAMAI_HOST", "H1")
		t.Setenv("AKAMAI_CLIENT_TOKEN", "C1")

		creds := FromEnv("default")

		assert.Equal(t, "H1", creds.Host)
		assert.Equal(t, "C1", creds.ClientToken)
		assert.Empty(t, creds.ClientSecret)
	})

	t.Run("named section is upper-cased into the name", func(t *testing.T) {
		clearEnv(t, "appsec")
		t.Setenv("AKAMAI_APPSEC_HOST", "H2")

		creds := FromEnv("appsec")

		assert.Equal(t, "H2", creds.Host)
	})
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "AKAMAI_HOST", envName("default", "HOST"))
	assert.Equal(t, "AKAMAI_APPSEC_HOST", envName("appsec", "HOST"))
	assert.Equal(t, "AKAMAI_PROD_ACCESS_TOKEN", envName("prod", "ACCESS_TOKEN"))
}

func TestResolve(t *testing.T) {
	t.Run("environment alone when complete", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("HOME", t.TempDir()) // no .edgerc present
		t.Setenv("AKAMAI_HOST", "H1")
		t.Setenv("AKAMAI_CLIENT_TOKEN", "C1")
		t.Setenv("AKAMAI_CLIENT_SECRET", "S1")
		t.Setenv("AKAMAI_ACCESS_TOKEN", "A1")

		creds, err := Resolve("", "")
		require.NoError(t, err)

		assert.Equal(t, "H1", creds.Host)
	})

	t.Run("file fills environment gaps", func(t *testing.T) {
		clearEnv(t)

		home := t.TempDir()
		t.Setenv("HOME", home)
		require.NoError(t, os.WriteFile(filepath.Join(home, ".edgerc"), []byte(`[default]
host = FILEHOST
client_secret = FILESECRET
access_token = FILEACCESS
client_token = FILECLIENT
`), 0o600))

		t.Setenv("AKAMAI_HOST", "ENVHOST")

		creds, err := Resolve("", "default")
		require.NoError(t, err)

		assert.Equal(t, "ENVHOST", creds.Host, "environment wins over file")
		assert.Equal(t, "FILESECRET", creds.ClientSecret)
		assert.Equal(t, "FILECLIENT", creds.ClientToken)
	})

	t.Run("explicit path skips the environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("AKAMAI_HOST", "ENVHOST")

		path := writeEdgerc(t, basicEdgerc)

		creds, err := Resolve(path, "default")
		require.NoError(t, err)

		assert.Equal(t, "H1", creds.Host)
	})

	t.Run("tilde expands to the home directory", func(t *testing.T) {
		clearEnv(t)

		home := t.TempDir()
		t.Setenv("HOME", home)
		require.NoError(t, os.WriteFile(filepath.Join(home, ".edgerc"), []byte(basicEdgerc), 0o600))

		creds, err := Resolve("~/.edgerc", "default")
		require.NoError(t, err)

		assert.Equal(t, "H1", creds.Host)
	})

	t.Run("blank section means default", func(t *testing.T) {
		clearEnv(t)

		path := writeEdgerc(t, basicEdgerc)

		creds, err := Resolve(path, "  ")
		require.NoError(t, err)

		assert.Equal(t, "C1", creds.ClientToken)
	})

	t.Run("nothing resolvable", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("HOME", t.TempDir())

		_, err := Resolve("", "default")
		assert.ErrorIs(t, err, ErrIncompleteCredentials)
	})

	t.Run("incomplete file names the missing fields", func(t *testing.T) {
		clearEnv(t)

		path := writeEdgerc(t, `[default]
host = H1
`)

		_, err := Resolve(path, "default")
		require.ErrorIs(t, err, ErrIncompleteCredentials)
		assert.ErrorContains(t, err, "client_secret")
		assert.ErrorContains(t, err, "access_token")
	})
}

func TestCredentials(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		creds := Credentials{Host: "h", ClientToken: "c", ClientSecret: "s", AccessToken: "a"}
		assert.True(t, creds.Complete())

		creds.AccessToken = ""
		assert.False(t, creds.Complete())
	})

	t.Run("merge prefers the receiver", func(t *testing.T) {
		env := Credentials{Host: "envhost"}
		file := Credentials{Host: "filehost", ClientToken: "c", ClientSecret: "s", AccessToken: "a", AccountKey: "k"}

		merged := env.merge(file)

		assert.Equal(t, "envhost", merged.Host)
		assert.Equal(t, "c", merged.ClientToken)
		assert.Equal(t, "k", merged.AccountKey)
	})
}
