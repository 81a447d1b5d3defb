package edgerc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultSection is the section used when none is given.
	DefaultSection = "default"

	// DefaultPath is the configuration file consulted when no explicit
	// path is given. The leading "~" expands to the home directory.
	DefaultPath = "~/.edgerc"
)

// Resolve produces the credential set for the given section.
//
// With an empty path, the environment is consulted first and any remaining
// gaps are filled from DefaultPath. With an explicit path, only the file is
// read. An empty or blank section means DefaultSection.
//
// The returned error wraps ErrIncompleteCredentials whenever any required
// field is unresolved, including when the file is unreadable or the section
// is absent.
func Resolve(path, section string) (Credentials, error) {
	if strings.TrimSpace(section) == "" {
		section = DefaultSection
	}

	if strings.TrimSpace(path) != "" {
		creds, err := FromFile(path, section)
		if err != nil {
			return Credentials{}, err
		}

		return validated(creds)
	}

	creds := FromEnv(section)
	if creds.Complete() {
		return creds, nil
	}

	fromFile, err := FromFile(DefaultPath, section)
	if err != nil {
		return Credentials{}, err
	}

	return validated(creds.merge(fromFile))
}

// FromEnv reads the credential fields for section from the environment.
// The result may be partial; callers wanting validation use Resolve.
func FromEnv(section string) Credentials {
	return Credentials{
		Host:         os.Getenv(envName(section, "HOST")),
		ClientToken:  os.Getenv(envName(section, "CLIENT_TOKEN")),
		ClientSecret: os.Getenv(envName(section, "CLIENT_SECRET")),
		AccessToken:  os.Getenv(envName(section, "ACCESS_TOKEN")),
		AccountKey:   os.Getenv(envName(section, "ACCOUNT_KEY")),
	}
}

// FromFile reads the credential fields for section from the file at path.
// A leading "~" in path expands to the home directory. The result may be
// partial; an error is returned only when the file cannot be read or the
// section is not present.
func FromFile(path, section string) (Credentials, error) {
	path = expandHome(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("%w: %w", ErrIncompleteCredentials, err)
	}

	var creds Credentials

	// Section headers anchor on the full bracketed token, so a section
	// name that prefixes another ("prod" vs "production") cannot match
	// the wrong header.
	header := "[" + section + "]"
	found := false

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)

		if !found {
			found = strings.HasPrefix(line, header)
			continue
		}

		if strings.HasPrefix(line, "[") {
			break
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		value = strings.TrimSpace(value)

		switch strings.ToLower(strings.TrimSpace(key)) {
		case "host":
			creds.Host = value
		case "client_token":
			creds.ClientToken = value
		case "client_secret":
			creds.ClientSecret = value
		case "access_token":
			creds.AccessToken = value
		case "account_key":
			creds.AccountKey = value
		}
	}

	if !found {
		return Credentials{}, fmt.Errorf("%w: section %q not found in %s", ErrIncompleteCredentials, section, path)
	}

	return creds, nil
}

// validated returns creds unchanged when complete, otherwise an error
// naming the unresolved fields.
func validated(creds Credentials) (Credentials, error) {
	if missing := creds.missing(); len(missing) > 0 {
		return Credentials{}, fmt.Errorf("%w: missing %s", ErrIncompleteCredentials, strings.Join(missing, ", "))
	}

	return creds, nil
}

// envName builds the environment variable name for a section and field.
// The section segment is omitted for the default section, preserving the
// historical un-sectioned names (AKAMAI_HOST et al).
func envName(section, field string) string {
	if section == DefaultSection {
		return "AKAMAI_" + field
	}

	return "AKAMAI_" + strings.ToUpper(section) + "_" + field
}

// expandHome replaces a leading "~" with the current user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
