package fitness

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"dailysteps/core"
)

const testClientSecret = `{
	"installed": {
		"client_id": "test-client.apps.googleusercontent.com",
		"client_secret": "test-secret",
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token",
		"redirect_uris": ["urn:ietf:wg:oauth:2.0:oob", "http://localhost"]
	}
}`

func TestTokenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	tok := &oauth2.Token{
		AccessToken:  "abc",
		TokenType:    "Bearer",
		RefreshToken: "def",
		Expiry:       time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	if err := saveToken(path, tok); err != nil {
		t.Fatal(err)
	}

	tok2, err := tokenFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, tok, tok2)
}

func TestClientWithCachedToken(t *testing.T) {
	dir := t.TempDir()
	secretPath := filepath.Join(dir, "client_secret.json")
	tokenPath := filepath.Join(dir, "token.json")

	writeFile(t, secretPath, testClientSecret)
	if err := saveToken(tokenPath, &oauth2.Token{
		AccessToken: "cached",
		TokenType:   "Bearer",
		Expiry:      time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatal(err)
	}

	auth := &InstalledAppAuthenticator{SecretPath: secretPath, TokenPath: tokenPath}

	// A cached token must produce a client without running the consent
	// flow (which would block on stdin).
	client, err := auth.Client(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if client == nil {
		t.Fatal()
	}
}

func TestClientMissingSecret(t *testing.T) {
	auth := &InstalledAppAuthenticator{
		SecretPath: filepath.Join(t.TempDir(), "nope.json"),
		TokenPath:  filepath.Join(t.TempDir(), "token.json"),
	}

	_, err := auth.Client(context.Background())
	require.True(t, errors.Is(err, core.ErrAuth))
	require.Contains(t, err.Error(), "nope.json")
}

func TestClientInvalidSecret(t *testing.T) {
	dir := t.TempDir()
	secretPath := filepath.Join(dir, "client_secret.json")
	writeFile(t, secretPath, `not json`)

	auth := &InstalledAppAuthenticator{
		SecretPath: secretPath,
		TokenPath:  filepath.Join(dir, "token.json"),
	}

	_, err := auth.Client(context.Background())
	require.True(t, errors.Is(err, core.ErrAuth))
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatal(err)
	}
}
