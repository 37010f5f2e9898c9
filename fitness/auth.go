package fitness

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"dailysteps/core"
)

// ScopeActivityRead grants read-only access to the user's activity data.
const ScopeActivityRead = "https://www.googleapis.com/auth/fitness.activity.read"

// CredentialProvider yields an HTTP client that attaches valid bearer
// credentials to every request it sends.
type CredentialProvider interface {
	Client(ctx context.Context) (*http.Client, error)
}

// InstalledAppAuthenticator runs the installed-app OAuth consent flow
// against the provider. The token obtained from the first consent is
// persisted to TokenPath, so later runs skip the flow entirely.
type InstalledAppAuthenticator struct {
	SecretPath string
	TokenPath  string
}

func (a *InstalledAppAuthenticator) Client(ctx context.Context) (*http.Client, error) {
	secret, err := os.ReadFile(a.SecretPath)
	if err != nil {
		return nil, fmt.Errorf("%w: reading client secret %s: %v", core.ErrAuth, a.SecretPath, err)
	}
	cfg, err := google.ConfigFromJSON(secret, ScopeActivityRead)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing client secret: %v", core.ErrAuth, err)
	}

	tok, err := tokenFromFile(a.TokenPath)
	if err != nil {
		tok, err = consentToken(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := saveToken(a.TokenPath, tok); err != nil {
			return nil, err
		}
	}

	return cfg.Client(ctx, tok), nil
}

// consentToken walks the user through the browser consent flow and
// exchanges the pasted verification code for a token.
func consentToken(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error) {
	url := cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Open the following link in your browser, authorize the app, "+
		"then paste the code here:\n%v\n", url)

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return nil, fmt.Errorf("%w: reading verification code: %v", core.ErrAuth, err)
	}
	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: exchanging verification code: %v", core.ErrAuth, err)
	}
	return tok, nil
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	return tok, json.NewDecoder(f).Decode(tok)
}

func saveToken(path string, tok *oauth2.Token) error {
	log.Infof("caching oauth token to %s", path)
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("%w: caching token to %s: %v", core.ErrAuth, path, err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(tok)
}
