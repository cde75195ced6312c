// Package identity verifies credentials issued by external identity providers.
package identity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// ErrInvalidCredential is returned when the provider rejects the credential.
var ErrInvalidCredential = errors.New("invalid identity credential")

// Profile is the verified identity returned by a provider.
type Profile struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

// Verifier turns a provider-issued credential into a verified profile.
type Verifier interface {
	Verify(ctx context.Context, credential string) (Profile, error)
}

// DefaultTokenInfoURL is Google's ID token introspection endpoint.
const DefaultTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// GoogleVerifier validates Google ID tokens through the tokeninfo endpoint.
type GoogleVerifier struct {
	ClientID     string
	TokenInfoURL string
	HTTPClient   *http.Client
}

// NewGoogleVerifier returns a verifier that accepts tokens minted for clientID.
func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{
		ClientID:     clientID,
		TokenInfoURL: DefaultTokenInfoURL,
		HTTPClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify checks the token signature (delegated to Google), the audience and
// that the email address is verified.
func (g *GoogleVerifier) Verify(ctx context.Context, credential string) (Profile, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return Profile{}, fmt.Errorf("%w: empty credential", ErrInvalidCredential)
	}

	endpoint := g.TokenInfoURL + "?id_token=" + url.QueryEscape(credential)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to build tokeninfo request: %w", err)
	}

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		return Profile{}, fmt.Errorf("tokeninfo request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read tokeninfo response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Profile{}, fmt.Errorf("%w: tokeninfo returned %d", ErrInvalidCredential, resp.StatusCode)
	}

	claims := gjson.ParseBytes(body)
	if g.ClientID != "" && claims.Get("aud").String() != g.ClientID {
		return Profile{}, fmt.Errorf("%w: audience mismatch", ErrInvalidCredential)
	}
	// tokeninfo encodes booleans as strings; gjson.Bool handles both forms.
	if !claims.Get("email_verified").Bool() {
		return Profile{}, fmt.Errorf("%w: email not verified", ErrInvalidCredential)
	}

	p := Profile{
		Subject: claims.Get("sub").String(),
		Email:   strings.ToLower(claims.Get("email").String()),
		Name:    claims.Get("name").String(),
		Picture: claims.Get("picture").String(),
	}
	if p.Subject == "" || p.Email == "" {
		return Profile{}, fmt.Errorf("%w: missing subject or email", ErrInvalidCredential)
	}
	return p, nil
}
