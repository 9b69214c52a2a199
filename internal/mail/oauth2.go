package mail

import (
	"context"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// NewGmailTokenSource builds a token source that exchanges the long-lived
// refresh token for short-lived access tokens. oauth2.Config.TokenSource
// caches the current access token and refreshes it on expiry, so the caller
// holds exactly one explicitly-lifetimed cache object.
func NewGmailTokenSource(ctx context.Context, clientID, clientSecret, refreshToken string) oauth2.TokenSource {
	cfg := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{"https://mail.google.com/"},
	}
	return cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
}
