// Package drive adapts the Google Drive v3 SDK to the object store operations
// the application needs. Clients are built per user from that user's token
// pair and are never shared between users.
package drive

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/heartmarshall/yarnstash-backend/internal/config"
	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

// Connector owns the OAuth client configuration and builds per-user clients.
type Connector struct {
	oauth *oauth2.Config
	opts  []option.ClientOption
	log   *slog.Logger
}

// NewConnector creates a Connector from the Drive config section.
func NewConnector(cfg config.DriveConfig, logger *slog.Logger) *Connector {
	return &Connector{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       []string{drive.DriveFileScope, drive.DriveAppdataScope},
			Endpoint:     google.Endpoint,
		},
		log: logger.With("adapter", "drive"),
	}
}

// WithClientOptions appends SDK options used for every client (endpoint
// overrides in tests).
func (c *Connector) WithClientOptions(opts ...option.ClientOption) *Connector {
	c.opts = append(c.opts, opts...)
	return c
}

// AuthURL returns the consent page URL. Offline access with a forced consent
// prompt makes Google return a refresh token on every connect.
func (c *Connector) AuthURL(state string) string {
	return c.oauth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange trades an authorization code for a token pair.
func (c *Connector) Exchange(ctx context.Context, code string) (domain.DriveCredentials, error) {
	tok, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		c.log.ErrorContext(ctx, "drive token exchange failed", slog.String("error", err.Error()))
		return domain.DriveCredentials{}, fmt.Errorf("drive: exchange code: %w", err)
	}
	return domain.DriveCredentials{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		Expiry:       tok.Expiry,
	}, nil
}

// Connect builds a client authenticated with the given token pair. Token
// refresh is left to the oauth2 token source.
func (c *Connector) Connect(ctx context.Context, creds domain.DriveCredentials) (*Client, error) {
	tok := &oauth2.Token{
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
		Expiry:       creds.Expiry,
		TokenType:    "Bearer",
	}

	opts := append([]option.ClientOption{option.WithTokenSource(c.oauth.TokenSource(context.Background(), tok))}, c.opts...)
	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("drive: new service: %w", err)
	}
	return NewClient(svc, c.log), nil
}
