package objectstore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Dialer builds an authenticated backend from one user's token pair.
type Dialer func(ctx context.Context, creds domain.DriveCredentials) (Backend, error)

// Provider hands out per-user clients. It holds no credentials itself:
// every ForUser call reads the user's tokens and dials a fresh backend.
type Provider struct {
	users   userRepo
	logs    syncLogger
	dial    Dialer
	timeout time.Duration
	log     *slog.Logger
}

// NewProvider creates a Provider.
func NewProvider(log *slog.Logger, users userRepo, logs syncLogger, dial Dialer, timeout time.Duration) *Provider {
	return &Provider{
		users:   users,
		logs:    logs,
		dial:    dial,
		timeout: timeout,
		log:     log,
	}
}

// ForUser returns a client authenticated as userID.
// domain.ErrDriveNotConnected when the user has no stored credentials.
func (p *Provider) ForUser(ctx context.Context, userID uuid.UUID) (*Client, error) {
	user, err := p.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if !user.DriveConnected() {
		return nil, domain.ErrDriveNotConnected
	}

	backend, err := p.dial(ctx, *user.Drive)
	if err != nil {
		return nil, domain.NewObjectStoreError("connect", err)
	}

	c := NewClient(backend, userID, p.logs, p.timeout, p.log)
	if user.DriveRootFolderID != nil {
		c.WithRootFolder(*user.DriveRootFolderID)
	}
	return c, nil
}
