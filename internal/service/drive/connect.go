package drive

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
	"github.com/heartmarshall/yarnstash-backend/pkg/ctxutil"
)

// ConnectResult describes the folder tree prepared on connect.
type ConnectResult struct {
	RootFolderID string            `json:"rootFolderId"`
	Folders      map[string]string `json:"folders"`
}

// Status reports whether Drive is connected and, if so, the storage quota.
type Status struct {
	Connected bool                 `json:"connected"`
	Storage   *domain.StorageQuota `json:"storage,omitempty"`
}

// AuthURL returns the consent page URL. The state parameter is a signed,
// short-lived token that identifies the current user on callback.
func (s *Service) AuthURL(ctx context.Context) (string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}

	state, err := s.states.GenerateStateToken(userID)
	if err != nil {
		return "", fmt.Errorf("sign state: %w", err)
	}
	return s.oauth.AuthURL(state), nil
}

// Connect completes the OAuth callback: it exchanges the code, stores the
// token pair and prepares the application folder tree. The user is taken
// from the signed state, since the callback carries no bearer token.
func (s *Service) Connect(ctx context.Context, code, state string) (*ConnectResult, error) {
	if strings.TrimSpace(code) == "" {
		return nil, domain.NewValidationError("code", "required")
	}
	userID, err := s.states.ValidateStateToken(state)
	if err != nil {
		return nil, fmt.Errorf("state: %w", domain.ErrUnauthorized)
	}

	creds, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, domain.NewObjectStoreError("exchange", err)
	}
	if err := s.users.SaveDriveCredentials(ctx, userID, creds); err != nil {
		return nil, fmt.Errorf("save credentials: %w", err)
	}

	store, err := s.stores(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	rootID, err := store.EnsureFolder(ctx, s.opts.RootFolder, "")
	if err != nil {
		return nil, err
	}
	res := &ConnectResult{RootFolderID: rootID, Folders: make(map[string]string, len(s.opts.Subfolders))}
	for _, name := range s.opts.Subfolders {
		id, err := store.EnsureFolder(ctx, name, rootID)
		if err != nil {
			return nil, err
		}
		res.Folders[name] = id
	}

	if err := s.users.SetDriveRootFolder(ctx, userID, rootID); err != nil {
		return nil, fmt.Errorf("set root folder: %w", err)
	}

	s.log.InfoContext(ctx, "drive connected",
		slog.String("user_id", userID.String()),
		slog.String("root_folder_id", rootID),
	)

	return res, nil
}

// Disconnect forgets the stored token pair. Files already in Drive stay.
func (s *Service) Disconnect(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.users.ClearDriveCredentials(ctx, userID); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}

	s.log.InfoContext(ctx, "drive disconnected", slog.String("user_id", userID.String()))
	return nil
}

// Status reports the connection state. A connected user whose quota
// cannot be read is still reported as connected, without storage.
func (s *Service) Status(ctx context.Context) (*Status, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	store, err := s.stores(ctx, userID)
	if errors.Is(err, domain.ErrDriveNotConnected) {
		return &Status{Connected: false}, nil
	}
	if err != nil {
		return nil, err
	}

	quota, err := store.Quota(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "drive quota unavailable",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return &Status{Connected: true}, nil
	}
	return &Status{Connected: true, Storage: &quota}, nil
}
