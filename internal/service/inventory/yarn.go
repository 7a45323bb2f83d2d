package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
	"github.com/heartmarshall/yarnstash-backend/pkg/ctxutil"
)

// ListYarn returns one page of the user's stash, newest first.
func (s *Service) ListYarn(ctx context.Context, input YarnListInput) (*Page[domain.YarnStock], error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	page, limit, offset := input.resolve()
	items, total, err := s.yarn.List(ctx, userID, domain.YarnFilter{
		Search:         input.Search,
		ColorFamily:    input.ColorFamily,
		WeightCategory: input.WeightCategory,
		BrandID:        input.BrandID,
		Limit:          limit,
		Offset:         offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list yarn: %w", err)
	}
	return newPage(items, total, page, limit), nil
}

// GetYarn returns one yarn row.
func (s *Service) GetYarn(ctx context.Context, yarnID uuid.UUID) (*domain.YarnStock, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	y, err := s.yarn.GetByID(ctx, userID, yarnID)
	if err != nil {
		return nil, fmt.Errorf("get yarn: %w", err)
	}
	return y, nil
}

// CreateYarn adds a yarn row to the stash.
func (s *Service) CreateYarn(ctx context.Context, input YarnInput) (*domain.YarnStock, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	y := &domain.YarnStock{UserID: userID, CreatedAt: s.now().UTC()}
	input.apply(y)
	if err := s.yarn.Create(ctx, y); err != nil {
		return nil, fmt.Errorf("create yarn: %w", err)
	}

	s.log.InfoContext(ctx, "yarn created",
		slog.String("user_id", userID.String()),
		slog.String("yarn_id", y.ID.String()),
	)
	return y, nil
}

// UpdateYarn replaces the editable state of a yarn row.
func (s *Service) UpdateYarn(ctx context.Context, yarnID uuid.UUID, input YarnInput) (*domain.YarnStock, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var y *domain.YarnStock
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		y, err = s.yarn.GetByID(txCtx, userID, yarnID)
		if err != nil {
			return fmt.Errorf("get yarn: %w", err)
		}
		input.apply(y)
		if err := s.yarn.Update(txCtx, y); err != nil {
			return fmt.Errorf("update yarn: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "yarn updated",
		slog.String("user_id", userID.String()),
		slog.String("yarn_id", yarnID.String()),
	)
	return y, nil
}

// DeleteYarn removes a yarn row and its project usage links.
func (s *Service) DeleteYarn(ctx context.Context, yarnID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.yarn.Delete(ctx, userID, yarnID); err != nil {
		return fmt.Errorf("delete yarn: %w", err)
	}

	s.log.InfoContext(ctx, "yarn deleted",
		slog.String("user_id", userID.String()),
		slog.String("yarn_id", yarnID.String()),
	)
	return nil
}
