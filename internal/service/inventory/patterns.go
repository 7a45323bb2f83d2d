package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
	"github.com/heartmarshall/yarnstash-backend/pkg/ctxutil"
)

// ListPatterns returns one page of the user's pattern library, newest first.
func (s *Service) ListPatterns(ctx context.Context, input PatternListInput) (*Page[domain.Pattern], error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	page, limit, offset := input.resolve()
	items, total, err := s.patterns.List(ctx, userID, domain.PatternFilter{
		Search:     input.Search,
		CraftType:  input.CraftType,
		Difficulty: input.Difficulty,
		IsFree:     input.IsFree,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list patterns: %w", err)
	}
	return newPage(items, total, page, limit), nil
}

// GetPattern returns one pattern.
func (s *Service) GetPattern(ctx context.Context, patternID uuid.UUID) (*domain.Pattern, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.patterns.GetByID(ctx, userID, patternID)
	if err != nil {
		return nil, fmt.Errorf("get pattern: %w", err)
	}
	return p, nil
}

// CreatePattern adds a pattern to the library.
func (s *Service) CreatePattern(ctx context.Context, input PatternInput) (*domain.Pattern, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p := &domain.Pattern{
		UserID:           userID,
		OriginalFilename: input.OriginalFilename,
		FileType:         input.FileType,
		CreatedAt:        s.now().UTC(),
	}
	input.apply(p)
	if err := s.patterns.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create pattern: %w", err)
	}

	s.log.InfoContext(ctx, "pattern created",
		slog.String("user_id", userID.String()),
		slog.String("pattern_id", p.ID.String()),
	)
	return p, nil
}

// UpdatePattern replaces the editable state of a pattern. The stored file
// reference is kept.
func (s *Service) UpdatePattern(ctx context.Context, patternID uuid.UUID, input PatternInput) (*domain.Pattern, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var p *domain.Pattern
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		p, err = s.patterns.GetByID(txCtx, userID, patternID)
		if err != nil {
			return fmt.Errorf("get pattern: %w", err)
		}
		input.apply(p)
		if err := s.patterns.Update(txCtx, p); err != nil {
			return fmt.Errorf("update pattern: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "pattern updated",
		slog.String("user_id", userID.String()),
		slog.String("pattern_id", patternID.String()),
	)
	return p, nil
}

// DeletePattern removes a pattern. Projects that followed it keep their
// rows without a pattern.
func (s *Service) DeletePattern(ctx context.Context, patternID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.patterns.Delete(ctx, userID, patternID); err != nil {
		return fmt.Errorf("delete pattern: %w", err)
	}

	s.log.InfoContext(ctx, "pattern deleted",
		slog.String("user_id", userID.String()),
		slog.String("pattern_id", patternID.String()),
	)
	return nil
}
