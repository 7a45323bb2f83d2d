package activity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

// source fetches the most recent rows of one entity family and normalizes
// them into activity records. Adding a family means adding a source.
type source interface {
	Type() domain.ActivityType
	Recent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ActivityRecord, error)
}

// ---------------------------------------------------------------------------
// Yarn
// ---------------------------------------------------------------------------

type yarnSource struct{ repo yarnRepo }

func (yarnSource) Type() domain.ActivityType { return domain.ActivityTypeYarn }

func (s yarnSource) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ActivityRecord, error) {
	rows, err := s.repo.FindRecent(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent yarn: %w", err)
	}
	out := make([]domain.ActivityRecord, 0, len(rows))
	for i := range rows {
		out = append(out, yarnRecord(&rows[i]))
	}
	return out, nil
}

func yarnRecord(y *domain.YarnStock) domain.ActivityRecord {
	return domain.ActivityRecord{
		ID:          "yarn-" + y.ID.String(),
		Type:        domain.ActivityTypeYarn,
		Action:      "added",
		Description: fmt.Sprintf("Added %s to inventory", yarnLabel(y)),
		Details: map[string]any{
			"brand":    y.BrandName,
			"line":     y.LineName,
			"colorway": y.Colorway,
			"skeins":   y.SkeinsTotal,
		},
		EntityID:   y.ID,
		OccurredAt: y.CreatedAt,
	}
}

// yarnLabel prefers the colorway, then the line name.
func yarnLabel(y *domain.YarnStock) string {
	switch {
	case y.Colorway != nil && *y.Colorway != "":
		return *y.Colorway
	case y.LineName != nil:
		return *y.LineName
	}
	return "yarn"
}

// ---------------------------------------------------------------------------
// Patterns
// ---------------------------------------------------------------------------

type patternSource struct{ repo patternRepo }

func (patternSource) Type() domain.ActivityType { return domain.ActivityTypePattern }

func (s patternSource) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ActivityRecord, error) {
	rows, err := s.repo.FindRecent(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent patterns: %w", err)
	}
	out := make([]domain.ActivityRecord, 0, len(rows))
	for i := range rows {
		out = append(out, patternRecord(&rows[i]))
	}
	return out, nil
}

func patternRecord(p *domain.Pattern) domain.ActivityRecord {
	return domain.ActivityRecord{
		ID:          "pattern-" + p.ID.String(),
		Type:        domain.ActivityTypePattern,
		Action:      "added",
		Description: "Added pattern: " + p.Title,
		Details: map[string]any{
			"title":     p.Title,
			"designer":  p.DesignerName,
			"craftType": p.CraftType,
		},
		EntityID:   p.ID,
		OccurredAt: p.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Projects
// ---------------------------------------------------------------------------

type projectSource struct{ repo projectRepo }

func (projectSource) Type() domain.ActivityType { return domain.ActivityTypeProject }

func (s projectSource) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ActivityRecord, error) {
	rows, err := s.repo.FindRecent(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent projects: %w", err)
	}
	out := make([]domain.ActivityRecord, 0, len(rows))
	for i := range rows {
		out = append(out, projectRecord(&rows[i]))
	}
	return out, nil
}

// projectRecord reports a completed project at its completion time and any
// other project at its creation time.
func projectRecord(p *domain.Project) domain.ActivityRecord {
	action, verb, at := "started", "Started", p.CreatedAt
	if p.IsCompleted() {
		action, verb = "completed", "Completed"
		if p.CompletionDate != nil {
			at = *p.CompletionDate
		}
	}
	return domain.ActivityRecord{
		ID:          "project-" + p.ID.String(),
		Type:        domain.ActivityTypeProject,
		Action:      action,
		Description: verb + " project: " + p.Name,
		Details: map[string]any{
			"name":    p.Name,
			"pattern": p.PatternTitle,
			"status":  p.Status,
		},
		EntityID:   p.ID,
		OccurredAt: at,
	}
}

// ---------------------------------------------------------------------------
// Progress
// ---------------------------------------------------------------------------

type progressSource struct{ repo progressRepo }

func (progressSource) Type() domain.ActivityType { return domain.ActivityTypeProgress }

func (s progressSource) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ActivityRecord, error) {
	rows, err := s.repo.FindRecent(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent progress: %w", err)
	}
	out := make([]domain.ActivityRecord, 0, len(rows))
	for i := range rows {
		out = append(out, progressRecord(&rows[i]))
	}
	return out, nil
}

func progressRecord(p *domain.ProjectProgress) domain.ActivityRecord {
	return domain.ActivityRecord{
		ID:          "progress-" + p.ID.String(),
		Type:        domain.ActivityTypeProgress,
		Action:      "updated",
		Description: "Updated progress on " + p.ProjectName,
		Details: map[string]any{
			"project": p.ProjectName,
			"type":    p.ProgressType,
			"value":   p.ProgressValue,
			"notes":   p.Notes,
		},
		EntityID:   p.ProjectID,
		OccurredAt: p.CreatedAt,
	}
}
