package usecase

import (
	"context"

	"backlogapi/internal/entity"
)

type StatisticsRepository interface {
	// Get returns ErrNotFound when the user has no statistics row yet.
	Get(ctx context.Context, userID string) (entity.Statistics, error)
	// Recompute rebuilds the stored aggregate from the user's library rows.
	Recompute(ctx context.Context, userID string) error
}
