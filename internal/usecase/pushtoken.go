package usecase

import (
	"context"

	"backlogapi/internal/entity"
)

type PushTokenRepository interface {
	// Get returns ErrNotFound when the user has no registered token.
	Get(ctx context.Context, userID string) (entity.PushToken, error)
	Save(ctx context.Context, userID, token string) error
	Delete(ctx context.Context, userID string) error
}
