package usecase

import (
	"context"

	"backlogapi/internal/entity"
)

type GameCacheRepository interface {
	// Get returns ErrNotFound when no entry exists for the id.
	Get(ctx context.Context, igdbGameID int64) (entity.GameCacheEntry, error)
	// Upsert replaces the payload and resets cached_at. Last writer wins
	// under concurrent misses for the same id.
	Upsert(ctx context.Context, igdbGameID int64, gameData []byte) error
}
