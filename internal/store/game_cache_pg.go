package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"backlogapi/internal/entity"
	"backlogapi/internal/usecase"
)

type GameCachePG struct {
	db *pgxpool.Pool
}

func NewGameCachePG(db *pgxpool.Pool) *GameCachePG {
	return &GameCachePG{db: db}
}

func (r *GameCachePG) Get(ctx context.Context, igdbGameID int64) (entity.GameCacheEntry, error) {
	const query = `
	SELECT igdb_game_id, game_data, cached_at
	FROM game_cache
	WHERE igdb_game_id = $1
	`
	var e entity.GameCacheEntry
	err := r.db.QueryRow(ctx, query, igdbGameID).Scan(&e.IGDBGameID, &e.GameData, &e.CachedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.GameCacheEntry{}, usecase.ErrNotFound
		}
		return entity.GameCacheEntry{}, err
	}
	return e, nil
}

func (r *GameCachePG) Upsert(ctx context.Context, igdbGameID int64, gameData []byte) error {
	const query = `
	INSERT INTO game_cache (igdb_game_id, game_data, cached_at)
	VALUES ($1, $2, now())
	ON CONFLICT (igdb_game_id) DO UPDATE SET
		game_data = EXCLUDED.game_data,
		cached_at = now()
	`
	if _, err := r.db.Exec(ctx, query, igdbGameID, gameData); err != nil {
		return fmt.Errorf("upsert game cache: %w", err)
	}
	return nil
}
