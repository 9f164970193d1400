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

type StatisticsPG struct {
	db *pgxpool.Pool
}

func NewStatisticsPG(db *pgxpool.Pool) *StatisticsPG {
	return &StatisticsPG{db: db}
}

func (r *StatisticsPG) Get(ctx context.Context, userID string) (entity.Statistics, error) {
	const query = `
	SELECT user_id, total_games, completed_games, playing_games,
		backlogged_games, dropped_games, on_hold_games, total_hours, updated_at
	FROM user_statistics
	WHERE user_id = $1
	`
	var s entity.Statistics
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&s.UserID, &s.TotalGames, &s.CompletedGames, &s.PlayingGames,
		&s.BackloggedGames, &s.DroppedGames, &s.OnHoldGames, &s.TotalHours, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Statistics{}, usecase.ErrNotFound
		}
		return entity.Statistics{}, err
	}
	return s, nil
}

// Recompute rebuilds the aggregate row from user_games in one statement.
func (r *StatisticsPG) Recompute(ctx context.Context, userID string) error {
	const query = `
	INSERT INTO user_statistics (user_id, total_games, completed_games, playing_games,
		backlogged_games, dropped_games, on_hold_games, total_hours, updated_at)
	SELECT
		$1,
		COUNT(*),
		COUNT(*) FILTER (WHERE status = 'completed'),
		COUNT(*) FILTER (WHERE status = 'playing'),
		COUNT(*) FILTER (WHERE status = 'backlogged'),
		COUNT(*) FILTER (WHERE status = 'dropped'),
		COUNT(*) FILTER (WHERE status = 'on_hold'),
		COALESCE(SUM(hours_played), 0),
		now()
	FROM user_games
	WHERE user_id = $1
	ON CONFLICT (user_id) DO UPDATE SET
		total_games = EXCLUDED.total_games,
		completed_games = EXCLUDED.completed_games,
		playing_games = EXCLUDED.playing_games,
		backlogged_games = EXCLUDED.backlogged_games,
		dropped_games = EXCLUDED.dropped_games,
		on_hold_games = EXCLUDED.on_hold_games,
		total_hours = EXCLUDED.total_hours,
		updated_at = now()
	`
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("recompute statistics: %w", err)
	}
	return nil
}
