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

type PushTokenPG struct {
	db *pgxpool.Pool
}

func NewPushTokenPG(db *pgxpool.Pool) *PushTokenPG {
	return &PushTokenPG{db: db}
}

func (r *PushTokenPG) Get(ctx context.Context, userID string) (entity.PushToken, error) {
	const query = `
	SELECT user_id, fcm_token, updated_at
	FROM user_fcm_tokens
	WHERE user_id = $1
	`
	var t entity.PushToken
	err := r.db.QueryRow(ctx, query, userID).Scan(&t.UserID, &t.Token, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.PushToken{}, usecase.ErrNotFound
		}
		return entity.PushToken{}, err
	}
	return t, nil
}

func (r *PushTokenPG) Save(ctx context.Context, userID, token string) error {
	const query = `
	INSERT INTO user_fcm_tokens (user_id, fcm_token, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (user_id) DO UPDATE SET
		fcm_token = EXCLUDED.fcm_token,
		updated_at = now()
	`
	if _, err := r.db.Exec(ctx, query, userID, token); err != nil {
		return fmt.Errorf("save push token: %w", err)
	}
	return nil
}

func (r *PushTokenPG) Delete(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM user_fcm_tokens WHERE user_id = $1`, userID)
	return err
}
