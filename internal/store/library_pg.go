package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"backlogapi/internal/entity"
	"backlogapi/internal/usecase"
)

type LibraryPG struct {
	db *pgxpool.Pool
}

func NewLibraryPG(db *pgxpool.Pool) *LibraryPG {
	return &LibraryPG{db: db}
}

const userGameColumns = `ug.id, ug.user_id, ug.igdb_game_id, ug.status, ug.rating,
	ug.hours_played, COALESCE(ug.notes, ''), ug.start_date, ug.completion_date,
	ug.added_at, ug.updated_at`

func scanUserGame(row pgx.Row) (entity.UserGame, error) {
	var g entity.UserGame
	err := row.Scan(
		&g.ID, &g.UserID, &g.IGDBGameID, &g.Status, &g.Rating,
		&g.HoursPlayed, &g.Notes, &g.StartDate, &g.CompletionDate,
		&g.AddedAt, &g.UpdatedAt,
	)
	return g, err
}

func (r *LibraryPG) List(ctx context.Context, userID string, p usecase.LibraryListParams) ([]entity.UserGame, int, error) {
	clauses := []string{"ug.user_id = $1"}
	args := []any{userID}
	argn := 2

	if p.Status != "" {
		clauses = append(clauses, fmt.Sprintf("ug.status = $%d", argn))
		args = append(args, p.Status)
		argn++
	}

	// Search matches against the cached catalog document, so games the
	// catalog never resolved simply do not match.
	if p.Search != "" {
		clauses = append(clauses, fmt.Sprintf("gc.game_data::text ILIKE $%d", argn))
		args = append(args, "%"+p.Search+"%")
		argn++
	}

	where := "WHERE " + strings.Join(clauses, " AND ")
	from := `FROM user_games ug LEFT JOIN game_cache gc ON ug.igdb_game_id = gc.igdb_game_id`

	var total int
	countSQL := fmt.Sprintf("SELECT COUNT(*) %s %s", from, where)
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL := fmt.Sprintf(`
		SELECT %s
		%s
		%s
		ORDER BY ug.updated_at DESC
		LIMIT $%d OFFSET $%d`,
		userGameColumns, from, where, argn, argn+1)

	args = append(args, p.Limit, p.Offset)
	rows, err := r.db.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var games []entity.UserGame
	for rows.Next() {
		g, err := scanUserGame(rows)
		if err != nil {
			return nil, 0, err
		}
		games = append(games, g)
	}
	return games, total, rows.Err()
}

func (r *LibraryPG) Get(ctx context.Context, userID, id string) (entity.UserGame, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM user_games ug
		WHERE ug.user_id = $1 AND ug.id = $2`, userGameColumns)

	g, err := scanUserGame(r.db.QueryRow(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.UserGame{}, usecase.ErrNotFound
		}
		return entity.UserGame{}, err
	}
	return g, nil
}

func (r *LibraryPG) Add(ctx context.Context, g *entity.UserGame) error {
	const query = `
	INSERT INTO user_games (id, user_id, igdb_game_id, status, rating, notes)
	VALUES (gen_random_uuid(), $1, $2, $3, $4, NULLIF($5, ''))
	RETURNING id, hours_played, added_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, g.UserID, g.IGDBGameID, g.Status, g.Rating, g.Notes).
		Scan(&g.ID, &g.HoursPlayed, &g.AddedAt, &g.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 = unique_violation: game already in this user's library.
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return usecase.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// libraryUpdateColumns are the only patchable fields; anything else in the
// request body is dropped before it reaches SQL.
var libraryUpdateColumns = map[string]string{
	"status":          "status",
	"rating":          "rating",
	"hours_played":    "hours_played",
	"notes":           "notes",
	"start_date":      "start_date",
	"completion_date": "completion_date",
}

// buildLibraryUpdate turns a patch map into a SET clause over allowed
// columns only, with placeholders starting at $1.
func buildLibraryUpdate(updates map[string]any) (string, []any) {
	setClauses := make([]string, 0, len(updates))
	args := make([]any, 0, len(updates))
	for _, key := range []string{"status", "rating", "hours_played", "notes", "start_date", "completion_date"} {
		value, ok := updates[key]
		if !ok {
			continue
		}
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", libraryUpdateColumns[key], len(args)))
	}
	return strings.Join(setClauses, ", "), args
}

func (r *LibraryPG) Update(ctx context.Context, userID, id string, updates map[string]any) error {
	setClause, args := buildLibraryUpdate(updates)
	if setClause == "" {
		return nil
	}

	query := fmt.Sprintf(
		"UPDATE user_games SET %s, updated_at = now() WHERE user_id = $%d AND id = $%d",
		setClause, len(args)+1, len(args)+2)
	args = append(args, userID, id)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *LibraryPG) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM user_games WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *LibraryPG) RandomBacklogged(ctx context.Context, userID string) (entity.UserGame, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM user_games ug
		WHERE ug.user_id = $1 AND ug.status = $2
		ORDER BY random()
		LIMIT 1`, userGameColumns)

	g, err := scanUserGame(r.db.QueryRow(ctx, query, userID, entity.StatusBacklogged))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.UserGame{}, usecase.ErrNotFound
		}
		return entity.UserGame{}, err
	}
	return g, nil
}

func (r *LibraryPG) ListReminderRecipients(ctx context.Context) ([]string, error) {
	const query = `
	SELECT DISTINCT u.id
	FROM users u
	INNER JOIN user_fcm_tokens uft ON u.id = uft.user_id
	INNER JOIN user_games ug ON u.id = ug.user_id
	WHERE ug.status = $1
	`
	rows, err := r.db.Query(ctx, query, entity.StatusBacklogged)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var userIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		userIDs = append(userIDs, id)
	}
	return userIDs, rows.Err()
}
