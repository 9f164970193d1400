package usecase

import (
	"context"

	"backlogapi/internal/entity"
)

// LibraryListParams filters a user's library listing.
type LibraryListParams struct {
	Status string
	Search string
	Limit  int
	Offset int
}

type LibraryRepository interface {
	// List returns the filtered library rows plus the total row count for
	// pagination.
	List(ctx context.Context, userID string, p LibraryListParams) ([]entity.UserGame, int, error)
	// Get returns one library row owned by the user. ErrNotFound when the
	// row does not exist or belongs to someone else.
	Get(ctx context.Context, userID, id string) (entity.UserGame, error)
	Add(ctx context.Context, g *entity.UserGame) error
	// Update patches allowed fields only; unknown keys are ignored by the
	// implementation. Returns ErrNotFound when the row is not owned by the
	// user.
	Update(ctx context.Context, userID, id string, updates map[string]any) error
	Delete(ctx context.Context, userID, id string) error

	// RandomBacklogged picks one backlogged row for the user uniformly at
	// random. ErrNotFound when none remain.
	RandomBacklogged(ctx context.Context, userID string) (entity.UserGame, error)
	// ListReminderRecipients returns ids of users that have both a push
	// token and at least one backlogged row, as a single set intersection.
	ListReminderRecipients(ctx context.Context) ([]string, error)
}
