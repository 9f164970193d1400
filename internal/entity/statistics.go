package entity

import "time"

// Statistics is the stored per-user aggregate, recomputed after every
// library mutation.
type Statistics struct {
	UserID          string    `json:"user_id"`
	TotalGames      int       `json:"total_games"`
	CompletedGames  int       `json:"completed_games"`
	PlayingGames    int       `json:"playing_games"`
	BackloggedGames int       `json:"backlogged_games"`
	DroppedGames    int       `json:"dropped_games"`
	OnHoldGames     int       `json:"on_hold_games"`
	TotalHours      float64   `json:"total_hours"`
	UpdatedAt       time.Time `json:"updated_at"`
}
