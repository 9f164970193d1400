package entity

import "time"

// Play statuses for a library row.
const (
	StatusPlaying    = "playing"
	StatusCompleted  = "completed"
	StatusOnHold     = "on_hold"
	StatusDropped    = "dropped"
	StatusBacklogged = "backlogged"
	StatusPlayed     = "played"
)

// Statuses lists every valid play status, in display order.
var Statuses = []string{
	StatusPlaying,
	StatusCompleted,
	StatusOnHold,
	StatusDropped,
	StatusBacklogged,
	StatusPlayed,
}

func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// UserGame is one row of a user's library. The IGDB id references the
// external catalog; metadata for it lives in the game cache, not here.
type UserGame struct {
	ID             string
	UserID         string
	IGDBGameID     int64
	Status         string
	Rating         *float64
	HoursPlayed    float64
	Notes          string
	StartDate      *time.Time
	CompletionDate *time.Time
	AddedAt        time.Time
	UpdatedAt      time.Time
}
