package entity

import "time"

// PushToken is the FCM registration token for a user's device. One token
// per user; saving a new one replaces the old.
type PushToken struct {
	UserID    string
	Token     string
	UpdatedAt time.Time
}
