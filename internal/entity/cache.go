package entity

import "time"

// GameCacheEntry holds the raw catalog document for one IGDB game id.
// At most one entry exists per id; a refetch replaces the payload and
// resets CachedAt.
type GameCacheEntry struct {
	IGDBGameID int64
	GameData   []byte
	CachedAt   time.Time
}
