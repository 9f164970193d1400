// Package metadata resolves IGDB game ids to catalog documents through a
// cache-aside store with a fixed freshness window.
package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"backlogapi/internal/usecase"
)

// DefaultTTL is the freshness window for cached catalog documents.
const DefaultTTL = 7 * 24 * time.Hour

// PlaceholderName stands in for a game whose metadata could not be
// resolved; a degraded notification beats no notification.
const PlaceholderName = "a game"

type State int

const (
	Miss State = iota
	Stale
	Fresh
)

// Fetcher is the catalog-client side of the cache-aside path.
type Fetcher interface {
	GameByID(ctx context.Context, gameID int64) (json.RawMessage, error)
}

type Resolver struct {
	cache   usecase.GameCacheRepository
	fetcher Fetcher
	ttl     time.Duration
	now     func() time.Time
}

func NewResolver(cache usecase.GameCacheRepository, fetcher Fetcher, ttl time.Duration) *Resolver {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Resolver{cache: cache, fetcher: fetcher, ttl: ttl, now: time.Now}
}

// Lookup classifies the cache entry for gameID. A Stale result still
// carries the payload and its age, so a serve-stale-while-refetching path
// could be added without touching the store.
func (r *Resolver) Lookup(ctx context.Context, gameID int64) (State, json.RawMessage, time.Duration, error) {
	entry, err := r.cache.Get(ctx, gameID)
	if errors.Is(err, usecase.ErrNotFound) {
		return Miss, nil, 0, nil
	}
	if err != nil {
		return Miss, nil, 0, err
	}
	age := r.now().Sub(entry.CachedAt)
	if age < r.ttl {
		return Fresh, entry.GameData, age, nil
	}
	return Stale, entry.GameData, age, nil
}

// ResolveOne returns the catalog document for gameID. A fresh cache hit is
// returned as-is with cached=true; Stale and Miss both trigger a refetch
// that is written back with a reset timestamp.
func (r *Resolver) ResolveOne(ctx context.Context, gameID int64) (json.RawMessage, bool, error) {
	state, payload, _, err := r.Lookup(ctx, gameID)
	if err != nil {
		return nil, false, err
	}
	if state == Fresh {
		return payload, true, nil
	}

	details, err := r.fetcher.GameByID(ctx, gameID)
	if err != nil {
		return nil, false, err
	}
	if err := r.cache.Upsert(ctx, gameID, details); err != nil {
		// A failed write just means a refetch next time; the caller still
		// gets the payload.
		log.Printf("metadata: cache upsert failed igdb_game_id=%d err=%v", gameID, err)
	}
	return details, false, nil
}

// Result is the per-id outcome of ResolveMany. Exactly one of Details and
// Err is meaningful.
type Result struct {
	GameID  int64
	Details json.RawMessage
	Err     error
}

// ResolveMany resolves each id independently. A failure on one id never
// prevents resolution of the others and no aggregate error is returned;
// callers substitute null metadata for failed entries.
func (r *Resolver) ResolveMany(ctx context.Context, gameIDs []int64) []Result {
	results := make([]Result, 0, len(gameIDs))
	for _, id := range gameIDs {
		details, _, err := r.ResolveOne(ctx, id)
		if err != nil {
			log.Printf("metadata: resolve failed igdb_game_id=%d err=%v", id, err)
			results = append(results, Result{GameID: id, Err: err})
			continue
		}
		results = append(results, Result{GameID: id, Details: details})
	}
	return results
}

// DisplayName extracts the display name for gameID, falling back to a
// generic placeholder on any failure.
func (r *Resolver) DisplayName(ctx context.Context, gameID int64) string {
	details, _, err := r.ResolveOne(ctx, gameID)
	if err != nil {
		return PlaceholderName
	}
	var doc struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(details, &doc); err != nil || doc.Name == "" {
		return PlaceholderName
	}
	return doc.Name
}
