package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"backlogapi/internal/httpx"
	"backlogapi/internal/metadata"
)

// CatalogClient is the slice of the IGDB client the games endpoints need.
type CatalogClient interface {
	Search(ctx context.Context, q string, limit, offset int) ([]json.RawMessage, error)
	Popular(ctx context.Context, limit int) ([]json.RawMessage, error)
}

// GameResolver is the cache-aside resolution path.
type GameResolver interface {
	ResolveOne(ctx context.Context, gameID int64) (json.RawMessage, bool, error)
	ResolveMany(ctx context.Context, gameIDs []int64) []metadata.Result
}

type GamesHandler struct {
	catalog  CatalogClient
	resolver GameResolver
}

func NewGamesHandler(catalog CatalogClient, resolver GameResolver) *GamesHandler {
	return &GamesHandler{catalog: catalog, resolver: resolver}
}

// gameEnvelope mirrors the library listing row shape, so search results
// and library rows look alike to clients.
type gameEnvelope struct {
	GameDetails json.RawMessage `json:"game_details"`
}

func wrapGames(games []json.RawMessage) []gameEnvelope {
	out := make([]gameEnvelope, len(games))
	for i, g := range games {
		out[i] = gameEnvelope{GameDetails: g}
	}
	return out
}

func (h *GamesHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Search query is required", nil)
		return
	}

	limit := queryInt(r, "limit", 10, 50)
	offset := queryIntMin(r, "offset", 0)

	games, err := h.catalog.Search(r.Context(), q, limit, offset)
	if err != nil {
		catalogError(w, err)
		return
	}

	httpx.JSONSuccess(w, map[string]any{
		"games":  wrapGames(games),
		"count":  len(games),
		"limit":  limit,
		"offset": offset,
	}, nil)
}

func (h *GamesHandler) Popular(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 20, 50)

	games, err := h.catalog.Popular(r.Context(), limit)
	if err != nil {
		catalogError(w, err)
		return
	}

	httpx.JSONSuccess(w, map[string]any{
		"games": wrapGames(games),
		"count": len(games),
		"limit": limit,
	}, nil)
}

// GetByID serves a single catalog document through the metadata cache and
// reports whether the response was a fresh cache hit.
func (h *GamesHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	gameID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || gameID <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Valid game ID is required", nil)
		return
	}

	game, cached, err := h.resolver.ResolveOne(r.Context(), gameID)
	if err != nil {
		catalogError(w, err)
		return
	}

	httpx.JSONSuccess(w, map[string]any{
		"game":   game,
		"cached": cached,
	}, nil)
}

func queryInt(r *http.Request, key string, def, max int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v <= 0 || v > max {
		return def
	}
	return v
}

func queryIntMin(r *http.Request, key string, min int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v < min {
		return min
	}
	return v
}
