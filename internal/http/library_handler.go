package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"backlogapi/internal/entity"
	"backlogapi/internal/httpx"
	"backlogapi/internal/usecase"
)

type LibraryHandler struct {
	repo     usecase.LibraryRepository
	stats    usecase.StatisticsRepository
	resolver GameResolver
}

func NewLibraryHandler(repo usecase.LibraryRepository, stats usecase.StatisticsRepository, resolver GameResolver) *LibraryHandler {
	return &LibraryHandler{repo: repo, stats: stats, resolver: resolver}
}

type libraryRow struct {
	ID             string          `json:"id"`
	IGDBGameID     int64           `json:"igdb_game_id"`
	Status         string          `json:"status"`
	Rating         *float64        `json:"rating"`
	HoursPlayed    float64         `json:"hours_played"`
	Notes          string          `json:"notes,omitempty"`
	StartDate      *time.Time      `json:"start_date"`
	CompletionDate *time.Time      `json:"completion_date"`
	AddedAt        time.Time       `json:"added_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	GameDetails    json.RawMessage `json:"game_details"`
}

// List returns the user's library rows joined with catalog metadata. A
// metadata failure for one game yields a null game_details for that row;
// the listing itself still succeeds.
func (h *LibraryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)

	params := usecase.LibraryListParams{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("search"),
		Limit:  queryInt(r, "limit", 50, 100),
		Offset: queryIntMin(r, "offset", 0),
	}
	if params.Status != "" && !entity.ValidStatus(params.Status) {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status filter", nil)
		return
	}

	games, total, err := h.repo.List(r.Context(), userID, params)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	// Dedupe ids before resolving; several rows can reference one game.
	seen := make(map[int64]bool, len(games))
	ids := make([]int64, 0, len(games))
	for _, g := range games {
		if !seen[g.IGDBGameID] {
			seen[g.IGDBGameID] = true
			ids = append(ids, g.IGDBGameID)
		}
	}

	details := make(map[int64]json.RawMessage, len(ids))
	for _, res := range h.resolver.ResolveMany(r.Context(), ids) {
		if res.Err == nil {
			details[res.GameID] = res.Details
		}
	}

	rows := make([]libraryRow, 0, len(games))
	for _, g := range games {
		rows = append(rows, libraryRow{
			ID:             g.ID,
			IGDBGameID:     g.IGDBGameID,
			Status:         g.Status,
			Rating:         g.Rating,
			HoursPlayed:    g.HoursPlayed,
			Notes:          g.Notes,
			StartDate:      g.StartDate,
			CompletionDate: g.CompletionDate,
			AddedAt:        g.AddedAt,
			UpdatedAt:      g.UpdatedAt,
			GameDetails:    details[g.IGDBGameID],
		})
	}

	httpx.JSONSuccess(w, map[string]any{
		"games":  rows,
		"count":  len(rows),
		"total":  total,
		"limit":  params.Limit,
		"offset": params.Offset,
	}, nil)
}

// Get returns one library row with its resolved catalog document. A
// metadata failure degrades to game_details null, same as the listing.
func (h *LibraryHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	id := r.PathValue("id")

	g, err := h.repo.Get(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Game not found in your library", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	row := libraryRow{
		ID:             g.ID,
		IGDBGameID:     g.IGDBGameID,
		Status:         g.Status,
		Rating:         g.Rating,
		HoursPlayed:    g.HoursPlayed,
		Notes:          g.Notes,
		StartDate:      g.StartDate,
		CompletionDate: g.CompletionDate,
		AddedAt:        g.AddedAt,
		UpdatedAt:      g.UpdatedAt,
	}
	if details, _, err := h.resolver.ResolveOne(r.Context(), g.IGDBGameID); err == nil {
		row.GameDetails = details
	} else {
		log.Printf("library: metadata resolve failed igdb_game_id=%d err=%v", g.IGDBGameID, err)
	}

	httpx.JSONSuccess(w, map[string]any{"game": row}, nil)
}

type addGameReq struct {
	IGDBGameID int64    `json:"igdb_game_id" validate:"required,gt=0"`
	Status     string   `json:"status"`
	Rating     *float64 `json:"rating" validate:"omitempty,gte=0,lte=10"`
	Notes      string   `json:"notes"`
}

func (h *LibraryHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)

	var req addGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if req.Status == "" {
		req.Status = entity.StatusBacklogged
	}

	if details := validateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}
	if !entity.ValidStatus(req.Status) {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status", nil)
		return
	}

	game := &entity.UserGame{
		UserID:     userID,
		IGDBGameID: req.IGDBGameID,
		Status:     req.Status,
		Rating:     req.Rating,
		Notes:      req.Notes,
	}
	if err := h.repo.Add(r.Context(), game); err != nil {
		if errors.Is(err, usecase.ErrAlreadyExists) {
			httpx.JSONError(w, http.StatusConflict, "ALREADY_EXISTS", "Game already exists in your library", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	h.recomputeStats(r, userID)
	httpx.JSONSuccessCreated(w, map[string]any{"id": game.ID})
}

func (h *LibraryHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	id := r.PathValue("id")

	var updates map[string]any
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if status, ok := updates["status"].(string); ok && !entity.ValidStatus(status) {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status", nil)
		return
	}
	if rating, ok := updates["rating"].(float64); ok && (rating < 0 || rating > 10) {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Rating must be between 0 and 10", nil)
		return
	}

	if err := h.repo.Update(r.Context(), userID, id, updates); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Game not found in your library", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	h.recomputeStats(r, userID)
	httpx.JSONSuccess(w, nil, nil)
}

func (h *LibraryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	id := r.PathValue("id")

	if err := h.repo.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Game not found in your library", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	h.recomputeStats(r, userID)
	httpx.JSONSuccessNoContent(w)
}

// recomputeStats is best-effort; the mutation already succeeded.
func (h *LibraryHandler) recomputeStats(r *http.Request, userID string) {
	if err := h.stats.Recompute(r.Context(), userID); err != nil {
		log.Printf("library: statistics recompute failed user_id=%s err=%v", userID, err)
	}
}
