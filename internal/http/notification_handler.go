package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"backlogapi/internal/httpx"
	"backlogapi/internal/usecase"
)

type NotificationHandler struct {
	library  usecase.LibraryRepository
	tokens   usecase.PushTokenRepository
	resolver GameResolver
}

func NewNotificationHandler(library usecase.LibraryRepository, tokens usecase.PushTokenRepository, resolver GameResolver) *NotificationHandler {
	return &NotificationHandler{library: library, tokens: tokens, resolver: resolver}
}

// gameHighlights is the slice of a catalog document the reminder preview
// shows. Everything else in the payload stays opaque.
type gameHighlights struct {
	Name   string   `json:"name"`
	Rating *float64 `json:"rating"`
	Cover  *struct {
		URL string `json:"url"`
	} `json:"cover"`
}

// RandomBacklog previews what the nightly reminder would pick: one random
// backlogged game with its resolved catalog metadata.
func (h *NotificationHandler) RandomBacklog(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)

	game, err := h.library.RandomBacklogged(r.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "No backlogged games in your library", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	payload := map[string]any{
		"id":           game.ID,
		"igdb_game_id": game.IGDBGameID,
		"game_details": nil,
	}

	// Metadata resolution is best-effort here, same as the dispatcher.
	if details, _, err := h.resolver.ResolveOne(r.Context(), game.IGDBGameID); err == nil {
		payload["game_details"] = details

		var hl gameHighlights
		if json.Unmarshal(details, &hl) == nil {
			payload["name"] = hl.Name
			payload["rating"] = hl.Rating
			if hl.Cover != nil {
				payload["cover_url"] = hl.Cover.URL
			}
		}
	}

	httpx.JSONSuccess(w, map[string]any{"game": payload}, nil)
}

type saveTokenReq struct {
	Token string `json:"fcm_token" validate:"required,min=10"`
}

func (h *NotificationHandler) SaveToken(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)

	var req saveTokenReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := validateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	if err := h.tokens.Save(r.Context(), userID, req.Token); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, map[string]any{"registered": true}, nil)
}

func (h *NotificationHandler) DeleteToken(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)

	if err := h.tokens.Delete(r.Context(), userID); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessNoContent(w)
}
