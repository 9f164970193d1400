package http

import (
	"errors"
	"net/http"

	"backlogapi/internal/entity"
	"backlogapi/internal/httpx"
	"backlogapi/internal/usecase"
)

type StatisticsHandler struct {
	repo usecase.StatisticsRepository
}

func NewStatisticsHandler(repo usecase.StatisticsRepository) *StatisticsHandler {
	return &StatisticsHandler{repo: repo}
}

func (h *StatisticsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.repo.Get(r.Context(), httpx.UserIDFrom(r))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			// No mutations yet means an all-zero aggregate, not an error.
			httpx.JSONSuccess(w, map[string]any{"statistics": entity.Statistics{UserID: httpx.UserIDFrom(r)}}, nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, map[string]any{"statistics": stats}, nil)
}
