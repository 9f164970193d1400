package http

import (
	"errors"
	"net/http"

	"backlogapi/internal/httpx"
	"backlogapi/internal/platform/igdb"
)

// catalogError maps the catalog client's typed failures onto envelope
// responses. Configuration and auth problems are our side's fault, not the
// caller's, so they surface as gateway-class statuses.
func catalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, igdb.ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Game not found", nil)
	case errors.Is(err, igdb.ErrRequest):
		httpx.JSONError(w, http.StatusBadRequest, "UPSTREAM_REQUEST", "Catalog rejected the request", nil)
	case errors.Is(err, igdb.ErrNotConfigured):
		httpx.JSONError(w, http.StatusServiceUnavailable, "NOT_CONFIGURED", "Catalog credentials not configured", nil)
	case errors.Is(err, igdb.ErrUnavailable):
		httpx.JSONError(w, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "Catalog temporarily unavailable", nil)
	case errors.Is(err, igdb.ErrAuth):
		httpx.JSONError(w, http.StatusBadGateway, "UPSTREAM_AUTH", "Catalog authentication failed", nil)
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
