package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"admarket/internal/core/port"
)

// handleAdClick resolves a tracking code, adjudicates the click and redirects
// to the ad's destination. Rejection is silent to the browser: any resolved
// code redirects, and only an unknown code produces 404. Internal errors are
// logged and treated as 404 to avoid leaking information.
func (h *Handler) handleAdClick(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		http.Error(w, "missing code", http.StatusBadRequest)
		return
	}
	result, err := h.engine.TrackClick(r.Context(), port.ClickRequest{
		Code:      code,
		IP:        clientIP(r),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		if !errors.Is(err, port.ErrAssignmentNotFound) {
			h.logger.Error("click error", slog.Any("error", err))
		}
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, result.DestinationURL, http.StatusFound)
}
