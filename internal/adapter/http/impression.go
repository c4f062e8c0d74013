package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"admarket/internal/core/port"
)

// handleImpression records an impression for a tracking code. Repeats inside
// the impression window are acknowledged without a second record, so the call
// is idempotent for the client. Impressions never affect billing.
func (h *Handler) handleImpression(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		http.Error(w, "missing code", http.StatusBadRequest)
		return
	}
	err := h.engine.TrackImpression(r.Context(), port.ImpressionRequest{
		Code: code,
		IP:   clientIP(r),
	})
	if err != nil {
		if errors.Is(err, port.ErrAssignmentNotFound) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("impression error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
