package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"admarket/internal/core/domain"
)

type adRequestBody struct {
	PartnerID int64  `json:"partner_id"`
	Category  string `json:"category"`
	Geo       string `json:"geo"`
	Device    string `json:"device"`
	Placement string `json:"placement"`
}

type fillResponse struct {
	Filled         bool                   `json:"filled"`
	AssignmentCode string                 `json:"assignment_code"`
	TrackingURL    string                 `json:"tracking_url"`
	Ad             any                    `json:"ad"`
	Explanation    string                 `json:"explanation"`
	ScoreBreakdown *domain.ScoreBreakdown `json:"score_breakdown"`
}

type noFillResponse struct {
	Filled bool                `json:"filled"`
	Reason domain.NoFillReason `json:"reason"`
}

// handleAdRequest runs the decision engine for a partner's ad request. The
// body carries the partner identity and optional targeting hints. A no-fill
// is a structured 200 response, not an error; only system faults produce 500.
func (h *Handler) handleAdRequest(w http.ResponseWriter, r *http.Request) {
	var body adRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if body.PartnerID <= 0 {
		http.Error(w, "missing partner_id", http.StatusBadRequest)
		return
	}

	decision, err := h.engine.RequestAd(r.Context(), domain.AdRequest{
		RequestID: middleware.GetReqID(r.Context()),
		PartnerID: body.PartnerID,
		Category:  body.Category,
		Geo:       body.Geo,
		Device:    body.Device,
		Placement: body.Placement,
	})
	if err != nil {
		h.logger.Error("request ad error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	var payload any
	if decision.Filled {
		payload = fillResponse{
			Filled:         true,
			AssignmentCode: decision.AssignmentCode,
			TrackingURL:    decision.TrackingURL,
			Ad:             decision.Ad,
			Explanation:    decision.Explanation,
			ScoreBreakdown: decision.Breakdown,
		}
	} else {
		payload = noFillResponse{Filled: false, Reason: decision.Reason}
	}
	if err = json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
