package httpadapter

import (
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"admarket/internal/core/port"
	"admarket/internal/metrics"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the decision engine to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	engine port.AdEngine
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. The metrics handle
// may be nil, in which case no /metrics endpoint is mounted.
func NewHandler(engine port.AdEngine, stats *metrics.Metrics, logger *slog.Logger) *Handler {
	h := &Handler{engine: engine, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/ad/request", h.handleAdRequest)
		r.Get("/ad/click/{code}", h.handleAdClick)
		r.Post("/track/impression/{code}", h.handleImpression)
		r.Get("/stats/overview", h.handleStatsOverview)
	})
	if stats != nil {
		r.Method(http.MethodGet, "/metrics", stats.Handler())
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// clientIP returns the request's originating address. middleware.RealIP has
// already folded X-Forwarded-For into RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
