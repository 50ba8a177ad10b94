package httpadapter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaign-pulse/internal/core/port"
)

// Poller controls per-campaign status polling. A successful fixer start
// begins watching the campaign; a stop ends it.
type Poller interface {
	Watch(ctx context.Context, id int64)
	Unwatch(id int64)
}

// AvailabilityGate reports whether the external fixer service is
// currently reachable. The advisory health checker implements it; the
// handler uses it to gate whether a start is accepted.
type AvailabilityGate interface {
	Available() bool
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the usecase to execute business logic, the status poller
// and availability gate for fixer wiring, and a logger for structured
// logging. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.CampaignUseCase
	poller Poller
	gate   AvailabilityGate
	logger *slog.Logger
	router chi.Router

	// pollCtx is the parent of every per-campaign polling loop so a
	// server shutdown cancels them all.
	pollCtx context.Context
}

// NewHandler creates a handler with all routes configured. pollCtx
// bounds the lifetime of polling loops started by fixer starts.
func NewHandler(pollCtx context.Context, svc port.CampaignUseCase, poller Poller, gate AvailabilityGate, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, poller: poller, gate: gate, logger: logger, pollCtx: pollCtx}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Get("/campaigns/{id}/health", h.handleHealthScore)
		r.Post("/campaigns/{id}/activate", h.handleActivate)
		r.Post("/campaigns/{id}/fixer/start", h.handleStartFixer)
		r.Post("/campaigns/{id}/fixer/stop", h.handleStopFixer)
		r.Get("/campaigns/{id}/fixer/status", h.handleFixerStatus)
		r.Get("/fixer/health", h.handleFixerHealth)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
