package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"campaign-pulse/internal/core/domain"
	"campaign-pulse/internal/core/port"
)

// campaignView is the JSON shape of a campaign with its computed health.
type campaignView struct {
	ID                 int64                 `json:"id"`
	Name               string                `json:"name"`
	Status             domain.CampaignStatus `json:"status"`
	Health             int                   `json:"health"`
	ServiceGoals       []domain.ServiceGoal  `json:"service_goals"`
	CurrentViews       int64                 `json:"current_views"`
	CurrentLikes       int64                 `json:"current_likes"`
	CurrentComments    int64                 `json:"current_comments"`
	ManualOverride     int64                 `json:"manual_progress_override"`
	StartDate          *time.Time            `json:"start_date,omitempty"`
	EndDate            *time.Time            `json:"end_date,omitempty"`
	ViewsStalled       bool                  `json:"views_stalled"`
	InFixer            bool                  `json:"in_fixer"`
	FixerStatus        domain.FixerStatus    `json:"fixer_status"`
	FixerExternalID    string                `json:"fixer_external_id,omitempty"`
	TechnicalSetupDone bool                  `json:"technical_setup_complete"`
}

func toView(o port.CampaignOverview) campaignView {
	c := o.Campaign
	return campaignView{
		ID:                 c.ID,
		Name:               c.Name,
		Status:             c.Status,
		Health:             o.Health,
		ServiceGoals:       c.ServiceGoals,
		CurrentViews:       c.CurrentViews,
		CurrentLikes:       c.CurrentLikes,
		CurrentComments:    c.CurrentComments,
		ManualOverride:     c.ManualProgressOverride,
		StartDate:          c.StartDate,
		EndDate:            c.EndDate,
		ViewsStalled:       c.ViewsStalled,
		InFixer:            c.InFixer,
		FixerStatus:        c.FixerStatus,
		FixerExternalID:    c.FixerExternalID,
		TechnicalSetupDone: c.TechnicalSetupComplete(),
	}
}

// campaignID extracts and parses the {id} path parameter.
func campaignID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// handleListCampaigns returns all campaigns with computed health scores.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	overviews, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.logger.Error("list campaigns error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	views := make([]campaignView, 0, len(overviews))
	for _, o := range overviews {
		views = append(views, toView(o))
	}
	h.writeJSON(w, http.StatusOK, views)
}

// handleGetCampaign returns one campaign with its computed health score.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	overview, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.respondError(w, id, err)
		return
	}
	detail := struct {
		campaignView
		Client      string `json:"client,omitempty"`
		Salesperson string `json:"salesperson,omitempty"`
	}{campaignView: toView(*overview)}
	if overview.Client != nil {
		detail.Client = overview.Client.Name
	}
	if overview.Salesperson != nil {
		detail.Salesperson = overview.Salesperson.Name
	}
	h.writeJSON(w, http.StatusOK, detail)
}

// handleHealthScore computes the health score for a campaign. An
// optional `override` query parameter supplies an operator-entered view
// count mid-edit, before the stored value is persisted.
func (h *Handler) handleHealthScore(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	override := domain.NoOverride()
	if raw := r.URL.Query().Get("override"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			http.Error(w, "invalid override", http.StatusBadRequest)
			return
		}
		override = domain.OverrideOf(n)
	}
	score, err := h.svc.HealthScore(r.Context(), id, override)
	if err != nil {
		h.respondError(w, id, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int{"health": score})
}

// handleActivate transitions a campaign to active. A `force=true` query
// parameter bypasses the technical setup gate.
func (h *Handler) handleActivate(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	force := r.URL.Query().Get("force") == "true"
	c, err := h.svc.Activate(r.Context(), id, force, actorEmail(r))
	if err != nil {
		if errors.Is(err, port.ErrSetupIncomplete) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		h.respondError(w, id, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"id":     c.ID,
		"status": c.Status,
	})
}

// actorEmail identifies the operator behind a request for notification
// payloads. Authentication is handled upstream; only the header is read.
func actorEmail(r *http.Request) string {
	return r.Header.Get("X-Actor-Email")
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// respondError maps usecase errors onto HTTP status codes.
func (h *Handler) respondError(w http.ResponseWriter, id int64, err error) {
	var verr *port.ValidationError
	switch {
	case errors.Is(err, port.ErrCampaignNotFound):
		http.Error(w, "campaign not found", http.StatusNotFound)
	case errors.Is(err, port.ErrRemoteCampaignNotFound):
		http.Error(w, "remote campaign not found", http.StatusConflict)
	case errors.Is(err, port.ErrOperationInFlight):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, port.ErrFixerAlreadyRunning),
		errors.Is(err, port.ErrFixerNotRunning):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.As(err, &verr):
		http.Error(w, verr.Error(), http.StatusUnprocessableEntity)
	default:
		h.logger.Error("campaign operation error",
			slog.Int64("campaign_id", id), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
