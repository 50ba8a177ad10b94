package httpadapter

import (
	"log/slog"
	"net/http"
)

// handleStartFixer engages the ratio fixer for a campaign. The start is
// refused while the advisory health check reports the remote service
// unreachable. On success the campaign enters status polling.
func (h *Handler) handleStartFixer(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	if !h.gate.Available() {
		http.Error(w, "fixer service unavailable", http.StatusServiceUnavailable)
		return
	}
	c, err := h.svc.StartFixer(r.Context(), id, actorEmail(r))
	if err != nil {
		h.respondError(w, id, err)
		return
	}
	h.poller.Watch(h.pollCtx, id)
	h.writeJSON(w, http.StatusOK, map[string]any{
		"id":                c.ID,
		"in_fixer":          c.InFixer,
		"fixer_status":      c.FixerStatus,
		"fixer_external_id": c.FixerExternalID,
	})
}

// handleStopFixer disengages the ratio fixer. The local transition is
// committed even when the remote call failed; in that case the response
// carries a warning instead of an error.
func (h *Handler) handleStopFixer(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	result, err := h.svc.StopFixer(r.Context(), id, actorEmail(r))
	if err != nil {
		h.respondError(w, id, err)
		return
	}
	h.poller.Unwatch(id)
	body := map[string]any{
		"id":           result.Campaign.ID,
		"in_fixer":     result.Campaign.InFixer,
		"fixer_status": result.Campaign.FixerStatus,
	}
	if result.RemoteWarning != "" {
		body["warning"] = result.RemoteWarning
	}
	h.writeJSON(w, http.StatusOK, body)
}

// handleFixerStatus returns the live remote counters for a running
// fixer, including engagement gained since the fixer started.
func (h *Handler) handleFixerStatus(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	status, err := h.svc.PollFixerStatus(r.Context(), id)
	if err != nil {
		h.respondError(w, id, err)
		return
	}
	overview, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.respondError(w, id, err)
		return
	}
	c := overview.Campaign
	h.writeJSON(w, http.StatusOK, map[string]any{
		"status":           status.Status,
		"views":            status.Views,
		"likes":            status.Likes,
		"comments":         status.Comments,
		"desired_likes":    status.DesiredLikes,
		"desired_comments": status.DesiredComments,
		"ordered_likes":    status.OrderedLikes,
		"ordered_comments": status.OrderedComments,
		"likes_gained":     gained(status.Likes, c.LikesAtFixerStart),
		"comments_gained":  gained(status.Comments, c.CommentsAtFixerStart),
	})
}

// gained computes a non-negative delta since the fixer-start snapshot.
func gained(current, atStart int64) int64 {
	if current <= atStart {
		return 0
	}
	return current - atStart
}

// handleFixerHealth probes the remote automation service and reports its
// availability.
func (h *Handler) handleFixerHealth(w http.ResponseWriter, r *http.Request) {
	health, err := h.svc.FixerHealth(r.Context())
	if err != nil {
		h.logger.Error("fixer health error", slog.Any("error", err))
		h.writeJSON(w, http.StatusOK, map[string]any{
			"status":    "unreachable",
			"available": false,
			"error":     err.Error(),
		})
		return
	}
	h.writeJSON(w, http.StatusOK, health)
}
