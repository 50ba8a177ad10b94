package domain

import "time"

// ServiceName identifies this engine in outbound notifications.
const ServiceName = "campaign-pulse"

// StatusChangeEvent records a committed state transition. Lifecycle
// operations return events instead of calling the notification sink
// directly; a dispatcher delivers them and swallows its own failures, so
// a dead sink can never roll back a transition.
type StatusChangeEvent struct {
	Service        string    `json:"service"`
	CampaignID     int64     `json:"campaignId"`
	CampaignName   string    `json:"campaignName"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previousStatus"`
	ActorEmail     string    `json:"actorEmail"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// NewStatusChangeEvent builds an event for a campaign transition.
func NewStatusChangeEvent(c Campaign, status, previous, actor string, at time.Time) StatusChangeEvent {
	return StatusChangeEvent{
		Service:        ServiceName,
		CampaignID:     c.ID,
		CampaignName:   c.Name,
		Status:         status,
		PreviousStatus: previous,
		ActorEmail:     actor,
		OccurredAt:     at,
	}
}
