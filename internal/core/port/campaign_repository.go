package port

import (
	"context"
	"errors"

	"campaign-pulse/internal/core/domain"
)

var (
	// ErrCampaignNotFound is returned when no campaign exists for the id.
	ErrCampaignNotFound = errors.New("campaign not found")
)

// CampaignRepository defines the persistence layer for the pacing engine.
// It is an outbound port in hexagonal architecture; the relational store
// behind it is a collaborator, not part of the engine.
type CampaignRepository interface {
	// GetCampaign returns a campaign by id, or ErrCampaignNotFound.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// ListCampaigns returns all campaigns ordered by id.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// UpdateStatus persists a campaign status transition.
	UpdateStatus(ctx context.Context, id int64, status domain.CampaignStatus) error
	// UpdateFixerState persists the fixer lifecycle fields of the campaign:
	// in-fixer flag, status, external id, start/stop timestamps and the
	// likes/comments snapshots.
	UpdateFixerState(ctx context.Context, c *domain.Campaign) error
	// UpdateEngagementCounters reconciles remotely reported counters into
	// the campaign record.
	UpdateEngagementCounters(ctx context.Context, id, views, likes, comments int64) error

	// GetClient returns a client by id for display lookups.
	GetClient(ctx context.Context, id int64) (*domain.Client, error)
	// GetSalesperson returns a salesperson by id for display lookups.
	GetSalesperson(ctx context.Context, id int64) (*domain.Salesperson, error)
}
