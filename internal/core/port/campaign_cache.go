package port

import (
	"context"

	"campaign-pulse/internal/core/domain"
)

// CampaignCache holds a cached view of the campaign collection so
// dependent displays stay cheap between transitions. Every successful
// lifecycle transition invalidates it; a failed cache never blocks a
// read, callers fall back to the repository.
type CampaignCache interface {
	// GetList returns the cached campaign collection and whether it was
	// present.
	GetList(ctx context.Context) ([]domain.Campaign, bool)
	// SetList stores the campaign collection.
	SetList(ctx context.Context, campaigns []domain.Campaign) error
	// Invalidate drops the cached collection.
	Invalidate(ctx context.Context) error
}
