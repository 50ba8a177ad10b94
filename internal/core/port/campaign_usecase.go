package port

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"campaign-pulse/internal/core/domain"
)

var (
	// ErrOperationInFlight rejects a start/stop while another lifecycle
	// operation for the same campaign has not finished.
	ErrOperationInFlight = errors.New("another fixer operation is in flight for this campaign")
	// ErrFixerAlreadyRunning rejects a start for a campaign whose fixer is
	// already in the running state.
	ErrFixerAlreadyRunning = errors.New("ratio fixer is already running")
	// ErrFixerNotRunning rejects stop/poll for a campaign whose fixer is
	// not running.
	ErrFixerNotRunning = errors.New("ratio fixer is not running")
	// ErrSetupIncomplete rejects activation while the technical setup
	// predicate does not hold and the caller did not force.
	ErrSetupIncomplete = errors.New("technical setup incomplete: desired daily views, comments sheet and both server ids are required")
)

// ValidationError names the fields missing before an operation may
// proceed. It is raised synchronously, before any remote call.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// CampaignOverview pairs a campaign with its computed health score for
// list and detail displays. Client and Salesperson are populated on
// detail lookups only and may be nil when the referenced row is gone.
type CampaignOverview struct {
	Campaign    domain.Campaign
	Health      int
	Client      *domain.Client
	Salesperson *domain.Salesperson
}

// StopFixerResult reports a completed stop transition. RemoteWarning is
// set when the remote call failed but the local transition was committed
// anyway; it is advisory, never an error.
type StopFixerResult struct {
	Campaign      domain.Campaign
	RemoteWarning string
}

// CampaignUseCase is the primary port into the health and pacing engine.
type CampaignUseCase interface {
	// ListCampaigns returns all campaigns with computed health scores,
	// served from cache when fresh.
	ListCampaigns(ctx context.Context) ([]CampaignOverview, error)
	// GetCampaign returns one campaign with its computed health score.
	GetCampaign(ctx context.Context, id int64) (*CampaignOverview, error)
	// HealthScore computes the score for a campaign, letting the caller
	// supply an override mid-edit before the stored value is persisted.
	HealthScore(ctx context.Context, id int64, override domain.Override) (int, error)
	// Activate transitions a campaign to active. Unless force is set the
	// technical setup predicate must hold.
	Activate(ctx context.Context, id int64, force bool, actor string) (*domain.Campaign, error)

	// StartFixer engages the external automation service for a campaign.
	// Prerequisites are validated before any remote call; remote failure
	// leaves local state untouched.
	StartFixer(ctx context.Context, id int64, actor string) (*domain.Campaign, error)
	// StopFixer disengages the fixer. The local transition is committed
	// even when the remote call fails; the failure becomes a warning.
	StopFixer(ctx context.Context, id int64, actor string) (*StopFixerResult, error)
	// PollFixerStatus fetches the live remote counters for a running fixer
	// and reconciles them into local campaign state.
	PollFixerStatus(ctx context.Context, id int64) (*FixerStatusResponse, error)
	// FixerHealth probes the remote automation service.
	FixerHealth(ctx context.Context) (*FixerHealthResponse, error)
}
