package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"campaign-pulse/internal/core/domain"
	"campaign-pulse/internal/core/port"
)

// CampaignUseCase implements the health scoring and ratio-fixer lifecycle
// operations. It orchestrates the repository, the external fixer service,
// the campaign cache and the notification sink.
//
// Start/stop for a given campaign id never race: an in-flight set rejects
// overlapping lifecycle operations so local and remote state cannot be
// interleaved into inconsistency.
type CampaignUseCase struct {
	repo     port.CampaignRepository
	fixer    port.FixerClient
	cache    port.CampaignCache
	notifier port.Notifier
	logger   *slog.Logger

	// now is injectable so scoring and timestamps are testable with a
	// frozen clock.
	now func() time.Time

	mu       sync.Mutex
	inFlight map[int64]struct{}
}

// NewCampaignUseCase creates the usecase with its collaborators.
func NewCampaignUseCase(
	repo port.CampaignRepository,
	fixer port.FixerClient,
	cache port.CampaignCache,
	notifier port.Notifier,
	logger *slog.Logger,
) *CampaignUseCase {
	return &CampaignUseCase{
		repo:     repo,
		fixer:    fixer,
		cache:    cache,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
		inFlight: make(map[int64]struct{}),
	}
}

// ListCampaigns returns all campaigns with computed health scores. The
// collection is served from cache when fresh; a cold or failing cache
// falls through to the repository.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context) ([]port.CampaignOverview, error) {
	campaigns, ok := u.cache.GetList(ctx)
	if !ok {
		var err error
		campaigns, err = u.repo.ListCampaigns(ctx)
		if err != nil {
			return nil, err
		}
		if err = u.cache.SetList(ctx, campaigns); err != nil {
			u.logger.Warn("campaign cache set failed", slog.Any("error", err))
		}
	}
	today := u.now()
	overviews := make([]port.CampaignOverview, 0, len(campaigns))
	for _, c := range campaigns {
		overviews = append(overviews, port.CampaignOverview{
			Campaign: c,
			Health:   domain.HealthScore(c, domain.NoOverride(), today),
		})
	}
	return overviews, nil
}

// GetCampaign returns one campaign with its computed health score and
// the client and salesperson references for display. Party lookups are
// best effort; a failed lookup leaves the reference nil.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id int64) (*port.CampaignOverview, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	overview := &port.CampaignOverview{
		Campaign: *c,
		Health:   domain.HealthScore(*c, domain.NoOverride(), u.now()),
	}
	if overview.Client, err = u.repo.GetClient(ctx, c.ClientID); err != nil {
		u.logger.Warn("client lookup failed",
			slog.Int64("client_id", c.ClientID), slog.Any("error", err))
		overview.Client = nil
	}
	if overview.Salesperson, err = u.repo.GetSalesperson(ctx, c.SalespersonID); err != nil {
		u.logger.Warn("salesperson lookup failed",
			slog.Int64("salesperson_id", c.SalespersonID), slog.Any("error", err))
		overview.Salesperson = nil
	}
	return overview, nil
}

// HealthScore computes the score for a campaign with a caller-supplied
// override taking precedence over the stored one.
func (u *CampaignUseCase) HealthScore(ctx context.Context, id int64, override domain.Override) (int, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return 0, err
	}
	return domain.HealthScore(*c, override, u.now()), nil
}

// Activate transitions a campaign to active. The technical setup
// predicate gates the transition unless the caller explicitly forces it.
func (u *CampaignUseCase) Activate(ctx context.Context, id int64, force bool, actor string) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Status == domain.CampaignActive {
		return c, nil
	}
	if !force && !c.TechnicalSetupComplete() {
		return nil, port.ErrSetupIncomplete
	}
	previous := c.Status
	if err = u.repo.UpdateStatus(ctx, id, domain.CampaignActive); err != nil {
		return nil, err
	}
	c.Status = domain.CampaignActive
	u.afterTransition(ctx, domain.NewStatusChangeEvent(*c, string(domain.CampaignActive), string(previous), actor, u.now()))
	return c, nil
}

// StartFixer engages the external automation service for a campaign.
// Prerequisites are validated before any remote call is made; a remote
// failure leaves local state untouched. Local persistence of the new
// state happens before success is reported to the caller.
func (u *CampaignUseCase) StartFixer(ctx context.Context, id int64, actor string) (*domain.Campaign, error) {
	if !u.acquire(id) {
		return nil, port.ErrOperationInFlight
	}
	defer u.release(id)

	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.FixerStatus == domain.FixerRunning {
		return nil, port.ErrFixerAlreadyRunning
	}
	if missing := c.MissingFixerPrereqs(); len(missing) > 0 {
		return nil, &port.ValidationError{Fields: missing}
	}

	resp, err := u.fixer.Start(ctx, port.FixerStartRequest{
		CampaignID:        c.ID,
		VideoURL:          c.VideoURL,
		VideoID:           c.VideoID,
		Genre:             c.Genre,
		CommentsSheetURL:  c.CommentsSheetURL,
		WaitTime:          c.WaitTime,
		MinimumEngagement: c.MinimumEngagement,
		CommentServerID:   c.CommentServerID,
		LikeServerID:      c.LikeServerID,
		SheetTier:         c.SheetTier,
	})
	if err != nil {
		return nil, fmt.Errorf("fixer start: %w", err)
	}

	now := u.now()
	c.InFixer = true
	c.FixerStatus = domain.FixerRunning
	c.FixerExternalID = resp.CampaignID
	c.FixerStartedAt = &now
	c.FixerStoppedAt = nil
	c.LikesAtFixerStart = c.CurrentLikes
	c.CommentsAtFixerStart = c.CurrentComments
	if err = u.repo.UpdateFixerState(ctx, c); err != nil {
		return nil, fmt.Errorf("persist fixer start: %w", err)
	}

	u.afterTransition(ctx, domain.NewStatusChangeEvent(*c, "fixer_running", "fixer_stopped", actor, now))
	return c, nil
}

// StopFixer disengages the fixer for a campaign. The remote call is a
// single attempt; whether or not it succeeds, the local transition is
// always committed so the operator keeps control. A remote failure is
// reported as a warning in the result.
func (u *CampaignUseCase) StopFixer(ctx context.Context, id int64, actor string) (*port.StopFixerResult, error) {
	if !u.acquire(id) {
		return nil, port.ErrOperationInFlight
	}
	defer u.release(id)

	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.FixerStatus != domain.FixerRunning {
		return nil, port.ErrFixerNotRunning
	}

	var warning string
	if err := u.fixer.Stop(ctx, c.FixerExternalID); err != nil {
		warning = fmt.Sprintf("remote stop failed, fixer stopped locally: %v", err)
		u.logger.Warn("fixer remote stop failed",
			slog.Int64("campaign_id", id),
			slog.String("external_id", c.FixerExternalID),
			slog.Any("error", err))
	}

	now := u.now()
	c.InFixer = false
	c.FixerStatus = domain.FixerStopped
	c.FixerStoppedAt = &now
	if err = u.repo.UpdateFixerState(ctx, c); err != nil {
		return nil, fmt.Errorf("persist fixer stop: %w", err)
	}

	u.afterTransition(ctx, domain.NewStatusChangeEvent(*c, "fixer_stopped", "fixer_running", actor, now))
	return &port.StopFixerResult{Campaign: *c, RemoteWarning: warning}, nil
}

// PollFixerStatus fetches the live remote counters for a running fixer
// and reconciles them into the campaign record. It never transitions the
// fixer status by itself.
func (u *CampaignUseCase) PollFixerStatus(ctx context.Context, id int64) (*port.FixerStatusResponse, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.FixerStatus != domain.FixerRunning {
		return nil, port.ErrFixerNotRunning
	}
	status, err := u.fixer.Status(ctx, c.FixerExternalID)
	if err != nil {
		return nil, err
	}
	if err = u.repo.UpdateEngagementCounters(ctx, id, status.Views, status.Likes, status.Comments); err != nil {
		u.logger.Warn("counter reconciliation failed",
			slog.Int64("campaign_id", id), slog.Any("error", err))
	}
	return status, nil
}

// FixerHealth probes the remote automation service.
func (u *CampaignUseCase) FixerHealth(ctx context.Context) (*port.FixerHealthResponse, error) {
	return u.fixer.Health(ctx)
}

// afterTransition runs the best-effort side effects of a committed state
// transition: cache invalidation and event dispatch. Failures are logged
// and never roll back the transition.
func (u *CampaignUseCase) afterTransition(ctx context.Context, event domain.StatusChangeEvent) {
	if err := u.cache.Invalidate(ctx); err != nil {
		u.logger.Warn("campaign cache invalidation failed", slog.Any("error", err))
	}
	if err := u.notifier.Notify(ctx, event); err != nil {
		u.logger.Warn("status change notification failed",
			slog.Int64("campaign_id", event.CampaignID),
			slog.String("status", event.Status),
			slog.Any("error", err))
	}
}

func (u *CampaignUseCase) acquire(id int64) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, taken := u.inFlight[id]; taken {
		return false
	}
	u.inFlight[id] = struct{}{}
	return true
}

func (u *CampaignUseCase) release(id int64) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.inFlight, id)
}
