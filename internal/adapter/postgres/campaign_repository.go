package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-pulse/internal/core/domain"
	"campaign-pulse/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Service goals are stored as JSONB and normalized to a list
// on scan, so legacy single-object rows keep working.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `
	id, name, client_id, salesperson_id, status, service_goals,
	current_views, current_likes, current_comments, manual_progress_override,
	start_date, end_date, desired_daily_views,
	views_stalled, stalling_detected_at,
	in_fixer, fixer_external_id, fixer_status, fixer_started_at, fixer_stopped_at,
	likes_at_fixer_start, comments_at_fixer_start,
	video_url, video_id, genre, comments_sheet_url,
	comment_server_id, like_server_id, wait_time, minimum_engagement, sheet_tier,
	created_at, updated_at`

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c        domain.Campaign
		goalsRaw []byte
	)
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.ClientID,
		&c.SalespersonID,
		&c.Status,
		&goalsRaw,
		&c.CurrentViews,
		&c.CurrentLikes,
		&c.CurrentComments,
		&c.ManualProgressOverride,
		&c.StartDate,
		&c.EndDate,
		&c.DesiredDailyViews,
		&c.ViewsStalled,
		&c.StallingDetectedAt,
		&c.InFixer,
		&c.FixerExternalID,
		&c.FixerStatus,
		&c.FixerStartedAt,
		&c.FixerStoppedAt,
		&c.LikesAtFixerStart,
		&c.CommentsAtFixerStart,
		&c.VideoURL,
		&c.VideoID,
		&c.Genre,
		&c.CommentsSheetURL,
		&c.CommentServerID,
		&c.LikeServerID,
		&c.WaitTime,
		&c.MinimumEngagement,
		&c.SheetTier,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return c, err
	}
	c.ServiceGoals = domain.NormalizeServiceGoals(goalsRaw)
	return c, nil
}

// GetCampaign returns a campaign by id, or port.ErrCampaignNotFound.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCampaigns returns all campaigns ordered by id.
func (r *CampaignRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// UpdateStatus persists a campaign status transition.
func (r *CampaignRepository) UpdateStatus(ctx context.Context, id int64, status domain.CampaignStatus) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET status = $1, updated_at = now() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrCampaignNotFound
	}
	return nil
}

// UpdateFixerState persists the fixer lifecycle fields of the campaign.
func (r *CampaignRepository) UpdateFixerState(ctx context.Context, c *domain.Campaign) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET
		in_fixer = $1,
		fixer_status = $2,
		fixer_external_id = $3,
		fixer_started_at = $4,
		fixer_stopped_at = $5,
		likes_at_fixer_start = $6,
		comments_at_fixer_start = $7,
		updated_at = now()
	WHERE id = $8`,
		c.InFixer, c.FixerStatus, c.FixerExternalID,
		c.FixerStartedAt, c.FixerStoppedAt,
		c.LikesAtFixerStart, c.CommentsAtFixerStart, c.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrCampaignNotFound
	}
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// UpdateEngagementCounters reconciles remotely reported counters into the
// campaign record.
func (r *CampaignRepository) UpdateEngagementCounters(ctx context.Context, id, views, likes, comments int64) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET
		current_views = $1,
		current_likes = $2,
		current_comments = $3,
		updated_at = now()
	WHERE id = $4`, views, likes, comments, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrCampaignNotFound
	}
	return nil
}

// GetClient returns a client by id for display lookups.
func (r *CampaignRepository) GetClient(ctx context.Context, id int64) (*domain.Client, error) {
	var cl domain.Client
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, created_at FROM clients WHERE id = $1`, id).
		Scan(&cl.ID, &cl.Name, &cl.Email, &cl.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cl, nil
}

// GetSalesperson returns a salesperson by id for display lookups.
func (r *CampaignRepository) GetSalesperson(ctx context.Context, id int64) (*domain.Salesperson, error) {
	var sp domain.Salesperson
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, commission_rate, created_at FROM salespersons WHERE id = $1`, id).
		Scan(&sp.ID, &sp.Name, &sp.Email, &sp.CommissionRate, &sp.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sp, nil
}
