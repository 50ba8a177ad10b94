package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo clients, salespersons and campaigns for local
// development.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	for i := 1; i <= 3; i++ {
		_, err := pool.Exec(ctx, `INSERT INTO clients (id, name, email, created_at)
VALUES ($1, $2, $3, now()) ON CONFLICT DO NOTHING`,
			i, fmt.Sprintf("Client %d", i), fmt.Sprintf("client%d@example.com", i))
		if err != nil {
			return err
		}
		_, err = pool.Exec(ctx, `INSERT INTO salespersons (id, name, email, commission_rate, created_at)
VALUES ($1, $2, $3, $4, now()) ON CONFLICT DO NOTHING`,
			i, fmt.Sprintf("Salesperson %d", i), fmt.Sprintf("sales%d@example.com", i), 0.1)
		if err != nil {
			return err
		}
	}

	for i := 1; i <= 5; i++ {
		goals := []map[string]any{
			{"service_type": "views", "goal_views": 100000},
		}
		goalsJSON, _ := json.Marshal(goals)
		start := time.Now().AddDate(0, 0, -10)
		end := start.AddDate(0, 0, 19)
		clientID := (i-1)%3 + 1
		_, err := pool.Exec(ctx, `INSERT INTO campaigns
    (id, name, client_id, salesperson_id, status, service_goals,
     current_views, start_date, end_date, desired_daily_views,
     video_url, video_id, genre, comments_sheet_url,
     comment_server_id, like_server_id, wait_time, minimum_engagement, sheet_tier,
     created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,now(),now())
ON CONFLICT DO NOTHING`,
			i, fmt.Sprintf("Campaign %d", i), clientID, clientID, "active", goalsJSON,
			40000, start, end, 5000,
			fmt.Sprintf("https://example.com/watch/%d", i), fmt.Sprintf("vid-%d", i),
			"music", fmt.Sprintf("https://sheets.example.com/%d", i),
			"srv-comments-1", "srv-likes-1", 300, 50, "standard")
		if err != nil {
			return err
		}
	}
	return nil
}
