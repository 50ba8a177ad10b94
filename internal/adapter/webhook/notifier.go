// Package webhook delivers status-change events to the notification
// sink. Delivery is fire-and-forget.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"campaign-pulse/internal/core/domain"
)

// Notifier posts status-change events to a webhook URL. Errors are
// returned so the caller can log them; they are never acted upon.
type Notifier struct {
	url    string
	client *http.Client
}

// NewNotifier creates a notifier for the given webhook URL. An empty URL
// disables delivery entirely.
func NewNotifier(url string, timeout time.Duration) *Notifier {
	return &Notifier{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Notify posts the event as JSON. A disabled notifier reports success.
func (n *Notifier) Notify(ctx context.Context, event domain.StatusChangeEvent) error {
	if n.url == "" {
		return nil
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Delivery-Id", uuid.NewString())

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver event: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("notification sink returned HTTP %d", resp.StatusCode)
	}
	return nil
}
