package port

import (
	"context"

	"campaign-pulse/internal/core/domain"
)

// Notifier is the outbound port to the status-change notification sink.
// Delivery is fire-and-forget: implementations report errors so callers
// can log them, but callers never propagate or act on a failure.
type Notifier interface {
	Notify(ctx context.Context, event domain.StatusChangeEvent) error
}
