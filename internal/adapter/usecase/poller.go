package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v5"

	"campaign-pulse/internal/core/port"
)

// StatusSource is the slice of the usecase the poller needs.
type StatusSource interface {
	PollFixerStatus(ctx context.Context, id int64) (*port.FixerStatusResponse, error)
}

// StatusPoller drives the fixed-interval status polling for running
// fixers. Each watched campaign gets its own timer loop; the loop stops
// as soon as the campaign leaves the running state, when Unwatch is
// called, or when the parent context is cancelled, so no orphaned
// requests survive a stop.
type StatusPoller struct {
	src      StatusSource
	interval time.Duration
	maxTries uint
	logger   *slog.Logger

	mu      sync.Mutex
	cancels map[int64]context.CancelFunc
}

// NewStatusPoller creates a poller. maxTries bounds the per-tick retry
// budget for transient errors.
func NewStatusPoller(src StatusSource, interval time.Duration, maxTries uint, logger *slog.Logger) *StatusPoller {
	return &StatusPoller{
		src:      src,
		interval: interval,
		maxTries: maxTries,
		logger:   logger,
		cancels:  make(map[int64]context.CancelFunc),
	}
}

// Watch begins polling the campaign until it leaves the running state or
// the context is cancelled. Watching an already-watched campaign is a
// no-op.
func (p *StatusPoller) Watch(ctx context.Context, id int64) {
	p.mu.Lock()
	if _, ok := p.cancels[id]; ok {
		p.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	p.cancels[id] = cancel
	p.mu.Unlock()

	go p.loop(ctx, id)
}

// Unwatch stops polling the campaign immediately.
func (p *StatusPoller) Unwatch(id int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if cancel, ok := p.cancels[id]; ok {
		cancel()
		delete(p.cancels, id)
	}
}

func (p *StatusPoller) loop(ctx context.Context, id int64) {
	defer p.Unwatch(id)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if stop := p.tick(ctx, id); stop {
				return
			}
		}
	}
}

// tick performs one poll with a bounded retry budget for transient
// errors. It reports whether the loop should terminate: a fixer that is
// no longer running and a remote 404 both end polling; transient failures
// keep the last known values on display and wait for the next interval.
func (p *StatusPoller) tick(ctx context.Context, id int64) bool {
	operation := func() (*port.FixerStatusResponse, error) {
		status, err := p.src.PollFixerStatus(ctx, id)
		if err != nil {
			if errors.Is(err, port.ErrFixerNotRunning) ||
				errors.Is(err, port.ErrRemoteCampaignNotFound) ||
				errors.Is(err, port.ErrCampaignNotFound) {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		return status, nil
	}
	_, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(p.maxTries))
	switch {
	case err == nil:
		return false
	case errors.Is(err, port.ErrFixerNotRunning):
		return true
	case errors.Is(err, port.ErrRemoteCampaignNotFound):
		p.logger.Error("remote campaign not found, polling stopped",
			slog.Int64("campaign_id", id))
		return true
	case errors.Is(err, port.ErrCampaignNotFound):
		return true
	default:
		p.logger.Warn("fixer status poll failed, will retry next interval",
			slog.Int64("campaign_id", id), slog.Any("error", err))
		return false
	}
}

// HealthChecker probes the remote automation service on an independent
// interval. The result is advisory: it gates whether "start" is offered
// to the operator and never blocks running campaigns from polling.
type HealthChecker struct {
	fixer     port.FixerClient
	interval  time.Duration
	logger    *slog.Logger
	available atomic.Bool
}

// NewHealthChecker creates a checker; the service is considered
// unavailable until the first successful probe.
func NewHealthChecker(fixer port.FixerClient, interval time.Duration, logger *slog.Logger) *HealthChecker {
	return &HealthChecker{fixer: fixer, interval: interval, logger: logger}
}

// Run probes immediately and then on every interval until the context is
// cancelled. It is meant to be started as a goroutine from main.
func (h *HealthChecker) Run(ctx context.Context) {
	h.probe(ctx)
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.probe(ctx)
		}
	}
}

// Available reports the last probed reachability of the remote service.
func (h *HealthChecker) Available() bool {
	return h.available.Load()
}

func (h *HealthChecker) probe(ctx context.Context) {
	resp, err := h.fixer.Health(ctx)
	if err != nil {
		if h.available.Swap(false) {
			h.logger.Warn("fixer service became unreachable", slog.Any("error", err))
		}
		return
	}
	if !h.available.Swap(resp.Available) && resp.Available {
		h.logger.Info("fixer service available", slog.String("status", resp.Status))
	}
}
