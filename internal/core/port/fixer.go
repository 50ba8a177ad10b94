package port

import (
	"context"
	"errors"
)

var (
	// ErrRemoteCampaignNotFound signals that the external service no longer
	// knows the campaign (404 on status lookup). Surfaced distinctly from a
	// generic failure so the operator can reconcile manually.
	ErrRemoteCampaignNotFound = errors.New("remote campaign not found")
)

// FixerStartRequest carries everything the external automation service
// needs to begin placing engagement orders for a campaign.
type FixerStartRequest struct {
	CampaignID        int64  `json:"campaignId"`
	VideoURL          string `json:"videoUrl"`
	VideoID           string `json:"videoId"`
	Genre             string `json:"genre"`
	CommentsSheetURL  string `json:"commentsSheetUrl"`
	WaitTime          int64  `json:"waitTime"`
	MinimumEngagement int64  `json:"minimumEngagement"`
	CommentServerID   string `json:"commentServerId"`
	LikeServerID      string `json:"likeServerId"`
	SheetTier         string `json:"sheetTier"`
}

// FixerStartResponse is the remote acknowledgement of a start request.
// CampaignID is the external id the service assigned; all later stop and
// status calls are keyed by it.
type FixerStartResponse struct {
	Success    bool   `json:"success"`
	CampaignID string `json:"campaignId,omitempty"`
	Error      string `json:"error,omitempty"`
}

// FixerStatusResponse is the live counter snapshot of a running fixer.
type FixerStatusResponse struct {
	Views           int64  `json:"views"`
	Likes           int64  `json:"likes"`
	Comments        int64  `json:"comments"`
	Status          string `json:"status"`
	DesiredLikes    int64  `json:"desired_likes"`
	DesiredComments int64  `json:"desired_comments"`
	OrderedLikes    int64  `json:"ordered_likes,omitempty"`
	OrderedComments int64  `json:"ordered_comments,omitempty"`
}

// FixerHealthResponse reports whether the automation service is reachable.
type FixerHealthResponse struct {
	Status    string `json:"status"`
	Available bool   `json:"available"`
	Error     string `json:"error,omitempty"`
}

// FixerClient is the outbound port to the ratio-fixer automation service.
// Implementations must apply per-operation timeouts so a hung remote call
// cannot wedge the lifecycle controller.
type FixerClient interface {
	// Start asks the remote service to begin fixing the campaign ratio.
	// A non-2xx response or success=false body is returned as an error.
	Start(ctx context.Context, req FixerStartRequest) (*FixerStartResponse, error)
	// Stop asks the remote service to stop the fixer keyed by external id.
	Stop(ctx context.Context, externalID string) error
	// Status fetches the live counters for a running fixer. A 404 maps to
	// ErrRemoteCampaignNotFound.
	Status(ctx context.Context, externalID string) (*FixerStatusResponse, error)
	// Health probes the remote service availability.
	Health(ctx context.Context) (*FixerHealthResponse, error)
}
