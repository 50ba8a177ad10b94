package domain

import (
	"encoding/json"
	"time"
)

// CampaignStatus enumerates the delivery lifecycle of a campaign.
type CampaignStatus string

const (
	CampaignPending  CampaignStatus = "pending"
	CampaignReady    CampaignStatus = "ready"
	CampaignActive   CampaignStatus = "active"
	CampaignOnHold   CampaignStatus = "on_hold"
	CampaignComplete CampaignStatus = "complete"
)

// FixerStatus tracks the last known lifecycle state of the external
// ratio-fixer service for a campaign. None and Stopped are equivalent at
// rest; Running is the only active state.
type FixerStatus string

const (
	FixerNone    FixerStatus = "none"
	FixerRunning FixerStatus = "running"
	FixerStopped FixerStatus = "stopped"
)

// ServiceGoal is one entry of a campaign's ordered goal list. GoalViews is
// always non-negative; CustomLabel is optional display text.
type ServiceGoal struct {
	ServiceType string `json:"service_type"`
	CustomLabel string `json:"custom_label,omitempty"`
	GoalViews   int64  `json:"goal_views"`
}

// EngagementsOnly is the service type exempt from view-goal requirements.
const EngagementsOnly = "engagements_only"

// Campaign is the central entity of the pacing engine. Counters are
// updated by an external stats collector and default to 0 until the first
// collection. Fixer fields mirror the state of the external automation
// service as last reconciled.
type Campaign struct {
	ID            int64
	Name          string
	ClientID      int64
	SalespersonID int64
	Status        CampaignStatus

	ServiceGoals []ServiceGoal

	CurrentViews    int64
	CurrentLikes    int64
	CurrentComments int64

	// ManualProgressOverride replaces CurrentViews everywhere progress and
	// health are computed when > 0. Zero means no override.
	ManualProgressOverride int64

	StartDate         *time.Time
	EndDate           *time.Time
	DesiredDailyViews int64

	ViewsStalled       bool
	StallingDetectedAt *time.Time

	InFixer              bool
	FixerExternalID      string
	FixerStatus          FixerStatus
	FixerStartedAt       *time.Time
	FixerStoppedAt       *time.Time
	LikesAtFixerStart    int64
	CommentsAtFixerStart int64

	// Technical setup fields required before activation and fixer start.
	VideoURL          string
	VideoID           string
	Genre             string
	CommentsSheetURL  string
	CommentServerID   string
	LikeServerID      string
	WaitTime          int64
	MinimumEngagement int64
	SheetTier         string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalGoalViews sums goal views across all service entries. Negative
// entries are treated as 0 so the scorer stays total over malformed rows.
func (c Campaign) TotalGoalViews() int64 {
	var total int64
	for _, g := range c.ServiceGoals {
		if g.GoalViews > 0 {
			total += g.GoalViews
		}
	}
	return total
}

// TechnicalSetupComplete reports whether the campaign may transition to
// active without forcing: daily target, comment sheet reference and both
// engagement-server identifiers must all be present.
func (c Campaign) TechnicalSetupComplete() bool {
	return c.DesiredDailyViews > 0 &&
		c.CommentsSheetURL != "" &&
		c.CommentServerID != "" &&
		c.LikeServerID != ""
}

// MissingFixerPrereqs returns the names of fields required before the
// ratio fixer can be started. An empty slice means the campaign is ready.
func (c Campaign) MissingFixerPrereqs() []string {
	var missing []string
	if c.VideoID == "" && c.VideoURL == "" {
		missing = append(missing, "video id")
	}
	if c.Genre == "" {
		missing = append(missing, "genre")
	}
	return missing
}

// Stalled reports whether the stall-detection process has flagged the
// campaign, either via the boolean flag or the companion timestamp.
func (c Campaign) Stalled() bool {
	return c.ViewsStalled || c.StallingDetectedAt != nil
}

// NormalizeServiceGoals decodes the stored goal structure, which may be a
// JSON array, a single legacy object, or absent, and always produces a
// list. Unparseable input yields an empty list rather than an error so
// downstream scoring stays total.
func NormalizeServiceGoals(raw []byte) []ServiceGoal {
	if len(raw) == 0 {
		return nil
	}
	var goals []ServiceGoal
	if err := json.Unmarshal(raw, &goals); err == nil {
		return goals
	}
	var single ServiceGoal
	if err := json.Unmarshal(raw, &single); err == nil {
		return []ServiceGoal{single}
	}
	return nil
}

// Override carries an operator-entered view count that supersedes the
// collected counters for progress and health computation. The zero value
// means "no override"; a positive count activates it.
type Override struct {
	views int64
}

// NoOverride returns an inactive override.
func NoOverride() Override { return Override{} }

// OverrideOf returns an override for n views. Values <= 0 produce an
// inactive override, so a 0 sent by an edit form falls back to collected
// views instead of zeroing progress.
func OverrideOf(n int64) Override {
	if n <= 0 {
		return Override{}
	}
	return Override{views: n}
}

// Active reports whether the override supersedes collected views.
func (o Override) Active() bool { return o.views > 0 }

// Views returns the overridden view count. Only meaningful when Active.
func (o Override) Views() int64 { return o.views }

// EffectiveViews resolves the view count used for progress and health:
// an explicit override wins, then a stored positive override, then the
// collected counter.
func (c Campaign) EffectiveViews(override Override) int64 {
	if override.Active() {
		return override.Views()
	}
	if c.ManualProgressOverride > 0 {
		return c.ManualProgressOverride
	}
	if c.CurrentViews > 0 {
		return c.CurrentViews
	}
	return 0
}
