package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-pulse/internal/core/domain"
	"campaign-pulse/internal/core/port"
	"campaign-pulse/internal/core/port/mocks"
)

var frozen = time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC)

type fixture struct {
	repo     *mocks.MockCampaignRepository
	fixer    *mocks.MockFixerClient
	cache    *mocks.MockCampaignCache
	notifier *mocks.MockNotifier
	uc       *CampaignUseCase
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		repo:     mocks.NewMockCampaignRepository(t),
		fixer:    mocks.NewMockFixerClient(t),
		cache:    mocks.NewMockCampaignCache(t),
		notifier: mocks.NewMockNotifier(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.uc = NewCampaignUseCase(f.repo, f.fixer, f.cache, f.notifier, logger)
	f.uc.now = func() time.Time { return frozen }
	return f
}

func runnableCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:              42,
		Name:            "Launch",
		Status:          domain.CampaignActive,
		VideoURL:        "https://example.com/watch/42",
		VideoID:         "vid-42",
		Genre:           "music",
		CommentsSheetURL: "https://sheets.example.com/42",
		CommentServerID: "srv-c",
		LikeServerID:    "srv-l",
		CurrentViews:    40000,
		CurrentLikes:    900,
		CurrentComments: 120,
		FixerStatus:     domain.FixerNone,
	}
}

func TestStartFixerRejectsMissingPrereqs(t *testing.T) {
	f := newFixture(t)
	c := runnableCampaign()
	c.VideoID = ""
	c.VideoURL = ""
	c.Genre = ""
	f.repo.EXPECT().GetCampaign(mock.Anything, int64(42)).Return(c, nil)

	_, err := f.uc.StartFixer(context.Background(), 42, "op@example.com")

	var verr *port.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"video id", "genre"}, verr.Fields)
	// No remote call and no state mutation may happen.
	f.fixer.AssertNotCalled(t, "Start", mock.Anything, mock.Anything)
	f.repo.AssertNotCalled(t, "UpdateFixerState", mock.Anything, mock.Anything)
}

func TestStartFixerSuccess(t *testing.T) {
	f := newFixture(t)
	c := runnableCampaign()
	f.repo.EXPECT().GetCampaign(mock.Anything, int64(42)).Return(c, nil)
	f.fixer.EXPECT().
		Start(mock.Anything, mock.MatchedBy(func(req port.FixerStartRequest) bool {
			return req.CampaignID == 42 && req.VideoID == "vid-42" && req.Genre == "music"
		})).
		Return(&port.FixerStartResponse{Success: true, CampaignID: "ext-7"}, nil)
	f.repo.EXPECT().UpdateFixerState(mock.Anything, mock.AnythingOfType("*domain.Campaign")).Return(nil)
	f.cache.EXPECT().Invalidate(mock.Anything).Return(nil)
	f.notifier.EXPECT().Notify(mock.Anything, mock.AnythingOfType("domain.StatusChangeEvent")).Return(nil)

	got, err := f.uc.StartFixer(context.Background(), 42, "op@example.com")
	require.NoError(t, err)

	assert.True(t, got.InFixer)
	assert.Equal(t, domain.FixerRunning, got.FixerStatus)
	assert.Equal(t, "ext-7", got.FixerExternalID)
	require.NotNil(t, got.FixerStartedAt)
	assert.Equal(t, frozen, *got.FixerStartedAt)
	// Counter snapshots are taken at start for gained-since deltas.
	assert.Equal(t, int64(900), got.LikesAtFixerStart)
	assert.Equal(t, int64(120), got.CommentsAtFixerStart)
}

func TestStartFixerRemoteFailureLeavesStateUntouched(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetCampaign(mock.Anything, int64(42)).Return(runnableCampaign(), nil)
	f.fixer.EXPECT().Start(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := f.uc.StartFixer(context.Background(), 42, "op@example.com")
	require.Error(t, err)
	f.repo.AssertNotCalled(t, "UpdateFixerState", mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestStartFixerAlreadyRunning(t *testing.T) {
	f := newFixture(t)
	c := runnableCampaign()
	c.InFixer = true
	c.FixerStatus = domain.FixerRunning
	c.FixerExternalID = "ext-7"
	f.repo.EXPECT().GetCampaign(mock.Anything, int64(42)).Return(c, nil)

	_, err := f.uc.StartFixer(context.Background(), 42, "op@example.com")
	assert.ErrorIs(t, err, port.ErrFixerAlreadyRunning)
}

func TestStartFixerRejectsConcurrentOperation(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.uc.acquire(42))

	_, err := f.uc.StartFixer(context.Background(), 42, "op@example.com")
	assert.ErrorIs(t, err, port.ErrOperationInFlight)

	f.uc.release(42)
	// Another id is unaffected by the held lock.
	f.repo.EXPECT().GetCampaign(mock.Anything, int64(7)).Return(nil, port.ErrCampaignNotFound)
	_, err = f.uc.StartFixer(context.Background(), 7, "op@example.com")
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestStopFixerIsUnconditionalLocally(t *testing.T) {
	f := newFixture(t)
	c := runnableCampaign()
	c.InFixer = true
	c.FixerStatus = domain.FixerRunning
	c.FixerExternalID = "ext-7"
	f.repo.EXPECT().GetCampaign(mock.Anything, int64(42)).Return(c, nil)
	f.fixer.EXPECT().Stop(mock.Anything, "ext-7").Return(errors.New("remote unreachable"))
	f.repo.EXPECT().UpdateFixerState(mock.Anything, mock.AnythingOfType("*domain.Campaign")).Return(nil)
	f.cache.EXPECT().Invalidate(mock.Anything).Return(nil)
	f.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil)

	result, err := f.uc.StopFixer(context.Background(), 42, "op@example.com")
	require.NoError(t, err)

	assert.False(t, result.Campaign.InFixer)
	assert.Equal(t, domain.FixerStopped, result.Campaign.FixerStatus)
	require.NotNil(t, result.Campaign.FixerStoppedAt)
	assert.Equal(t, frozen, *result.Campaign.FixerStoppedAt)
	assert.Contains(t, result.RemoteWarning, "remote stop failed")
}

func TestStopFixerCleanRemoteHasNoWarning(t *testing.T) {
	f := newFixture(t)
	c := runnableCampaign()
	c.InFixer = true
	c.FixerStatus = domain.FixerRunning
	c.FixerExternalID = "ext-7"
	f.repo.EXPECT().GetCampaign(mock.Anything, int64(42)).Return(c, nil)
	f.fixer.EXPECT().Stop(mock.Anything, "ext-7").Return(nil)
	f.repo.EXPECT().UpdateFixerState(mock.Anything, mock.Anything).Return(nil)
	f.cache.EXPECT().Invalidate(mock.Anything).Return(nil)
	f.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil)

	result, err := f.uc.StopFixer(context.Background(), 42, "op@example.com")
	require.NoError(t, err)
	assert.Empty(t, result.RemoteWarning)
}

func TestStopFixerNotRunning(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetCampaign(mock.Anything, int64(42)).Return(runnableCampaign(), nil)

	_, err := f.uc.StopFixer(context.Background(), 42, "op@example.com")
	assert.ErrorIs(t, err, port.ErrFixerNotRunning)
	f.fixer.AssertNotCalled(t, "Stop", mock.Anything, mock.Anything)
}

func TestNotifierFailureDoesNotBlockTransition(t *testing.T) {
	f := newFixture(t)
	c := runnableCampaign()
	f.repo.EXPECT().GetCampaign(mock.Anything, int64(42)).Return(c, nil)
	f.fixer.EXPECT().Start(mock.Anything, mock.Anything).
		Return(&port.FixerStartResponse{Success: true, CampaignID: "ext-7"}, nil)
	f.repo.EXPECT().UpdateFixerState(mock.Anything, mock.Anything).Return(nil)
	f.cache.EXPECT().Invalidate(mock.Anything).Return(errors.New("redis down"))
	f.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(errors.New("sink down"))

	got, err := f.uc.StartFixer(context.Background(), 42, "op@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.FixerRunning, got.FixerStatus)
}

func TestPollFixerStatusReconcilesCounters(t *testing.T) {
	f := newFixture(t)
	c := runnableCampaign()
	c.InFixer = true
	c.FixerStatus = domain.FixerRunning
	c.FixerExternalID = "ext-7"
	f.repo.EXPECT().GetCampaign(mock.Anything, int64(42)).Return(c, nil)
	f.fixer.EXPECT().Status(mock.Anything, "ext-7").Return(&port.FixerStatusResponse{
		Views: 41000, Likes: 950, Comments: 130, Status: "running",
	}, nil)
	f.repo.EXPECT().
		UpdateEngagementCounters(mock.Anything, int64(42), int64(41000), int64(950), int64(130)).
		Return(nil)

	status, err := f.uc.PollFixerStatus(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(41000), status.Views)
}

func TestPollFixerStatusNotRunning(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetCampaign(mock.Anything, int64(42)).Return(runnableCampaign(), nil)

	_, err := f.uc.PollFixerStatus(context.Background(), 42)
	assert.ErrorIs(t, err, port.ErrFixerNotRunning)
	f.fixer.AssertNotCalled(t, "Status", mock.Anything, mock.Anything)
}

func TestPollFixerStatusRemoteGone(t *testing.T) {
	f := newFixture(t)
	c := runnableCampaign()
	c.InFixer = true
	c.FixerStatus = domain.FixerRunning
	c.FixerExternalID = "ext-7"
	f.repo.EXPECT().GetCampaign(mock.Anything, int64(42)).Return(c, nil)
	f.fixer.EXPECT().Status(mock.Anything, "ext-7").Return(nil, port.ErrRemoteCampaignNotFound)

	_, err := f.uc.PollFixerStatus(context.Background(), 42)
	assert.ErrorIs(t, err, port.ErrRemoteCampaignNotFound)
}

func TestListCampaignsServedFromCache(t *testing.T) {
	f := newFixture(t)
	cached := []domain.Campaign{*runnableCampaign()}
	f.cache.EXPECT().GetList(mock.Anything).Return(cached, true)

	overviews, err := f.uc.ListCampaigns(context.Background())
	require.NoError(t, err)
	require.Len(t, overviews, 1)
	assert.Equal(t, int64(42), overviews[0].Campaign.ID)
	f.repo.AssertNotCalled(t, "ListCampaigns", mock.Anything)
}

func TestListCampaignsCacheMissFallsThrough(t *testing.T) {
	f := newFixture(t)
	stored := []domain.Campaign{*runnableCampaign()}
	f.cache.EXPECT().GetList(mock.Anything).Return(nil, false)
	f.repo.EXPECT().ListCampaigns(mock.Anything).Return(stored, nil)
	f.cache.EXPECT().SetList(mock.Anything, stored).Return(nil)

	overviews, err := f.uc.ListCampaigns(context.Background())
	require.NoError(t, err)
	require.Len(t, overviews, 1)
}

func TestActivateRequiresTechnicalSetup(t *testing.T) {
	f := newFixture(t)
	c := runnableCampaign()
	c.Status = domain.CampaignPending
	c.DesiredDailyViews = 0 // setup incomplete
	f.repo.EXPECT().GetCampaign(mock.Anything, int64(42)).Return(c, nil)

	_, err := f.uc.Activate(context.Background(), 42, false, "op@example.com")
	assert.ErrorIs(t, err, port.ErrSetupIncomplete)
	f.repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestActivateForceBypassesSetupGate(t *testing.T) {
	f := newFixture(t)
	c := runnableCampaign()
	c.Status = domain.CampaignPending
	c.DesiredDailyViews = 0
	f.repo.EXPECT().GetCampaign(mock.Anything, int64(42)).Return(c, nil)
	f.repo.EXPECT().UpdateStatus(mock.Anything, int64(42), domain.CampaignActive).Return(nil)
	f.cache.EXPECT().Invalidate(mock.Anything).Return(nil)
	f.notifier.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(e domain.StatusChangeEvent) bool {
			return e.Status == "active" && e.PreviousStatus == "pending" && e.ActorEmail == "op@example.com"
		})).
		Return(nil)

	got, err := f.uc.Activate(context.Background(), 42, true, "op@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignActive, got.Status)
}

func TestGetCampaignIncludesParties(t *testing.T) {
	f := newFixture(t)
	c := runnableCampaign()
	c.ClientID = 3
	c.SalespersonID = 5
	f.repo.EXPECT().GetCampaign(mock.Anything, int64(42)).Return(c, nil)
	f.repo.EXPECT().GetClient(mock.Anything, int64(3)).Return(&domain.Client{ID: 3, Name: "Acme"}, nil)
	f.repo.EXPECT().GetSalesperson(mock.Anything, int64(5)).Return(nil, errors.New("db timeout"))

	overview, err := f.uc.GetCampaign(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, overview.Client)
	assert.Equal(t, "Acme", overview.Client.Name)
	// A failed party lookup degrades to a missing reference.
	assert.Nil(t, overview.Salesperson)
}

func TestHealthScoreUsesCallerOverride(t *testing.T) {
	f := newFixture(t)
	c := runnableCampaign()
	c.ServiceGoals = []domain.ServiceGoal{{ServiceType: "views", GoalViews: 21000}}
	c.CurrentViews = 1_000_000
	f.repo.EXPECT().GetCampaign(mock.Anything, int64(42)).Return(c, nil)

	score, err := f.uc.HealthScore(context.Background(), 42, domain.OverrideOf(500))
	require.NoError(t, err)
	// 500 of 700 expected on day one is pace 50, +15 active fixer bonus
	// does not apply because InFixer is false.
	assert.Equal(t, 50, score)
}
