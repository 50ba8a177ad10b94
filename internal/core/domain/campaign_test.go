package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeServiceGoals(t *testing.T) {
	t.Run("array form", func(t *testing.T) {
		goals := NormalizeServiceGoals([]byte(`[{"service_type":"views","goal_views":1000},{"service_type":"engagements_only","goal_views":0}]`))
		assert.Len(t, goals, 2)
		assert.Equal(t, "views", goals[0].ServiceType)
		assert.Equal(t, int64(1000), goals[0].GoalViews)
	})

	t.Run("legacy single object", func(t *testing.T) {
		goals := NormalizeServiceGoals([]byte(`{"service_type":"views","goal_views":500}`))
		assert.Len(t, goals, 1)
		assert.Equal(t, int64(500), goals[0].GoalViews)
	})

	t.Run("empty and garbage", func(t *testing.T) {
		assert.Nil(t, NormalizeServiceGoals(nil))
		assert.Nil(t, NormalizeServiceGoals([]byte(``)))
		assert.Nil(t, NormalizeServiceGoals([]byte(`not json`)))
	})
}

func TestTotalGoalViews(t *testing.T) {
	c := Campaign{ServiceGoals: []ServiceGoal{
		{ServiceType: "views", GoalViews: 1000},
		{ServiceType: "views", GoalViews: 2000},
		{ServiceType: "views", GoalViews: -500}, // malformed, ignored
	}}
	assert.Equal(t, int64(3000), c.TotalGoalViews())
	assert.Equal(t, int64(0), Campaign{}.TotalGoalViews())
}

func TestTechnicalSetupComplete(t *testing.T) {
	complete := Campaign{
		DesiredDailyViews: 1000,
		CommentsSheetURL:  "https://sheets.example.com/1",
		CommentServerID:   "srv-c",
		LikeServerID:      "srv-l",
	}
	assert.True(t, complete.TechnicalSetupComplete())

	for name, mutate := range map[string]func(*Campaign){
		"no daily views":  func(c *Campaign) { c.DesiredDailyViews = 0 },
		"no sheet":        func(c *Campaign) { c.CommentsSheetURL = "" },
		"no comment host": func(c *Campaign) { c.CommentServerID = "" },
		"no like host":    func(c *Campaign) { c.LikeServerID = "" },
	} {
		c := complete
		mutate(&c)
		assert.False(t, c.TechnicalSetupComplete(), name)
	}
}

func TestMissingFixerPrereqs(t *testing.T) {
	ready := Campaign{VideoID: "vid-1", Genre: "music"}
	assert.Empty(t, ready.MissingFixerPrereqs())

	// A video URL alone resolves the video requirement.
	urlOnly := Campaign{VideoURL: "https://example.com/watch/1", Genre: "music"}
	assert.Empty(t, urlOnly.MissingFixerPrereqs())

	bare := Campaign{}
	assert.Equal(t, []string{"video id", "genre"}, bare.MissingFixerPrereqs())

	noGenre := Campaign{VideoID: "vid-1"}
	assert.Equal(t, []string{"genre"}, noGenre.MissingFixerPrereqs())
}

func TestEffectiveViews(t *testing.T) {
	c := Campaign{CurrentViews: 1000, ManualProgressOverride: 0}
	assert.Equal(t, int64(1000), c.EffectiveViews(NoOverride()))
	assert.Equal(t, int64(500), c.EffectiveViews(OverrideOf(500)))
	assert.Equal(t, int64(1000), c.EffectiveViews(OverrideOf(0)))
	assert.Equal(t, int64(1000), c.EffectiveViews(OverrideOf(-3)))

	c.ManualProgressOverride = 2000
	assert.Equal(t, int64(2000), c.EffectiveViews(NoOverride()))
	// An explicit override still wins over the stored one.
	assert.Equal(t, int64(500), c.EffectiveViews(OverrideOf(500)))
}

func TestStalled(t *testing.T) {
	assert.False(t, Campaign{}.Stalled())
	assert.True(t, Campaign{ViewsStalled: true}.Stalled())
	assert.True(t, Campaign{StallingDetectedAt: datePtr(today)}.Stalled())
}
