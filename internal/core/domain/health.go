package domain

import (
	"math"
	"time"
)

// Weights of the health score components. Pacing dominates the scale
// because it is the business outcome; the fixer bonus rewards active
// remediation; the stall penalty is flat because stalling is a binary
// risk signal, not a magnitude.
const (
	paceWeight   = 70
	fixerBonus   = 15
	stallPenalty = 25

	// defaultTotalDays is assumed when neither a delivery window nor a
	// daily target can pin down the campaign duration.
	defaultTotalDays = 30
)

// HealthScore converts a campaign's delivery state into a 0-100 score.
// It is a pure function of its arguments: today is passed in explicitly
// so callers (and tests) control the clock. The function is total over
// any campaign shape; malformed numeric fields count as 0/absent.
func HealthScore(c Campaign, override Override, today time.Time) int {
	effective := c.EffectiveViews(override)
	totalGoal := c.TotalGoalViews()

	totalDays := campaignDays(c, totalGoal)
	elapsed := daysElapsed(c, today, totalDays)

	var expectedByNow float64
	if totalGoal > 0 {
		expectedByNow = float64(totalGoal) / float64(totalDays) * float64(elapsed)
	}

	// Pacing contributes up to paceWeight points. A missing goal forces
	// the pacing contribution to 0: the campaign needs a goal before it
	// can be scored meaningfully.
	var paceScore float64
	if expectedByNow > 0 {
		ratio := float64(effective) / expectedByNow
		if ratio > 1 {
			ratio = 1
		}
		paceScore = math.Round(paceWeight * ratio)
	}

	total := paceScore
	if c.Status == CampaignActive && c.InFixer {
		total += fixerBonus
	}
	if c.Stalled() {
		total -= stallPenalty
	}

	score := int(math.Round(total))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// campaignDays infers the planned duration in days: a valid delivery
// window wins, then the daily-target fallback, then the default.
func campaignDays(c Campaign, totalGoal int64) int {
	if c.StartDate != nil && c.EndDate != nil && !c.EndDate.Before(*c.StartDate) {
		return ceilDays(c.EndDate.Sub(*c.StartDate)) + 1
	}
	if c.DesiredDailyViews > 0 && totalGoal > 0 {
		return int(math.Ceil(float64(totalGoal) / float64(c.DesiredDailyViews)))
	}
	return defaultTotalDays
}

// daysElapsed counts days since the start date, floored at 1 and capped
// at totalDays. Campaigns without a start date count as day 1.
//
// The ceil(...)+1 arithmetic double-counts the start day under some date
// combinations; kept as observed pending product confirmation.
func daysElapsed(c Campaign, today time.Time, totalDays int) int {
	if c.StartDate == nil {
		return 1
	}
	elapsed := ceilDays(today.Sub(*c.StartDate)) + 1
	if elapsed < 1 {
		elapsed = 1
	}
	if elapsed > totalDays {
		elapsed = totalDays
	}
	return elapsed
}

func ceilDays(d time.Duration) int {
	return int(math.Ceil(d.Hours() / 24))
}
