package timetable

import (
	"math"
	"slices"

	"github.com/samber/lo"
)

const (
	baselineScore         = 100
	dayDurationPenalty    = 20
	gapPenalty            = 10
	dailyLoadWeight       = 5
	unusedDayReward       = 20
	balanceReward         = 30
	balanceVarianceWeight = 10
	consecutiveReward     = 50

	// Large enough to sink any non-consecutive combination below every
	// consecutive one in the ranking without removing it from the result set.
	nonConsecutivePenalty = 10_000
)

var weekdayIndexes = map[string]int{
	"MON": 0,
	"TUE": 1,
	"WED": 2,
	"THU": 3,
	"FRI": 4,
	"SAT": 5,
	"SUN": 6,
}

// ScoreCombination assigns a desirability score to a combination, higher is
// better. Scoring starts from a fixed baseline and applies independent
// additive adjustments, each gated by its own enabled flag and restricted to
// the user's considered session types. The score is unbounded in both
// directions.
func ScoreCombination(combination Combination, filters Filters) float64 {
	considered := lo.Filter(combination.Sessions, func(session TaggedSession, _ int) bool {
		return ShouldConsiderClassType(session.Type, filters)
	})

	sessionsByDay := lo.GroupBy(considered, func(session TaggedSession) string {
		return normalizeDay(session.Day)
	})
	// Sorting goes through the minutes parser rather than lexical comparison:
	// colon-delimited times ("9:00") do not order lexically
	for _, sessions := range sessionsByDay {
		slices.SortFunc(sessions, func(a, b TaggedSession) int {
			return MinutesFromTime(a.StartTime) - MinutesFromTime(b.StartTime)
		})
	}

	score := float64(baselineScore)
	score += dayDurationAdjustment(sessionsByDay, filters.DayDuration)
	score += gapAdjustment(sessionsByDay, filters.GapsBetweenClasses)
	score += dailyLoadAdjustment(len(sessionsByDay), filters.DailyLoad)
	score += goalAdjustments(sessionsByDay, filters.GenerationGoals)
	return score
}

// dayDurationAdjustment penalizes each day whose span from earliest start to
// latest end falls outside the allowed range.
func dayDurationAdjustment(sessionsByDay map[string][]TaggedSession, duration HourRange) float64 {
	if !duration.Enabled {
		return 0
	}

	adjustment := 0.0
	for _, sessions := range sessionsByDay {
		start := MinutesFromTime(sessions[0].StartTime)
		end := lo.Max(lo.Map(sessions, func(session TaggedSession, _ int) int {
			return MinutesFromTime(session.EndTime)
		}))

		span := hoursBetween(start, end)
		if span < duration.Min || span > duration.Max {
			adjustment -= dayDurationPenalty
		}
	}
	return adjustment
}

// gapAdjustment penalizes each idle gap between consecutive same-day sessions
// that falls outside the allowed range.
func gapAdjustment(sessionsByDay map[string][]TaggedSession, gaps HourRange) float64 {
	if !gaps.Enabled {
		return 0
	}

	adjustment := 0.0
	for _, sessions := range sessionsByDay {
		for i := 0; i+1 < len(sessions); i++ {
			gap := hoursBetween(MinutesFromTime(sessions[i].EndTime), MinutesFromTime(sessions[i+1].StartTime))
			if gap < gaps.Min || gap > gaps.Max {
				adjustment -= gapPenalty
			}
		}
	}
	return adjustment
}

func dailyLoadAdjustment(daysUsed int, load DailyLoad) float64 {
	if !load.Enabled {
		return 0
	}

	switch load.Preference {
	case "balanced":
		return float64(dailyLoadWeight * daysUsed)
	case "skewed":
		return -float64(dailyLoadWeight * daysUsed)
	default:
		return 0
	}
}

func goalAdjustments(sessionsByDay map[string][]TaggedSession, goals GenerationGoals) float64 {
	adjustment := 0.0
	daysUsed := len(sessionsByDay)

	if goals.MinimizeDays {
		adjustment += float64(unusedDayReward * (7 - daysUsed))
	}

	if goals.BalanceWorkload && daysUsed > 0 {
		counts := lo.Map(lo.Values(sessionsByDay), func(sessions []TaggedSession, _ int) float64 {
			return float64(len(sessions))
		})
		mean := lo.Sum(counts) / float64(daysUsed)
		variance := lo.Sum(lo.Map(counts, func(count float64, _ int) float64 {
			deviation := count - mean
			return deviation * deviation
		})) / float64(daysUsed)

		adjustment += math.Max(0, balanceReward-balanceVarianceWeight*variance)
	}

	if goals.ConsecutiveDays {
		adjustment += consecutiveDaysAdjustment(sessionsByDay)
	}

	return adjustment
}

// consecutiveDaysAdjustment rewards timetables whose used weekdays form one
// unbroken run and severely penalizes the rest, effectively soft-excluding
// them from the top of the ranking. Unrecognized day tokens are dropped
// before the adjacency check.
func consecutiveDaysAdjustment(sessionsByDay map[string][]TaggedSession) float64 {
	usedIndexes := make([]int, 0, len(sessionsByDay))
	for day := range sessionsByDay {
		if index, ok := weekdayIndexes[day]; ok {
			usedIndexes = append(usedIndexes, index)
		}
	}

	if len(usedIndexes) <= 1 {
		return consecutiveReward
	}

	slices.Sort(usedIndexes)
	for i := 0; i+1 < len(usedIndexes); i++ {
		if usedIndexes[i+1]-usedIndexes[i] != 1 {
			return -nonConsecutivePenalty
		}
	}
	return consecutiveReward
}
