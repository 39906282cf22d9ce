package timetable

import (
	"strings"

	"github.com/samber/lo"
)

var onlineVenueKeywords = []string{"online", "e-learn", "elearn", "virtual", "zoom", "teams"}

func isOnlineVenue(venue string) bool {
	lowered := strings.ToLower(venue)
	return lo.SomeBy(onlineVenueKeywords, func(keyword string) bool {
		return strings.Contains(lowered, keyword)
	})
}

// passesVenuePreference checks whether an index's considered sessions respect
// the online/in-person preference. The filter is inactive when both sides are
// included; the restrictive side fails only on a conflicting session.
func passesVenuePreference(sessions []Session, filters Filters) bool {
	preference := filters.VenuePreference
	if preference.IncludeOnline && preference.IncludeInPerson {
		return true
	}

	if preference.IncludeOnline && !preference.IncludeInPerson {
		return !lo.SomeBy(sessions, func(session Session) bool {
			return !isOnlineVenue(session.Venue)
		})
	}
	if preference.IncludeInPerson && !preference.IncludeOnline {
		return !lo.SomeBy(sessions, func(session Session) bool {
			return isOnlineVenue(session.Venue)
		})
	}
	return true
}

// passesDayTimeConstraints checks whether every considered session starts no
// earlier than StartAfter and ends no later than EndBefore. Inactive when
// neither bound is enabled.
func passesDayTimeConstraints(sessions []Session, filters Filters) bool {
	window := filters.DayStartEnd
	if !window.StartEnabled && !window.EndEnabled {
		return true
	}

	for _, session := range sessions {
		if window.StartEnabled && session.StartTime < window.StartAfter {
			return false
		}
		if window.EndEnabled && session.EndTime > window.EndBefore {
			return false
		}
	}
	return true
}

func (days DaysOfWeek) allEnabled() bool {
	return days.Monday && days.Tuesday && days.Wednesday && days.Thursday &&
		days.Friday && days.Saturday && days.Sunday
}

// enabled maps a normalized 3-letter day code to its toggle. Unrecognized
// tokens count as disabled.
func (days DaysOfWeek) enabled(code string) bool {
	switch code {
	case "MON":
		return days.Monday
	case "TUE":
		return days.Tuesday
	case "WED":
		return days.Wednesday
	case "THU":
		return days.Thursday
	case "FRI":
		return days.Friday
	case "SAT":
		return days.Saturday
	case "SUN":
		return days.Sunday
	default:
		return false
	}
}

// passesDayOfWeekConstraints checks whether no considered session falls on a
// disabled weekday. Inactive when all seven days are enabled.
func passesDayOfWeekConstraints(sessions []Session, filters Filters) bool {
	if filters.DaysOfWeek.allEnabled() {
		return true
	}

	return !lo.SomeBy(sessions, func(session Session) bool {
		return !filters.DaysOfWeek.enabled(normalizeDay(session.Day))
	})
}

// The constraint pipeline: predicates run left-to-right over an index's
// considered sessions and short-circuit on the first failure.
var indexPredicates = []func(sessions []Session, filters Filters) bool{
	passesVenuePreference,
	passesDayTimeConstraints,
	passesDayOfWeekConstraints,
}

func passesAllConstraints(sessions []Session, filters Filters) bool {
	for _, predicate := range indexPredicates {
		if !predicate(sessions, filters) {
			return false
		}
	}
	return true
}

// FilterModules reduces each module's index list to the options whose
// considered sessions satisfy every constraint filter. An index with no
// considered sessions is rejected outright, and modules left with no viable
// index are dropped entirely: they cannot participate in any combination.
func FilterModules(modules []ModuleOffering, filters Filters) []ModuleOffering {
	filtered := make([]ModuleOffering, 0, len(modules))

	for _, module := range modules {
		viable := lo.Filter(module.Indexes, func(index IndexOption, _ int) bool {
			considered := lo.Filter(index.Sessions, func(session Session, _ int) bool {
				return ShouldConsiderClassType(session.Type, filters)
			})
			if len(considered) == 0 {
				return false
			}
			return passesAllConstraints(considered, filters)
		})

		if len(viable) == 0 {
			continue
		}
		module.Indexes = viable
		filtered = append(filtered, module)
	}

	return filtered
}
