package timetable

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// normalizeDay reduces a free-text weekday token ("Monday", "MON", "tue") to
// its 3-letter uppercase code.
func normalizeDay(day string) string {
	trimmed := strings.TrimSpace(day)
	if len(trimmed) > 3 {
		trimmed = trimmed[:3]
	}
	return strings.ToUpper(trimmed)
}

// normalizeTime maps an untimed session to midnight so the interval test
// stays total over empty time tokens.
func normalizeTime(token string) string {
	if token == "" {
		return "0000"
	}
	return token
}

// HasTimeClash checks whether two sessions occupy overlapping day, time range
// and teaching weeks. An empty week set on either side counts as active every
// week, so an overlapping time range is conservatively treated as a clash.
func HasTimeClash(a, b Session) bool {
	if normalizeDay(a.Day) != normalizeDay(b.Day) {
		return false
	}

	startA, endA := normalizeTime(a.StartTime), normalizeTime(a.EndTime)
	startB, endB := normalizeTime(b.StartTime), normalizeTime(b.EndTime)
	// Zero-padded 4-digit tokens compare lexically the same as numerically
	if endA <= startB || endB <= startA {
		return false
	}

	if len(a.Weeks) == 0 || len(b.Weeks) == 0 {
		return true
	}
	return lo.SomeBy(a.Weeks, func(week int) bool {
		return slices.Contains(b.Weeks, week)
	})
}
