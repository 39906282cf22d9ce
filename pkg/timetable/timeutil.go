package timetable

import (
	"strconv"
	"strings"
)

// MinutesFromTime parses a time token into minutes since midnight. Both
// colon-delimited ("9:30") and raw 4-digit ("0930") forms are accepted;
// empty or unparseable tokens degrade to 0 rather than failing.
func MinutesFromTime(token string) int {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0
	}

	if hourPart, minutePart, found := strings.Cut(token, ":"); found {
		hours, hourErr := strconv.Atoi(hourPart)
		minutes, minuteErr := strconv.Atoi(minutePart)
		if hourErr != nil || minuteErr != nil {
			return 0
		}
		return hours*60 + minutes
	}

	value, err := strconv.Atoi(token)
	if err != nil {
		return 0
	}
	return (value/100)*60 + value%100
}

func hoursBetween(startMinutes, endMinutes int) float64 {
	return float64(endMinutes-startMinutes) / 60
}
