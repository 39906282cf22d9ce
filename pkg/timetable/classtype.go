package timetable

import "strings"

// Class-type keywords in priority order: the first keyword contained in the
// session's type decides which toggle governs it.
var classTypeKeywords = []struct {
	keyword  string
	selected func(filters ClassTypeFilters) bool
}{
	{"tut", func(filters ClassTypeFilters) bool { return filters.Tutorial }},
	{"lab", func(filters ClassTypeFilters) bool { return filters.Lab }},
	{"sem", func(filters ClassTypeFilters) bool { return filters.Seminar }},
	{"lec", func(filters ClassTypeFilters) bool { return filters.Lecture }},
	{"prj", func(filters ClassTypeFilters) bool { return filters.Project }},
	{"des", func(filters ClassTypeFilters) bool { return filters.Design }},
}

// ShouldConsiderClassType checks whether a session of the given free-text type
// counts toward constraint checking and scoring. Types matching none of the
// known categories are always considered.
func ShouldConsiderClassType(sessionType string, filters Filters) bool {
	lowered := strings.ToLower(sessionType)
	for _, entry := range classTypeKeywords {
		if strings.Contains(lowered, entry.keyword) {
			return entry.selected(filters.ClassesToConsider)
		}
	}
	return true
}
