package timetable

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
)

// Session is a single scheduled meeting of a class group.
type Session struct {
	Type      string
	Day       string
	StartTime string
	EndTime   string
	Venue     string
	Weeks     []int // Empty means the session is active every teaching week
}

// IndexOption is one alternative class group a student can register for.
// Index options within a module are mutually exclusive choices.
type IndexOption struct {
	IndexNumber string
	Sessions    []Session
}

// ModuleOffering is a course together with all its index options for a semester.
type ModuleOffering struct {
	CourseCode string
	Name       string
	AU         float64
	Indexes    []IndexOption
}

// TaggedSession is a session flattened out of a combination, carrying its owning
// module and index so callers can render a full timetable from the session list alone.
type TaggedSession struct {
	Session

	CourseCode  string
	ModuleName  string
	IndexNumber string
}

// Combination is one complete selection of exactly one index option per
// requested module. Immutable once emitted by the generator.
type Combination struct {
	ID       string
	Indexes  map[string]string // Course code -> chosen index number
	Sessions []TaggedSession
	Score    float64
}

type ClassTypeFilters struct {
	Tutorial bool
	Lab      bool
	Seminar  bool
	Lecture  bool
	Project  bool
	Design   bool
}

type VenuePreference struct {
	IncludeOnline   bool
	IncludeInPerson bool
}

type DayStartEnd struct {
	StartAfter   string
	EndBefore    string
	StartEnabled bool
	EndEnabled   bool
}

type DaysOfWeek struct {
	Monday    bool
	Tuesday   bool
	Wednesday bool
	Thursday  bool
	Friday    bool
	Saturday  bool
	Sunday    bool
}

// HourRange is an allowed span in hours, used by the scored (not filtered)
// day-duration and gap preferences.
type HourRange struct {
	Min     float64
	Max     float64
	Enabled bool
}

type DailyLoad struct {
	Preference string // "balanced" or "skewed"
	Enabled    bool
}

type GenerationGoals struct {
	MinimizeDays    bool
	BalanceWorkload bool
	ConsecutiveDays bool
}

// Filters is the full user configuration for one generation request. The
// engine performs no default-merging: callers must supply every field.
type Filters struct {
	ClassesToConsider  ClassTypeFilters
	VenuePreference    VenuePreference
	DayStartEnd        DayStartEnd
	DaysOfWeek         DaysOfWeek
	DayDuration        HourRange
	GapsBetweenClasses HourRange
	DailyLoad          DailyLoad
	GenerationGoals    GenerationGoals
}

// Input is one fully resolved generation request: the candidate modules with
// all their index options and the user's filter configuration.
type Input struct {
	Modules []ModuleOffering
	Filters Filters
}

func InputFromJSON(file string) (Input, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Input{}, err
	}

	var inputJSON map[string]any
	if err := json.Unmarshal(bytes, &inputJSON); err != nil {
		return Input{}, err
	}

	var input Input
	if err := mapstructure.Decode(inputJSON, &input); err != nil {
		return Input{}, err
	}
	return input, nil
}
