package timetable

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	teachingWeeks := lo.RangeFrom(1, 13)

	lecture := func(day, start, end string) Session {
		return Session{Type: "Lecture", Day: day, StartTime: start, EndTime: end, Weeks: teachingWeeks}
	}
	tutorial := func(day, start, end string) Session {
		return Session{Type: "Tutorial", Day: day, StartTime: start, EndTime: end, Weeks: teachingWeeks}
	}

	t.Run("Empty module list yields zero combinations", func(t *testing.T) {
		result := NewGenerator().Generate(nil)

		assert.Empty(t, result.Combinations)
		assert.False(t, result.Truncated)
	})

	t.Run("Clashing indexes are pruned from the search", func(t *testing.T) {
		//** Arrange
		modules := []ModuleOffering{
			{
				CourseCode: "CS1010",
				Name:       "Introduction to Computing",
				AU:         3,
				Indexes: []IndexOption{
					{IndexNumber: "70001", Sessions: []Session{lecture("Monday", "0900", "1000")}},
					{IndexNumber: "70002", Sessions: []Session{lecture("Monday", "1100", "1200")}},
				},
			},
			{
				CourseCode: "CS2040",
				Name:       "Data Structures",
				AU:         3,
				Indexes: []IndexOption{
					{IndexNumber: "70010", Sessions: []Session{tutorial("Monday", "0900", "1000")}},
				},
			},
		}

		//** Act
		result := NewGenerator().Generate(modules)

		//** Assert
		assert.Len(t, result.Combinations, 1)
		assert.False(t, result.Truncated)
		assert.Equal(t, map[string]string{
			"CS1010": "70002",
			"CS2040": "70010",
		}, result.Combinations[0].Indexes)
	})

	t.Run("Every emitted combination is internally clash-free", func(t *testing.T) {
		//** Arrange
		modules := []ModuleOffering{
			{
				CourseCode: "MH1810",
				Indexes: []IndexOption{
					{IndexNumber: "80001", Sessions: []Session{lecture("Monday", "0900", "1100"), tutorial("Wednesday", "1000", "1100")}},
					{IndexNumber: "80002", Sessions: []Session{lecture("Tuesday", "0900", "1100"), tutorial("Thursday", "1000", "1100")}},
				},
			},
			{
				CourseCode: "SC1005",
				Indexes: []IndexOption{
					{IndexNumber: "80010", Sessions: []Session{lecture("Monday", "1000", "1200")}},
					{IndexNumber: "80011", Sessions: []Session{lecture("Wednesday", "1030", "1130")}},
					{IndexNumber: "80012", Sessions: []Session{lecture("Friday", "0800", "0900")}},
				},
			},
			{
				CourseCode: "SC2002",
				Indexes: []IndexOption{
					{IndexNumber: "80020", Sessions: []Session{tutorial("Monday", "0930", "1030")}},
					{IndexNumber: "80021", Sessions: []Session{tutorial("Friday", "0830", "0930")}},
				},
			},
		}

		//** Act
		result := NewGenerator().Generate(modules)

		//** Assert
		assert.NotEmpty(t, result.Combinations)
		for _, combination := range result.Combinations {
			assert.Len(t, combination.Indexes, len(modules))
			for i, a := range combination.Sessions {
				for _, b := range combination.Sessions[i+1:] {
					if a.CourseCode == b.CourseCode {
						continue
					}
					assert.False(t, HasTimeClash(a.Session, b.Session),
						"combination %v schedules %v against %v", combination.Indexes, a, b)
				}
			}
		}
	})

	t.Run("Combination budget truncates the result set", func(t *testing.T) {
		//** Arrange
		indexes := lo.Map(lo.Range(10), func(i int, _ int) IndexOption {
			return IndexOption{IndexNumber: string(rune('A' + i)), Sessions: []Session{lecture("Monday", "0900", "1000")}}
		})
		modules := []ModuleOffering{{CourseCode: "BU8101", Indexes: indexes}}

		generator := NewGenerator()
		generator.MaxCombinations = 3

		//** Act
		result := generator.Generate(modules)

		//** Assert
		assert.Len(t, result.Combinations, 3)
		assert.True(t, result.Truncated)
	})

	t.Run("Recursion budget terminates the search quietly", func(t *testing.T) {
		//** Arrange
		modules := []ModuleOffering{{
			CourseCode: "BU8201",
			Indexes:    []IndexOption{{IndexNumber: "90001", Sessions: []Session{lecture("Monday", "0900", "1000")}}},
		}}

		generator := NewGenerator()
		generator.MaxRecursiveCalls = 1

		//** Act
		result := generator.Generate(modules)

		//** Assert
		assert.Empty(t, result.Combinations)
		assert.True(t, result.Truncated)
	})

	t.Run("An exhaustive search is not reported as truncated", func(t *testing.T) {
		modules := []ModuleOffering{{
			CourseCode: "BU8301",
			Indexes: []IndexOption{
				{IndexNumber: "90010", Sessions: []Session{lecture("Monday", "0900", "1000")}},
				{IndexNumber: "90011", Sessions: []Session{lecture("Tuesday", "0900", "1000")}},
			},
		}}

		result := NewGenerator().Generate(modules)

		assert.Len(t, result.Combinations, 2)
		assert.False(t, result.Truncated)
	})

	t.Run("Combinations carry distinct identifiers", func(t *testing.T) {
		modules := []ModuleOffering{{
			CourseCode: "BU8401",
			Indexes: []IndexOption{
				{IndexNumber: "90020", Sessions: []Session{lecture("Monday", "0900", "1000")}},
				{IndexNumber: "90021", Sessions: []Session{lecture("Tuesday", "0900", "1000")}},
			},
		}}

		result := NewGenerator().Generate(modules)

		ids := lo.Map(result.Combinations, func(combination Combination, _ int) string {
			return combination.ID
		})
		assert.Len(t, lo.Uniq(ids), len(result.Combinations))
	})
}
