// Benchmark harness for the combination search: builds synthetic semesters of
// m modules with k indexes each and reports how the search budgets behave as
// the input turns pathological.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/jared-makes-stuff/NTU-Mods-By-Bob-sub002/internal/config"
	"github.com/jared-makes-stuff/NTU-Mods-By-Bob-sub002/pkg/timetable"
)

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

func main() {
	moduleCount := flag.Int("modules", 8, "number of synthetic modules")
	indexCount := flag.Int("indexes", 12, "number of indexes per module")
	maxCalls := flag.Int("max-calls", timetable.DefaultMaxRecursiveCalls, "recursion budget")
	maxCombinations := flag.Int("max-combinations", timetable.DefaultMaxCombinations, "result budget")
	flag.Parse()

	modules := syntheticModules(*moduleCount, *indexCount)

	generator := timetable.NewGenerator()
	generator.MaxRecursiveCalls = *maxCalls
	generator.MaxCombinations = *maxCombinations

	started := time.Now()
	result := generator.Generate(modules)
	searchElapsed := time.Since(started)

	filters := config.DefaultFilters()
	filters.GenerationGoals = timetable.GenerationGoals{
		MinimizeDays:    true,
		BalanceWorkload: true,
		ConsecutiveDays: true,
	}

	started = time.Now()
	scores := lo.Map(result.Combinations, func(combination timetable.Combination, _ int) float64 {
		return timetable.ScoreCombination(combination, filters)
	})
	scoringElapsed := time.Since(started)

	fmt.Printf("modules: %v, indexes per module: %v\n", *moduleCount, *indexCount)
	fmt.Printf("combinations: %v (truncated: %v)\n", len(result.Combinations), result.Truncated)
	fmt.Printf("recursive calls: %v / %v\n", result.Calls, *maxCalls)
	fmt.Printf("search: %v, scoring: %v\n", searchElapsed, scoringElapsed)
	if len(scores) > 0 {
		fmt.Printf("best score: %.1f, worst score: %.1f\n", lo.Max(scores), lo.Min(scores))
	}
}

// syntheticModules staggers one-hour sessions over the work week so that some
// index pairs clash and most do not, which keeps the search tree bushy.
func syntheticModules(moduleCount, indexCount int) []timetable.ModuleOffering {
	return lo.Map(lo.Range(moduleCount), func(m int, _ int) timetable.ModuleOffering {
		indexes := lo.Map(lo.Range(indexCount), func(i int, _ int) timetable.IndexOption {
			start := 800 + (i%8)*100
			return timetable.IndexOption{
				IndexNumber: fmt.Sprintf("%v%03v", m+10, i),
				Sessions: []timetable.Session{{
					Type:      "Lecture",
					Day:       weekdays[(m+i)%len(weekdays)],
					StartTime: fmt.Sprintf("%04v", start),
					EndTime:   fmt.Sprintf("%04v", start+100),
					Venue:     "LT1",
					Weeks:     lo.RangeFrom(1, 13),
				}},
			}
		})

		return timetable.ModuleOffering{
			CourseCode: fmt.Sprintf("BM%04v", m+1000),
			Name:       fmt.Sprintf("Synthetic Module %v", m),
			AU:         3,
			Indexes:    indexes,
		}
	})
}
