package main

import (
	"flag"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/jared-makes-stuff/NTU-Mods-By-Bob-sub002/internal/catalog"
	"github.com/jared-makes-stuff/NTU-Mods-By-Bob-sub002/internal/config"
	"github.com/jared-makes-stuff/NTU-Mods-By-Bob-sub002/internal/logging"
	"github.com/jared-makes-stuff/NTU-Mods-By-Bob-sub002/pkg/timetable"
)

var dayOrder = map[string]int{
	"MON": 0,
	"TUE": 1,
	"WED": 2,
	"THU": 3,
	"FRI": 4,
	"SAT": 5,
	"SUN": 6,
}

func main() {
	configFile := flag.String("config", "", "optional YAML config file")
	inputFile := flag.String("input", "", "JSON generation request (modules + filters)")
	catalogFile := flag.String("catalog", "", "CSV catalogue export (uses default filters)")
	top := flag.Int("top", 0, "number of timetables to print (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("cannot initialize logger: %v", err)
	}
	defer logger.Sync()

	modules, filters, err := loadRequest(*inputFile, *catalogFile, logger)
	if err != nil {
		logger.Fatal("cannot load generation request", zap.Error(err))
	}

	filtered := timetable.FilterModules(modules, filters)
	logger.Info("filtered module indexes",
		zap.Int("requested_modules", len(modules)),
		zap.Int("viable_modules", len(filtered)),
	)

	generator := timetable.NewGenerator()
	generator.MaxRecursiveCalls = cfg.Generator.MaxRecursiveCalls
	generator.MaxCombinations = cfg.Generator.MaxCombinations

	started := time.Now()
	result := generator.Generate(filtered)
	logger.Info("generation finished",
		zap.Int("combinations", len(result.Combinations)),
		zap.Int("calls", result.Calls),
		zap.Bool("truncated", result.Truncated),
		zap.Duration("elapsed", time.Since(started)),
	)
	if result.Truncated {
		logger.Warn("search budget exhausted, result set may be incomplete")
	}

	combinations := lo.Map(result.Combinations, func(combination timetable.Combination, _ int) timetable.Combination {
		combination.Score = timetable.ScoreCombination(combination, filters)
		return combination
	})
	slices.SortFunc(combinations, func(a, b timetable.Combination) int {
		if a.Score > b.Score {
			return -1
		} else if a.Score < b.Score {
			return 1
		}
		return 0
	})

	limit := cfg.Output.Top
	if *top > 0 {
		limit = *top
	}
	printCombinations(lo.Slice(combinations, 0, limit))
}

func loadRequest(inputFile, catalogFile string, logger *zap.Logger) ([]timetable.ModuleOffering, timetable.Filters, error) {
	switch {
	case inputFile != "":
		input, err := timetable.InputFromJSON(inputFile)
		if err != nil {
			return nil, timetable.Filters{}, err
		}
		return input.Modules, input.Filters, nil
	case catalogFile != "":
		modules, err := catalog.LoadModules(catalogFile, logger)
		if err != nil {
			return nil, timetable.Filters{}, err
		}
		return modules, config.DefaultFilters(), nil
	default:
		return nil, timetable.Filters{}, fmt.Errorf("either -input or -catalog must be provided")
	}
}

func printCombinations(combinations []timetable.Combination) {
	for rank, combination := range combinations {
		codes := lo.Keys(combination.Indexes)
		slices.Sort(codes)
		chosen := lo.Map(codes, func(code string, _ int) string {
			return fmt.Sprintf("%v:%v", code, combination.Indexes[code])
		})

		fmt.Printf("#%v  score %.1f  %v\n", rank+1, combination.Score, strings.Join(chosen, "  "))

		for _, session := range displaySessions(combination.Sessions) {
			fmt.Printf("    %-9v %v-%v  %-10v %v %v (%v)\n",
				session.Day, session.StartTime, session.EndTime,
				session.Type, session.CourseCode, session.IndexNumber, session.Venue)
		}
		fmt.Println()
	}
}

// displaySessions orders a combination's sessions the way a printed timetable
// reads: weekday first, then start time parsed to minutes so colon-delimited
// times sort by clock order. Unrecognized days sort last.
func displaySessions(sessions []timetable.TaggedSession) []timetable.TaggedSession {
	sorted := make([]timetable.TaggedSession, len(sessions))
	copy(sorted, sessions)

	slices.SortFunc(sorted, func(a, b timetable.TaggedSession) int {
		if dayA, dayB := dayRank(a.Day), dayRank(b.Day); dayA != dayB {
			return dayA - dayB
		}
		return timetable.MinutesFromTime(a.StartTime) - timetable.MinutesFromTime(b.StartTime)
	})
	return sorted
}

func dayRank(day string) int {
	rank, ok := dayOrder[normalizedDay(day)]
	if !ok {
		return len(dayOrder)
	}
	return rank
}

func normalizedDay(day string) string {
	if len(day) > 3 {
		day = day[:3]
	}
	return strings.ToUpper(day)
}
