// Package catalog loads semester catalogue exports into the module/index/
// session structures consumed by the timetable engine. It stands in for the
// web application's data-fetch layer when running from the command line.
package catalog

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"go.uber.org/zap"

	"github.com/jared-makes-stuff/NTU-Mods-By-Bob-sub002/pkg/timetable"
)

// sessionRecord is one flat row of the catalogue CSV: one scheduled session
// per row, with its owning module and index repeated in every row.
type sessionRecord struct {
	CourseCode string  `csv:"course_code"`
	ModuleName string  `csv:"module_name"`
	AU         float64 `csv:"au"`
	Index      string  `csv:"index"`
	ClassType  string  `csv:"class_type"`
	Day        string  `csv:"day"`
	StartTime  string  `csv:"start_time"`
	EndTime    string  `csv:"end_time"`
	Venue      string  `csv:"venue"`
	Weeks      string  `csv:"weeks"`
}

// LoadModules reads a catalogue CSV and rebuilds the module tree. Modules and
// indexes keep their first-appearance order so generation stays reproducible
// for a given file.
func LoadModules(file string, logger *zap.Logger) ([]timetable.ModuleOffering, error) {
	handle, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("cannot open catalogue file: %w", err)
	}
	defer handle.Close()

	records := []*sessionRecord{}
	if err := gocsv.UnmarshalFile(handle, &records); err != nil {
		return nil, fmt.Errorf("cannot parse catalogue file %v: %w", file, err)
	}

	moduleOrder := make([]string, 0)
	modulesByCode := make(map[string]*timetable.ModuleOffering)
	indexOrder := make(map[string][]string)
	indexesByKey := make(map[[2]string]*timetable.IndexOption)

	for _, record := range records {
		module, ok := modulesByCode[record.CourseCode]
		if !ok {
			module = &timetable.ModuleOffering{
				CourseCode: record.CourseCode,
				Name:       record.ModuleName,
				AU:         record.AU,
			}
			modulesByCode[record.CourseCode] = module
			moduleOrder = append(moduleOrder, record.CourseCode)
		}

		key := [2]string{record.CourseCode, record.Index}
		index, ok := indexesByKey[key]
		if !ok {
			index = &timetable.IndexOption{IndexNumber: record.Index}
			indexesByKey[key] = index
			indexOrder[record.CourseCode] = append(indexOrder[record.CourseCode], record.Index)
		}

		index.Sessions = append(index.Sessions, timetable.Session{
			Type:      record.ClassType,
			Day:       record.Day,
			StartTime: record.StartTime,
			EndTime:   record.EndTime,
			Venue:     record.Venue,
			Weeks:     parseWeeks(record.Weeks, logger),
		})
	}

	modules := make([]timetable.ModuleOffering, 0, len(moduleOrder))
	for _, code := range moduleOrder {
		module := *modulesByCode[code]
		for _, indexNumber := range indexOrder[code] {
			module.Indexes = append(module.Indexes, *indexesByKey[[2]string{code, indexNumber}])
		}
		modules = append(modules, module)
	}

	logger.Info("catalogue loaded",
		zap.String("file", file),
		zap.Int("modules", len(modules)),
		zap.Int("sessions", len(records)),
	)
	return modules, nil
}

// parseWeeks expands a week specification ("1-13", "2,4,6", "1-3,8") into the
// explicit week set. Malformed tokens are skipped, so a fully malformed
// specification degrades to the empty set, which the clash detector already
// treats as active every week.
func parseWeeks(token string, logger *zap.Logger) []int {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}

	weeks := make([]int, 0)
	for _, part := range strings.Split(token, ",") {
		part = strings.TrimSpace(part)

		if from, to, found := strings.Cut(part, "-"); found {
			start, startErr := strconv.Atoi(strings.TrimSpace(from))
			end, endErr := strconv.Atoi(strings.TrimSpace(to))
			if startErr != nil || endErr != nil || end < start {
				logger.Warn("skipping malformed week range", zap.String("token", part))
				continue
			}
			for week := start; week <= end; week++ {
				weeks = append(weeks, week)
			}
			continue
		}

		week, err := strconv.Atoi(part)
		if err != nil {
			logger.Warn("skipping malformed week token", zap.String("token", part))
			continue
		}
		weeks = append(weeks, week)
	}
	return weeks
}
