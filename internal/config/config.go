// Package config carries the runtime configuration for the command-line
// front-ends. The engine itself takes no configuration beyond its filters and
// search budgets.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/jared-makes-stuff/NTU-Mods-By-Bob-sub002/pkg/timetable"
)

type Config struct {
	Generator GeneratorConfig `mapstructure:"generator"`
	Output    OutputConfig    `mapstructure:"output"`
	Log       LogConfig       `mapstructure:"log"`
}

// GeneratorConfig overrides the engine's default search budgets.
type GeneratorConfig struct {
	MaxRecursiveCalls int `mapstructure:"max_recursive_calls"`
	MaxCombinations   int `mapstructure:"max_combinations"`
}

type OutputConfig struct {
	Top int `mapstructure:"top"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from an optional YAML file and TIMETABLE_-prefixed
// environment variables, with code defaults underneath.
func Load(file string) (*Config, error) {
	v := viper.New()

	v.SetDefault("generator.max_recursive_calls", timetable.DefaultMaxRecursiveCalls)
	v.SetDefault("generator.max_combinations", timetable.DefaultMaxCombinations)
	v.SetDefault("output.top", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetEnvPrefix("TIMETABLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("cannot read config file %v: %w", file, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("cannot unmarshal config: %w", err)
	}
	return &config, nil
}

// DefaultFilters is the caller-side permissive default: every class type
// considered, both venue kinds included, all days enabled, every scored
// preference disabled. The engine performs no default-merging of its own.
func DefaultFilters() timetable.Filters {
	return timetable.Filters{
		ClassesToConsider: timetable.ClassTypeFilters{
			Tutorial: true,
			Lab:      true,
			Seminar:  true,
			Lecture:  true,
			Project:  true,
			Design:   true,
		},
		VenuePreference: timetable.VenuePreference{
			IncludeOnline:   true,
			IncludeInPerson: true,
		},
		DaysOfWeek: timetable.DaysOfWeek{
			Monday:    true,
			Tuesday:   true,
			Wednesday: true,
			Thursday:  true,
			Friday:    true,
			Saturday:  true,
			Sunday:    true,
		},
	}
}
