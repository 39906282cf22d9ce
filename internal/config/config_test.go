package config

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jared-makes-stuff/NTU-Mods-By-Bob-sub002/pkg/timetable"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults apply without a config file", func(t *testing.T) {
		config, err := Load("")

		assert.NoError(t, err)
		assert.Equal(t, timetable.DefaultMaxRecursiveCalls, config.Generator.MaxRecursiveCalls)
		assert.Equal(t, timetable.DefaultMaxCombinations, config.Generator.MaxCombinations)
		assert.Equal(t, 10, config.Output.Top)
		assert.Equal(t, "info", config.Log.Level)
	})

	t.Run("File values override defaults", func(t *testing.T) {
		file := path.Join(t.TempDir(), "config.yaml")
		assert.NoError(t, os.WriteFile(file, []byte("generator:\n  max_combinations: 25\noutput:\n  top: 3\n"), 0644))

		config, err := Load(file)

		assert.NoError(t, err)
		assert.Equal(t, 25, config.Generator.MaxCombinations)
		assert.Equal(t, 3, config.Output.Top)
		assert.Equal(t, timetable.DefaultMaxRecursiveCalls, config.Generator.MaxRecursiveCalls)
	})

	t.Run("Missing config file is an error", func(t *testing.T) {
		_, err := Load(path.Join(t.TempDir(), "absent.yaml"))

		assert.Error(t, err)
	})
}

func TestDefaultFilters(t *testing.T) {
	filters := DefaultFilters()

	assert.True(t, timetable.ShouldConsiderClassType("Lecture", filters))
	assert.True(t, timetable.ShouldConsiderClassType("Lab", filters))
	assert.False(t, filters.DayStartEnd.StartEnabled)
	assert.False(t, filters.GapsBetweenClasses.Enabled)
}
