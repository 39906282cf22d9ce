package timetable

import (
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Default search budgets. Both are deliberate trade-offs for pathological
// inputs (many modules with many indexes each): hitting either one ends the
// search quietly with a partial result instead of running unbounded.
const (
	DefaultMaxRecursiveCalls = 100_000
	DefaultMaxCombinations   = 500
)

// Result is the outcome of one generation run. Truncated reports whether a
// search budget was exhausted, in which case Combinations is a valid but
// possibly non-exhaustive subset.
type Result struct {
	Combinations []Combination
	Truncated    bool
	Calls        int
}

// Generator enumerates clash-free timetable combinations over filtered
// modules. The zero value is not usable; construct with NewGenerator and
// override the budgets only in tests or benchmarks.
type Generator struct {
	MaxRecursiveCalls int
	MaxCombinations   int
}

func NewGenerator() *Generator {
	return &Generator{
		MaxRecursiveCalls: DefaultMaxRecursiveCalls,
		MaxCombinations:   DefaultMaxCombinations,
	}
}

// Generate performs a depth-first search over the modules in their given
// order, one module per level, choosing exactly one index option per module
// such that no two chosen sessions clash. Module order is preserved verbatim:
// results are deterministic for a fixed input. An empty module list yields
// zero combinations.
func (generator *Generator) Generate(modules []ModuleOffering) Result {
	state := &searchState{
		modules:           modules,
		maxRecursiveCalls: generator.MaxRecursiveCalls,
		maxCombinations:   generator.MaxCombinations,
		combinations:      make([]Combination, 0),
	}

	if len(modules) > 0 {
		state.explore(0, make([]IndexOption, 0, len(modules)), nil)
	}

	return Result{
		Combinations: state.combinations,
		Truncated:    state.truncated,
		Calls:        state.calls,
	}
}

// searchState is the only mutable piece of the engine, scoped to a single
// Generate call: the two budget counters and the results buffer.
type searchState struct {
	modules           []ModuleOffering
	maxRecursiveCalls int
	maxCombinations   int

	calls        int
	truncated    bool
	combinations []Combination
}

func (state *searchState) explore(level int, chosen []IndexOption, committed []TaggedSession) {
	if state.calls >= state.maxRecursiveCalls || len(state.combinations) >= state.maxCombinations {
		state.truncated = true
		return
	}
	state.calls++

	if level == len(state.modules) {
		state.combinations = append(state.combinations, newCombination(state.modules, chosen))
		return
	}

	module := state.modules[level]
	for _, index := range module.Indexes {
		candidate := tagSessions(module, index)
		if clashesWithCommitted(candidate, committed) {
			continue
		}

		state.explore(level+1, append(chosen, index), append(committed, candidate...))
		if state.truncated {
			return
		}
	}
}

func clashesWithCommitted(candidate, committed []TaggedSession) bool {
	for _, session := range candidate {
		for _, existing := range committed {
			if HasTimeClash(session.Session, existing.Session) {
				return true
			}
		}
	}
	return false
}

func tagSessions(module ModuleOffering, index IndexOption) []TaggedSession {
	return lo.Map(index.Sessions, func(session Session, _ int) TaggedSession {
		return TaggedSession{
			Session:     session,
			CourseCode:  module.CourseCode,
			ModuleName:  module.Name,
			IndexNumber: index.IndexNumber,
		}
	})
}

// newCombination copies the partial assignment into a fresh, immutable
// combination. chosen[i] is the index option picked for modules[i].
func newCombination(modules []ModuleOffering, chosen []IndexOption) Combination {
	indexes := make(map[string]string, len(chosen))
	sessions := make([]TaggedSession, 0)
	for i, index := range chosen {
		indexes[modules[i].CourseCode] = index.IndexNumber
		sessions = append(sessions, tagSessions(modules[i], index)...)
	}

	return Combination{
		ID:       uuid.NewString(),
		Indexes:  indexes,
		Sessions: sessions,
	}
}
