// Package solver is chronosolve's single public entry point: Solve takes
// the events and assertions spec.md §6 names as the "Solve request" and
// returns the "Solve response" record, running the full
// compile -> propagate -> relax -> place pipeline in between.
//
// Grounded on github.com/katalvlaran/lvlath/dijkstra's top-level Dijkstra
// function: validate, delegate to an internal runner, stamp a result.
// Solve differs from Dijkstra's error-returning contract on purpose — per
// spec.md §7, user-visible failure flows exclusively through Status,
// Violations, and Conflicts, never through an error return, so Solve
// returns only *temporal.Result.
package solver

import (
	"fmt"
	"time"

	"github.com/temporalgraph/chronosolve/config"
	"github.com/temporalgraph/chronosolve/placer"
	"github.com/temporalgraph/chronosolve/relax"
	"github.com/temporalgraph/chronosolve/temporal"
)

// Option customizes a Solve call's tuning constants.
type Option func(*config.Constants)

// WithConstants overrides the default config.Constants for one Solve call.
func WithConstants(c config.Constants) Option {
	return func(cfg *config.Constants) { *cfg = c }
}

// Solve runs the full pipeline over events and assertions and returns the
// solve response record defined in spec.md §3/§6. Disabled events and
// assertions are excluded before compilation, per §3's "Disabled events are
// excluded before compilation."
func Solve(events []temporal.Event, assertions []temporal.Assertion, opts ...Option) *temporal.Result {
	start := time.Now()

	cfg := config.Default()
	for _, opt := range opts {
		opt(&cfg)
	}

	enabledEvents := filterEvents(events)
	enabledAssertions := filterAssertions(assertions)

	var result *temporal.Result
	switch {
	case len(enabledEvents) == 0:
		// spec.md §7 "Empty input": not an error, satisfiable, empty output.
		result = &temporal.Result{
			Status:     temporal.Satisfiable,
			Positions:  []temporal.Coordinate{},
			Violations: []temporal.Violation{},
			Conflicts:  []temporal.Conflict{},
		}

	case len(enabledAssertions) == 0:
		// spec.md §7 "No-assertion input": not an error, fallback placement.
		result = &temporal.Result{
			Status:     temporal.Satisfiable,
			Positions:  placer.PlaceFallback(enabledEvents, cfg),
			Violations: []temporal.Violation{},
			Conflicts:  []temporal.Conflict{},
		}

	default:
		outcome := relax.Relax(enabledEvents, enabledAssertions, cfg)
		result = buildResult(enabledEvents, enabledAssertions, outcome, cfg)
	}

	result.ElapsedMS = float64(time.Since(start)) / float64(time.Millisecond)

	return result
}

// buildResult classifies a relax.Outcome into the satisfiable / relaxed /
// unsatisfiable branches of spec.md §4.6.
func buildResult(events []temporal.Event, assertions []temporal.Assertion, outcome *relax.Outcome, cfg config.Constants) *temporal.Result {
	byID := indexByID(assertions)
	violations := buildViolations(outcome, byID)

	if outcome.Propagation.Feasible {
		positions := placer.Place(events, outcome.Propagation.Distances, cfg)
		status := temporal.Satisfiable
		if len(outcome.Discarded) > 0 {
			status = temporal.Relaxed
		}

		return &temporal.Result{
			Status:     status,
			Positions:  positions,
			Violations: violations,
			Conflicts:  []temporal.Conflict{},
		}
	}

	conflict := temporal.Conflict{
		AssertionIDs: outcome.Propagation.CycleOriginIDs,
		Description:  "intrinsic conflict: the surviving events' own internal shape constraints cannot be satisfied together",
	}

	return &temporal.Result{
		Status:     temporal.Unsatisfiable,
		Positions:  placer.PlaceFallback(events, cfg),
		Violations: violations,
		Conflicts:  []temporal.Conflict{conflict},
	}
}

// buildViolations renders one human-readable Violation per discarded
// assertion, in discard order.
func buildViolations(outcome *relax.Outcome, byID map[string]temporal.Assertion) []temporal.Violation {
	out := make([]temporal.Violation, 0, len(outcome.Discarded))
	for i, id := range outcome.Discarded {
		a := byID[id]
		severity := temporal.SeverityHard
		if a.Confidence == temporal.Speculation {
			severity = temporal.SeveritySoft
		}

		size := 0
		if i < len(outcome.DiscardedWitnessSize) {
			size = outcome.DiscardedWitnessSize[i]
		}

		out = append(out, temporal.Violation{
			AssertionID: id,
			Severity:    severity,
			Message: fmt.Sprintf(
				"%s(%s -> %s) discarded: lower-confidence member of a %d-assertion conflict",
				a.Relation, a.SourceID, a.TargetID, size,
			),
		})
	}

	return out
}

func indexByID(assertions []temporal.Assertion) map[string]temporal.Assertion {
	out := make(map[string]temporal.Assertion, len(assertions))
	for _, a := range assertions {
		out[a.ID] = a
	}

	return out
}

func filterEvents(events []temporal.Event) []temporal.Event {
	out := make([]temporal.Event, 0, len(events))
	for _, e := range events {
		if e.Enabled {
			out = append(out, e)
		}
	}

	return out
}

func filterAssertions(assertions []temporal.Assertion) []temporal.Assertion {
	out := make([]temporal.Assertion, 0, len(assertions))
	for _, a := range assertions {
		if a.Enabled {
			out = append(out, a)
		}
	}

	return out
}
