package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temporalgraph/chronosolve/solver"
	"github.com/temporalgraph/chronosolve/temporal"
)

func ev(id string, d temporal.DurationType) temporal.Event {
	return temporal.Event{ID: id, Duration: d, Enabled: true}
}

func as(id, src, tgt string, rel temporal.Relation, conf temporal.Confidence) temporal.Assertion {
	return temporal.Assertion{ID: id, SourceID: src, TargetID: tgt, Relation: rel, Confidence: conf, Enabled: true}
}

func coordOf(t *testing.T, positions []temporal.Coordinate, id string) temporal.Coordinate {
	t.Helper()
	for _, c := range positions {
		if c.EventID == id {
			return c
		}
	}
	t.Fatalf("no coordinate for event %q", id)
	return temporal.Coordinate{}
}

// S1. Simple linear.
func TestSolve_S1_SimpleLinear(t *testing.T) {
	events := []temporal.Event{ev("A", temporal.Instant), ev("B", temporal.Interval), ev("C", temporal.Instant)}
	assertions := []temporal.Assertion{
		as("a1", "A", "B", temporal.Before, temporal.Explicit),
		as("a2", "B", "C", temporal.Before, temporal.Explicit),
	}

	result := solver.Solve(events, assertions)
	require.Equal(t, temporal.Satisfiable, result.Status)

	A := coordOf(t, result.Positions, "A")
	B := coordOf(t, result.Positions, "B")
	C := coordOf(t, result.Positions, "C")

	assert.LessOrEqual(t, A.End, B.Start)
	assert.Less(t, B.Start, B.End)
	assert.LessOrEqual(t, B.End, C.Start)
}

// S2. Contains.
func TestSolve_S2_Contains(t *testing.T) {
	events := []temporal.Event{ev("A", temporal.Interval), ev("B", temporal.Interval)}
	assertions := []temporal.Assertion{as("a1", "A", "B", temporal.Contains, temporal.Explicit)}

	result := solver.Solve(events, assertions)
	require.Equal(t, temporal.Satisfiable, result.Status)

	A := coordOf(t, result.Positions, "A")
	B := coordOf(t, result.Positions, "B")
	assert.Less(t, A.Start, B.Start)
	assert.Less(t, B.Start, B.End)
	assert.Less(t, B.End, A.End)
}

// S3. Repairable contradiction.
func TestSolve_S3_RepairableContradiction(t *testing.T) {
	events := []temporal.Event{ev("A", temporal.Instant), ev("B", temporal.Instant), ev("C", temporal.Instant)}
	assertions := []temporal.Assertion{
		as("spec", "A", "B", temporal.Before, temporal.Speculation),
		as("inf", "B", "C", temporal.Before, temporal.Inferred),
		as("exp", "C", "A", temporal.Before, temporal.Explicit),
	}

	result := solver.Solve(events, assertions)
	require.Equal(t, temporal.Relaxed, result.Status)
	require.Len(t, result.Violations, 1)
	assert.Equal(t, "spec", result.Violations[0].AssertionID)
	assert.Equal(t, temporal.SeveritySoft, result.Violations[0].Severity)
	assert.Empty(t, result.Conflicts)

	B := coordOf(t, result.Positions, "B")
	C := coordOf(t, result.Positions, "C")
	A := coordOf(t, result.Positions, "A")
	assert.Less(t, B.Start, C.Start)
	assert.Less(t, C.Start, A.Start)
}

// S4. Intrinsic equality.
func TestSolve_S4_TieBreak(t *testing.T) {
	events := []temporal.Event{ev("A", temporal.Instant), ev("B", temporal.Instant)}
	assertions := []temporal.Assertion{
		as("eq", "A", "B", temporal.Equals, temporal.Explicit),
		as("bef", "A", "B", temporal.Before, temporal.Explicit),
	}

	result := solver.Solve(events, assertions)
	require.Equal(t, temporal.Relaxed, result.Status)
	require.Len(t, result.Violations, 1)
	assert.Equal(t, "bef", result.Violations[0].AssertionID)
	assert.Equal(t, temporal.SeverityHard, result.Violations[0].Severity)
}

// S5. Tight chain.
func TestSolve_S5_Meets(t *testing.T) {
	events := []temporal.Event{ev("A", temporal.Interval), ev("B", temporal.Interval)}
	assertions := []temporal.Assertion{as("a1", "A", "B", temporal.Meets, temporal.Explicit)}

	result := solver.Solve(events, assertions)
	require.Equal(t, temporal.Satisfiable, result.Status)

	A := coordOf(t, result.Positions, "A")
	B := coordOf(t, result.Positions, "B")
	assert.InDelta(t, A.End, B.Start, 1e-3)
	assert.GreaterOrEqual(t, A.End-A.Start, 19.999)
	assert.GreaterOrEqual(t, B.End-B.Start, 19.999)
}

// S6. Empty and singleton.
func TestSolve_S6_EmptyAndSingleton(t *testing.T) {
	empty := solver.Solve(nil, nil)
	assert.Equal(t, temporal.Satisfiable, empty.Status)
	assert.Empty(t, empty.Positions)

	single := solver.Solve([]temporal.Event{ev("A", temporal.Instant)}, nil)
	require.Len(t, single.Positions, 1)
	assert.Equal(t, single.Positions[0].Start, single.Positions[0].End)
}

func TestSolve_DisabledInputsAreExcluded(t *testing.T) {
	events := []temporal.Event{
		ev("A", temporal.Instant),
		{ID: "ghost", Duration: temporal.Instant, Enabled: false},
	}
	assertions := []temporal.Assertion{
		{ID: "off", SourceID: "A", TargetID: "ghost", Relation: temporal.Before, Confidence: temporal.Explicit, Enabled: false},
	}

	result := solver.Solve(events, assertions)
	assert.Equal(t, temporal.Satisfiable, result.Status)
	require.Len(t, result.Positions, 1)
	assert.Equal(t, "A", result.Positions[0].EventID)
}
