// Package temporal defines the shared data model for the chronosolve
// pipeline: Events, Assertions, Allen relations, confidence tiers, endpoint
// variables, coordinates, and the solve result record. It declares no
// algorithms of its own — allen, stn, propagate, relax, placer, and solver
// all build on these types.
//
// Determinism:
//   - NewEvent/NewAssertion only synthesize an ID when the caller leaves one
//     empty; callers that need byte-identical output across runs (Testable
//     Property "Determinism") must supply explicit IDs.
package temporal

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// DurationType classifies an Event as zero-width (Instant) or nonzero-width
// (Interval).
type DurationType int

const (
	// Instant marks a zero-width event: start == end.
	Instant DurationType = iota
	// Interval marks a nonzero-width event: end - start >= configured minimum.
	Interval
)

// String renders the DurationType for logs and error messages.
func (d DurationType) String() string {
	switch d {
	case Instant:
		return "instant"
	case Interval:
		return "interval"
	default:
		return "unknown"
	}
}

// MarshalJSON renders DurationType as spec.md §3's wire strings ("instant",
// "interval") instead of its underlying int value.
func (d DurationType) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON parses spec.md §3's wire strings back into a DurationType.
func (d *DurationType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "instant":
		*d = Instant
	case "interval":
		*d = Interval
	default:
		return fmt.Errorf("temporal: unrecognized duration_type %q", s)
	}

	return nil
}

// Event is a named, dated entity that contributes two endpoint variables
// (start, end) to the constraint graph. Disabled events are excluded before
// compilation.
type Event struct {
	// ID uniquely identifies this Event within a solve request.
	ID string `json:"id"`
	// Duration classifies the event as Instant or Interval.
	Duration DurationType `json:"duration_type"`
	// Enabled controls whether the event is compiled into the graph at all.
	Enabled bool `json:"enabled"`
}

// NewEvent constructs an Event, synthesizing a UUID if id is empty.
func NewEvent(id string, duration DurationType) Event {
	if id == "" {
		id = uuid.NewString()
	}

	return Event{ID: id, Duration: duration, Enabled: true}
}

// StartVar returns the canonical start-endpoint variable name for an event.
func StartVar(eventID string) string { return eventID + "_start" }

// EndVar returns the canonical end-endpoint variable name for an event.
func EndVar(eventID string) string { return eventID + "_end" }

// Relation is one of the thirteen Allen interval relations.
type Relation string

// The thirteen Allen interval relations, jointly exhaustive and pairwise
// disjoint over two closed intervals.
const (
	Before       Relation = "before"
	After        Relation = "after"
	Meets        Relation = "meets"
	MetBy        Relation = "met-by"
	Overlaps     Relation = "overlaps"
	OverlappedBy Relation = "overlapped-by"
	Starts       Relation = "starts"
	StartedBy    Relation = "started-by"
	Finishes     Relation = "finishes"
	FinishedBy   Relation = "finished-by"
	During       Relation = "during"
	Contains     Relation = "contains"
	Equals       Relation = "equals"
)

// Inverse returns the Allen relation R such that "A rel B" iff "B R A".
// Equals is its own inverse; before/after and contains/during are mutual
// inverses, and so on down the table.
func (r Relation) Inverse() Relation {
	switch r {
	case Before:
		return After
	case After:
		return Before
	case Meets:
		return MetBy
	case MetBy:
		return Meets
	case Overlaps:
		return OverlappedBy
	case OverlappedBy:
		return Overlaps
	case Starts:
		return StartedBy
	case StartedBy:
		return Starts
	case Finishes:
		return FinishedBy
	case FinishedBy:
		return Finishes
	case During:
		return Contains
	case Contains:
		return During
	case Equals:
		return Equals
	default:
		return ""
	}
}

// Confidence is an ordinal trust tier attached to an Assertion. It controls
// removal priority during relaxation: Speculation is discarded before
// Inferred, which is discarded before Explicit.
type Confidence int

const (
	// Speculation is the lowest-trust tier: discarded first under relaxation.
	Speculation Confidence = iota
	// Inferred is a mid-trust tier derived from other assertions.
	Inferred
	// Explicit is the highest-trust tier: a directly user-stated assertion.
	Explicit
)

// Weight returns the relaxation priority weight for a Confidence tier.
// Only the total order matters; the absolute values (1000/100/10) are
// immaterial and exist purely to document the intended separation.
func (c Confidence) Weight() int {
	switch c {
	case Explicit:
		return 1000
	case Inferred:
		return 100
	case Speculation:
		return 10
	default:
		return 0
	}
}

// String renders the Confidence tier for logs and violation messages.
func (c Confidence) String() string {
	switch c {
	case Explicit:
		return "explicit"
	case Inferred:
		return "inferred"
	case Speculation:
		return "speculation"
	default:
		return "unknown"
	}
}

// MarshalJSON renders Confidence as spec.md §3's wire strings ("explicit",
// "inferred", "speculation") instead of its underlying int value.
func (c Confidence) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON parses spec.md §3's wire strings back into a Confidence.
func (c *Confidence) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "explicit":
		*c = Explicit
	case "inferred":
		*c = Inferred
	case "speculation":
		*c = Speculation
	default:
		return fmt.Errorf("temporal: unrecognized confidence %q", s)
	}

	return nil
}

// Assertion is a directed, confidence-tagged Allen-relation triple between
// two events, identified by a stable ID used throughout the pipeline to
// trace compiled edges back to their origin.
type Assertion struct {
	// ID uniquely identifies this Assertion within a solve request.
	ID string `json:"id"`
	// SourceID is the event ID playing the "A" role in Relation(A, B).
	SourceID string `json:"source_id"`
	// TargetID is the event ID playing the "B" role in Relation(A, B).
	TargetID string `json:"target_id"`
	// Relation is one of the thirteen Allen interval relations.
	Relation Relation `json:"relation"`
	// Confidence is the ordinal trust tier controlling relaxation priority.
	Confidence Confidence `json:"confidence"`
	// Enabled controls whether the assertion is compiled into the graph.
	Enabled bool `json:"enabled"`
}

// NewAssertion constructs an Assertion, synthesizing a UUID if id is empty.
func NewAssertion(id, sourceID, targetID string, relation Relation, confidence Confidence) Assertion {
	if id == "" {
		id = uuid.NewString()
	}

	return Assertion{
		ID:         id,
		SourceID:   sourceID,
		TargetID:   targetID,
		Relation:   relation,
		Confidence: confidence,
		Enabled:    true,
	}
}

// Coordinate is the display placement of one event: start <= end always;
// instants satisfy start == end, intervals satisfy end - start >= the
// configured minimum display width.
type Coordinate struct {
	EventID string  `json:"event_id"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
}

// Status summarizes how the solve resolved the input assertions.
type Status string

const (
	// Satisfiable means every enabled assertion held without relaxation.
	Satisfiable Status = "satisfiable"
	// Relaxed means one or more assertions were discarded to reach feasibility.
	Relaxed Status = "relaxed"
	// Unsatisfiable means feasibility was not reached by discarding
	// assertions: either the last witness held no removable assertion (the
	// conflict is intrinsic to the events themselves) or the relaxer's
	// iteration cap ran out first.
	Unsatisfiable Status = "unsatisfiable"
)

// Severity classifies a discarded assertion by the confidence tier it held.
type Severity string

const (
	// SeveritySoft marks a discarded Speculation-tier assertion.
	SeveritySoft Severity = "soft"
	// SeverityHard marks a discarded Inferred- or Explicit-tier assertion.
	SeverityHard Severity = "hard"
)

// Violation reports one assertion discarded during relaxation.
type Violation struct {
	AssertionID string   `json:"assertion_id"`
	Severity    Severity `json:"severity"`
	Message     string   `json:"message"`
}

// Conflict reports one surviving negative-cycle witness, non-empty only in
// the Unsatisfiable branch.
type Conflict struct {
	AssertionIDs []string `json:"assertion_ids"`
	Description  string   `json:"description"`
}

// Result is the full solve response: status, placements, what was discarded
// and why, any surviving conflicts, and the elapsed wall-clock solve time.
type Result struct {
	Status     Status       `json:"status"`
	Positions  []Coordinate `json:"positions"`
	Violations []Violation  `json:"violations"`
	Conflicts  []Conflict   `json:"conflicts"`
	ElapsedMS  float64      `json:"elapsed_ms"`
}
