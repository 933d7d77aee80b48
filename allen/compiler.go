// Package allen translates Allen's Interval Algebra into difference
// constraints: the single place in chronosolve that knows what "before",
// "overlaps", or "during" actually mean in terms of endpoint-variable
// inequalities.
//
// Grounded on github.com/katalvlaran/lvlath/dijkstra's style of a small,
// pure, table-driven translation with a single exported entry point and a
// sentinel error for the one thing that can go wrong (an unrecognized
// relation, which spec.md §4.1 calls a programmer error, not a runtime
// condition callers are expected to recover from).
package allen

import (
	"errors"
	"fmt"

	"github.com/temporalgraph/chronosolve/temporal"
)

// ErrUnknownRelation indicates an Assertion carried a Relation value outside
// the thirteen Allen relations. This is a programmer error per spec.md §4.1
// ("Failure modes: None at compile time; any unrecognized relation is a
// programmer error and may abort") — well-formed input never triggers it.
var ErrUnknownRelation = errors.New("allen: unrecognized relation")

// Constraint is a difference constraint {From, To, Bound} asserting
// value(To) - value(From) <= Bound. It is edge-ready: stn.Graph.InsertEdge
// takes Constraint.From/To/Bound directly as From/To/Weight.
type Constraint struct {
	From  string
	To    string
	Bound float64
}

// before returns the constraint encoding "value(earlier) < value(later)"
// as value(earlier) - value(later) <= -eps.
func before(earlier, later string, eps float64) Constraint {
	return Constraint{From: later, To: earlier, Bound: -eps}
}

// equal returns the two constraints encoding "value(a) == value(b)".
func equal(a, b string) []Constraint {
	return []Constraint{
		{From: b, To: a, Bound: 0},
		{From: a, To: b, Bound: 0},
	}
}

// Compile translates one Assertion into the difference constraints implied
// by its Allen relation, per the encoding table in spec.md §4.1. As and Ae
// denote the source event's start/end; Bs and Be denote the target's.
func Compile(a temporal.Assertion, eps float64) ([]Constraint, error) {
	As, Ae := temporal.StartVar(a.SourceID), temporal.EndVar(a.SourceID)
	Bs, Be := temporal.StartVar(a.TargetID), temporal.EndVar(a.TargetID)

	switch a.Relation {
	case temporal.Before:
		// Ae < Bs
		return []Constraint{before(Ae, Bs, eps)}, nil

	case temporal.After:
		// Be < As
		return []Constraint{before(Be, As, eps)}, nil

	case temporal.Meets:
		// Ae = Bs
		return equal(Ae, Bs), nil

	case temporal.MetBy:
		// As = Be
		return equal(As, Be), nil

	case temporal.Overlaps:
		// As < Bs; Bs < Ae; Ae < Be
		return []Constraint{
			before(As, Bs, eps),
			before(Bs, Ae, eps),
			before(Ae, Be, eps),
		}, nil

	case temporal.OverlappedBy:
		// Bs < As; As < Be; Be < Ae
		return []Constraint{
			before(Bs, As, eps),
			before(As, Be, eps),
			before(Be, Ae, eps),
		}, nil

	case temporal.Starts:
		// As = Bs; Ae < Be
		out := equal(As, Bs)
		return append(out, before(Ae, Be, eps)), nil

	case temporal.StartedBy:
		// As = Bs; Be < Ae
		out := equal(As, Bs)
		return append(out, before(Be, Ae, eps)), nil

	case temporal.Finishes:
		// Bs < As; Ae = Be
		out := []Constraint{before(Bs, As, eps)}
		return append(out, equal(Ae, Be)...), nil

	case temporal.FinishedBy:
		// As < Bs; Ae = Be
		out := []Constraint{before(As, Bs, eps)}
		return append(out, equal(Ae, Be)...), nil

	case temporal.During:
		// Bs < As; Ae < Be
		return []Constraint{
			before(Bs, As, eps),
			before(Ae, Be, eps),
		}, nil

	case temporal.Contains:
		// As < Bs; Be < Ae
		return []Constraint{
			before(As, Bs, eps),
			before(Be, Ae, eps),
		}, nil

	case temporal.Equals:
		// As = Bs; Ae = Be
		out := equal(As, Bs)
		return append(out, equal(Ae, Be)...), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRelation, a.Relation)
	}
}

// CompileEvent returns the internal shape constraints for one event: an
// instant gets start == end (two zero-weight constraints); an interval
// gets end - start >= mu, encoded as the single constraint
// value(start) - value(end) <= -mu.
func CompileEvent(e temporal.Event, mu float64) []Constraint {
	start, end := temporal.StartVar(e.ID), temporal.EndVar(e.ID)

	if e.Duration == temporal.Instant {
		return equal(start, end)
	}

	// end - start >= mu  <=>  start - end <= -mu  <=>  From=end,To=start,Bound=-mu
	return []Constraint{{From: end, To: start, Bound: -mu}}
}
